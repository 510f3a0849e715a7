// Event records emitted by turn phases.
package engine

import (
	"fmt"

	"github.com/google/uuid"
)

// Priority grades an event for presentation.
type Priority uint8

const (
	Critical Priority = iota
	Warning
	Info
	Positive
)

var priorityNames = map[Priority]string{
	Critical: "critical",
	Warning:  "warning",
	Info:     "info",
	Positive: "positive",
}

func (p Priority) String() string { return priorityNames[p] }

// Event is one entry of the ordered turn log. Dismissed is always false on
// emission; the presentation layer flips it.
type Event struct {
	ID          string   `json:"id"`
	Turn        int      `json:"turn"`
	Priority    Priority `json:"priority"`
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	RelatedIDs  []string `json:"related_ids"`
	Dismissed   bool     `json:"dismissed"`
}

// eventNamespace seeds the deterministic event IDs: the same turn and
// sequence position always yield the same UUID, keeping full runs replayable
// bit for bit.
var eventNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("starhold.events"))

// assignEventIDs fills in deterministic IDs for a turn's concatenated event
// list, in emission order.
func assignEventIDs(turn int, events []Event) {
	for i := range events {
		events[i].ID = uuid.NewSHA1(eventNamespace, []byte(fmt.Sprintf("%d/%d", turn, i))).String()
	}
}
