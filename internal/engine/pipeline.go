// The turn orchestrator: an ordered list of phases folded left-to-right over
// the snapshot. Reordering phases is a configuration change, not a code
// change.
package engine

import (
	"github.com/talgya/starhold/internal/rng"
)

// Phase is one step of the turn pipeline. Run never mutates its input state.
type Phase struct {
	Name string
	Run  func(st *State, src rng.Source) (*State, []Event)
}

// DefaultPipeline returns the standard phase order. The corporate phase
// reads the markets computed by the previous turn's production phase (held
// in the snapshot), so corporations react to last turn's published prices.
func DefaultPipeline() []Phase {
	return []Phase{
		{Name: "science", Run: sciencePhase},
		{Name: "research", Run: researchPhase},
		{Name: "corporate", Run: corporatePhase},
		{Name: "production", Run: productionPhase},
		{Name: "growth", Run: growthPhase},
		{Name: "taxation", Run: taxationPhase},
	}
}

// RunTurn advances the snapshot by one turn: increments the turn counter,
// threads the state through every phase in order, concatenates their events,
// and assigns deterministic event IDs. The input state is left untouched.
func RunTurn(st *State, src rng.Source, phases []Phase) (*State, []Event) {
	cur := st.Clone()
	cur.Turn++

	var events []Event
	for _, ph := range phases {
		next, evs := ph.Run(cur, src)
		cur = next
		events = append(events, evs...)
	}

	assignEventIDs(cur.Turn, events)
	return cur, events
}
