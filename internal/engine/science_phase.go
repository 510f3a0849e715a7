// Science phase: aggregate empire output, distribute points across the nine
// domains, resolve level-ups, and re-version schematics whose domain
// advanced.
package engine

import (
	"fmt"

	"github.com/talgya/starhold/internal/rng"
	"github.com/talgya/starhold/internal/science"
)

func sciencePhase(st *State, _ rng.Source) (*State, []Event) {
	ns := st.Clone()
	var events []Event

	total := ns.EmpireScienceOutput()
	alloc := science.Distribute(ns.Science, total)

	for _, f := range science.AllFields {
		ds, ok := ns.Science[f]
		if !ok {
			continue
		}
		before := ds.Level
		gained := ds.Advance(alloc[f])
		if gained == 0 {
			continue
		}

		for lvl := before + 1; lvl <= ds.Level; lvl++ {
			events = append(events, Event{
				Turn:     ns.Turn,
				Priority: Positive,
				Category: "science",
				Title:    fmt.Sprintf("%s reaches level %d", f, lvl),
				Description: fmt.Sprintf("Breakthroughs push %s research to level %d; next threshold %d points.",
					f, lvl, (lvl+1)*15),
			})
		}

		events = append(events, reversionSchematics(ns, f, ds.Level)...)
	}

	return ns, events
}

// reversionSchematics upgrades every schematic owned in the advanced domain
// and emits one event per schematic.
func reversionSchematics(ns *State, f science.Field, newLevel int) []Event {
	var events []Event
	for _, id := range ns.SchematicIDs() {
		sch := ns.Schematics[id]
		if sch.Field != f {
			continue
		}
		sch.Reversion(newLevel)
		events = append(events, Event{
			Turn:     ns.Turn,
			Priority: Info,
			Category: "science",
			Title:    fmt.Sprintf("Schematic updated: %s", sch.Name),
			Description: fmt.Sprintf("%s advances carry the %s design to level %d (iteration %d).",
				f, sch.Name, sch.Level, sch.Iteration),
			RelatedIDs: []string{sch.ID, sch.OwnerID},
		})
	}
	return events
}
