// Growth phase: population growth ticks and organic infrastructure growth,
// driven by the flows the production phase just computed.
package engine

import (
	"fmt"

	"github.com/talgya/starhold/internal/colony"
	"github.com/talgya/starhold/internal/econ"
	"github.com/talgya/starhold/internal/rng"
)

func growthPhase(st *State, src rng.Source) (*State, []Event) {
	ns := st.Clone()
	var events []Event

	for _, colID := range ns.ColonyIDs() {
		col := ns.Colonies[colID]
		flows, ok := ns.Flows[colID]
		if !ok {
			continue
		}

		maxPop := 0
		if p, pok := ns.Planets[col.PlanetID]; pok {
			maxPop = p.Size
		}

		delta := colony.GrowthDelta(col.Attributes, flows)
		tick := colony.GrowthTick(col.Population, col.Growth, delta, maxPop, col.Level(econ.Civilian))
		col.Population = tick.Population
		col.Growth = tick.Accumulator

		switch tick.Outcome {
		case colony.LevelUp:
			col.RecomputeCaps(ns.Deposits(col))
			events = append(events, Event{
				Turn:     ns.Turn,
				Priority: Positive,
				Category: "colony",
				Title:    fmt.Sprintf("%s grows to population %d", col.Name, col.Population),
				Description: fmt.Sprintf("Immigration and births push %s to population level %d.",
					col.Name, col.Population),
				RelatedIDs: []string{col.ID},
			})
		case colony.LevelDown:
			col.RecomputeCaps(ns.Deposits(col))
			events = append(events, Event{
				Turn:     ns.Turn,
				Priority: Critical,
				Category: "colony",
				Title:    fmt.Sprintf("%s shrinks to population %d", col.Name, col.Population),
				Description: fmt.Sprintf("Hardship drives people away; %s drops to population level %d.",
					col.Name, col.Population),
				RelatedIDs: []string{col.ID},
			})
		}

		organic := colony.OrganicGrowth(col, flows.Shortages(), src)
		if organic.Triggered {
			col.Infra(organic.Domain).Public++
			events = append(events, Event{
				Turn:     ns.Turn,
				Priority: Info,
				Category: "colony",
				Title:    fmt.Sprintf("Private builders expand %s on %s", organic.Domain, col.Name),
				Description: fmt.Sprintf("Local entrepreneurs add a %s level on %s without public funding.",
					organic.Domain, col.Name),
				RelatedIDs: []string{col.ID},
			})
		}
	}

	return ns, events
}
