// Production phase: compute every colony's resource flows for the turn and
// publish the refreshed sector markets. Taxation rides the same file since
// it reads the same per-colony walk.
package engine

import (
	"fmt"

	"github.com/talgya/starhold/internal/econ"
	"github.com/talgya/starhold/internal/rng"
)

func productionPhase(st *State, _ rng.Source) (*State, []Event) {
	ns := st.Clone()
	var events []Event

	markets := make(map[string]*econ.Market, len(ns.Sectors))
	for _, sectorID := range ns.SectorIDs() {
		markets[sectorID] = econ.NewMarket(sectorID)
	}

	ns.Flows = make(map[string]*econ.Result, len(ns.Colonies))
	for _, colID := range ns.ColonyIDs() {
		col := ns.Colonies[colID]
		res := econ.Flow(col.FlowInput(ns.Deposits(col)))
		ns.Flows[colID] = res

		if m, ok := markets[col.SectorID]; ok {
			m.Absorb(res)
		}

		if res.Get(econ.Food).Surplus < 0 {
			events = append(events, Event{
				Turn:     ns.Turn,
				Priority: Critical,
				Category: "colony",
				Title:    fmt.Sprintf("Food shortage on %s", col.Name),
				Description: fmt.Sprintf("%s consumes more food than it produces; population growth will reverse.",
					col.Name),
				RelatedIDs: []string{col.ID},
			})
		}
	}

	ns.Markets = markets
	return ns, events
}

func taxationPhase(st *State, _ rng.Source) (*State, []Event) {
	ns := st.Clone()

	const baseTaxRate = 2 // BP per population level at full stability
	total := 0
	for _, colID := range ns.ColonyIDs() {
		col := ns.Colonies[colID]
		total += econ.TaxRevenue(col.Population, baseTaxRate, float64(col.Attributes.Stability)/5)
	}
	ns.Treasury += total

	if total == 0 {
		return ns, nil
	}
	return ns, []Event{{
		Turn:        ns.Turn,
		Priority:    Info,
		Category:    "economy",
		Title:       "Tax revenue collected",
		Description: fmt.Sprintf("Colonial taxation adds %d BP to the treasury.", total),
	}}
}
