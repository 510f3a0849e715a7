// Corporate phase: autonomous per-corporation investment and acquisition.
// Decisions read the markets published by the previous turn's production
// phase; both paths rebuild state rather than mutating their input.
package engine

import (
	"fmt"

	"github.com/talgya/starhold/internal/colony"
	"github.com/talgya/starhold/internal/corp"
	"github.com/talgya/starhold/internal/econ"
	"github.com/talgya/starhold/internal/rng"
)

func corporatePhase(st *State, _ rng.Source) (*State, []Event) {
	ns := st.Clone()
	var events []Event

	for _, id := range ns.CorporationIDs() {
		c, ok := ns.Corporations[id]
		if !ok {
			continue // absorbed earlier in this phase
		}
		events = append(events, investCorporation(ns, c)...)
		events = append(events, attemptAcquisition(ns, c)...)
	}

	return ns, events
}

// investTarget is one eligible (colony, domain) pair.
type investTarget struct {
	colonyID string
	domain   econ.Domain
}

// investCorporation runs the investment path: find sector deficits, map them
// to producing domains, filter by the eligibility rules, and buy one level
// in the highest-dynamism colony. Insufficient capital or no target is a
// quiet no-op.
func investCorporation(ns *State, c *corp.Corporation) []Event {
	if c.Capital < corp.InvestmentCost {
		return nil
	}

	target, ok := pickInvestment(ns, c)
	if !ok {
		return nil
	}

	col := ns.Colonies[target.colonyID]
	inf := col.Infra(target.domain)
	// A first investment in the domain creates the record; it needs its real
	// cap, not the zero value, or it reads as saturated until the next
	// population change recomputes caps.
	best, hasDep := ns.Deposits(col)[target.domain]
	inf.Cap = econ.InfrastructureCap(target.domain, col.Population, best, hasDep)
	inf.Corporate[c.ID]++
	c.Capital -= corp.InvestmentCost
	if !c.Present(col.PlanetID) {
		c.PresentPlanets = append(c.PresentPlanets, col.PlanetID)
	}

	return []Event{{
		Turn:     ns.Turn,
		Priority: Info,
		Category: "corporation",
		Title:    fmt.Sprintf("%s invests in %s", c.Name, col.Name),
		Description: fmt.Sprintf("%s funds a new %s level on %s to chase the sector deficit.",
			c.Name, target.domain, col.Name),
		RelatedIDs: []string{c.ID, col.ID},
	}}
}

// pickInvestment assembles the eligible target list and prefers the colony
// with the highest dynamism; ties settle on scan order, which is
// deterministic.
func pickInvestment(ns *State, c *corp.Corporation) (investTarget, bool) {
	var best investTarget
	bestDynamism := -1

	for _, sectorID := range ns.SectorIDs() {
		market, ok := ns.Markets[sectorID]
		if !ok {
			continue
		}
		deficits := market.Deficits()
		if len(deficits) == 0 {
			continue
		}
		deficitSet := make(map[econ.Resource]bool, len(deficits))
		for _, r := range deficits {
			deficitSet[r] = true
		}

		for _, res := range deficits {
			d, ok := econ.ProducerOf(res)
			if !ok {
				continue
			}
			if !domainEligible(ns, c, sectorID, d, deficitSet) {
				continue
			}
			for _, colID := range ns.ColonyIDs() {
				col := ns.Colonies[colID]
				if col.SectorID != sectorID {
					continue
				}
				if !colonyEligible(ns, c, col, d) {
					continue
				}
				if col.Attributes.Dynamism > bestDynamism {
					bestDynamism = col.Attributes.Dynamism
					best = investTarget{colonyID: colID, domain: d}
				}
			}
		}
	}

	return best, bestDynamism >= 0
}

// domainEligible applies the domain-level rejection rules: the specialty
// gate below level 3, the starved-manufacturing rule, and the
// no-deposit-in-sector rule for extraction.
func domainEligible(ns *State, c *corp.Corporation, sectorID string, d econ.Domain, deficits map[econ.Resource]bool) bool {
	if c.Level <= 2 && !c.Type.IsSpecialty(d) {
		return false
	}
	if d.IsManufacturing() {
		// Pointless to expand a chain whose own inputs are missing.
		for _, input := range d.Inputs() {
			if deficits[input] {
				return false
			}
		}
	}
	if d.IsExtraction() {
		found := false
		for _, p := range ns.Planets {
			if p.SectorID != sectorID {
				continue
			}
			if _, ok := p.BestDeposit(d); ok {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// colonyEligible checks the per-colony caps: the domain's infrastructure cap
// and the corporation's ownership cap (level × 4) in that colony.
func colonyEligible(ns *State, c *corp.Corporation, col *colony.Colony, d econ.Domain) bool {
	best, hasDep := ns.Deposits(col)[d]
	cap := econ.InfrastructureCap(d, col.Population, best, hasDep)
	current := col.Level(d)
	if !econ.Uncapped(cap) && current >= cap {
		return false
	}
	if CorporateInfraInColony(col, c.ID) >= c.OwnershipCap() {
		return false
	}
	return true
}

// attemptAcquisition runs the acquisition path, independent of whether the
// investment path fired. A level ≥ 6 corporation may absorb one at least 3
// levels below it for target level × 5 capital, preferring the target with
// the most total infrastructure.
func attemptAcquisition(ns *State, buyer *corp.Corporation) []Event {
	if buyer.Level < corp.AcquisitionMinLevel {
		return nil
	}

	var target *corp.Corporation
	bestInfra := -1
	for _, id := range ns.CorporationIDs() {
		cand := ns.Corporations[id]
		if cand.ID == buyer.ID {
			continue
		}
		if buyer.Level-cand.Level < corp.AcquisitionMinGap {
			continue
		}
		if buyer.Capital < cand.Level*corp.AcquisitionCostMul {
			continue
		}
		if infra := ns.CorporateInfraTotal(cand.ID); infra > bestInfra {
			bestInfra = infra
			target = cand
		}
	}
	if target == nil {
		return nil
	}

	cost := target.Level * corp.AcquisitionCostMul
	buyer.Capital -= cost
	if buyer.Level < corp.MaxLevel {
		buyer.Level++
	}

	// Merge holdings: colony infrastructure, artifacts, presence.
	for _, col := range ns.Colonies {
		for _, inf := range col.Infrastructure {
			if lv, ok := inf.Corporate[target.ID]; ok {
				inf.Corporate[buyer.ID] += lv
				delete(inf.Corporate, target.ID)
			}
		}
	}
	for _, sch := range ns.Schematics {
		if sch.OwnerID == target.ID {
			sch.OwnerID = buyer.ID
		}
	}
	for _, p := range ns.Patents {
		if p.OwnerID == target.ID {
			p.OwnerID = buyer.ID
		}
	}
	for _, planetID := range target.PresentPlanets {
		if !buyer.Present(planetID) {
			buyer.PresentPlanets = append(buyer.PresentPlanets, planetID)
		}
	}
	delete(ns.Corporations, target.ID)

	return []Event{{
		Turn:     ns.Turn,
		Priority: Warning,
		Category: "corporation",
		Title:    fmt.Sprintf("%s absorbs %s", buyer.Name, target.Name),
		Description: fmt.Sprintf("%s pays %d BP to acquire %s, inheriting its holdings across the empire.",
			buyer.Name, cost, target.Name),
		RelatedIDs: []string{buyer.ID, target.ID},
	}}
}
