// New game bootstrap: generate a galaxy and seed the initial snapshot with
// colonies, corporations, and a small survey fleet. Deterministic from the
// seed so a fresh game is as replayable as a loaded one.
package engine

import (
	"fmt"
	"sort"

	"github.com/talgya/starhold/internal/colony"
	"github.com/talgya/starhold/internal/corp"
	"github.com/talgya/starhold/internal/econ"
	"github.com/talgya/starhold/internal/galaxy"
	"github.com/talgya/starhold/internal/rng"
	"github.com/talgya/starhold/internal/science"
)

// startingTypes cycles corporation types across sectors at founding.
var startingTypes = []corp.Type{
	corp.AgriCorp, corp.MiningConsortium, corp.IndustrialCombine,
	corp.TechSyndicate, corp.LogisticsGroup, corp.ExplorationVenture,
}

// NewGame builds a turn-zero snapshot from a generated galaxy.
func NewGame(cfg galaxy.GenConfig) *State {
	sectors, planets := galaxy.Generate(cfg)
	src := rng.NewSeeded(cfg.Seed)

	st := &State{
		Turn:         0,
		Sectors:      sectors,
		Planets:      planets,
		Colonies:     map[string]*colony.Colony{},
		Corporations: map[string]*corp.Corporation{},
		Science:      science.NewDomainStates(),
		Bonuses:      science.Bonuses{},
		Markets:      map[string]*econ.Market{},
		Flows:        map[string]*econ.Result{},
		Discoveries:  map[string]*corp.Discovery{},
		Schematics:   map[string]*corp.Schematic{},
		Patents:      map[string]*corp.Patent{},
		Ships:        map[string]*Ship{},
		Missions:     map[string]*Mission{},
		Contracts:    map[string]*Contract{},
	}

	planetIDs := make([]string, 0, len(planets))
	for id := range planets {
		planetIDs = append(planetIDs, id)
	}
	sort.Strings(planetIDs)

	// Found a colony on the first two planets of each sector.
	founded := map[string]int{}
	colonyNum := 0
	for _, pid := range planetIDs {
		p := planets[pid]
		if founded[p.SectorID] >= 2 {
			continue
		}
		founded[p.SectorID]++
		colonyNum++

		col := &colony.Colony{
			ID:         fmt.Sprintf("COL-%d", colonyNum),
			Name:       p.Name,
			PlanetID:   p.ID,
			SectorID:   p.SectorID,
			Population: 2,
			Attributes: colony.Attributes{
				Habitability:  2 + int(src.Float()*3),
				Accessibility: 1 + int(src.Float()*3),
				Dynamism:      1 + int(src.Float()*3),
				QualityOfLife: 2 + int(src.Float()*2),
				Stability:     2 + int(src.Float()*3),
			},
			Infrastructure: map[econ.Domain]*colony.Infrastructure{},
			FoundedTurn:    0,
		}

		deposits := p.DepositDomains()
		seedLevels := map[econ.Domain]int{
			econ.Civilian:    6,
			econ.Transport:   2,
			econ.Science:     1,
			econ.LowIndustry: 1,
		}
		for d := range deposits {
			seedLevels[d] = 2
		}
		for d, lv := range seedLevels {
			inf := col.Infra(d)
			inf.Public = lv
		}
		col.RecomputeCaps(deposits)
		st.Colonies[col.ID] = col
	}

	// One founding corporation per sector, types cycling.
	for i, sectorID := range st.SectorIDs() {
		t := startingTypes[i%len(startingTypes)]
		home := ""
		for _, pid := range planetIDs {
			if planets[pid].SectorID == sectorID {
				home = pid
				break
			}
		}
		c := &corp.Corporation{
			ID:             fmt.Sprintf("CORP-%d", i+1),
			Name:           fmt.Sprintf("%s %s", sectors[sectorID].Name, t),
			Type:           t,
			Level:          1 + int(src.Float()*3),
			Capital:        10,
			HomePlanetID:   home,
			PresentPlanets: []string{home},
		}
		st.Corporations[c.ID] = c
	}

	// A small survey fleet in the first sector.
	sectorIDs := st.SectorIDs()
	if len(sectorIDs) > 0 {
		for i := 1; i <= 2; i++ {
			ship := &Ship{
				ID:       fmt.Sprintf("SHP-%d", i),
				Name:     fmt.Sprintf("Surveyor %d", i),
				SectorID: sectorIDs[0],
				Status:   ShipIdle,
			}
			st.Ships[ship.ID] = ship
		}
	}

	return st
}
