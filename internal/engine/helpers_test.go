package engine

import (
	"github.com/talgya/starhold/internal/colony"
	"github.com/talgya/starhold/internal/corp"
	"github.com/talgya/starhold/internal/econ"
	"github.com/talgya/starhold/internal/galaxy"
	"github.com/talgya/starhold/internal/science"
)

// fixtureState builds a one-sector snapshot with a single developed colony
// and one corporation, at turn 5. Tests mutate it freely.
func fixtureState() *State {
	sector := &galaxy.Sector{ID: "SEC-1", Name: "Meridian"}
	planet := &galaxy.Planet{
		ID: "PLN-1-1", Name: "Meridian I", SectorID: "SEC-1", Size: 5,
		Deposits: []galaxy.Deposit{
			{Domain: econ.Mining, Richness: econ.Rich},
			{Domain: econ.Agriculture, Richness: econ.Moderate},
		},
	}

	col := &colony.Colony{
		ID: "COL-1", Name: "Meridian I", PlanetID: "PLN-1-1", SectorID: "SEC-1",
		Population: 2,
		Attributes: colony.Attributes{
			Habitability: 3, Dynamism: 2, QualityOfLife: 3, Stability: 5,
		},
		Infrastructure: map[econ.Domain]*colony.Infrastructure{},
	}
	for d, lv := range map[econ.Domain]int{
		econ.Civilian:    6,
		econ.Agriculture: 6,
		econ.Mining:      2,
		econ.LowIndustry: 2,
		econ.Transport:   2,
		econ.Science:     2,
	} {
		col.Infra(d).Public = lv
	}
	col.RecomputeCaps(planet.DepositDomains())

	c := &corp.Corporation{
		ID: "CORP-1", Name: "Meridian Mining Consortium",
		Type: corp.MiningConsortium, Level: 2, Capital: 4,
		HomePlanetID: "PLN-1-1", PresentPlanets: []string{"PLN-1-1"},
	}

	return &State{
		Turn:         5,
		Sectors:      map[string]*galaxy.Sector{sector.ID: sector},
		Planets:      map[string]*galaxy.Planet{planet.ID: planet},
		Colonies:     map[string]*colony.Colony{col.ID: col},
		Corporations: map[string]*corp.Corporation{c.ID: c},
		Science:      science.NewDomainStates(),
		Bonuses:      science.Bonuses{},
		Markets:      map[string]*econ.Market{"SEC-1": econ.NewMarket("SEC-1")},
		Flows:        map[string]*econ.Result{},
		Discoveries:  map[string]*corp.Discovery{},
		Schematics:   map[string]*corp.Schematic{},
		Patents:      map[string]*corp.Patent{},
		Ships: map[string]*Ship{
			"SHP-1": {ID: "SHP-1", Name: "Surveyor 1", SectorID: "SEC-1", Status: ShipIdle},
			"SHP-2": {ID: "SHP-2", Name: "Surveyor 2", SectorID: "SEC-1", Status: ShipOnMission},
		},
		Missions:  map[string]*Mission{},
		Contracts: map[string]*Contract{},
	}
}

// withDeficit marks a sector-wide shortfall on the fixture's market.
func withDeficit(st *State, r econ.Resource, amount int) {
	st.Markets["SEC-1"].Net[r] = -amount
	st.Markets["SEC-1"].Consumed[r] = amount
}
