// Package engine holds the turn snapshot and the fixed-order phase pipeline
// that advances it. Every phase is a pure (state) → (state, events)
// transformation; the pipeline owns the top-level snapshot and nothing
// retains references into a caller's copy.
package engine

import (
	"sort"

	"github.com/talgya/starhold/internal/colony"
	"github.com/talgya/starhold/internal/corp"
	"github.com/talgya/starhold/internal/econ"
	"github.com/talgya/starhold/internal/galaxy"
	"github.com/talgya/starhold/internal/science"
)

// ShipStatus tracks whether a ship can take new orders.
type ShipStatus uint8

const (
	ShipIdle ShipStatus = iota
	ShipOnMission
)

// Ship is a minimal fleet record, enough to validate survey orders against.
type Ship struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	SectorID string     `json:"sector_id"`
	Status   ShipStatus `json:"status"`
}

// Clone returns an independent copy.
func (s *Ship) Clone() *Ship {
	cp := *s
	return &cp
}

// Mission is a player-created survey assignment.
type Mission struct {
	ID          string   `json:"id"`
	SectorID    string   `json:"sector_id"`
	ShipIDs     []string `json:"ship_ids"`
	CreatedTurn int      `json:"created_turn"`
}

// Clone returns an independent deep copy.
func (m *Mission) Clone() *Mission {
	cp := *m
	cp.ShipIDs = append([]string(nil), m.ShipIDs...)
	return &cp
}

// Contract is a player-created standing supply order.
type Contract struct {
	ID            string        `json:"id"`
	SectorID      string        `json:"sector_id"`
	CorporationID string        `json:"corporation_id"`
	Resource      econ.Resource `json:"resource"`
	Amount        int           `json:"amount"`
	CreatedTurn   int           `json:"created_turn"`
}

// Clone returns an independent copy.
func (c *Contract) Clone() *Contract {
	cp := *c
	return &cp
}

// State is the full immutable snapshot one turn operates on. Phases receive
// a State and return a new one; callers may retain or discard the input.
type State struct {
	Turn     int `json:"turn"`
	Treasury int `json:"treasury"` // empire BP pool fed by taxation

	Sectors      map[string]*galaxy.Sector              `json:"sectors"`
	Planets      map[string]*galaxy.Planet              `json:"planets"`
	Colonies     map[string]*colony.Colony              `json:"colonies"`
	Corporations map[string]*corp.Corporation           `json:"corporations"`
	Science      map[science.Field]*science.DomainState `json:"science"`
	Bonuses      science.Bonuses                        `json:"bonuses"`
	Markets      map[string]*econ.Market                `json:"markets"` // sector ID → last computed market
	Flows        map[string]*econ.Result                `json:"flows"`   // colony ID → this turn's flows

	Discoveries map[string]*corp.Discovery `json:"discoveries"`
	Schematics  map[string]*corp.Schematic `json:"schematics"`
	Patents     map[string]*corp.Patent    `json:"patents"`

	Ships     map[string]*Ship     `json:"ships"`
	Missions  map[string]*Mission  `json:"missions"`
	Contracts map[string]*Contract `json:"contracts"`
}

// Clone returns a deep copy sharing nothing with the receiver.
func (st *State) Clone() *State {
	c := &State{
		Turn:         st.Turn,
		Treasury:     st.Treasury,
		Sectors:      make(map[string]*galaxy.Sector, len(st.Sectors)),
		Planets:      make(map[string]*galaxy.Planet, len(st.Planets)),
		Colonies:     make(map[string]*colony.Colony, len(st.Colonies)),
		Corporations: make(map[string]*corp.Corporation, len(st.Corporations)),
		Science:      make(map[science.Field]*science.DomainState, len(st.Science)),
		Bonuses:      st.Bonuses.Clone(),
		Markets:      make(map[string]*econ.Market, len(st.Markets)),
		Flows:        make(map[string]*econ.Result, len(st.Flows)),
		Discoveries:  make(map[string]*corp.Discovery, len(st.Discoveries)),
		Schematics:   make(map[string]*corp.Schematic, len(st.Schematics)),
		Patents:      make(map[string]*corp.Patent, len(st.Patents)),
		Ships:        make(map[string]*Ship, len(st.Ships)),
		Missions:     make(map[string]*Mission, len(st.Missions)),
		Contracts:    make(map[string]*Contract, len(st.Contracts)),
	}
	for id, s := range st.Sectors {
		c.Sectors[id] = s.Clone()
	}
	for id, p := range st.Planets {
		c.Planets[id] = p.Clone()
	}
	for id, col := range st.Colonies {
		c.Colonies[id] = col.Clone()
	}
	for id, co := range st.Corporations {
		c.Corporations[id] = co.Clone()
	}
	for f, ds := range st.Science {
		c.Science[f] = ds.Clone()
	}
	for id, m := range st.Markets {
		c.Markets[id] = m.Clone()
	}
	for id, fl := range st.Flows {
		c.Flows[id] = cloneResult(fl)
	}
	for id, d := range st.Discoveries {
		c.Discoveries[id] = d.Clone()
	}
	for id, s := range st.Schematics {
		c.Schematics[id] = s.Clone()
	}
	for id, p := range st.Patents {
		c.Patents[id] = p.Clone()
	}
	for id, s := range st.Ships {
		c.Ships[id] = s.Clone()
	}
	for id, m := range st.Missions {
		c.Missions[id] = m.Clone()
	}
	for id, ct := range st.Contracts {
		c.Contracts[id] = ct.Clone()
	}
	return c
}

func cloneResult(r *econ.Result) *econ.Result {
	c := &econ.Result{Entries: append([]econ.Entry(nil), r.Entries...)}
	return c
}

// Deposits returns the colony's planet deposit map, empty when the planet is
// unknown.
func (st *State) Deposits(col *colony.Colony) map[econ.Domain]econ.Richness {
	p, ok := st.Planets[col.PlanetID]
	if !ok {
		return map[econ.Domain]econ.Richness{}
	}
	return p.DepositDomains()
}

// Deterministic iteration helpers. Map order is never relied on; every phase
// walks entities through these.

func (st *State) ColonyIDs() []string {
	ids := make([]string, 0, len(st.Colonies))
	for id := range st.Colonies {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (st *State) CorporationIDs() []string {
	ids := make([]string, 0, len(st.Corporations))
	for id := range st.Corporations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (st *State) SectorIDs() []string {
	ids := make([]string, 0, len(st.Sectors))
	for id := range st.Sectors {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (st *State) SchematicIDs() []string {
	ids := make([]string, 0, len(st.Schematics))
	for id := range st.Schematics {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// EmpireScienceOutput sums Science infrastructure (public + corporate)
// across every colony.
func (st *State) EmpireScienceOutput() int {
	total := 0
	for _, col := range st.Colonies {
		total += col.Level(econ.Science)
	}
	return total
}

// CorporateScienceInfra sums the Science levels a corporation owns across
// all colonies.
func (st *State) CorporateScienceInfra(corpID string) int {
	total := 0
	for _, col := range st.Colonies {
		if inf, ok := col.Infrastructure[econ.Science]; ok {
			total += inf.Corporate[corpID]
		}
	}
	return total
}

// CorporateInfraInColony sums the levels a corporation owns in one colony
// across all domains.
func CorporateInfraInColony(col *colony.Colony, corpID string) int {
	total := 0
	for _, inf := range col.Infrastructure {
		total += inf.Corporate[corpID]
	}
	return total
}

// CorporateInfraTotal sums the levels a corporation owns everywhere.
func (st *State) CorporateInfraTotal(corpID string) int {
	total := 0
	for _, col := range st.Colonies {
		total += CorporateInfraInColony(col, corpID)
	}
	return total
}
