// Package corp models corporations and the artifacts they own: schematics,
// patents, and discovery records.
package corp

import (
	"github.com/talgya/starhold/internal/econ"
	"github.com/talgya/starhold/internal/science"
)

// Type determines a corporation's specialty domains.
type Type uint8

const (
	AgriCorp Type = iota
	MiningConsortium
	IndustrialCombine
	TechSyndicate
	LogisticsGroup
	ExplorationVenture
)

var typeNames = map[Type]string{
	AgriCorp:           "Agricultural Corporation",
	MiningConsortium:   "Mining Consortium",
	IndustrialCombine:  "Industrial Combine",
	TechSyndicate:      "Tech Syndicate",
	LogisticsGroup:     "Logistics Group",
	ExplorationVenture: "Exploration Venture",
}

func (t Type) String() string { return typeNames[t] }

// specialties maps each type to the domains it may invest in from level 1.
// ExplorationVenture has no specialties and can never invest below level 3.
var specialties = map[Type][]econ.Domain{
	AgriCorp:           {econ.Agriculture},
	MiningConsortium:   {econ.Mining, econ.DeepMining, econ.GasExtraction},
	IndustrialCombine:  {econ.LowIndustry, econ.HeavyIndustry},
	TechSyndicate:      {econ.HighTechIndustry, econ.Science},
	LogisticsGroup:     {econ.Transport, econ.SpaceIndustry},
	ExplorationVenture: {},
}

// Specialties returns the domains a type favors.
func (t Type) Specialties() []econ.Domain { return specialties[t] }

// IsSpecialty reports whether d belongs to the type's specialty set.
func (t Type) IsSpecialty(d econ.Domain) bool {
	for _, s := range specialties[t] {
		if s == d {
			return true
		}
	}
	return false
}

// Level and cost constants.
const (
	MaxLevel            = 10
	InvestmentCost      = 2 // capital per infrastructure level bought
	OwnershipCapPerLvl  = 4 // owned levels per colony ≤ level × 4
	AcquisitionMinLevel = 6
	AcquisitionMinGap   = 3
	AcquisitionCostMul  = 5 // capital cost = target level × 5
)

// Corporation is an autonomous economic actor.
type Corporation struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Type           Type     `json:"type"`
	Level          int      `json:"level"`   // 1–10
	Capital        int      `json:"capital"` // non-negative
	Traits         []string `json:"traits"`
	HomePlanetID   string   `json:"home_planet_id"`
	PresentPlanets []string `json:"present_planets"`
}

// OwnershipCap is the most infrastructure the corporation may own in one
// colony.
func (c *Corporation) OwnershipCap() int { return c.Level * OwnershipCapPerLvl }

// ArtifactCap bounds how many schematics (and separately patents) the
// corporation may hold.
func (c *Corporation) ArtifactCap() int { return c.Level / 2 }

// Present reports whether the corporation already operates on a planet.
func (c *Corporation) Present(planetID string) bool {
	for _, p := range c.PresentPlanets {
		if p == planetID {
			return true
		}
	}
	return false
}

// Clone returns an independent deep copy.
func (c *Corporation) Clone() *Corporation {
	cp := *c
	cp.Traits = append([]string(nil), c.Traits...)
	cp.PresentPlanets = append([]string(nil), c.PresentPlanets...)
	return &cp
}

// Discovery is the immutable record of a one-time science unlock.
type Discovery struct {
	ID            string        `json:"id"`
	DefinitionID  string        `json:"definition_id"`
	Field         science.Field `json:"field"`
	CorporationID string        `json:"corporation_id"`
	Turn          int           `json:"turn"`
}

// Clone returns a copy. Discoveries are immutable but the snapshot clones
// everything it holds.
func (d *Discovery) Clone() *Discovery {
	cp := *d
	return &cp
}
