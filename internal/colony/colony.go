// Package colony models settlements: population, attributes, per-domain
// infrastructure, modifiers, and the growth mechanics that change them.
package colony

import (
	"github.com/talgya/starhold/internal/econ"
)

// Attributes is the bundle of colony-level qualities. Values are small
// non-negative integers (0–5 in practice); Dynamism drives organic growth,
// Stability scales tax revenue.
type Attributes struct {
	Habitability  int `json:"habitability"`
	Accessibility int `json:"accessibility"`
	Dynamism      int `json:"dynamism"`
	QualityOfLife int `json:"quality_of_life"`
	Stability     int `json:"stability"`
}

// Modifier is a temporary or permanent local effect on a colony. OutputBonus
// adds to the output multiplier of the matching domain (a "+0.5 Mining
// output" modifier has Domain=Mining, OutputBonus=0.5).
type Modifier struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Domain      econ.Domain `json:"domain"`
	OutputBonus float64     `json:"output_bonus"`
}

// Infrastructure tracks one (colony, domain) pair: the public/corporate
// ownership split and the current capacity ceiling. Total owned levels never
// exceed Cap unless Cap is the uncapped sentinel (-1).
type Infrastructure struct {
	Domain    econ.Domain    `json:"domain"`
	Public    int            `json:"public"`
	Corporate map[string]int `json:"corporate"` // corporation ID → owned levels
	Cap       int            `json:"cap"`
}

// Total returns public plus all corporate-owned levels.
func (inf *Infrastructure) Total() int {
	t := inf.Public
	for _, lv := range inf.Corporate {
		t += lv
	}
	return t
}

// BelowCap reports whether another level can be added.
func (inf *Infrastructure) BelowCap() bool {
	return econ.Uncapped(inf.Cap) || inf.Total() < inf.Cap
}

// Clone returns an independent deep copy.
func (inf *Infrastructure) Clone() *Infrastructure {
	c := *inf
	c.Corporate = make(map[string]int, len(inf.Corporate))
	for id, lv := range inf.Corporate {
		c.Corporate[id] = lv
	}
	return &c
}

// Colony is a populated settlement on a planet.
type Colony struct {
	ID             string                          `json:"id"`
	Name           string                          `json:"name"`
	PlanetID       string                          `json:"planet_id"`
	SectorID       string                          `json:"sector_id"`
	Population     int                             `json:"population"` // ≥ 1, capped by planet size
	Growth         int                             `json:"growth"`     // signed growth accumulator
	Attributes     Attributes                      `json:"attributes"`
	Infrastructure map[econ.Domain]*Infrastructure `json:"infrastructure"`
	Modifiers      []Modifier                      `json:"modifiers"`
	FoundedTurn    int                             `json:"founded_turn"`
}

// Level returns the total infrastructure level for a domain, zero when the
// colony has never built there.
func (c *Colony) Level(d econ.Domain) int {
	if inf, ok := c.Infrastructure[d]; ok {
		return inf.Total()
	}
	return 0
}

// Infra returns the infrastructure record for d, creating an empty one on
// the colony if absent.
func (c *Colony) Infra(d econ.Domain) *Infrastructure {
	if inf, ok := c.Infrastructure[d]; ok {
		return inf
	}
	inf := &Infrastructure{Domain: d, Corporate: map[string]int{}}
	c.Infrastructure[d] = inf
	return inf
}

// OutputMods resolves the additive output modifiers per domain: 1.0 base
// plus every matching modifier's bonus.
func (c *Colony) OutputMods() map[econ.Domain]float64 {
	mods := make(map[econ.Domain]float64)
	for _, m := range c.Modifiers {
		if _, ok := mods[m.Domain]; !ok {
			mods[m.Domain] = 1.0
		}
		mods[m.Domain] += m.OutputBonus
	}
	return mods
}

// FlowInput assembles the calculator input for this colony given its
// planet's deposits.
func (c *Colony) FlowInput(deposits map[econ.Domain]econ.Richness) econ.FlowInput {
	levels := make(map[econ.Domain]int, len(c.Infrastructure))
	for d, inf := range c.Infrastructure {
		levels[d] = inf.Total()
	}
	return econ.FlowInput{
		Population: c.Population,
		Levels:     levels,
		OutputMods: c.OutputMods(),
		Deposits:   deposits,
	}
}

// RecomputeCaps refreshes every infrastructure cap from the formulas:
// Civilian uncapped, extraction bounded by the best matching deposit,
// everything else by population. Called after population changes and at
// founding.
func (c *Colony) RecomputeCaps(deposits map[econ.Domain]econ.Richness) {
	for d, inf := range c.Infrastructure {
		best, ok := deposits[d]
		inf.Cap = econ.InfrastructureCap(d, c.Population, best, ok)
	}
}

// Clone returns an independent deep copy of the colony.
func (c *Colony) Clone() *Colony {
	cp := *c
	cp.Infrastructure = make(map[econ.Domain]*Infrastructure, len(c.Infrastructure))
	for d, inf := range c.Infrastructure {
		cp.Infrastructure[d] = inf.Clone()
	}
	cp.Modifiers = append([]Modifier(nil), c.Modifiers...)
	return &cp
}
