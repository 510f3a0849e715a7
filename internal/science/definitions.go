// Discovery definition catalog. Each definition is a one-time unlock gated
// by its domain's level; the generators draw from the still-undiscovered
// subset at or below the current level.
package science

// Definition describes one potential discovery.
type Definition struct {
	ID         string
	Name       string
	Field      Field
	MinLevel   int
	Bonuses    map[BonusKey]float64
	Categories []string // schematic categories unlocked empire-wide
}

// Catalog is the full definition table, ordered by field then level so pool
// assembly is deterministic.
var Catalog = []Definition{
	{ID: "fusion-lattice", Name: "Fusion Lattice Containment", Field: Energy, MinLevel: 1,
		Bonuses: map[BonusKey]float64{BonusShipSpeed: 1}},
	{ID: "zero-point-tap", Name: "Zero-Point Tap", Field: Energy, MinLevel: 3,
		Bonuses: map[BonusKey]float64{BonusShipSpeed: 1, BonusShipWeapons: 1}, Categories: []string{"reactor"}},
	{ID: "dense-alloys", Name: "Dense Alloy Forging", Field: Materials, MinLevel: 1,
		Bonuses: map[BonusKey]float64{BonusShipArmor: 1}},
	{ID: "self-healing-hull", Name: "Self-Healing Hull Weave", Field: Materials, MinLevel: 3,
		Bonuses: map[BonusKey]float64{BonusShipArmor: 2}, Categories: []string{"hull"}},
	{ID: "deep-bore-rigs", Name: "Deep-Bore Mining Rigs", Field: Materials, MinLevel: 2,
		Bonuses: map[BonusKey]float64{BonusCapMining: 2}},
	{ID: "hydroponic-strains", Name: "Hydroponic Crop Strains", Field: Biotech, MinLevel: 1,
		Bonuses: map[BonusKey]float64{BonusCapIndustry: 1}},
	{ID: "cryo-revival", Name: "Cryogenic Revival Protocol", Field: Biotech, MinLevel: 3,
		Bonuses: map[BonusKey]float64{BonusShipCargo: 1}, Categories: []string{"life-support"}},
	{ID: "lattice-cores", Name: "Lattice Computing Cores", Field: Computing, MinLevel: 1,
		Bonuses: map[BonusKey]float64{BonusCapScience: 1}},
	{ID: "predictive-swarms", Name: "Predictive Logistics Swarms", Field: Computing, MinLevel: 2,
		Bonuses: map[BonusKey]float64{BonusCapTransport: 1}, Categories: []string{"avionics"}},
	{ID: "pulse-drives", Name: "Pulse Drive Arrays", Field: Propulsion, MinLevel: 1,
		Bonuses: map[BonusKey]float64{BonusShipSpeed: 2}, Categories: []string{"drive"}},
	{ID: "gravity-wells", Name: "Artificial Gravity Wells", Field: Propulsion, MinLevel: 4,
		Bonuses: map[BonusKey]float64{BonusShipSpeed: 1, BonusShipCargo: 2}},
	{ID: "coil-batteries", Name: "Coilgun Batteries", Field: Weapons, MinLevel: 1,
		Bonuses: map[BonusKey]float64{BonusShipWeapons: 2}, Categories: []string{"weapons"}},
	{ID: "phased-lances", Name: "Phased Particle Lances", Field: Weapons, MinLevel: 3,
		Bonuses: map[BonusKey]float64{BonusShipWeapons: 3}},
	{ID: "deflector-mesh", Name: "Deflector Mesh", Field: Shields, MinLevel: 1,
		Bonuses: map[BonusKey]float64{BonusShipShields: 1}, Categories: []string{"shields"}},
	{ID: "harmonic-barriers", Name: "Harmonic Barriers", Field: Shields, MinLevel: 3,
		Bonuses: map[BonusKey]float64{BonusShipShields: 2}},
	{ID: "orbital-scaffolds", Name: "Orbital Scaffolding", Field: Construction, MinLevel: 1,
		Bonuses: map[BonusKey]float64{BonusCapIndustry: 2}},
	{ID: "arcology-frames", Name: "Arcology Frames", Field: Construction, MinLevel: 3,
		Bonuses: map[BonusKey]float64{BonusCapIndustry: 1, BonusCapTransport: 1}},
	{ID: "guild-charters", Name: "Guild Charters", Field: Sociology, MinLevel: 1,
		Bonuses: map[BonusKey]float64{BonusCapScience: 1}},
	{ID: "stellar-accords", Name: "Stellar Accords", Field: Sociology, MinLevel: 4,
		Bonuses: map[BonusKey]float64{BonusCapScience: 1, BonusCapTransport: 1}, Categories: []string{"diplomacy"}},
}

// AvailablePool returns every definition in f at or below level whose ID is
// not already in the discovered set, preserving Catalog order.
func AvailablePool(f Field, level int, discovered map[string]bool) []Definition {
	var pool []Definition
	for _, def := range Catalog {
		if def.Field != f || def.MinLevel > level {
			continue
		}
		if discovered[def.ID] {
			continue
		}
		pool = append(pool, def)
	}
	return pool
}
