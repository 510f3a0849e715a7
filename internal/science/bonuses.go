// Empire-wide additive bonuses granted by discoveries. Never retroactive:
// they apply at the moment new ships or caps are computed.
package science

// BonusKey names one empire bonus channel. Ship-stat keys feed ship design;
// infra-cap keys raise build ceilings.
type BonusKey string

const (
	BonusShipSpeed    BonusKey = "ship.speed"
	BonusShipArmor    BonusKey = "ship.armor"
	BonusShipShields  BonusKey = "ship.shields"
	BonusShipWeapons  BonusKey = "ship.weapons"
	BonusShipCargo    BonusKey = "ship.cargo"
	BonusCapMining    BonusKey = "cap.mining"
	BonusCapIndustry  BonusKey = "cap.industry"
	BonusCapScience   BonusKey = "cap.science"
	BonusCapTransport BonusKey = "cap.transport"
)

// Bonuses is the cumulative empire bonus bundle. Mutated only by discovery
// application.
type Bonuses map[BonusKey]float64

// Add folds another bonus set in additively.
func (b Bonuses) Add(other map[BonusKey]float64) {
	for k, v := range other {
		b[k] += v
	}
}

// Clone returns an independent copy.
func (b Bonuses) Clone() Bonuses {
	c := make(Bonuses, len(b))
	for k, v := range b {
		c[k] = v
	}
	return c
}
