// Production formula primitives. Stateless arithmetic only — the flow
// calculator and phases own all sequencing.
package econ

// Richness grades a planetary deposit.
type Richness uint8

const (
	Poor Richness = iota
	Moderate
	Rich
	Exceptional
)

var richnessNames = map[Richness]string{
	Poor:        "Poor",
	Moderate:    "Moderate",
	Rich:        "Rich",
	Exceptional: "Exceptional",
}

func (r Richness) String() string { return richnessNames[r] }

// DepositCap returns the infrastructure ceiling granted by a deposit tier.
func (r Richness) DepositCap() int {
	switch r {
	case Poor:
		return 5
	case Moderate:
		return 10
	case Rich:
		return 15
	case Exceptional:
		return 20
	}
	return 0
}

// Population consumption multipliers per population level.
const (
	FoodPerPop          = 2
	ConsumerGoodsPerPop = 1
	TransportPerPop     = 1
)

// ExtractionOutput computes raw production for an extraction domain.
// outputMod defaults to 1.0 and grows additively with matching colony
// modifiers.
func ExtractionOutput(level int, outputMod float64) int {
	if level <= 0 {
		return 0
	}
	out := int(float64(level) * outputMod)
	if out < 0 {
		out = 0
	}
	return out
}

// ManufacturingOutput computes a manufacturing domain's production. Full
// output when every required input is covered this turn, floor(level/2)
// otherwise.
func ManufacturingOutput(level int, hasInputs bool) int {
	if level <= 0 {
		return 0
	}
	if hasInputs {
		return level
	}
	return level / 2
}

// FoodDemand is population-driven food consumption for one turn.
func FoodDemand(population int) int { return population * FoodPerPop }

// ConsumerGoodsDemand is population-driven consumer goods consumption.
func ConsumerGoodsDemand(population int) int { return population * ConsumerGoodsPerPop }

// TransportDemand is population-driven local transport consumption.
func TransportDemand(population int) int { return population * TransportPerPop }

// InfrastructureCap returns the build ceiling for a domain on a colony.
// Civilian is uncapped (-1). Extraction domains are capped by the best
// matching deposit; hasDeposit=false means no matching deposit at all.
// Everything else caps at population × 2. Empire bonuses and local modifiers
// stack on top of this base, outside these primitives.
func InfrastructureCap(d Domain, population int, best Richness, hasDeposit bool) int {
	switch {
	case d == Civilian:
		return -1
	case d.IsExtraction():
		if !hasDeposit {
			return 0
		}
		return best.DepositCap()
	default:
		return population * 2
	}
}

// Uncapped reports whether a cap value from InfrastructureCap means "no
// ceiling".
func Uncapped(cap int) bool { return cap < 0 }

// TaxRevenue computes per-turn colony tax income: population level times the
// base rate, scaled by stability. Stability 0 yields nothing; negative
// results clamp to zero.
func TaxRevenue(population int, baseRate int, stability float64) int {
	if population <= 0 || stability <= 0 {
		return 0
	}
	rev := int(float64(population*baseRate) * stability)
	if rev < 0 {
		rev = 0
	}
	return rev
}
