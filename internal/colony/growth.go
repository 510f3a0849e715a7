// Population growth tick and organic infrastructure growth.
package colony

import (
	"github.com/talgya/starhold/internal/econ"
	"github.com/talgya/starhold/internal/rng"
)

// GrowthOutcome is the result state of one growth tick.
type GrowthOutcome uint8

const (
	Growing GrowthOutcome = iota
	LevelUp
	LevelDown
)

func (o GrowthOutcome) String() string {
	switch o {
	case LevelUp:
		return "level-up"
	case LevelDown:
		return "level-down"
	}
	return "growing"
}

// GrowthTickResult carries the post-tick population and accumulator.
type GrowthTickResult struct {
	Outcome     GrowthOutcome
	Population  int
	Accumulator int
}

// Growth tick thresholds and resets.
const (
	growthLevelUpAt   = 10
	growthLevelDownAt = -1
	growthDownReset   = 9
)

// GrowthTick advances the growth accumulator by delta and resolves at most
// one population level change.
//
// LevelUp fires at accumulator ≥ 10 when population is below the planet
// maximum and civilian infrastructure covers the next level (≥ next pop × 2);
// population +1, accumulator resets to 0. When blocked the accumulator keeps
// its new value. LevelDown fires at accumulator ≤ −1 when population > 1;
// population −1, accumulator resets to 9. Population 1 never drops further.
func GrowthTick(population, accumulator, delta, maxPopulation, civilianLevel int) GrowthTickResult {
	acc := accumulator + delta

	if acc >= growthLevelUpAt {
		next := population + 1
		if population < maxPopulation && civilianLevel >= next*2 {
			return GrowthTickResult{Outcome: LevelUp, Population: next, Accumulator: 0}
		}
		return GrowthTickResult{Outcome: Growing, Population: population, Accumulator: acc}
	}

	if acc <= growthLevelDownAt {
		if population > 1 {
			return GrowthTickResult{Outcome: LevelDown, Population: population - 1, Accumulator: growthDownReset}
		}
		return GrowthTickResult{Outcome: Growing, Population: population, Accumulator: acc}
	}

	return GrowthTickResult{Outcome: Growing, Population: population, Accumulator: acc}
}

// GrowthDelta derives this turn's signed growth contribution from the
// colony's flow result: fed colonies grow, comfortable colonies grow faster,
// starving colonies shrink.
func GrowthDelta(attrs Attributes, flows *econ.Result) int {
	food := flows.Get(econ.Food).Surplus
	if food < 0 {
		return -2
	}
	delta := 1
	if attrs.QualityOfLife >= 3 && attrs.Habitability >= 3 {
		delta++
	}
	return delta
}

// OrganicResult reports a stochastic infrastructure growth attempt.
type OrganicResult struct {
	Triggered bool
	Domain    econ.Domain
}

// organicShortageWeight is the weight multiplier for domains whose product
// is currently in shortage.
const organicShortageWeight = 3.0

// OrganicGrowth rolls the colony's spontaneous infrastructure expansion.
// Trigger chance is dynamism × 5% on one draw; a second, weighted draw picks
// among non-Civilian domains that hold at least one level and sit strictly
// below their cap, with 3× weight for domains producing a resource in the
// shortage list. The function does not mutate the colony; the caller applies
// the +1 public level.
func OrganicGrowth(c *Colony, shortages []econ.Resource, src rng.Source) OrganicResult {
	if c.Attributes.Dynamism <= 0 {
		return OrganicResult{}
	}
	chance := float64(c.Attributes.Dynamism) * 0.05
	if src.Float() >= chance {
		return OrganicResult{}
	}

	short := make(map[econ.Resource]bool, len(shortages))
	for _, r := range shortages {
		short[r] = true
	}

	var candidates []econ.Domain
	var weights []float64
	for _, d := range econ.AllDomains {
		if d == econ.Civilian {
			continue
		}
		inf, ok := c.Infrastructure[d]
		if !ok || inf.Total() < 1 || !inf.BelowCap() {
			continue
		}
		w := 1.0
		if out, ok := d.Produces(); ok && short[out] {
			w = organicShortageWeight
		}
		candidates = append(candidates, d)
		weights = append(weights, w)
	}
	if len(candidates) == 0 {
		return OrganicResult{}
	}

	idx := rng.WeightedIndex(src, weights)
	if idx < 0 {
		return OrganicResult{}
	}
	return OrganicResult{Triggered: true, Domain: candidates[idx]}
}
