package colony

import (
	"testing"

	"github.com/talgya/starhold/internal/econ"
	"github.com/talgya/starhold/internal/rng"
)

func TestGrowthTick(t *testing.T) {
	tests := []struct {
		name          string
		population    int
		accumulator   int
		delta         int
		maxPopulation int
		civilianLevel int
		wantOutcome   GrowthOutcome
		wantPop       int
		wantAcc       int
	}{
		{
			name:       "level up at threshold",
			population: 1, accumulator: 9, delta: 1, maxPopulation: 5, civilianLevel: 4,
			wantOutcome: LevelUp, wantPop: 2, wantAcc: 0,
		},
		{
			name:       "level up blocked by civilian infrastructure",
			population: 1, accumulator: 9, delta: 1, maxPopulation: 5, civilianLevel: 3,
			wantOutcome: Growing, wantPop: 1, wantAcc: 10,
		},
		{
			name:       "level up blocked by planet cap",
			population: 5, accumulator: 8, delta: 4, maxPopulation: 5, civilianLevel: 20,
			wantOutcome: Growing, wantPop: 5, wantAcc: 12,
		},
		{
			name:       "level down resets to nine",
			population: 3, accumulator: 0, delta: -1, maxPopulation: 5, civilianLevel: 10,
			wantOutcome: LevelDown, wantPop: 2, wantAcc: 9,
		},
		{
			name:       "population one never drops",
			population: 1, accumulator: -2, delta: -3, maxPopulation: 5, civilianLevel: 10,
			wantOutcome: Growing, wantPop: 1, wantAcc: -5,
		},
		{
			name:       "plain accumulation",
			population: 2, accumulator: 4, delta: 2, maxPopulation: 5, civilianLevel: 10,
			wantOutcome: Growing, wantPop: 2, wantAcc: 6,
		},
		{
			name:       "negative accumulation without trigger",
			population: 2, accumulator: 2, delta: -2, maxPopulation: 5, civilianLevel: 10,
			wantOutcome: Growing, wantPop: 2, wantAcc: 0,
		},
		{
			name:       "big surplus still one level",
			population: 2, accumulator: 15, delta: 10, maxPopulation: 5, civilianLevel: 10,
			wantOutcome: LevelUp, wantPop: 3, wantAcc: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GrowthTick(tt.population, tt.accumulator, tt.delta, tt.maxPopulation, tt.civilianLevel)
			if got.Outcome != tt.wantOutcome || got.Population != tt.wantPop || got.Accumulator != tt.wantAcc {
				t.Errorf("GrowthTick() = %+v, want outcome %v pop %d acc %d",
					got, tt.wantOutcome, tt.wantPop, tt.wantAcc)
			}
		})
	}
}

func testColony(dynamism int) *Colony {
	return &Colony{
		ID:         "COL-1",
		Name:       "Testhold",
		Population: 3,
		Attributes: Attributes{Dynamism: dynamism},
		Infrastructure: map[econ.Domain]*Infrastructure{
			econ.Mining: {
				Domain: econ.Mining, Public: 2, Cap: 10,
				Corporate: map[string]int{},
			},
			econ.LowIndustry: {
				Domain: econ.LowIndustry, Public: 3, Cap: 6,
				Corporate: map[string]int{},
			},
			econ.Civilian: {
				Domain: econ.Civilian, Public: 6, Cap: -1,
				Corporate: map[string]int{},
			},
		},
	}
}

func TestOrganicGrowthZeroDynamism(t *testing.T) {
	src := rng.NewScripted(0.0)
	res := OrganicGrowth(testColony(0), nil, src)
	if res.Triggered {
		t.Error("organic growth triggered with zero dynamism")
	}
	if src.Drawn() != 0 {
		t.Errorf("draws consumed = %d, want 0", src.Drawn())
	}
}

func TestOrganicGrowthFailedRoll(t *testing.T) {
	// Dynamism 2 ⇒ 10% trigger chance; a 0.5 draw misses.
	res := OrganicGrowth(testColony(2), nil, rng.NewScripted(0.5))
	if res.Triggered {
		t.Error("organic growth triggered on a failed roll")
	}
}

func TestOrganicGrowthNeverCivilian(t *testing.T) {
	c := testColony(5)
	// Sweep the selection draw across its range; Civilian must never win.
	for _, draw := range []float64{0.0, 0.25, 0.5, 0.75, 0.99} {
		res := OrganicGrowth(c, nil, rng.NewScripted(0.0, draw))
		if !res.Triggered {
			t.Fatalf("expected trigger at draw %v", draw)
		}
		if res.Domain == econ.Civilian {
			t.Errorf("organic growth selected Civilian at draw %v", draw)
		}
	}
}

func TestOrganicGrowthSkipsAtCap(t *testing.T) {
	c := testColony(5)
	c.Infrastructure[econ.LowIndustry].Public = 6 // at its cap of 6
	for _, draw := range []float64{0.0, 0.5, 0.99} {
		res := OrganicGrowth(c, nil, rng.NewScripted(0.0, draw))
		if !res.Triggered {
			t.Fatalf("expected trigger at draw %v", draw)
		}
		if res.Domain != econ.Mining {
			t.Errorf("selected %v at draw %v, want Mining (only below-cap candidate)", res.Domain, draw)
		}
	}
}

func TestOrganicGrowthNoInfrastructure(t *testing.T) {
	c := testColony(5)
	c.Infrastructure = map[econ.Domain]*Infrastructure{}
	res := OrganicGrowth(c, nil, rng.NewScripted(0.0, 0.5))
	if res.Triggered {
		t.Error("organic growth triggered with no infrastructure anywhere")
	}
}

func TestOrganicGrowthShortageWeighting(t *testing.T) {
	c := testColony(5)
	// Mining (weight 3, in shortage) then LowIndustry (weight 1): a draw
	// past 0.75 lands in the Low Industry band.
	short := []econ.Resource{econ.CommonMaterials}

	res := OrganicGrowth(c, short, rng.NewScripted(0.0, 0.5))
	if !res.Triggered || res.Domain != econ.Mining {
		t.Errorf("mid draw selected %v, want Mining (3× weight)", res.Domain)
	}

	res = OrganicGrowth(c, short, rng.NewScripted(0.0, 0.9))
	if !res.Triggered || res.Domain != econ.LowIndustry {
		t.Errorf("high draw selected %v, want LowIndustry", res.Domain)
	}
}

func TestGrowthDelta(t *testing.T) {
	fed := econ.Flow(econ.FlowInput{
		Population: 1,
		Levels:     map[econ.Domain]int{econ.Agriculture: 4},
		Deposits:   map[econ.Domain]econ.Richness{econ.Agriculture: econ.Moderate},
	})
	starving := econ.Flow(econ.FlowInput{Population: 4})

	if got := GrowthDelta(Attributes{}, fed); got != 1 {
		t.Errorf("fed delta = %d, want 1", got)
	}
	if got := GrowthDelta(Attributes{QualityOfLife: 3, Habitability: 3}, fed); got != 2 {
		t.Errorf("comfortable delta = %d, want 2", got)
	}
	if got := GrowthDelta(Attributes{QualityOfLife: 5, Habitability: 5}, starving); got != -2 {
		t.Errorf("starving delta = %d, want -2", got)
	}
}

func TestColonyCloneIsolation(t *testing.T) {
	c := testColony(3)
	c.Modifiers = []Modifier{{ID: "m1", Domain: econ.Mining, OutputBonus: 0.5}}
	clone := c.Clone()

	clone.Population = 9
	clone.Infrastructure[econ.Mining].Public = 99
	clone.Infrastructure[econ.Mining].Corporate["CORP-1"] = 4
	clone.Modifiers[0].OutputBonus = 2.0

	if c.Population != 3 {
		t.Error("clone mutated original population")
	}
	if c.Infrastructure[econ.Mining].Public != 2 {
		t.Error("clone mutated original infrastructure")
	}
	if len(c.Infrastructure[econ.Mining].Corporate) != 0 {
		t.Error("clone shared corporate ownership map")
	}
	if c.Modifiers[0].OutputBonus != 0.5 {
		t.Error("clone shared modifier slice")
	}
}

func TestOutputMods(t *testing.T) {
	c := testColony(1)
	c.Modifiers = []Modifier{
		{ID: "m1", Domain: econ.Mining, OutputBonus: 0.5},
		{ID: "m2", Domain: econ.Mining, OutputBonus: 0.25},
	}
	mods := c.OutputMods()
	if got := mods[econ.Mining]; got != 1.75 {
		t.Errorf("mining modifier = %v, want 1.75 (additive stacking)", got)
	}
}
