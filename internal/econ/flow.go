// Per-colony resource flow assembly for one turn. Applies the production
// formulas in dependency order and cascades shortages upward through the
// manufacturing tiers.
package econ

// Entry is the flow record for one (colony, resource) pair for one turn.
// Imported and InShortage are always zero/false as emitted here; the
// downstream market resolution step owns both fields.
type Entry struct {
	Resource   Resource `json:"resource"`
	Produced   int      `json:"produced"`
	Consumed   int      `json:"consumed"`
	Surplus    int      `json:"surplus"`
	Imported   int      `json:"imported"`
	InShortage bool     `json:"in_shortage"`
}

// Result holds one Entry per defined resource, in AllResources order.
type Result struct {
	Entries []Entry `json:"entries"`
}

// Get returns the entry for r. Every defined resource has one.
func (res *Result) Get(r Resource) Entry {
	return res.Entries[int(r)]
}

// Shortages lists every resource with a negative net surplus, in canonical
// order. The organic growth weighting consumes this.
func (res *Result) Shortages() []Resource {
	var out []Resource
	for _, e := range res.Entries {
		if e.Surplus < 0 {
			out = append(out, e.Resource)
		}
	}
	return out
}

// FlowInput carries the colony-shaped values the calculator needs, already
// resolved: total infrastructure levels (public + corporate) per domain,
// additive output modifiers per domain, and which deposits the colony's
// planet offers.
type FlowInput struct {
	Population int
	Levels     map[Domain]int
	OutputMods map[Domain]float64 // resolved modifier, 1.0 when absent
	Deposits   map[Domain]Richness
}

func (in FlowInput) level(d Domain) int { return in.Levels[d] }

func (in FlowInput) outputMod(d Domain) float64 {
	if m, ok := in.OutputMods[d]; ok {
		return m
	}
	return 1.0
}

// Flow computes the complete per-resource flow for one colony for one turn.
//
// Order is fixed: extraction, tier-1 manufacturing, tier-2 manufacturing,
// transport, population consumption, then surplus assembly. A manufacturing
// tier is starved when the summed demand of that tier for an input exceeds
// the input's production available at that point; starved domains run at
// half level and consume inputs only for the units actually produced.
func Flow(in FlowInput) *Result {
	produced := make(map[Resource]int, len(AllResources))
	consumed := make(map[Resource]int, len(AllResources))

	// 1. Extraction. Zero when no matching deposit exists.
	for d, r := range extractionOutput {
		if _, ok := in.Deposits[d]; !ok {
			continue
		}
		produced[r] += ExtractionOutput(in.level(d), in.outputMod(d))
	}

	// 2. Tier-1 manufacturing against extraction availability.
	runTier(tier1Domains[:], in, produced, consumed)

	// 3. Tier-2 manufacturing against extraction plus tier-1 availability.
	runTier(tier2Domains[:], in, produced, consumed)

	// 4. Transport capacity from Transport infrastructure.
	produced[TransportCapacity] += in.level(Transport)

	// 5. Population consumption.
	consumed[Food] += FoodDemand(in.Population)
	consumed[ConsumerGoods] += ConsumerGoodsDemand(in.Population)
	consumed[TransportCapacity] += TransportDemand(in.Population)

	// 6. One entry per resource, surplus = produced − consumed.
	res := &Result{Entries: make([]Entry, len(AllResources))}
	for i, r := range AllResources {
		res.Entries[i] = Entry{
			Resource: r,
			Produced: produced[r],
			Consumed: consumed[r],
			Surplus:  produced[r] - consumed[r],
		}
	}
	return res
}

// runTier resolves one manufacturing tier. The shortage test is aggregate:
// an input is short when the whole tier's demand for it exceeds what has
// been produced so far (net of upstream consumption), and every domain in
// the tier requiring that input is starved together.
func runTier(tier []Domain, in FlowInput, produced, consumed map[Resource]int) {
	demand := make(map[Resource]int)
	for _, d := range tier {
		lvl := in.level(d)
		if lvl <= 0 {
			continue
		}
		for _, input := range d.Inputs() {
			demand[input] += lvl
		}
	}

	short := make(map[Resource]bool, len(demand))
	for input, want := range demand {
		if want > produced[input]-consumed[input] {
			short[input] = true
		}
	}

	for _, d := range tier {
		lvl := in.level(d)
		if lvl <= 0 {
			continue
		}
		starved := false
		for _, input := range d.Inputs() {
			if short[input] {
				starved = true
				break
			}
		}
		out := ManufacturingOutput(lvl, !starved)
		produced[manufacturedOutput[d]] += out
		for _, input := range d.Inputs() {
			consumed[input] += out
		}
	}
}
