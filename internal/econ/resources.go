// Package econ provides the resource/domain taxonomy, production formulas,
// and the per-colony resource flow calculator.
package econ

// Resource identifies a tradeable or locally-consumed good.
type Resource uint8

const (
	Food Resource = iota
	CommonMaterials
	RareMaterials
	Volatiles
	ConsumerGoods
	HeavyMachinery
	HighTechGoods
	ShipParts
	TransportCapacity // consumed locally, never tradeable
)

// AllResources is the canonical enumeration order. Flow results carry one
// entry per element, in this order.
var AllResources = [9]Resource{
	Food, CommonMaterials, RareMaterials, Volatiles,
	ConsumerGoods, HeavyMachinery, HighTechGoods, ShipParts,
	TransportCapacity,
}

var resourceNames = map[Resource]string{
	Food:              "Food",
	CommonMaterials:   "Common Materials",
	RareMaterials:     "Rare Materials",
	Volatiles:         "Volatiles",
	ConsumerGoods:     "Consumer Goods",
	HeavyMachinery:    "Heavy Machinery",
	HighTechGoods:     "High-Tech Goods",
	ShipParts:         "Ship Parts",
	TransportCapacity: "Transport Capacity",
}

func (r Resource) String() string { return resourceNames[r] }

// Domain identifies an infrastructure category on a colony.
type Domain uint8

const (
	Agriculture Domain = iota
	Mining
	DeepMining
	GasExtraction
	LowIndustry
	HeavyIndustry
	HighTechIndustry
	SpaceIndustry
	Transport
	Science
	Civilian
)

// AllDomains is the canonical enumeration order for deterministic iteration.
var AllDomains = [11]Domain{
	Agriculture, Mining, DeepMining, GasExtraction,
	LowIndustry, HeavyIndustry, HighTechIndustry, SpaceIndustry,
	Transport, Science, Civilian,
}

var domainNames = map[Domain]string{
	Agriculture:      "Agriculture",
	Mining:           "Mining",
	DeepMining:       "Deep Mining",
	GasExtraction:    "Gas Extraction",
	LowIndustry:      "Low Industry",
	HeavyIndustry:    "Heavy Industry",
	HighTechIndustry: "High-Tech Industry",
	SpaceIndustry:    "Space Industry",
	Transport:        "Transport",
	Science:          "Science",
	Civilian:         "Civilian",
}

func (d Domain) String() string { return domainNames[d] }

// extractionOutput maps extraction domains to the raw resource they produce.
var extractionOutput = map[Domain]Resource{
	Agriculture:   Food,
	Mining:        CommonMaterials,
	DeepMining:    RareMaterials,
	GasExtraction: Volatiles,
}

// recipes holds manufacturing inputs: one unit of each listed resource is
// consumed per infrastructure level per turn.
var recipes = map[Domain][]Resource{
	LowIndustry:      {CommonMaterials},
	HeavyIndustry:    {CommonMaterials, Volatiles},
	HighTechIndustry: {RareMaterials, HeavyMachinery},
	SpaceIndustry:    {HeavyMachinery, Volatiles},
}

// manufacturedOutput maps manufacturing domains to their product.
var manufacturedOutput = map[Domain]Resource{
	LowIndustry:      ConsumerGoods,
	HeavyIndustry:    HeavyMachinery,
	HighTechIndustry: HighTechGoods,
	SpaceIndustry:    ShipParts,
}

// tier1Domains and tier2Domains fix the resolution order inside each
// manufacturing tier.
var (
	tier1Domains = [2]Domain{LowIndustry, HeavyIndustry}
	tier2Domains = [2]Domain{HighTechIndustry, SpaceIndustry}
)

// IsExtraction reports whether d draws from planetary deposits.
func (d Domain) IsExtraction() bool {
	_, ok := extractionOutput[d]
	return ok
}

// IsManufacturing reports whether d converts inputs into a product.
func (d Domain) IsManufacturing() bool {
	_, ok := recipes[d]
	return ok
}

// Produces returns the resource d outputs, if any. Transport and Civilian
// are not part of the extraction/manufacturing chain; Transport capacity is
// handled separately by the flow calculator.
func (d Domain) Produces() (Resource, bool) {
	if r, ok := extractionOutput[d]; ok {
		return r, true
	}
	if r, ok := manufacturedOutput[d]; ok {
		return r, true
	}
	if d == Transport {
		return TransportCapacity, true
	}
	return 0, false
}

// Inputs returns the per-level input requirements of a manufacturing domain.
func (d Domain) Inputs() []Resource { return recipes[d] }

// ProducerOf returns the domain that produces r, walking the canonical
// domain order so the answer is stable.
func ProducerOf(r Resource) (Domain, bool) {
	for _, d := range AllDomains {
		if out, ok := d.Produces(); ok && out == r {
			return d, true
		}
	}
	return 0, false
}
