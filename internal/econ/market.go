// Sector market aggregation. The core only assembles per-sector totals from
// colony flows; price formation and import routing belong to the downstream
// market resolution step.
package econ

// Market holds the aggregated economic state for one sector for one turn.
type Market struct {
	SectorID string           `json:"sector_id"`
	Produced map[Resource]int `json:"produced"`
	Consumed map[Resource]int `json:"consumed"`
	Net      map[Resource]int `json:"net"` // produced − consumed across the sector
}

// NewMarket creates an empty market with zeroed totals for every resource.
func NewMarket(sectorID string) *Market {
	m := &Market{
		SectorID: sectorID,
		Produced: make(map[Resource]int, len(AllResources)),
		Consumed: make(map[Resource]int, len(AllResources)),
		Net:      make(map[Resource]int, len(AllResources)),
	}
	for _, r := range AllResources {
		m.Produced[r] = 0
		m.Consumed[r] = 0
		m.Net[r] = 0
	}
	return m
}

// Absorb adds one colony flow result into the sector totals. Transport
// capacity is consumed locally and never tradeable, so it is excluded from
// sector accounting.
func (m *Market) Absorb(res *Result) {
	for _, e := range res.Entries {
		if e.Resource == TransportCapacity {
			continue
		}
		m.Produced[e.Resource] += e.Produced
		m.Consumed[e.Resource] += e.Consumed
		m.Net[e.Resource] += e.Surplus
	}
}

// Deficits lists resources with negative sector-wide net surplus, in
// canonical resource order.
func (m *Market) Deficits() []Resource {
	var out []Resource
	for _, r := range AllResources {
		if m.Net[r] < 0 {
			out = append(out, r)
		}
	}
	return out
}

// Clone returns an independent deep copy.
func (m *Market) Clone() *Market {
	c := NewMarket(m.SectorID)
	for r, v := range m.Produced {
		c.Produced[r] = v
	}
	for r, v := range m.Consumed {
		c.Consumed[r] = v
	}
	for r, v := range m.Net {
		c.Net[r] = v
	}
	return c
}
