package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/starhold/internal/corp"
	"github.com/talgya/starhold/internal/econ"
)

func TestInvestmentOnSectorDeficit(t *testing.T) {
	st := fixtureState()
	withDeficit(st, econ.CommonMaterials, 3)

	ns, events := corporatePhase(st, nil)

	c := ns.Corporations["CORP-1"]
	require.Equal(t, 2, c.Capital, "investment costs 2 capital")
	assert.Equal(t, 1, ns.Colonies["COL-1"].Infrastructure[econ.Mining].Corporate["CORP-1"])
	require.Len(t, events, 1)
	assert.Equal(t, Info, events[0].Priority)
	assert.Equal(t, "corporation", events[0].Category)

	// The input snapshot is untouched.
	assert.Equal(t, 4, st.Corporations["CORP-1"].Capital)
	assert.Empty(t, st.Colonies["COL-1"].Infrastructure[econ.Mining].Corporate)
}

func TestInvestmentCreatesRecordWithRealCap(t *testing.T) {
	st := fixtureState()
	withDeficit(st, econ.CommonMaterials, 3)
	// The colony has never built Mining; the purchase creates the record and
	// must give it the deposit-derived cap, not the zero value.
	delete(st.Colonies["COL-1"].Infrastructure, econ.Mining)

	ns, _ := corporatePhase(st, nil)

	inf := ns.Colonies["COL-1"].Infrastructure[econ.Mining]
	require.NotNil(t, inf)
	assert.Equal(t, 1, inf.Total())
	assert.Equal(t, 15, inf.Cap, "rich deposit caps mining at 15")
	assert.LessOrEqual(t, inf.Total(), inf.Cap)
	assert.True(t, inf.BelowCap(), "fresh record stays eligible for organic growth")
}

func TestInvestmentSkippedWithoutCapital(t *testing.T) {
	st := fixtureState()
	withDeficit(st, econ.CommonMaterials, 3)
	st.Corporations["CORP-1"].Capital = 1

	ns, events := corporatePhase(st, nil)

	assert.Equal(t, 1, ns.Corporations["CORP-1"].Capital)
	assert.Empty(t, events)
}

func TestInvestmentSpecialtyGate(t *testing.T) {
	st := fixtureState()
	withDeficit(st, econ.CommonMaterials, 3)
	// A level-2 agri corp may only invest in its specialties; Mining is not
	// one of them.
	st.Corporations["CORP-1"].Type = corp.AgriCorp

	ns, events := corporatePhase(st, nil)

	assert.Equal(t, 4, ns.Corporations["CORP-1"].Capital)
	assert.Empty(t, events)
}

func TestInvestmentSpecialtyGateLiftsAtLevelThree(t *testing.T) {
	st := fixtureState()
	withDeficit(st, econ.CommonMaterials, 3)
	st.Corporations["CORP-1"].Type = corp.AgriCorp
	st.Corporations["CORP-1"].Level = 3

	ns, _ := corporatePhase(st, nil)

	assert.Equal(t, 2, ns.Corporations["CORP-1"].Capital)
	assert.Equal(t, 1, ns.Colonies["COL-1"].Infrastructure[econ.Mining].Corporate["CORP-1"])
}

func TestInvestmentRejectsStarvedManufacturing(t *testing.T) {
	st := fixtureState()
	st.Corporations["CORP-1"].Level = 5
	// Consumer goods are short, but so are common materials, Low Industry's
	// own input. Without a mining deposit in the sector neither path works.
	withDeficit(st, econ.ConsumerGoods, 2)
	withDeficit(st, econ.CommonMaterials, 2)
	st.Planets["PLN-1-1"].Deposits = nil

	ns, events := corporatePhase(st, nil)

	assert.Equal(t, 4, ns.Corporations["CORP-1"].Capital)
	assert.Empty(t, events)
}

func TestInvestmentRespectsOwnershipCap(t *testing.T) {
	st := fixtureState()
	withDeficit(st, econ.CommonMaterials, 3)
	// Level 2 ⇒ ownership cap 8; saturate it across the colony.
	st.Colonies["COL-1"].Infra(econ.Mining).Corporate["CORP-1"] = 8

	ns, events := corporatePhase(st, nil)

	assert.Equal(t, 4, ns.Corporations["CORP-1"].Capital)
	assert.Empty(t, events)
	assert.Equal(t, 8, ns.Colonies["COL-1"].Infrastructure[econ.Mining].Corporate["CORP-1"])
}

func TestInvestmentRespectsInfrastructureCap(t *testing.T) {
	st := fixtureState()
	withDeficit(st, econ.Food, 2)
	st.Corporations["CORP-1"].Type = corp.AgriCorp
	// Moderate agriculture deposit caps the domain at 10.
	st.Colonies["COL-1"].Infra(econ.Agriculture).Public = 10
	st.Colonies["COL-1"].RecomputeCaps(st.Deposits(st.Colonies["COL-1"]))

	ns, events := corporatePhase(st, nil)

	assert.Equal(t, 4, ns.Corporations["CORP-1"].Capital)
	assert.Empty(t, events)
}

func TestAcquisition(t *testing.T) {
	st := fixtureState()
	buyer := st.Corporations["CORP-1"]
	buyer.Level = 7
	buyer.Capital = 20

	target := &corp.Corporation{
		ID: "CORP-2", Name: "Frontier Holdings", Type: corp.IndustrialCombine,
		Level: 2, Capital: 3, PresentPlanets: []string{"PLN-1-1"},
	}
	st.Corporations[target.ID] = target
	st.Colonies["COL-1"].Infra(econ.LowIndustry).Corporate["CORP-2"] = 2
	st.Schematics["SCH-CORP-2-3"] = &corp.Schematic{ID: "SCH-CORP-2-3", Name: "Hull Schematic", OwnerID: "CORP-2"}
	st.Patents["PAT-CORP-2-3"] = &corp.Patent{ID: "PAT-CORP-2-3", Name: "Prefabrication Process", OwnerID: "CORP-2"}

	ns := st.Clone()
	events := attemptAcquisition(ns, ns.Corporations["CORP-1"])

	require.Len(t, events, 1)
	assert.Equal(t, Warning, events[0].Priority)

	merged := ns.Corporations["CORP-1"]
	assert.Equal(t, 10, merged.Capital, "cost = target level × 5")
	assert.Equal(t, 8, merged.Level, "buyer gains a level")
	assert.NotContains(t, ns.Corporations, "CORP-2")
	assert.Equal(t, 2, ns.Colonies["COL-1"].Infrastructure[econ.LowIndustry].Corporate["CORP-1"])
	assert.NotContains(t, ns.Colonies["COL-1"].Infrastructure[econ.LowIndustry].Corporate, "CORP-2")
	assert.Equal(t, "CORP-1", ns.Schematics["SCH-CORP-2-3"].OwnerID)
	assert.Equal(t, "CORP-1", ns.Patents["PAT-CORP-2-3"].OwnerID)
}

func TestAcquisitionRequiresLevelGap(t *testing.T) {
	st := fixtureState()
	buyer := st.Corporations["CORP-1"]
	buyer.Level = 6
	buyer.Capital = 100

	// Gap of 2 is below the minimum of 3.
	st.Corporations["CORP-2"] = &corp.Corporation{ID: "CORP-2", Name: "Near Peer", Level: 4}

	ns := st.Clone()
	events := attemptAcquisition(ns, ns.Corporations["CORP-1"])

	assert.Empty(t, events)
	assert.Contains(t, ns.Corporations, "CORP-2")
}

func TestAcquisitionRequiresCapital(t *testing.T) {
	st := fixtureState()
	buyer := st.Corporations["CORP-1"]
	buyer.Level = 8
	buyer.Capital = 9 // target costs 2 × 5 = 10

	st.Corporations["CORP-2"] = &corp.Corporation{ID: "CORP-2", Name: "Cheap Target", Level: 2}

	ns := st.Clone()
	events := attemptAcquisition(ns, ns.Corporations["CORP-1"])

	assert.Empty(t, events)
	assert.Contains(t, ns.Corporations, "CORP-2")
	assert.Equal(t, 9, ns.Corporations["CORP-1"].Capital)
}

func TestAcquisitionBuyerLevelCapped(t *testing.T) {
	st := fixtureState()
	buyer := st.Corporations["CORP-1"]
	buyer.Level = corp.MaxLevel
	buyer.Capital = 50

	st.Corporations["CORP-2"] = &corp.Corporation{ID: "CORP-2", Name: "Small Fry", Level: 1}

	ns := st.Clone()
	events := attemptAcquisition(ns, ns.Corporations["CORP-1"])

	require.Len(t, events, 1)
	assert.Equal(t, corp.MaxLevel, ns.Corporations["CORP-1"].Level)
}

func TestAbsorbedCorporationSkipsItsTurn(t *testing.T) {
	st := fixtureState()
	buyer := st.Corporations["CORP-1"]
	buyer.Level = 7
	buyer.Capital = 20

	// CORP-2 would otherwise invest, but CORP-1 absorbs it first in ID order.
	st.Corporations["CORP-2"] = &corp.Corporation{
		ID: "CORP-2", Name: "Doomed Ventures", Type: corp.MiningConsortium,
		Level: 2, Capital: 10,
	}
	withDeficit(st, econ.CommonMaterials, 3)

	ns, _ := corporatePhase(st, nil)

	assert.NotContains(t, ns.Corporations, "CORP-2")
	// Only the buyer's investment landed.
	assert.Equal(t, 1, ns.Colonies["COL-1"].Infrastructure[econ.Mining].Corporate["CORP-1"])
	assert.Empty(t, ns.Colonies["COL-1"].Infrastructure[econ.Mining].Corporate["CORP-2"])
}
