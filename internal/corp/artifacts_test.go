package corp

import (
	"testing"

	"github.com/talgya/starhold/internal/econ"
	"github.com/talgya/starhold/internal/science"
)

func TestSchematicReversion(t *testing.T) {
	s := &Schematic{
		ID:       "SCH-1",
		Name:     "Lance Frigate",
		Field:    science.Weapons,
		Level:    2,
		Category: "weapons",
		Bonus:    3,
		Modifier: 0.8,
	}

	s.Reversion(3)
	if s.Level != 3 || s.Iteration != 1 {
		t.Errorf("after reversion: level %d iteration %d, want 3/1", s.Level, s.Iteration)
	}
	if s.Name != "Lance Frigate Mk2" {
		t.Errorf("name = %q, want %q", s.Name, "Lance Frigate Mk2")
	}
	if s.Bonus != 3 || s.Modifier != 0.8 {
		t.Error("reversion changed the preserved bonus or modifier")
	}

	// A second reversion replaces the generation marker instead of stacking.
	s.Reversion(5)
	if s.Name != "Lance Frigate Mk3" {
		t.Errorf("name = %q, want %q", s.Name, "Lance Frigate Mk3")
	}
	if s.Level != 5 || s.Iteration != 2 {
		t.Errorf("after second reversion: level %d iteration %d, want 5/2", s.Level, s.Iteration)
	}
}

func TestCorporationCaps(t *testing.T) {
	tests := []struct {
		level        int
		wantOwnCap   int
		wantArtifact int
	}{
		{1, 4, 0},
		{2, 8, 1},
		{5, 20, 2},
		{10, 40, 5},
	}
	for _, tt := range tests {
		c := &Corporation{Level: tt.level}
		if got := c.OwnershipCap(); got != tt.wantOwnCap {
			t.Errorf("level %d OwnershipCap = %d, want %d", tt.level, got, tt.wantOwnCap)
		}
		if got := c.ArtifactCap(); got != tt.wantArtifact {
			t.Errorf("level %d ArtifactCap = %d, want %d", tt.level, got, tt.wantArtifact)
		}
	}
}

func TestSpecialties(t *testing.T) {
	if !MiningConsortium.IsSpecialty(econ.DeepMining) {
		t.Error("mining consortium should favor deep mining")
	}
	if AgriCorp.IsSpecialty(econ.Mining) {
		t.Error("agri corp should not favor mining")
	}
	if len(ExplorationVenture.Specialties()) != 0 {
		t.Error("exploration venture carries no specialties")
	}
}

func TestCorporationClone(t *testing.T) {
	c := &Corporation{
		ID:             "CORP-1",
		Level:          4,
		Traits:         []string{"frontier"},
		PresentPlanets: []string{"PLN-1-1"},
	}
	cp := c.Clone()
	cp.Traits[0] = "stagnant"
	cp.PresentPlanets = append(cp.PresentPlanets, "PLN-1-2")
	if c.Traits[0] != "frontier" || len(c.PresentPlanets) != 1 {
		t.Error("clone shares slices with original")
	}
	if !c.Present("PLN-1-1") || c.Present("PLN-9-9") {
		t.Error("Present lookup incorrect")
	}
}
