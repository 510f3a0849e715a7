// Schematics and patents: corporation-owned, count-capped artifacts.
// Schematics are versioned in place when their science domain levels up.
package corp

import (
	"fmt"

	"github.com/talgya/starhold/internal/science"
)

// Schematic is a versioned ship-design artifact tied to a science domain.
type Schematic struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Field     science.Field `json:"field"`
	Level     int           `json:"level"`     // matches the owning domain's level at issue/versioning
	Iteration int           `json:"iteration"` // increments on each re-versioning
	Category  string        `json:"category"`
	Bonus     float64       `json:"bonus"`    // numeric effect, preserved across versions
	Modifier  float64       `json:"modifier"` // random quality roll, preserved across versions
	OwnerID   string        `json:"owner_id"`
}

// Reversion upgrades the schematic to a new domain level: level is set to
// the domain's level, the iteration counter increments, and the display name
// gains a generation marker. Bonus and Modifier carry over unchanged.
func (s *Schematic) Reversion(domainLevel int) {
	s.Level = domainLevel
	s.Iteration++
	s.Name = fmt.Sprintf("%s Mk%d", baseName(s.Name), s.Iteration+1)
}

// baseName strips a previous generation marker, if present.
func baseName(name string) string {
	for i := len(name) - 1; i > 0; i-- {
		if name[i] == ' ' && i+3 <= len(name) && name[i+1] == 'M' && name[i+2] == 'k' {
			return name[:i]
		}
	}
	return name
}

// Clone returns an independent copy.
func (s *Schematic) Clone() *Schematic {
	cp := *s
	return &cp
}

// Patent is a per-corporation operational bonus, capped in count by the
// owner's level.
type Patent struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Field   science.Field `json:"field"`
	Bonus   float64       `json:"bonus"`
	OwnerID string        `json:"owner_id"`
}

// Clone returns an independent copy.
func (p *Patent) Clone() *Patent {
	cp := *p
	return &cp
}
