// Package science tracks the nine technology tracks: point accumulation,
// level thresholds, focus, and the discovery definition catalog.
package science

// Field identifies one of the nine science domains.
type Field uint8

const (
	Energy Field = iota
	Materials
	Biotech
	Computing
	Propulsion
	Weapons
	Shields
	Construction
	Sociology
)

// AllFields fixes the deterministic iteration order used for remainder
// distribution and every other domain walk.
var AllFields = [9]Field{
	Energy, Materials, Biotech, Computing, Propulsion,
	Weapons, Shields, Construction, Sociology,
}

var fieldNames = map[Field]string{
	Energy:       "Energy",
	Materials:    "Materials",
	Biotech:      "Biotech",
	Computing:    "Computing",
	Propulsion:   "Propulsion",
	Weapons:      "Weapons",
	Shields:      "Shields",
	Construction: "Construction",
	Sociology:    "Sociology",
}

func (f Field) String() string { return fieldNames[f] }

// pointsPerLevel scales the level threshold: reaching level L+1 from L costs
// (L+1) × 15 points.
const pointsPerLevel = 15

// DomainState is the progression state of one science domain.
type DomainState struct {
	Field               Field    `json:"field"`
	Level               int      `json:"level"`
	Points              int      `json:"points"`
	Focused             bool     `json:"focused"`
	Discoveries         []string `json:"discoveries"`          // discovered definition ids
	SchematicCategories []string `json:"schematic_categories"` // unlocked categories
}

// Threshold returns the points needed for the next level at the current one.
func (s *DomainState) Threshold() int { return (s.Level + 1) * pointsPerLevel }

// Clone returns an independent deep copy.
func (s *DomainState) Clone() *DomainState {
	c := *s
	c.Discoveries = append([]string(nil), s.Discoveries...)
	c.SchematicCategories = append([]string(nil), s.SchematicCategories...)
	return &c
}

// NewDomainStates creates zeroed states for all nine fields.
func NewDomainStates() map[Field]*DomainState {
	out := make(map[Field]*DomainState, len(AllFields))
	for _, f := range AllFields {
		out[f] = &DomainState{Field: f}
	}
	return out
}

// Distribute splits the empire's total science output across the nine
// domains: base = floor(total/9) each, the remainder lands as +1 on the
// first (total mod 9) fields in AllFields order, and a focused domain's
// allocation is doubled. At most one domain system-wide carries focus.
func Distribute(states map[Field]*DomainState, total int) map[Field]int {
	base := total / len(AllFields)
	rem := total % len(AllFields)

	alloc := make(map[Field]int, len(AllFields))
	for i, f := range AllFields {
		pts := base
		if i < rem {
			pts++
		}
		if st, ok := states[f]; ok && st.Focused {
			pts *= 2
		}
		alloc[f] = pts
	}
	return alloc
}

// Advance adds points to a domain and resolves every level-up the new total
// affords, carrying leftover points forward. Returns the number of levels
// gained; the post state always satisfies 0 ≤ Points < Threshold.
func (s *DomainState) Advance(points int) int {
	s.Points += points
	gained := 0
	for s.Points >= s.Threshold() {
		s.Points -= s.Threshold()
		s.Level++
		gained++
	}
	return gained
}

// Focused returns the focused field, if any.
func Focused(states map[Field]*DomainState) (Field, bool) {
	for _, f := range AllFields {
		if st, ok := states[f]; ok && st.Focused {
			return f, true
		}
	}
	return 0, false
}
