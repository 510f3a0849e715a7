// Research phase: corporation-driven discovery, schematic, and patent rolls.
// All pools are rebuilt fresh every turn; nothing here is cached.
package engine

import (
	"fmt"

	"github.com/talgya/starhold/internal/corp"
	"github.com/talgya/starhold/internal/rng"
	"github.com/talgya/starhold/internal/science"
)

func researchPhase(st *State, src rng.Source) (*State, []Event) {
	ns := st.Clone()
	var events []Event

	for _, id := range ns.CorporationIDs() {
		c := ns.Corporations[id]
		events = append(events, rollDiscovery(ns, c, src)...)
		events = append(events, rollSchematic(ns, c, src)...)
		events = append(events, rollPatent(ns, c, src)...)
	}

	return ns, events
}

// discoveredSet collects every definition ID already recorded on a domain
// state.
func discoveredSet(ns *State) map[string]bool {
	out := make(map[string]bool)
	for _, f := range science.AllFields {
		ds, ok := ns.Science[f]
		if !ok {
			continue
		}
		for _, id := range ds.Discoveries {
			out[id] = true
		}
	}
	return out
}

// rollDiscovery attempts one discovery for a corporation. An empty pool
// consumes no draws. Chance% = level × 5 + corporate science infrastructure
// × 2, doubled when the candidate's domain is focused.
func rollDiscovery(ns *State, c *corp.Corporation, src rng.Source) []Event {
	discovered := discoveredSet(ns)
	var pool []science.Definition
	for _, f := range science.AllFields {
		ds, ok := ns.Science[f]
		if !ok {
			continue
		}
		pool = append(pool, science.AvailablePool(f, ds.Level, discovered)...)
	}
	if len(pool) == 0 {
		return nil
	}

	def := pool[int(src.Float()*float64(len(pool)))%len(pool)]

	chance := float64(c.Level*5 + ns.CorporateScienceInfra(c.ID)*2)
	if ds, ok := ns.Science[def.Field]; ok && ds.Focused {
		chance *= 2
	}
	if src.Float()*100 >= chance {
		return nil
	}

	rec := &corp.Discovery{
		ID:            "DISC-" + def.ID,
		DefinitionID:  def.ID,
		Field:         def.Field,
		CorporationID: c.ID,
		Turn:          ns.Turn,
	}
	ns.Discoveries[rec.ID] = rec
	ns.Bonuses.Add(def.Bonuses)

	ds := ns.Science[def.Field]
	ds.Discoveries = append(ds.Discoveries, def.ID)
	for _, cat := range def.Categories {
		if !containsString(ds.SchematicCategories, cat) {
			ds.SchematicCategories = append(ds.SchematicCategories, cat)
		}
	}

	return []Event{{
		Turn:     ns.Turn,
		Priority: Positive,
		Category: "science",
		Title:    fmt.Sprintf("Discovery: %s", def.Name),
		Description: fmt.Sprintf("%s researchers achieve %s, advancing the whole empire.",
			c.Name, def.Name),
		RelatedIDs: []string{rec.ID, c.ID},
	}}
}

// schematicCandidate pairs an unlocked category with its domain.
type schematicCandidate struct {
	field    science.Field
	category string
}

// rollSchematic attempts one schematic for a corporation. Corporations at
// their artifact cap are skipped without consuming a roll, as are empires
// with no unlocked categories.
func rollSchematic(ns *State, c *corp.Corporation, src rng.Source) []Event {
	if countSchematics(ns, c.ID) >= c.ArtifactCap() {
		return nil
	}

	var candidates []schematicCandidate
	for _, f := range science.AllFields {
		ds, ok := ns.Science[f]
		if !ok {
			continue
		}
		for _, cat := range ds.SchematicCategories {
			candidates = append(candidates, schematicCandidate{field: f, category: cat})
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	pick := candidates[int(src.Float()*float64(len(candidates)))%len(candidates)]
	if src.Float()*100 >= float64(c.Level*2) {
		return nil
	}

	level := ns.Science[pick.field].Level
	sch := &corp.Schematic{
		ID:       fmt.Sprintf("SCH-%s-%d", c.ID, ns.Turn),
		Name:     fmt.Sprintf("%s Schematic", titleCase(pick.category)),
		Field:    pick.field,
		Level:    level,
		Category: pick.category,
		Bonus:    float64(level),
		Modifier: src.Float(),
		OwnerID:  c.ID,
	}
	ns.Schematics[sch.ID] = sch

	return []Event{{
		Turn:     ns.Turn,
		Priority: Info,
		Category: "corporation",
		Title:    fmt.Sprintf("%s files a new schematic", c.Name),
		Description: fmt.Sprintf("%s registers the %s (%s, level %d).",
			c.Name, sch.Name, pick.field, level),
		RelatedIDs: []string{sch.ID, c.ID},
	}}
}

// patentNames gives each field a flavored patent line.
var patentNames = map[science.Field]string{
	science.Energy:       "Reactor Efficiency Process",
	science.Materials:    "Alloy Tempering Process",
	science.Biotech:      "Gene Yield Process",
	science.Computing:    "Compute Scheduling Process",
	science.Propulsion:   "Drive Tuning Process",
	science.Weapons:      "Ordnance Handling Process",
	science.Shields:      "Field Harmonics Process",
	science.Construction: "Prefabrication Process",
	science.Sociology:    "Labor Relations Process",
}

// rollPatent attempts one patent for a corporation, same chance and cap
// shape as schematics.
func rollPatent(ns *State, c *corp.Corporation, src rng.Source) []Event {
	if countPatents(ns, c.ID) >= c.ArtifactCap() {
		return nil
	}

	f := science.AllFields[int(src.Float()*float64(len(science.AllFields)))%len(science.AllFields)]
	if src.Float()*100 >= float64(c.Level*2) {
		return nil
	}

	p := &corp.Patent{
		ID:      fmt.Sprintf("PAT-%s-%d", c.ID, ns.Turn),
		Name:    patentNames[f],
		Field:   f,
		Bonus:   1,
		OwnerID: c.ID,
	}
	ns.Patents[p.ID] = p

	return []Event{{
		Turn:     ns.Turn,
		Priority: Info,
		Category: "corporation",
		Title:    fmt.Sprintf("%s secures a patent", c.Name),
		Description: fmt.Sprintf("%s is granted the %s patent (%s).",
			c.Name, p.Name, f),
		RelatedIDs: []string{p.ID, c.ID},
	}}
}

func countSchematics(ns *State, ownerID string) int {
	n := 0
	for _, s := range ns.Schematics {
		if s.OwnerID == ownerID {
			n++
		}
	}
	return n
}

func countPatents(ns *State, ownerID string) int {
	n := 0
	for _, p := range ns.Patents {
		if p.OwnerID == ownerID {
			n++
		}
	}
	return n
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	for i := 1; i < len(b); i++ {
		if b[i-1] == '-' || b[i-1] == ' ' {
			if b[i] >= 'a' && b[i] <= 'z' {
				b[i] -= 'a' - 'A'
			}
		}
	}
	return string(b)
}
