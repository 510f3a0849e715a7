// Package galaxy models sectors, planets, and their deposits, and generates
// them procedurally from a seed.
package galaxy

import "github.com/talgya/starhold/internal/econ"

// Sector is a region of space grouping planets into one market.
type Sector struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Deposit is an exploitable resource site on a planet. The domain names the
// extraction infrastructure that works it.
type Deposit struct {
	Domain   econ.Domain   `json:"domain"`
	Richness econ.Richness `json:"richness"`
}

// Planet is a body that can host one colony.
type Planet struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	SectorID string    `json:"sector_id"`
	Size     int       `json:"size"` // maximum population level for a colony here
	Deposits []Deposit `json:"deposits"`
}

// BestDeposit returns the richest deposit matching the given extraction
// domain, if any.
func (p *Planet) BestDeposit(d econ.Domain) (econ.Richness, bool) {
	found := false
	var best econ.Richness
	for _, dep := range p.Deposits {
		if dep.Domain != d {
			continue
		}
		if !found || dep.Richness > best {
			best = dep.Richness
			found = true
		}
	}
	return best, found
}

// DepositDomains returns the set of extraction domains present on the
// planet, keyed by domain with the best richness as value.
func (p *Planet) DepositDomains() map[econ.Domain]econ.Richness {
	out := make(map[econ.Domain]econ.Richness)
	for _, dep := range p.Deposits {
		if cur, ok := out[dep.Domain]; !ok || dep.Richness > cur {
			out[dep.Domain] = dep.Richness
		}
	}
	return out
}

// Clone returns an independent deep copy.
func (p *Planet) Clone() *Planet {
	c := *p
	c.Deposits = append([]Deposit(nil), p.Deposits...)
	return &c
}

// Clone returns an independent copy.
func (s *Sector) Clone() *Sector {
	c := *s
	return &c
}
