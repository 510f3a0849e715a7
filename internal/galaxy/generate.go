// Procedural sector/planet generation using layered simplex noise.
// Deterministic from the seed: the same seed always yields the same galaxy.
package galaxy

import (
	"fmt"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/starhold/internal/econ"
)

// GenConfig holds galaxy generation parameters.
type GenConfig struct {
	Seed             int64
	Sectors          int
	PlanetsPerSector int
}

// DefaultGenConfig returns a small playable galaxy.
func DefaultGenConfig() GenConfig {
	return GenConfig{Seed: 1, Sectors: 3, PlanetsPerSector: 4}
}

var sectorNames = []string{
	"Meridian", "Kepler Reach", "Halcyon Drift", "Vesper Expanse",
	"Aurelia", "Cygnus Verge", "Taurus Gate", "Perseid Shoal",
}

// extraction domains sampled against independent noise layers.
var depositLayers = []econ.Domain{
	econ.Agriculture, econ.Mining, econ.DeepMining, econ.GasExtraction,
}

// Generate creates sectors and planets with noise-driven deposits.
func Generate(cfg GenConfig) (map[string]*Sector, map[string]*Planet) {
	sizeNoise := opensimplex.NewNormalized(cfg.Seed)
	layerNoise := make([]opensimplex.Noise, len(depositLayers))
	for i := range depositLayers {
		layerNoise[i] = opensimplex.NewNormalized(cfg.Seed + int64(i) + 1)
	}

	sectors := make(map[string]*Sector, cfg.Sectors)
	planets := make(map[string]*Planet)

	for si := 0; si < cfg.Sectors; si++ {
		sec := &Sector{
			ID:   fmt.Sprintf("SEC-%d", si+1),
			Name: sectorNames[si%len(sectorNames)],
		}
		sectors[sec.ID] = sec

		for pi := 0; pi < cfg.PlanetsPerSector; pi++ {
			// Sample in continuous space so neighbouring planets vary
			// smoothly but distinctly.
			x := float64(si) * 3.7
			y := float64(pi) * 2.3

			size := 3 + int(sizeNoise.Eval2(x*0.9, y*0.9)*8) // 3..10
			p := &Planet{
				ID:       fmt.Sprintf("PLN-%d-%d", si+1, pi+1),
				Name:     fmt.Sprintf("%s %s", sec.Name, romanNumeral(pi+1)),
				SectorID: sec.ID,
				Size:     size,
			}

			for li, d := range depositLayers {
				v := layerNoise[li].Eval2(x, y)
				// Roughly 60% of layers present on a given planet.
				if v < 0.4 {
					continue
				}
				p.Deposits = append(p.Deposits, Deposit{
					Domain:   d,
					Richness: richnessFor(v),
				})
			}

			planets[p.ID] = p
		}
	}

	return sectors, planets
}

// richnessFor buckets a noise value in [0.4, 1.0] into deposit tiers.
func richnessFor(v float64) econ.Richness {
	switch {
	case v >= 0.9:
		return econ.Exceptional
	case v >= 0.75:
		return econ.Rich
	case v >= 0.55:
		return econ.Moderate
	default:
		return econ.Poor
	}
}

var numerals = []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X"}

func romanNumeral(n int) string {
	if n >= 1 && n <= len(numerals) {
		return numerals[n-1]
	}
	return fmt.Sprintf("%d", n)
}
