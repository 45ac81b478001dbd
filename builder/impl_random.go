package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

const (
	methodRandom      = "Random"
	minRandomVertices = 1
	probMin           = 0.0
	probMax           = 1.0
)

// Random returns a Constructor for an Erdős–Rényi style graph on n vertices:
// each candidate edge is kept independently with probability p.
//
// Candidates are every unordered pair for undirected graphs and every
// ordered pair for directed ones; self-loops are candidates only when the
// graph allows loops. p in (0,1) needs WithSeed or WithRand; p = 0 and p = 1
// are deterministic and need no RNG.
//
// Complexity: O(n²).
func Random(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandom, n, minRandomVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", methodRandom, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandom, ErrNeedRandSource)
		}
		ids, err := addVertices(g, cfg, methodRandom, n)
		if err != nil {
			return err
		}

		keep := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			}
			return cfg.rng.Float64() < p
		}

		directed, loops := g.Directed(), g.Looped()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if (!directed && j < i) || (i == j && !loops) {
					continue
				}
				if !keep() {
					continue
				}
				if err = addEdge(g, cfg, methodRandom, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
