package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n: every
// unordered pair once for undirected graphs, both orientations for directed
// ones. Self-loops are never added.
//
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodComplete, n)
		if err != nil {
			return err
		}

		directed := g.Directed()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
				if directed {
					if err = addEdge(g, cfg, methodComplete, ids[j], ids[i]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
