package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for a rows×cols lattice. Vertex (r,c) gets
// index r*cols+c (so IDs follow the configured IDFn) and is joined to its
// right and lower neighbors; on directed graphs edges point right and down.
//
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: %dx%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodGrid, rows*cols)
		if err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := ids[r*cols+c]
				if c+1 < cols {
					if err = addEdge(g, cfg, methodGrid, u, ids[r*cols+c+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = addEdge(g, cfg, methodGrid, u, ids[(r+1)*cols+c]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
