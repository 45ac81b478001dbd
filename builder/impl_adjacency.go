package builder

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvpath/core"
)

const methodFromAdjacency = "FromAdjacency"

// Neighbor is one entry of an adjacency list: the target vertex and the
// attributes of the edge leading to it (may be nil).
type Neighbor struct {
	ID    string
	Attrs map[string]interface{}
}

// To is shorthand for a Neighbor without attributes.
func To(id string) Neighbor { return Neighbor{ID: id} }

// Weighted is shorthand for a Neighbor carrying only a weight.
func Weighted(id string, w float64) Neighbor {
	return Neighbor{ID: id, Attrs: map[string]interface{}{core.WeightAttr: w}}
}

// FromAdjacency returns a Constructor that adds every key of adj as a vertex
// and every listed neighbor as an edge key→neighbor. Keys are processed in
// sorted order. An edge that already exists (a repeated entry, or the mirror
// of an undirected edge listed from both ends) is skipped. A neighbor that is
// not a key, or an empty ID, fails with ErrBadGraphInput.
//
// The IDFn option does not apply; IDs come from adj.
func FromAdjacency(adj map[string][]Neighbor) Constructor {
	return FromAdjacencyWithAttrs(adj, nil)
}

// FromAdjacencyWithAttrs is FromAdjacency plus vertex attributes. Every key of
// vertexAttrs becomes a vertex carrying those attributes, even when adj does
// not mention it. Attributes of a vertex that already exists are merged in.
func FromAdjacencyWithAttrs(adj map[string][]Neighbor, vertexAttrs map[string]map[string]interface{}) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		keys := make([]string, 0, len(adj))
		for k := range adj {
			if k == "" {
				return fmt.Errorf("%s: empty vertex ID: %w", methodFromAdjacency, ErrBadGraphInput)
			}
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			for _, nb := range adj[k] {
				if _, ok := adj[nb.ID]; !ok {
					return fmt.Errorf("%s: %q lists unknown neighbor %q: %w", methodFromAdjacency, k, nb.ID, ErrBadGraphInput)
				}
			}
		}

		ids := make([]string, 0, len(keys)+len(vertexAttrs))
		ids = append(ids, keys...)
		for id := range vertexAttrs {
			if id == "" {
				return fmt.Errorf("%s: empty vertex ID in attributes: %w", methodFromAdjacency, ErrBadGraphInput)
			}
			if _, ok := adj[id]; !ok {
				ids = append(ids, id)
			}
		}
		sort.Strings(ids)

		for _, id := range ids {
			if err := addVertexAttrs(g, id, vertexAttrs[id]); err != nil {
				return err
			}
		}

		for _, k := range keys {
			for _, nb := range adj[k] {
				opts := make([]core.EdgeOption, 0, len(nb.Attrs)+1)
				if cfg.weightFn != nil {
					opts = append(opts, core.WithWeight(cfg.weightFn(cfg.rng)))
				}
				for ak, av := range nb.Attrs {
					opts = append(opts, core.WithEdgeAttr(ak, av))
				}
				_, err := g.AddEdge(k, nb.ID, opts...)
				if err != nil && !errors.Is(err, core.ErrEdgeExists) {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodFromAdjacency, k, nb.ID, err)
				}
			}
		}

		return nil
	}
}

// addVertexAttrs adds id with attrs, or merges attrs into an existing vertex.
func addVertexAttrs(g *core.Graph, id string, attrs map[string]interface{}) error {
	if !g.HasVertex(id) {
		if err := g.AddVertex(id, attrs); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodFromAdjacency, id, err)
		}
		return nil
	}
	v, err := g.Vertex(id)
	if err != nil {
		return fmt.Errorf("%s: Vertex(%s): %w", methodFromAdjacency, id, err)
	}
	for k, val := range attrs {
		v.Attrs[k] = val
	}

	return nil
}
