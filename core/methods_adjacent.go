// File: methods_adjacent.go
// Role: Neighborhood APIs (NeighborIDs, InNeighborIDs, AdjacencyList).
// Determinism:
//   - NeighborIDs()/InNeighborIDs() return unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.

package core

import (
	"fmt"
	"sort"
)

// NeighborIDs returns the vertices reachable from id over one edge, sorted
// ascending: the out-neighbors in a directed graph, the adjacent vertices in
// an undirected one. A self-loop lists id itself.
//
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return sortedKeys(g.adjacency[id]), nil
}

// InNeighborIDs returns the vertices with an edge into id, sorted ascending.
// For undirected graphs it equals NeighborIDs.
func (g *Graph) InNeighborIDs(id string) ([]string, error) {
	if !g.directed {
		return g.NeighborIDs(id)
	}
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return sortedKeys(g.incoming[id]), nil
}

// AdjacencyList returns a snapshot mapping every vertex to its sorted
// neighbor IDs. Returned slices are freshly allocated.
// Complexity: O(V + E log E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make(map[string][]string, len(g.adjacency))
	for from, tos := range g.adjacency {
		out[from] = sortedKeys(tos)
	}

	return out
}

func sortedKeys(m map[string]string) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
