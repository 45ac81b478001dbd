// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert; adjacency buckets under muEdgeAdj.
package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex with optional attributes.
// The first attrs map (if any) is copied into the vertex.
//
// Returns ErrEmptyVertexID for an empty id and ErrVertexExists if the vertex
// is already present.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string, attrs ...map[string]interface{}) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return fmt.Errorf("%w: %q", ErrVertexExists, id)
	}
	v := &Vertex{ID: id, Attrs: make(map[string]interface{})}
	if len(attrs) > 0 {
		for k, val := range attrs[0] {
			v.Attrs[k] = val
		}
	}
	g.vertices[id] = v

	g.muEdgeAdj.Lock()
	g.adjacency[id] = make(map[string]string)
	if g.directed {
		g.incoming[id] = make(map[string]string)
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// Vertex returns the vertex record for id.
// The returned pointer is live; treat it as read-only outside of setup code.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return v, nil
}

// RemoveVertex deletes the vertex and every incident edge.
// Complexity: O(deg(v)).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	for _, eid := range g.adjacency[id] {
		g.unlinkEdge(g.edges[eid])
	}
	for _, eid := range g.incoming[id] {
		g.unlinkEdge(g.edges[eid])
	}
	delete(g.adjacency, id)
	delete(g.incoming, id)
	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of distinct neighbors of id.
// For directed graphs out and in are the out-/in-neighbor counts and
// undirected is zero; for undirected graphs only undirected is set.
// A self-loop counts once toward each applicable figure.
func (g *Graph) Degree(id string) (in, out, undirected int, err error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	if !g.directed {
		return 0, 0, len(g.adjacency[id]), nil
	}

	return len(g.incoming[id]), len(g.adjacency[id]), 0, nil
}
