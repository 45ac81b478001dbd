// File: view.go
// Role: Non-mutating graph views (new graphs derived from an existing topology).
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

// Transpose returns a directed graph with every edge of g reversed.
// Vertex and edge attributes are copied. For an undirected g the result is an
// undirected copy.
// Complexity: O(V + E).
func Transpose(g *Graph) *Graph {
	out := g.CloneEmpty()
	for _, e := range g.Edges() {
		_, _ = out.AddEdge(e.To, e.From, withAttrs(e.Attrs))
	}

	return out
}

// UndirectedView returns an undirected graph over the same vertices where
// u-v exists iff g has u→v or v→u. When both directions exist, the edge that
// was added first supplies the attributes.
// Complexity: O(V + E).
func UndirectedView(g *Graph) *Graph {
	opts := []GraphOption{WithDirected(false)}
	if g.Looped() {
		opts = append(opts, WithLoops())
	}
	out := NewGraph(opts...)

	g.muVert.RLock()
	for id, v := range g.vertices {
		out.vertices[id] = &Vertex{ID: v.ID, Attrs: copyAttrs(v.Attrs)}
		out.adjacency[id] = make(map[string]string)
	}
	g.muVert.RUnlock()

	for _, e := range g.Edges() {
		// ErrEdgeExists for the reverse direction is expected and ignored.
		_, _ = out.AddEdge(e.From, e.To, withAttrs(e.Attrs))
	}

	return out
}

// withAttrs copies every attribute of src onto the new edge.
func withAttrs(src map[string]interface{}) EdgeOption {
	return func(e *Edge) {
		for k, v := range src {
			e.Attrs[k] = v
		}
	}
}
