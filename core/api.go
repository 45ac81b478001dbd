// File: api.go
// Role: Read-only getters and summary statistics.

package core

// GraphStats is a snapshot of configuration flags and catalog sizes.
type GraphStats struct {
	Directed    bool
	AllowsLoops bool
	VertexCount int
	EdgeCount   int
}

// Directed reports whether the graph is directed.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Stats returns a snapshot of flags and counts.
// Complexity: O(1).
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		Directed:    g.directed,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	g.muEdgeAdj.RUnlock()

	return &stats
}

// AverageDegree returns the mean number of edge endpoints per vertex:
// 2E/V for undirected graphs and E/V (average out-degree, which equals the
// average in-degree) for directed ones. An empty graph has average degree 0.
func (g *Graph) AverageDegree() float64 {
	s := g.Stats()
	if s.VertexCount == 0 {
		return 0
	}
	if s.Directed {
		return float64(s.EdgeCount) / float64(s.VertexCount)
	}

	return 2 * float64(s.EdgeCount) / float64(s.VertexCount)
}
