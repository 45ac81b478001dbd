// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edge/Edges/EdgeCount,
//       attribute access (EdgeWeight, SetEdgeAttr), plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by numeric edge sequence ("e2" before "e10").
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix for edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge creates an edge from -> to, creating missing endpoints.
// Edge attributes (including the weight) are supplied through opts.
//
// Returns ErrEmptyVertexID, ErrLoopNotAllowed, or ErrEdgeExists when an
// edge between the same endpoints is already present (for undirected graphs
// the pair is unordered).
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}
	g.ensureVertex(from)
	g.ensureVertex(to)

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.adjacency[from][to]; exists {
		return "", fmt.Errorf("%w: %q→%q", ErrEdgeExists, from, to)
	}

	e := &Edge{
		ID:       nextEdgeID(g),
		From:     from,
		To:       to,
		Directed: g.directed,
		Attrs:    make(map[string]interface{}),
	}
	for _, opt := range opts {
		opt(e)
	}

	g.edges[e.ID] = e
	g.adjacency[from][to] = e.ID
	if g.directed {
		g.incoming[to][from] = e.ID
	} else {
		g.adjacency[to][from] = e.ID
	}

	return e.ID, nil
}

// RemoveEdge deletes the edge between from and to.
// Returns ErrEdgeNotFound if there is none.
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	eid, ok := g.adjacency[from][to]
	if !ok {
		return fmt.Errorf("%w: %q→%q", ErrEdgeNotFound, from, to)
	}
	g.unlinkEdge(g.edges[eid])

	return nil
}

// HasEdge reports whether an edge from -> to exists
// (either orientation for undirected graphs).
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Edge returns the edge record between from and to.
// The returned pointer is live; treat it as read-only.
func (g *Graph) Edge(from, to string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	eid, ok := g.adjacency[from][to]
	if !ok {
		return nil, fmt.Errorf("%w: %q→%q", ErrEdgeNotFound, from, to)
	}

	return g.edges[eid], nil
}

// Edges returns all edges sorted by creation order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// SetEdgeAttr sets one attribute on the edge between from and to.
func (g *Graph) SetEdgeAttr(from, to, key string, value interface{}) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	eid, ok := g.adjacency[from][to]
	if !ok {
		return fmt.Errorf("%w: %q→%q", ErrEdgeNotFound, from, to)
	}
	g.edges[eid].Attrs[key] = value

	return nil
}

// EdgeWeight returns the WeightAttr of the edge between from and to as a
// float64. ok is false when the edge does not exist, has no weight, or the
// weight is not a number (NaN included).
func (g *Graph) EdgeWeight(from, to string) (w float64, ok bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	eid, found := g.adjacency[from][to]
	if !found {
		return 0, false
	}
	raw, found := g.edges[eid].Attrs[WeightAttr]
	if !found {
		return 0, false
	}

	return toFloat(raw)
}

// toFloat converts the numeric kinds users put in attribute maps.
func toFloat(v interface{}) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	default:
		return 0, false
	}
	if math.IsNaN(f) {
		return 0, false
	}

	return f, true
}

// ensureVertex registers id if missing. Used by AddEdge, which creates
// endpoints implicitly.
func (g *Graph) ensureVertex(id string) {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = &Vertex{ID: id, Attrs: make(map[string]interface{})}

	g.muEdgeAdj.Lock()
	g.adjacency[id] = make(map[string]string)
	if g.directed {
		g.incoming[id] = make(map[string]string)
	}
	g.muEdgeAdj.Unlock()
}

// unlinkEdge drops e from the catalog and every adjacency bucket.
// Caller must hold muEdgeAdj for writing.
func (g *Graph) unlinkEdge(e *Edge) {
	if e == nil {
		return
	}
	delete(g.edges, e.ID)
	delete(g.adjacency[e.From], e.To)
	if g.directed {
		delete(g.incoming[e.To], e.From)
	} else {
		delete(g.adjacency[e.To], e.From)
	}
}

// nextEdgeID returns the next textual edge identifier ("e1", "e2", ...).
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 12)
	buf = append(buf, edgeIDPrefix)

	return string(strconv.AppendUint(buf, n, 10))
}

// edgeSeq parses the numeric part of an edge ID for ordering.
func edgeSeq(id string) uint64 {
	n, _ := strconv.ParseUint(id[1:], 10, 64)
	return n
}
