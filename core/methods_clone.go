// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone carries over nextEdgeID to keep textual edge IDs monotonic on the clone.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

import "sync/atomic"

// CloneEmpty returns a new Graph with identical configuration and vertices
// (attribute maps copied), but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	clone := NewGraph(g.options()...)
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Attrs: copyAttrs(v.Attrs)}
		clone.adjacency[id] = make(map[string]string)
		if clone.directed {
			clone.incoming[id] = make(map[string]string)
		}
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges and
// adjacency. Attribute maps are copied so that changing an attribute on the
// clone does not affect the original.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for eid, e := range g.edges {
		clone.edges[eid] = &Edge{ID: eid, From: e.From, To: e.To, Directed: e.Directed, Attrs: copyAttrs(e.Attrs)}
		clone.adjacency[e.From][e.To] = eid
		if clone.directed {
			clone.incoming[e.To][e.From] = eid
		} else {
			clone.adjacency[e.To][e.From] = eid
		}
	}

	return clone
}

// Clear resets the graph to an empty state while preserving configuration flags.
func (g *Graph) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacency = make(map[string]map[string]string)
	g.incoming = make(map[string]map[string]string)
	atomic.StoreUint64(&g.nextEdgeID, 0)
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}

// options reconstructs the GraphOptions this graph was built with.
func (g *Graph) options() []GraphOption {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}

	return opts
}

func copyAttrs(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
