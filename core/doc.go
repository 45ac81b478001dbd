// Package core provides the in-memory Graph that the search and shortest-path
// packages traverse.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Directed or undirected, fixed at construction (WithDirected).
//   - Optional self-loops (WithLoops); rejected with ErrLoopNotAllowed otherwise.
//   - At most one edge per ordered pair (directed) or unordered pair
//     (undirected); a second AddEdge returns ErrEdgeExists.
//   - Vertices and edges carry free-form attribute maps. The "weight" edge
//     attribute (WeightAttr) is what weighted algorithms read; use WithWeight
//     to set it and EdgeWeight to read it back as a float64.
//
// Vertices are addressed by their string ID and edges by (from, to); the graph
// owns every Vertex and Edge record, so there are no pointer cycles between
// vertices and edges. Neighborhood queries resolve through the adjacency maps:
//
//	adjacency[from][to] = edgeID   // mirrored for undirected graphs
//	incoming[to][from]  = edgeID   // directed graphs only
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string, attrs ...map[string]interface{}) error // O(1)
//	HasVertex(id string) bool                                   // O(1)
//	RemoveVertex(id string) error                               // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(from, to string, opts ...EdgeOption) (edgeID string, err error) // O(1)
//	RemoveEdge(from, to string) error                                      // O(1)
//	HasEdge(from, to string) bool                                          // O(1)
//
//	// Query
//	NeighborIDs(id string) ([]string, error)   // O(d·log d), unique, sorted
//	InNeighborIDs(id string) ([]string, error) // directed ins, sorted
//	EdgeWeight(from, to string) (float64, bool)
//	Vertices() []string                         // sorted
//	Edges() []*Edge                             // sorted by Edge.ID
//
// Errors:
//
//	ErrEmptyVertexID   - zero-length vertex ID
//	ErrVertexNotFound  - missing vertex
//	ErrVertexExists    - AddVertex on an existing ID
//	ErrEdgeNotFound    - missing edge
//	ErrEdgeExists      - second edge between the same endpoints
//	ErrLoopNotAllowed  - self-loop when loops are disabled
//
// Concurrency: every method takes the graph's RW locks, so a Graph may be
// built and queried from several goroutines. Mutating a graph while a search
// over it is running is the caller's responsibility; algorithms do not guard
// against it.
package core
