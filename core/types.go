// Package core defines the central Graph, Vertex, and Edge types,
// and provides thread-safe primitives for building and querying graphs.
//
// This file declares Vertex, Edge, Graph, GraphOption, EdgeOption,
// sentinel errors, and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// WeightAttr is the edge attribute read by weighted algorithms.
const WeightAttr = "weight"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrVertexExists indicates AddVertex was called with an ID already in the graph.
	ErrVertexExists = errors.New("core: vertex already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEdgeExists indicates a second edge between the same endpoints.
	ErrEdgeExists = errors.New("core: edge already exists")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Attrs stores arbitrary user data. Clone copies the map, not the values.
	Attrs map[string]interface{}
}

// Edge represents a connection between two vertices.
//
// For undirected graphs From/To keep the order given to AddEdge; the edge is
// reachable from both endpoints.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Directed mirrors the owning graph's orientation.
	Directed bool

	// Attrs stores edge attributes, including WeightAttr.
	Attrs map[string]interface{}
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the orientation of the graph
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithWeight sets the WeightAttr attribute of the edge.
func WithWeight(w float64) EdgeOption {
	return WithEdgeAttr(WeightAttr, w)
}

// WithEdgeAttr sets an arbitrary attribute on the edge.
func WithEdgeAttr(key string, value interface{}) EdgeOption {
	return func(e *Edge) {
		if e.Attrs == nil {
			e.Attrs = make(map[string]interface{})
		}
		e.Attrs[key] = value
	}
}

// Graph is the core in-memory graph data structure.
//
// muVert protects vertices; muEdgeAdj protects edges and both adjacency maps.
// Lock order is always muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags
	directed   bool
	allowLoops bool

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[from][to] = edgeID; mirrored for undirected edges.
	adjacency map[string]map[string]string
	// incoming[to][from] = edgeID; populated for directed graphs only.
	incoming map[string]map[string]string
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected with no loops.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
		incoming:  make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
