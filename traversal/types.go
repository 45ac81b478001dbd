// Package traversal provides tunable options, the graph capability and error
// definitions for unified breadth-first / depth-first search.
package traversal

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

// Sentinel errors for search execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("traversal: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("traversal: start vertex not found")

	// ErrGoalVertexNotFound is returned when the goal ID is absent.
	// A goal that exists but cannot be reached is not an error.
	ErrGoalVertexNotFound = errors.New("traversal: goal vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traversal: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("traversal: neighbor iteration error")
)

// Graph is the single capability the search needs: membership and the
// traversable neighbors of a vertex (out-neighbors for directed graphs,
// adjacent vertices for undirected ones). *core.Graph satisfies
// Graph[string].
//
// The graph must not be mutated while a search over it is running.
type Graph[N comparable] interface {
	HasVertex(id N) bool
	NeighborIDs(id N) ([]N, error)
}

// nilGraph reports whether g is nil, including a nil *core.Graph stored in
// the interface.
func nilGraph[N comparable](g Graph[N]) bool {
	if g == nil {
		return true
	}
	cg, ok := any(g).(*core.Graph)

	return ok && cg == nil
}

// AdjacencyMap is a ready-made Graph backed by a plain map. Every vertex must
// appear as a key; a key with no neighbors is a sink.
type AdjacencyMap[N comparable] map[N][]N

// HasVertex reports whether id is a key of the map.
func (m AdjacencyMap[N]) HasVertex(id N) bool {
	_, ok := m[id]
	return ok
}

// NeighborIDs returns the neighbor list stored for id, in stored order.
func (m AdjacencyMap[N]) NeighborIDs(id N) ([]N, error) {
	return m[id], nil
}

// Method selects the end of the worklist the next vertex is taken from.
type Method int

const (
	// BreadthFirst takes from the front; paths are shortest by hop count.
	BreadthFirst Method = iota

	// DepthFirst takes from the back; paths depend on neighbor order.
	DepthFirst
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case BreadthFirst:
		return "breadth_first"
	case DepthFirst:
		return "depth_first"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps "breadth_first"/"bfs" and "depth_first"/"dfs" to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "breadth_first", "bfs":
		return BreadthFirst, nil
	case "depth_first", "dfs":
		return DepthFirst, nil
	}

	return 0, fmt.Errorf("%w: unknown method %q", ErrOptionViolation, s)
}

// Option configures a search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*Options)

// Options holds parameters to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per dequeue.
	Ctx context.Context

	// Method is BreadthFirst (default) or DepthFirst.
	Method Method

	// MaxDepth, if > 0, stops expanding paths longer than MaxDepth edges.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// filter holds a func(curr, neighbor N) bool; typed at run time.
	filter interface{}

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - BreadthFirst
//   - no depth limit
//   - no filtering.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Method: BreadthFirst,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMethod selects breadth-first or depth-first order.
func WithMethod(m Method) Option {
	return func(o *Options) {
		if m != BreadthFirst && m != DepthFirst {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, m)
			return
		}
		o.Method = m
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips the step curr→neighbor when fn returns false.
// N must match the vertex type of the searched graph, otherwise the search
// fails with ErrOptionViolation.
func WithFilterNeighbor[N comparable](fn func(curr, neighbor N) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.filter = fn
		}
	}
}
