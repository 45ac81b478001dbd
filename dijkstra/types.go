// Package dijkstra defines the graph capability, configuration options and
// sentinel errors for the shortest-path engine.
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvpath/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrGraphNil indicates that a nil graph was passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrGoalNotFound indicates that the goal vertex does not exist.
	// A goal that exists but cannot be reached is not an error.
	ErrGoalNotFound = errors.New("dijkstra: goal vertex not found in graph")

	// ErrMalformedWeight is the precondition failure for any edge whose
	// weight is unusable. It is always joined with ErrMissingWeight or
	// ErrNegativeWeight.
	ErrMalformedWeight = errors.New("dijkstra: malformed edge weight")

	// ErrMissingWeight indicates an edge without a numeric weight.
	ErrMissingWeight = errors.New("dijkstra: edge weight missing")

	// ErrNegativeWeight indicates an edge with a negative weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("dijkstra: neighbor iteration error")
)

// Graph is what the engine reads: the full vertex set, the traversable
// neighbors of a vertex and the weight of the edge between two adjacent
// vertices (ok=false when the weight is absent or not a number).
// *core.Graph satisfies Graph[string].
//
// The graph must not be mutated while a run over it is in progress.
type Graph[N comparable] interface {
	Vertices() []N
	HasVertex(id N) bool
	NeighborIDs(id N) ([]N, error)
	EdgeWeight(from, to N) (float64, bool)
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

// Option configures a run via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// run is invoked.
type Option func(*Options)

// Options configures the behavior of the engine.
//
// MaxDistance      - stop once the smallest unsettled distance exceeds it.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold - edges with weight ≥ this threshold are impassable.
//
//	Must be > 0. Default is +Inf (only +Inf weights are impassable).
type Options struct {
	Ctx              context.Context
	MaxDistance      float64
	InfEdgeThreshold float64

	// goal holds an N; typed at run time.
	goal interface{}

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no goal, no distance cap, no
// impassable threshold and a background context.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// WithContext sets a custom context for cancellation, checked once per
// settled vertex.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithGoal stops the run as soon as goal is settled. N must match the
// vertex type of the graph, otherwise Run fails with ErrOptionViolation.
func WithGoal[N comparable](goal N) Option {
	return func(o *Options) {
		o.goal = goal
	}
}

// WithMaxDistance caps the explored radius. Vertices farther than d are left
// unreached. Negative or NaN values cause ErrOptionViolation.
func WithMaxDistance(d float64) Option {
	return func(o *Options) {
		if d < 0 || math.IsNaN(d) {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative (%v)", ErrOptionViolation, d)
			return
		}
		o.MaxDistance = d
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ t as walls.
// Zero, negative or NaN values cause ErrOptionViolation.
func WithInfEdgeThreshold(t float64) Option {
	return func(o *Options) {
		if !(t > 0) {
			o.err = fmt.Errorf("%w: InfEdgeThreshold must be positive (%v)", ErrOptionViolation, t)
			return
		}
		o.InfEdgeThreshold = t
	}
}
