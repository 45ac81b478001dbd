package dijkstra

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/lvpath/pqueue"
)

// Run computes shortest distances from source over g.
//
// Validation (in order, before any state is built):
//  1. g must be non-nil (ErrGraphNil).
//  2. Options must be valid (ErrOptionViolation).
//  3. g must contain source (ErrVertexNotFound) and the goal, if any
//     (ErrGoalNotFound).
//  4. Every edge must carry a non-negative numeric weight
//     (ErrMalformedWeight joined with ErrMissingWeight or ErrNegativeWeight).
//
// Errors from the priority queue and from neighbor lookups propagate.
//
// Complexity:
//
//   - Time:  O((V + E) log V), one PopMin per vertex, one DecreaseKey per
//     improving relaxation.
//   - Space: O(V)
func Run[N comparable](g Graph[N], source N, opts ...Option) (*Result[N], error) {
	if nilGraph(g) {
		return nil, ErrGraphNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	var goal *N
	if cfg.goal != nil {
		gv, ok := cfg.goal.(N)
		if !ok {
			return nil, fmt.Errorf("%w: goal type %T does not match the graph", ErrOptionViolation, cfg.goal)
		}
		goal = &gv
	}

	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, source)
	}
	if goal != nil && !g.HasVertex(*goal) {
		return nil, fmt.Errorf("%w: %v", ErrGoalNotFound, *goal)
	}

	vertices := g.Vertices()
	if err := checkWeights(g, vertices); err != nil {
		return nil, err
	}

	r, err := newRunner(g, source, goal, cfg, vertices)
	if err != nil {
		return nil, err
	}
	log.Debugf("dijkstra from %v over %d vertices", source, len(vertices))
	if err = r.process(); err != nil {
		return nil, err
	}
	log.Debugf("dijkstra from %v settled %d vertices", source, len(r.res.settled))

	return r.res, nil
}

// ShortestPath returns the shortest path from source to goal, both ends
// included, or nil if goal is unreachable.
func ShortestPath[N comparable](g Graph[N], source, goal N, opts ...Option) ([]N, error) {
	res, err := Run(g, source, withGoal(opts, goal)...)
	if err != nil {
		return nil, err
	}

	return res.PathTo(goal), nil
}

// Distance returns the shortest distance from source to goal.
// ok is false if goal is unreachable.
func Distance[N comparable](g Graph[N], source, goal N, opts ...Option) (d float64, ok bool, err error) {
	res, err := Run(g, source, withGoal(opts, goal)...)
	if err != nil {
		return math.Inf(1), false, err
	}
	d, ok = res.Distance(goal)

	return d, ok, nil
}

// Distances returns the distance from source to every vertex of g;
// unreachable vertices map to +Inf.
func Distances[N comparable](g Graph[N], source N, opts ...Option) (map[N]float64, error) {
	res, err := Run(g, source, opts...)
	if err != nil {
		return nil, err
	}

	return res.Distances(), nil
}

// withGoal appends WithGoal(goal) to a copy of opts so the caller's backing
// array is never written.
func withGoal[N comparable](opts []Option, goal N) []Option {
	out := make([]Option, 0, len(opts)+1)
	out = append(out, opts...)

	return append(out, WithGoal(goal))
}

// checkWeights rejects the graph if any edge lacks a weight or has a
// negative one. It runs before the first vertex is settled.
func checkWeights[N comparable](g Graph[N], vertices []N) error {
	for _, u := range vertices {
		nbrs, err := g.NeighborIDs(u)
		if err != nil {
			return fmt.Errorf("%w: failed to get neighbors of %v: %v", ErrNeighbors, u, err)
		}
		for _, v := range nbrs {
			w, ok := g.EdgeWeight(u, v)
			switch {
			case !ok:
				return fmt.Errorf("%w: %w: edge %v→%v", ErrMalformedWeight, ErrMissingWeight, u, v)
			case w < 0:
				return fmt.Errorf("%w: %w: edge %v→%v weight=%v", ErrMalformedWeight, ErrNegativeWeight, u, v, w)
			}
		}
	}

	return nil
}

// runner holds the mutable state for a single execution.
type runner[N comparable] struct {
	g    Graph[N]
	cfg  Options
	ctx  context.Context
	goal *N
	pq   *pqueue.Queue[N, float64]
	res  *Result[N]
}

// newRunner sets dist[source]=0 and +Inf elsewhere, marks the source as
// having no predecessor and seeds the queue with every vertex.
func newRunner[N comparable](g Graph[N], source N, goal *N, cfg Options, vertices []N) (*runner[N], error) {
	res := &Result[N]{
		source:  source,
		dist:    make(map[N]float64, len(vertices)),
		prev:    make(map[N]predecessor[N], len(vertices)),
		settled: make(map[N]struct{}, len(vertices)),
		memo:    make(map[N][]N),
	}
	seed := make([]pqueue.Entry[N, float64], 0, len(vertices))
	for _, v := range vertices {
		d := math.Inf(1)
		if v == source {
			d = 0
			res.prev[v] = predecessor[N]{state: predNone}
		}
		res.dist[v] = d
		seed = append(seed, pqueue.Entry[N, float64]{Priority: d, Item: v})
	}
	pq, err := pqueue.New(seed...)
	if err != nil {
		return nil, err
	}

	return &runner[N]{g: g, cfg: cfg, ctx: cfg.Ctx, goal: goal, pq: pq, res: res}, nil
}

// process settles vertices in order of distance until the queue is empty,
// the goal is settled, or only unreachable (or too distant) vertices remain.
func (r *runner[N]) process() error {
	for r.pq.Len() > 0 {
		// cancellation check (once per loop)
		select {
		case <-r.ctx.Done():
			return r.ctx.Err()
		default:
		}

		top, err := r.pq.PopMin()
		if err != nil {
			return err
		}
		u, d := top.Item, top.Priority

		// Everything left is at +Inf or beyond the cap.
		if math.IsInf(d, 1) || d > r.cfg.MaxDistance {
			break
		}

		r.res.settled[u] = struct{}{}
		if r.goal != nil && u == *r.goal {
			break
		}
		if err = r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the tentative distance of every unsettled neighbor of u.
func (r *runner[N]) relax(u N) error {
	nbrs, err := r.g.NeighborIDs(u)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %v: %v", ErrNeighbors, u, err)
	}
	du := r.res.dist[u]
	for _, v := range nbrs {
		if _, done := r.res.settled[v]; done {
			continue
		}
		w, _ := r.g.EdgeWeight(u, v)
		if w >= r.cfg.InfEdgeThreshold {
			continue
		}

		cand := du + w
		if cand >= r.res.dist[v] {
			continue
		}
		r.res.dist[v] = cand
		r.res.prev[v] = predecessor[N]{state: predSet, from: u}
		if err = r.pq.DecreaseKey(v, cand); err != nil {
			return err
		}
	}

	return nil
}
