package traversal

import (
	"context"
	"fmt"
)

// workItem pairs a vertex with the path that first reached it.
type workItem[N comparable] struct {
	id   N
	path []N
}

// walker encapsulates mutable search state.
type walker[N comparable] struct {
	graph  Graph[N]
	opts   Options
	ctx    context.Context
	filter func(curr, neighbor N) bool
	work   []workItem[N]
	seen   map[N]struct{}
}

// Find returns the first path discovered from start to goal, start and goal
// included. A goal that exists but cannot be reached yields (nil, nil).
// A goal equal to start returns [start] without expanding anything.
//
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrGoalVertexNotFound,
// ErrOptionViolation, ErrNeighbors or the context error.
func Find[N comparable](g Graph[N], start, goal N, opts ...Option) ([]N, error) {
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(goal) {
		return nil, fmt.Errorf("%w: %v", ErrGoalVertexNotFound, goal)
	}

	log.Debugf("%v search %v -> %v", w.opts.Method, start, goal)
	path, _, err := w.run(&goal)
	if err != nil {
		return nil, err
	}
	if path == nil {
		log.Debugf("goal %v unreachable from %v", goal, start)
	}

	return path, nil
}

// Paths returns, for every vertex reachable from start, the first path
// discovered to it. The start maps to [start]; len(result) is the number of
// reachable vertices.
func Paths[N comparable](g Graph[N], start N, opts ...Option) (map[N][]N, error) {
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}

	log.Debugf("%v search from %v", w.opts.Method, start)
	_, paths, err := w.run(nil)
	if err != nil {
		return nil, err
	}
	log.Debugf("%d vertices reachable from %v", len(paths), start)

	return paths, nil
}

// newWalker validates the input and prepares a walker seeded with start.
func newWalker[N comparable](g Graph[N], start N, opts []Option) (*walker[N], error) {
	if nilGraph(g) {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[N]{
		graph:  g,
		opts:   o,
		ctx:    o.Ctx,
		filter: func(_, _ N) bool { return true },
	}
	if o.filter != nil {
		fn, ok := o.filter.(func(curr, neighbor N) bool)
		if !ok {
			return nil, fmt.Errorf("%w: neighbor filter type %T does not match the graph", ErrOptionViolation, o.filter)
		}
		w.filter = fn
	}

	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}
	w.work = []workItem[N]{{id: start, path: []N{start}}}
	w.seen = map[N]struct{}{start: {}}

	return w, nil
}

// run drains the worklist. With a goal it returns the goal's path as soon as
// the goal is taken off the worklist (nil if it never is); without one it
// returns the path map.
func (w *walker[N]) run(goal *N) ([]N, map[N][]N, error) {
	var paths map[N][]N
	if goal == nil {
		paths = make(map[N][]N)
	}

	for len(w.work) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return nil, nil, w.ctx.Err()
		default:
		}

		item := w.take()
		if goal != nil {
			if item.id == *goal {
				return item.path, nil, nil
			}
		} else if _, ok := paths[item.id]; !ok {
			paths[item.id] = item.path
		}

		if err := w.expand(item); err != nil {
			return nil, nil, err
		}
	}

	return nil, paths, nil
}

// take removes the next item: the front for BreadthFirst, the back for
// DepthFirst.
func (w *walker[N]) take() workItem[N] {
	if w.opts.Method == DepthFirst {
		last := len(w.work) - 1
		item := w.work[last]
		w.work[last] = workItem[N]{}
		w.work = w.work[:last]
		return item
	}
	item := w.work[0]
	w.work[0] = workItem[N]{}
	w.work = w.work[1:]

	return item
}

// expand appends every unseen neighbor of item, marking it seen.
func (w *walker[N]) expand(item workItem[N]) error {
	if w.opts.MaxDepth > 0 && len(item.path)-1 >= w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %v: %v", ErrNeighbors, item.id, err)
	}
	for _, nbr := range neighbors {
		if _, ok := w.seen[nbr]; ok {
			continue
		}
		if !w.filter(item.id, nbr) {
			continue
		}
		w.seen[nbr] = struct{}{}

		// Paths are shared by later extensions, so each gets its own copy.
		next := make([]N, len(item.path)+1)
		copy(next, item.path)
		next[len(item.path)] = nbr
		w.work = append(w.work, workItem[N]{id: nbr, path: next})
	}

	return nil
}
