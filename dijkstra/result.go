package dijkstra

import (
	"math"
	"sync"
)

// predState distinguishes "never reached" from "reached with no predecessor".
type predState uint8

const (
	predUnset predState = iota // not reached (yet)
	predNone                   // the source
	predSet                    // reached via from
)

type predecessor[N comparable] struct {
	state predState
	from  N
}

// Result holds the outcome of one run. Only settled vertices count as
// reached: after a goal-limited or distance-capped run, vertices that were
// never settled are reported as unreached even if a tentative distance was
// seen for them.
//
// A Result is safe for concurrent reads.
type Result[N comparable] struct {
	source  N
	dist    map[N]float64
	prev    map[N]predecessor[N]
	settled map[N]struct{}

	mu   sync.Mutex
	memo map[N][]N
}

// Source returns the vertex the run started from.
func (r *Result[N]) Source() N { return r.source }

// Reached reports whether n was settled, i.e. its distance is final.
func (r *Result[N]) Reached(n N) bool {
	_, ok := r.settled[n]
	return ok
}

// Distance returns the shortest distance from the source to n.
// ok is false when n was not reached.
func (r *Result[N]) Distance(n N) (d float64, ok bool) {
	if !r.Reached(n) {
		return math.Inf(1), false
	}

	return r.dist[n], true
}

// Distances returns a distance for every vertex of the graph; unreached
// vertices map to +Inf.
func (r *Result[N]) Distances() map[N]float64 {
	out := make(map[N]float64, len(r.dist))
	for v := range r.dist {
		out[v], _ = r.Distance(v)
	}

	return out
}

// PathTo returns the shortest path source→n, both ends included, or nil if
// n was not reached. Paths are reconstructed from the predecessor chain on
// first request and cached; the returned slice is the caller's to keep.
func (r *Result[N]) PathTo(n N) []N {
	if !r.Reached(n) {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	path := r.pathLocked(n)
	out := make([]N, len(path))
	copy(out, path)

	return out
}

// pathLocked walks back from n until it meets the source or a vertex whose
// path is already cached, then caches the result. Caller holds r.mu.
func (r *Result[N]) pathLocked(n N) []N {
	if p, ok := r.memo[n]; ok {
		return p
	}

	var suffix []N
	var prefix []N
	cur := n
	for {
		if p, ok := r.memo[cur]; ok {
			prefix = p
			break
		}
		suffix = append(suffix, cur)
		link := r.prev[cur]
		if link.state != predSet {
			break
		}
		cur = link.from
	}

	path := make([]N, 0, len(prefix)+len(suffix))
	path = append(path, prefix...)
	for i := len(suffix) - 1; i >= 0; i-- {
		path = append(path, suffix[i])
	}
	r.memo[n] = path

	return path
}

// Paths returns the shortest path to every reached vertex.
func (r *Result[N]) Paths() map[N][]N {
	out := make(map[N][]N, len(r.settled))
	for v := range r.settled {
		out[v] = r.PathTo(v)
	}

	return out
}
