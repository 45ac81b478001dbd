// Package dijkstra computes single-source shortest paths on graphs with
// non-negative edge weights, using an indexed priority queue with
// decrease-key (package pqueue).
//
// Overview:
//
//   - Every vertex is seeded into the queue: the source at 0, the rest at +Inf.
//   - The minimum is popped and settled; its unsettled neighbors are relaxed
//     and, on improvement, lowered in place with DecreaseKey. There are no
//     stale heap entries.
//   - With a goal (WithGoal, ShortestPath, Distance) the run stops as soon as
//     the goal is settled; settled distances never change afterwards.
//   - The run also stops when the popped minimum is +Inf (the rest is
//     unreachable) or exceeds MaxDistance.
//
// Preconditions:
//
//	Every edge must carry a numeric, non-negative weight (core.WeightAttr for
//	*core.Graph). This is verified for the whole graph before the first
//	vertex is settled; a violation fails with ErrMalformedWeight joined with
//	ErrMissingWeight or ErrNegativeWeight, and no partial result is returned.
//
// Results:
//
//	Run returns a *Result. PathTo reconstructs a path from the predecessor
//	chain on demand and caches it, so asking for many paths that share a
//	prefix walks each chain once. Unreachable goals are nil paths / ok=false,
//	never errors.
//
// Options:
//
//   - WithGoal(v):             stop once v is settled.
//   - WithMaxDistance(d):      leave vertices farther than d unreached (d ≥ 0).
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are impassable (t > 0).
//   - WithContext(ctx):        cancellation, checked once per settled vertex.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
package dijkstra
