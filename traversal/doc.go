// Package traversal implements one search routine that runs either
// breadth-first or depth-first over any graph exposing "given a vertex,
// enumerate its traversable neighbors".
//
// What
//
//   - Find(g, start, goal, opts...) returns the first path discovered from
//     start to goal, or nil if goal is unreachable (not an error).
//   - Paths(g, start, opts...) maps every vertex reachable from start to the
//     first path discovered to it.
//   - Connected, StronglyConnected and WeaklyConnected answer reachability
//     questions for whole graphs.
//
// How
//
// The worklist holds (vertex, path-so-far) pairs seeded with (start, [start]);
// a seen-set seeded with start ensures each vertex is enqueued at most once,
// so cycles and self-loops terminate. BreadthFirst takes from the front of
// the worklist, DepthFirst from the back; that is the only difference between
// the two orders.
//
//   - BreadthFirst: every returned path has the minimum number of edges.
//   - DepthFirst: some path, depending on neighbor order. Not shortest.
//
// Determinism
//
//	*core.Graph returns neighbors sorted by ID, so results are reproducible.
//	AdjacencyMap uses the stored slice order.
//
// Complexity (V = reachable vertices, E = their edges, L = path length)
//
//   - Time:   O(V + E) expansions, plus O(V·L) for path copies
//   - Memory: O(V·L)
//
// Options
//
//   - WithMethod(m):          BreadthFirst (default) or DepthFirst.
//   - WithContext(ctx):       cancellation, checked once per dequeue.
//   - WithMaxDepth(d):        do not expand paths longer than d edges (d>0).
//   - WithFilterNeighbor(fn): skip the step curr→nbr when fn returns false.
//
// Errors
//
//   - ErrGraphNil, ErrStartVertexNotFound, ErrGoalVertexNotFound
//   - ErrOptionViolation  for invalid options
//   - ErrNeighbors        wrapping a neighbor lookup failure
//   - ctx.Err()           on cancellation
package traversal
