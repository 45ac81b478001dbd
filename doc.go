// Package lvpath is a small in-memory toolkit for searching graphs and
// finding shortest paths.
//
// What is in the box?
//
//	pqueue/     - indexed binary min-heap with O(log n) DecreaseKey
//	traversal/  - one search routine, breadth-first or depth-first,
//	              plus connectivity checks
//	dijkstra/   - single-source shortest paths on non-negative weights,
//	              built on pqueue
//	core/       - thread-safe Graph with string IDs and attribute maps;
//	              the "weight" edge attribute feeds dijkstra
//	builder/    - deterministic constructors: complete, random, path, grid,
//	              adjacency map
//	cmd/lvpath  - command-line front end over TOML graph files
//
// The algorithms depend only on small interfaces ("given a vertex, list its
// neighbors", "weight of u→v"), so directed and undirected graphs share one
// implementation and *core.Graph is just one possible input.
//
// Quick start:
//
//	g := core.NewGraph(core.WithDirected(true))
//	g.AddEdge("v0", "v1", core.WithWeight(1))
//	g.AddEdge("v0", "v2", core.WithWeight(4))
//	g.AddEdge("v1", "v2", core.WithWeight(1))
//
//	hops, _ := traversal.Find[string](g, "v0", "v2")      // [v0 v2]
//	path, _ := dijkstra.ShortestPath[string](g, "v0", "v2") // [v0 v1 v2]
//
// Algorithms never lock against concurrent mutation: keep a graph unchanged
// while a search over it runs.
package lvpath
