package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// Undirected graph; AddEdge creates A, B and C on the fly.
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B")
	_, _ = g.AddEdge("B", "C")
	_, _ = g.AddEdge("C", "A")

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge B→A exists?", g.HasEdge("B", "A"))

	// Removing a vertex drops its incident edges.
	_ = g.RemoveVertex("B")
	fmt.Println("After removing B, vertices:", g.Vertices())
	fmt.Println("Edge A→B exists?", g.HasEdge("A", "B"))

	// Output:
	// Vertices: [A B C]
	// Edge B→A exists? true
	// After removing B, vertices: [A C]
	// Edge A→B exists? false
}

// ExampleGraph_EdgeWeight shows weights stored as edge attributes.
func ExampleGraph_EdgeWeight() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("v0", "v1", core.WithWeight(1.5))
	_, _ = g.AddEdge("v1", "v2")

	w, ok := g.EdgeWeight("v0", "v1")
	fmt.Println(w, ok)
	_, ok = g.EdgeWeight("v1", "v2")
	fmt.Println("v1→v2 weighted?", ok)

	// Output:
	// 1.5 true
	// v1→v2 weighted? false
}

// ExampleTranspose reverses every edge of a directed graph.
func ExampleTranspose() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("a", "c")

	t := core.Transpose(g)
	ins, _ := t.NeighborIDs("b")
	outs, _ := t.NeighborIDs("a")
	fmt.Println(ins, outs)

	// Output:
	// [a] []
}
