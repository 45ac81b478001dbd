package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
)

// ExampleShortestPath shows that the cheaper two-hop route wins.
func ExampleShortestPath() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("v0", "v1", core.WithWeight(1))
	_, _ = g.AddEdge("v0", "v2", core.WithWeight(4))
	_, _ = g.AddEdge("v1", "v2", core.WithWeight(1))

	path, _ := dijkstra.ShortestPath[string](g, "v0", "v2")
	d, _, _ := dijkstra.Distance[string](g, "v0", "v2")
	fmt.Println(path, d)

	// Output: [v0 v1 v2] 2
}

// ExampleResult_PathTo reconstructs paths lazily from one full run.
func ExampleResult_PathTo() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", core.WithWeight(1))
	_, _ = g.AddEdge("B", "C", core.WithWeight(2))
	_, _ = g.AddEdge("A", "C", core.WithWeight(5))
	_ = g.AddVertex("Z")

	res, err := dijkstra.Run[string](g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range []string{"A", "B", "C", "Z"} {
		d, ok := res.Distance(v)
		fmt.Println(v, res.PathTo(v), d, ok)
	}

	// Output:
	// A [A] 0 true
	// B [A B] 1 true
	// C [A B C] 3 true
	// Z [] +Inf false
}
