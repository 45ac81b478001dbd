package traversal_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/traversal"
)

// gridGraph builds an undirected n×n grid.
func gridGraph(n int) *core.Graph {
	g := core.NewGraph()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			id := fmt.Sprintf("%d,%d", r, c)
			if c+1 < n {
				_, _ = g.AddEdge(id, fmt.Sprintf("%d,%d", r, c+1))
			}
			if r+1 < n {
				_, _ = g.AddEdge(id, fmt.Sprintf("%d,%d", r+1, c))
			}
		}
	}

	return g
}

func BenchmarkPaths_BreadthFirst(b *testing.B) {
	g := gridGraph(50)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = traversal.Paths[string](g, "0,0")
	}
}

func BenchmarkFind_DepthFirst(b *testing.B) {
	g := gridGraph(50)
	opt := traversal.WithMethod(traversal.DepthFirst)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = traversal.Find[string](g, "0,0", "49,49", opt)
	}
}
