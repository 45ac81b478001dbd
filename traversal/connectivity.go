package traversal

import (
	"github.com/katalvlaran/lvpath/core"
)

// Connected reports whether every vertex in vertices is reachable from the
// first one. An empty vertex list is connected. For an undirected graph this
// is graph connectivity; for a directed graph it is reachability from
// vertices[0] only (see StronglyConnected).
func Connected[N comparable](g Graph[N], vertices []N) (bool, error) {
	if nilGraph(g) {
		return false, ErrGraphNil
	}
	if len(vertices) == 0 {
		return true, nil
	}
	paths, err := Paths(g, vertices[0])
	if err != nil {
		return false, err
	}
	for _, v := range vertices {
		if _, ok := paths[v]; !ok {
			return false, nil
		}
	}

	return true, nil
}

// StronglyConnected reports whether every vertex of a directed graph can
// reach every other one: all vertices are reachable from the first vertex in
// g and in its transpose. For an undirected graph it equals Connected.
func StronglyConnected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	vertices := g.Vertices()
	ok, err := Connected[string](g, vertices)
	if err != nil || !ok || !g.Directed() {
		return ok, err
	}

	return Connected[string](core.Transpose(g), vertices)
}

// WeaklyConnected reports whether g is connected once edge directions are
// ignored.
func WeaklyConnected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.Directed() {
		return Connected[string](g, g.Vertices())
	}

	return Connected[string](core.UndirectedView(g), g.Vertices())
}
