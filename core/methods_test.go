package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/core"
)

// TestAddVertex covers attributes, duplicates and empty IDs.
func TestAddVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("v0", map[string]interface{}{"city": "Modena"}))
	require.True(t, g.HasVertex("v0"))

	v, err := g.Vertex("v0")
	require.NoError(t, err)
	assert.Equal(t, "Modena", v.Attrs["city"])

	assert.ErrorIs(t, g.AddVertex("v0"), core.ErrVertexExists)
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	assert.False(t, g.HasVertex(""))

	_, err = g.Vertex("nope")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestAddEdge_Undirected checks mirroring and unordered duplicate detection.
func TestAddEdge_Undirected(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, err := g.AddEdge("v0", "v0", core.WithWeight(5))
	require.NoError(t, err)
	_, err = g.AddEdge("v0", "v1", core.WithWeight(7))
	require.NoError(t, err)

	assert.True(t, g.HasEdge("v0", "v1"))
	assert.True(t, g.HasEdge("v1", "v0"))
	assert.Equal(t, 2, g.EdgeCount())

	w, ok := g.EdgeWeight("v1", "v0")
	assert.True(t, ok)
	assert.Equal(t, 7.0, w)
	w, ok = g.EdgeWeight("v0", "v0")
	assert.True(t, ok)
	assert.Equal(t, 5.0, w)

	_, err = g.AddEdge("v1", "v0")
	assert.ErrorIs(t, err, core.ErrEdgeExists)

	nbrs, err := g.NeighborIDs("v0")
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v1"}, nbrs)
}

// TestAddEdge_Directed checks orientation, in-neighbors and ordered pairs.
func TestAddEdge_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("a", "b")
	require.NoError(t, err)
	_, err = g.AddEdge("b", "a")
	require.NoError(t, err, "reverse direction is a distinct edge")
	_, err = g.AddEdge("a", "c")
	require.NoError(t, err)

	_, err = g.AddEdge("a", "b")
	assert.ErrorIs(t, err, core.ErrEdgeExists)
	assert.False(t, g.HasEdge("c", "a"))

	outs, err := g.NeighborIDs("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, outs)

	ins, err := g.InNeighborIDs("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, ins)

	in, out, und, err := g.Degree("a")
	require.NoError(t, err)
	assert.Equal(t, [3]int{1, 2, 0}, [3]int{in, out, und})
}

// TestAddEdge_Loops rejects self-loops unless enabled.
func TestAddEdge_Loops(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("x", "x")
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = g.AddEdge("", "x")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

// TestEdgeWeight_Malformed reports missing and non-numeric weights.
func TestEdgeWeight_Malformed(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("b", "c", core.WithEdgeAttr(core.WeightAttr, "heavy"))
	_, _ = g.AddEdge("c", "d", core.WithEdgeAttr(core.WeightAttr, int64(3)))

	_, ok := g.EdgeWeight("a", "b")
	assert.False(t, ok)
	_, ok = g.EdgeWeight("b", "c")
	assert.False(t, ok)
	_, ok = g.EdgeWeight("a", "z")
	assert.False(t, ok)

	w, ok := g.EdgeWeight("d", "c")
	assert.True(t, ok)
	assert.Equal(t, 3.0, w)

	require.NoError(t, g.SetEdgeAttr("a", "b", core.WeightAttr, 2))
	w, ok = g.EdgeWeight("a", "b")
	assert.True(t, ok)
	assert.Equal(t, 2.0, w)
}

// TestRemoveVertex drops incident edges in both directions.
func TestRemoveVertex(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithLoops())
	_, _ = g.AddEdge("v0", "v1")
	_, _ = g.AddEdge("v2", "v0")
	_, _ = g.AddEdge("v0", "v0")
	_, _ = g.AddEdge("v1", "v2")

	require.NoError(t, g.RemoveVertex("v0"))
	assert.False(t, g.HasVertex("v0"))
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge("v1", "v2"))

	ins, err := g.InNeighborIDs("v1")
	require.NoError(t, err)
	assert.Empty(t, ins)

	assert.ErrorIs(t, g.RemoveVertex("v0"), core.ErrVertexNotFound)
}

// TestRemoveEdge removes both mirrors of an undirected edge.
func TestRemoveEdge(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("v0", "v1")
	require.NoError(t, g.RemoveEdge("v1", "v0"))
	assert.False(t, g.HasEdge("v0", "v1"))
	assert.Zero(t, g.EdgeCount())
	assert.ErrorIs(t, g.RemoveEdge("v0", "v1"), core.ErrEdgeNotFound)
}

// TestEdges_CreationOrder keeps "e2" before "e10".
func TestEdges_CreationOrder(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i < 12; i++ {
		_, err := g.AddEdge("hub", string(rune('a'+i)))
		require.NoError(t, err)
	}
	edges := g.Edges()
	require.Len(t, edges, 12)
	for i, e := range edges {
		assert.Equal(t, string(rune('a'+i)), e.To)
	}
}

// TestClone verifies deep copies of attributes.
func TestClone(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("v0", map[string]interface{}{"city": "Paris"}))
	_, _ = g.AddEdge("v0", "v1", core.WithWeight(3))

	c := g.Clone()
	require.NoError(t, c.SetEdgeAttr("v0", "v1", core.WeightAttr, 5.0))

	w, _ := g.EdgeWeight("v0", "v1")
	assert.Equal(t, 3.0, w)
	w, _ = c.EdgeWeight("v0", "v1")
	assert.Equal(t, 5.0, w)

	cv, err := c.Vertex("v0")
	require.NoError(t, err)
	assert.Equal(t, "Paris", cv.Attrs["city"])

	id, err := c.AddEdge("v1", "v2")
	require.NoError(t, err)
	assert.Equal(t, "e2", id, "clone continues the edge ID sequence")
}

// TestAverageDegree covers both orientations and the empty graph.
func TestAverageDegree(t *testing.T) {
	assert.Zero(t, core.NewGraph().AverageDegree())

	u := core.NewGraph()
	_, _ = u.AddEdge("a", "b")
	_, _ = u.AddEdge("b", "c")
	assert.InDelta(t, 4.0/3.0, u.AverageDegree(), 1e-9)

	d := core.NewGraph(core.WithDirected(true))
	_, _ = d.AddEdge("a", "b")
	_, _ = d.AddEdge("b", "c")
	assert.InDelta(t, 2.0/3.0, d.AverageDegree(), 1e-9)
}

// TestTransposeAndUndirectedView covers the derived views.
func TestTransposeAndUndirectedView(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("a", "b", core.WithWeight(1))
	_, _ = g.AddEdge("b", "a", core.WithWeight(2))
	_, _ = g.AddEdge("b", "c", core.WithWeight(3))
	require.NoError(t, g.AddVertex("lonely"))

	tr := core.Transpose(g)
	assert.True(t, tr.Directed())
	assert.True(t, tr.HasEdge("c", "b"))
	assert.False(t, tr.HasEdge("b", "c"))
	w, _ := tr.EdgeWeight("a", "b")
	assert.Equal(t, 2.0, w)
	assert.True(t, tr.HasVertex("lonely"))

	u := core.UndirectedView(g)
	assert.False(t, u.Directed())
	assert.Equal(t, 2, u.EdgeCount())
	assert.True(t, u.HasEdge("c", "b"))
	w, _ = u.EdgeWeight("a", "b")
	assert.Equal(t, 1.0, w)
	assert.Equal(t, 4, u.VertexCount())
}

// TestClear keeps flags and restarts edge IDs.
func TestClear(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("a", "b")
	g.Clear()
	assert.Zero(t, g.VertexCount())
	assert.True(t, g.Directed())
	id, err := g.AddEdge("a", "b")
	require.NoError(t, err)
	assert.Equal(t, "e1", id)
}
