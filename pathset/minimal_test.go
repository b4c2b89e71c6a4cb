package pathset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrbd/builder"
	"github.com/katalvlaran/lvrbd/core"
	"github.com/katalvlaran/lvrbd/pathset"
)

// fromEdges builds a graph from an edge list.
func fromEdges(t *testing.T, edges ...[2]core.NodeID) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1], core.DefaultWeight))
	}

	return g
}

func TestMinimalPaths_Chain(t *testing.T) {
	g := builder.MustBuild(nil, builder.Path(4))
	ps, err := pathset.MinimalPaths(g, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, pathset.PathSet{{1, 2, 3, 4}}, ps)
}

func TestMinimalPaths_Diamond(t *testing.T) {
	g := fromEdges(t, [2]core.NodeID{1, 2}, [2]core.NodeID{1, 3}, [2]core.NodeID{2, 4}, [2]core.NodeID{3, 4})
	ps, err := pathset.MinimalPaths(g, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, pathset.PathSet{{1, 2, 4}, {1, 3, 4}}, ps)
}

func TestMinimalPaths_ChordToDestinationIsPruned(t *testing.T) {
	// 1-2-3-4 with chord 2-4: 1,2,3,4 is chorded, 1,2,4 is not.
	g := fromEdges(t, [2]core.NodeID{1, 2}, [2]core.NodeID{2, 3}, [2]core.NodeID{3, 4}, [2]core.NodeID{2, 4})
	ps, err := pathset.MinimalPaths(g, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, pathset.PathSet{{1, 2, 4}}, ps)

	all, err := pathset.SimplePaths(g, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, pathset.PathSet{{1, 2, 4}, {1, 2, 3, 4}}, all)
}

func TestMinimalPaths_AdjacentEndpoints(t *testing.T) {
	g := builder.MustBuild(nil, builder.Complete(4))
	ps, err := pathset.MinimalPaths(g, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, pathset.PathSet{{1, 4}}, ps)
}

func TestMinimalPaths_Disconnected(t *testing.T) {
	g := fromEdges(t, [2]core.NodeID{1, 2}, [2]core.NodeID{3, 4})
	ps, err := pathset.MinimalPaths(g, 1, 4)
	require.NoError(t, err)
	assert.Empty(t, ps)
}

func TestMinimalPaths_Errors(t *testing.T) {
	g := builder.MustBuild(nil, builder.Path(3))
	_, err := pathset.MinimalPaths(nil, 1, 2)
	assert.ErrorIs(t, err, pathset.ErrGraphNil)
	_, err = pathset.MinimalPaths(g, 2, 2)
	assert.ErrorIs(t, err, pathset.ErrSameEndpoints)
	_, err = pathset.MinimalPaths(g, 1, 9)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = pathset.SimplePaths(g, 9, 1)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestMinimalPaths_Idempotent(t *testing.T) {
	g := builder.MustBuild(nil, builder.Grid(3, 3))
	first, err := pathset.MinimalPaths(g, 1, 9)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := pathset.MinimalPaths(g, 1, 9)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSimplePaths_WeightOrder(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 5))
	require.NoError(t, g.AddEdge(2, 4, 5))
	require.NoError(t, g.AddEdge(1, 3, 1))
	require.NoError(t, g.AddEdge(3, 5, 1))
	require.NoError(t, g.AddEdge(5, 4, 1))

	ps, err := pathset.SimplePaths(g, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, pathset.PathSet{{1, 3, 5, 4}, {1, 2, 4}}, ps)

	// Views carry no weights: hop count decides.
	ps, err = pathset.SimplePaths(g.View(), 1, 4)
	require.NoError(t, err)
	assert.Equal(t, pathset.PathSet{{1, 2, 4}, {1, 3, 5, 4}}, ps)
}

func TestPathSet_Helpers(t *testing.T) {
	ps := pathset.PathSet{{1, 3, 4}, {1, 2, 5, 4}, {1, 2, 4}}
	ps.Sort()
	assert.Equal(t, pathset.PathSet{{1, 2, 4}, {1, 3, 4}, {1, 2, 5, 4}}, ps)
	assert.Equal(t, []core.NodeID{1, 2, 4, 3, 5}, ps.Nodes())
	assert.Equal(t, []core.NodeID{2, 5}, ps[2].Interior())
	assert.Nil(t, pathset.Path{1, 4}.Interior())
	assert.True(t, ps[0].Contains(2))
}
