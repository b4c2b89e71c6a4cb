package relabel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrbd/core"
	"github.com/katalvlaran/lvrbd/relabel"
	"github.com/katalvlaran/lvrbd/term"
)

// sparse builds 40-10, 10-70, 70-0 with a weighted middle edge.
func sparse(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(40, 10, 1))
	require.NoError(t, g.AddEdge(10, 70, 2.5))
	require.NoError(t, g.AddEdge(70, 0, 1))

	return g
}

func TestFromGraph_DenseInInsertionOrder(t *testing.T) {
	g := sparse(t)
	d, err := relabel.FromGraph(g, map[core.NodeID]float64{40: 0.9, 10: 0.8, 70: 0.7, 0: 0.6})
	require.NoError(t, err)

	assert.Equal(t, 4, d.Len())
	assert.Equal(t, []core.NodeID{1, 2, 3, 4}, d.Graph.Nodes())
	assert.True(t, d.Graph.HasEdge(1, 2))
	assert.True(t, d.Graph.HasEdge(2, 3))
	assert.True(t, d.Graph.HasEdge(3, 4))
	assert.False(t, d.Graph.HasEdge(1, 4))

	w, err := d.Graph.Weight(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2.5, w)

	id, ok := d.ID(70)
	require.True(t, ok)
	assert.Equal(t, core.NodeID(3), id)
	_, ok = d.ID(99)
	assert.False(t, ok)
	assert.Equal(t, core.NodeID(0), d.Label(4))
	assert.Equal(t, []core.NodeID{40, 0}, d.Labels([]core.NodeID{1, 4}))

	p, err := d.Probabilities.Availability(4)
	require.NoError(t, err)
	assert.Equal(t, 0.6, p)

	assert.Equal(t, []core.NodeID{40, 10, 70, 0}, g.Nodes(), "source graph untouched")
}

func TestFromGraph_StructureOnly(t *testing.T) {
	d, err := relabel.FromGraph(sparse(t), nil)
	require.NoError(t, err)
	assert.Nil(t, d.Probabilities)
	assert.Equal(t, 3, d.Graph.EdgeCount())
}

func TestFromGraph_Errors(t *testing.T) {
	_, err := relabel.FromGraph(nil, nil)
	assert.ErrorIs(t, err, relabel.ErrGraphNil)

	_, err = relabel.FromGraph(sparse(t), map[core.NodeID]float64{40: 0.9, 10: 0.8, 70: 0.7})
	assert.ErrorIs(t, err, relabel.ErrDomainMismatch)

	_, err = relabel.FromGraph(sparse(t), map[core.NodeID]float64{40: 0.9, 10: 0.8, 70: 0.7, 0: 0.6, 5: 0.5})
	assert.ErrorIs(t, err, relabel.ErrDomainMismatch)

	_, err = relabel.FromGraph(sparse(t), map[core.NodeID]float64{40: 0.9, 10: 1.8, 70: 0.7, 0: 0.6})
	assert.ErrorIs(t, err, term.ErrInvalidProbability)
}
