package term_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrbd/core"
	"github.com/katalvlaran/lvrbd/term"
)

func TestLiteral(t *testing.T) {
	up, down := term.Up(3), term.Down(3)
	assert.True(t, up.Operational())
	assert.False(t, down.Operational())
	assert.Equal(t, core.NodeID(3), down.Node())
	assert.Equal(t, down, up.Negate())
}

func TestTerm_ExtendDoesNotAlias(t *testing.T) {
	base := make(term.Term, 1, 8)
	base[0] = term.Up(1)
	a := base.Extend(term.Up(2))
	b := base.Extend(term.Down(2))
	assert.Equal(t, term.Of(1, 2), a)
	assert.Equal(t, term.Of(1, -2), b)
	assert.Equal(t, term.Of(1), base)
}

func TestTerm_Rendering(t *testing.T) {
	tm := term.Of(2, -5, 7)
	assert.Equal(t, "2,-5,7", tm.Key())
	assert.Equal(t, "[2 -5 7]", tm.String())
	assert.True(t, tm.Conflicts(term.Of(5)))
	assert.False(t, tm.Conflicts(term.Of(2, 9)))
}

func TestProbabilityMap(t *testing.T) {
	pm, err := term.NewProbabilityMap(map[core.NodeID]float64{1: 0.9, 2: 0.5, 4: 0.8})
	require.NoError(t, err)
	assert.Equal(t, 3, pm.Len())
	assert.Equal(t, []core.NodeID{1, 2, 4}, pm.Nodes())
	assert.False(t, pm.Has(3))

	p, err := pm.Of(term.Down(1))
	require.NoError(t, err)
	assert.InDelta(t, 0.1, p, 1e-12)

	p, err = pm.Probability(term.Of(1, -2, 4))
	require.NoError(t, err)
	assert.InDelta(t, 0.9*0.5*0.8, p, 1e-12)

	p, err = pm.Probability(nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p)

	s, err := pm.Sum([]term.Term{term.Of(2), term.Of(-2, 1)})
	require.NoError(t, err)
	assert.InDelta(t, 0.5+0.45, s, 1e-12)
}

func TestProbabilityMap_Errors(t *testing.T) {
	_, err := term.NewProbabilityMap(map[core.NodeID]float64{0: 0.5})
	assert.ErrorIs(t, err, term.ErrZeroLiteral)
	_, err = term.NewProbabilityMap(map[core.NodeID]float64{1: 1.5})
	assert.ErrorIs(t, err, term.ErrInvalidProbability)

	pm, err := term.NewProbabilityMap(map[core.NodeID]float64{1: 0.5})
	require.NoError(t, err)
	_, err = pm.Probability(term.Of(1, -3))
	assert.ErrorIs(t, err, term.ErrUnknownNode)
	_, err = pm.Of(0)
	assert.ErrorIs(t, err, term.ErrZeroLiteral)
	_, err = pm.Sum([]term.Term{term.Of(7)})
	assert.ErrorIs(t, err, term.ErrUnknownNode)
}
