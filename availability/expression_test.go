package availability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrbd/availability"
	"github.com/katalvlaran/lvrbd/core"
)

func TestExpression(t *testing.T) {
	g, _ := labelledDiamond(t)
	cases := map[availability.Algorithm]string{
		availability.MinimalPath:           "[[10 * 20 * 40] + [10 * 30 * 40 * ¬20]]",
		availability.MinimalCut:            "[[¬20 * ¬30]]",
		availability.SumOfDisjointProducts: "[[10 * 20 * 40]] + [[10 * 30 * 40] * ¬[20]]",
	}
	for a, want := range cases {
		t.Run(a.String(), func(t *testing.T) {
			got, err := evaluator(t, a, availability.Sequential).Expression(g, 10, 40)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestExpression_Edges(t *testing.T) {
	g, _ := labelledDiamond(t)
	g.AddNode(77)

	got, err := evaluator(t, availability.MinimalPath, availability.Sequential).Expression(g, 10, 77)
	require.NoError(t, err)
	assert.Equal(t, "[]", got)

	_, err = evaluator(t, availability.RecursiveConditioning, availability.Sequential).Expression(g, 10, 40)
	assert.ErrorIs(t, err, availability.ErrConfiguration)
	assert.ErrorIs(t, err, availability.ErrExpressionUnsupported)

	_, err = evaluator(t, availability.MinimalCut, availability.Sequential).Expression(g, 10, 10)
	assert.ErrorIs(t, err, availability.ErrSameEndpoints)

	_, err = evaluator(t, availability.MinimalCut, availability.Sequential).Expression(g, 10, core.NodeID(5))
	assert.ErrorIs(t, err, availability.ErrNodeNotFound)
}
