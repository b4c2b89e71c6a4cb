package availability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrbd/availability"
)

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]availability.Algorithm{
		"minimal-cut":              availability.MinimalCut,
		"mcs":                      availability.MinimalCut,
		"minimal-path":             availability.MinimalPath,
		"PATHSET":                  availability.MinimalPath,
		"sum-of-disjoint-products": availability.SumOfDisjointProducts,
		" sdp ":                    availability.SumOfDisjointProducts,
		"recursive-conditioning":   availability.RecursiveConditioning,
		"pyrbd":                    availability.RecursiveConditioning,
	}
	for in, want := range cases {
		got, err := availability.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := availability.ParseAlgorithm("monte-carlo")
	assert.ErrorIs(t, err, availability.ErrConfiguration)
	assert.ErrorIs(t, err, availability.ErrUnknownAlgorithm)
}

func TestAlgorithm_Names(t *testing.T) {
	for _, a := range availability.Algorithms {
		back, err := availability.ParseAlgorithm(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, back)
	}
	assert.Equal(t, "Algorithm(9)", availability.Algorithm(9).String())
	assert.Equal(t, "unknown", availability.Algorithm(9).Short())
}

func TestParseMode(t *testing.T) {
	m, err := availability.ParseMode("Parallel")
	require.NoError(t, err)
	assert.Equal(t, availability.Parallel, m)

	m, err = availability.ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, availability.Sequential, m)

	_, err = availability.ParseMode("distributed")
	assert.ErrorIs(t, err, availability.ErrConfiguration)
	assert.ErrorIs(t, err, availability.ErrUnknownMode)
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cases := []struct {
		name string
		cfg  availability.Config
		want error
	}{
		{"zero algorithm", availability.Config{}, availability.ErrUnknownAlgorithm},
		{"algorithm out of range", availability.Config{Algorithm: 7}, availability.ErrUnknownAlgorithm},
		{"mode out of range", availability.Config{Algorithm: availability.MinimalCut, Mode: 3}, availability.ErrUnknownMode},
		{"negative order", availability.Config{Algorithm: availability.MinimalCut, Order: -1}, availability.ErrInvalidConfig},
		{"negative workers", availability.Config{Algorithm: availability.MinimalCut, Workers: -2}, availability.ErrInvalidConfig},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := availability.New(tc.cfg)
			assert.ErrorIs(t, err, availability.ErrConfiguration)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	ev, err := availability.New(availability.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, availability.SumOfDisjointProducts, ev.Config().Algorithm)
}
