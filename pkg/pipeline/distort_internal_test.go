package pipeline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-mapgen/pkg/pipeline/attribute"
	"github.com/askiada/go-mapgen/pkg/pipeline/generator"
	"github.com/askiada/go-mapgen/pkg/pipeline/model"
)

func newSampler(t *testing.T, height int) *distortionSampler {
	t.Helper()

	size := model.Size{Width: 2, Height: height}
	store, err := attribute.NewStore(size)
	require.NoError(t, err)
	require.NoError(t, store.Create("rainfall", 0))

	grid, err := store.Snapshot("rainfall")
	require.NoError(t, err)

	gen, err := generator.New(model.Index{}, size)
	require.NoError(t, err)

	return newDistortionSampler(gen, grid)
}

func TestSampleYClamps(t *testing.T) {
	t.Parallel()

	sampler := newSampler(t, 10)

	tcs := []struct {
		y      int
		offset float64
		want   int
	}{
		{0, 0, 0},
		{5, 2.4, 7},
		{5, 2.5, 8},
		{5, -2.5, 3},
		{0, -1, 0},
		{9, 1, 9},
		{3, math.MaxFloat64, 9},
		{3, -math.MaxFloat64, 0},
	}
	for _, tc := range tcs {
		got, err := sampler.sampleY(tc.y, tc.offset)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "y=%d offset=%v", tc.y, tc.offset)
	}
}

func TestSampleYNonFinite(t *testing.T) {
	t.Parallel()

	sampler := newSampler(t, 10)

	for _, offset := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := sampler.sampleY(4, offset)
		require.ErrorIs(t, err, model.ErrNonFinite)
		assert.ErrorIs(t, err, model.ErrDomain)
	}
}

func TestSampleRow(t *testing.T) {
	t.Parallel()

	sampler := newSampler(t, 10)
	row := make([]float64, 2)
	require.NoError(t, sampler.sampleRow(1, row))
	assert.Equal(t, []float64{0, 0}, row)
}
