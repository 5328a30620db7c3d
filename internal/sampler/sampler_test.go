package sampler_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stupside/uaforge/internal/sampler"
)

// countingRand records how many draws of each kind were made.
type countingRand struct {
	sampler.Rand
	ints   int
	floats int
}

func (c *countingRand) IntN(n int) int {
	c.ints++
	return c.Rand.IntN(n)
}

func (c *countingRand) Float64() float64 {
	c.floats++
	return c.Rand.Float64()
}

func TestNewRejectsInvalidWeights(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		weights []float64
	}{
		{name: "nil", weights: nil},
		{name: "empty", weights: []float64{}},
		{name: "all zero", weights: []float64{0, 0, 0}},
		{name: "negative", weights: []float64{1, -1, 2}},
		{name: "NaN", weights: []float64{1, math.NaN()}},
		{name: "Inf", weights: []float64{math.Inf(1), 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s, err := sampler.New(tc.weights)
			require.ErrorIs(t, err, sampler.ErrConfiguration)
			assert.Nil(t, s)
		})
	}
}

func TestMustNewPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { sampler.MustNew(nil) })
	assert.NotPanics(t, func() { sampler.MustNew([]float64{1}) })
}

func TestSampleSingleOutcome(t *testing.T) {
	t.Parallel()

	s, err := sampler.New([]float64{0.25})
	require.NoError(t, err)

	r := sampler.NewRand(1)
	for range 1000 {
		assert.Equal(t, 0, s.Sample(r))
	}
}

func TestSampleConsumesOneDrawOfEachKind(t *testing.T) {
	t.Parallel()

	s, err := sampler.New([]float64{5, 1, 3})
	require.NoError(t, err)

	r := &countingRand{Rand: sampler.NewRand(7)}
	for range 100 {
		s.Sample(r)
	}
	assert.Equal(t, 100, r.ints)
	assert.Equal(t, 100, r.floats)
}

func TestSampleStaysInRangeAndSkipsZeroWeights(t *testing.T) {
	t.Parallel()

	weights := []float64{0, 3, 0, 1, 0}
	s, err := sampler.New(weights)
	require.NoError(t, err)
	assert.Equal(t, len(weights), s.Len())

	r := sampler.NewRand(99)
	for range 50_000 {
		i := s.Sample(r)
		require.GreaterOrEqual(t, i, 0)
		require.Less(t, i, len(weights))
		require.NotZero(t, weights[i], "sampled zero-weight index %d", i)
	}
}

func TestSampleConvergesToWeights(t *testing.T) {
	t.Parallel()

	weights := []float64{1, 2, 3, 4, 10, 0.5}
	s, err := sampler.New(weights)
	require.NoError(t, err)

	const draws = 200_000
	counts := make([]int, len(weights))
	r := sampler.NewRand(2024)
	for range draws {
		counts[s.Sample(r)]++
	}

	var total float64
	for _, w := range weights {
		total += w
	}

	// Chi-squared with 5 degrees of freedom; 20.52 is the 0.999 quantile.
	var chi2 float64
	for i, w := range weights {
		expected := draws * w / total
		d := float64(counts[i]) - expected
		chi2 += d * d / expected
	}
	assert.Less(t, chi2, 20.52, "counts %v diverge from weights %v", counts, weights)
}

func TestTablesAreCopies(t *testing.T) {
	t.Parallel()

	s, err := sampler.New([]float64{1, 9})
	require.NoError(t, err)

	prob := s.Probabilities()
	prob[0] = 42
	assert.NotEqual(t, 42.0, s.Probabilities()[0])

	aliases := s.Aliases()
	aliases[0] = 42
	assert.NotEqual(t, 42, s.Aliases()[0])
}

func TestSameSeedSameSequence(t *testing.T) {
	t.Parallel()

	s, err := sampler.New([]float64{3, 1, 4, 1, 5, 9, 2, 6})
	require.NoError(t, err)

	a, b := sampler.NewRand(11), sampler.NewRand(11)
	for range 1000 {
		require.Equal(t, s.Sample(a), s.Sample(b))
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	t.Parallel()

	items := []int{0, 1, 2, 3, 4, 5, 6, 7}
	sampler.Shuffle(sampler.NewRand(5), len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, items)
}

func TestChoiceAndIntRange(t *testing.T) {
	t.Parallel()

	r := sampler.NewRand(3)

	_, ok := sampler.Choice(r, []string{})
	assert.False(t, ok)

	v, ok := sampler.Choice(r, []string{"only"})
	assert.True(t, ok)
	assert.Equal(t, "only", v)

	for range 1000 {
		n := sampler.IntRange(r, 4, 19)
		require.GreaterOrEqual(t, n, 4)
		require.LessOrEqual(t, n, 19)
	}
}

func BenchmarkSample(b *testing.B) {
	weights := make([]float64, 512)
	for i := range weights {
		weights[i] = float64(i%17) + 0.5
	}
	s := sampler.MustNew(weights)
	r := sampler.NewRand(1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Sample(r)
	}
}
