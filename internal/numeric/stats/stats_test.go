package stats

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvg(t *testing.T) {
	assert.Equal(t, 2.0, Avg([]float64{1, 2, 3}))
	assert.Equal(t, 5.0, Avg([]float64{5}))
	assert.InDelta(t, 2.5, Avg([]float64{1, 2, 3, 4}), 1e-12)
	assert.InDelta(t, 0.0, Avg([]float64{-3, 3}), 1e-12)

	t.Run("empty input yields zero", func(t *testing.T) {
		assert.Equal(t, 0.0, Avg(nil))
		assert.Equal(t, 0.0, Avg([]float64{}))
	})

	t.Run("large magnitudes do not overflow", func(t *testing.T) {
		huge := math.MaxFloat64 / 2
		got := Avg([]float64{huge, huge, huge, huge})
		assert.False(t, math.IsInf(got, 0))
		assert.InDelta(t, huge, got, huge*1e-12)
	})
}

func TestVarianceMean(t *testing.T) {
	data := []float64{1, 2, 3}

	t.Run("population", func(t *testing.T) {
		assert.InDelta(t, 2.0/3.0, VarianceMean(data, 2.0, true), 1e-12)
	})

	t.Run("sample", func(t *testing.T) {
		assert.InDelta(t, 1.0, VarianceMean(data, 2.0, false), 1e-12)
	})

	t.Run("constant sequence", func(t *testing.T) {
		assert.Equal(t, 0.0, VarianceMean([]float64{4, 4, 4, 4}, 4.0, true))
	})

	t.Run("single-element sample variance is NaN", func(t *testing.T) {
		assert.True(t, math.IsNaN(VarianceMean([]float64{7}, 7.0, false)))
	})

	t.Run("empty input yields zero", func(t *testing.T) {
		assert.Equal(t, 0.0, VarianceMean(nil, 0, true))
	})
}

func TestVariance(t *testing.T) {
	data := []float64{1, 2, 3}

	assert.InDelta(t, 2.0/3.0, Variance(data, true), 1e-12)
	assert.InDelta(t, 1.0, Variance(data, false), 1e-12)
}

// The convenience overload must agree with the two-pass form fed a
// precomputed mean, and the variance of any finite sequence is never
// negative.
func TestVarianceProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		n := 2 + rng.Intn(64)
		data := make([]float64, n)
		scale := math.Pow(10, float64(rng.Intn(12)-6))
		for j := range data {
			data[j] = (rng.Float64()*2 - 1) * scale
		}

		mean := Avg(data)
		for _, general := range []bool{true, false} {
			v1 := Variance(data, general)
			v2 := VarianceMean(data, mean, general)

			assert.GreaterOrEqual(t, v1, 0.0)
			assert.InDelta(t, v1, v2, math.Abs(v1)*1e-9+1e-15)
		}
	}
}
