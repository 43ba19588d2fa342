package math_test

import (
	"context"
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	math "github.com/numserve/numserve/internal/providers/math"
	"github.com/numserve/numserve/internal/types"
)

func execute(t *testing.T, p *math.Provider, toolID string, params map[string]interface{}) *types.Result {
	t.Helper()
	result, err := p.Execute(context.Background(), toolID, params, nil)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func assertSuccess(t *testing.T, result *types.Result) {
	t.Helper()
	if result.Error != nil {
		require.True(t, result.Success, "expected success, got error: %s", *result.Error)
	}
	require.True(t, result.Success)
}

func assertFailure(t *testing.T, result *types.Result) {
	t.Helper()
	require.False(t, result.Success)
	require.NotNil(t, result.Error)
}

func TestDefinition(t *testing.T) {
	p := math.NewProvider()
	def := p.Definition()

	assert.Equal(t, "math", def.ID)
	assert.Equal(t, types.CategoryMath, def.Category)
	assert.NotEmpty(t, def.Tools)

	seen := make(map[string]bool)
	for _, tool := range def.Tools {
		assert.False(t, seen[tool.ID], "duplicate tool ID %s", tool.ID)
		seen[tool.ID] = true
	}
	for _, id := range []string{"math.padding", "math.aligned", "math.interval.has", "math.avg", "math.variance"} {
		assert.True(t, seen[id], "missing tool %s", id)
	}
}

func TestAlignmentTools(t *testing.T) {
	p := math.NewProvider()

	t.Run("isPowerOfTwo", func(t *testing.T) {
		result := execute(t, p, "math.isPowerOfTwo", map[string]interface{}{"n": 8.0})
		assertSuccess(t, result)
		assert.Equal(t, true, result.Data["result"])

		result = execute(t, p, "math.isPowerOfTwo", map[string]interface{}{"n": 0.0})
		assertSuccess(t, result)
		assert.Equal(t, false, result.Data["result"])
	})

	t.Run("nextPowerOfTwo", func(t *testing.T) {
		result := execute(t, p, "math.nextPowerOfTwo", map[string]interface{}{"n": 1000.0})
		assertSuccess(t, result)
		assert.Equal(t, int64(1024), result.Data["result"])
	})

	t.Run("padding", func(t *testing.T) {
		result := execute(t, p, "math.padding", map[string]interface{}{"value": 13.0, "alignment": 8.0})
		assertSuccess(t, result)
		assert.Equal(t, int64(3), result.Data["result"])
	})

	t.Run("padding with bad alignment", func(t *testing.T) {
		result := execute(t, p, "math.padding", map[string]interface{}{"value": 13.0, "alignment": 6.0})
		assertFailure(t, result)
		assert.Contains(t, *result.Error, "power of 2")
	})

	t.Run("aligned", func(t *testing.T) {
		result := execute(t, p, "math.aligned", map[string]interface{}{"value": 13.0, "alignment": 8.0})
		assertSuccess(t, result)
		assert.Equal(t, int64(16), result.Data["result"])
	})

	t.Run("aligned with negative value", func(t *testing.T) {
		result := execute(t, p, "math.aligned", map[string]interface{}{"value": -1.0, "alignment": 8.0})
		assertFailure(t, result)
		assert.Contains(t, *result.Error, "negative")
	})

	t.Run("fractional input rejected", func(t *testing.T) {
		result := execute(t, p, "math.padding", map[string]interface{}{"value": 1.5, "alignment": 8.0})
		assertFailure(t, result)
	})
}

func TestIntervalTools(t *testing.T) {
	p := math.NewProvider()

	t.Run("has with default closed kind", func(t *testing.T) {
		result := execute(t, p, "math.interval.has", map[string]interface{}{
			"min": 2.0, "max": 5.0, "value": 5.0,
		})
		assertSuccess(t, result)
		assert.Equal(t, true, result.Data["result"])
	})

	t.Run("has per kind", func(t *testing.T) {
		cases := []struct {
			kind  string
			value float64
			want  bool
		}{
			{"closed", 2.0, true},
			{"open", 2.0, false},
			{"open", 3.0, true},
			{"lopen", 2.0, false},
			{"lopen", 5.0, true},
			{"ropen", 2.0, true},
			{"ropen", 5.0, false},
		}
		for _, c := range cases {
			result := execute(t, p, "math.interval.has", map[string]interface{}{
				"kind": c.kind, "min": 2.0, "max": 5.0, "value": c.value,
			})
			assertSuccess(t, result)
			assert.Equal(t, c.want, result.Data["result"], "%s.Has(%v)", c.kind, c.value)
		}
	})

	t.Run("make validates bounds", func(t *testing.T) {
		result := execute(t, p, "math.interval.make", map[string]interface{}{
			"kind": "open", "min": 3.0, "max": 3.0,
		})
		assertFailure(t, result)
		assert.Contains(t, *result.Error, "invalid")
	})

	t.Run("unknown kind", func(t *testing.T) {
		result := execute(t, p, "math.interval.has", map[string]interface{}{
			"kind": "bogus", "min": 1.0, "max": 2.0, "value": 1.5,
		})
		assertFailure(t, result)
	})
}

func TestStatisticsTools(t *testing.T) {
	p := math.NewProvider()
	numbers := []interface{}{1.0, 2.0, 3.0}

	t.Run("avg", func(t *testing.T) {
		result := execute(t, p, "math.avg", map[string]interface{}{"numbers": numbers})
		assertSuccess(t, result)
		assert.Equal(t, 2.0, result.Data["result"])
	})

	t.Run("variance population", func(t *testing.T) {
		result := execute(t, p, "math.variance", map[string]interface{}{"numbers": numbers})
		assertSuccess(t, result)
		assert.InDelta(t, 2.0/3.0, result.Data["result"].(float64), 1e-12)
	})

	t.Run("variance sample", func(t *testing.T) {
		result := execute(t, p, "math.variance", map[string]interface{}{
			"numbers": numbers, "general": false,
		})
		assertSuccess(t, result)
		assert.InDelta(t, 1.0, result.Data["result"].(float64), 1e-12)
	})

	t.Run("variance with precomputed mean", func(t *testing.T) {
		result := execute(t, p, "math.variance", map[string]interface{}{
			"numbers": numbers, "mean": 2.0,
		})
		assertSuccess(t, result)
		assert.InDelta(t, 2.0/3.0, result.Data["result"].(float64), 1e-12)
	})

	t.Run("variance of empty array", func(t *testing.T) {
		result := execute(t, p, "math.variance", map[string]interface{}{
			"numbers": []interface{}{},
		})
		assertFailure(t, result)
	})

	t.Run("median", func(t *testing.T) {
		result := execute(t, p, "math.median", map[string]interface{}{
			"numbers": []interface{}{5.0, 1.0, 3.0},
		})
		assertSuccess(t, result)
		assert.Equal(t, 3.0, result.Data["result"])
	})

	t.Run("stdev", func(t *testing.T) {
		result := execute(t, p, "math.stdev", map[string]interface{}{"numbers": numbers})
		assertSuccess(t, result)
		assert.InDelta(t, 1.0, result.Data["result"].(float64), 1e-12)
	})

	t.Run("correlation length mismatch", func(t *testing.T) {
		result := execute(t, p, "math.correlation", map[string]interface{}{
			"x": []interface{}{1.0, 2.0},
			"y": []interface{}{1.0, 2.0, 3.0},
		})
		assertFailure(t, result)
	})

	t.Run("avg rejects NaN input", func(t *testing.T) {
		nan := gomath.NaN()
		result := execute(t, p, "math.avg", map[string]interface{}{
			"numbers": []interface{}{1.0, nan},
		})
		assertFailure(t, result)
	})
}

func TestUnknownTool(t *testing.T) {
	p := math.NewProvider()
	result := execute(t, p, "math.bogus", map[string]interface{}{})
	assertFailure(t, result)
	assert.Contains(t, *result.Error, "unknown tool")
}
