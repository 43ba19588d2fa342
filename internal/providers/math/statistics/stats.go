package statistics

import (
	"context"
	gomath "math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/numserve/numserve/internal/numeric/stats"
	"github.com/numserve/numserve/internal/providers/math/common"
	"github.com/numserve/numserve/internal/types"
)

// StatsOps handles statistical operations. The avg/variance tools use the
// overflow-resistant core formulas; the remaining summaries use gonum.
type StatsOps struct {
	*common.MathOps
}

// GetTools returns stats tool definitions
func (s *StatsOps) GetTools() []types.Tool {
	numbersParam := types.Parameter{
		Name:        "numbers",
		Type:        "array",
		Description: "Array of numbers",
		Required:    true,
	}

	return []types.Tool{
		{
			ID:          "math.avg",
			Name:        "Average",
			Description: "Calculate arithmetic mean (overflow-resistant accumulation)",
			Parameters:  []types.Parameter{numbersParam},
			Returns:     "number",
		},
		{
			ID:          "math.variance",
			Name:        "Variance",
			Description: "Calculate population or sample variance",
			Parameters: []types.Parameter{
				numbersParam,
				{Name: "mean", Type: "number", Description: "Precomputed mean (optional)", Required: false},
				{Name: "general", Type: "boolean", Description: "Population variance if true (default), sample if false", Required: false},
			},
			Returns: "number",
		},
		{
			ID:          "math.stdev",
			Name:        "Standard Deviation",
			Description: "Calculate sample standard deviation",
			Parameters:  []types.Parameter{numbersParam},
			Returns:     "number",
		},
		{
			ID:          "math.median",
			Name:        "Median",
			Description: "Calculate median value",
			Parameters:  []types.Parameter{numbersParam},
			Returns:     "number",
		},
		{
			ID:          "math.percentile",
			Name:        "Percentile",
			Description: "Calculate nth percentile",
			Parameters: []types.Parameter{
				numbersParam,
				{Name: "p", Type: "number", Description: "Percentile (0-100)", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.correlation",
			Name:        "Correlation",
			Description: "Calculate Pearson correlation coefficient",
			Parameters: []types.Parameter{
				{Name: "x", Type: "array", Description: "First dataset", Required: true},
				{Name: "y", Type: "array", Description: "Second dataset", Required: true},
			},
			Returns: "number",
		},
	}
}

// Avg calculates the arithmetic mean with per-element division
func (s *StatsOps) Avg(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, ok := common.GetNumbers(params, "numbers")
	if !ok || len(numbers) == 0 {
		return common.Failure("numbers array required")
	}

	if err := common.ValidateNumbers(numbers, "numbers"); err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{"result": stats.Avg(numbers)})
}

// Variance calculates population or sample variance. A precomputed mean can
// be supplied to skip the first pass.
func (s *StatsOps) Variance(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, ok := common.GetNumbers(params, "numbers")
	if !ok || len(numbers) == 0 {
		return common.Failure("numbers array required")
	}

	if err := common.ValidateNumbers(numbers, "numbers"); err != nil {
		return common.Failure(err.Error())
	}

	general := true
	if g, ok := common.GetBool(params, "general"); ok {
		general = g
	}
	if !general && len(numbers) < 2 {
		return common.Failure("sample variance requires at least 2 elements")
	}

	var result float64
	if mean, ok := common.GetNumber(params, "mean"); ok {
		result = stats.VarianceMean(numbers, mean, general)
	} else {
		result = stats.Variance(numbers, general)
	}

	return common.Success(map[string]interface{}{"result": result})
}

// Stdev calculates sample standard deviation using gonum
func (s *StatsOps) Stdev(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, ok := common.GetNumbers(params, "numbers")
	if !ok || len(numbers) < 2 {
		return common.Failure("numbers array with at least 2 elements required")
	}

	if err := common.ValidateNumbers(numbers, "numbers"); err != nil {
		return common.Failure(err.Error())
	}

	mean := stat.Mean(numbers, nil)
	variance := stat.Variance(numbers, nil)
	stdev := gomath.Sqrt(variance)

	return common.Success(map[string]interface{}{
		"result":   stdev,
		"variance": variance,
		"mean":     mean,
	})
}

// Median calculates median using gonum quantile
func (s *StatsOps) Median(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, ok := common.GetNumbers(params, "numbers")
	if !ok || len(numbers) == 0 {
		return common.Failure("numbers array required")
	}

	if err := common.ValidateNumbers(numbers, "numbers"); err != nil {
		return common.Failure(err.Error())
	}

	sorted := make([]float64, len(numbers))
	copy(sorted, numbers)
	sort.Float64s(sorted)

	median := stat.Quantile(0.5, stat.Empirical, sorted, nil)
	return common.Success(map[string]interface{}{"result": median})
}

// Percentile calculates nth percentile using gonum quantile
func (s *StatsOps) Percentile(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	numbers, ok := common.GetNumbers(params, "numbers")
	if !ok || len(numbers) == 0 {
		return common.Failure("numbers array required")
	}

	p, ok := common.GetNumber(params, "p")
	if !ok || p < 0 || p > 100 {
		return common.Failure("p parameter required (0-100)")
	}

	if err := common.ValidateNumbers(numbers, "numbers"); err != nil {
		return common.Failure(err.Error())
	}

	sorted := make([]float64, len(numbers))
	copy(sorted, numbers)
	sort.Float64s(sorted)

	result := stat.Quantile(p/100.0, stat.Empirical, sorted, nil)
	return common.Success(map[string]interface{}{"result": result})
}

// Correlation calculates Pearson correlation coefficient using gonum
func (s *StatsOps) Correlation(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := common.GetNumbers(params, "x")
	if !ok || len(x) == 0 {
		return common.Failure("x array required")
	}

	y, ok := common.GetNumbers(params, "y")
	if !ok || len(y) == 0 {
		return common.Failure("y array required")
	}

	if len(x) != len(y) {
		return common.Failure("x and y arrays must have same length")
	}
	if len(x) < 2 {
		return common.Failure("arrays must have at least 2 elements")
	}

	if err := common.ValidateNumbers(x, "x"); err != nil {
		return common.Failure(err.Error())
	}
	if err := common.ValidateNumbers(y, "y"); err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{"result": stat.Correlation(x, y, nil)})
}
