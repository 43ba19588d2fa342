// Package math implements the numeric utility service provider.
package math

import (
	"context"
	"fmt"

	"github.com/numserve/numserve/internal/providers/math/alignment"
	"github.com/numserve/numserve/internal/providers/math/common"
	"github.com/numserve/numserve/internal/providers/math/intervals"
	"github.com/numserve/numserve/internal/providers/math/statistics"
	"github.com/numserve/numserve/internal/types"
)

// Provider implements numeric utility operations
type Provider struct {
	align     *alignment.AlignOps
	intervals *intervals.IntervalOps
	stats     *statistics.StatsOps
}

// NewProvider creates a modular math provider
func NewProvider() *Provider {
	ops := &common.MathOps{}

	return &Provider{
		align:     &alignment.AlignOps{MathOps: ops},
		intervals: &intervals.IntervalOps{MathOps: ops},
		stats:     &statistics.StatsOps{MathOps: ops},
	}
}

// Definition returns service metadata with all module tools
func (m *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, m.align.GetTools()...)
	tools = append(tools, m.intervals.GetTools()...)
	tools = append(tools, m.stats.GetTools()...)

	return types.Service{
		ID:          "math",
		Name:        "Math Service",
		Description: "Numeric utilities (alignment arithmetic, intervals, statistics)",
		Category:    types.CategoryMath,
		Capabilities: []string{
			"alignment",
			"intervals",
			"statistics",
		},
		Tools: tools,
	}
}

// Execute routes to the appropriate module
func (m *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Alignment arithmetic
	case "math.isPowerOfTwo":
		return m.align.IsPowerOfTwo(ctx, params, appCtx)
	case "math.nextPowerOfTwo":
		return m.align.NextPowerOfTwo(ctx, params, appCtx)
	case "math.padding":
		return m.align.Padding(ctx, params, appCtx)
	case "math.aligned":
		return m.align.Aligned(ctx, params, appCtx)

	// Intervals
	case "math.interval.has":
		return m.intervals.Has(ctx, params, appCtx)
	case "math.interval.make":
		return m.intervals.Make(ctx, params, appCtx)

	// Statistics
	case "math.avg":
		return m.stats.Avg(ctx, params, appCtx)
	case "math.variance":
		return m.stats.Variance(ctx, params, appCtx)
	case "math.stdev":
		return m.stats.Stdev(ctx, params, appCtx)
	case "math.median":
		return m.stats.Median(ctx, params, appCtx)
	case "math.percentile":
		return m.stats.Percentile(ctx, params, appCtx)
	case "math.correlation":
		return m.stats.Correlation(ctx, params, appCtx)

	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
