package intervals

import (
	"context"

	"github.com/numserve/numserve/internal/numeric/interval"
	"github.com/numserve/numserve/internal/providers/math/common"
	"github.com/numserve/numserve/internal/types"
)

// IntervalOps handles boundary-typed interval operations
type IntervalOps struct {
	*common.MathOps
}

// GetTools returns interval tool definitions
func (o *IntervalOps) GetTools() []types.Tool {
	kindParam := types.Parameter{
		Name:        "kind",
		Type:        "string",
		Description: "Boundary kind: closed, open, lopen, ropen (default closed)",
		Required:    false,
	}

	return []types.Tool{
		{
			ID:          "math.interval.has",
			Name:        "Interval Has",
			Description: "Test scalar membership in a bounded range",
			Parameters: []types.Parameter{
				kindParam,
				{Name: "min", Type: "number", Description: "Lower bound", Required: true},
				{Name: "max", Type: "number", Description: "Upper bound", Required: true},
				{Name: "value", Type: "number", Description: "Value to test", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "math.interval.make",
			Name:        "Interval Make",
			Description: "Validate interval bounds for a boundary kind",
			Parameters: []types.Parameter{
				kindParam,
				{Name: "min", Type: "number", Description: "Lower bound", Required: true},
				{Name: "max", Type: "number", Description: "Upper bound", Required: true},
			},
			Returns: "object",
		},
	}
}

// Has tests whether value belongs to the interval [min, max] under the
// requested boundary kind
func (o *IntervalOps) Has(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	iv, result, err := o.build(params)
	if iv == nil {
		return result, err
	}

	value, ok := common.GetNumber(params, "value")
	if !ok {
		return common.Failure("value parameter required")
	}

	return common.Success(map[string]interface{}{"result": iv.Has(value)})
}

// Make validates the bounds and echoes the interval back
func (o *IntervalOps) Make(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	iv, result, err := o.build(params)
	if iv == nil {
		return result, err
	}

	return common.Success(map[string]interface{}{
		"kind": iv.Kind().String(),
		"min":  iv.Min(),
		"max":  iv.Max(),
	})
}

// build constructs the interval described by params, or returns the failure
// result to hand back to the caller.
func (o *IntervalOps) build(params map[string]interface{}) (*interval.Interval[float64], *types.Result, error) {
	kind := interval.Closed
	if name, ok := common.GetString(params, "kind"); ok {
		parsed, err := interval.ParseKind(name)
		if err != nil {
			result, rerr := common.Failure(err.Error())
			return nil, result, rerr
		}
		kind = parsed
	}

	min, ok := common.GetNumber(params, "min")
	if !ok {
		result, err := common.Failure("min parameter required")
		return nil, result, err
	}
	max, ok := common.GetNumber(params, "max")
	if !ok {
		result, err := common.Failure("max parameter required")
		return nil, result, err
	}

	iv, err := interval.NewOf(kind, min, max)
	if err != nil {
		result, rerr := common.Failure(err.Error())
		return nil, result, rerr
	}
	return &iv, nil, nil
}
