package alignment

import (
	"context"

	"github.com/numserve/numserve/internal/numeric/align"
	"github.com/numserve/numserve/internal/providers/math/common"
	"github.com/numserve/numserve/internal/types"
)

// AlignOps handles power-of-two alignment arithmetic
type AlignOps struct {
	*common.MathOps
}

// GetTools returns alignment tool definitions
func (a *AlignOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "math.isPowerOfTwo",
			Name:        "Is Power Of Two",
			Description: "Check whether an integer is a power of two",
			Parameters: []types.Parameter{
				{Name: "n", Type: "number", Description: "Integer to test", Required: true},
			},
			Returns: "boolean",
		},
		{
			ID:          "math.nextPowerOfTwo",
			Name:        "Next Power Of Two",
			Description: "Round an integer up to the nearest power of two",
			Parameters: []types.Parameter{
				{Name: "n", Type: "number", Description: "Integer to round", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.padding",
			Name:        "Padding",
			Description: "Bytes to add so value is aligned to a power-of-two boundary",
			Parameters: []types.Parameter{
				{Name: "value", Type: "number", Description: "Non-negative value", Required: true},
				{Name: "alignment", Type: "number", Description: "Power-of-two alignment", Required: true},
			},
			Returns: "number",
		},
		{
			ID:          "math.aligned",
			Name:        "Aligned",
			Description: "Value rounded up to the next multiple of a power-of-two alignment",
			Parameters: []types.Parameter{
				{Name: "value", Type: "number", Description: "Non-negative value", Required: true},
				{Name: "alignment", Type: "number", Description: "Power-of-two alignment", Required: true},
			},
			Returns: "number",
		},
	}
}

// IsPowerOfTwo checks whether n has exactly one bit set
func (a *AlignOps) IsPowerOfTwo(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, ok := common.GetInt(params, "n")
	if !ok {
		return common.Failure("n parameter required (integer)")
	}

	return common.Success(map[string]interface{}{"result": align.IsPowerOfTwo(n)})
}

// NextPowerOfTwo rounds n up to the nearest power of two
func (a *AlignOps) NextPowerOfTwo(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, ok := common.GetInt(params, "n")
	if !ok {
		return common.Failure("n parameter required (integer)")
	}

	return common.Success(map[string]interface{}{"result": align.NextPowerOfTwo(n)})
}

// Padding computes the distance from value to the next aligned boundary
func (a *AlignOps) Padding(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	value, ok := common.GetInt(params, "value")
	if !ok {
		return common.Failure("value parameter required (integer)")
	}
	alignment, ok := common.GetInt(params, "alignment")
	if !ok {
		return common.Failure("alignment parameter required (integer)")
	}

	pad, err := align.Padding(value, alignment)
	if err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{"result": pad})
}

// Aligned rounds value up to the next multiple of alignment
func (a *AlignOps) Aligned(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	value, ok := common.GetInt(params, "value")
	if !ok {
		return common.Failure("value parameter required (integer)")
	}
	alignment, ok := common.GetInt(params, "alignment")
	if !ok {
		return common.Failure("alignment parameter required (integer)")
	}

	aligned, err := align.Aligned(value, alignment)
	if err != nil {
		return common.Failure(err.Error())
	}

	return common.Success(map[string]interface{}{"result": aligned})
}
