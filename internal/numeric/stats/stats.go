// Package stats provides numerically-stable summary statistics.
//
// Avg and Variance accumulate each element pre-divided by the denominator
// instead of summing first and dividing once. The per-element division
// trades a little extra rounding error for resistance to intermediate
// overflow when the raw sum would leave the representable range. Do not
// "simplify" the formulas to sum-then-divide: the floating-point results
// would change.
package stats

// Avg returns the arithmetic mean of data, accumulated as sum(x_i/n).
//
// An empty slice yields 0 (the loop body never runs, so no division
// happens). NaN and Inf inputs propagate per IEEE-754; validating the input
// is the caller's concern.
func Avg(data []float64) float64 {
	var result float64
	n := float64(len(data))
	for _, num := range data {
		result += num / n
	}
	return result
}

// VarianceMean returns the variance of data around the given mean,
// accumulated as sum((d/den)*d) with d = x_i - mean. The denominator is
// len(data) for the general (population) variance and len(data)-1 for the
// sample variance.
//
// The sample variance of a single-element slice is NaN (0/0), which
// propagates per IEEE-754. A finite negative result cannot arise from the
// formula and indicates a defect, so it panics rather than returning a
// misleading value; NaN does not trip the check.
func VarianceMean(data []float64, mean float64, general bool) float64 {
	den := float64(len(data))
	if !general {
		den--
	}
	var result float64
	for _, num := range data {
		d := num - mean
		result += (d / den) * d
	}
	if result < 0 {
		panic("stats: variance accumulated a negative result")
	}
	return result
}

// Variance returns the variance of data, computing the mean internally and
// delegating to VarianceMean. It traverses data twice.
func Variance(data []float64, general bool) float64 {
	return VarianceMean(data, Avg(data), general)
}
