// Package align provides power-of-two alignment arithmetic for allocators
// and binary-layout code.
//
// The bitwise formulas assume two's-complement integers and a power-of-two
// alignment. Instead of leaving those assumptions implicit, Padding and
// Aligned validate them and report numeric.ErrInvalidArgument on violation.
package align

import (
	"fmt"
	"math/bits"

	"github.com/numserve/numserve/internal/numeric"
)

// Integer represents all possible integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// IsPowerOfTwo reports whether n has exactly one bit set.
//
// Zero is not a power of two. The classic n&(n-1) trick alone would accept
// zero (and, for signed types, the minimum value); the sign check rules both
// out.
func IsPowerOfTwo[I Integer](n I) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of two >= n. It returns 1 for
// n <= 1 and n itself when n is already a power of two.
func NextPowerOfTwo[I Integer](n I) I {
	if n <= 1 {
		return 1
	}
	return I(1) << bits.Len64(uint64(n)-1)
}

// Padding returns the smallest non-negative amount to add to value so that
// value+padding is a multiple of alignment.
//
// Requires value >= 0 and IsPowerOfTwo(alignment); otherwise the result is
// zero and a numeric.ErrInvalidArgument error.
func Padding[I Integer](value, alignment I) (I, error) {
	if value < 0 {
		return 0, fmt.Errorf("%w: cannot calculate padding for a negative value",
			numeric.ErrInvalidArgument)
	}
	if !IsPowerOfTwo(alignment) {
		return 0, fmt.Errorf("%w: cannot calculate padding with alignment that is not a power of 2",
			numeric.ErrInvalidArgument)
	}
	return (0 - value) & (alignment - 1), nil
}

// Aligned returns value rounded up to the next multiple of alignment,
// computed as (value + alignment - 1) & -alignment.
//
// Same preconditions and error behavior as Padding.
func Aligned[I Integer](value, alignment I) (I, error) {
	if value < 0 {
		return 0, fmt.Errorf("%w: cannot align a negative value",
			numeric.ErrInvalidArgument)
	}
	if !IsPowerOfTwo(alignment) {
		return 0, fmt.Errorf("%w: cannot align a value with alignment that is not a power of 2",
			numeric.ErrInvalidArgument)
	}
	return (value + (alignment - 1)) & -alignment, nil
}
