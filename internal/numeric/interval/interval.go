// Package interval provides a mathematical interval value type with four
// boundary-inclusion semantics.
package interval

import (
	"cmp"
	"fmt"

	"github.com/numserve/numserve/internal/numeric"
)

// Kind determines whether the interval's endpoints are included in
// membership tests.
type Kind uint8

const (
	// Closed denotes a [min, max] interval.
	Closed Kind = iota
	// Open denotes a (min, max) interval.
	Open
	// Lopen denotes a (min, max] (left-open) interval.
	Lopen
	// Ropen denotes a [min, max) (right-open) interval.
	Ropen
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case Lopen:
		return "lopen"
	case Ropen:
		return "ropen"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind converts a kind name to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "closed":
		return Closed, nil
	case "open":
		return Open, nil
	case "lopen":
		return Lopen, nil
	case "ropen":
		return Ropen, nil
	}
	return 0, fmt.Errorf("%w: unknown interval kind %q", numeric.ErrInvalidArgument, s)
}

// Interval is a bounded range of ordered values. The zero value is the
// closed interval [zero(T), zero(T)].
//
// The constructors establish the invariant min <= max (min < max for the
// non-closed kinds); the type has no mutating operations other than Release,
// so the invariant holds for the lifetime of a value.
type Interval[T cmp.Ordered] struct {
	kind Kind
	min  T
	max  T
}

// New constructs the closed interval [min, max]. Requires min <= max.
func New[T cmp.Ordered](min, max T) (Interval[T], error) {
	return NewOf(Closed, min, max)
}

// NewOf constructs an interval of the given kind. Requires min <= max for
// Closed and min < max otherwise; violations report
// numeric.ErrInvalidArgument.
func NewOf[T cmp.Ordered](kind Kind, min, max T) (Interval[T], error) {
	switch kind {
	case Closed:
		if min > max {
			return Interval[T]{}, fmt.Errorf("%w: interval is invalid (min > max)",
				numeric.ErrInvalidArgument)
		}
	case Open, Lopen, Ropen:
		if min >= max {
			return Interval[T]{}, fmt.Errorf("%w: interval is invalid (min >= max)",
				numeric.ErrInvalidArgument)
		}
	default:
		return Interval[T]{}, fmt.Errorf("%w: unknown interval kind %d",
			numeric.ErrInvalidArgument, kind)
	}
	return Interval[T]{kind: kind, min: min, max: max}, nil
}

// MakeClosed returns the [min, max] interval.
func MakeClosed[T cmp.Ordered](min, max T) (Interval[T], error) {
	return NewOf(Closed, min, max)
}

// MakeOpen returns the (min, max) interval.
func MakeOpen[T cmp.Ordered](min, max T) (Interval[T], error) {
	return NewOf(Open, min, max)
}

// MakeLopen returns the (min, max] interval.
func MakeLopen[T cmp.Ordered](min, max T) (Interval[T], error) {
	return NewOf(Lopen, min, max)
}

// MakeRopen returns the [min, max) interval.
func MakeRopen[T cmp.Ordered](min, max T) (Interval[T], error) {
	return NewOf(Ropen, min, max)
}

// Kind returns the boundary-inclusion kind.
func (i Interval[T]) Kind() Kind { return i.kind }

// Min returns the lower bound.
func (i Interval[T]) Min() T { return i.min }

// Max returns the upper bound.
func (i Interval[T]) Max() T { return i.max }

// Has reports whether v belongs to the interval.
//
// The kind set is closed and validated at construction, so the dispatch
// needs no unreachable branch: anything that is not one of the three open
// variants is Closed.
func (i Interval[T]) Has(v T) bool {
	switch i.kind {
	case Open:
		return i.min < v && v < i.max
	case Lopen:
		return i.min < v && v <= i.max
	case Ropen:
		return i.min <= v && v < i.max
	default:
		return i.min <= v && v <= i.max
	}
}

// Release returns the bounds and resets the receiver to the zero interval.
// It exists so callers can move the bound values out without copying them
// a second time.
func (i *Interval[T]) Release() (min, max T) {
	min, max = i.min, i.max
	*i = Interval[T]{}
	return min, max
}
