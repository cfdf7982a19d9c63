package interval

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Range is anything that presents itself as an interval over T by exposing a
// lower and an upper bound descriptor. Every algebra function in this package
// accepts any Range, so the operations are automatically available on custom
// interval-shaped types.
type Range[T constraints.Integer] interface {
	LowerBound() Bound[T]
	UpperBound() Bound[T]
}

// Span is the basic concrete Range: a pair of bound descriptors. The zero
// Span is the single point at the zero value of T.
type Span[T constraints.Integer] struct {
	Lower Bound[T]
	Upper Bound[T]
}

func (s Span[T]) LowerBound() Bound[T] { return s.Lower }
func (s Span[T]) UpperBound() Bound[T] { return s.Upper }

/* constructors covering the built-in interval shapes */

// Closed returns the interval [lo, hi].
func Closed[T constraints.Integer](lo, hi T) Span[T] {
	return Span[T]{Lower: Included(lo), Upper: Included(hi)}
}

// Open returns the interval (lo, hi).
func Open[T constraints.Integer](lo, hi T) Span[T] {
	return Span[T]{Lower: Excluded(lo), Upper: Excluded(hi)}
}

// ClosedOpen returns the half-open interval [lo, hi).
func ClosedOpen[T constraints.Integer](lo, hi T) Span[T] {
	return Span[T]{Lower: Included(lo), Upper: Excluded(hi)}
}

// OpenClosed returns the half-open interval (lo, hi].
func OpenClosed[T constraints.Integer](lo, hi T) Span[T] {
	return Span[T]{Lower: Excluded(lo), Upper: Included(hi)}
}

// AtLeast returns the interval [lo, +∞).
func AtLeast[T constraints.Integer](lo T) Span[T] {
	return Span[T]{Lower: Included(lo), Upper: Unbounded[T]()}
}

// GreaterThan returns the interval (lo, +∞).
func GreaterThan[T constraints.Integer](lo T) Span[T] {
	return Span[T]{Lower: Excluded(lo), Upper: Unbounded[T]()}
}

// AtMost returns the interval (-∞, hi].
func AtMost[T constraints.Integer](hi T) Span[T] {
	return Span[T]{Lower: Unbounded[T](), Upper: Included(hi)}
}

// LessThan returns the interval (-∞, hi).
func LessThan[T constraints.Integer](hi T) Span[T] {
	return Span[T]{Lower: Unbounded[T](), Upper: Excluded(hi)}
}

// Full returns the interval covering the whole element type.
func Full[T constraints.Integer]() Span[T] {
	return Span[T]{Lower: Unbounded[T](), Upper: Unbounded[T]()}
}

// Point returns the interval holding exactly v.
func Point[T constraints.Integer](v T) Span[T] {
	return Span[T]{Lower: Included(v), Upper: Included(v)}
}

// String implements fmt.Stringer.
//
// Rules:
//  1. A single inclusive point prints as "N".
//  2. A one-sided span prints in operator form: ">N" / ">=N" / "<N" / "<=N".
//  3. Otherwise bracket notation is used, e.g. "[0,3)", with unbounded sides
//     shown as "-∞" / "∞".
func (s Span[T]) String() string {
	if s.Lower.Kind == BoundIncluded && s.Upper.Kind == BoundIncluded && s.Lower.Value == s.Upper.Value {
		return fmt.Sprintf("%d", s.Lower.Value)
	}

	if s.Lower.Kind == BoundUnbounded && s.Upper.Kind != BoundUnbounded {
		if s.Upper.Kind == BoundIncluded {
			return fmt.Sprintf("<=%d", s.Upper.Value)
		}
		return fmt.Sprintf("<%d", s.Upper.Value)
	}
	if s.Upper.Kind == BoundUnbounded && s.Lower.Kind != BoundUnbounded {
		if s.Lower.Kind == BoundIncluded {
			return fmt.Sprintf(">=%d", s.Lower.Value)
		}
		return fmt.Sprintf(">%d", s.Lower.Value)
	}

	leftB := "("
	if s.Lower.Kind == BoundIncluded {
		leftB = "["
	}
	rightB := ")"
	if s.Upper.Kind == BoundIncluded {
		rightB = "]"
	}
	leftStr := "-∞"
	if s.Lower.Kind != BoundUnbounded {
		leftStr = fmt.Sprintf("%d", s.Lower.Value)
	}
	rightStr := "∞"
	if s.Upper.Kind != BoundUnbounded {
		rightStr = fmt.Sprintf("%d", s.Upper.Value)
	}
	return fmt.Sprintf("%s%s,%s%s", leftB, leftStr, rightStr, rightB)
}
