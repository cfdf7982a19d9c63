package interval

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Interval is the canonical closed interval [Lo, Hi]: all x with
// Lo <= x <= Hi. Lo > Hi means the interval is empty; the algebra never
// returns an empty Interval as a positive result, emptiness always comes
// back as ok == false.
type Interval[T constraints.Integer] struct {
	Lo T
	Hi T
}

func (i Interval[T]) LowerBound() Bound[T] { return Included(i.Lo) }
func (i Interval[T]) UpperBound() Bound[T] { return Included(i.Hi) }

// IsNotEmpty reports whether the interval holds at least one element.
func (i Interval[T]) IsNotEmpty() bool {
	return i.Lo <= i.Hi
}

// Contains reports whether x lies in the interval. An empty interval
// contains nothing.
func (i Interval[T]) Contains(x T) bool {
	return i.Lo <= x && x <= i.Hi
}

// Overlaps reports whether the interval shares at least one element with
// other.
func (i Interval[T]) Overlaps(other Range[T]) bool {
	return Overlaps[T](i, other)
}

// Intersect returns the intersection with other; see the package-level
// Intersect.
func (i Interval[T]) Intersect(other Range[T]) (Interval[T], bool) {
	return Intersect[T](i, other)
}

// SetMinus returns the parts of the interval not covered by other; see the
// package-level SetMinus.
func (i Interval[T]) SetMinus(other Range[T]) (left, right Interval[T], leftOK, rightOK bool) {
	return SetMinus[T](i, other)
}

// Length returns the number of elements in the interval; see the
// package-level Length.
func (i Interval[T]) Length() (T, bool) {
	return Length[T](i)
}

// String implements fmt.Stringer.
func (i Interval[T]) String() string {
	return fmt.Sprintf("[%d,%d]", i.Lo, i.Hi)
}

/* algebra over anything interval-shaped
 * ------------------------------------- */

// Lower returns the canonical inclusive lower endpoint of r: the bound value
// itself when included, its successor when excluded, and MinValue when
// unbounded.
func Lower[T constraints.Integer](r Range[T]) T {
	switch b := r.LowerBound(); b.Kind {
	case BoundIncluded:
		return b.Value
	case BoundExcluded:
		return Inc(b.Value)
	default:
		return MinValue[T]()
	}
}

// Upper returns the canonical inclusive upper endpoint of r: the bound value
// itself when included, its predecessor when excluded, and MaxValue when
// unbounded.
func Upper[T constraints.Integer](r Range[T]) T {
	switch b := r.UpperBound(); b.Kind {
	case BoundIncluded:
		return b.Value
	case BoundExcluded:
		return Dec(b.Value)
	default:
		return MaxValue[T]()
	}
}

// Canonicalize flattens r to its canonical closed interval. ok is false when
// the canonical form is empty, in which case the returned Interval must not
// be used.
func Canonicalize[T constraints.Integer](r Range[T]) (Interval[T], bool) {
	iv := Interval[T]{Lo: Lower(r), Hi: Upper(r)}
	return iv, iv.IsNotEmpty()
}

// Contains reports whether x lies in r.
func Contains[T constraints.Integer](r Range[T], x T) bool {
	return Lower(r) <= x && x <= Upper(r)
}

// Overlaps reports whether r and other share at least one element.
//
// This also works for differently shaped ranges, e.g. [0,3] and (2,+∞)
// overlap while [0,3] and [4,10] don't. If either range is empty the result
// is false.
func Overlaps[T constraints.Integer](r, other Range[T]) bool {
	return Upper(r) >= Lower(other) && Lower(r) <= Upper(other)
}

// Intersect returns the largest interval contained in both r and other,
// e.g. the intersection of [0,3] and [1,4] is [1,3]. ok is false when the
// ranges don't overlap.
func Intersect[T constraints.Integer](r, other Range[T]) (Interval[T], bool) {
	if !Overlaps(r, other) {
		return Interval[T]{}, false
	}
	return Interval[T]{
		Lo: max(Lower(r), Lower(other)),
		Hi: min(Upper(r), Upper(other)),
	}, true
}

// SetMinus returns the parts of r not covered by other, decomposed into at
// most two disjoint intervals, e.g. [0,3] minus [1,2] is [0,0] and [3,3].
// When both fragments are present the smaller-keyed one is in the left slot;
// a fragment surviving on only one side stays in the slot matching that
// side.
func SetMinus[T constraints.Integer](r, other Range[T]) (left, right Interval[T], leftOK, rightOK bool) {
	cut, ok := Intersect(r, other)
	if !ok {
		// other 与 r 不相交，r 原样返回（r 为空时压平成 absent）
		left, leftOK = Canonicalize[T](r)
		return left, Interval[T]{}, leftOK, false
	}
	lo, hi := Lower(r), Upper(r)
	// cut.Lo > lo implies cut.Lo > MinValue, so Dec cannot underflow;
	// symmetrically for Inc below.
	if cut.Lo > lo {
		left, leftOK = Interval[T]{Lo: lo, Hi: Dec(cut.Lo)}, true
	}
	if cut.Hi < hi {
		right, rightOK = Interval[T]{Lo: Inc(cut.Hi), Hi: hi}, true
	}
	return left, right, leftOK, rightOK
}

// Length returns the number of elements in r, i.e. (upper - lower) + 1 for a
// non-empty range. ok is false when r is empty. For a range spanning more
// than MaxValue elements the count wraps around.
func Length[T constraints.Integer](r Range[T]) (T, bool) {
	lo, hi := Lower(r), Upper(r)
	if lo > hi {
		return 0, false
	}
	return hi - lo + 1, true
}
