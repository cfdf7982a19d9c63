package calc

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/vipcxj/interval"
)

// Empty is what an absent result prints as.
const Empty = "(empty)"

// Evaluator evaluates interval operations over one concrete element type,
// hiding the generic instantiation behind a uniform surface the commands can
// call with raw literals.
type Evaluator interface {
	// Bounds prints the canonical closed form of one literal.
	Bounds(a string) (string, error)
	// Contains reports whether the value x lies in a.
	Contains(a, x string) (string, error)
	// Overlaps reports whether a and b share at least one element.
	Overlaps(a, b string) (string, error)
	// Intersect prints the intersection of a and b.
	Intersect(a, b string) (string, error)
	// SetMinus prints the two fragments of a minus b, left slot first.
	SetMinus(a, b string) (string, error)
	// Length prints the number of elements in a.
	Length(a string) (string, error)
}

// NewEvaluator returns the Evaluator instantiated at the given element type.
func NewEvaluator(t ElemType) Evaluator {
	switch t {
	case ElemInt:
		return evaluator[int]{}
	case ElemInt8:
		return evaluator[int8]{}
	case ElemInt16:
		return evaluator[int16]{}
	case ElemInt32:
		return evaluator[int32]{}
	case ElemInt64:
		return evaluator[int64]{}
	case ElemUint:
		return evaluator[uint]{}
	case ElemUint8:
		return evaluator[uint8]{}
	case ElemUint16:
		return evaluator[uint16]{}
	case ElemUint32:
		return evaluator[uint32]{}
	case ElemUint64:
		return evaluator[uint64]{}
	case ElemUintptr:
		return evaluator[uintptr]{}
	default:
		panic(fmt.Sprintf("calc: unknown element type %v", t))
	}
}

type evaluator[T constraints.Integer] struct{}

func (evaluator[T]) Bounds(a string) (string, error) {
	r, err := ParseSpan[T](a)
	if err != nil {
		return "", err
	}
	iv, ok := interval.Canonicalize[T](r)
	if !ok {
		return Empty, nil
	}
	return iv.String(), nil
}

func (evaluator[T]) Contains(a, x string) (string, error) {
	r, err := ParseSpan[T](a)
	if err != nil {
		return "", err
	}
	v, err := parseValue[T](x)
	if err != nil {
		return "", fmt.Errorf("invalid element value: %w", err)
	}
	return strconv.FormatBool(interval.Contains[T](r, v)), nil
}

func (evaluator[T]) Overlaps(a, b string) (string, error) {
	ra, rb, err := parsePair[T](a, b)
	if err != nil {
		return "", err
	}
	return strconv.FormatBool(interval.Overlaps[T](ra, rb)), nil
}

func (evaluator[T]) Intersect(a, b string) (string, error) {
	ra, rb, err := parsePair[T](a, b)
	if err != nil {
		return "", err
	}
	cut, ok := interval.Intersect[T](ra, rb)
	if !ok {
		return Empty, nil
	}
	return cut.String(), nil
}

func (evaluator[T]) SetMinus(a, b string) (string, error) {
	ra, rb, err := parsePair[T](a, b)
	if err != nil {
		return "", err
	}
	left, right, leftOK, rightOK := interval.SetMinus[T](ra, rb)
	return formatFragment(left, leftOK) + " " + formatFragment(right, rightOK), nil
}

func (evaluator[T]) Length(a string) (string, error) {
	r, err := ParseSpan[T](a)
	if err != nil {
		return "", err
	}
	n, ok := interval.Length[T](r)
	if !ok {
		return Empty, nil
	}
	return fmt.Sprintf("%d", n), nil
}

func parsePair[T constraints.Integer](a, b string) (ra, rb interval.Span[T], err error) {
	if ra, err = ParseSpan[T](a); err != nil {
		return ra, rb, err
	}
	rb, err = ParseSpan[T](b)
	return ra, rb, err
}

func formatFragment[T constraints.Integer](iv interval.Interval[T], ok bool) string {
	if !ok {
		return Empty
	}
	return iv.String()
}
