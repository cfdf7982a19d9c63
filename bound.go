//go:generate go run github.com/dmarkham/enumer -type=BoundKind -trimprefix=Bound -transform=kebab
package interval

import "golang.org/x/exp/constraints"

// BoundKind tells how one end of an interval is to be read: the endpoint
// value belongs to the interval, is excluded from it, or the interval simply
// extends to the extreme of the element type on that side.
type BoundKind int

const (
	BoundIncluded BoundKind = iota
	BoundExcluded
	BoundUnbounded
)

// Bound describes one end of an interval. Value is meaningless when Kind is
// BoundUnbounded.
type Bound[T constraints.Integer] struct {
	Kind  BoundKind
	Value T
}

// Included returns a bound whose endpoint belongs to the interval.
func Included[T constraints.Integer](v T) Bound[T] {
	return Bound[T]{Kind: BoundIncluded, Value: v}
}

// Excluded returns a bound whose endpoint is excluded from the interval.
func Excluded[T constraints.Integer](v T) Bound[T] {
	return Bound[T]{Kind: BoundExcluded, Value: v}
}

// Unbounded returns a bound extending to the element-type extreme on its side.
func Unbounded[T constraints.Integer]() Bound[T] {
	return Bound[T]{Kind: BoundUnbounded}
}
