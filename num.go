package interval

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// MinValue returns the smallest value representable by the element type T.
func MinValue[T constraints.Integer]() T {
	var zero T
	if ^zero > zero {
		// 无符号类型：最小值就是 0
		return zero
	}
	// signed: all-ones shifted into the sign bit
	return ^zero << (8*unsafe.Sizeof(zero) - 1)
}

// MaxValue returns the largest value representable by the element type T.
func MaxValue[T constraints.Integer]() T {
	return ^MinValue[T]()
}

// Inc returns the immediate successor of x.
//
// Calling Inc at MaxValue[T]() is a contract violation; instead of silently
// wrapping around, Inc panics.
func Inc[T constraints.Integer](x T) T {
	if x == MaxValue[T]() {
		panic("interval: Inc called at the maximum element value")
	}
	return x + 1
}

// Dec returns the immediate predecessor of x.
//
// Calling Dec at MinValue[T]() is a contract violation; instead of silently
// wrapping around, Dec panics.
func Dec[T constraints.Integer](x T) T {
	if x == MinValue[T]() {
		panic("interval: Dec called at the minimum element value")
	}
	return x - 1
}
