package calc

import (
	"fmt"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/vipcxj/interval"
)

// parseValue parses tok as a value of the element type T, using the signed or
// unsigned integer syntax with the matching bit size.
func parseValue[T constraints.Integer](tok string) (T, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return 0, fmt.Errorf("empty integer")
	}
	var zero T
	bits := int(8 * unsafe.Sizeof(zero))
	if interval.MinValue[T]() == 0 {
		u, err := strconv.ParseUint(tok, 10, bits)
		if err != nil {
			return 0, err
		}
		return T(u), nil
	}
	n, err := strconv.ParseInt(tok, 10, bits)
	if err != nil {
		return 0, err
	}
	return T(n), nil
}

// ParseSpan parses an interval literal into a Span over T.
//
// Supported formats:
//   - N
//   - =N
//   - >N, >=N, <N, <=N
//   - (min,max), (min,max], [min,max), [min,max]
//   - ( ,max), (min, ) etc.
//
// Spaces are ignored. An empty side of the bracket form means unbounded on
// that side; an unbounded side must be open (use '(' or ')' not '[' or ']').
//
// Literals that are empty by construction are rejected: min > max, equal
// bounds that are not both inclusive, and an excluded endpoint sitting at the
// extreme of the element type (e.g. ">255" over uint8).
func ParseSpan[T constraints.Integer](value string) (interval.Span[T], error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return interval.Span[T]{}, fmt.Errorf("empty interval literal")
	}

	// prefix operators
	switch {
	case strings.HasPrefix(s, "="):
		n, err := parseValue[T](s[1:])
		if err != nil {
			return interval.Span[T]{}, fmt.Errorf("invalid =N: %w", err)
		}
		return interval.Point(n), nil
	case strings.HasPrefix(s, ">="):
		n, err := parseValue[T](s[2:])
		if err != nil {
			return interval.Span[T]{}, fmt.Errorf("invalid >=N: %w", err)
		}
		return interval.AtLeast(n), nil
	case strings.HasPrefix(s, ">"):
		n, err := parseValue[T](s[1:])
		if err != nil {
			return interval.Span[T]{}, fmt.Errorf("invalid >N: %w", err)
		}
		if n == interval.MaxValue[T]() {
			return interval.Span[T]{}, fmt.Errorf("empty interval: no element greater than %d", n)
		}
		return interval.GreaterThan(n), nil
	case strings.HasPrefix(s, "<="):
		n, err := parseValue[T](s[2:])
		if err != nil {
			return interval.Span[T]{}, fmt.Errorf("invalid <=N: %w", err)
		}
		return interval.AtMost(n), nil
	case strings.HasPrefix(s, "<"):
		n, err := parseValue[T](s[1:])
		if err != nil {
			return interval.Span[T]{}, fmt.Errorf("invalid <N: %w", err)
		}
		if n == interval.MinValue[T]() {
			return interval.Span[T]{}, fmt.Errorf("empty interval: no element less than %d", n)
		}
		return interval.LessThan(n), nil
	}

	// interval notation
	if len(s) >= 2 && (s[0] == '(' || s[0] == '[') && (s[len(s)-1] == ')' || s[len(s)-1] == ']') {
		leftInclusive := s[0] == '['
		rightInclusive := s[len(s)-1] == ']'
		inner := strings.TrimSpace(s[1 : len(s)-1])
		parts := strings.SplitN(inner, ",", 2)
		if len(parts) != 2 {
			return interval.Span[T]{}, fmt.Errorf("invalid interval syntax: %s", value)
		}
		left := strings.TrimSpace(parts[0])
		right := strings.TrimSpace(parts[1])

		var span interval.Span[T]

		if left == "" {
			// 无界的一侧必须是开区间
			if leftInclusive {
				return interval.Span[T]{}, fmt.Errorf("unbounded side must be open on left: %s", value)
			}
			span.Lower = interval.Unbounded[T]()
		} else {
			n, err := parseValue[T](left)
			if err != nil {
				return interval.Span[T]{}, fmt.Errorf("invalid left integer: %w", err)
			}
			if leftInclusive {
				span.Lower = interval.Included(n)
			} else {
				if n == interval.MaxValue[T]() {
					return interval.Span[T]{}, fmt.Errorf("empty interval: no element greater than %d", n)
				}
				span.Lower = interval.Excluded(n)
			}
		}

		if right == "" {
			if rightInclusive {
				return interval.Span[T]{}, fmt.Errorf("unbounded side must be open on right: %s", value)
			}
			span.Upper = interval.Unbounded[T]()
		} else {
			n, err := parseValue[T](right)
			if err != nil {
				return interval.Span[T]{}, fmt.Errorf("invalid right integer: %w", err)
			}
			if rightInclusive {
				span.Upper = interval.Included(n)
			} else {
				if n == interval.MinValue[T]() {
					return interval.Span[T]{}, fmt.Errorf("empty interval: no element less than %d", n)
				}
				span.Upper = interval.Excluded(n)
			}
		}

		// validate consistency for bounded sides
		if span.Lower.Kind != interval.BoundUnbounded && span.Upper.Kind != interval.BoundUnbounded {
			if span.Lower.Value > span.Upper.Value {
				return interval.Span[T]{}, fmt.Errorf("empty interval: min > max")
			}
			if span.Lower.Value == span.Upper.Value && (!leftInclusive || !rightInclusive) {
				// (N,N), (N,N], [N,N) 都是空集
				return interval.Span[T]{}, fmt.Errorf("empty interval for equal bounds but not both inclusive")
			}
		}
		return span, nil
	}

	// plain integer
	if n, err := parseValue[T](s); err == nil {
		return interval.Point(n), nil
	}

	return interval.Span[T]{}, fmt.Errorf("unrecognized interval literal: %s", value)
}
