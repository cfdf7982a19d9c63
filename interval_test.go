package interval

import (
	"math"
	"testing"
)

func TestIntersect_DirectCases(t *testing.T) {
	cases := []struct {
		name string
		a, b Span[int]
		exp  Interval[int]
		ok   bool
	}{
		{"inside", Closed(0, 3), Closed(1, 2), Interval[int]{1, 2}, true},
		{"clamped_right", Closed(0, 3), Closed(1, 30), Interval[int]{1, 3}, true},
		{"upper_exclusive", Closed(0, 3), ClosedOpen(-10, 1), Interval[int]{0, 0}, true},
		{"upper_inclusive", Closed(0, 3), Closed(-10, 1), Interval[int]{0, 1}, true},
		{"disjoint_left", Closed(0, 3), Closed(-10, -1), Interval[int]{}, false},
		{"disjoint_right", Closed(0, 3), Closed(4, 10), Interval[int]{}, false},
		{"touching_point", Closed(0, 3), Closed(3, 10), Interval[int]{3, 3}, true},
		{"one_sided", Closed(0, 3), GreaterThan(1), Interval[int]{2, 3}, true},
		{"self", Closed(0, 3), Closed(0, 3), Interval[int]{0, 3}, true},
		{"empty_operand", Closed(0, 3), Open(1, 2), Interval[int]{}, false},
	}

	for _, tc := range cases {
		got, ok := Intersect[int](tc.a, tc.b)
		if ok != tc.ok {
			t.Fatalf("%s: Intersect(%v, %v) ok = %v, want %v", tc.name, tc.a, tc.b, ok, tc.ok)
		}
		if ok && got != tc.exp {
			t.Fatalf("%s: Intersect(%v, %v) = %v, want %v", tc.name, tc.a, tc.b, got, tc.exp)
		}
		// 交换操作数结果不变
		sym, symOK := Intersect[int](tc.b, tc.a)
		if symOK != ok || (ok && sym != got) {
			t.Fatalf("%s: Intersect is not symmetric: (%v, %v) vs (%v, %v)", tc.name, got, ok, sym, symOK)
		}
	}
}

func TestSetMinus_DirectCases(t *testing.T) {
	cases := []struct {
		name        string
		a, b        Span[int]
		left, right Interval[int]
		leftOK      bool
		rightOK     bool
	}{
		{"disjoint_right", Closed(0, 3), Closed(4, 100), Interval[int]{0, 3}, Interval[int]{}, true, false},
		{"disjoint_left", Closed(0, 3), Closed(-100, -1), Interval[int]{0, 3}, Interval[int]{}, true, false},
		{"strictly_inside", Closed(0, 3), Closed(1, 2), Interval[int]{0, 0}, Interval[int]{3, 3}, true, true},
		{"trims_left", Closed(0, 3), Closed(0, 2), Interval[int]{}, Interval[int]{3, 3}, false, true},
		{"trims_right", Closed(0, 3), Closed(1, 3), Interval[int]{0, 0}, Interval[int]{}, true, false},
		{"covered", Closed(0, 3), Closed(-1, 5), Interval[int]{}, Interval[int]{}, false, false},
		{"minus_self", Closed(0, 3), Closed(0, 3), Interval[int]{}, Interval[int]{}, false, false},
		{"one_sided_cut", Closed(0, 3), GreaterThan(1), Interval[int]{0, 1}, Interval[int]{}, true, false},
		{"empty_minuend", Open(1, 2), Closed(0, 3), Interval[int]{}, Interval[int]{}, false, false},
	}

	for _, tc := range cases {
		left, right, leftOK, rightOK := SetMinus[int](tc.a, tc.b)
		if leftOK != tc.leftOK || rightOK != tc.rightOK {
			t.Fatalf("%s: SetMinus(%v, %v) presence = (%v, %v), want (%v, %v)",
				tc.name, tc.a, tc.b, leftOK, rightOK, tc.leftOK, tc.rightOK)
		}
		if leftOK && left != tc.left {
			t.Fatalf("%s: SetMinus(%v, %v) left = %v, want %v", tc.name, tc.a, tc.b, left, tc.left)
		}
		if rightOK && right != tc.right {
			t.Fatalf("%s: SetMinus(%v, %v) right = %v, want %v", tc.name, tc.a, tc.b, right, tc.right)
		}
		if leftOK && rightOK && left.Hi >= right.Lo {
			t.Fatalf("%s: fragments not disjoint/ordered: %v before %v", tc.name, left, right)
		}
	}
}

// Subtracting a range touching the domain boundary must not step past the
// extremes of the element type.
func TestSetMinus_AtDomainExtremes(t *testing.T) {
	left, right, leftOK, rightOK := SetMinus[uint8](Full[uint8](), Closed[uint8](0, 10))
	if leftOK || !rightOK {
		t.Fatalf("full minus [0,10]: presence = (%v, %v), want (false, true)", leftOK, rightOK)
	}
	if (right != Interval[uint8]{11, 255}) {
		t.Fatalf("full minus [0,10]: right = %v, want [11,255]", right)
	}

	left, right, leftOK, rightOK = SetMinus[uint8](Full[uint8](), AtLeast[uint8](100))
	if !leftOK || rightOK {
		t.Fatalf("full minus >=100: presence = (%v, %v), want (true, false)", leftOK, rightOK)
	}
	if (left != Interval[uint8]{0, 99}) {
		t.Fatalf("full minus >=100: left = %v, want [0,99]", left)
	}

	_, _, leftOK, rightOK = SetMinus[uint8](Full[uint8](), Full[uint8]())
	if leftOK || rightOK {
		t.Fatalf("full minus full: presence = (%v, %v), want (false, false)", leftOK, rightOK)
	}

	l, r, leftOK, rightOK := SetMinus[int8](Full[int8](), Point(int8(0)))
	if !leftOK || !rightOK {
		t.Fatalf("full minus {0}: presence = (%v, %v), want (true, true)", leftOK, rightOK)
	}
	if (l != Interval[int8]{math.MinInt8, -1}) || (r != Interval[int8]{1, math.MaxInt8}) {
		t.Fatalf("full minus {0}: got (%v, %v), want ([-128,-1], [1,127])", l, r)
	}
}

// Every element of a must land in exactly one of: left fragment, right
// fragment, intersection.
func TestSetMinus_PartitionExhaustive(t *testing.T) {
	const lo, hi = -6, 6
	for aLo := lo; aLo <= hi; aLo++ {
		for aHi := aLo; aHi <= hi; aHi++ {
			for bLo := lo; bLo <= hi; bLo++ {
				for bHi := bLo; bHi <= hi; bHi++ {
					a := Closed(aLo, aHi)
					b := Closed(bLo, bHi)
					left, right, leftOK, rightOK := SetMinus[int](a, b)
					cut, cutOK := Intersect[int](a, b)
					for x := aLo; x <= aHi; x++ {
						n := 0
						if leftOK && left.Contains(x) {
							n++
						}
						if rightOK && right.Contains(x) {
							n++
						}
						if cutOK && cut.Contains(x) {
							n++
						}
						if n != 1 {
							t.Fatalf("[%d,%d] \\ [%d,%d]: element %d covered %d times", aLo, aHi, bLo, bHi, x, n)
						}
					}
				}
			}
		}
	}
}

func TestContains_DirectCases(t *testing.T) {
	cases := []struct {
		name string
		r    Span[int]
		x    int
		exp  bool
	}{
		{"inside", Closed(0, 3), 2, true},
		{"at_lower", Closed(0, 3), 0, true},
		{"at_upper", Closed(0, 3), 3, true},
		{"below", Closed(0, 3), -1, false},
		{"above", Closed(0, 3), 4, false},
		{"excluded_upper", ClosedOpen(0, 3), 3, false},
		{"excluded_lower", OpenClosed(0, 3), 0, false},
		{"unbounded_below", AtMost(10), math.MinInt, true},
		{"unbounded_above", AtLeast(10), math.MaxInt, true},
		{"empty", Open(1, 2), 1, false},
	}

	for _, tc := range cases {
		if got := Contains[int](tc.r, tc.x); got != tc.exp {
			t.Fatalf("%s: Contains(%v, %d) = %v, want %v", tc.name, tc.r, tc.x, got, tc.exp)
		}
	}
}

func TestContains_CanonicalEndpoints(t *testing.T) {
	spans := []Span[int]{
		Closed(0, 3),
		ClosedOpen(0, 3),
		OpenClosed(-5, 5),
		AtMost(7),
		AtLeast(-7),
		Full[int](),
		Point(42),
	}
	for _, s := range spans {
		if !Contains[int](s, Lower[int](s)) {
			t.Fatalf("%v does not contain its canonical lower endpoint %d", s, Lower[int](s))
		}
		if !Contains[int](s, Upper[int](s)) {
			t.Fatalf("%v does not contain its canonical upper endpoint %d", s, Upper[int](s))
		}
	}
}

func TestOverlaps_Symmetry(t *testing.T) {
	cases := []struct {
		name string
		a, b Span[int]
		exp  bool
	}{
		{"overlap", Closed(0, 3), Closed(2, 5), true},
		{"touching", Closed(0, 3), Closed(3, 5), true},
		{"disjoint", Closed(0, 3), Closed(4, 5), false},
		{"nested", Closed(0, 10), Closed(3, 5), true},
		{"one_sided", Closed(0, 3), GreaterThan(2), true},
		{"empty_never_overlaps", Closed(0, 3), Open(1, 2), false},
	}

	for _, tc := range cases {
		if got := Overlaps[int](tc.a, tc.b); got != tc.exp {
			t.Fatalf("%s: Overlaps(%v, %v) = %v, want %v", tc.name, tc.a, tc.b, got, tc.exp)
		}
		if got := Overlaps[int](tc.b, tc.a); got != tc.exp {
			t.Fatalf("%s: Overlaps(%v, %v) = %v, want %v (swapped)", tc.name, tc.b, tc.a, got, tc.exp)
		}
	}
}

func TestLength_DirectCases(t *testing.T) {
	cases := []struct {
		name string
		r    Span[int]
		exp  int
		ok   bool
	}{
		{"four_elements", Closed(0, 3), 4, true},
		{"single_point", Point(5), 1, true},
		{"half_open", ClosedOpen(0, 3), 3, true},
		{"empty", Open(1, 2), 0, false},
	}

	for _, tc := range cases {
		got, ok := Length[int](tc.r)
		if ok != tc.ok {
			t.Fatalf("%s: Length(%v) ok = %v, want %v", tc.name, tc.r, ok, tc.ok)
		}
		if ok && got != tc.exp {
			t.Fatalf("%s: Length(%v) = %d, want %d", tc.name, tc.r, got, tc.exp)
		}
	}
}

func TestCanonicalize_UnboundedExtremes(t *testing.T) {
	if got := Lower[uintptr](AtLeast[uintptr](0)); got != 0 {
		t.Fatalf("Lower(>=0) over uintptr = %d, want 0", got)
	}
	if got := Upper[uintptr](AtLeast[uintptr](0)); got != ^uintptr(0) {
		t.Fatalf("Upper(>=0) over uintptr = %d, want %d", got, ^uintptr(0))
	}
	if got := Lower[uint](AtMost[uint](10)); got != 0 {
		t.Fatalf("Lower(<=10) over uint = %d, want 0", got)
	}
	if got := Lower[int](AtMost(10)); got != math.MinInt {
		t.Fatalf("Lower(<=10) over int = %d, want %d", got, math.MinInt)
	}
	if got := Upper[int](ClosedOpen(0, 1)); got != 0 {
		t.Fatalf("Upper([0,1)) = %d, want 0", got)
	}
	if got := Upper[int](Closed(0, 1)); got != 1 {
		t.Fatalf("Upper([0,1]) = %d, want 1", got)
	}
	if got := Lower[int16](Full[int16]()); got != math.MinInt16 {
		t.Fatalf("Lower(full) over int16 = %d, want %d", got, math.MinInt16)
	}
	if got := Upper[int16](Full[int16]()); got != math.MaxInt16 {
		t.Fatalf("Upper(full) over int16 = %d, want %d", got, math.MaxInt16)
	}
}

// Canonicalizing a canonical interval changes nothing.
func TestCanonicalize_Idempotent(t *testing.T) {
	spans := []Span[int]{
		Closed(0, 3),
		ClosedOpen(-10, 1),
		OpenClosed(2, 9),
		AtMost(4),
		GreaterThan(-3),
	}
	for _, s := range spans {
		iv, ok := Canonicalize[int](s)
		if !ok {
			t.Fatalf("Canonicalize(%v) unexpectedly empty", s)
		}
		again, ok := Canonicalize[int](iv)
		if !ok || again != iv {
			t.Fatalf("Canonicalize(%v) not idempotent: %v -> %v", s, iv, again)
		}
		if Lower[int](iv) != iv.Lo || Upper[int](iv) != iv.Hi {
			t.Fatalf("Lower/Upper of %v disagree with its endpoints", iv)
		}
	}
}

func TestInterval_Methods(t *testing.T) {
	a := Interval[int]{0, 3}
	if !a.IsNotEmpty() {
		t.Fatalf("[0,3] reported empty")
	}
	if !a.Contains(0) || !a.Contains(3) || a.Contains(4) {
		t.Fatalf("[0,3] membership broken")
	}
	if !a.Overlaps(Closed(3, 5)) || a.Overlaps(Closed(4, 5)) {
		t.Fatalf("[0,3] overlap broken")
	}
	cut, ok := a.Intersect(Closed(1, 2))
	if !ok || (cut != Interval[int]{1, 2}) {
		t.Fatalf("[0,3] ∩ [1,2] = (%v, %v), want [1,2]", cut, ok)
	}
	// 与自身相交仍是自身
	self, ok := a.Intersect(a)
	if !ok || self != a {
		t.Fatalf("[0,3] ∩ [0,3] = (%v, %v), want [0,3]", self, ok)
	}
	left, right, leftOK, rightOK := a.SetMinus(Closed(1, 2))
	if !leftOK || !rightOK || (left != Interval[int]{0, 0}) || (right != Interval[int]{3, 3}) {
		t.Fatalf("[0,3] \\ [1,2] = (%v, %v, %v, %v)", left, right, leftOK, rightOK)
	}
	if n, ok := a.Length(); !ok || n != 4 {
		t.Fatalf("length of [0,3] = (%d, %v), want 4", n, ok)
	}
	if got := a.String(); got != "[0,3]" {
		t.Fatalf("String() = %q, want %q", got, "[0,3]")
	}
	empty := Interval[int]{1, 0}
	if empty.IsNotEmpty() || empty.Contains(0) {
		t.Fatalf("reversed interval should be empty and contain nothing")
	}
	if _, ok := empty.Length(); ok {
		t.Fatalf("length of empty interval should be absent")
	}
}
