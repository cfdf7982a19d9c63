package interval

import "testing"

func TestBoundKind_Strings(t *testing.T) {
	cases := []struct {
		kind BoundKind
		exp  string
	}{
		{BoundIncluded, "included"},
		{BoundExcluded, "excluded"},
		{BoundUnbounded, "unbounded"},
	}

	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.exp {
			t.Fatalf("String(%d) = %q, want %q", tc.kind, got, tc.exp)
		}
		back, err := BoundKindString(tc.exp)
		if err != nil || back != tc.kind {
			t.Fatalf("BoundKindString(%q) = (%v, %v), want %v", tc.exp, back, err, tc.kind)
		}
	}

	if BoundKind(99).IsABoundKind() {
		t.Fatalf("BoundKind(99) should not be a valid kind")
	}
	if _, err := BoundKindString("closed"); err == nil {
		t.Fatalf("expected error for unknown kind name")
	}
}
