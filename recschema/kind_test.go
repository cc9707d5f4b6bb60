package recschema

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Bigint, "BIGINT"},
		{Double, "DOUBLE"},
		{Text, "TEXT"},
		{Kind(42), "TEXT"},
		{Kind(-1), "TEXT"},
	}
	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestMergeKinds(t *testing.T) {
	tests := []struct {
		a, b Kind
		want Kind
	}{
		{Bigint, Bigint, Bigint},
		{Double, Double, Double},
		{Text, Text, Text},
		{Bigint, Double, Double},
		{Bigint, Text, Text},
		{Double, Text, Text},
		{Kind(99), Bigint, Text}, // unrecognized kinds are maximal
	}
	for _, tc := range tests {
		if got := MergeKinds(tc.a, tc.b); got != tc.want {
			t.Errorf("MergeKinds(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
		// The merge is commutative.
		if got := MergeKinds(tc.b, tc.a); got != tc.want {
			t.Errorf("MergeKinds(%v, %v) = %v, want %v", tc.b, tc.a, got, tc.want)
		}
	}
}

func TestMergeKindsAssociative(t *testing.T) {
	kinds := []Kind{Bigint, Double, Text}
	for _, a := range kinds {
		for _, b := range kinds {
			for _, c := range kinds {
				left := MergeKinds(MergeKinds(a, b), c)
				right := MergeKinds(a, MergeKinds(b, c))
				if left != right {
					t.Errorf("merge not associative for (%v, %v, %v): %v != %v", a, b, c, left, right)
				}
			}
		}
	}
}

func TestMergeKindsMonotonic(t *testing.T) {
	// A column that has reached Text never narrows again.
	for _, k := range []Kind{Bigint, Double, Text} {
		if got := MergeKinds(Text, k); got != Text {
			t.Errorf("MergeKinds(Text, %v) = %v, want Text", k, got)
		}
	}
}
