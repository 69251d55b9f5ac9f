package escape

import (
	"testing"

	"github.com/gogpu/qmandel/exact"
)

func pt(re, im int64) exact.Complex {
	return exact.C(exact.Int(re), exact.Int(im))
}

func TestIterate_OriginNeverEscapes(t *testing.T) {
	for _, n := range []uint{1, 2, 8, DefaultIterations, 100} {
		if got := Iterate(pt(0, 0), n); got != n {
			t.Errorf("Iterate(0, %d) = %d, want %d", n, got, n)
		}
	}
}

func TestIterate_RadiusTwoBoundary(t *testing.T) {
	// z1 = 2 lies exactly on the bailout circle and must not escape;
	// z2 = 6 escapes.
	tests := []struct {
		n       uint
		want    uint
		escaped bool
	}{
		{1, 1, false},
		{2, 2, true},
		{3, 2, true},
		{8, 2, true},
	}
	for _, tt := range tests {
		got := Evaluate(pt(2, 0), tt.n)
		if got.Count != tt.want || got.Escaped != tt.escaped {
			t.Errorf("Evaluate(2, %d) = %+v, want {Count:%d Escaped:%v}", tt.n, got, tt.want, tt.escaped)
		}
	}
}

func TestIterate_PeriodicPointsStayBounded(t *testing.T) {
	tests := []struct {
		name string
		c    exact.Complex
	}{
		{"period 2 at -1", pt(-1, 0)},
		{"tip at -2", pt(-2, 0)},
		{"i", pt(0, 1)},
		{"cusp", exact.Real(exact.New(1, 4))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.c, 50)
			if got.Count != 50 || got.Escaped {
				t.Errorf("Evaluate(%v, 50) = %+v, want {Count:50 Escaped:false}", tt.c, got)
			}
		})
	}
}

func TestIterate_EscapingPoints(t *testing.T) {
	tests := []struct {
		c    exact.Complex
		want uint
	}{
		{pt(1, 0), 3},  // 0, 1, 2, 5
		{pt(3, 0), 1},  // 0, 3
		{pt(-3, 0), 1}, // 0, -3
		{pt(1, 1), 2},  // 0, 1+i, 1+3i
	}
	for _, tt := range tests {
		if got := Iterate(tt.c, DefaultIterations); got != tt.want {
			t.Errorf("Iterate(%v) = %d, want %d", tt.c, got, tt.want)
		}
	}
}

func TestIterate_ZeroBudget(t *testing.T) {
	got := Evaluate(pt(5, 5), 0)
	if got.Count != 0 || got.Escaped {
		t.Errorf("Evaluate(5+5i, 0) = %+v, want zero Result", got)
	}
}

func TestIterate_Deterministic(t *testing.T) {
	c := exact.C(exact.New(-3, 4), exact.New(1, 10))
	first := Evaluate(c, 64)
	for range 3 {
		if got := Evaluate(c, 64); got != first {
			t.Fatalf("Evaluate() = %+v, then %+v", first, got)
		}
	}
}
