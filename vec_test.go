package vg

import (
	"math"
	"testing"
)

func TestVecArithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	if got := a.Add(b); !got.Eq(V(4, 2)) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Sub(b); !got.Eq(V(2, 6)) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Mul(2); !got.Eq(V(6, 8)) {
		t.Errorf("Mul = %+v", got)
	}
	if got := a.Div(2); !got.Eq(V(1.5, 2)) {
		t.Errorf("Div = %+v", got)
	}
	if got := a.Neg(); !got.Eq(V(-3, -4)) {
		t.Errorf("Neg = %+v", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot = %v", got)
	}
	if got := a.Cross(b); got != -10 {
		t.Errorf("Cross = %v", got)
	}
}

func TestVecLength(t *testing.T) {
	v := V(3, 4)
	if got := v.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := v.LengthSq(); got != 25 {
		t.Errorf("LengthSq = %v, want 25", got)
	}
	if got := v.Distance(V(0, 0)); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestVecNormalize(t *testing.T) {
	n := V(3, 4).Normalize()
	if !n.Approx(V(0.6, 0.8), testEps) {
		t.Errorf("Normalize = %+v", n)
	}

	// Zero-length normalization is documented to produce NaN, not a
	// guarded zero vector.
	z := V(0, 0).Normalize()
	if !math.IsNaN(z.X) || !math.IsNaN(z.Y) {
		t.Errorf("Normalize(zero) = %+v, want NaN components", z)
	}
}

func TestVecPerpMid(t *testing.T) {
	if got := V(1, 0).Perp(); !got.Eq(V(0, 1)) {
		t.Errorf("Perp = %+v", got)
	}
	if got := V(0, 0).Mid(V(4, 6)); !got.Eq(V(2, 3)) {
		t.Errorf("Mid = %+v", got)
	}
	if got := V(0, 0).Lerp(V(10, 20), 0.25); !got.Eq(V(2.5, 5)) {
		t.Errorf("Lerp = %+v", got)
	}
}

func TestVecIntegerInstantiation(t *testing.T) {
	a := IV(3, 4)
	b := IV(1, 2)

	if got := a.Add(b); !got.Eq(IV(4, 6)) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}

	// Floating intermediates truncate on the way back to int.
	if got := IV(0, 0).Mid(IV(3, 3)); !got.Eq(IV(1, 1)) {
		t.Errorf("Mid = %+v, want truncated (1,1)", got)
	}
	if got := IV(0, 0).Lerp(IV(5, 5), 0.5); !got.Eq(IV(2, 2)) {
		t.Errorf("Lerp = %+v, want truncated (2,2)", got)
	}
}

func TestVecZero(t *testing.T) {
	if !V(0, 0).IsZero() {
		t.Error("zero vector not reported zero")
	}
	if V(0, 1e-12).IsZero() {
		t.Error("non-zero vector reported zero")
	}
}
