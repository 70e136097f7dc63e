package vg

import (
	"math"
	"testing"
)

func TestMatrixIdentity(t *testing.T) {
	m := Identity()
	if !m.IsIdentity() {
		t.Error("Identity not reported identity")
	}
	if got := m.Apply(V(3, 4)); !got.Eq(V(3, 4)) {
		t.Errorf("Apply = %+v", got)
	}
}

func TestMatrixTransforms(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Vec
		want Vec
	}{
		{"translate", Translate(2, 3), V(1, 1), V(3, 4)},
		{"scale", Scale(2, 0.5), V(4, 4), V(8, 2)},
		{"rotate quarter", Rotate(math.Pi / 2), V(1, 0), V(0, 1)},
		{"rotate half", Rotate(math.Pi), V(1, 0), V(-1, 0)},
		{"shear x", Shear(1, 0), V(0, 2), V(2, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Apply(tt.in); !got.Approx(tt.want, testEps) {
				t.Errorf("Apply(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrixApplyVecIgnoresTranslation(t *testing.T) {
	m := Translate(100, 100).Multiply(Rotate(math.Pi / 2))
	if got := m.ApplyVec(V(1, 0)); !got.Approx(V(0, 1), testEps) {
		t.Errorf("ApplyVec = %+v, want rotation only", got)
	}
}

func TestMatrixMultiplyOrder(t *testing.T) {
	// Multiply(other) applies other first: translate after scaling.
	m := Translate(10, 0).Multiply(Scale(2, 2))
	if got := m.Apply(V(1, 1)); !got.Approx(V(12, 2), testEps) {
		t.Errorf("Apply = %+v, want (12, 2)", got)
	}
}

func TestMatrixInvert(t *testing.T) {
	m := Translate(3, -2).Multiply(Rotate(0.7)).Multiply(Scale(2, 5))
	p := V(4, 9)
	back := m.Invert().Apply(m.Apply(p))
	if !back.Approx(p, 1e-9) {
		t.Errorf("round trip = %+v, want %+v", back, p)
	}

	// A singular matrix inverts to the identity.
	if got := Scale(0, 0).Invert(); !got.IsIdentity() {
		t.Errorf("singular Invert = %+v", got)
	}
}

func TestMatrixPredicates(t *testing.T) {
	if !Translate(5, 6).IsTranslation() {
		t.Error("translation not reported")
	}
	if Scale(2, 1).IsTranslation() {
		t.Error("scale reported as translation")
	}
	if Translate(5, 6).IsIdentity() {
		t.Error("translation reported as identity")
	}
}

func TestPathTransform(t *testing.T) {
	p := NewPath()
	p.MoveTo(V(0, 0))
	p.LineTo(V(2, 0))
	p.LineTo(V(2, 2))

	p.Transform(Translate(10, 20))

	segs := p.Subpaths()[0].Segments()
	if !segs[0].P1.Eq(V(10, 20)) || !segs[1].P2.Eq(V(12, 22)) {
		t.Errorf("endpoints = %+v, %+v", segs[0].P1, segs[1].P2)
	}
	if got := p.Bounds(); got != R(10, 12, 20, 22) {
		t.Errorf("bounds = %+v", got)
	}
	if !p.Cursor().Eq(V(12, 22)) {
		t.Errorf("cursor = %+v", p.Cursor())
	}

	// Scan-conversion factors are rebuilt, not stale.
	p.Transform(Scale(1, -1))
	segs = p.Subpaths()[0].Segments()
	if !segs[1].Nudge.Eq(V(1, 0)) {
		t.Errorf("nudge after flip = %+v", segs[1].Nudge)
	}
}
