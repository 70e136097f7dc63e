package vg

import "testing"

func TestPathLineAndClose(t *testing.T) {
	p := NewPath()
	p.MoveTo(V(0, 0))
	p.LineTo(V(10, 0))
	p.ClosePath()

	subs := p.Subpaths()
	if len(subs) != 2 {
		t.Fatalf("subpaths = %d, want 2 (closed plus fresh)", len(subs))
	}
	closed := subs[0]
	if got := len(closed.Segments()); got != 2 {
		t.Fatalf("segments = %d, want 2", got)
	}
	if !closed.IsClosed() {
		t.Error("subpath not closed")
	}
	if !closed.Segments()[1].P2.Eq(V(0, 0)) {
		t.Errorf("closing segment ends at %+v", closed.Segments()[1].P2)
	}
	if !p.Cursor().Eq(V(0, 0)) {
		t.Errorf("cursor = %+v, want start", p.Cursor())
	}
	if got := len(subs[1].Segments()); got != 0 {
		t.Errorf("fresh subpath has %d segments", got)
	}
}

func TestPathClosePathEmptyNoop(t *testing.T) {
	p := NewPath()
	p.ClosePath()
	if got := len(p.Subpaths()); got > 1 {
		t.Errorf("subpaths = %d after closing empty path", got)
	}
	for _, s := range p.Subpaths() {
		if len(s.Segments()) != 0 {
			t.Error("closing an empty path produced segments")
		}
	}
}

func TestPathBounds(t *testing.T) {
	p := NewPath()
	if p.Bounds().IsValid() {
		t.Error("empty path bounds should be the invalid sentinel")
	}

	p.MoveTo(V(0, 0))
	p.LineTo(V(5, -3))
	p.LineTo(V(2, 8))

	want := R(0, 5, -3, 8)
	if got := p.Bounds(); got != want {
		t.Errorf("Bounds = %+v, want %+v", got, want)
	}
}

func TestPathBoundsNeverShrink(t *testing.T) {
	// Endpoints all at the origin make the legitimate bounds the zero
	// rect; later pushes must grow that box, never restart it.
	p := NewPath()
	p.MoveTo(V(0, 0))
	p.LineTo(V(0, 0))
	p.MoveTo(V(5, 5))
	p.LineTo(V(6, 6))

	want := R(0, 6, 0, 6)
	if got := p.Bounds(); got != want {
		t.Errorf("Bounds = %+v, want %+v", got, want)
	}

	// Same sequence on a zero-value Path.
	var z Path
	z.MoveTo(V(0, 0))
	z.LineTo(V(0, 0))
	z.MoveTo(V(5, 5))
	z.LineTo(V(6, 6))
	if got := z.Bounds(); got != want {
		t.Errorf("zero-value Bounds = %+v, want %+v", got, want)
	}
}

func TestPathQuadFlattening(t *testing.T) {
	p := NewPath()
	p.MoveTo(V(0, 0))
	p.QuadTo(V(5, 10), V(10, 0))

	segs := p.Subpaths()[0].Segments()
	if got := len(segs); got != DefaultSubdivision {
		t.Fatalf("segments = %d, want %d", got, DefaultSubdivision)
	}
	if !segs[len(segs)-1].P2.Eq(V(10, 0)) {
		t.Errorf("final point = %+v, want exact target", segs[len(segs)-1].P2)
	}
	// Interior samples follow the curve: at t=0.5 the quadratic reaches
	// the midpoint of the control polygon average.
	mid := segs[DefaultSubdivision/2-1].P2
	if !mid.Approx(quadPoint(V(0, 0), V(5, 10), V(10, 0), 0.5), testEps) {
		t.Errorf("midpoint sample = %+v", mid)
	}
}

func TestPathCubicFlattening(t *testing.T) {
	p := NewPath(WithSubdivision(8))
	p.MoveTo(V(0, 0))
	p.CubicTo(V(0, 10), V(10, 10), V(10, 0))

	segs := p.Subpaths()[0].Segments()
	if got := len(segs); got != 8 {
		t.Fatalf("segments = %d, want 8", got)
	}
	if !segs[7].P2.Eq(V(10, 0)) {
		t.Errorf("final point = %+v, want exact target", segs[7].P2)
	}
}

func TestPathSubdivisionOption(t *testing.T) {
	if got := NewPath().Subdivision(); got != DefaultSubdivision {
		t.Errorf("default Subdivision = %d", got)
	}
	if got := NewPath(WithSubdivision(48)).Subdivision(); got != 48 {
		t.Errorf("Subdivision = %d, want 48", got)
	}
	if got := NewPath(WithSubdivision(0)).Subdivision(); got != DefaultSubdivision {
		t.Errorf("Subdivision(0) = %d, want default kept", got)
	}
}

func TestPathMoveToImplicitClose(t *testing.T) {
	p := NewPath()
	p.MoveTo(V(0, 0))
	p.LineTo(V(4, 0))
	p.LineTo(V(4, 4))
	p.MoveTo(V(10, 10))

	first := p.Subpaths()[0]
	if !first.IsClosed() {
		t.Error("MoveTo should close the open subpath")
	}
	if got := len(first.Segments()); got != 3 {
		t.Errorf("segments = %d, want 3 (two drawn plus implicit close)", got)
	}
	if !p.Cursor().Eq(V(10, 10)) {
		t.Errorf("cursor = %+v", p.Cursor())
	}

	// A subpath already ending at its start gains no duplicate closer.
	q := NewPath()
	q.MoveTo(V(0, 0))
	q.LineTo(V(1, 0))
	q.LineTo(V(0, 0))
	q.MoveTo(V(5, 5))
	if got := len(q.Subpaths()[0].Segments()); got != 2 {
		t.Errorf("segments = %d, want 2 (no degenerate close)", got)
	}
}

func TestPathCloseAlreadyAtStart(t *testing.T) {
	// A subpath already ending at its start gains no zero-length
	// closing segment, but ClosePath still opens a fresh subpath and
	// parks the cursor at the start.
	p := NewPath()
	p.MoveTo(V(0, 0))
	p.LineTo(V(4, 0))
	p.LineTo(V(0, 0))
	p.ClosePath()

	first := p.Subpaths()[0]
	if got := len(first.Segments()); got != 2 {
		t.Errorf("segments = %d, want 2 (no zero-length closer)", got)
	}
	if !first.IsClosed() {
		t.Error("subpath not closed")
	}
	if got := len(p.Subpaths()); got != 2 {
		t.Errorf("subpaths = %d, want 2", got)
	}
	if !p.Cursor().Eq(V(0, 0)) {
		t.Errorf("cursor = %+v, want start", p.Cursor())
	}
}

func TestPathClear(t *testing.T) {
	p := NewPath()
	p.MoveTo(V(1, 1))
	p.LineTo(V(2, 2))
	p.Clear()

	if len(p.Subpaths()) != 0 {
		t.Error("Clear left subpaths")
	}
	if !p.Cursor().IsZero() {
		t.Errorf("cursor = %+v after Clear", p.Cursor())
	}
	if p.Bounds().IsValid() {
		t.Error("bounds valid after Clear")
	}
}

func TestPathClone(t *testing.T) {
	p := NewPath(WithSubdivision(12))
	p.MoveTo(V(0, 0))
	p.LineTo(V(3, 4))

	c := p.Clone()
	if c.Subdivision() != 12 {
		t.Errorf("clone Subdivision = %d", c.Subdivision())
	}
	if !c.Cursor().Eq(p.Cursor()) {
		t.Errorf("clone cursor = %+v", c.Cursor())
	}

	// Mutating the clone must not touch the original.
	c.LineTo(V(100, 100))
	if got := len(p.Subpaths()[0].Segments()); got != 1 {
		t.Errorf("original gained segments: %d", got)
	}
	if p.Bounds() != R(0, 3, 0, 4) {
		t.Errorf("original bounds = %+v", p.Bounds())
	}
}

func TestPathZeroValue(t *testing.T) {
	var p Path
	p.MoveTo(V(1, 2))
	p.LineTo(V(3, 4))

	if got := p.Subdivision(); got != DefaultSubdivision {
		t.Errorf("zero-value Subdivision = %d", got)
	}
	if got := p.Bounds(); got != R(1, 3, 2, 4) {
		t.Errorf("zero-value bounds = %+v", got)
	}
}

func TestPathRectShape(t *testing.T) {
	p := NewPath()
	p.Rect(1, 2, 3, 4)

	sub := p.Subpaths()[0]
	if !sub.IsClosed() {
		t.Error("rect subpath not closed")
	}
	if got := len(sub.Segments()); got != 4 {
		t.Errorf("segments = %d, want 4", got)
	}
	if got := p.Bounds(); got != R(1, 4, 2, 6) {
		t.Errorf("bounds = %+v", got)
	}
}

func TestPathCircleShape(t *testing.T) {
	p := NewPath(WithSubdivision(16))
	p.Circle(0, 0, 10)

	sub := p.Subpaths()[0]
	if !sub.IsClosed() {
		t.Error("circle subpath not closed")
	}
	if got := len(sub.Segments()); got != 4*16 {
		t.Errorf("segments = %d, want 64", got)
	}

	// Every flattened point stays near the radius.
	for _, s := range sub.Segments() {
		if r := s.P2.Length(); r < 9.7 || r > 10.01 {
			t.Fatalf("point %+v at radius %v", s.P2, r)
		}
	}
}
