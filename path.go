package vg

import "math"

// DefaultSubdivision is the number of parameter steps used to flatten
// quadratic and cubic Bézier curves into line segments.
const DefaultSubdivision = 24

// Subpath is an ordered sequence of line segments owned by one Path.
type Subpath struct {
	segments []Segment
}

// Segments returns the segment sequence.
func (s *Subpath) Segments() []Segment {
	return s.segments
}

// Start returns the first segment's first endpoint, or the zero vector
// for an empty subpath.
func (s *Subpath) Start() Vec {
	if len(s.segments) == 0 {
		return Vec{}
	}
	return s.segments[0].P1
}

// End returns the last segment's second endpoint, or the zero vector
// for an empty subpath.
func (s *Subpath) End() Vec {
	if len(s.segments) == 0 {
		return Vec{}
	}
	return s.segments[len(s.segments)-1].P2
}

// IsClosed returns true if the subpath ends where it starts and both
// endpoints are finite.
func (s *Subpath) IsClosed() bool {
	start, end := s.Start(), s.End()
	return isFinite(start) && isFinite(end) && start.Eq(end)
}

// clone performs a deep copy of the segment sequence.
func (s *Subpath) clone() Subpath {
	segments := make([]Segment, len(s.segments))
	copy(segments, s.segments)
	return Subpath{segments: segments}
}

func isFinite(v Vec) bool {
	return !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.X) && !math.IsNaN(v.Y)
}

// Path is an ordered sequence of subpaths built from move/line/curve
// commands. Curves are flattened to line segments at construction time.
// The path maintains a cursor and a running bounding box covering every
// segment endpoint ever pushed; only Clear resets them.
//
// The zero value is an empty path ready for use.
type Path struct {
	subpaths []Subpath
	cursor   Vec
	bounds   Rect[float64]
	// boundsSet marks that bounds holds real data or the sentinel, so a
	// zero-value Path can be told apart from one whose bounds are
	// legitimately the zero rect.
	boundsSet bool
	subdiv    int
}

// PathOption configures a Path created by NewPath.
type PathOption func(*Path)

// WithSubdivision sets the number of parameter steps used to flatten
// curves. Values below 1 keep the default.
func WithSubdivision(n int) PathOption {
	return func(p *Path) {
		if n >= 1 {
			p.subdiv = n
		}
	}
}

// NewPath creates a new empty path.
func NewPath(opts ...PathOption) *Path {
	p := &Path{bounds: EmptyRect(), boundsSet: true}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Subdivision returns the curve flattening step count in effect.
func (p *Path) Subdivision() int {
	if p.subdiv < 1 {
		return DefaultSubdivision
	}
	return p.subdiv
}

// Subpaths returns the subpath sequence.
func (p *Path) Subpaths() []Subpath {
	return p.subpaths
}

// Cursor returns the current pen position.
func (p *Path) Cursor() Vec {
	return p.cursor
}

// Bounds returns the running bounding box: the exact min/max over all
// segment endpoints ever pushed. An empty path reports the
// inverted-infinite sentinel (see EmptyRect), which is not valid.
func (p *Path) Bounds() Rect[float64] {
	if len(p.subpaths) == 0 {
		return EmptyRect()
	}
	return p.bounds
}

// current returns the last subpath, implicitly appending one when the
// sequence is empty.
func (p *Path) current() *Subpath {
	if len(p.subpaths) == 0 {
		p.subpaths = append(p.subpaths, Subpath{})
	}
	return &p.subpaths[len(p.subpaths)-1]
}

// MoveTo closes the current subpath if it has any segments, then starts
// a new empty subpath at pt.
func (p *Path) MoveTo(pt Vec) {
	cur := p.current()
	if len(cur.segments) > 0 {
		if end := cur.End(); !end.Eq(cur.Start()) {
			p.push(cur, end, cur.Start())
		}
		p.subpaths = append(p.subpaths, Subpath{})
	}
	p.cursor = pt
}

// LineTo appends one segment from the cursor to pt.
func (p *Path) LineTo(pt Vec) {
	p.push(p.current(), p.cursor, pt)
	p.cursor = pt
}

// QuadTo flattens the quadratic Bézier curve from the cursor through
// ctrl to target into Subdivision() line segments. The final sample is
// the exact target point.
func (p *Path) QuadTo(ctrl, target Vec) {
	p0 := p.cursor
	n := p.Subdivision()
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		p.LineTo(quadPoint(p0, ctrl, target, t))
	}
	p.LineTo(target)
}

// CubicTo flattens the cubic Bézier curve from the cursor through
// ctrl1 and ctrl2 to target into Subdivision() line segments. The final
// sample is the exact target point.
func (p *Path) CubicTo(ctrl1, ctrl2, target Vec) {
	p0 := p.cursor
	n := p.Subdivision()
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		p.LineTo(cubicPoint(p0, ctrl1, ctrl2, target, t))
	}
	p.LineTo(target)
}

// ClosePath appends a closing segment from the current subpath's end
// back to its start and opens a fresh empty subpath. A subpath with no
// segments is left untouched; one already ending at its start gains no
// zero-length closer.
func (p *Path) ClosePath() {
	cur := p.current()
	if len(cur.segments) == 0 {
		return
	}
	start := cur.Start()
	if end := cur.End(); !end.Eq(start) {
		p.push(cur, end, start)
	}
	p.subpaths = append(p.subpaths, Subpath{})
	p.cursor = start
}

// Clear releases all subpaths, resets the cursor to the zero vector,
// and resets the bounding box to the empty sentinel.
func (p *Path) Clear() {
	p.subpaths = nil
	p.cursor = Vec{}
	p.bounds = EmptyRect()
	p.boundsSet = true
}

// Transform applies an affine transformation to every segment endpoint
// and the cursor, rebuilding the precomputed segment factors and the
// bounding box.
func (p *Path) Transform(m Matrix) {
	p.bounds = EmptyRect()
	p.boundsSet = true
	for i := range p.subpaths {
		segs := p.subpaths[i].segments
		for j, s := range segs {
			from, to := m.Apply(s.P1), m.Apply(s.P2)
			segs[j] = Seg(from, to)
			p.bounds = p.bounds.Include(from).Include(to)
		}
	}
	p.cursor = m.Apply(p.cursor)
}

// Clone deep-copies every subpath's segment sequence. The clone is
// fully independent of the original.
func (p *Path) Clone() *Path {
	clone := &Path{
		cursor:    p.cursor,
		bounds:    p.bounds,
		boundsSet: p.boundsSet,
		subdiv:    p.subdiv,
	}
	if p.subpaths != nil {
		clone.subpaths = make([]Subpath, len(p.subpaths))
		for i := range p.subpaths {
			clone.subpaths[i] = p.subpaths[i].clone()
		}
	}
	return clone
}

// push appends a segment to a subpath and grows the bounding box to
// cover both endpoints. The box never shrinks; only Clear resets it.
func (p *Path) push(sub *Subpath, from, to Vec) {
	sub.segments = append(sub.segments, Seg(from, to))
	if !p.boundsSet {
		// Zero-value Path: bounds were never seeded with the sentinel.
		p.bounds = EmptyRect()
		p.boundsSet = true
	}
	p.bounds = p.bounds.Include(from).Include(to)
}

// quadPoint evaluates a quadratic Bézier curve at parameter t.
func quadPoint(p0, c, p1 Vec, t float64) Vec {
	u := 1 - t
	return Vec{
		X: u*u*p0.X + 2*u*t*c.X + t*t*p1.X,
		Y: u*u*p0.Y + 2*u*t*c.Y + t*t*p1.Y,
	}
}

// cubicPoint evaluates a cubic Bézier curve at parameter t.
func cubicPoint(p0, c1, c2, p1 Vec, t float64) Vec {
	u := 1 - t
	return Vec{
		X: u*u*u*p0.X + 3*u*u*t*c1.X + 3*u*t*t*c2.X + t*t*t*p1.X,
		Y: u*u*u*p0.Y + 3*u*u*t*c1.Y + 3*u*t*t*c2.Y + t*t*t*p1.Y,
	}
}

// bezierK is the control-point offset factor approximating a quarter
// circle with one cubic Bézier: 4/3 * (sqrt(2) - 1).
const bezierK = 0.5522847498307936

// Rect adds an axis-aligned rectangle as a closed subpath.
func (p *Path) Rect(x, y, w, h float64) {
	p.MoveTo(V(x, y))
	p.LineTo(V(x+w, y))
	p.LineTo(V(x+w, y+h))
	p.LineTo(V(x, y+h))
	p.ClosePath()
}

// Circle adds a circle approximated by four flattened cubic Bézier
// curves.
func (p *Path) Circle(cx, cy, r float64) {
	p.Ellipse(cx, cy, r, r)
}

// Ellipse adds an ellipse approximated by four flattened cubic Bézier
// curves.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	ox := rx * bezierK
	oy := ry * bezierK

	p.MoveTo(V(cx+rx, cy))
	p.CubicTo(V(cx+rx, cy+oy), V(cx+ox, cy+ry), V(cx, cy+ry))
	p.CubicTo(V(cx-ox, cy+ry), V(cx-rx, cy+oy), V(cx-rx, cy))
	p.CubicTo(V(cx-rx, cy-oy), V(cx-ox, cy-ry), V(cx, cy-ry))
	p.CubicTo(V(cx+ox, cy-ry), V(cx+rx, cy-oy), V(cx+rx, cy))
	p.ClosePath()
}
