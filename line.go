package vg

// Segment is an ordered pair of endpoints plus four per-axis factors
// derived once at construction for a scanline/signed-area consumer.
// The factors encode the direction-dependent rounding rules a sparse
// rasterizer needs so it never branches per pixel:
//
//   - Nudge selects floor versus ceiling when stepping to the next grid
//     boundary along the travel direction: floor(x)+Nudge is the first
//     boundary ahead on an ascending axis (Nudge 1), the boundary at or
//     behind on a descending one (Nudge 0).
//   - Adjust (0 or 1 per axis) converts a crossed boundary into the
//     index of the pixel being entered.
//   - Area is the signed per-axis extent p2 - p1.
//   - Delta is the reciprocal extent 1/Area; a zero extent yields an
//     IEEE infinity, which consumers rely on to skip the axis.
//
// Segments are immutable after construction.
type Segment struct {
	P1, P2 Vec

	Nudge  Vec
	Adjust Vec
	Area   Vec
	Delta  Vec
}

// Seg creates a segment from p1 to p2, precomputing the per-axis
// scan-conversion factors.
func Seg(p1, p2 Vec) Segment {
	area := p2.Sub(p1)

	var nudge, adjust Vec
	if area.X >= 0 {
		nudge.X = 1
		adjust.X = 1
	}
	if area.Y >= 0 {
		nudge.Y = 1
		adjust.Y = 1
	}

	return Segment{
		P1:     p1,
		P2:     p2,
		Nudge:  nudge,
		Adjust: adjust,
		Area:   area,
		Delta:  Vec{X: 1 / area.X, Y: 1 / area.Y},
	}
}

// Reversed returns a new segment with swapped endpoints and freshly
// derived factors.
func (s Segment) Reversed() Segment {
	return Seg(s.P2, s.P1)
}

// Length returns the euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.P1.Distance(s.P2)
}

// Mid returns the midpoint of the segment.
func (s Segment) Mid() Vec {
	return s.P1.Mid(s.P2)
}
