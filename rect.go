package vg

import "math"

// Rect is an axis-aligned rectangle over a scalar type.
// A rect is valid iff XMin < XMax && YMin < YMax.
type Rect[T Scalar] struct {
	XMin, XMax T
	YMin, YMax T
}

// R creates a float64 rectangle.
func R(xMin, xMax, yMin, yMax float64) Rect[float64] {
	return Rect[float64]{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax}
}

// EmptyRect returns the inverted-infinite sentinel used as the starting
// bounding box: any point included into it immediately establishes real
// bounds. The sentinel is not valid.
func EmptyRect() Rect[float64] {
	return Rect[float64]{
		XMin: math.Inf(1), XMax: math.Inf(-1),
		YMin: math.Inf(1), YMax: math.Inf(-1),
	}
}

// IsValid returns true if the rectangle has positive extent on both
// axes.
func (r Rect[T]) IsValid() bool {
	return r.XMin < r.XMax && r.YMin < r.YMax
}

// Width returns XMax - XMin. Meaningful only for valid rects.
func (r Rect[T]) Width() T {
	return r.XMax - r.XMin
}

// Height returns YMax - YMin. Meaningful only for valid rects.
func (r Rect[T]) Height() T {
	return r.YMax - r.YMin
}

// Intersect returns the component-wise tightest overlap of two rects.
// The result is not validated: non-overlapping inputs produce an
// invalid rect, and callers must check IsValid before using it.
func (r Rect[T]) Intersect(o Rect[T]) Rect[T] {
	return Rect[T]{
		XMin: maxScalar(r.XMin, o.XMin),
		XMax: minScalar(r.XMax, o.XMax),
		YMin: maxScalar(r.YMin, o.YMin),
		YMax: minScalar(r.YMax, o.YMax),
	}
}

// Union returns the smallest rect covering both inputs.
func (r Rect[T]) Union(o Rect[T]) Rect[T] {
	return Rect[T]{
		XMin: minScalar(r.XMin, o.XMin),
		XMax: maxScalar(r.XMax, o.XMax),
		YMin: minScalar(r.YMin, o.YMin),
		YMax: maxScalar(r.YMax, o.YMax),
	}
}

// Include expands the rect to cover the given point.
func (r Rect[T]) Include(p Vector[T]) Rect[T] {
	return Rect[T]{
		XMin: minScalar(r.XMin, p.X),
		XMax: maxScalar(r.XMax, p.X),
		YMin: minScalar(r.YMin, p.Y),
		YMax: maxScalar(r.YMax, p.Y),
	}
}

// Contains returns true if the point lies inside the rect, with the
// minimum edges inclusive and the maximum edges exclusive.
func (r Rect[T]) Contains(p Vector[T]) bool {
	return p.X >= r.XMin && p.X < r.XMax && p.Y >= r.YMin && p.Y < r.YMax
}

func minScalar[T Scalar](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func maxScalar[T Scalar](a, b T) T {
	if a > b {
		return a
	}
	return b
}
