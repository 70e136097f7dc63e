package vg

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of numeric types a Vector or Rect can range over.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Vector represents a 2D point or displacement over a scalar type.
// Arithmetic is component-wise. Operations that need floating-point
// intermediates (Length, Distance, Normalize) compute in float64 and
// convert back, truncating for integer instantiations.
type Vector[T Scalar] struct {
	X, Y T
}

// Vec is the float64 instantiation used throughout the path and
// sampling layers.
type Vec = Vector[float64]

// IVec is the integer instantiation used for pixel coordinates.
type IVec = Vector[int]

// V is a convenience function to create a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// IV is a convenience function to create an IVec.
func IV(x, y int) IVec {
	return IVec{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vector[T]) Add(w Vector[T]) Vector[T] {
	return Vector[T]{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vector[T]) Sub(w Vector[T]) Vector[T] {
	return Vector[T]{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vector[T]) Mul(s T) Vector[T] {
	return Vector[T]{X: v.X * s, Y: v.Y * s}
}

// Div returns the vector divided by a scalar.
func (v Vector[T]) Div(s T) Vector[T] {
	return Vector[T]{X: v.X / s, Y: v.Y / s}
}

// Neg returns the negation of the vector.
func (v Vector[T]) Neg() Vector[T] {
	return Vector[T]{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vector[T]) Dot(w Vector[T]) T {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (scalar).
// This is the z-component of the 3D cross product with z=0.
func (v Vector[T]) Cross(w Vector[T]) T {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length (magnitude) of the vector.
func (v Vector[T]) Length() float64 {
	x, y := float64(v.X), float64(v.Y)
	return math.Sqrt(x*x + y*y)
}

// LengthSq returns the squared length of the vector.
// Faster than Length when only comparing magnitudes.
func (v Vector[T]) LengthSq() T {
	return v.X*v.X + v.Y*v.Y
}

// Distance returns the distance between two points.
func (v Vector[T]) Distance(w Vector[T]) float64 {
	return v.Sub(w).Length()
}

// Normalize returns a unit vector in the same direction.
// The zero vector has no direction: the result is NaN-valued (0/0);
// this is not guarded.
func (v Vector[T]) Normalize() Vector[T] {
	length := v.Length()
	return Vector[T]{X: T(float64(v.X) / length), Y: T(float64(v.Y) / length)}
}

// Perp returns the perpendicular vector (rotated 90 degrees
// counter-clockwise).
func (v Vector[T]) Perp() Vector[T] {
	return Vector[T]{X: -v.Y, Y: v.X}
}

// Mid returns the midpoint between two points, truncating for integer
// instantiations.
func (v Vector[T]) Mid(w Vector[T]) Vector[T] {
	return Vector[T]{
		X: T((float64(v.X) + float64(w.X)) / 2),
		Y: T((float64(v.Y) + float64(w.Y)) / 2),
	}
}

// Eq returns true if both components are equal.
func (v Vector[T]) Eq(w Vector[T]) bool {
	return v.X == w.X && v.Y == w.Y
}

// IsZero returns true if the vector is the zero vector.
func (v Vector[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Lerp performs linear interpolation between two vectors, truncating
// for integer instantiations.
func (v Vector[T]) Lerp(w Vector[T], t float64) Vector[T] {
	return Vector[T]{
		X: T(float64(v.X) + (float64(w.X)-float64(v.X))*t),
		Y: T(float64(v.Y) + (float64(w.Y)-float64(v.Y))*t),
	}
}

// Approx returns true if two vectors are approximately equal within
// epsilon, measured per component in floating point.
func (v Vector[T]) Approx(w Vector[T], epsilon float64) bool {
	return math.Abs(float64(v.X)-float64(w.X)) < epsilon &&
		math.Abs(float64(v.Y)-float64(w.Y)) < epsilon
}
