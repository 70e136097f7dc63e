package vg

import (
	"math"
	"testing"
)

var (
	_ Pattern = (*LinearGradient)(nil)
	_ Pattern = (*RadialGradient)(nil)
	_ Pattern = (*SweepGradient)(nil)
)

func TestLinearGradientStops(t *testing.T) {
	g := NewLinearGradient(0, 0, 10, 0).
		AddStop(0, Black).
		AddStop(1, White)

	checkColor(t, g.ColorAt(0, 5), Black, 1e-6)
	checkColor(t, g.ColorAt(10, -3), White, 1e-6)

	// Halfway in linear-light space, then back to sRGB.
	want := Black.ToLinear().Lerp(White.ToLinear(), 0.5).ToSRGB()
	checkColor(t, g.ColorAt(5, 0), want, 1e-9)
}

func TestLinearGradientSpread(t *testing.T) {
	g := NewLinearGradient(0, 0, 10, 0).
		AddStop(0, Black).
		AddStop(1, White)

	// Pad extends the edge colors.
	checkColor(t, g.ColorAt(25, 0), White, 1e-6)
	checkColor(t, g.ColorAt(-5, 0), Black, 1e-6)

	g.SetSpread(SpreadRepeat)
	checkColor(t, g.ColorAt(20, 0), Black, 1e-6)

	g.SetSpread(SpreadReflect)
	checkColor(t, g.ColorAt(15, 0), Black.ToLinear().Lerp(White.ToLinear(), 0.5).ToSRGB(), 1e-9)
	checkColor(t, g.ColorAt(20, 0), Black, 1e-6)
}

func TestLinearGradientDegenerate(t *testing.T) {
	// Zero-length axis resolves to the first stop.
	g := NewLinearGradient(5, 5, 5, 5).
		AddStop(0.3, Red).
		AddStop(0.8, Blue)
	checkColor(t, g.ColorAt(100, 100), Red, 0)

	// No stops at all resolves to transparent.
	empty := NewLinearGradient(0, 0, 1, 0)
	checkColor(t, empty.ColorAt(0.5, 0), Transparent, 0)

	// One stop is constant everywhere.
	single := NewLinearGradient(0, 0, 1, 0).AddStop(0.5, Green)
	checkColor(t, single.ColorAt(-7, 3), Green, 0)
}

func TestGradientUnsortedStops(t *testing.T) {
	g := NewLinearGradient(0, 0, 10, 0).
		AddStop(1, White).
		AddStop(0, Black)
	checkColor(t, g.ColorAt(0, 0), Black, 1e-6)
	checkColor(t, g.ColorAt(10, 0), White, 1e-6)
}

func TestGradientCoincidentStops(t *testing.T) {
	// A hard edge: two stops at the same offset must not divide by
	// zero.
	g := NewLinearGradient(0, 0, 10, 0).
		AddStop(0, Red).
		AddStop(0.5, Red).
		AddStop(0.5, Blue).
		AddStop(1, Blue)
	checkColor(t, g.ColorAt(2, 0), Red, 1e-6)
	checkColor(t, g.ColorAt(8, 0), Blue, 1e-6)
}

func TestRadialGradient(t *testing.T) {
	g := NewRadialGradient(0, 0, 0, 10).
		AddStop(0, White).
		AddStop(1, Black)

	checkColor(t, g.ColorAt(0, 0), White, 1e-6)
	checkColor(t, g.ColorAt(10, 0), Black, 1e-6)
	checkColor(t, g.ColorAt(0, -10), Black, 1e-6)

	mid := White.ToLinear().Lerp(Black.ToLinear(), 0.5).ToSRGB()
	checkColor(t, g.ColorAt(5, 0), mid, 1e-9)

	// Beyond the end radius pads to the last stop.
	checkColor(t, g.ColorAt(30, 0), Black, 1e-6)
}

func TestRadialGradientStartRadius(t *testing.T) {
	g := NewRadialGradient(0, 0, 5, 15).
		AddStop(0, White).
		AddStop(1, Black)

	// Inside the start radius the parameter is negative and pads.
	checkColor(t, g.ColorAt(2, 0), White, 1e-6)
	checkColor(t, g.ColorAt(15, 0), Black, 1e-6)
}

func TestRadialGradientFocal(t *testing.T) {
	g := NewRadialGradient(0, 0, 0, 10).
		SetFocus(5, 0).
		AddStop(0, White).
		AddStop(1, Black)

	// The focus itself is t=0.
	checkColor(t, g.ColorAt(5, 0), White, 1e-6)

	// On the end circle along the ray the parameter reaches 1.
	checkColor(t, g.ColorAt(10, 0), Black, 1e-6)
	checkColor(t, g.ColorAt(-10, 0), Black, 1e-6)
}

func TestRadialGradientDegenerate(t *testing.T) {
	g := NewRadialGradient(0, 0, 5, 5).
		AddStop(0.2, Red).
		AddStop(0.9, Blue)
	checkColor(t, g.ColorAt(3, 4), Red, 0)
}

func TestSweepGradient(t *testing.T) {
	g := NewSweepGradient(0, 0, 0).
		AddStop(0, Red).
		AddStop(1, Blue)

	checkColor(t, g.ColorAt(10, 0), Red, 1e-6)

	// A quarter turn is t=0.25.
	want := Red.ToLinear().Lerp(Blue.ToLinear(), 0.25).ToSRGB()
	checkColor(t, g.ColorAt(0, 10), want, 1e-9)

	// Center has no angle and resolves to the first stop.
	checkColor(t, g.ColorAt(0, 0), Red, 0)
}

func TestSweepGradientPartial(t *testing.T) {
	g := NewSweepGradient(0, 0, 0).
		SetEndAngle(math.Pi).
		AddStop(0, Red).
		AddStop(1, Blue)

	checkColor(t, g.ColorAt(10, 0), Red, 1e-6)
	want := Red.ToLinear().Lerp(Blue.ToLinear(), 0.5).ToSRGB()
	checkColor(t, g.ColorAt(0, 10), want, 1e-9)
}
