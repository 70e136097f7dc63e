package vg

import (
	"math"
	"sort"
)

// SpreadMode determines how a gradient extends beyond its [0,1]
// parameter range.
type SpreadMode uint8

const (
	// SpreadPad extends the edge colors (default).
	SpreadPad SpreadMode = iota

	// SpreadRepeat tiles the gradient.
	SpreadRepeat

	// SpreadReflect mirrors the gradient at every period.
	SpreadReflect
)

// GradientStop is a color at a position along a gradient, with Offset
// in [0, 1].
type GradientStop struct {
	Offset float64
	Color  Color
}

// spreadT maps a raw gradient parameter into [0, 1] per the spread
// mode.
func spreadT(t float64, mode SpreadMode) float64 {
	switch mode {
	case SpreadRepeat:
		return wrap1(t)
	case SpreadReflect:
		return mirror1(t)
	default: // SpreadPad
		return clamp01(t)
	}
}

// sortStops returns a copy of the stops ordered by offset.
func sortStops(stops []GradientStop) []GradientStop {
	sorted := make([]GradientStop, len(stops))
	copy(sorted, stops)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// firstStopColor returns the lowest-offset stop's color, or
// Transparent when there are no stops.
func firstStopColor(stops []GradientStop) Color {
	if len(stops) == 0 {
		return Transparent
	}
	return sortStops(stops)[0].Color
}

// colorAtOffset resolves the gradient color for a raw parameter t.
// Stops are interpolated pairwise in linear-light space.
func colorAtOffset(stops []GradientStop, t float64, mode SpreadMode) Color {
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	sorted := sortStops(stops)
	t = spreadT(t, mode)

	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset >= t
	})
	if idx == 0 {
		return sorted[0].Color
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}

	s1, s2 := sorted[idx-1], sorted[idx]
	if s2.Offset == s1.Offset {
		return s1.Color
	}
	local := (t - s1.Offset) / (s2.Offset - s1.Offset)
	return s1.Color.ToLinear().Lerp(s2.Color.ToLinear(), local).ToSRGB()
}

// LinearGradient transitions colors along the line from Start to End.
// It implements Pattern.
type LinearGradient struct {
	Start  Vec
	End    Vec
	Stops  []GradientStop
	Spread SpreadMode
}

// NewLinearGradient creates a linear gradient from (x0, y0) to
// (x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{Start: V(x0, y0), End: V(x1, y1)}
}

// AddStop appends a color stop and returns the gradient for chaining.
func (g *LinearGradient) AddStop(offset float64, c Color) *LinearGradient {
	g.Stops = append(g.Stops, GradientStop{Offset: offset, Color: c})
	return g
}

// SetSpread sets the spread mode and returns the gradient for chaining.
func (g *LinearGradient) SetSpread(mode SpreadMode) *LinearGradient {
	g.Spread = mode
	return g
}

// ColorAt implements Pattern by projecting the point onto the gradient
// axis. A zero-length axis resolves to the first stop.
func (g *LinearGradient) ColorAt(x, y float64) Color {
	axis := g.End.Sub(g.Start)
	lenSq := axis.LengthSq()
	if lenSq == 0 {
		return firstStopColor(g.Stops)
	}
	t := V(x, y).Sub(g.Start).Dot(axis) / lenSq
	return colorAtOffset(g.Stops, t, g.Spread)
}

// RadialGradient transitions colors outward from a focal point within
// the circle of EndRadius around Center. It implements Pattern.
type RadialGradient struct {
	Center      Vec
	Focus       Vec
	StartRadius float64
	EndRadius   float64
	Stops       []GradientStop
	Spread      SpreadMode
}

// NewRadialGradient creates a radial gradient around (cx, cy) running
// from startRadius to endRadius. The focus defaults to the center.
func NewRadialGradient(cx, cy, startRadius, endRadius float64) *RadialGradient {
	return &RadialGradient{
		Center:      V(cx, cy),
		Focus:       V(cx, cy),
		StartRadius: startRadius,
		EndRadius:   endRadius,
	}
}

// SetFocus moves the focal point off-center for spotlight effects and
// returns the gradient for chaining.
func (g *RadialGradient) SetFocus(fx, fy float64) *RadialGradient {
	g.Focus = V(fx, fy)
	return g
}

// AddStop appends a color stop and returns the gradient for chaining.
func (g *RadialGradient) AddStop(offset float64, c Color) *RadialGradient {
	g.Stops = append(g.Stops, GradientStop{Offset: offset, Color: c})
	return g
}

// SetSpread sets the spread mode and returns the gradient for chaining.
func (g *RadialGradient) SetSpread(mode SpreadMode) *RadialGradient {
	g.Spread = mode
	return g
}

// ColorAt implements Pattern.
func (g *RadialGradient) ColorAt(x, y float64) Color {
	if g.EndRadius == g.StartRadius {
		return firstStopColor(g.Stops)
	}
	var t float64
	if g.Focus.Eq(g.Center) {
		dist := V(x, y).Distance(g.Center)
		t = (dist - g.StartRadius) / (g.EndRadius - g.StartRadius)
	} else {
		t = g.focalT(V(x, y))
	}
	return colorAtOffset(g.Stops, t, g.Spread)
}

// focalT solves the ray-circle intersection from the focus through the
// point against the end-radius circle; the parameter is the ratio of
// the point's distance to the intersection distance.
func (g *RadialGradient) focalT(p Vec) float64 {
	d := p.Sub(g.Focus)
	f := g.Center.Sub(g.Focus)

	a := d.LengthSq()
	if a == 0 {
		return 0
	}
	b := -2 * d.Dot(f)
	c := f.LengthSq() - g.EndRadius*g.EndRadius

	disc := b*b - 4*a*c
	if disc < 0 {
		return 1
	}
	sqrtD := math.Sqrt(disc)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	var t float64
	switch {
	case t1 > 0 && t2 > 0:
		t = math.Min(t1, t2)
	case t1 > 0:
		t = t1
	case t2 > 0:
		t = t2
	default:
		return 0
	}

	pointDist := math.Sqrt(a)
	intersectDist := t * pointDist
	if intersectDist == 0 {
		return 0
	}
	return pointDist / intersectDist
}

// SweepGradient transitions colors by angle around a center point,
// also known as a conic gradient. It implements Pattern.
type SweepGradient struct {
	Center     Vec
	StartAngle float64
	EndAngle   float64
	Stops      []GradientStop
	Spread     SpreadMode
}

// NewSweepGradient creates a sweep gradient around (cx, cy) starting
// at startAngle radians and covering a full rotation.
func NewSweepGradient(cx, cy, startAngle float64) *SweepGradient {
	return &SweepGradient{
		Center:     V(cx, cy),
		StartAngle: startAngle,
		EndAngle:   startAngle + 2*math.Pi,
	}
}

// SetEndAngle sets the end of the sweep and returns the gradient for
// chaining.
func (g *SweepGradient) SetEndAngle(endAngle float64) *SweepGradient {
	g.EndAngle = endAngle
	return g
}

// AddStop appends a color stop and returns the gradient for chaining.
func (g *SweepGradient) AddStop(offset float64, c Color) *SweepGradient {
	g.Stops = append(g.Stops, GradientStop{Offset: offset, Color: c})
	return g
}

// SetSpread sets the spread mode and returns the gradient for chaining.
func (g *SweepGradient) SetSpread(mode SpreadMode) *SweepGradient {
	g.Spread = mode
	return g
}

// ColorAt implements Pattern. The center itself has no defined angle
// and resolves to the first stop.
func (g *SweepGradient) ColorAt(x, y float64) Color {
	d := V(x, y).Sub(g.Center)
	if d.IsZero() {
		return firstStopColor(g.Stops)
	}

	sweep := g.EndAngle - g.StartAngle
	if sweep == 0 {
		return firstStopColor(g.Stops)
	}

	rel := math.Atan2(d.Y, d.X) - g.StartAngle
	if sweep > 0 {
		rel = wrapAngle(rel)
	} else {
		rel = -wrapAngle(-rel)
	}
	return colorAtOffset(g.Stops, rel/sweep, g.Spread)
}

// wrapAngle maps an angle into [0, 2*Pi).
func wrapAngle(a float64) float64 {
	twoPi := 2 * math.Pi
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}
