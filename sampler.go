package vg

import "math"

// BorderMode determines how sample coordinates outside [0,1] map back
// into range.
type BorderMode uint8

const (
	// BorderClamp clamps coordinates to [0,1] (edge extension).
	BorderClamp BorderMode = iota

	// BorderRepeat tiles the image: coordinates wrap via uv mod 1.
	BorderRepeat

	// BorderMirror reflects coordinates in a triangle wave at every
	// integer boundary, then clamps.
	BorderMirror

	// BorderColor leaves coordinates unchanged; out-of-range samples
	// resolve to the sampler's border color.
	BorderColor

	// borderModeCount is the number of modes (for internal use).
	borderModeCount
)

// String returns a string representation of the border mode.
func (m BorderMode) String() string {
	switch m {
	case BorderClamp:
		return "Clamp"
	case BorderRepeat:
		return "Repeat"
	case BorderMirror:
		return "Mirror"
	case BorderColor:
		return "Color"
	default:
		return "Unknown"
	}
}

// Filter selects the reconstruction filter used when sampling.
type Filter uint8

const (
	// FilterPoint selects the single nearest pixel.
	FilterPoint Filter = iota

	// FilterLinear interpolates the 2x2 pixel neighborhood.
	FilterLinear

	// FilterBicubic is currently an unimplemented fallback that
	// behaves identically to FilterLinear.
	FilterBicubic

	// filterCount is the number of filters (for internal use).
	filterCount
)

// String returns a string representation of the filter.
func (f Filter) String() string {
	switch f {
	case FilterPoint:
		return "Point"
	case FilterLinear:
		return "Linear"
	case FilterBicubic:
		return "Bicubic"
	default:
		return "Unknown"
	}
}

// Sampler reads colors from an ImageBuffer at arbitrary normalized
// (u,v) coordinates, applying a border policy and a reconstruction
// filter. The sampler holds no reference to the images it reads; the
// caller manages the buffer's lifetime.
type Sampler struct {
	Border      BorderMode
	Filter      Filter
	BorderColor Color
}

// BorderUV maps a (u,v) coordinate into canonical sample position
// according to the border mode. BorderColor mode passes the coordinate
// through unchanged; Sample detects the out-of-range case afterwards.
func (s Sampler) BorderUV(uv Vec) Vec {
	switch s.Border {
	case BorderRepeat:
		return Vec{X: wrap1(uv.X), Y: wrap1(uv.Y)}
	case BorderMirror:
		return Vec{X: mirror1(uv.X), Y: mirror1(uv.Y)}
	case BorderColor:
		return uv
	default: // BorderClamp
		return Vec{X: clamp01(uv.X), Y: clamp01(uv.Y)}
	}
}

// Sample reads a color from img at the given (u,v) coordinate.
// Coordinates that remain outside [0,1] after border mapping resolve to
// the border color; this can only happen in BorderColor mode.
func (s Sampler) Sample(uv Vec, img *ImageBuffer) Color {
	mapped := s.BorderUV(uv)
	if mapped.X < 0 || mapped.X > 1 || mapped.Y < 0 || mapped.Y > 1 {
		return s.BorderColor
	}

	w, h := img.Width(), img.Height()
	x := pixelIndex(mapped.X, w)
	y := pixelIndex(mapped.Y, h)

	switch s.Filter {
	case FilterLinear, FilterBicubic:
		// Bicubic is a documented gap and falls through to linear.
		x1 := minScalar(x+1, w-1)
		y1 := minScalar(y+1, h-1)

		c00 := img.GetPixel(x, y)
		c10 := img.GetPixel(x1, y)
		c01 := img.GetPixel(x, y1)
		c11 := img.GetPixel(x1, y1)

		// The lerp weights come from the original, pre-border-mapped
		// coordinate so that tiling modes keep their sub-pixel phase.
		fx := frac(uv.X * float64(w))
		fy := frac(uv.Y * float64(h))

		top := c00.Lerp(c10, fx)
		bottom := c01.Lerp(c11, fx)
		return top.Lerp(bottom, fy)
	default: // FilterPoint
		return img.GetPixel(x, y)
	}
}

// pixelIndex converts a [0,1] coordinate to the top-left pixel index
// along an axis of n pixels.
func pixelIndex(t float64, n int) int {
	i := int(math.Floor(t * float64(n)))
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

// wrap1 maps t into [0,1) by taking t mod 1 with a positive result.
func wrap1(t float64) float64 {
	return t - math.Floor(t)
}

// mirror1 reflects t in a triangle wave with period 2, then clamps.
func mirror1(t float64) float64 {
	m := math.Mod(math.Abs(t), 2)
	if m >= 1 {
		m = 2 - m
	}
	return clamp01(m)
}

// frac returns the positive fractional part of t.
func frac(t float64) float64 {
	return t - math.Floor(t)
}
