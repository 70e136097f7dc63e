package vg

import "math"

// CompositeOp represents a Porter-Duff compositing operator.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
type CompositeOp uint8

const (
	CompositeClear   CompositeOp = iota // Result: 0
	CompositeSource                     // Result: S
	CompositeDest                       // Result: D
	CompositeSrcOver                    // Result: S + D*(1-Sa) [default]
	CompositeDstOver                    // Result: S*(1-Da) + D
	CompositeSrcIn                      // Result: S*Da
	CompositeDstIn                      // Result: D*Sa
	CompositeSrcOut                     // Result: S*(1-Da)
	CompositeDstOut                     // Result: D*(1-Sa)
	CompositeSrcAtop                    // Result: S*Da + D*(1-Sa)
	CompositeDstAtop                    // Result: S*(1-Da) + D*Sa
	CompositeXor                        // Result: S*(1-Da) + D*(1-Sa)
	CompositePlus                       // Result: S + D

	// compositeOpCount is the number of operators (for internal use).
	compositeOpCount
)

// String returns a string representation of the operator.
func (op CompositeOp) String() string {
	switch op {
	case CompositeClear:
		return "Clear"
	case CompositeSource:
		return "Source"
	case CompositeDest:
		return "Destination"
	case CompositeSrcOver:
		return "SrcOver"
	case CompositeDstOver:
		return "DstOver"
	case CompositeSrcIn:
		return "SrcIn"
	case CompositeDstIn:
		return "DstIn"
	case CompositeSrcOut:
		return "SrcOut"
	case CompositeDstOut:
		return "DstOut"
	case CompositeSrcAtop:
		return "SrcAtop"
	case CompositeDstAtop:
		return "DstAtop"
	case CompositeXor:
		return "Xor"
	case CompositePlus:
		return "Plus"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the operator is a known operator.
func (op CompositeOp) IsValid() bool {
	return op < compositeOpCount
}

// Composite combines dst and src with the given Porter-Duff operator.
// Color terms enter the formulas in premultiplied style (alpha times
// channel); the identity operators return their input unchanged.
// Unknown operators fall back to CompositeSrcOver.
func Composite(dst, src Color, op CompositeOp) Color {
	sa, da := src.A, dst.A

	switch op {
	case CompositeClear:
		return Color{}
	case CompositeSource:
		return src
	case CompositeDest:
		return dst
	case CompositeDstOver:
		return Color{
			R: sa*src.R*(1-da) + da*dst.R,
			G: sa*src.G*(1-da) + da*dst.G,
			B: sa*src.B*(1-da) + da*dst.B,
			A: sa*(1-da) + da,
		}
	case CompositeSrcIn:
		return Color{
			R: sa * src.R * da,
			G: sa * src.G * da,
			B: sa * src.B * da,
			A: sa * da,
		}
	case CompositeDstIn:
		return Color{
			R: da * dst.R * sa,
			G: da * dst.G * sa,
			B: da * dst.B * sa,
			A: da * sa,
		}
	case CompositeSrcOut:
		return Color{
			R: sa * src.R * (1 - da),
			G: sa * src.G * (1 - da),
			B: sa * src.B * (1 - da),
			A: sa * (1 - da),
		}
	case CompositeDstOut:
		return Color{
			R: da * dst.R * (1 - sa),
			G: da * dst.G * (1 - sa),
			B: da * dst.B * (1 - sa),
			A: da * (1 - sa),
		}
	case CompositeSrcAtop:
		return Color{
			R: sa*src.R*da + da*dst.R*(1-sa),
			G: sa*src.G*da + da*dst.G*(1-sa),
			B: sa*src.B*da + da*dst.B*(1-sa),
			A: da,
		}
	case CompositeDstAtop:
		return Color{
			R: sa*src.R*(1-da) + da*dst.R*sa,
			G: sa*src.G*(1-da) + da*dst.G*sa,
			B: sa*src.B*(1-da) + da*dst.B*sa,
			A: sa,
		}
	case CompositeXor:
		return Color{
			R: sa*src.R*(1-da) + da*dst.R*(1-sa),
			G: sa*src.G*(1-da) + da*dst.G*(1-sa),
			B: sa*src.B*(1-da) + da*dst.B*(1-sa),
			A: sa*(1-da) + da*(1-sa),
		}
	case CompositePlus:
		return Color{
			R: sa*src.R + da*dst.R,
			G: sa*src.G + da*dst.G,
			B: sa*src.B + da*dst.B,
			A: sa + da,
		}
	default: // CompositeSrcOver
		return Color{
			R: sa*src.R + da*dst.R*(1-sa),
			G: sa*src.G + da*dst.G*(1-sa),
			B: sa*src.B + da*dst.B*(1-sa),
			A: sa + da*(1-sa),
		}
	}
}

// BlendMode represents a separable blend mode applied before compositing.
type BlendMode uint8

const (
	BlendNormal     BlendMode = iota // Result: Cs
	BlendScreen                      // Result: Cb + Cs - Cb*Cs
	BlendOverlay                     // See note on Blend
	BlendDarken                      // min(Cb, Cs)
	BlendLighten                     // max(Cb, Cs)
	BlendColorDodge                  // Cb / (1 - Cs), clamped
	BlendColorBurn                   // 1 - (1 - Cb) / Cs, clamped
	BlendHardLight                   // Multiply or Screen depending on source
	BlendSoftLight                   // Soft version of HardLight
	BlendAdd                         // Cb + Cs
	BlendSubtract                    // Cb - Cs
	BlendMultiply                    // Cb * Cs
	BlendDivide                      // Cb / Cs
	BlendDifference                  // |Cb - Cs|
	BlendExclusion                   // Cb + Cs - 2*Cb*Cs

	// blendModeCount is the number of modes (for internal use).
	blendModeCount
)

// String returns a string representation of the blend mode.
func (m BlendMode) String() string {
	switch m {
	case BlendNormal:
		return "Normal"
	case BlendScreen:
		return "Screen"
	case BlendOverlay:
		return "Overlay"
	case BlendDarken:
		return "Darken"
	case BlendLighten:
		return "Lighten"
	case BlendColorDodge:
		return "ColorDodge"
	case BlendColorBurn:
		return "ColorBurn"
	case BlendHardLight:
		return "HardLight"
	case BlendSoftLight:
		return "SoftLight"
	case BlendAdd:
		return "Add"
	case BlendSubtract:
		return "Subtract"
	case BlendMultiply:
		return "Multiply"
	case BlendDivide:
		return "Divide"
	case BlendDifference:
		return "Difference"
	case BlendExclusion:
		return "Exclusion"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the mode is a known blend mode.
func (m BlendMode) IsValid() bool {
	return m < blendModeCount
}

// Blend computes the per-channel blend B(Cb, Cs) of src against the
// backdrop dst and modulates the result against the source weighted by
// the backdrop alpha:
//
//	out.c = (1 - dst.A)*src.c + dst.A*B(dst.c, src.c)
//	out.A = src.A
//
// The blended color still has to be composited (see Composite); Blend
// only replaces the source color where the backdrop participates.
//
// Overlay intentionally reproduces the reference engine, where its
// formula is identical to Screen rather than the documented
// hardLight(src, dst). Kept for output compatibility.
//
// Unknown modes fall back to BlendNormal.
func Blend(dst, src Color, mode BlendMode) Color {
	f := blendChannel(mode)
	da := dst.A
	return Color{
		R: (1-da)*src.R + da*f(dst.R, src.R),
		G: (1-da)*src.G + da*f(dst.G, src.G),
		B: (1-da)*src.B + da*f(dst.B, src.B),
		A: src.A,
	}
}

// blendChannel returns the per-channel blend function B(Cb, Cs) for the
// given mode. Cb is the backdrop channel, Cs the source channel.
func blendChannel(mode BlendMode) func(cb, cs float64) float64 {
	switch mode {
	case BlendScreen, BlendOverlay:
		return screenChannel
	case BlendDarken:
		return math.Min
	case BlendLighten:
		return math.Max
	case BlendColorDodge:
		return func(cb, cs float64) float64 {
			return clamp01(cb / (1 - cs))
		}
	case BlendColorBurn:
		return func(cb, cs float64) float64 {
			return 1 - clamp01((1-cb)/cs)
		}
	case BlendHardLight:
		return func(cb, cs float64) float64 {
			return hardLightChannel(cb, cs)
		}
	case BlendSoftLight:
		return softLightChannel
	case BlendAdd:
		return func(cb, cs float64) float64 {
			return cb + cs
		}
	case BlendSubtract:
		return func(cb, cs float64) float64 {
			return cb - cs
		}
	case BlendMultiply:
		return func(cb, cs float64) float64 {
			return cb * cs
		}
	case BlendDivide:
		return func(cb, cs float64) float64 {
			return cb / cs
		}
	case BlendDifference:
		return func(cb, cs float64) float64 {
			return math.Abs(cb - cs)
		}
	case BlendExclusion:
		return func(cb, cs float64) float64 {
			return cb + cs - 2*cb*cs
		}
	default: // BlendNormal
		return func(cb, cs float64) float64 {
			return cs
		}
	}
}

// screenChannel computes 1 - (1-Cb)*(1-Cs).
func screenChannel(cb, cs float64) float64 {
	return cb + cs - cb*cs
}

// hardLightChannel applies Multiply for dark sources and Screen for
// bright ones. Also the strict form of Overlay with swapped arguments.
func hardLightChannel(cb, cs float64) float64 {
	if cs <= 0.5 {
		return 2 * cb * cs
	}
	return 1 - 2*(1-cb)*(1-cs)
}

// softLightChannel implements the W3C soft-light formula with the
// auxiliary D(cb) = cb <= 0.25 ? ((16*cb-12)*cb+4)*cb : sqrt(cb).
func softLightChannel(cb, cs float64) float64 {
	if cs <= 0.5 {
		return cb - (1-2*cs)*cb*(1-cb)
	}
	var d float64
	if cb <= 0.25 {
		d = ((16*cb-12)*cb + 4) * cb
	} else {
		d = math.Sqrt(cb)
	}
	return cb + (2*cs-1)*(d-cb)
}
