package vg

import (
	"encoding/binary"
	"math"
)

// PixelFormat represents a pixel storage format.
//
// The alignment (bytes per pixel) together with the channel arrangement
// fully determines the byte layout of one pixel; there is no runtime
// negotiation. Three-channel formats carry one padding sample so every
// multi-channel pixel occupies four samples.
type PixelFormat uint8

const (
	// PixelAlpha8 is an 8-bit single-channel format (1 byte per pixel).
	PixelAlpha8 PixelFormat = iota

	// PixelAlphaF32 is a 32-bit float single-channel format.
	PixelAlphaF32

	// PixelRGB8 is 8-bit RGB with one padding byte (4 bytes per pixel).
	PixelRGB8

	// PixelBGR8 is 8-bit BGR with one padding byte (4 bytes per pixel).
	PixelBGR8

	// PixelRGBA8 is 8-bit RGBA (4 bytes per pixel).
	PixelRGBA8

	// PixelBGRA8 is 8-bit BGRA (4 bytes per pixel).
	PixelBGRA8

	// PixelRGBF32 is 32-bit float RGB with one padding sample
	// (16 bytes per pixel).
	PixelRGBF32

	// PixelBGRF32 is 32-bit float BGR with one padding sample
	// (16 bytes per pixel).
	PixelBGRF32

	// PixelRGBAF32 is 32-bit float RGBA (16 bytes per pixel).
	PixelRGBAF32

	// PixelBGRAF32 is 32-bit float BGRA (16 bytes per pixel).
	PixelBGRAF32

	// pixelFormatCount is the number of formats (for internal use).
	pixelFormatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// Alignment is the size of one pixel in bytes (1, 4, or 16).
	Alignment int

	// Channels is the number of color channels (1, 3, or 4).
	Channels int

	// HasTransparency indicates whether the format carries an alpha
	// channel. Only four-channel formats do.
	HasTransparency bool

	// Float indicates 32-bit float samples instead of unsigned
	// normalized bytes.
	Float bool

	// BGR indicates reversed channel order for the color components.
	BGR bool
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [pixelFormatCount]FormatInfo{
	PixelAlpha8:   {Alignment: 1, Channels: 1},
	PixelAlphaF32: {Alignment: 4, Channels: 1, Float: true},
	PixelRGB8:     {Alignment: 4, Channels: 3},
	PixelBGR8:     {Alignment: 4, Channels: 3, BGR: true},
	PixelRGBA8:    {Alignment: 4, Channels: 4, HasTransparency: true},
	PixelBGRA8:    {Alignment: 4, Channels: 4, HasTransparency: true, BGR: true},
	PixelRGBF32:   {Alignment: 16, Channels: 3, Float: true},
	PixelBGRF32:   {Alignment: 16, Channels: 3, Float: true, BGR: true},
	PixelRGBAF32:  {Alignment: 16, Channels: 4, HasTransparency: true, Float: true},
	PixelBGRAF32:  {Alignment: 16, Channels: 4, HasTransparency: true, Float: true, BGR: true},
}

// Info returns the FormatInfo for this format.
func (f PixelFormat) Info() FormatInfo {
	if f >= pixelFormatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// Alignment returns the size of one pixel in bytes.
func (f PixelFormat) Alignment() int {
	return f.Info().Alignment
}

// Channels returns the number of color channels.
func (f PixelFormat) Channels() int {
	return f.Info().Channels
}

// HasTransparency returns true if the format has an alpha channel.
func (f PixelFormat) HasTransparency() bool {
	return f.Info().HasTransparency
}

// BytesPerPixel returns the size of one pixel in bytes.
// Identical to Alignment; pixels are always tightly packed to their
// alignment.
func (f PixelFormat) BytesPerPixel() int {
	return f.Info().Alignment
}

// SamplesPerPixel returns the number of samples one pixel occupies in a
// scanline, including the padding sample of three-channel formats.
func (f PixelFormat) SamplesPerPixel() int {
	if f.Channels() == 1 {
		return 1
	}
	return 4
}

// SampleBytes returns the size of one sample in bytes: 4 for float
// formats, 1 for unsigned normalized formats.
func (f PixelFormat) SampleBytes() int {
	if f.Info().Float {
		return 4
	}
	return 1
}

// RowBytes returns the number of bytes for a row of the given width.
func (f PixelFormat) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// ImageBytes returns the total number of bytes for an image.
func (f PixelFormat) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}

// IsValid returns true if the format is a known format.
func (f PixelFormat) IsValid() bool {
	return f < pixelFormatCount
}

// String returns a string representation of the format.
func (f PixelFormat) String() string {
	switch f {
	case PixelAlpha8:
		return "Alpha8"
	case PixelAlphaF32:
		return "AlphaF32"
	case PixelRGB8:
		return "RGB8"
	case PixelBGR8:
		return "BGR8"
	case PixelRGBA8:
		return "RGBA8"
	case PixelBGRA8:
		return "BGRA8"
	case PixelRGBF32:
		return "RGBF32"
	case PixelBGRF32:
		return "BGRF32"
	case PixelRGBAF32:
		return "RGBAF32"
	case PixelBGRAF32:
		return "BGRAF32"
	default:
		return "Unknown"
	}
}

// DecodeColor reads the pixel at index x from a scanline and converts it
// to a Color. Out-of-range access returns the zero Color instead of
// failing. Single-channel samples are replicated into the color
// channels; formats without a transparency channel decode with alpha 1.
func DecodeColor(scanline []byte, x int, format PixelFormat) Color {
	info := format.Info()
	if info.Alignment == 0 {
		return Color{}
	}

	off := x * info.Alignment
	if x < 0 || off+info.Alignment > len(scanline) {
		return Color{}
	}
	px := scanline[off : off+info.Alignment]

	var r, g, b, a float64
	switch info.Channels {
	case 1:
		var v float64
		if info.Float {
			v = float64(readF32(px, 0))
		} else {
			v = FromUNorm8(px[0])
		}
		r, g, b, a = v, v, v, 1
	case 3:
		r, g, b = readRGB(px, info)
		a = 1
	default:
		r, g, b = readRGB(px, info)
		if info.Float {
			a = float64(readF32(px, 3))
		} else {
			a = FromUNorm8(px[3])
		}
	}
	return Color{R: r, G: g, B: b, A: a}
}

// EncodeColor writes a Color into the pixel at index x of a scanline,
// the inverse of DecodeColor. Out-of-range access is a no-op.
// Unsigned normalized samples are clamped to [0, 1]; float samples are
// stored as given. The alpha of formats without a transparency channel
// is dropped; the padding sample of three-channel formats is zeroed.
func EncodeColor(scanline []byte, x int, format PixelFormat, c Color) {
	info := format.Info()
	if info.Alignment == 0 {
		return
	}

	off := x * info.Alignment
	if x < 0 || off+info.Alignment > len(scanline) {
		return
	}
	px := scanline[off : off+info.Alignment]

	switch info.Channels {
	case 1:
		if info.Float {
			writeF32(px, 0, float32(c.Luminance()))
		} else {
			px[0] = ToUNorm8(c.Luminance())
		}
	case 3:
		writeRGB(px, info, c)
		if info.Float {
			writeF32(px, 3, 0)
		} else {
			px[3] = 0
		}
	default:
		writeRGB(px, info, c)
		if info.Float {
			writeF32(px, 3, float32(c.A))
		} else {
			px[3] = ToUNorm8(c.A)
		}
	}
}

// readRGB reads the three color samples of a pixel, honoring BGR order.
func readRGB(px []byte, info FormatInfo) (r, g, b float64) {
	ri, bi := 0, 2
	if info.BGR {
		ri, bi = 2, 0
	}
	if info.Float {
		return float64(readF32(px, ri)), float64(readF32(px, 1)), float64(readF32(px, bi))
	}
	return FromUNorm8(px[ri]), FromUNorm8(px[1]), FromUNorm8(px[bi])
}

// writeRGB writes the three color samples of a pixel, honoring BGR order.
func writeRGB(px []byte, info FormatInfo, c Color) {
	ri, bi := 0, 2
	if info.BGR {
		ri, bi = 2, 0
	}
	if info.Float {
		writeF32(px, ri, float32(c.R))
		writeF32(px, 1, float32(c.G))
		writeF32(px, bi, float32(c.B))
		return
	}
	px[ri] = ToUNorm8(c.R)
	px[1] = ToUNorm8(c.G)
	px[bi] = ToUNorm8(c.B)
}

// readF32 reads the i-th little-endian float32 sample of a pixel.
func readF32(px []byte, i int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(px[i*4:]))
}

// writeF32 writes the i-th little-endian float32 sample of a pixel.
func writeF32(px []byte, i int, v float32) {
	binary.LittleEndian.PutUint32(px[i*4:], math.Float32bits(v))
}

// FromUNorm8 converts an unsigned normalized byte sample to [0, 1].
func FromUNorm8(v byte) float64 {
	return float64(v) / 255
}

// ToUNorm8 converts a [0, 1] value to an unsigned normalized byte
// sample, clamping out-of-range inputs. Rounds to nearest so that
// ToUNorm8(FromUNorm8(x)) == x for every byte x.
func ToUNorm8(v float64) byte {
	return byte(clamp01(v)*255 + 0.5)
}
