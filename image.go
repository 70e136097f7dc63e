package vg

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Common errors for image buffer construction.
var (
	// ErrInvalidDimensions is returned when width or height is
	// non-positive.
	ErrInvalidDimensions = errors.New("vg: invalid dimensions")

	// ErrInvalidFormat is returned when the pixel format is not
	// recognized.
	ErrInvalidFormat = errors.New("vg: invalid pixel format")

	// ErrSizeMismatch is returned when a provided byte store does not
	// match width*height*bytesPerPixel exactly.
	ErrSizeMismatch = errors.New("vg: byte store size mismatch")
)

// ImageBuffer is a rectangular pixel store in one PixelFormat.
// It exclusively owns its byte store, which is sized exactly to
// width*height*BytesPerPixel(format).
//
// Pixel access follows the fail-soft contract: out-of-range reads
// return the zero Color, out-of-range scanline requests return an empty
// view, out-of-range writes are dropped.
type ImageBuffer struct {
	width  int
	height int
	format PixelFormat
	data   []byte
}

// NewImageBuffer creates a zero-filled image buffer with the given
// dimensions and format.
func NewImageBuffer(width, height int, format PixelFormat) (*ImageBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	Logger().Debug("vg: allocating image buffer",
		"width", width, "height", height, "format", format.String())
	return &ImageBuffer{
		width:  width,
		height: height,
		format: format,
		data:   make([]byte, format.ImageBytes(width, height)),
	}, nil
}

// FromBytes creates an image buffer that takes ownership of an existing
// byte store. The store must be sized exactly to the image; anything
// else is a contract violation and returns ErrSizeMismatch.
func FromBytes(data []byte, width, height int, format PixelFormat) (*ImageBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	if len(data) != format.ImageBytes(width, height) {
		return nil, ErrSizeMismatch
	}
	return &ImageBuffer{
		width:  width,
		height: height,
		format: format,
		data:   data,
	}, nil
}

// Width returns the width of the buffer in pixels.
func (b *ImageBuffer) Width() int {
	return b.width
}

// Height returns the height of the buffer in pixels.
func (b *ImageBuffer) Height() int {
	return b.height
}

// Format returns the pixel format of the buffer.
func (b *ImageBuffer) Format() PixelFormat {
	return b.format
}

// Bytes returns the raw byte store.
func (b *ImageBuffer) Bytes() []byte {
	return b.data
}

// ByteStride returns the size of one scanline in bytes.
func (b *ImageBuffer) ByteStride() int {
	return b.format.RowBytes(b.width)
}

// SampleStride returns the size of one scanline in samples, which for
// multi-channel formats includes the padding sample of three-channel
// layouts. Byte stride and sample stride differ whenever the component
// type is wider than one byte.
func (b *ImageBuffer) SampleStride() int {
	return b.width * b.format.SamplesPerPixel()
}

// Scanline returns the byte view of row y, or an empty view if y is out
// of range.
func (b *ImageBuffer) Scanline(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	stride := b.ByteStride()
	return b.data[y*stride : (y+1)*stride]
}

// GetPixel returns the color at (x, y), or the zero Color for any
// out-of-range coordinate.
func (b *ImageBuffer) GetPixel(x, y int) Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Color{}
	}
	return DecodeColor(b.Scanline(y), x, b.format)
}

// SetPixel writes the color at (x, y). Out-of-range writes are dropped.
func (b *ImageBuffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	EncodeColor(b.Scanline(y), x, b.format, c)
}

// Clear fills the entire buffer with a color.
func (b *ImageBuffer) Clear(c Color) {
	row := b.Scanline(0)
	for x := 0; x < b.width; x++ {
		EncodeColor(row, x, b.format, c)
	}
	stride := b.ByteStride()
	for y := 1; y < b.height; y++ {
		copy(b.data[y*stride:(y+1)*stride], row)
	}
}

// Clone returns an independent copy of the buffer and its byte store.
func (b *ImageBuffer) Clone() *ImageBuffer {
	data := make([]byte, len(b.data))
	copy(data, b.data)
	return &ImageBuffer{
		width:  b.width,
		height: b.height,
		format: b.format,
		data:   data,
	}
}

// At implements the image.Image interface.
func (b *ImageBuffer) At(x, y int) color.Color {
	return b.GetPixel(x, y)
}

// Bounds implements the image.Image interface.
func (b *ImageBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *ImageBuffer) ColorModel() color.Model {
	return color.NRGBAModel
}

// FromImage converts an already-decoded image into an image buffer of
// the given format. Decoding files is the job of an external codec; the
// core only consumes pixels.
func FromImage(img image.Image, format PixelFormat) (*ImageBuffer, error) {
	bounds := img.Bounds()
	buf, err := NewImageBuffer(bounds.Dx(), bounds.Dy(), format)
	if err != nil {
		return nil, err
	}
	for y := 0; y < buf.height; y++ {
		row := buf.Scanline(y)
		for x := 0; x < buf.width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			EncodeColor(row, x, format, FromColor(c))
		}
	}
	return buf, nil
}

// Resize returns a new buffer scaled to the given dimensions with the
// bilinear kernel.
func (b *ImageBuffer) Resize(width, height int) (*ImageBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), b, b.Bounds(), draw.Src, nil)
	return FromImage(dst, b.format)
}
