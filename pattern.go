package vg

// Pattern represents a fill or stroke pattern.
type Pattern interface {
	// ColorAt returns the color at the given point.
	ColorAt(x, y float64) Color
}

// SolidPattern represents a solid color pattern.
type SolidPattern struct {
	Color Color
}

// NewSolidPattern creates a solid color pattern.
func NewSolidPattern(color Color) *SolidPattern {
	return &SolidPattern{Color: color}
}

// ColorAt implements Pattern.
func (p *SolidPattern) ColorAt(x, y float64) Color {
	return p.Color
}

// ImagePattern fills with pixels sampled from an image buffer.
// The pattern borrows the buffer; the caller manages its lifetime.
type ImagePattern struct {
	img     *ImageBuffer
	sampler Sampler
}

// NewImagePattern creates a pattern from an image buffer and a sampler
// configuration. Returns nil if img is nil; the nil pattern is still
// safe to sample and yields Transparent.
func NewImagePattern(img *ImageBuffer, sampler Sampler) *ImagePattern {
	if img == nil {
		return nil
	}
	return &ImagePattern{img: img, sampler: sampler}
}

// ColorAt implements Pattern. Device coordinates are normalized over
// the image extent before sampling, so the sampler's border mode
// decides the tiling behavior. A nil or imageless pattern resolves to
// Transparent, so a typed nil stored in the Pattern interface stays
// harmless.
func (p *ImagePattern) ColorAt(x, y float64) Color {
	if p == nil || p.img == nil {
		return Transparent
	}
	uv := Vec{
		X: x / float64(p.img.Width()),
		Y: y / float64(p.img.Height()),
	}
	return p.sampler.Sample(uv, p.img)
}
