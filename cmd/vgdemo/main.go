// Command vgdemo exercises the vg compositing core: it fills an image
// buffer with an HSV gradient, optionally tiles a decoded input image
// over it through a repeat-mode sampler, composites the two layers with
// a Porter-Duff operator and a blend mode, and writes the result as PNG.
package main

import (
	"flag"
	"image/png"
	"log"
	"os"

	"github.com/disintegration/imaging"

	"github.com/gogfx/vg"
)

func main() {
	var (
		width  = flag.Int("width", 512, "image width")
		height = flag.Int("height", 512, "image height")
		input  = flag.String("input", "", "optional input image to tile over the gradient")
		output = flag.String("output", "demo.png", "output file")
	)
	flag.Parse()

	dst, err := vg.NewImageBuffer(*width, *height, vg.PixelRGBA8)
	if err != nil {
		log.Fatalf("Failed to allocate buffer: %v", err)
	}

	drawGradient(dst)

	if *input != "" {
		// Decoding is the codec's job; the core only consumes pixels.
		img, err := imaging.Open(*input)
		if err != nil {
			log.Fatalf("Failed to open %s: %v", *input, err)
		}
		src, err := vg.FromImage(img, vg.PixelRGBA8)
		if err != nil {
			log.Fatalf("Failed to convert input: %v", err)
		}
		tileOver(dst, src)
	}

	drawPathOutline(dst)

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	defer f.Close()
	if err := png.Encode(f, dst); err != nil {
		log.Fatalf("Failed to encode: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// drawGradient fills the buffer with a hue sweep, darkening toward the
// bottom.
func drawGradient(dst *vg.ImageBuffer) {
	w, h := dst.Width(), dst.Height()
	for y := 0; y < h; y++ {
		v := 1 - 0.5*float64(y)/float64(h)
		for x := 0; x < w; x++ {
			hue := float64(x) / float64(w)
			dst.SetPixel(x, y, vg.HSV(hue, 0.7, v, 1))
		}
	}
}

// tileOver samples src with a repeating bilinear sampler at twice the
// destination frequency and composites it over the gradient with the
// screen blend mode.
func tileOver(dst, src *vg.ImageBuffer) {
	sampler := vg.Sampler{Border: vg.BorderRepeat, Filter: vg.FilterLinear}
	w, h := dst.Width(), dst.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			uv := vg.V(2*float64(x)/float64(w), 2*float64(y)/float64(h))
			s := sampler.Sample(uv, src)
			s.A *= 0.6
			d := dst.GetPixel(x, y)
			blended := vg.Blend(d, s, vg.BlendScreen)
			dst.SetPixel(x, y, vg.Composite(d, blended, vg.CompositeSrcOver))
		}
	}
}

// drawPathOutline builds a flattened curve path, dashes it, and marks
// the dashed segment endpoints with a gradient plus the bounding box
// corners.
func drawPathOutline(dst *vg.ImageBuffer) {
	w := float64(dst.Width())
	h := float64(dst.Height())

	path := vg.NewPath(vg.WithSubdivision(48))
	path.MoveTo(vg.V(0.1*w, 0.8*h))
	path.CubicTo(vg.V(0.3*w, 0.2*h), vg.V(0.7*w, 0.2*h), vg.V(0.9*w, 0.8*h))
	path.QuadTo(vg.V(0.5*w, 0.95*h), vg.V(0.1*w, 0.8*h))
	path.ClosePath()

	dashed := vg.NewDash(0.04*w, 0.02*w).ApplyTo(path)

	ink := vg.NewLinearGradient(0, 0, w, 0).
		AddStop(0, vg.White).
		AddStop(1, vg.Yellow)

	for _, sub := range dashed.Subpaths() {
		for _, seg := range sub.Segments() {
			plot(dst, seg.P1, ink.ColorAt(seg.P1.X, seg.P1.Y))
			plot(dst, seg.P2, ink.ColorAt(seg.P2.X, seg.P2.Y))
		}
	}

	b := path.Bounds()
	if b.IsValid() {
		plot(dst, vg.V(b.XMin, b.YMin), vg.Red)
		plot(dst, vg.V(b.XMax, b.YMin), vg.Red)
		plot(dst, vg.V(b.XMin, b.YMax), vg.Red)
		plot(dst, vg.V(b.XMax, b.YMax), vg.Red)
	}
}

// plot stamps a 3x3 dot at a point.
func plot(dst *vg.ImageBuffer, p vg.Vec, c vg.Color) {
	x, y := int(p.X), int(p.Y)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			dst.SetPixel(x+dx, y+dy, c)
		}
	}
}
