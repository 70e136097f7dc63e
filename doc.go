// Package vg is the math and compositing core for a 2D vector-graphics
// canvas: color representation and blending, planar geometry, path
// construction with curve flattening, format-aware pixel storage, and
// filtered image sampling.
//
// # Overview
//
// vg is the foundation beneath a drawing surface whose actual
// stroke/fill rasterization lives elsewhere. Rasterizer backends consume
// the [Path] segment geometry and the live [CanvasState], and read/write
// pixels through [ImageBuffer] using [Composite] and [Blend].
//
//	var p vg.Path
//	p.MoveTo(vg.V(10, 10))
//	p.QuadTo(vg.V(50, 0), vg.V(90, 10))
//	p.ClosePath()
//
//	out := vg.Composite(dst, src, vg.CompositeSrcOver)
//
// # Error Handling
//
// All numeric operations follow a fail-soft contract: out-of-range pixel
// access, empty-subpath queries, and non-overlapping rectangle
// intersections return defined sentinel values instead of panicking.
// Degenerate divisions propagate IEEE infinities and NaNs. Hard errors
// are reserved for constructor contract violations such as a wrong-sized
// byte store.
//
// # Concurrency
//
// No component is safe for concurrent mutation; shard work across
// independent ImageBuffer and Path instances instead of sharing them.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Sampling coordinates (u,v) are normalized to [0,1] over the image.
package vg

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
