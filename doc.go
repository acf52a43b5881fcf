// Package grade provides a deterministic color grading pipeline for Go.
//
// # Overview
//
// grade applies ordered stacks of pixel transformations (brightness,
// contrast, saturation, hue rotation, tonal shifts, blurs, sharpening,
// edge detection, denoising, custom kernels) to RGBA rasters. The same
// pipeline over the same raster always produces the same bytes, which
// makes results cacheable and diffable.
//
// # Quick Start
//
//	import "github.com/gradefx/grade"
//
//	// Load an image into a working raster
//	r := grade.FromImage(img)
//
//	// Build a pipeline; filters run in the order they are added
//	p := grade.NewPipeline()
//	b, _ := p.Add(grade.KindBrightness)
//	_ = p.UpdateParams(b.ID, grade.BrightnessParams{Value: 20})
//	_, _ = p.Add(grade.KindBlur)
//
//	// Run it
//	if err := grade.Apply(r, p); err != nil {
//		log.Fatal(err)
//	}
//	_ = r.SavePNG("graded.png")
//
// # Execution Model
//
// Consecutive matrix-representable filters are composed into a single
// affine transform and applied in one pass, so chains of color
// adjustments pay one quantization, not one per filter. Per-pixel and
// convolution filters break the batch. Apply is synchronous and
// stateless: nothing is retained between calls.
//
// # Diagnostics
//
// TracePixel replays a pipeline at a single coordinate and reports
// every step's input, output, and convolution window, using the same
// executor as Apply. The colorspace sub-package projects rasters into
// HSV, HSL, Lab, or YCbCr for external visualization.
//
// # Working Domain
//
// Channels are 8-bit at rest and float64 in flight. Transforms may
// produce out-of-range intermediates; values clamp to [0, 255] and
// round half-up only when stored back into a raster. Alpha is never
// transformed: fully transparent pixels are skipped by color passes
// and copied through convolution.
package grade

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
