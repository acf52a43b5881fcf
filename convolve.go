package grade

import "math"

// Padding selects how convolution resolves sample coordinates that
// fall outside the raster.
type Padding int

const (
	// PadZero treats out-of-range samples as missing: the cell
	// contributes nothing to the accumulation. Kernels that sum to 1
	// therefore darken toward the borders.
	PadZero Padding = iota
	// PadEdge clamps sample coordinates to the nearest border pixel.
	PadEdge
	// PadReflect mirrors sample coordinates about the border without
	// repeating the border pixel.
	PadReflect
)

// String returns the padding mode name.
func (p Padding) String() string {
	switch p {
	case PadZero:
		return "zero"
	case PadEdge:
		return "edge"
	case PadReflect:
		return "reflect"
	default:
		return "unknown"
	}
}

// validPadding reports whether p is a supported padding mode.
func validPadding(p Padding) bool {
	return p == PadZero || p == PadEdge || p == PadReflect
}

// padIndex resolves a sample index against [0, limit). The second
// return is false when the index is out of range and the mode is
// PadZero: the sample is skipped, not read as black.
func padIndex(i, limit int, mode Padding) (int, bool) {
	if i >= 0 && i < limit {
		return i, true
	}
	switch mode {
	case PadEdge:
		if i < 0 {
			return 0, true
		}
		return limit - 1, true
	case PadReflect:
		if limit == 1 {
			return 0, true
		}
		// Mirror with period 2(limit-1), so index -1 maps to 1 and
		// index limit maps to limit-2. The border pixel is not doubled.
		period := 2 * (limit - 1)
		i %= period
		if i < 0 {
			i += period
		}
		if i >= limit {
			i = period - i
		}
		return i, true
	default:
		return 0, false
	}
}

// ConvolveOptions configures a convolution pass.
type ConvolveOptions struct {
	// Padding resolves samples outside the raster.
	Padding Padding

	// PerChannel applies the kernel to each RGB channel independently.
	// When false the kernel runs on the luma of each sample and the
	// result is broadcast to all three output channels.
	PerChannel bool

	// Stride convolves only every Stride-th pixel in each direction;
	// skipped pixels copy the RGB of the nearest lower stride-aligned
	// output. This is a cheap preview approximation, not downsampling:
	// the raster keeps its dimensions. Values below 1 mean 1.
	Stride int

	// Dilation spreads the kernel cells apart: cell (kx, ky) samples
	// at offset (kx-half)*Dilation from the target pixel, widening the
	// receptive field without growing the kernel. Values below 1
	// mean 1.
	Dilation int
}

// DefaultConvolveOptions returns the options used by pipeline passes
// that carry no explicit padding choice: edge clamping, per-channel
// accumulation, no stride or dilation.
func DefaultConvolveOptions() ConvolveOptions {
	return ConvolveOptions{Padding: PadEdge, PerChannel: true, Stride: 1, Dilation: 1}
}

// normalized lifts zero values of Stride and Dilation to 1.
func (o ConvolveOptions) normalized() ConvolveOptions {
	if o.Stride < 1 {
		o.Stride = 1
	}
	if o.Dilation < 1 {
		o.Dilation = 1
	}
	return o
}

// ConvolvePixel applies the kernel once at (x, y) and returns the raw
// accumulation, which may fall outside [0, 255]; callers that store
// into a raster clamp on write. Keeping the result unclamped lets
// gradient responses be combined before any precision is lost.
func ConvolvePixel(r *Raster, x, y int, k Kernel, opts ConvolveOptions) Pixel {
	return convolveAt(r, x, y, k, opts.normalized(), nil)
}

// convolveAt accumulates one kernel application at (x, y), optionally
// recording every cell into rec.
func convolveAt(r *Raster, x, y int, k Kernel, opts ConvolveOptions, rec *WindowTrace) Pixel {
	size := k.Size()
	half := size / 2
	var acc Pixel

	for ky := 0; ky < size; ky++ {
		sy, okY := padIndex(y+(ky-half)*opts.Dilation, r.Height(), opts.Padding)
		for kx := 0; kx < size; kx++ {
			sx, okX := padIndex(x+(kx-half)*opts.Dilation, r.Width(), opts.Padding)
			w := k.At(kx, ky)
			if !okX || !okY {
				if rec != nil {
					rec.Cells = append(rec.Cells, KernelCell{KX: kx, KY: ky, Weight: w, OutOfRange: true})
				}
				continue
			}

			s := r.GetPixel(sx, sy)
			if !opts.PerChannel {
				l := s.Luma()
				s = Pixel{R: l, G: l, B: l}
			}

			acc.R += w * s.R
			acc.G += w * s.G
			acc.B += w * s.B

			if rec != nil {
				rec.Cells = append(rec.Cells, KernelCell{
					KX: kx, KY: ky,
					X: sx, Y: sy,
					Weight:  w,
					Sample:  s,
					Product: Pixel{R: w * s.R, G: w * s.G, B: w * s.B},
				})
			}
		}
	}
	return acc
}

// ConvolveRaster applies the kernel at every pixel of src and returns
// a new raster of the same dimensions. Convolution reads whole
// neighborhoods, so it can never run in place; the pipeline swaps the
// result in wholesale. Alpha is copied from the source per pixel, and
// unlike the affine and per-pixel passes, fully transparent pixels are
// still convolved.
func ConvolveRaster(src *Raster, k Kernel, opts ConvolveOptions) *Raster {
	return convolveRaster(src, k, opts.normalized(), nil, -1, -1)
}

// convolveRaster is the bulk loop behind ConvolveRaster. When rec is
// non-nil the kernel window at (tx, ty) is recorded; a stride-skipped
// coordinate records the aligned window its value was copied from.
func convolveRaster(src *Raster, k Kernel, opts ConvolveOptions, rec *WindowTrace, tx, ty int) *Raster {
	opts = opts.normalized()
	w, h := src.Width(), src.Height()
	dst := NewRaster(w, h)
	srcPix := src.Data()
	dstPix := dst.Data()

	if rec != nil {
		tx -= tx % opts.Stride
		ty -= ty % opts.Stride
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			if x%opts.Stride == 0 && y%opts.Stride == 0 {
				var cellRec *WindowTrace
				if rec != nil && x == tx && y == ty {
					cellRec = rec
				}
				p := convolveAt(src, x, y, k, opts, cellRec)
				dstPix[i+0] = clampUint8(p.R)
				dstPix[i+1] = clampUint8(p.G)
				dstPix[i+2] = clampUint8(p.B)
			} else {
				j := ((y-y%opts.Stride)*w + (x - x%opts.Stride)) * 4
				dstPix[i+0] = dstPix[j+0]
				dstPix[i+1] = dstPix[j+1]
				dstPix[i+2] = dstPix[j+2]
			}
			dstPix[i+3] = srcPix[i+3]
		}
	}
	return dst
}

// EdgeCombine selects how the two gradient responses of an edge
// detection pass merge into the output.
type EdgeCombine int

const (
	// EdgeMagnitude outputs hypot(gx, gy) per channel.
	EdgeMagnitude EdgeCombine = iota
	// EdgeX outputs |gx| per channel, isolating vertical edges.
	EdgeX
	// EdgeY outputs |gy| per channel, isolating horizontal edges.
	EdgeY
)

// String returns the combine mode name.
func (c EdgeCombine) String() string {
	switch c {
	case EdgeMagnitude:
		return "magnitude"
	case EdgeX:
		return "x"
	case EdgeY:
		return "y"
	default:
		return "unknown"
	}
}

// validEdgeCombine reports whether c is a supported combine mode.
func validEdgeCombine(c EdgeCombine) bool {
	return c == EdgeMagnitude || c == EdgeX || c == EdgeY
}

// DetectEdges convolves src with the gradient pair (gx, gy) and merges
// the two raw responses per channel according to combine, clamping
// only the merged value. Alpha is copied from the source.
func DetectEdges(src *Raster, gx, gy Kernel, combine EdgeCombine, padding Padding) *Raster {
	return detectEdges(src, gx, gy, combine, padding, nil, nil, -1, -1)
}

// detectEdges is the bulk loop behind DetectEdges. When recX and recY
// are non-nil the two kernel windows at (tx, ty) are recorded.
func detectEdges(src *Raster, gx, gy Kernel, combine EdgeCombine, padding Padding, recX, recY *WindowTrace, tx, ty int) *Raster {
	w, h := src.Width(), src.Height()
	dst := NewRaster(w, h)
	srcPix := src.Data()
	dstPix := dst.Data()
	opts := ConvolveOptions{Padding: padding, PerChannel: true, Stride: 1, Dilation: 1}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var rx, ry *WindowTrace
			if recX != nil && x == tx && y == ty {
				rx, ry = recX, recY
			}
			px := convolveAt(src, x, y, gx, opts, rx)
			py := convolveAt(src, x, y, gy, opts, ry)

			var out Pixel
			switch combine {
			case EdgeX:
				out = Pixel{R: math.Abs(px.R), G: math.Abs(px.G), B: math.Abs(px.B)}
			case EdgeY:
				out = Pixel{R: math.Abs(py.R), G: math.Abs(py.G), B: math.Abs(py.B)}
			default:
				out = Pixel{
					R: math.Hypot(px.R, py.R),
					G: math.Hypot(px.G, py.G),
					B: math.Hypot(px.B, py.B),
				}
			}

			i := (y*w + x) * 4
			dstPix[i+0] = clampUint8(out.R)
			dstPix[i+1] = clampUint8(out.G)
			dstPix[i+2] = clampUint8(out.B)
			dstPix[i+3] = srcPix[i+3]
		}
	}
	return dst
}
