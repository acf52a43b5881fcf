package grade

import "sort"

// MeanDenoise blurs src with a size x size box kernel and blends the
// result back into the original:
//
//	out = original*(1-strength) + blurred*strength
//
// strength is clamped to [0, 1]; 0 returns a copy of the source, 1 the
// full box blur. Alpha is copied from the source.
func MeanDenoise(src *Raster, size int, strength float64, padding Padding) *Raster {
	return meanDenoise(src, size, strength, padding, nil, -1, -1)
}

// meanDenoise is the instrumentable form of MeanDenoise. The recorded
// window is the box-blur window; the blend itself has no neighborhood.
func meanDenoise(src *Raster, size int, strength float64, padding Padding, rec *WindowTrace, tx, ty int) *Raster {
	if strength < 0 {
		strength = 0
	} else if strength > 1 {
		strength = 1
	}

	opts := ConvolveOptions{Padding: padding, PerChannel: true, Stride: 1, Dilation: 1}
	out := convolveRaster(src, BoxKernel(size), opts, rec, tx, ty)

	srcPix := src.Data()
	pix := out.Data()
	inv := 1 - strength
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = clampUint8(float64(srcPix[i+0])*inv + float64(pix[i+0])*strength)
		pix[i+1] = clampUint8(float64(srcPix[i+1])*inv + float64(pix[i+1])*strength)
		pix[i+2] = clampUint8(float64(srcPix[i+2])*inv + float64(pix[i+2])*strength)
	}
	return out
}

// MedianDenoise replaces every pixel with the per-channel median of
// its size x size neighborhood. A rank filter rejects single extreme
// outliers completely instead of smearing them, which is why there is
// no blend strength: the median either sees through the noise or it
// does not. Channels are ranked independently, so the output triple
// may not equal any single input sample. Alpha is copied from the
// source.
func MedianDenoise(src *Raster, size int, padding Padding) *Raster {
	return medianDenoise(src, size, padding, nil, -1, -1)
}

// medianDenoise is the instrumentable form of MedianDenoise. Recorded
// cells carry samples only; a rank filter has no weights.
func medianDenoise(src *Raster, size int, padding Padding, rec *WindowTrace, tx, ty int) *Raster {
	w, h := src.Width(), src.Height()
	dst := NewRaster(w, h)
	srcPix := src.Data()
	dstPix := dst.Data()
	half := size / 2

	rs := make([]float64, 0, size*size)
	gs := make([]float64, 0, size*size)
	bs := make([]float64, 0, size*size)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			rs, gs, bs = rs[:0], gs[:0], bs[:0]
			recHere := rec != nil && x == tx && y == ty

			for ky := 0; ky < size; ky++ {
				sy, okY := padIndex(y+ky-half, h, padding)
				for kx := 0; kx < size; kx++ {
					sx, okX := padIndex(x+kx-half, w, padding)
					if !okX || !okY {
						if recHere {
							rec.Cells = append(rec.Cells, KernelCell{KX: kx, KY: ky, OutOfRange: true})
						}
						continue
					}
					j := (sy*w + sx) * 4
					s := Pixel{
						R: float64(srcPix[j+0]),
						G: float64(srcPix[j+1]),
						B: float64(srcPix[j+2]),
					}
					rs = append(rs, s.R)
					gs = append(gs, s.G)
					bs = append(bs, s.B)
					if recHere {
						rec.Cells = append(rec.Cells, KernelCell{KX: kx, KY: ky, X: sx, Y: sy, Sample: s})
					}
				}
			}

			i := (y*w + x) * 4
			if len(rs) > 0 {
				sort.Float64s(rs)
				sort.Float64s(gs)
				sort.Float64s(bs)
				// Lower middle when the in-range sample count is even.
				m := len(rs) / 2
				dstPix[i+0] = clampUint8(rs[m])
				dstPix[i+1] = clampUint8(gs[m])
				dstPix[i+2] = clampUint8(bs[m])
			}
			dstPix[i+3] = srcPix[i+3]
		}
	}
	return dst
}
