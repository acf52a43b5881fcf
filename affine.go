package grade

import "math"

// Affine is a per-pixel color transformation: a 3x3 matrix in
// row-major order plus an additive offset per channel.
//
//	[R']   [m0 m1 m2]   [R]   [o0]
//	[G'] = [m3 m4 m5] * [G] + [o1]
//	[B']   [m6 m7 m8]   [B]   [o2]
//
// Channel values are in the [0, 255] working domain during the
// transform and clamped on store. Alpha is never part of an Affine.
type Affine struct {
	M [9]float64
	O [3]float64
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{
		M: [9]float64{
			1, 0, 0,
			0, 1, 0,
			0, 0, 1,
		},
	}
}

// Brightness creates a transform that shifts every channel by value.
// value: -100 = much darker, 0 = unchanged, +100 = much brighter.
func Brightness(value float64) Affine {
	a := Identity()
	a.O = [3]float64{value, value, value}
	return a
}

// Contrast creates a transform that scales every channel around
// mid-gray 128.
// value: 0 = flat gray, 1 = unchanged, 2 = high contrast.
func Contrast(value float64) Affine {
	offset := 128 * (1 - value)
	return Affine{
		M: [9]float64{
			value, 0, 0,
			0, value, 0,
			0, 0, value,
		},
		O: [3]float64{offset, offset, offset},
	}
}

// Saturation creates a gamma-space saturation transform that blends
// each channel between its luma (0) and itself (1).
// value: 0 = grayscale, 1 = unchanged, 2 = oversaturated.
func Saturation(value float64) Affine {
	inv := 1 - value
	return Affine{
		M: [9]float64{
			LumaR*inv + value, LumaG * inv, LumaB * inv,
			LumaR * inv, LumaG*inv + value, LumaB * inv,
			LumaR * inv, LumaG * inv, LumaB*inv + value,
		},
	}
}

// HueRotate creates a rotation of the color cube about its gray axis
// (R=G=B) by the given angle in degrees. Grays are fixed points of the
// rotation. The matrix is circulant: each row is the previous row
// shifted right by one.
func HueRotate(degrees float64) Affine {
	theta := degrees * math.Pi / 180
	cos := math.Cos(theta)
	sin := math.Sin(theta)

	diag := cos + (1-cos)/3
	off1 := (1-cos)/3 - sin/math.Sqrt(3)
	off2 := (1-cos)/3 + sin/math.Sqrt(3)

	return Affine{
		M: [9]float64{
			diag, off1, off2,
			off2, diag, off1,
			off1, off2, diag,
		},
	}
}

// Apply transforms a single pixel. The result is not clamped; callers
// that store into a raster clamp on write.
func (a Affine) Apply(p Pixel) Pixel {
	return Pixel{
		R: a.M[0]*p.R + a.M[1]*p.G + a.M[2]*p.B + a.O[0],
		G: a.M[3]*p.R + a.M[4]*p.G + a.M[5]*p.B + a.O[1],
		B: a.M[6]*p.R + a.M[7]*p.G + a.M[8]*p.B + a.O[2],
	}
}

// Multiply returns the transform equivalent to applying other first,
// then a. The offset of other is carried through a's matrix before
// a's own offset is added.
func (a Affine) Multiply(other Affine) Affine {
	var out Affine
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sum := 0.0
			for k := 0; k < 3; k++ {
				sum += a.M[row*3+k] * other.M[k*3+col]
			}
			out.M[row*3+col] = sum
		}
		out.O[row] = a.M[row*3+0]*other.O[0] +
			a.M[row*3+1]*other.O[1] +
			a.M[row*3+2]*other.O[2] +
			a.O[row]
	}
	return out
}

// IsIdentity returns true if the transform leaves every pixel
// unchanged.
func (a Affine) IsIdentity() bool {
	return a == Identity()
}

// ApplyRaster applies the transform to every pixel of the raster in
// place. Fully transparent pixels are skipped, matching the per-pixel
// tone passes. Alpha is preserved.
func (a Affine) ApplyRaster(r *Raster) {
	if r == nil {
		return
	}
	pix := r.Data()
	for i := 0; i < len(pix); i += 4 {
		if pix[i+3] == 0 {
			continue
		}
		red := float64(pix[i+0])
		green := float64(pix[i+1])
		blue := float64(pix[i+2])

		pix[i+0] = clampUint8(a.M[0]*red + a.M[1]*green + a.M[2]*blue + a.O[0])
		pix[i+1] = clampUint8(a.M[3]*red + a.M[4]*green + a.M[5]*blue + a.O[1])
		pix[i+2] = clampUint8(a.M[6]*red + a.M[7]*green + a.M[8]*blue + a.O[2])
	}
}
