package colorspace

import "fmt"

// Space identifies a target color space for bulk conversion.
type Space uint8

const (
	// SpaceRGB passes channels through unchanged, scaled to [0,1].
	SpaceRGB Space = iota
	// SpaceHSV is the hue/saturation/value hexcone model.
	SpaceHSV
	// SpaceHSL is the hue/saturation/lightness hexcone model.
	SpaceHSL
	// SpaceLab is CIE L*a*b* under D65.
	SpaceLab
	// SpaceYCbCr is full-range BT.601 luma/chroma.
	SpaceYCbCr
)

// String returns the conventional name of the space.
func (s Space) String() string {
	switch s {
	case SpaceRGB:
		return "RGB"
	case SpaceHSV:
		return "HSV"
	case SpaceHSL:
		return "HSL"
	case SpaceLab:
		return "Lab"
	case SpaceYCbCr:
		return "YCbCr"
	default:
		return fmt.Sprintf("Space(%d)", uint8(s))
	}
}

// Point is one pixel expressed in a target space. The axis meaning
// depends on the space: RGB maps channels to X/Y/Z directly, HSV and
// HSL map hue/saturation to X/Y and value or lightness to Z, Lab maps
// a*/b* to X/Y and L* to Z, YCbCr maps Cb/Cr to X/Y and Y to Z.
type Point struct {
	X, Y, Z float64
}

// Convert expresses a single RGB pixel in the given space.
func Convert(r, g, b uint8, space Space) Point {
	switch space {
	case SpaceHSV:
		h, s, v := RGBToHSV(r, g, b)
		return Point{X: h, Y: s, Z: v}
	case SpaceHSL:
		h, s, l := RGBToHSL(r, g, b)
		return Point{X: h, Y: s, Z: l}
	case SpaceLab:
		l, a, bb := RGBToLab(r, g, b)
		return Point{X: a, Y: bb, Z: l}
	case SpaceYCbCr:
		y, cb, cr := RGBToYCbCr(r, g, b)
		return Point{X: cb, Y: cr, Z: y}
	default:
		return Point{
			X: float64(r) / 255.0,
			Y: float64(g) / 255.0,
			Z: float64(b) / 255.0,
		}
	}
}

// ConvertRaster expresses every pixel of a raw RGBA byte buffer in the
// given space, producing one point per pixel in row-major order. The
// buffer length must be a multiple of 4; alpha is ignored. This is the
// bulk feed consumed by external scatter visualizations, so it favors a
// single flat allocation over streaming.
func ConvertRaster(pix []uint8, space Space) []Point {
	n := len(pix) / 4
	points := make([]Point, n)
	for i := 0; i < n; i++ {
		o := i * 4
		points[i] = Convert(pix[o], pix[o+1], pix[o+2], space)
	}
	return points
}
