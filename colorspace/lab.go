package colorspace

import "math"

// D65 reference white in CIE XYZ, normalized to Y=1.
const (
	whiteX = 0.95047
	whiteY = 1.00000
	whiteZ = 1.08883
)

// labEpsilon is (6/29)^3, the threshold between the cube-root and
// linear segments of the L*a*b* companding function.
const labEpsilon = 0.008856451679035631

// RGBToXYZ converts 8-bit sRGB to CIE XYZ (D65, Y in [0,1]).
// Channels are linearized first; the matrix is the IEC 61966-2-1 sRGB
// primaries matrix. Components are clamped to be non-negative.
func RGBToXYZ(r, g, b uint8) (x, y, z float64) {
	rl := SRGBToLinear(float64(r) / 255.0)
	gl := SRGBToLinear(float64(g) / 255.0)
	bl := SRGBToLinear(float64(b) / 255.0)

	x = 0.4124564*rl + 0.3575761*gl + 0.1804375*bl
	y = 0.2126729*rl + 0.7151522*gl + 0.0721750*bl
	z = 0.0193339*rl + 0.1191920*gl + 0.9503041*bl

	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if z < 0 {
		z = 0
	}
	return x, y, z
}

// XYZToLab converts CIE XYZ (D65, Y in [0,1]) to CIE L*a*b*.
// L* is in [0,100]; a* and b* are unbounded in practice roughly [-128,128].
func XYZToLab(x, y, z float64) (l, a, b float64) {
	fx := labF(x / whiteX)
	fy := labF(y / whiteY)
	fz := labF(z / whiteZ)

	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return l, a, b
}

// RGBToLab converts 8-bit sRGB directly to CIE L*a*b* (D65).
func RGBToLab(r, g, bl uint8) (l, a, b float64) {
	x, y, z := RGBToXYZ(r, g, bl)
	return XYZToLab(x, y, z)
}

// labF is the L*a*b* companding function: cube root above the epsilon
// threshold, a matched linear segment below it.
func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return 7.787037037037035*t + 16.0/116.0
}
