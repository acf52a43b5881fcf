package colorspace

import "math"

// SRGBToLinear converts an sRGB component to linear light (EOTF).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
// Input and output are in range [0,1].
func SRGBToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear-light component to sRGB (OETF).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
// Input and output are in range [0,1].
func LinearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// SRGBToLinear255 converts an sRGB component in [0,255] to linear light
// in [0,1]. This is the form the engine uses on channel values taken
// straight from a raster.
func SRGBToLinear255(s float64) float64 {
	return SRGBToLinear(s / 255.0)
}

// LinearToSRGB255 converts a linear-light component in [0,1] back to an
// sRGB component in [0,255]. The result is not clamped; callers that
// store into a raster clamp on write.
func LinearToSRGB255(l float64) float64 {
	return LinearToSRGB(l) * 255.0
}
