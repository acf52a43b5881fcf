package grade

// Canonical gamma-space luma weights (Rec. 601). Every gamma-space
// luma estimate in the engine uses this single table; the Rec. 709
// weights appear only in linear-light saturation, which operates on
// linearized channels.
const (
	LumaR = 0.299
	LumaG = 0.587
	LumaB = 0.114
)

// Pixel is one pixel's RGB triple in the continuous working domain.
// Channels are nominally in [0, 255] but may transiently exceed that
// range between transform steps; values are clamped when stored back
// into a raster. Alpha is carried by the raster, not the pixel.
type Pixel struct {
	R, G, B float64
}

// Luma returns the gamma-space luma of the pixel using the canonical
// Rec. 601 weights.
func (p Pixel) Luma() float64 {
	return LumaR*p.R + LumaG*p.G + LumaB*p.B
}

// Clamped returns the pixel with each channel clamped to [0, 255].
func (p Pixel) Clamped() Pixel {
	return Pixel{
		R: clampChannel(p.R),
		G: clampChannel(p.G),
		B: clampChannel(p.B),
	}
}

// clampChannel clamps a channel value to [0, 255].
func clampChannel(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// clampUint8 clamps a float64 to [0, 255] and converts to uint8.
func clampUint8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5) // Round to nearest
}
