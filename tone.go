package grade

import (
	"math"

	"github.com/gradefx/grade/colorspace"
)

// Rec. 709 luminance weights. Used only for the luminance target of
// linear-light saturation, which operates on linearized channels; all
// gamma-space luma estimates use the Rec. 601 table in pixel.go.
const (
	lum709R = 0.2126
	lum709G = 0.7152
	lum709B = 0.0722
)

// LinearSaturation scales a pixel's colorfulness in linear light:
// channels are decoded to linear, interpolated toward the Rec. 709
// relative luminance by value, and re-encoded to gamma space.
// value 0 produces luminance-preserving grayscale, 1 leaves the pixel
// unchanged, 2 doubles the chroma distance. Inputs are expected in
// [0, 255]; the result is not clamped.
func LinearSaturation(p Pixel, value float64) Pixel {
	rl := colorspace.SRGBToLinear255(p.R)
	gl := colorspace.SRGBToLinear255(p.G)
	bl := colorspace.SRGBToLinear255(p.B)

	y := lum709R*rl + lum709G*gl + lum709B*bl

	return Pixel{
		R: colorspace.LinearToSRGB255(y + (rl-y)*value),
		G: colorspace.LinearToSRGB255(y + (gl-y)*value),
		B: colorspace.LinearToSRGB255(y + (bl-y)*value),
	}
}

// Vibrance adjusts saturation adaptively: the less saturated a pixel
// already is, the more of the amount it receives, so skin tones and
// other near-saturated regions stay put while muted colors wake up.
// amount is in [-1, 1]; negative values mute. Each channel moves away
// from the pixel's luma by the factor 1 + amount*(1-s), where s is the
// existing saturation estimate. Exact grays are returned unchanged.
//
// When linearEstimate is true the saturation estimate is computed on
// linearized channels, matching pipelines that saturate in linear
// light. The output blend itself always happens in gamma space.
func Vibrance(p Pixel, amount float64, linearEstimate bool) Pixel {
	if p.R == p.G && p.G == p.B {
		// Grays have no chroma to scale, and skipping them keeps the
		// (max-min)/max estimate away from max == 0.
		return p
	}

	s := saturationEstimate(p, linearEstimate)
	f := 1 + amount*(1-s)
	luma := p.Luma()

	return Pixel{
		R: luma + (p.R-luma)*f,
		G: luma + (p.G-luma)*f,
		B: luma + (p.B-luma)*f,
	}
}

// saturationEstimate returns (max-min)/max over the channels,
// optionally on linearized values. Callers exclude exact grays, so
// max is never zero.
func saturationEstimate(p Pixel, linear bool) float64 {
	r, g, b := p.R, p.G, p.B
	if linear {
		r = colorspace.SRGBToLinear255(r)
		g = colorspace.SRGBToLinear255(g)
		b = colorspace.SRGBToLinear255(b)
	}

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	return (max - min) / max
}

// Whites shifts the bright end of the tonal range. The adjustment
// value (in [-100, 100]) is scaled per pixel by smoothstep(0.4, 0.8)
// of the normalized luma, so shadows are untouched, highlights move by
// the full amount, and the transition is smooth. The result is
// clamped to the working range.
func Whites(p Pixel, value float64) Pixel {
	w := smoothstep(0.4, 0.8, p.Luma()/255)
	adj := value * w
	return Pixel{R: p.R + adj, G: p.G + adj, B: p.B + adj}.Clamped()
}

// Blacks mirrors Whites at the dark end: the smoothstep edges are
// inverted (0.8, 0.2), so the darkest pixels move by the full amount
// and anything brighter than 80% luma stays put.
func Blacks(p Pixel, value float64) Pixel {
	w := smoothstep(0.8, 0.2, p.Luma()/255)
	adj := value * w
	return Pixel{R: p.R + adj, G: p.G + adj, B: p.B + adj}.Clamped()
}

// smoothstep is the cubic s-curve 3t²-2t³ with t clamped to [0, 1].
// Inverted edges (e0 > e1) produce the falling curve. Equal edges
// degenerate to a step at e0.
func smoothstep(e0, e1, x float64) float64 {
	if e0 == e1 {
		if x < e0 {
			return 0
		}
		return 1
	}
	t := (x - e0) / (e1 - e0)
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}
