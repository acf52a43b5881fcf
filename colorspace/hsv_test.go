package colorspace

import (
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestRGBToHSV(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		h, s, v float64
	}{
		{"black", 0, 0, 0, 0, 0, 0},
		{"white", 255, 255, 255, 0, 0, 1},
		{"mid gray", 128, 128, 128, 0, 0, 128.0 / 255.0},
		{"red", 255, 0, 0, 0, 1, 1},
		{"green", 0, 255, 0, 120, 1, 1},
		{"blue", 0, 0, 255, 240, 1, 1},
		{"yellow", 255, 255, 0, 60, 1, 1},
		{"cyan", 0, 255, 255, 180, 1, 1},
		{"magenta", 255, 0, 255, 300, 1, 1},
		{"orange", 255, 128, 0, 30.117647058823529, 1, 1},
		{"dark red", 128, 0, 0, 0, 1, 128.0 / 255.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, v := RGBToHSV(tt.r, tt.g, tt.b)
			checkClose(t, "h", h, tt.h, 1e-9)
			checkClose(t, "s", s, tt.s, 1e-9)
			checkClose(t, "v", v, tt.v, 1e-9)
		})
	}
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		h, s, l float64
	}{
		{"black", 0, 0, 0, 0, 0, 0},
		{"white", 255, 255, 255, 0, 0, 1},
		{"red", 255, 0, 0, 0, 1, 0.5},
		{"green", 0, 255, 0, 120, 1, 0.5},
		{"blue", 0, 0, 255, 240, 1, 0.5},
		{"light blue", 128, 128, 255, 240, 1, 383.0 / 510.0},
		{"dark cyan", 0, 128, 128, 180, 1, 64.0 / 255.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, l := RGBToHSL(tt.r, tt.g, tt.b)
			checkClose(t, "h", h, tt.h, 1e-9)
			checkClose(t, "s", s, tt.s, 1e-9)
			checkClose(t, "l", l, tt.l, 1e-9)
		})
	}
}

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		r, g, b uint8
	}{
		{"red", 0, 1, 0.5, 255, 0, 0},
		{"green", 120, 1, 0.5, 0, 255, 0},
		{"blue", 240, 1, 0.5, 0, 0, 255},
		{"white", 0, 0, 1, 255, 255, 255},
		{"black", 0, 0, 0, 0, 0, 0},
		{"mid gray", 180, 0, 0.5, 128, 128, 128},
		{"hue wraps", 480, 1, 0.5, 0, 255, 0},
		{"negative hue", -120, 1, 0.5, 0, 0, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := HSLToRGB(tt.h, tt.s, tt.l)
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("HSLToRGB(%v,%v,%v) = (%d,%d,%d), want (%d,%d,%d)",
					tt.h, tt.s, tt.l, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

// Converting HSL to RGB and back must land on the same hue and
// lightness up to 8-bit quantization.
func TestHSLRoundTrip(t *testing.T) {
	for h := 0.0; h < 360; h += 15 {
		r, g, b := HSLToRGB(h, 0.8, 0.5)
		gh, gs, gl := RGBToHSL(r, g, b)
		if absDiff(gh, h) > 1.5 || absDiff(gs, 0.8) > 0.02 || absDiff(gl, 0.5) > 0.02 {
			t.Fatalf("round trip of hue %v drifted: got (%v,%v,%v)", h, gh, gs, gl)
		}
	}
}

// Sweep a grid of colors and confirm the hexcone conversions agree with
// go-colorful, which implements the same reference formulas.
func TestHexconeAgainstColorful(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				c := colorful.Color{
					R: float64(r) / 255.0,
					G: float64(g) / 255.0,
					B: float64(b) / 255.0,
				}

				wh, ws, wv := c.Hsv()
				h, s, v := RGBToHSV(uint8(r), uint8(g), uint8(b))
				if absDiff(h, wh) > 1e-6 || absDiff(s, ws) > 1e-6 || absDiff(v, wv) > 1e-6 {
					t.Fatalf("HSV(%d,%d,%d) = (%v,%v,%v), colorful says (%v,%v,%v)",
						r, g, b, h, s, v, wh, ws, wv)
				}

				wh, ws, wl := c.Hsl()
				h, s, l := RGBToHSL(uint8(r), uint8(g), uint8(b))
				if absDiff(h, wh) > 1e-6 || absDiff(s, ws) > 1e-6 || absDiff(l, wl) > 1e-6 {
					t.Fatalf("HSL(%d,%d,%d) = (%v,%v,%v), colorful says (%v,%v,%v)",
						r, g, b, h, s, l, wh, ws, wl)
				}
			}
		}
	}
}
