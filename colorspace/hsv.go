package colorspace

import "math"

// RGBToHSV converts 8-bit RGB to HSV.
// Hue is in degrees [0,360), saturation and value are in [0,1].
// Achromatic inputs (max == min) report hue 0; black reports saturation 0.
func RGBToHSV(r, g, b uint8) (h, s, v float64) {
	rf := float64(r) / 255.0
	gf := float64(g) / 255.0
	bf := float64(b) / 255.0

	max := max3(rf, gf, bf)
	min := min3(rf, gf, bf)
	delta := max - min

	v = max
	if max > 0 {
		s = delta / max
	}
	h = hueSextant(rf, gf, bf, max, delta)
	return h, s, v
}

// RGBToHSL converts 8-bit RGB to HSL.
// Hue is in degrees [0,360), saturation and lightness are in [0,1].
func RGBToHSL(r, g, b uint8) (h, s, l float64) {
	rf := float64(r) / 255.0
	gf := float64(g) / 255.0
	bf := float64(b) / 255.0

	max := max3(rf, gf, bf)
	min := min3(rf, gf, bf)
	delta := max - min

	l = (max + min) / 2
	if delta > 0 {
		d := 1 - abs(2*l-1)
		if d > 0 {
			s = delta / d
		}
	}
	h = hueSextant(rf, gf, bf, max, delta)
	return h, s, l
}

// hueSextant computes the shared hue angle of the hexcone models.
// Inputs are normalized channels plus their max and spread.
func hueSextant(r, g, b, max, delta float64) float64 {
	if delta == 0 {
		return 0
	}
	var h float64
	switch max {
	case r:
		h = (g - b) / delta
		if h < 0 {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	return h * 60
}

// HSLToRGB converts HSL back to 8-bit RGB. Hue wraps modulo 360;
// saturation and lightness are expected in [0,1]. The engine itself
// never calls this during a pass; it exists to synthesize test imagery
// such as hue sweeps.
func HSLToRGB(h, s, l float64) (r, g, b uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	c := (1 - abs(2*l-1)) * s
	x := c * (1 - abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var rf, gf, bf float64
	switch {
	case h < 60:
		rf, gf, bf = c, x, 0
	case h < 120:
		rf, gf, bf = x, c, 0
	case h < 180:
		rf, gf, bf = 0, c, x
	case h < 240:
		rf, gf, bf = 0, x, c
	case h < 300:
		rf, gf, bf = x, 0, c
	default:
		rf, gf, bf = c, 0, x
	}

	r = uint8((rf+m)*255 + 0.5)
	g = uint8((gf+m)*255 + 0.5)
	b = uint8((bf+m)*255 + 0.5)
	return r, g, b
}

func max3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
