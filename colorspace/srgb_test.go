package colorspace

import "testing"

func TestSRGBToLinear(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"linear segment", 0.02, 0.02 / 12.92},
		{"threshold", 0.04045, 0.04045 / 12.92},
		{"mid gray", 0.5, 0.21404114048223255},
		{"bright", 0.9, 0.7874122893956174},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SRGBToLinear(tt.in)
			checkClose(t, "SRGBToLinear", got, tt.want, 1e-9)
		})
	}
}

func TestLinearToSRGB(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"linear segment", 0.002, 0.002 * 12.92},
		{"threshold", 0.0031308, 0.0031308 * 12.92},
		{"mid linear", 0.214041, 0.49999984822299864},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LinearToSRGB(tt.in)
			checkClose(t, "LinearToSRGB", got, tt.want, 1e-6)
		})
	}
}

// The transfer function must be continuous where the linear segment
// meets the power segment, in both directions.
func TestSRGBTransferContinuity(t *testing.T) {
	const eps = 1e-8

	below := SRGBToLinear(0.04045 - eps)
	above := SRGBToLinear(0.04045 + eps)
	if absDiff(below, above) > 1e-6 {
		t.Errorf("SRGBToLinear discontinuous at threshold: %v vs %v", below, above)
	}

	below = LinearToSRGB(0.0031308 - eps)
	above = LinearToSRGB(0.0031308 + eps)
	if absDiff(below, above) > 1e-6 {
		t.Errorf("LinearToSRGB discontinuous at threshold: %v vs %v", below, above)
	}
}

// Round-tripping every 8-bit code value through linear space must
// reproduce the input to well under half a code value.
func TestSRGBRoundTrip(t *testing.T) {
	for c := 0; c <= 255; c++ {
		in := float64(c)
		got := LinearToSRGB255(SRGBToLinear255(in))
		if absDiff(got, in) > 1e-3 {
			t.Fatalf("round trip of %d drifted: got %v", c, got)
		}
	}
}

func TestSRGBToLinearMonotonic(t *testing.T) {
	prev := -1.0
	for c := 0; c <= 255; c++ {
		got := SRGBToLinear255(float64(c))
		if got <= prev {
			t.Fatalf("SRGBToLinear255 not strictly increasing at %d: %v <= %v", c, got, prev)
		}
		prev = got
	}
}

func BenchmarkSRGBRoundTrip(b *testing.B) {
	var sink float64
	for i := 0; i < b.N; i++ {
		sink = LinearToSRGB255(SRGBToLinear255(float64(i % 256)))
	}
	_ = sink
}
