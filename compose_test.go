package grade

import "testing"

func TestComposeEmpty(t *testing.T) {
	if got := Compose(); !got.IsIdentity() {
		t.Errorf("Compose() = %+v, want identity", got)
	}
}

func TestComposeSingle(t *testing.T) {
	a := Contrast(1.3)
	if got := Compose(a); got != a {
		t.Errorf("Compose(a) = %+v, want a = %+v", got, a)
	}
}

// Applying the composed transform must match applying each transform
// in sequence, for every mix of builder kinds.
func TestComposeMatchesSequential(t *testing.T) {
	chains := []struct {
		name string
		ts   []Affine
	}{
		{"brightness pair", []Affine{Brightness(20), Brightness(-35)}},
		{"brightness contrast", []Affine{Brightness(20), Contrast(1.5)}},
		{"contrast brightness", []Affine{Contrast(1.5), Brightness(20)}},
		{"all four kinds", []Affine{Brightness(12), Contrast(0.8), HueRotate(33), Saturation(1.4)}},
		{"long chain", []Affine{
			HueRotate(-61), Saturation(0.2), Brightness(-8), Contrast(1.9),
			HueRotate(140), Brightness(44), Saturation(1.7), Contrast(0.4),
		}},
	}

	pixels := []Pixel{
		{0, 0, 0},
		{255, 255, 255},
		{200, 150, 100},
		{1, 2, 3},
		{128, 128, 128},
		{17, 230, 98},
	}

	for _, tt := range chains {
		t.Run(tt.name, func(t *testing.T) {
			composed := Compose(tt.ts...)
			for _, p := range pixels {
				seq := p
				for _, a := range tt.ts {
					seq = a.Apply(seq)
				}
				got := composed.Apply(p)
				if !pixelClose(got, seq, 1e-6) {
					t.Errorf("composed(%+v) = %+v, sequential = %+v", p, got, seq)
				}
			}
		})
	}
}

// Composition is associative: folding sub-chains first must not change
// the result.
func TestComposeAssociative(t *testing.T) {
	a := Brightness(25)
	b := Contrast(1.6)
	c := HueRotate(75)

	left := Compose(Compose(a, b), c)
	right := Compose(a, Compose(b, c))

	for _, p := range []Pixel{{200, 150, 100}, {3, 250, 77}, {128, 128, 128}} {
		if got, want := left.Apply(p), right.Apply(p); !pixelClose(got, want, 1e-6) {
			t.Errorf("(ab)c vs a(bc) on %+v: %+v vs %+v", p, got, want)
		}
	}
}

// Brightness then contrast differs from contrast then brightness: the
// pipeline order is meaningful and must never be normalized away.
func TestComposeOrderMatters(t *testing.T) {
	p := Pixel{200, 150, 100}

	bc := Compose(Brightness(20), Contrast(1.5)).Apply(p)
	cb := Compose(Contrast(1.5), Brightness(20)).Apply(p)

	if pixelClose(bc, cb, 1e-9) {
		t.Fatalf("brightness/contrast commuted on %+v: both give %+v", p, bc)
	}

	// brightness first: ((c+20)-128)*1.5+128
	checkPixel(t, "brightness then contrast", bc, Pixel{266, 191, 116}, 1e-9)
	// contrast first: ((c-128)*1.5+128)+20
	checkPixel(t, "contrast then brightness", cb, Pixel{256, 181, 106}, 1e-9)
}

func TestComposeBrightnessOnly(t *testing.T) {
	got := Compose(Brightness(20)).Apply(Pixel{200, 150, 100})
	checkPixel(t, "brightness 20", got, Pixel{220, 170, 120}, 1e-12)
}
