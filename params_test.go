package grade

import (
	"errors"
	"math"
	"testing"
)

var allKinds = []Kind{
	KindBrightness, KindContrast, KindSaturation, KindVibrance,
	KindHue, KindWhites, KindBlacks, KindBlur, KindSharpen,
	KindEdge, KindDenoise, KindCustomConv,
}

func TestDefaultParams(t *testing.T) {
	for _, kind := range allKinds {
		t.Run(string(kind), func(t *testing.T) {
			p := DefaultParams(kind)
			if p == nil {
				t.Fatalf("DefaultParams(%q) = nil", kind)
			}
			if p.Kind() != kind {
				t.Errorf("Kind() = %q, want %q", p.Kind(), kind)
			}
			if err := p.Validate(); err != nil {
				t.Errorf("default params must validate, got %v", err)
			}
		})
	}
}

func TestDefaultParamsUnknownKind(t *testing.T) {
	if p := DefaultParams("warp"); p != nil {
		t.Errorf("DefaultParams(\"warp\") = %v, want nil", p)
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name      string
		params    Params
		wantField string // empty means valid
	}{
		{"brightness max", BrightnessParams{Value: 100}, ""},
		{"brightness min", BrightnessParams{Value: -100}, ""},
		{"brightness over", BrightnessParams{Value: 100.5}, "value"},
		{"brightness NaN", BrightnessParams{Value: math.NaN()}, "value"},

		{"contrast flat", ContrastParams{Value: 0}, ""},
		{"contrast max", ContrastParams{Value: 2}, ""},
		{"contrast negative", ContrastParams{Value: -0.1}, "value"},

		{"saturation max", SaturationParams{Value: 2}, ""},
		{"saturation over", SaturationParams{Value: 2.1}, "value"},

		{"vibrance bounds", VibranceParams{Amount: 1}, ""},
		{"vibrance under", VibranceParams{Amount: -1.01}, "amount"},

		{"hue max", HueParams{Degrees: 180}, ""},
		{"hue under", HueParams{Degrees: -181}, "degrees"},

		{"whites over", WhitesParams{Value: 101}, "value"},
		{"blacks under", BlacksParams{Value: -101}, "value"},

		{"blur gaussian", BlurParams{Mode: BlurGaussian, Size: 5, Sigma: 1.2, Padding: PadReflect}, ""},
		{"blur derived sigma", BlurParams{Mode: BlurGaussian, Size: 3, Sigma: 0, Padding: PadEdge}, ""},
		{"blur bad mode", BlurParams{Mode: "motion", Size: 3, Padding: PadEdge}, "mode"},
		{"blur even size", BlurParams{Mode: BlurBox, Size: 4, Padding: PadEdge}, "size"},
		{"blur size too large", BlurParams{Mode: BlurBox, Size: 9, Padding: PadEdge}, "size"},
		{"blur sigma NaN", BlurParams{Mode: BlurGaussian, Size: 3, Sigma: math.NaN(), Padding: PadEdge}, "sigma"},
		{"blur bad padding", BlurParams{Mode: BlurBox, Size: 3, Padding: Padding(9)}, "padding"},

		{"sharpen laplacian", SharpenParams{Mode: SharpenLaplacian, Amount: 2, Size: 3}, ""},
		{"sharpen bad mode", SharpenParams{Mode: "wavelet", Amount: 1, Size: 3}, "mode"},
		{"sharpen amount over", SharpenParams{Mode: SharpenUnsharp, Amount: 5.5, Size: 3}, "amount"},
		{"sharpen bad size", SharpenParams{Mode: SharpenUnsharp, Amount: 1, Size: 7}, "size"},
		{"sharpen override match", SharpenParams{Mode: SharpenUnsharp, Amount: 1, Size: 3, Kernel: IdentityKernel(3)}, ""},
		{"sharpen override mismatch", SharpenParams{Mode: SharpenUnsharp, Amount: 1, Size: 3, Kernel: IdentityKernel(5)}, "kernel"},

		{"edge prewitt", EdgeParams{Operator: EdgePrewitt, Size: 5, Combine: EdgeY}, ""},
		{"edge bad operator", EdgeParams{Operator: "roberts", Size: 3, Combine: EdgeMagnitude}, "operator"},
		{"edge bad size", EdgeParams{Operator: EdgeSobel, Size: 4, Combine: EdgeMagnitude}, "size"},
		{"edge bad combine", EdgeParams{Operator: EdgeSobel, Size: 3, Combine: EdgeCombine(9)}, "combine"},

		{"denoise median", DenoiseParams{Mode: DenoiseMedian, Size: 7}, ""},
		{"denoise bad mode", DenoiseParams{Mode: "bilateral", Size: 3}, "mode"},
		{"denoise bad size", DenoiseParams{Mode: DenoiseMean, Size: 9}, "size"},
		{"denoise strength over", DenoiseParams{Mode: DenoiseMean, Size: 3, Strength: 1.5}, "strength"},

		{"custom conv set", CustomConvParams{Kernel: LaplacianKernel(1)}, ""},
		{"custom conv zero", CustomConvParams{}, "kernel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			var pe *ParamError
			if !errors.As(err, &pe) {
				t.Fatalf("Validate() = %v, want *ParamError", err)
			}
			if pe.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", pe.Field, tt.wantField)
			}
			if pe.Kind != tt.params.Kind() {
				t.Errorf("Kind = %q, want %q", pe.Kind, tt.params.Kind())
			}
			if pe.Error() == "" {
				t.Error("Error() returned an empty message")
			}
		})
	}
}

func TestParamsKindMapping(t *testing.T) {
	tests := []struct {
		params Params
		want   Kind
	}{
		{BrightnessParams{}, KindBrightness},
		{ContrastParams{}, KindContrast},
		{SaturationParams{}, KindSaturation},
		{VibranceParams{}, KindVibrance},
		{HueParams{}, KindHue},
		{WhitesParams{}, KindWhites},
		{BlacksParams{}, KindBlacks},
		{BlurParams{}, KindBlur},
		{SharpenParams{}, KindSharpen},
		{EdgeParams{}, KindEdge},
		{DenoiseParams{}, KindDenoise},
		{CustomConvParams{}, KindCustomConv},
	}
	for _, tt := range tests {
		if got := tt.params.Kind(); got != tt.want {
			t.Errorf("%T.Kind() = %q, want %q", tt.params, got, tt.want)
		}
	}
}

func TestValidKind(t *testing.T) {
	for _, kind := range allKinds {
		if !validKind(kind) {
			t.Errorf("validKind(%q) = false", kind)
		}
	}
	for _, kind := range []Kind{"", "warp", "Brightness"} {
		if validKind(kind) {
			t.Errorf("validKind(%q) = true", kind)
		}
	}
}

func TestNewInstance(t *testing.T) {
	inst := NewInstance(KindContrast)
	if inst.ID == "" {
		t.Error("ID is empty")
	}
	if inst.Kind != KindContrast {
		t.Errorf("Kind = %q, want %q", inst.Kind, KindContrast)
	}
	if !inst.Enabled {
		t.Error("new instances must start enabled")
	}
	if _, ok := inst.Params.(ContrastParams); !ok {
		t.Errorf("Params is %T, want ContrastParams", inst.Params)
	}

	other := NewInstance(KindContrast)
	if other.ID == inst.ID {
		t.Error("two instances share an ID")
	}
}

func TestNewInstanceUnknownKind(t *testing.T) {
	inst := NewInstance("warp")
	if inst.Params != nil {
		t.Errorf("Params = %v, want nil for unknown kind", inst.Params)
	}
}
