package grade

import (
	"fmt"
	"math"
)

// Params carries the kind-specific settings of a filter instance. One
// struct type implements it per Kind. Validate enforces the accepted
// ranges and runs at the pipeline mutation boundary; the executor only
// re-checks that the shape matches the instance kind.
type Params interface {
	// Kind returns the filter kind this parameter set configures.
	Kind() Kind
	// Validate reports the first out-of-range field, or nil.
	Validate() error
}

// BlurMode selects the blur kernel family.
type BlurMode string

// Blur modes.
const (
	BlurBox      BlurMode = "box"
	BlurGaussian BlurMode = "gaussian"
)

// SharpenMode selects the sharpening construction.
type SharpenMode string

// Sharpen modes. Laplacian uses the classic fixed cross; edge enhance
// scales the same cross by Amount.
const (
	SharpenUnsharp     SharpenMode = "unsharp"
	SharpenLaplacian   SharpenMode = "laplacian"
	SharpenEdgeEnhance SharpenMode = "edgeEnhance"
)

// EdgeOperator selects the gradient kernel pair of an edge instance.
type EdgeOperator string

// Edge operators.
const (
	EdgeSobel   EdgeOperator = "sobel"
	EdgePrewitt EdgeOperator = "prewitt"
)

// DenoiseMode selects the noise-reduction algorithm.
type DenoiseMode string

// Denoise modes.
const (
	DenoiseMean   DenoiseMode = "mean"
	DenoiseMedian DenoiseMode = "median"
)

// BrightnessParams shifts every channel by Value.
type BrightnessParams struct {
	Value float64 // -100 (darker) to +100 (brighter); 0 is identity
}

// Kind implements Params.
func (BrightnessParams) Kind() Kind { return KindBrightness }

// Validate implements Params.
func (p BrightnessParams) Validate() error {
	return checkRange(KindBrightness, "value", p.Value, -100, 100)
}

// ContrastParams scales every channel around mid-gray 128.
type ContrastParams struct {
	Value float64 // 0 (flat gray) to 2 (high contrast); 1 is identity
}

// Kind implements Params.
func (ContrastParams) Kind() Kind { return KindContrast }

// Validate implements Params.
func (p ContrastParams) Validate() error {
	return checkRange(KindContrast, "value", p.Value, 0, 2)
}

// SaturationParams blends channels between luma and their original
// values.
type SaturationParams struct {
	Value float64 // 0 (grayscale) to 2 (oversaturated); 1 is identity
}

// Kind implements Params.
func (SaturationParams) Kind() Kind { return KindSaturation }

// Validate implements Params.
func (p SaturationParams) Validate() error {
	return checkRange(KindSaturation, "value", p.Value, 0, 2)
}

// VibranceParams boosts or mutes saturation adaptively.
type VibranceParams struct {
	Amount float64 // -1 (mute) to +1 (boost); 0 is identity
}

// Kind implements Params.
func (VibranceParams) Kind() Kind { return KindVibrance }

// Validate implements Params.
func (p VibranceParams) Validate() error {
	return checkRange(KindVibrance, "amount", p.Amount, -1, 1)
}

// HueParams rotates the color cube about its gray axis.
type HueParams struct {
	Degrees float64 // -180 to +180; 0 is identity
}

// Kind implements Params.
func (HueParams) Kind() Kind { return KindHue }

// Validate implements Params.
func (p HueParams) Validate() error {
	return checkRange(KindHue, "degrees", p.Degrees, -180, 180)
}

// WhitesParams shifts the bright end of the tonal range.
type WhitesParams struct {
	Value float64 // -100 to +100; 0 is identity
}

// Kind implements Params.
func (WhitesParams) Kind() Kind { return KindWhites }

// Validate implements Params.
func (p WhitesParams) Validate() error {
	return checkRange(KindWhites, "value", p.Value, -100, 100)
}

// BlacksParams shifts the dark end of the tonal range.
type BlacksParams struct {
	Value float64 // -100 to +100; 0 is identity
}

// Kind implements Params.
func (BlacksParams) Kind() Kind { return KindBlacks }

// Validate implements Params.
func (p BlacksParams) Validate() error {
	return checkRange(KindBlacks, "value", p.Value, -100, 100)
}

// BlurParams configures a blur pass.
type BlurParams struct {
	Mode    BlurMode
	Size    int     // 3, 5, or 7
	Sigma   float64 // gaussian only; <= 0 derives size/3
	Padding Padding
}

// Kind implements Params.
func (BlurParams) Kind() Kind { return KindBlur }

// Validate implements Params.
func (p BlurParams) Validate() error {
	if p.Mode != BlurBox && p.Mode != BlurGaussian {
		return &ParamError{Kind: KindBlur, Field: "mode", Reason: fmt.Sprintf("unknown mode %q", p.Mode)}
	}
	if p.Size != 3 && p.Size != 5 && p.Size != 7 {
		return &ParamError{Kind: KindBlur, Field: "size", Reason: fmt.Sprintf("%d not one of 3, 5, 7", p.Size)}
	}
	if math.IsNaN(p.Sigma) {
		return &ParamError{Kind: KindBlur, Field: "sigma", Reason: "NaN"}
	}
	if !validPadding(p.Padding) {
		return &ParamError{Kind: KindBlur, Field: "padding", Reason: fmt.Sprintf("unknown mode %d", p.Padding)}
	}
	return nil
}

// SharpenParams configures a sharpening pass. When Kernel is set it
// overrides the mode's generated kernel entirely.
type SharpenParams struct {
	Mode   SharpenMode
	Amount float64 // 0 to 5; sharpening strength
	Size   int     // 3 or 5; unsharp mask window
	Kernel Kernel  // optional override; zero value means none
}

// Kind implements Params.
func (SharpenParams) Kind() Kind { return KindSharpen }

// Validate implements Params.
func (p SharpenParams) Validate() error {
	switch p.Mode {
	case SharpenUnsharp, SharpenLaplacian, SharpenEdgeEnhance:
	default:
		return &ParamError{Kind: KindSharpen, Field: "mode", Reason: fmt.Sprintf("unknown mode %q", p.Mode)}
	}
	if err := checkRange(KindSharpen, "amount", p.Amount, 0, 5); err != nil {
		return err
	}
	if p.Size != 3 && p.Size != 5 {
		return &ParamError{Kind: KindSharpen, Field: "size", Reason: fmt.Sprintf("%d not one of 3, 5", p.Size)}
	}
	if p.Kernel.Size() != 0 && p.Kernel.Size() != p.Size {
		return &ParamError{Kind: KindSharpen, Field: "kernel", Reason: "override size does not match size"}
	}
	return nil
}

// EdgeParams configures an edge detection pass. Detection always runs
// the canonical 3x3 gradient pairs; Size is accepted for forward
// compatibility with larger operators but does not change the kernels.
type EdgeParams struct {
	Operator EdgeOperator
	Size     int // 3 or 5
	Combine  EdgeCombine
}

// Kind implements Params.
func (EdgeParams) Kind() Kind { return KindEdge }

// Validate implements Params.
func (p EdgeParams) Validate() error {
	if p.Operator != EdgeSobel && p.Operator != EdgePrewitt {
		return &ParamError{Kind: KindEdge, Field: "operator", Reason: fmt.Sprintf("unknown operator %q", p.Operator)}
	}
	if p.Size != 3 && p.Size != 5 {
		return &ParamError{Kind: KindEdge, Field: "size", Reason: fmt.Sprintf("%d not one of 3, 5", p.Size)}
	}
	if !validEdgeCombine(p.Combine) {
		return &ParamError{Kind: KindEdge, Field: "combine", Reason: fmt.Sprintf("unknown mode %d", p.Combine)}
	}
	return nil
}

// DenoiseParams configures a noise reduction pass. Strength blends the
// mean result with the original and is ignored by the median mode,
// which is a pure rank filter.
type DenoiseParams struct {
	Mode     DenoiseMode
	Size     int     // 3, 5, or 7
	Strength float64 // mean only; 0 to 1
}

// Kind implements Params.
func (DenoiseParams) Kind() Kind { return KindDenoise }

// Validate implements Params.
func (p DenoiseParams) Validate() error {
	if p.Mode != DenoiseMean && p.Mode != DenoiseMedian {
		return &ParamError{Kind: KindDenoise, Field: "mode", Reason: fmt.Sprintf("unknown mode %q", p.Mode)}
	}
	if p.Size != 3 && p.Size != 5 && p.Size != 7 {
		return &ParamError{Kind: KindDenoise, Field: "size", Reason: fmt.Sprintf("%d not one of 3, 5, 7", p.Size)}
	}
	return checkRange(KindDenoise, "strength", p.Strength, 0, 1)
}

// CustomConvParams runs a caller-supplied kernel as a pipeline step.
// The kernel carries its own size; NewKernel has already enforced the
// 3..9 odd-size rule, so validation only rejects the zero value.
type CustomConvParams struct {
	Kernel Kernel
}

// Kind implements Params.
func (CustomConvParams) Kind() Kind { return KindCustomConv }

// Validate implements Params.
func (p CustomConvParams) Validate() error {
	if !validKernelSize(p.Kernel.Size()) {
		return &ParamError{Kind: KindCustomConv, Field: "kernel", Reason: "kernel is not set"}
	}
	return nil
}

// DefaultParams returns the identity-leaning defaults a freshly added
// instance of the given kind starts from. Unknown kinds return nil.
func DefaultParams(kind Kind) Params {
	switch kind {
	case KindBrightness:
		return BrightnessParams{Value: 0}
	case KindContrast:
		return ContrastParams{Value: 1}
	case KindSaturation:
		return SaturationParams{Value: 1}
	case KindVibrance:
		return VibranceParams{Amount: 0}
	case KindHue:
		return HueParams{Degrees: 0}
	case KindWhites:
		return WhitesParams{Value: 0}
	case KindBlacks:
		return BlacksParams{Value: 0}
	case KindBlur:
		return BlurParams{Mode: BlurGaussian, Size: 3, Sigma: 1, Padding: PadEdge}
	case KindSharpen:
		return SharpenParams{Mode: SharpenUnsharp, Amount: 0.5, Size: 3}
	case KindEdge:
		return EdgeParams{Operator: EdgeSobel, Size: 3, Combine: EdgeMagnitude}
	case KindDenoise:
		return DenoiseParams{Mode: DenoiseMean, Size: 3, Strength: 0.5}
	case KindCustomConv:
		return CustomConvParams{Kernel: IdentityKernel(3)}
	default:
		return nil
	}
}

// checkRange rejects values outside [lo, hi] and NaN.
func checkRange(kind Kind, field string, v, lo, hi float64) error {
	if math.IsNaN(v) || v < lo || v > hi {
		return &ParamError{
			Kind:   kind,
			Field:  field,
			Reason: fmt.Sprintf("%v outside [%v, %v]", v, lo, hi),
		}
	}
	return nil
}
