package grade

import "github.com/google/uuid"

// Kind identifies the operation a filter instance performs.
type Kind string

// Filter kinds. Brightness, contrast, saturation, and hue are
// matrix-representable and batch during execution; vibrance, whites,
// and blacks run per pixel; the rest are convolution passes.
const (
	KindBrightness Kind = "brightness"
	KindContrast   Kind = "contrast"
	KindSaturation Kind = "saturation"
	KindVibrance   Kind = "vibrance"
	KindHue        Kind = "hue"
	KindWhites     Kind = "whites"
	KindBlacks     Kind = "blacks"
	KindBlur       Kind = "blur"
	KindSharpen    Kind = "sharpen"
	KindEdge       Kind = "edge"
	KindDenoise    Kind = "denoise"
	KindCustomConv Kind = "customConv"
)

// validKind reports whether k is a known filter kind.
func validKind(k Kind) bool {
	switch k {
	case KindBrightness, KindContrast, KindSaturation, KindVibrance,
		KindHue, KindWhites, KindBlacks, KindBlur, KindSharpen,
		KindEdge, KindDenoise, KindCustomConv:
		return true
	default:
		return false
	}
}

// Instance is one configured filter in a pipeline. The ID is opaque
// and stays stable across parameter changes, reorders, and enable
// toggles; the Kind never changes after creation. Params always holds
// the parameter struct matching Kind.
type Instance struct {
	ID      string
	Kind    Kind
	Params  Params
	Enabled bool
}

// NewInstance creates an enabled instance of the given kind with a
// fresh unique ID and the kind's default parameters. Unknown kinds
// yield an instance with nil Params, which every pipeline mutation
// rejects.
func NewInstance(kind Kind) *Instance {
	return &Instance{
		ID:      uuid.NewString(),
		Kind:    kind,
		Params:  DefaultParams(kind),
		Enabled: true,
	}
}
