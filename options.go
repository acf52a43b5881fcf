package grade

// Option configures a single execution. Use functional options to
// customize Apply or TracePixel behavior.
//
// Example:
//
//	// Default gamma-space execution
//	err := grade.Apply(r, p)
//
//	// Saturate in linear light instead
//	err := grade.Apply(r, p, grade.WithLinearSaturation(true))
//
// Options apply to one call only; the engine holds no state between
// executions.
type Option func(*execOptions)

// execOptions holds the resolved per-execution configuration.
type execOptions struct {
	linearSaturation bool
	observer         *execObserver
}

// buildOptions folds a caller's options onto the defaults.
func buildOptions(opts []Option) execOptions {
	var cfg execOptions
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLinearSaturation routes saturation instances through the
// per-pixel linear-light path instead of the gamma-space matrix, and
// makes vibrance estimate existing saturation on linearized channels.
// Linear-light saturation tracks perceived colorfulness more closely
// but cannot join an affine batch, so pipelines mixing it with matrix
// steps flush more often.
func WithLinearSaturation(enabled bool) Option {
	return func(o *execOptions) {
		o.linearSaturation = enabled
	}
}

// withObserver attaches trace instrumentation to the execution. It is
// internal: TracePixel is the public entry point, and it always runs
// against a clone so the observer never sees a caller's raster.
func withObserver(ob *execObserver) Option {
	return func(o *execOptions) {
		o.observer = ob
	}
}
