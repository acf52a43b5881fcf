package grade

// stepClass buckets a filter kind by how the executor applies it.
type stepClass int

const (
	classAffine stepClass = iota
	classPerPixel
	classConvolution
)

// classify maps a kind to its execution strategy. Saturation moves
// from the batched matrix path to the per-pixel path when linear-light
// saturation is requested.
func classify(kind Kind, linearSaturation bool) (stepClass, bool) {
	switch kind {
	case KindBrightness, KindContrast, KindHue:
		return classAffine, true
	case KindSaturation:
		if linearSaturation {
			return classPerPixel, true
		}
		return classAffine, true
	case KindVibrance, KindWhites, KindBlacks:
		return classPerPixel, true
	case KindBlur, KindSharpen, KindEdge, KindDenoise, KindCustomConv:
		return classConvolution, true
	default:
		return 0, false
	}
}

// Apply runs every enabled instance of the pipeline over the raster,
// oldest filter first.
//
// Matrix-representable steps (brightness, contrast, gamma-space
// saturation, hue) are not applied one by one: consecutive runs of
// them compose into a single matrix applied in one pass over the
// buffer, so their intermediates never quantize. Per-pixel steps
// (vibrance, whites, blacks, and saturation under
// WithLinearSaturation) flush the pending batch and mutate the buffer
// pixel by pixel. Convolution steps (blur, sharpen, edge, denoise,
// custom kernels) also flush, then replace the buffer contents
// wholesale, since they read whole neighborhoods.
//
// Disabled instances are skipped entirely, not applied as identity.
// An instance whose params do not match its kind stops the walk with
// an InvalidParamsError; passes already applied stay in the buffer.
//
// Apply is synchronous: one call is one full pass, and the engine
// retains neither r nor p afterwards.
func Apply(r *Raster, p *Pipeline, opts ...Option) error {
	if r == nil {
		return ErrNilRaster
	}
	if p == nil {
		return ErrNilPipeline
	}
	return run(r, p, buildOptions(opts))
}

// run is the executor walk shared by Apply and TracePixel.
func run(r *Raster, p *Pipeline, cfg execOptions) error {
	log := Logger()

	// Matrix-representable instances accumulate here until a step that
	// cannot batch forces a flush.
	var batch []*Instance

	flush := func() {
		if len(batch) == 0 {
			return
		}
		ms := make([]Affine, len(batch))
		for i, inst := range batch {
			ms[i] = affineFor(inst)
		}
		if cfg.observer != nil {
			cfg.observer.observeAffineBatch(r, batch, ms)
		}
		Compose(ms...).ApplyRaster(r)
		log.Debug("applied affine batch", "steps", len(batch))
		batch = batch[:0]
	}

	for _, inst := range p.ExecutionOrder() {
		if !inst.Enabled {
			continue
		}
		if err := checkShape(inst); err != nil {
			return err
		}
		class, ok := classify(inst.Kind, cfg.linearSaturation)
		if !ok {
			return &InvalidParamsError{ID: inst.ID, Kind: inst.Kind, Reason: "unknown kind"}
		}

		switch class {
		case classAffine:
			batch = append(batch, inst)

		case classPerPixel:
			flush()
			var in Pixel
			if cfg.observer != nil {
				in = r.GetPixel(cfg.observer.x, cfg.observer.y)
			}
			applyPixelFunc(r, pixelFuncFor(inst, cfg.linearSaturation))
			if cfg.observer != nil {
				cfg.observer.record(inst, in, r.GetPixel(cfg.observer.x, cfg.observer.y), nil)
			}
			log.Debug("applied per-pixel pass", "kind", inst.Kind, "id", inst.ID)

		case classConvolution:
			flush()
			var in Pixel
			if cfg.observer != nil {
				in = r.GetPixel(cfg.observer.x, cfg.observer.y)
			}
			out, windows := convolveInstance(r, inst, cfg.observer)
			if out == nil {
				return &InvalidParamsError{ID: inst.ID, Kind: inst.Kind, Reason: "params shape does not match kind"}
			}
			r.CopyFrom(out)
			if cfg.observer != nil {
				cfg.observer.record(inst, in, r.GetPixel(cfg.observer.x, cfg.observer.y), windows)
			}
			log.Debug("applied convolution pass", "kind", inst.Kind, "id", inst.ID)
		}
	}
	flush()
	return nil
}

// checkShape fail-fasts on params whose concrete type does not match
// the instance kind. Range validation happened at the pipeline
// mutation boundary; execution only guards against shape drift, which
// marks a caller precondition violation rather than a recoverable
// condition.
func checkShape(inst *Instance) error {
	ok := false
	switch inst.Params.(type) {
	case BrightnessParams:
		ok = inst.Kind == KindBrightness
	case ContrastParams:
		ok = inst.Kind == KindContrast
	case SaturationParams:
		ok = inst.Kind == KindSaturation
	case VibranceParams:
		ok = inst.Kind == KindVibrance
	case HueParams:
		ok = inst.Kind == KindHue
	case WhitesParams:
		ok = inst.Kind == KindWhites
	case BlacksParams:
		ok = inst.Kind == KindBlacks
	case BlurParams:
		ok = inst.Kind == KindBlur
	case SharpenParams:
		ok = inst.Kind == KindSharpen
	case EdgeParams:
		ok = inst.Kind == KindEdge
	case DenoiseParams:
		ok = inst.Kind == KindDenoise
	case CustomConvParams:
		ok = inst.Kind == KindCustomConv
	}
	if !ok {
		return &InvalidParamsError{ID: inst.ID, Kind: inst.Kind, Reason: "params shape does not match kind"}
	}
	return nil
}

// affineFor builds the matrix for one batched instance. The shape was
// checked before batching.
func affineFor(inst *Instance) Affine {
	switch params := inst.Params.(type) {
	case BrightnessParams:
		return Brightness(params.Value)
	case ContrastParams:
		return Contrast(params.Value)
	case SaturationParams:
		return Saturation(params.Value)
	case HueParams:
		return HueRotate(params.Degrees)
	default:
		return Identity()
	}
}

// pixelFuncFor builds the closure for one per-pixel instance.
func pixelFuncFor(inst *Instance, linearSaturation bool) func(Pixel) Pixel {
	switch params := inst.Params.(type) {
	case SaturationParams:
		return func(p Pixel) Pixel { return LinearSaturation(p, params.Value) }
	case VibranceParams:
		return func(p Pixel) Pixel { return Vibrance(p, params.Amount, linearSaturation) }
	case WhitesParams:
		return func(p Pixel) Pixel { return Whites(p, params.Value) }
	case BlacksParams:
		return func(p Pixel) Pixel { return Blacks(p, params.Value) }
	default:
		return func(p Pixel) Pixel { return p }
	}
}

// applyPixelFunc runs a per-pixel transform over the raster in place,
// skipping fully transparent pixels like the affine pass does. Results
// clamp and round on store.
func applyPixelFunc(r *Raster, fn func(Pixel) Pixel) {
	pix := r.Data()
	for i := 0; i < len(pix); i += 4 {
		if pix[i+3] == 0 {
			continue
		}
		out := fn(Pixel{
			R: float64(pix[i+0]),
			G: float64(pix[i+1]),
			B: float64(pix[i+2]),
		})
		pix[i+0] = clampUint8(out.R)
		pix[i+1] = clampUint8(out.G)
		pix[i+2] = clampUint8(out.B)
	}
}

// convolveInstance runs one convolution-kind instance over src and
// returns the replacement raster, plus the windows recorded at the
// observed coordinate when ob is non-nil. Instances without an
// explicit padding parameter clamp to the edge.
func convolveInstance(src *Raster, inst *Instance, ob *execObserver) (*Raster, []WindowTrace) {
	tx, ty := -1, -1
	if ob != nil {
		tx, ty = ob.x, ob.y
	}

	switch params := inst.Params.(type) {
	case BlurParams:
		k := BoxKernel(params.Size)
		if params.Mode == BlurGaussian {
			k = GaussianKernel(params.Size, params.Sigma)
		}
		rec := newWindow(ob, "kernel")
		return convolveRaster(src, k, convOpts(params.Padding), rec, tx, ty), collectWindows(rec)

	case SharpenParams:
		rec := newWindow(ob, "kernel")
		return convolveRaster(src, sharpenKernel(params), convOpts(PadEdge), rec, tx, ty), collectWindows(rec)

	case EdgeParams:
		gx, gy := SobelKernels()
		if params.Operator == EdgePrewitt {
			gx, gy = PrewittKernels()
		}
		recX := newWindow(ob, "gx")
		recY := newWindow(ob, "gy")
		return detectEdges(src, gx, gy, params.Combine, PadEdge, recX, recY, tx, ty), collectWindows(recX, recY)

	case DenoiseParams:
		if params.Mode == DenoiseMedian {
			rec := newWindow(ob, "window")
			return medianDenoise(src, params.Size, PadEdge, rec, tx, ty), collectWindows(rec)
		}
		rec := newWindow(ob, "kernel")
		return meanDenoise(src, params.Size, params.Strength, PadEdge, rec, tx, ty), collectWindows(rec)

	case CustomConvParams:
		rec := newWindow(ob, "kernel")
		return convolveRaster(src, params.Kernel, convOpts(PadEdge), rec, tx, ty), collectWindows(rec)

	default:
		return nil, nil
	}
}

// sharpenKernel picks the kernel for a sharpen instance: the explicit
// override when set, otherwise the mode's construction. Laplacian is
// the classic fixed cross; edge enhance scales the cross by Amount.
func sharpenKernel(params SharpenParams) Kernel {
	if params.Kernel.Size() != 0 {
		return params.Kernel
	}
	switch params.Mode {
	case SharpenLaplacian:
		return LaplacianKernel(1)
	case SharpenEdgeEnhance:
		return LaplacianKernel(params.Amount)
	default:
		return UnsharpKernel(params.Size, params.Amount)
	}
}

// convOpts are the bulk options for a pipeline convolution pass.
func convOpts(padding Padding) ConvolveOptions {
	return ConvolveOptions{Padding: padding, PerChannel: true, Stride: 1, Dilation: 1}
}

// newWindow allocates a labeled trace window when tracing is active.
func newWindow(ob *execObserver, label string) *WindowTrace {
	if ob == nil {
		return nil
	}
	return &WindowTrace{Label: label}
}

// collectWindows gathers the non-nil recorded windows in order.
func collectWindows(recs ...*WindowTrace) []WindowTrace {
	var out []WindowTrace
	for _, rec := range recs {
		if rec != nil {
			out = append(out, *rec)
		}
	}
	return out
}
