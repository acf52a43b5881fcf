package grade

// KernelCell records one kernel-cell sample of a traced convolution:
// which cell fired, where it sampled after padding resolution, and the
// weight*sample product that entered the accumulation. Rank filters
// (median denoise) record samples only, leaving Weight and Product
// zero. OutOfRange marks cells dropped by zero padding; their X, Y,
// Sample, and Product are meaningless.
type KernelCell struct {
	KX, KY     int
	X, Y       int
	OutOfRange bool
	Weight     float64
	Sample     Pixel
	Product    Pixel
}

// WindowTrace is the complete sampled neighborhood of one kernel pass
// at the traced coordinate. Most convolution steps record one window;
// edge detection records two, labeled gx and gy.
type WindowTrace struct {
	Label string
	Cells []KernelCell
}

// TraceStep records one enabled instance's effect on the traced pixel:
// the working value entering the step and the value leaving it. Steps
// inside an affine batch carry exact intermediate floats; steps that
// cross a buffer write see the quantized value the next pass reads.
// Windows is populated only for convolution steps.
type TraceStep struct {
	ID      string
	Kind    Kind
	Input   Pixel
	Output  Pixel
	Windows []WindowTrace
}

// PixelTrace is the full diagnostic replay of a pipeline at one
// coordinate.
type PixelTrace struct {
	X, Y   int
	Alpha  uint8
	Input  Pixel
	Output Pixel
	Steps  []TraceStep
}

// execObserver captures per-step values at one coordinate while the
// executor runs. run consults it at every step boundary; it never
// alters what the executor writes.
type execObserver struct {
	x, y  int
	steps []TraceStep
}

// observeAffineBatch records the batched instances' intermediates at
// the observed coordinate, just before the composed matrix runs. The
// intermediates come from applying the per-instance matrices
// sequentially, which matches the composed result within composition
// tolerance. A fully transparent pixel records its input unchanged,
// mirroring the skip in ApplyRaster.
func (ob *execObserver) observeAffineBatch(r *Raster, batch []*Instance, ms []Affine) {
	cur := r.GetPixel(ob.x, ob.y)
	skip := r.Alpha(ob.x, ob.y) == 0
	for i, inst := range batch {
		in := cur
		if !skip {
			cur = ms[i].Apply(cur)
		}
		ob.steps = append(ob.steps, TraceStep{ID: inst.ID, Kind: inst.Kind, Input: in, Output: cur})
	}
}

// record appends one non-batched step.
func (ob *execObserver) record(inst *Instance, in, out Pixel, windows []WindowTrace) {
	ob.steps = append(ob.steps, TraceStep{
		ID:      inst.ID,
		Kind:    inst.Kind,
		Input:   in,
		Output:  out,
		Windows: windows,
	})
}

// TracePixel replays the pipeline for a single coordinate, recording
// every enabled instance's input and output there plus the sampled
// neighborhoods and per-cell products of convolution steps.
//
// The trace is not a parallel re-implementation of the math: it is the
// executor's own walk over a clone of the raster with an observer
// attached, so the recorded values are exactly what Apply with the
// same options produces. The caller's raster is never written.
func TracePixel(r *Raster, p *Pipeline, x, y int, opts ...Option) (*PixelTrace, error) {
	if r == nil {
		return nil, ErrNilRaster
	}
	if p == nil {
		return nil, ErrNilPipeline
	}
	if x < 0 || x >= r.Width() || y < 0 || y >= r.Height() {
		return nil, ErrCoordOutOfBounds
	}

	work := r.Clone()
	ob := &execObserver{x: x, y: y}

	traced := make([]Option, 0, len(opts)+1)
	traced = append(traced, opts...)
	traced = append(traced, withObserver(ob))

	if err := Apply(work, p, traced...); err != nil {
		return nil, err
	}

	return &PixelTrace{
		X:      x,
		Y:      y,
		Alpha:  r.Alpha(x, y),
		Input:  r.GetPixel(x, y),
		Output: work.GetPixel(x, y),
		Steps:  ob.steps,
	}, nil
}
