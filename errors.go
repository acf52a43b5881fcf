package grade

import "errors"

// Sentinel errors for the grade package.
var (
	// ErrNilRaster is returned when an execution is given a nil raster.
	ErrNilRaster = errors.New("grade: nil raster")

	// ErrNilPipeline is returned when an execution is given a nil pipeline.
	ErrNilPipeline = errors.New("grade: nil pipeline")

	// ErrKernelSize is returned when a kernel size is not 3, 5, 7, or 9.
	ErrKernelSize = errors.New("grade: kernel size must be odd, between 3 and 9")

	// ErrKernelWeights is returned when kernel weights do not hold
	// exactly size*size values.
	ErrKernelWeights = errors.New("grade: kernel weights must hold size*size values")

	// ErrInstanceNotFound is returned when a pipeline mutation names an
	// unknown instance id.
	ErrInstanceNotFound = errors.New("grade: instance not found")

	// ErrDuplicateID is returned when instances with the same id are
	// added to one pipeline.
	ErrDuplicateID = errors.New("grade: duplicate instance id")

	// ErrCoordOutOfBounds is returned when a pixel trace is requested
	// for a coordinate outside the raster.
	ErrCoordOutOfBounds = errors.New("grade: coordinate outside raster bounds")
)

// ParamError reports a parameter value rejected at the pipeline
// mutation boundary.
type ParamError struct {
	Kind   Kind
	Field  string
	Reason string
}

func (e *ParamError) Error() string {
	return "grade: invalid " + string(e.Kind) + " params." + e.Field + ": " + e.Reason
}

// InvalidParamsError reports a params/kind shape mismatch discovered
// during execution. It marks a precondition violation by the caller,
// not a recoverable runtime condition: execution stops before any
// further pixel is written by the offending instance.
type InvalidParamsError struct {
	ID     string
	Kind   Kind
	Reason string
}

func (e *InvalidParamsError) Error() string {
	return "grade: instance " + e.ID + " (" + string(e.Kind) + "): " + e.Reason
}
