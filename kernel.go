package grade

import "math"

// Kernel is a square convolution matrix with an odd size of 3, 5, 7,
// or 9. Weights are arbitrary floats and are not required to sum to 1.
// Kernels are cheap value objects built on demand; the engine never
// caches them.
type Kernel struct {
	size    int
	weights []float64 // row-major, size*size values
}

// NewKernel creates a kernel from row-major weights. The size must be
// odd and between 3 and 9, and weights must hold exactly size*size
// values.
func NewKernel(size int, weights []float64) (Kernel, error) {
	if !validKernelSize(size) {
		return Kernel{}, ErrKernelSize
	}
	if len(weights) != size*size {
		return Kernel{}, ErrKernelWeights
	}
	w := make([]float64, len(weights))
	copy(w, weights)
	return Kernel{size: size, weights: w}, nil
}

// validKernelSize reports whether size is a supported kernel size.
func validKernelSize(size int) bool {
	return size == 3 || size == 5 || size == 7 || size == 9
}

// Size returns the kernel's edge length.
func (k Kernel) Size() int {
	return k.size
}

// At returns the weight at column x, row y.
func (k Kernel) At(x, y int) float64 {
	return k.weights[y*k.size+x]
}

// Weights returns a copy of the kernel's weights in row-major order.
func (k Kernel) Weights() []float64 {
	w := make([]float64, len(k.weights))
	copy(w, k.weights)
	return w
}

// newKernel builds a kernel without validation. Factories call this
// with sizes already checked at the pipeline boundary.
func newKernel(size int) Kernel {
	return Kernel{size: size, weights: make([]float64, size*size)}
}

// GaussianKernel generates a size x size Gaussian kernel with standard
// deviation sigma, normalized so all weights sum to 1.0.
//
// Weight formula: G(x,y) = exp(-(x²+y²)/(2σ²)) around the center cell.
// For sigma <= 0, a default of size/3 is used so the window stays
// meaningfully weighted.
func GaussianKernel(size int, sigma float64) Kernel {
	if sigma <= 0 {
		sigma = float64(size) / 3
	}

	k := newKernel(size)
	half := size / 2
	twoSigmaSq := 2 * sigma * sigma

	sum := 0.0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x - half)
			dy := float64(y - half)
			val := math.Exp(-(dx*dx + dy*dy) / twoSigmaSq)
			k.weights[y*size+x] = val
			sum += val
		}
	}

	// Normalize so the kernel sums to 1.0
	if sum > 0 {
		invSum := 1.0 / sum
		for i := range k.weights {
			k.weights[i] *= invSum
		}
	}

	return k
}

// BoxKernel generates a size x size uniform kernel. All weights are
// 1/size².
//
// Box blur is faster than Gaussian but produces blocky results.
func BoxKernel(size int) Kernel {
	k := newKernel(size)
	val := 1.0 / float64(size*size)
	for i := range k.weights {
		k.weights[i] = val
	}
	return k
}

// IdentityKernel generates a size x size kernel that leaves the image
// unchanged: zero everywhere except a 1 at the center.
func IdentityKernel(size int) Kernel {
	k := newKernel(size)
	k.weights[(size/2)*size+size/2] = 1
	return k
}

// SobelKernels returns the standard 3x3 Sobel gradient pair. The first
// kernel responds to horizontal gradients (Gx), the second to vertical
// gradients (Gy).
func SobelKernels() (gx, gy Kernel) {
	gx = Kernel{size: 3, weights: []float64{
		-1, 0, 1,
		-2, 0, 2,
		-1, 0, 1,
	}}
	gy = Kernel{size: 3, weights: []float64{
		-1, -2, -1,
		0, 0, 0,
		1, 2, 1,
	}}
	return gx, gy
}

// PrewittKernels returns the standard 3x3 Prewitt gradient pair,
// ordered like SobelKernels.
func PrewittKernels() (gx, gy Kernel) {
	gx = Kernel{size: 3, weights: []float64{
		-1, 0, 1,
		-1, 0, 1,
		-1, 0, 1,
	}}
	gy = Kernel{size: 3, weights: []float64{
		-1, -1, -1,
		0, 0, 0,
		1, 1, 1,
	}}
	return gx, gy
}

// UnsharpKernel generates a size x size unsharp-mask kernel: the
// negated box kernel scaled by amount, with 1+amount added at the
// center. Convolving with it computes original + amount*(original -
// boxblur), the classic unsharp mask.
func UnsharpKernel(size int, amount float64) Kernel {
	k := newKernel(size)
	val := -amount / float64(size*size)
	for i := range k.weights {
		k.weights[i] = val
	}
	k.weights[(size/2)*size+size/2] += 1 + amount
	return k
}

// LaplacianKernel generates the fixed 3x3 sharpening kernel
//
//	[  0  -a   0 ]
//	[ -a 1+4a -a ]
//	[  0  -a   0 ]
//
// used by both the laplacian and edge-enhance sharpen modes.
func LaplacianKernel(amount float64) Kernel {
	return Kernel{size: 3, weights: []float64{
		0, -amount, 0,
		-amount, 1 + 4*amount, -amount,
		0, -amount, 0,
	}}
}

// ResizeKernel re-embeds a kernel's weights into a new size, keeping
// them centered: offset = floor((newSize-oldSize)/2). Shrinking crops
// to the center block. When expanding, a center cell that is still
// zero after the copy is set to 1 so the resized kernel keeps an
// identity bias. This is a pipeline-editing convenience and is never
// applied during execution.
func ResizeKernel(k Kernel, newSize int) (Kernel, error) {
	if !validKernelSize(newSize) {
		return Kernel{}, ErrKernelSize
	}
	if newSize == k.size {
		return k, nil
	}

	out := newKernel(newSize)
	offset := (newSize - k.size) / 2
	for y := 0; y < newSize; y++ {
		for x := 0; x < newSize; x++ {
			oy := y - offset
			ox := x - offset
			if oy < 0 || oy >= k.size || ox < 0 || ox >= k.size {
				continue
			}
			out.weights[y*newSize+x] = k.weights[oy*k.size+ox]
		}
	}

	if newSize > k.size {
		center := (newSize/2)*newSize + newSize/2
		if out.weights[center] == 0 {
			out.weights[center] = 1
		}
	}

	return out, nil
}
