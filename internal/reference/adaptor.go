package reference

import "math"

// Adaptor mirrors an incremental engine's pixel state into a shadow buffer
// and recomputes the full dense transform from scratch whenever asked,
// giving callers a ground truth to check the incremental result against.
type Adaptor struct {
	n           int
	frame       [][]complex128
	dense       *Dense2D
	fft         [][]complex128
	initialized bool
}

// NewAdaptor builds an adaptor for n x n frames.
func NewAdaptor(n int) *Adaptor {
	return &Adaptor{n: n, dense: NewDense2D(n)}
}

// Initialized reports whether Initialize has been called.
func (a *Adaptor) Initialized() bool {
	return a.initialized
}

// Initialize sets the shadow frame (nil for all-zero) and recomputes.
func (a *Adaptor) Initialize(image [][]complex128) {
	if image == nil {
		image = make([][]complex128, a.n)
		for r := range image {
			image[r] = make([]complex128, a.n)
		}
	}
	a.frame = image
	a.initialized = true
	a.Recompute()
}

// Set writes a single pixel into the shadow frame without recomputing.
func (a *Adaptor) Set(row, col int, on bool) {
	if on {
		a.frame[row][col] = 1
	} else {
		a.frame[row][col] = 0
	}
}

// Recompute runs the dense transform over the current shadow frame.
func (a *Adaptor) Recompute() {
	a.fft = a.dense.Transform(a.frame)
}

// FFT returns the most recently computed dense transform.
func (a *Adaptor) FFT() [][]complex128 {
	return a.fft
}

// Frobenius returns ‖a - b‖_F for two equally-shaped complex128 matrices.
func Frobenius(a, b [][]complex128) float64 {
	var sumSq float64
	for r := range a {
		for c := range a[r] {
			d := a[r][c] - b[r][c]
			sumSq += real(d)*real(d) + imag(d)*imag(d)
		}
	}
	return math.Sqrt(sumSq)
}
