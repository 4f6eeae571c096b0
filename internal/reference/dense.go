// Package reference computes the 2D DFT from scratch via a real FFT
// library, for use as a correctness oracle against the incremental tree.
package reference

import "gonum.org/v1/gonum/dsp/fourier"

// Dense2D computes the dense 2D DFT of an n x n complex matrix by composing
// two passes of 1D FFTs, one across rows and one across the resulting
// columns — the standard separability of the 2D DFT.
type Dense2D struct {
	n   int
	fft *fourier.CmplxFFT
}

// NewDense2D builds a dense transformer for n x n frames.
func NewDense2D(n int) *Dense2D {
	return &Dense2D{n: n, fft: fourier.NewCmplxFFT(n)}
}

// Transform returns the 2D DFT of frame (row-major n x n, not mutated).
func (d *Dense2D) Transform(frame [][]complex128) [][]complex128 {
	n := d.n

	rows := make([][]complex128, n)
	for r := 0; r < n; r++ {
		rows[r] = d.fft.Coefficients(nil, frame[r])
	}

	out := make([][]complex128, n)
	for v := 0; v < n; v++ {
		out[v] = make([]complex128, n)
	}

	col := make([]complex128, n)
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			col[r] = rows[r][c]
		}
		res := d.fft.Coefficients(nil, col)
		for v := 0; v < n; v++ {
			out[v][c] = res[v]
		}
	}

	return out
}
