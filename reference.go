package eventfft

import "github.com/cwbudde/eventfft/internal/reference"

// InitializeReference populates the dense reference adaptor's shadow frame
// (nil for all-zero) and computes its ground-truth 2D-DFT from scratch.
// Requires WithReference.
func (e *Engine) InitializeReference(image [][]complex64) error {
	if !e.referenceEnabled {
		return ErrFeatureDisabled
	}
	shadow, err := toComplex128(image, e.n)
	if err != nil {
		return err
	}
	e.reference.Initialize(shadow)
	return nil
}

// UpdateReference mirrors a single stimulus into the reference adaptor and
// recomputes its transform from scratch. Requires WithReference and a prior
// call to InitializeReference.
func (e *Engine) UpdateReference(s Stimulus) error {
	if !e.referenceEnabled {
		return ErrFeatureDisabled
	}
	if !e.reference.Initialized() {
		return ErrNotInitialized
	}
	if s.Row < 0 || s.Row >= e.n || s.Col < 0 || s.Col >= e.n {
		return ErrOutOfRange
	}
	e.reference.Set(s.Row, s.Col, bool(s.State))
	e.reference.Recompute()
	return nil
}

// UpdateReferenceBatch mirrors a batch of stimuli into the reference
// adaptor, applying the same "on dominates" dedup rule UpdateBatch's leaf
// collapse uses: if a coordinate is written on earlier in the batch, a
// later off for the same coordinate is ignored. Requires WithReference and a
// prior call to InitializeReference.
func (e *Engine) UpdateReferenceBatch(stimuli Stimuli) error {
	if !e.referenceEnabled {
		return ErrFeatureDisabled
	}
	if !e.reference.Initialized() {
		return ErrNotInitialized
	}
	for _, s := range stimuli {
		if s.Row < 0 || s.Row >= e.n || s.Col < 0 || s.Col >= e.n {
			return ErrOutOfRange
		}
	}

	type coord struct{ row, col int }
	activated := make(map[coord]bool, len(stimuli))

	for _, s := range stimuli {
		key := coord{s.Row, s.Col}
		on := bool(s.State) || activated[key]
		activated[key] = on
		e.reference.Set(s.Row, s.Col, on)
	}
	e.reference.Recompute()
	return nil
}

// ReferenceFFT returns the reference adaptor's most recently computed dense
// transform, cast down to complex64. Requires WithReference and a prior call
// to InitializeReference.
func (e *Engine) ReferenceFFT() ([][]complex64, error) {
	if !e.referenceEnabled {
		return nil, ErrFeatureDisabled
	}
	if !e.reference.Initialized() {
		return nil, ErrNotInitialized
	}
	src := e.reference.FFT()
	out := make([][]complex64, e.n)
	for r, row := range src {
		out[r] = make([]complex64, len(row))
		for c, v := range row {
			out[r][c] = complex64(v)
		}
	}
	return out, nil
}

// Check returns ‖FFT() - ReferenceFFT()‖_F. Requires WithReference and a
// prior call to both Initialize and InitializeReference.
func (e *Engine) Check() (float64, error) {
	if !e.referenceEnabled {
		return 0, ErrFeatureDisabled
	}
	if !e.initialized || !e.reference.Initialized() {
		return 0, ErrNotInitialized
	}

	incremental := e.store.Root()
	n := e.n
	a := make([][]complex128, n)
	b := e.reference.FFT()
	for r := 0; r < n; r++ {
		a[r] = make([]complex128, n)
		for c := 0; c < n; c++ {
			a[r][c] = complex128(incremental[r*n+c])
		}
	}
	return reference.Frobenius(a, b), nil
}

func toComplex128(image [][]complex64, n int) ([][]complex128, error) {
	if image == nil {
		return nil, nil
	}
	if len(image) != n {
		return nil, ErrSizeMismatch
	}
	out := make([][]complex128, n)
	for r, row := range image {
		if len(row) != n {
			return nil, ErrSizeMismatch
		}
		out[r] = make([]complex128, n)
		for c, v := range row {
			out[r][c] = complex128(v)
		}
	}
	return out, nil
}

