package eventfft

import (
	"github.com/cwbudde/eventfft/internal/metrics"
	"github.com/cwbudde/eventfft/internal/reference"
	"github.com/cwbudde/eventfft/internal/tree"
)

// Engine maintains the 2D-DFT of an N×N binary frame under a stream of
// point and batch pixel mutations.
//
// Engine is not safe for concurrent use: every method must run to
// completion on the calling goroutine before another call begins, and
// separate Engine instances share no state.
type Engine struct {
	n           int
	twiddle     tree.Twiddle[complex64]
	store       *tree.Store[complex64]
	initialized bool

	metrics *metrics.Recorder

	referenceEnabled bool
	reference        *reference.Adaptor
}

// NewEngine builds an Engine for an n x n frame. n must be a power of two
// in [4, 1024].
func NewEngine(n int, opts ...Option) (*Engine, error) {
	if !validSize(n) {
		return nil, ErrInvalidLength
	}

	cfg := &engineConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	e := &Engine{
		n:                n,
		twiddle:          tree.NewTwiddle[complex64](n),
		store:            tree.NewStore[complex64](n),
		referenceEnabled: cfg.reference,
	}
	if cfg.reference {
		e.reference = reference.NewAdaptor(n)
	}
	if cfg.registry != nil {
		e.metrics = metrics.NewRecorder(cfg.registry)
	}
	return e, nil
}

func validSize(n int) bool {
	if n < 4 || n > 1024 {
		return false
	}
	return n&(n-1) == 0
}

// FrameSize returns N.
func (e *Engine) FrameSize() int {
	return e.n
}

// Initialize builds the tree from image (row-major, n x n), or from an
// all-zero frame if image is nil.
func (e *Engine) Initialize(image [][]complex64) error {
	if e.initialized {
		return ErrAlreadyInitialized
	}
	flat, err := flattenComplex64(image, e.n)
	if err != nil {
		return err
	}
	tree.Build(e.store, e.twiddle, flat)
	e.initialized = true
	return nil
}

// Update applies a single Stimulus and reports whether it changed the frame.
func (e *Engine) Update(s Stimulus) (bool, error) {
	if !e.initialized {
		return false, ErrNotInitialized
	}
	if s.Row < 0 || s.Row >= e.n || s.Col < 0 || s.Col >= e.n {
		return false, ErrOutOfRange
	}
	changed, depth := tree.Update(e.store, e.twiddle, s.Row, s.Col, bool(s.State))
	e.metrics.ObservePoint(changed, depth)
	return changed, nil
}

// UpdateBatch applies stimuli in a single amortized tree descent and
// reports whether any of them changed the frame. The stimuli are copied
// into an internal event slice that the tree descent reorders and shifts,
// so the caller's slice is left unchanged.
func (e *Engine) UpdateBatch(stimuli Stimuli) (bool, error) {
	if !e.initialized {
		return false, ErrNotInitialized
	}
	for _, s := range stimuli {
		if s.Row < 0 || s.Row >= e.n || s.Col < 0 || s.Col >= e.n {
			return false, ErrOutOfRange
		}
	}
	if len(stimuli) == 0 {
		return false, nil
	}

	events := make([]tree.Event, len(stimuli))
	for i, s := range stimuli {
		events[i] = tree.Event{Row: s.Row, Col: s.Col, On: bool(s.State)}
	}

	batchSize := len(stimuli)
	if e.metrics != nil {
		type coord struct{ row, col int }
		distinct := make(map[coord]struct{}, len(stimuli))
		for _, s := range stimuli {
			distinct[coord{s.Row, s.Col}] = struct{}{}
		}
		batchSize = len(distinct)
	}

	changed, depth := tree.UpdateBatch(e.store, e.twiddle, events)
	e.metrics.ObserveBatch(batchSize, changed, depth)
	return changed, nil
}

// UpdateBatchCopy copies stimuli once and passes the copy to UpdateBatch.
// Its result is the same as calling UpdateBatch directly, which also leaves
// the caller's slice unchanged.
func (e *Engine) UpdateBatchCopy(stimuli Stimuli) (bool, error) {
	cp := make(Stimuli, len(stimuli))
	copy(cp, stimuli)
	return e.UpdateBatch(cp)
}

// FFT returns a fresh n x n copy of the current 2D-DFT.
func (e *Engine) FFT() ([][]complex64, error) {
	if !e.initialized {
		return nil, ErrNotInitialized
	}
	return unflattenComplex64(e.store.Root(), e.n), nil
}

// Frame returns a fresh n x n copy of the current logical binary frame,
// where 1 means On and 0 means Off.
func (e *Engine) Frame() ([][]byte, error) {
	if !e.initialized {
		return nil, ErrNotInitialized
	}
	out := make([][]byte, e.n)
	for r := range out {
		out[r] = make([]byte, e.n)
	}
	for p := 0; p < e.n*e.n; p++ {
		leaf := e.store.At(0, p)
		row, col := leafCoordinate(p, e.store.Levels())
		if real(leaf[0]) != 0 {
			out[row][col] = 1
		}
	}
	return out, nil
}

// leafCoordinate inverts the (level,pos) addressing the tree package uses:
// pos's base-4 digits encode, from most significant to least, the
// (row-bit, col-bit) pair chosen at each split from the root down to the
// leaf — the most significant digit is the coarsest split (original bit 0),
// the least significant is the finest (original bit levels-1).
func leafCoordinate(pos, levels int) (row, col int) {
	for m := 0; m < levels; m++ {
		digit := (pos >> uint(2*m)) & 0x3
		bitIndex := uint(levels - 1 - m)
		row |= (digit >> 1) << bitIndex
		col |= (digit & 1) << bitIndex
	}
	return row, col
}

func flattenComplex64(image [][]complex64, n int) ([]complex64, error) {
	flat := make([]complex64, n*n)
	if image == nil {
		return flat, nil
	}
	if len(image) != n {
		return nil, ErrSizeMismatch
	}
	for r, row := range image {
		if len(row) != n {
			return nil, ErrSizeMismatch
		}
		copy(flat[r*n:(r+1)*n], row)
	}
	return flat, nil
}

func unflattenComplex64(flat []complex64, n int) [][]complex64 {
	out := make([][]complex64, n)
	for r := 0; r < n; r++ {
		out[r] = append([]complex64(nil), flat[r*n:(r+1)*n]...)
	}
	return out
}
