package eventfft

import "errors"

// Sentinel errors returned by Engine operations.
var (
	// ErrInvalidLength is returned when the frame size passed to NewEngine
	// is not a power of two in the supported range.
	ErrInvalidLength = errors.New("eventfft: invalid frame size")

	// ErrSizeMismatch is returned when Initialize is given a matrix whose
	// side does not equal the engine's frame size.
	ErrSizeMismatch = errors.New("eventfft: size mismatch")

	// ErrOutOfRange is returned when a stimulus addresses a row or column
	// outside [0, N).
	ErrOutOfRange = errors.New("eventfft: stimulus out of range")

	// ErrNotInitialized is returned when Update, UpdateBatch or FFT is
	// called before Initialize.
	ErrNotInitialized = errors.New("eventfft: engine not initialized")

	// ErrAlreadyInitialized is returned when Initialize is called twice on
	// the same engine.
	ErrAlreadyInitialized = errors.New("eventfft: engine already initialized")

	// ErrFeatureDisabled is returned when a reference-adaptor method is
	// called on an engine constructed without WithReference.
	ErrFeatureDisabled = errors.New("eventfft: reference feature disabled")
)
