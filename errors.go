package algodft

import "errors"

// Sentinel errors returned by plan construction and transforms.
//
// Every transform validates its arguments before it touches the buffer, so
// a call that returns one of these errors leaves the data unchanged.
var (
	// ErrInvalidLength is returned when a transform size is not a positive
	// power of 2, or when a real transform is asked to work on fewer than
	// two samples.
	ErrInvalidLength = errors.New("algodft: invalid transform length")

	// ErrNilSlice is returned when a nil slice is passed to a transform method.
	ErrNilSlice = errors.New("algodft: nil slice")

	// ErrLengthMismatch is returned when a buffer does not match the Plan's
	// size.
	ErrLengthMismatch = errors.New("algodft: slice length mismatch")

	// ErrInvalidStride is returned when a stride parameter is invalid
	// for the given data layout (e.g., stride < 1 or index overflow).
	ErrInvalidStride = errors.New("algodft: invalid stride")

	// ErrInvalidOperation is returned for an Operation value outside
	// Forward, Backward and Inverse.
	ErrInvalidOperation = errors.New("algodft: invalid operation")
)
