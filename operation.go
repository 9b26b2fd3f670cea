package algodft

import "github.com/cwbudde/algo-dft/internal/fft"

// Operation selects the direction and normalisation of a transform.
type Operation uint8

const (
	// Forward maps time to frequency. No scaling is applied.
	Forward Operation = iota
	// Backward maps frequency to time with the conjugate rotation and no
	// scaling: Backward(Forward(x)) = n*x.
	Backward
	// Inverse is Backward followed by a 1/n scale: Inverse(Forward(x)) = x.
	Inverse
)

// String returns a human-readable name for the operation.
func (op Operation) String() string {
	switch op {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Inverse:
		return "inverse"
	default:
		return "unknown"
	}
}

// Valid reports whether op is one of the defined operations.
func (op Operation) Valid() bool {
	return op <= Inverse
}

// sign is the rotation direction of the operation's twiddle factors.
func (op Operation) sign() float64 {
	return fft.Sign(op != Forward)
}
