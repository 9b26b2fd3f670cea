package algodft

import (
	"github.com/cwbudde/algo-dft/internal/fft"
	m "github.com/cwbudde/algo-dft/internal/math"
)

// Unpack64 expands a packed real spectrum, as produced by TransformReal64
// with a Forward plan, into the full complex spectrum of the same length.
//
// Bins above n/2 are filled from X[n-k] = conj(X[k]). packed is not
// modified. Returns ErrNilSlice for nil input and ErrInvalidLength unless
// len(packed) is a power of two >= 2.
func Unpack64(packed []float64) ([]complex128, error) {
	n, err := validatePacked(packed == nil, len(packed))
	if err != nil {
		return nil, err
	}

	out := make([]complex128, n)
	fft.PackFloat64(out[:n/2], packed)
	fft.ExpandHermitian(out)

	return out, nil
}

// Unpack32 is the single-precision variant of Unpack64.
func Unpack32(packed []float32) ([]complex64, error) {
	n, err := validatePacked(packed == nil, len(packed))
	if err != nil {
		return nil, err
	}

	out := make([]complex64, n)
	fft.PackFloat32(out[:n/2], packed)
	fft.ExpandHermitian(out)

	return out, nil
}

// Pack64 folds a full spectrum of a real signal back into the packed
// format. Only bins 0..n/2 are read; the imaginary parts of the DC and
// Nyquist bins are discarded. Pack64(Unpack64(p)) reproduces p exactly.
func Pack64(spectrum []complex128) ([]float64, error) {
	n, err := validatePacked(spectrum == nil, len(spectrum))
	if err != nil {
		return nil, err
	}

	half := make([]complex128, n/2)
	fft.FoldHermitian(half, spectrum)

	out := make([]float64, n)
	fft.UnpackFloat64(out, half)

	return out, nil
}

// Pack32 is the single-precision variant of Pack64.
func Pack32(spectrum []complex64) ([]float32, error) {
	n, err := validatePacked(spectrum == nil, len(spectrum))
	if err != nil {
		return nil, err
	}

	half := make([]complex64, n/2)
	fft.FoldHermitian(half, spectrum)

	out := make([]float32, n)
	fft.UnpackFloat32(out, half)

	return out, nil
}

func validatePacked(isNil bool, n int) (int, error) {
	if isNil {
		return 0, ErrNilSlice
	}

	if n < 2 || !m.IsPowerOf2(n) {
		return 0, ErrInvalidLength
	}

	return n, nil
}
