package spectrum

import (
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"

	algodft "github.com/cwbudde/algo-dft"
	m "github.com/cwbudde/algo-dft/internal/math"
)

// Bins splits a packed spectrum into the real and imaginary parts of bins
// 0..n/2. The DC and Nyquist bins have zero imaginary part.
func Bins(packed []float64) (re, im []float64, err error) {
	if err := validate(packed); err != nil {
		return nil, nil, err
	}

	n := len(packed)
	half := n / 2

	re = make([]float64, half+1)
	im = make([]float64, half+1)

	re[0] = packed[0]
	re[half] = packed[1]

	for k := 1; k < half; k++ {
		re[k] = packed[2*k]
		im[k] = packed[2*k+1]
	}

	return re, im, nil
}

// Magnitude returns |X[k]| for k = 0..n/2.
func Magnitude(packed []float64) ([]float64, error) {
	re, im, err := Bins(packed)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(re))
	vecmath.Magnitude(out, re, im)

	return out, nil
}

// Power returns |X[k]|^2 for k = 0..n/2.
func Power(packed []float64) ([]float64, error) {
	re, im, err := Bins(packed)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(re))
	vecmath.Power(out, re, im)

	return out, nil
}

// NormalizedMagnitude returns |X[k]|/n for k = 0..n/2, where n is the
// length of the transformed signal. A full-scale cosine at bin k (0 < k < n/2)
// yields 0.5.
func NormalizedMagnitude(packed []float64) ([]float64, error) {
	mag, err := Magnitude(packed)
	if err != nil {
		return nil, err
	}

	vecmath.ScaleBlock(mag, mag, 1/float64(len(packed)))

	return mag, nil
}

// PeakBin returns the index of the largest-magnitude bin in 0..n/2 and its
// magnitude. Ties resolve to the lowest index.
func PeakBin(packed []float64) (int, float64, error) {
	mag, err := Magnitude(packed)
	if err != nil {
		return 0, 0, err
	}

	best := 0
	for k, v := range mag {
		if v > mag[best] {
			best = k
		}
	}

	return best, mag[best], nil
}

func validate(packed []float64) error {
	if packed == nil {
		return fmt.Errorf("spectrum: %w", algodft.ErrNilSlice)
	}

	n := len(packed)
	if n < 2 || !m.IsPowerOf2(n) {
		return fmt.Errorf("spectrum: packed length %d: %w", n, algodft.ErrInvalidLength)
	}

	return nil
}
