package algodft

import "github.com/cwbudde/algo-dft/internal/fft"

// TransformInterleaved64 transforms plan.Len() complex samples stored as
// interleaved (re, im) pairs, so len(data) must be 2*plan.Len().
//
// The pairs are copied into scratch, transformed and copied back.
func TransformInterleaved64(data []float64, plan *Plan[complex128]) error {
	if err := plan.validateInterleaved(data == nil, len(data)); err != nil {
		return err
	}

	buf := plan.getScratch()
	defer plan.putScratch(buf)

	samples := (*buf)[:plan.n]
	fft.PackFloat64(samples, data)
	plan.transform(samples)
	fft.UnpackFloat64(data, samples)

	return nil
}

// TransformInterleaved32 is the single-precision variant of
// TransformInterleaved64.
func TransformInterleaved32(data []float32, plan *Plan[complex64]) error {
	if err := plan.validateInterleaved(data == nil, len(data)); err != nil {
		return err
	}

	buf := plan.getScratch()
	defer plan.putScratch(buf)

	samples := (*buf)[:plan.n]
	fft.PackFloat32(samples, data)
	plan.transform(samples)
	fft.UnpackFloat32(data, samples)

	return nil
}

func (p *Plan[T]) validateInterleaved(isNil bool, n int) error {
	if isNil {
		return ErrNilSlice
	}

	if n != 2*p.n {
		return ErrLengthMismatch
	}

	return nil
}
