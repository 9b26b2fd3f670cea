package algodft

import "github.com/cwbudde/algo-dft/internal/fft"

// TransformReal64 transforms n = plan.Len() real samples in place.
//
// With a Forward plan, data holds the time-domain signal on entry and the
// packed spectrum on return (see the package documentation for the layout).
// With an Inverse plan the direction is reversed and the original signal is
// restored; a Backward plan yields the signal multiplied by n.
//
// The work is one complex transform of length n/2 plus an O(n)
// recombination pass. Returns ErrNilSlice for nil data, ErrInvalidLength if
// the plan is shorter than 2 and ErrLengthMismatch if len(data) != n.
func TransformReal64(data []float64, plan *Plan[complex128]) error {
	if err := plan.validateReal(data == nil, len(data)); err != nil {
		return err
	}

	buf := plan.getScratch()
	defer plan.putScratch(buf)

	packed := (*buf)[:plan.n/2]
	fft.PackFloat64(packed, data)
	plan.transformPacked(packed)
	fft.UnpackFloat64(data, packed)

	return nil
}

// TransformReal32 is the single-precision variant of TransformReal64.
func TransformReal32(data []float32, plan *Plan[complex64]) error {
	if err := plan.validateReal(data == nil, len(data)); err != nil {
		return err
	}

	buf := plan.getScratch()
	defer plan.putScratch(buf)

	packed := (*buf)[:plan.n/2]
	fft.PackFloat32(packed, data)
	plan.transformPacked(packed)
	fft.UnpackFloat32(data, packed)

	return nil
}

func (p *Plan[T]) validateReal(isNil bool, n int) error {
	if isNil {
		return ErrNilSlice
	}

	if p.n < 2 {
		return ErrInvalidLength
	}

	if n != p.n {
		return ErrLengthMismatch
	}

	return nil
}

// transformPacked runs the real transform over the n/2 complex samples
// z[k] = x[2k] + i*x[2k+1]. The last stage of the plan's twiddle table holds
// exp(sign*i*pi*k/(n/2)), the per-bin weights of the recombination.
func (p *Plan[T]) transformPacked(z []T) {
	half := len(z)
	weights := p.factors[half-1:]

	switch p.op {
	case Forward:
		p.transform(z)
		fft.RepackForward(z, weights)
	case Backward:
		fft.RepackInverse(z, weights, 2)
		p.transform(z)
	case Inverse:
		fft.RepackInverse(z, weights, 1)
		p.transform(z)
	}
}
