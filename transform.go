package algodft

import "github.com/cwbudde/algo-dft/internal/fft"

// Transform performs the plan's operation on data in place.
//
// Returns ErrNilSlice if data is nil and ErrLengthMismatch if
// len(data) != p.Len(). In both cases data is left untouched.
func (p *Plan[T]) Transform(data []T) error {
	if data == nil {
		return ErrNilSlice
	}

	if len(data) != p.n {
		return ErrLengthMismatch
	}

	p.transform(data)

	return nil
}

// transform runs the engine over data, whose length may be any power of two
// up to p.n. The first len(data)-1 factors of a plan form the table for
// len(data), so a plan also serves every smaller size.
func (p *Plan[T]) transform(data []T) {
	fft.Transform(data, p.factors)

	if p.op == Inverse {
		fft.ScaleInPlace(data, 1/float64(len(data)))
	}
}
