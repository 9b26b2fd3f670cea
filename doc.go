// Package algodft computes the discrete Fourier transform of power-of-two
// length sequences in place.
//
// A Plan holds the twiddle factors for one (operation, size) pair. Building
// a plan is the only place trigonometric functions are evaluated; the plan is
// immutable afterwards and may be shared by any number of goroutines, each
// transforming its own buffer.
//
//	plan, err := algodft.NewPlan64(algodft.Forward, 1024)
//	if err != nil {
//		return err
//	}
//	err = plan.Transform(samples) // samples []complex128, len 1024
//
// Three operations are supported. Forward maps time to frequency without
// normalisation. Backward applies the opposite rotation, also without
// normalisation, so Backward(Forward(x)) = n*x. Inverse is Backward scaled by
// 1/n, so Inverse(Forward(x)) = x.
//
// # Real data
//
// TransformReal64 and TransformReal32 transform n real samples with a plan
// of size n at roughly half the cost of a complex transform of the same
// length. The result is written back in the packed format
//
//	data[0]            = X[0]      (DC, real)
//	data[1]            = X[n/2]    (Nyquist, real)
//	data[2k], data[2k+1] = Re X[k], Im X[k]   for 0 < k < n/2
//
// The remaining bins follow from X[n-k] = conj(X[k]). Unpack64 expands the
// packed form into the full complex spectrum and Pack64 folds it back.
// Applying an Inverse plan to a packed spectrum restores the real signal.
package algodft
