// Package fft implements the radix-2 transform engine: twiddle tables,
// the in-place bit-reversal permutation, the decimation-in-time butterfly
// network and the real-data recombination steps.
//
// The functions here perform no validation. Callers in the root package
// check lengths before handing slices over.
package fft

import "github.com/cwbudde/algo-dft/internal/fftypes"

// Complex is a type alias for the complex number constraint.
// The canonical definition is in internal/fftypes.
type Complex = fftypes.Complex

// complexFromFloat64 creates a complex number of type T from float64 components.
func complexFromFloat64[T Complex](re, im float64) T {
	var zero T

	switch any(zero).(type) {
	case complex64:
		result, _ := any(complex(float32(re), float32(im))).(T)
		return result
	case complex128:
		result, _ := any(complex(re, im)).(T)
		return result
	default:
		panic("unsupported complex type")
	}
}

// parts returns the real and imaginary components of val as float64.
func parts[T Complex](val T) (float64, float64) {
	switch v := any(val).(type) {
	case complex64:
		return float64(real(v)), float64(imag(v))
	case complex128:
		return real(v), imag(v)
	default:
		panic("unsupported complex type")
	}
}

// conj returns the complex conjugate of val.
func conj[T Complex](val T) T {
	switch v := any(val).(type) {
	case complex64:
		return any(complex(real(v), -imag(v))).(T)
	case complex128:
		return any(complex(real(v), -imag(v))).(T)
	default:
		panic("unsupported complex type")
	}
}
