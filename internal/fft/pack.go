package fft

// PackFloat64 copies interleaved (re, im) pairs from src into dst.
// len(src) must be 2*len(dst).
func PackFloat64(dst []complex128, src []float64) {
	for k := range dst {
		dst[k] = complex(src[2*k], src[2*k+1])
	}
}

// UnpackFloat64 copies dst back into interleaved (re, im) pairs.
func UnpackFloat64(dst []float64, src []complex128) {
	for k, v := range src {
		dst[2*k] = real(v)
		dst[2*k+1] = imag(v)
	}
}

// PackFloat32 copies interleaved (re, im) pairs from src into dst.
func PackFloat32(dst []complex64, src []float32) {
	for k := range dst {
		dst[k] = complex(src[2*k], src[2*k+1])
	}
}

// UnpackFloat32 copies dst back into interleaved (re, im) pairs.
func UnpackFloat32(dst []float32, src []complex64) {
	for k, v := range src {
		dst[2*k] = real(v)
		dst[2*k+1] = imag(v)
	}
}
