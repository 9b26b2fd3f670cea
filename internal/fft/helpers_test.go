package fft

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"
)

// naiveDFT is the O(n^2) definition used as the oracle for the engine.
func naiveDFT(x []complex128, sign float64) []complex128 {
	n := len(x)
	out := make([]complex128, n)

	for k := range n {
		var sum complex128

		for t, v := range x {
			angle := sign * 2 * math.Pi * float64(k*t%n) / float64(n)
			sum += v * cmplx.Rect(1, angle)
		}

		out[k] = sum
	}

	return out
}

func randomComplex128(n int, seed int64) []complex128 {
	rng := rand.New(rand.NewSource(seed))

	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}

	return out
}

func randomFloat64(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))

	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}

	return out
}

func assertComplex128SliceClose(t *testing.T, got, want []complex128, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		if cmplx.Abs(got[i]-want[i]) > tol {
			t.Errorf("[%d] got %v, want %v (diff=%g)", i, got[i], want[i], cmplx.Abs(got[i]-want[i]))
		}
	}
}
