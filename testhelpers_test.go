package algodft

import (
	"math/cmplx"
	"math/rand"
	"testing"
)

// Shared test helper functions used across multiple test files

func assertApproxComplex128Tolf(t *testing.T, got, want complex128, tol float64, format string, args ...any) {
	t.Helper()

	if cmplx.Abs(got-want) > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, cmplx.Abs(got-want))...)
	}
}

func assertComplex128SliceClose(t *testing.T, got, want []complex128, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		assertApproxComplex128Tolf(t, got[i], want[i], tol, "index %d", i)
	}
}

// maxRelativeError returns max|got-want| / max|want|.
func maxRelativeError(got, want []complex128) float64 {
	var maxDiff, maxRef float64

	for i := range want {
		maxDiff = max(maxDiff, cmplx.Abs(got[i]-want[i]))
		maxRef = max(maxRef, cmplx.Abs(want[i]))
	}

	if maxRef == 0 {
		return maxDiff
	}

	return maxDiff / maxRef
}

func randomComplex128(n int, seed int64) []complex128 {
	rng := rand.New(rand.NewSource(seed))

	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}

	return out
}

func randomComplex64(n int, seed int64) []complex64 {
	rng := rand.New(rand.NewSource(seed))

	out := make([]complex64, n)
	for i := range out {
		out[i] = complex(rng.Float32()*2-1, rng.Float32()*2-1)
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

func toComplex128(x []float64) []complex128 {
	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = complex(v, 0)
	}

	return out
}

// splitParts returns the real and imaginary parts of x as separate slices.
func splitParts(x []complex128) ([]float64, []float64) {
	re := make([]float64, len(x))
	im := make([]float64, len(x))

	for i, v := range x {
		re[i] = real(v)
		im[i] = imag(v)
	}

	return re, im
}

func mustPlan64(t testing.TB, op Operation, n int) *Plan[complex128] {
	t.Helper()

	plan, err := NewPlan64(op, n)
	if err != nil {
		t.Fatalf("NewPlan64(%s, %d) failed: %v", op, n, err)
	}

	return plan
}
