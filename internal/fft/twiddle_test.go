package fft

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"
)

func TestComputeFactors(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 4, 8, 64, 1024} {
		for _, inverse := range []bool{false, true} {
			t.Run(fmt.Sprintf("n=%d/inverse=%v", n, inverse), func(t *testing.T) {
				t.Parallel()

				sign := Sign(inverse)
				factors := ComputeFactors[complex128](n, sign)

				if len(factors) != n-1 {
					t.Fatalf("len(factors) = %d, want %d", len(factors), n-1)
				}

				for step := 1; step < n; step <<= 1 {
					stage := StageFactors(factors, step)
					for m, got := range stage {
						want := cmplx.Rect(1, sign*math.Pi*float64(m)/float64(step))
						if cmplx.Abs(got-want) > 1e-13 {
							t.Errorf("step=%d m=%d: got %v, want %v", step, m, got, want)
						}
					}
				}
			})
		}
	}
}

func TestComputeFactorsTrivialSizes(t *testing.T) {
	t.Parallel()

	if got := ComputeFactors[complex128](1, -1); len(got) != 0 {
		t.Errorf("ComputeFactors(1) = %v, want empty", got)
	}

	if got := ComputeFactors[complex64](2, -1); len(got) != 1 || got[0] != 1 {
		t.Errorf("ComputeFactors(2) = %v, want [1]", got)
	}
}

func TestComputeFactorsPrefix(t *testing.T) {
	t.Parallel()

	small := ComputeFactors[complex128](64, -1)
	large := ComputeFactors[complex128](128, -1)

	for i, v := range small {
		if large[i] != v {
			t.Fatalf("factor %d differs: %v vs %v", i, large[i], v)
		}
	}
}

func TestComputeFactorsComplex64(t *testing.T) {
	t.Parallel()

	wide := ComputeFactors[complex128](256, 1)
	narrow := ComputeFactors[complex64](256, 1)

	for i := range wide {
		want := complex64(wide[i])
		if narrow[i] != want {
			t.Errorf("factor %d: got %v, want %v", i, narrow[i], want)
		}
	}
}
