package fft

import (
	"fmt"
	"testing"

	m "github.com/cwbudde/algo-dft/internal/math"
)

func TestRearrangeMatchesReference(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 4, 8, 16, 128, 1024} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			data := make([]int, n)
			for i := range data {
				data[i] = i
			}

			Rearrange(data)

			want := m.ComputeBitReversalIndices(n)
			for i := range data {
				if data[i] != want[i] {
					t.Fatalf("data[%d] = %d, want %d", i, data[i], want[i])
				}
			}
		})
	}
}

func TestRearrangeSelfInverse(t *testing.T) {
	t.Parallel()

	data := randomComplex128(256, 7)
	orig := append([]complex128(nil), data...)

	Rearrange(data)
	Rearrange(data)

	for i := range data {
		if data[i] != orig[i] {
			t.Fatalf("data[%d] = %v, want %v", i, data[i], orig[i])
		}
	}
}

func BenchmarkRearrange(b *testing.B) {
	data := randomComplex128(4096, 1)

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		Rearrange(data)
	}
}
