package fft

import "testing"

func TestScaleInPlace(t *testing.T) {
	t.Parallel()

	data := []complex128{complex(2, -4), complex(8, 6)}
	ScaleInPlace(data, 0.5)

	want := []complex128{complex(1, -2), complex(4, 3)}
	assertComplex128SliceClose(t, data, want, 0)
}

func TestScaleInPlaceUnityIsNoop(t *testing.T) {
	t.Parallel()

	data := []complex64{complex(1.5, -2.5)}
	ScaleInPlace(data, 1)

	if data[0] != complex(1.5, -2.5) {
		t.Errorf("data[0] = %v, want (1.5-2.5i)", data[0])
	}
}
