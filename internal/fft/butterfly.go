package fft

// Butterflies runs the decimation-in-time network over bit-reversed data.
// factors must hold at least len(data)-1 entries laid out by ComputeFactors;
// extra trailing entries are ignored.
func Butterflies[T Complex](data, factors []T) {
	n := len(data)
	k := 0

	for step := 1; step < n; step <<= 1 {
		jump := step << 1

		for m := range step {
			factor := factors[k]

			for i := m; i < n; i += jump {
				j := i + step
				product := factor * data[j]
				data[j] = data[i] - product
				data[i] += product
			}

			k++
		}
	}
}

// Transform performs the unnormalised in-place transform of data: the
// bit-reversal permutation followed by the butterfly network. The direction
// is fixed by the sign baked into factors.
func Transform[T Complex](data, factors []T) {
	if len(data) < 2 {
		return
	}

	Rearrange(data)
	Butterflies(data, factors)
}
