package fft

// Rearrange applies the bit-reversal permutation to data in place.
// len(data) must be a power of two.
//
// The target index j is advanced with a carry that runs from the top bit
// down, so no per-index reversal is computed. Each pair is swapped once.
func Rearrange[T any](data []T) {
	n := len(data)
	j := 0

	for i := range n {
		if j > i {
			data[i], data[j] = data[j], data[i]
		}

		mask := n >> 1
		for j&mask != 0 {
			j &^= mask
			mask >>= 1
		}

		j |= mask
	}
}
