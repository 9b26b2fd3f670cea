package fft

// ExpandHermitian rebuilds a full spectrum in place from its packed half.
//
// On entry data[0] holds (X[0], X[n/2]) and data[k] = X[k] for 0 < k < n/2,
// i.e. the packed real spectrum read as complex pairs. On return data holds
// X[0..n-1] with X[n-k] = conj(X[k]). len(data) must be a power of two, at least 2.
func ExpandHermitian[T Complex](data []T) {
	n := len(data)
	if n < 2 {
		return
	}

	dc, nyquist := parts(data[0])
	data[0] = complexFromFloat64[T](dc, 0)
	data[n/2] = complexFromFloat64[T](nyquist, 0)

	for k := n/2 + 1; k < n; k++ {
		data[k] = conj(data[n-k])
	}
}

// FoldHermitian is the reverse of ExpandHermitian. It writes the packed
// half of spectrum into dst: dst[0] = (Re X[0], Re X[n/2]) and dst[k] = X[k]
// for 0 < k < n/2. len(dst) must be len(spectrum)/2; bins above n/2 are not
// read.
func FoldHermitian[T Complex](dst, spectrum []T) {
	n := len(spectrum)
	if n < 2 {
		return
	}

	dc, _ := parts(spectrum[0])
	nyquist, _ := parts(spectrum[n/2])
	dst[0] = complexFromFloat64[T](dc, nyquist)
	copy(dst[1:], spectrum[1:n/2])
}
