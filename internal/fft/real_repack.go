package fft

// RepackForward turns the spectrum z of the packed sequence
// z[k] = x[2k] + i*x[2k+1] into the packed real spectrum of x, in place.
//
// twiddle[k] must be exp(-i*pi*k/h) for k < h/2, h = len(data); the last
// stage of a forward plan for size 2h holds exactly these values.
//
// On return data[0] carries (X[0], X[h]) and data[k] = X[k] for 0 < k < h.
func RepackForward[T Complex](data, twiddle []T) {
	h := len(data)
	if h == 0 {
		return
	}

	re, im := parts(data[0])
	data[0] = complexFromFloat64[T](re+im, re-im)

	if h < 2 {
		return
	}

	rot := complexFromFloat64[T](0, -1)
	half := complexFromFloat64[T](0.5, 0)

	for i := 1; i < h/2; i++ {
		j := h - i
		mirror := conj(data[j])
		part1 := (data[i] + mirror) * half
		part2 := (data[i] - mirror) * half
		product := rot * twiddle[i] * part2

		data[i] = part1 + product
		data[j] = conj(part1 - product)
	}

	data[h/2] = conj(data[h/2])
}

// RepackInverse undoes RepackForward in place, producing the spectrum of the
// packed sequence multiplied by gain. gain 1 reconstructs the exact spectrum;
// the unnormalised backward transform uses gain 2.
//
// twiddle[k] must be exp(+i*pi*k/h), the last stage of a backward plan.
func RepackInverse[T Complex](data, twiddle []T, gain float64) {
	h := len(data)
	if h == 0 {
		return
	}

	x0, xh := parts(data[0])
	data[0] = complexFromFloat64[T](0.5*gain*(x0+xh), 0.5*gain*(x0-xh))

	if h < 2 {
		return
	}

	rot := complexFromFloat64[T](0, 1)
	half := complexFromFloat64[T](0.5*gain, 0)

	for i := 1; i < h/2; i++ {
		j := h - i
		mirror := conj(data[j])
		part1 := (data[i] + mirror) * half
		part2 := (data[i] - mirror) * half
		product := rot * twiddle[i] * part2

		data[i] = part1 + product
		data[j] = conj(part1 - product)
	}

	data[h/2] = conj(data[h/2]) * complexFromFloat64[T](gain, 0)
}
