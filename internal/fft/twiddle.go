package fft

import "math"

// Sign returns the rotation sign for a transform direction: -1 for the
// forward transform and +1 for the backward one.
func Sign(inverse bool) float64 {
	if inverse {
		return 1
	}

	return -1
}

// ComputeFactors returns the flattened twiddle table for a size-n radix-2
// network. Stage step (1, 2, 4, ... < n) contributes step factors
// exp(sign*i*pi*m/step), m = 0..step-1, so the table holds n-1 entries.
//
// Each stage costs one sin pair; the factors inside a stage follow the
// recurrence factor = factor*multiplier + factor with
// multiplier = (-2*sin^2(theta/2), sin(theta)).
//
// The recurrence runs in float64 regardless of T. A table for size n starts
// with the table for size n/2.
func ComputeFactors[T Complex](n int, sign float64) []T {
	if n <= 1 {
		return []T{}
	}

	factors := make([]T, 0, n-1)

	for step := 1; step < n; step <<= 1 {
		theta := sign * math.Pi / float64(step)
		sine := math.Sin(0.5 * theta)
		mulRe, mulIm := -2*sine*sine, math.Sin(theta)

		re, im := 1.0, 0.0
		for range step {
			factors = append(factors, complexFromFloat64[T](re, im))
			re, im = re*mulRe-im*mulIm+re, re*mulIm+im*mulRe+im
		}
	}

	return factors
}

// StageFactors returns the slice of factors that stage step consumes.
func StageFactors[T Complex](factors []T, step int) []T {
	return factors[step-1 : 2*step-1]
}
