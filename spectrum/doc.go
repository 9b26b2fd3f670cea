// Package spectrum derives per-bin quantities from the packed real spectrum
// written by algodft.TransformReal64.
//
// A packed spectrum of n values describes the n/2+1 non-redundant bins
// X[0..n/2]; every function here returns one value per such bin.
package spectrum
