// Package fftypes holds the type constraints shared by the transform engine
// and the public API.
package fftypes

// Complex is a type constraint for the complex sample types the engine
// transforms.
type Complex interface {
	~complex64 | ~complex128
}

// Float is a type constraint for the real sample types accepted by the
// real-data transforms.
type Float interface {
	~float32 | ~float64
}
