package algodft

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-dft/internal/fft"
	m "github.com/cwbudde/algo-dft/internal/math"
)

// Plan holds the precomputed twiddle factors for transforms of one size in
// one direction.
//
// A Plan is immutable after construction and safe for concurrent use as long
// as each call works on its own buffer. Plans must not be copied; use the
// pointer returned by NewPlan.
type Plan[T Complex] struct {
	n       int
	op      Operation
	factors []T

	// scratch holds *[]T of length n for the paths that cannot work on the
	// caller's buffer directly (real, interleaved, strided).
	scratch sync.Pool
}

// NewPlan creates a plan for transforms of length n.
//
// Returns ErrInvalidLength if n is not a positive power of 2 and
// ErrInvalidOperation if op is not a defined Operation.
func NewPlan[T Complex](op Operation, n int) (*Plan[T], error) {
	if !op.Valid() {
		return nil, ErrInvalidOperation
	}

	if !m.IsPowerOf2(n) {
		return nil, ErrInvalidLength
	}

	return &Plan[T]{
		n:       n,
		op:      op,
		factors: fft.ComputeFactors[T](n, op.sign()),
	}, nil
}

// NewPlan64 creates a double-precision plan.
func NewPlan64(op Operation, n int) (*Plan[complex128], error) {
	return NewPlan[complex128](op, n)
}

// NewPlan32 creates a single-precision plan. The twiddle factors are
// computed in float64 and rounded once.
func NewPlan32(op Operation, n int) (*Plan[complex64], error) {
	return NewPlan[complex64](op, n)
}

// MustNewPlan is like NewPlan but panics on error. It is intended for sizes
// fixed at compile time, where a bad size is a programming error.
func MustNewPlan[T Complex](op Operation, n int) *Plan[T] {
	plan, err := NewPlan[T](op, n)
	if err != nil {
		panic(fmt.Sprintf("algodft: NewPlan(%s, %d): %v", op, n, err))
	}

	return plan
}

// Len returns the transform size.
func (p *Plan[T]) Len() int {
	return p.n
}

// Operation returns the operation the plan was built for.
func (p *Plan[T]) Operation() Operation {
	return p.op
}

// Stages returns the number of butterfly stages, log2(Len()).
func (p *Plan[T]) Stages() int {
	return m.Log2(p.n)
}

// Factors returns a copy of the flattened twiddle table: Len()-1 factors,
// stage by stage, in the order the butterfly network consumes them.
func (p *Plan[T]) Factors() []T {
	out := make([]T, len(p.factors))
	copy(out, p.factors)

	return out
}

// String implements fmt.Stringer.
func (p *Plan[T]) String() string {
	return fmt.Sprintf("Plan[%T](%s, n=%d)", *new(T), p.op, p.n)
}

func (p *Plan[T]) getScratch() *[]T {
	if buf, ok := p.scratch.Get().(*[]T); ok {
		return buf
	}

	buf := make([]T, p.n)

	return &buf
}

func (p *Plan[T]) putScratch(buf *[]T) {
	p.scratch.Put(buf)
}
