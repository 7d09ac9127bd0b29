// elPrep: a high-performance tool for analyzing SAM/BAM files.
// Copyright (c) 2020 imec vzw.

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version, and Additional Terms
// (see below).

// This program is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public
// License and Additional Terms along with this program. If not, see
// <https://github.com/ExaScience/elprep/blob/master/LICENSE.txt>.

// Package precision provides the numeric context of the pair-HMM
// forward computation: phred-to-probability tables and the constants
// that keep long products of small probabilities from underflowing.
//
// The same recurrence is evaluated in single and in double precision.
// Everything that differs between the two lives behind the Precision
// contract, so that code written against Context[T] behaves correctly
// for both float32 and float64.
package precision

import (
	"unsafe"

	"github.com/exascience/phmm/lanes"
	"golang.org/x/exp/constraints"
)

// Float is the set of types a Context can be instantiated with.
type Float interface {
	constraints.Float
}

// PhredTableSize is the number of phred qualities with a precomputed
// error probability.
const PhredTableSize = 128

// Precision supplies the precision-specific operations and constants
// of a Context. Implementations must use the native arithmetic of T:
// a float32 context must not borrow float64 transcendental routines,
// because the accumulated rounding error of the recurrence is
// calibrated per precision.
type Precision[T Float] interface {
	// Pow returns x**y.
	Pow(x, y T) T

	// Log10 returns the decimal logarithm of x.
	Log10(x T) T

	// InitialScale is the factor accumulators are multiplied with
	// before the recurrence starts.
	InitialScale() T

	// ResultFloor is the magnitude below which a final result is
	// indistinguishable from zero.
	ResultFloor() T
}

// A Context holds the precomputed constants for one precision.
//
// A Context is immutable after New returns. It is safe for concurrent
// use by multiple goroutines.
type Context[T Float] struct {
	precision         Precision[T]
	phredToProb       [PhredTableSize]T
	initialScale      T
	log10InitialScale T
	resultFloor       T
}

// New computes a Context for the given precision.
func New[T Float](p Precision[T]) *Context[T] {
	c := &Context[T]{precision: p}
	for q := range c.phredToProb {
		c.phredToProb[q] = p.Pow(10, -T(q)/10)
	}
	c.initialScale = p.InitialScale()
	c.log10InitialScale = p.Log10(c.initialScale)
	c.resultFloor = p.ResultFloor()
	return c
}

// NewSingle computes the float32 Context.
func NewSingle() *Context[float32] {
	return New[float32](Single{})
}

// NewDouble computes the float64 Context.
func NewDouble() *Context[float64] {
	return New[float64](Double{})
}

// PhredToProb returns a copy of the phred-to-probability table. Entry
// q holds 10^(-q/10).
func (c *Context[T]) PhredToProb() [PhredTableSize]T {
	return c.phredToProb
}

// Prob returns 10^(-q/10). Qualities outside the table are clamped to
// its bounds.
func (c *Context[T]) Prob(q int) T {
	switch {
	case q < 0:
		q = 0
	case q >= PhredTableSize:
		q = PhredTableSize - 1
	}
	return c.phredToProb[q]
}

// InitialScale returns the factor the recurrence multiplies its
// initial condition with.
func (c *Context[T]) InitialScale() T {
	return c.initialScale
}

// Log10InitialScale returns log10(InitialScale()), to be subtracted
// from the log10 of a scaled result.
func (c *Context[T]) Log10InitialScale() T {
	return c.log10InitialScale
}

// ResultFloor returns the smallest result that is still meaningful.
func (c *Context[T]) ResultFloor() T {
	return c.resultFloor
}

// BelowFloor reports whether a scaled result is too small to be
// trusted in this precision.
func (c *Context[T]) BelowFloor(v T) bool {
	return v < c.resultFloor
}

// Log10 is the decimal logarithm in the native arithmetic of T.
func (c *Context[T]) Log10(v T) T {
	return c.precision.Log10(v)
}

// Descale converts a result scaled by InitialScale() to its log10.
func (c *Context[T]) Descale(v T) T {
	return c.precision.Log10(v) - c.log10InitialScale
}

// FromFloat32 converts a float32 constant to T.
func (c *Context[T]) FromFloat32(v float32) T {
	return T(v)
}

// FromFloat64 converts a float64 constant to T. Narrowing to float32
// rounds.
func (c *Context[T]) FromFloat64(v float64) T {
	return T(v)
}

// Lanes returns the number of T values in one vector of
// lanes.VectorBytes bytes.
func (c *Context[T]) Lanes() int {
	var zero T
	return lanes.VectorBytes / int(unsafe.Sizeof(zero))
}
