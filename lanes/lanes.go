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

/*
Package lanes defines the memory layouts shared by the vectorized
pair-HMM kernels.

Every layout is a fixed block of bytes that can be viewed, without
copying or converting, as packed floating-point lanes, as packed
integers of the same total width, as two half-width blocks, or as
per-lane masks. The views are unsafe reinterpretations of the same
memory: a value stored through one view is read back bit-for-bit
through any other.

There are two families. The single-precision family packs 8 float32
lanes in a vector, the double-precision family packs 4 float64 lanes.
Both use vectors of VectorBytes bytes, and layouts allocated with
MakeMixF or MakeMixD are aligned to Alignment bytes, so that the same
aligned loads and stores serve every interpretation.
*/
package lanes

import (
	"log"
	"unsafe"

	"golang.org/x/sys/cpu"
)

const (
	// VectorBytes is the width of a wide vector.
	VectorBytes = 32

	// HalfBytes is the width of a narrow vector.
	HalfBytes = VectorBytes / 2

	// Alignment is the alignment of vectors allocated by this package.
	Alignment = 32

	// SingleLanes is the number of float32 lanes in a wide vector.
	SingleLanes = VectorBytes / 4

	// DoubleLanes is the number of float64 lanes in a wide vector.
	DoubleLanes = VectorBytes / 8
)

// NativeWidth reports whether the CPU has native VectorBytes-wide
// floating-point vectors.
func NativeWidth() bool {
	return cpu.X86.HasAVX
}

// IsAligned reports whether p is aligned to Alignment bytes.
func IsAligned(p unsafe.Pointer) bool {
	return uintptr(p)%Alignment == 0
}

/*
Transmute reinterprets the memory p points to as a To.

Both types must have the same size, and p must be suitably aligned
for To. Transmute panics otherwise. The result aliases p.
*/
func Transmute[To, From any](p *From) *To {
	var to To
	var from From
	if unsafe.Sizeof(to) != unsafe.Sizeof(from) {
		log.Panicf("cannot transmute %v bytes to %v bytes", unsafe.Sizeof(from), unsafe.Sizeof(to))
	}
	if uintptr(unsafe.Pointer(p))%unsafe.Alignof(to) != 0 {
		log.Panicf("address %p is not aligned to %v bytes", p, unsafe.Alignof(to))
	}
	return (*To)(unsafe.Pointer(p))
}

// makeAligned allocates n values of a pointer-free layout type whose
// first element is aligned to Alignment bytes.
func makeAligned[T any](n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	buf := make([]byte, n*size+Alignment-1)
	base := unsafe.Pointer(&buf[0])
	offset := int((Alignment - uintptr(base)%Alignment) % Alignment)
	return unsafe.Slice((*T)(unsafe.Pointer(&buf[offset])), n)
}

// MakeMixF allocates n aligned single-precision vectors.
func MakeMixF(n int) []MixF {
	return makeAligned[MixF](n)
}

// MakeMixD allocates n aligned double-precision vectors.
func MakeMixD(n int) []MixD {
	return makeAligned[MixD](n)
}

func selectBits(dst, mask, a, b []uint64) {
	for i := range dst {
		dst[i] = (a[i] & mask[i]) | (b[i] &^ mask[i])
	}
}

func maskWord32(on bool) uint32 {
	if on {
		return ^uint32(0)
	}
	return 0
}

func maskWord64(on bool) uint64 {
	if on {
		return ^uint64(0)
	}
	return 0
}
