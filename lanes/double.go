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

package lanes

import (
	"math"
	"unsafe"
)

// MixD is a wide double-precision vector: 4 float64 lanes, 4 int64
// lanes, or two IF128D halves.
type MixD struct {
	bits [4]uint64
}

// Floats views v as 4 float64 lanes.
func (v *MixD) Floats() *[DoubleLanes]float64 {
	return (*[DoubleLanes]float64)(unsafe.Pointer(&v.bits))
}

// Ints views v as 4 int64 lanes.
func (v *MixD) Ints() *[DoubleLanes]int64 {
	return (*[DoubleLanes]int64)(unsafe.Pointer(&v.bits))
}

// Halves views v as its low and high 128-bit halves.
func (v *MixD) Halves() *[2]IF128D {
	return (*[2]IF128D)(unsafe.Pointer(&v.bits))
}

// Masks views v as two narrow masks.
func (v *MixD) Masks() *[2]MaskVecD {
	return (*[2]MaskVecD)(unsafe.Pointer(&v.bits))
}

// Bits views v as raw 64-bit words.
func (v *MixD) Bits() *[4]uint64 {
	return &v.bits
}

// Broadcast sets all lanes of v to f.
func (v *MixD) Broadcast(f float64) {
	lanes := v.Floats()
	for i := range lanes {
		lanes[i] = f
	}
}

// SetLaneMask sets lane i of v to all ones or all zeros.
func (v *MixD) SetLaneMask(i int, on bool) {
	v.bits[i] = maskWord64(on)
}

// Select sets each bit of v to the bit of a where mask is set, and to
// the bit of b otherwise. v may alias any of the arguments.
func (v *MixD) Select(mask, a, b *MixD) {
	selectBits(v.bits[:], mask.bits[:], a.bits[:], b.bits[:])
}

// IF128D is a narrow double-precision vector: 2 int64 or 2 float64
// lanes.
type IF128D struct {
	bits [2]uint64
}

// Ints views v as 2 int64 lanes.
func (v *IF128D) Ints() *[2]int64 {
	return (*[2]int64)(unsafe.Pointer(&v.bits))
}

// Floats views v as 2 float64 lanes.
func (v *IF128D) Floats() *[2]float64 {
	return (*[2]float64)(unsafe.Pointer(&v.bits))
}

// Select is the narrow variant of MixD.Select.
func (v *IF128D) Select(mask *MaskVecD, a, b *IF128D) {
	selectBits(v.bits[:], mask.bits[:], a.bits[:], b.bits[:])
}

// MaskVecD is a narrow double-precision mask. Each 64-bit lane is
// either all ones or all zeros.
type MaskVecD struct {
	bits [2]uint64
}

// Vec views m as 2 int64 lanes.
func (m *MaskVecD) Vec() *[2]int64 {
	return (*[2]int64)(unsafe.Pointer(&m.bits))
}

// Floats views m as 2 float64 lanes.
func (m *MaskVecD) Floats() *[2]float64 {
	return (*[2]float64)(unsafe.Pointer(&m.bits))
}

// Masks views m as 2 mask words.
func (m *MaskVecD) Masks() *[2]uint64 {
	return &m.bits
}

// SetLane sets lane i to all ones if on, to all zeros otherwise.
func (m *MaskVecD) SetLane(i int, on bool) {
	m.bits[i] = maskWord64(on)
}

// Lane reports whether lane i is set.
func (m *MaskVecD) Lane(i int) bool {
	return m.bits[i] != 0
}

// IF64 is one int64 or float64 lane, for scalar code paths.
type IF64 struct {
	bits uint64
}

// IF64FromFloat returns the lane holding f.
func IF64FromFloat(f float64) IF64 {
	return IF64{math.Float64bits(f)}
}

// IF64FromInt returns the lane holding i.
func IF64FromInt(i int64) IF64 {
	return IF64{uint64(i)}
}

// Float returns the lane as a float64.
func (x IF64) Float() float64 {
	return math.Float64frombits(x.bits)
}

// Int returns the lane as an int64.
func (x IF64) Int() int64 {
	return int64(x.bits)
}
