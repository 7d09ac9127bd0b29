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

// MixF is a wide single-precision vector: 8 float32 lanes, 8 int32
// lanes, or two IF128F halves.
type MixF struct {
	bits [4]uint64
}

// Floats views v as 8 float32 lanes.
func (v *MixF) Floats() *[SingleLanes]float32 {
	return (*[SingleLanes]float32)(unsafe.Pointer(&v.bits))
}

// Ints views v as 8 int32 lanes.
func (v *MixF) Ints() *[SingleLanes]int32 {
	return (*[SingleLanes]int32)(unsafe.Pointer(&v.bits))
}

// Halves views v as its low and high 128-bit halves.
func (v *MixF) Halves() *[2]IF128F {
	return (*[2]IF128F)(unsafe.Pointer(&v.bits))
}

// Masks views v as two narrow masks.
func (v *MixF) Masks() *[2]MaskVecF {
	return (*[2]MaskVecF)(unsafe.Pointer(&v.bits))
}

// Bits views v as raw 64-bit words.
func (v *MixF) Bits() *[4]uint64 {
	return &v.bits
}

// Broadcast sets all lanes of v to f.
func (v *MixF) Broadcast(f float32) {
	lanes := v.Floats()
	for i := range lanes {
		lanes[i] = f
	}
}

// SetLaneMask sets lane i of v to all ones or all zeros.
func (v *MixF) SetLaneMask(i int, on bool) {
	v.Masks()[i/4].SetLane(i%4, on)
}

// Select sets each bit of v to the bit of a where mask is set, and to
// the bit of b otherwise. v may alias any of the arguments.
func (v *MixF) Select(mask, a, b *MixF) {
	selectBits(v.bits[:], mask.bits[:], a.bits[:], b.bits[:])
}

// IF128F is a narrow single-precision vector: 4 int32 or 4 float32
// lanes.
type IF128F struct {
	bits [2]uint64
}

// Ints views v as 4 int32 lanes.
func (v *IF128F) Ints() *[4]int32 {
	return (*[4]int32)(unsafe.Pointer(&v.bits))
}

// Floats views v as 4 float32 lanes.
func (v *IF128F) Floats() *[4]float32 {
	return (*[4]float32)(unsafe.Pointer(&v.bits))
}

// Select is the narrow variant of MixF.Select.
func (v *IF128F) Select(mask *MaskVecF, a, b *IF128F) {
	selectBits(v.bits[:], mask.bits[:], a.bits[:], b.bits[:])
}

// MaskVecF is a narrow single-precision mask. Each 32-bit lane is
// either all ones or all zeros.
type MaskVecF struct {
	bits [2]uint64
}

// Vec views m as 4 int32 lanes.
func (m *MaskVecF) Vec() *[4]int32 {
	return (*[4]int32)(unsafe.Pointer(&m.bits))
}

// Floats views m as 4 float32 lanes.
func (m *MaskVecF) Floats() *[4]float32 {
	return (*[4]float32)(unsafe.Pointer(&m.bits))
}

// Masks views m as 4 mask words.
func (m *MaskVecF) Masks() *[4]uint32 {
	return (*[4]uint32)(unsafe.Pointer(&m.bits))
}

// SetLane sets lane i to all ones if on, to all zeros otherwise.
func (m *MaskVecF) SetLane(i int, on bool) {
	m.Masks()[i] = maskWord32(on)
}

// Lane reports whether lane i is set.
func (m *MaskVecF) Lane(i int) bool {
	return m.Masks()[i] != 0
}

// IF32 is one int32 or float32 lane, for scalar code paths.
type IF32 struct {
	bits uint32
}

// IF32FromFloat returns the lane holding f.
func IF32FromFloat(f float32) IF32 {
	return IF32{math.Float32bits(f)}
}

// IF32FromInt returns the lane holding i.
func IF32FromInt(i int32) IF32 {
	return IF32{uint32(i)}
}

// Float returns the lane as a float32.
func (x IF32) Float() float32 {
	return math.Float32frombits(x.bits)
}

// Int returns the lane as an int32.
func (x IF32) Int() int32 {
	return int32(x.bits)
}
