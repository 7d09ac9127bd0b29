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
	"testing"
	"unsafe"
)

func TestSizes(t *testing.T) {
	if s := unsafe.Sizeof(MixF{}); s != VectorBytes {
		t.Errorf("MixF has %v bytes", s)
	}
	if s := unsafe.Sizeof(MixD{}); s != VectorBytes {
		t.Errorf("MixD has %v bytes", s)
	}
	for name, s := range map[string]uintptr{
		"IF128F":   unsafe.Sizeof(IF128F{}),
		"IF128D":   unsafe.Sizeof(IF128D{}),
		"MaskVecF": unsafe.Sizeof(MaskVecF{}),
		"MaskVecD": unsafe.Sizeof(MaskVecD{}),
	} {
		if s != HalfBytes {
			t.Errorf("%v has %v bytes", name, s)
		}
	}
	if unsafe.Sizeof(IF32{}) != 4 || unsafe.Sizeof(IF64{}) != 8 {
		t.Error("scalar lanes have the wrong size")
	}
	if SingleLanes != 8 || DoubleLanes != 4 {
		t.Error("unexpected lane counts")
	}
}

func TestMixFViews(t *testing.T) {
	var v MixF
	floats := v.Floats()
	for i := range floats {
		floats[i] = float32(i) + 0.5
	}
	ints := v.Ints()
	for i := range ints {
		if uint32(ints[i]) != math.Float32bits(float32(i)+0.5) {
			t.Errorf("int view of lane %v does not alias the float view", i)
		}
	}
	halves := v.Halves()
	for i := 0; i < 4; i++ {
		if halves[0].Floats()[i] != floats[i] || halves[1].Floats()[i] != floats[i+4] {
			t.Errorf("half views of lane %v do not alias the float view", i)
		}
	}
	halves[1].Ints()[3] = 0
	if floats[7] != 0 {
		t.Error("write through a half view not visible in the float view")
	}
}

func TestMixDViews(t *testing.T) {
	var v MixD
	v.Broadcast(-2.25)
	for i, x := range v.Ints() {
		if uint64(x) != math.Float64bits(-2.25) {
			t.Errorf("int view of lane %v does not alias the float view", i)
		}
	}
	v.Halves()[1].Floats()[0] = 7
	if v.Floats()[2] != 7 {
		t.Error("write through a half view not visible in the float view")
	}
	if v.Bits()[2] != math.Float64bits(7) {
		t.Error("raw bits do not alias the float view")
	}
}

func TestMasks(t *testing.T) {
	var m MaskVecF
	m.SetLane(1, true)
	m.SetLane(3, true)
	if m.Lane(0) || !m.Lane(1) || m.Lane(2) || !m.Lane(3) {
		t.Error("single mask lanes not set as requested")
	}
	if m.Vec()[1] != -1 || m.Vec()[0] != 0 {
		t.Error("set mask lanes are not all ones")
	}
	if !math.IsNaN(float64(m.Floats()[1])) {
		t.Error("all-ones float lane should be a NaN")
	}
	m.SetLane(1, false)
	if m.Masks()[1] != 0 {
		t.Error("cleared mask lane is not zero")
	}

	var d MaskVecD
	d.SetLane(0, true)
	if !d.Lane(0) || d.Lane(1) || d.Vec()[0] != -1 || d.Masks()[0] != math.MaxUint64 {
		t.Error("double mask lanes not set as requested")
	}
}

func TestSelectF(t *testing.T) {
	var a, b, mask, result MixF
	a.Broadcast(1)
	b.Broadcast(2)
	for i := 0; i < SingleLanes; i += 2 {
		mask.SetLaneMask(i, true)
	}
	result.Select(&mask, &a, &b)
	for i, x := range result.Floats() {
		expected := float32(2)
		if i%2 == 0 {
			expected = 1
		}
		if x != expected {
			t.Errorf("lane %v selected %v instead of %v", i, x, expected)
		}
	}
	a.Select(&mask, &b, &a)
	if a.Floats()[0] != 2 || a.Floats()[1] != 1 {
		t.Error("aliased select failed")
	}

	var n1, n2, nr IF128F
	var nm MaskVecF
	n1.Floats()[2] = 5
	n2.Floats()[2] = 6
	nm.SetLane(2, true)
	nr.Select(&nm, &n1, &n2)
	if nr.Floats()[2] != 5 {
		t.Error("narrow select failed")
	}
}

func TestSelectD(t *testing.T) {
	var a, b, mask, result MixD
	a.Broadcast(1)
	b.Broadcast(2)
	mask.SetLaneMask(3, true)
	result.Select(&mask, &a, &b)
	if f := result.Floats(); f[0] != 2 || f[1] != 2 || f[2] != 2 || f[3] != 1 {
		t.Errorf("unexpected selection %v", *f)
	}
	var n1, n2, nr IF128D
	var nm MaskVecD
	n1.Floats()[1] = 5
	n2.Floats()[1] = 6
	nr.Select(&nm, &n1, &n2)
	if nr.Floats()[1] != 6 {
		t.Error("narrow select with an empty mask failed")
	}
}

func TestScalarLanes(t *testing.T) {
	x := IF32FromFloat(1)
	if x.Int() != 0x3f800000 {
		t.Errorf("float32 1 has bits %x", x.Int())
	}
	if IF32FromInt(x.Int()).Float() != 1 {
		t.Error("IF32 round trip failed")
	}
	y := IF64FromFloat(1)
	if y.Int() != 0x3ff0000000000000 {
		t.Errorf("float64 1 has bits %x", y.Int())
	}
	if IF64FromInt(y.Int()).Float() != 1 {
		t.Error("IF64 round trip failed")
	}
}

func TestTransmute(t *testing.T) {
	var v MixF
	v.Broadcast(3)
	d := Transmute[MixD](&v)
	if d.Bits()[0] != v.Bits()[0] {
		t.Error("transmuted vector does not alias the original")
	}
	m := Transmute[[2]MaskVecF](&v)
	if m[0].Floats()[0] != 3 {
		t.Error("transmuted mask does not alias the original")
	}
	defer func() {
		if recover() == nil {
			t.Error("transmute between different sizes did not panic")
		}
	}()
	_ = Transmute[IF128F](&v)
}

func TestMakeAligned(t *testing.T) {
	for n := 1; n < 10; n++ {
		fs := MakeMixF(n)
		if len(fs) != n {
			t.Fatalf("MakeMixF(%v) returned %v vectors", n, len(fs))
		}
		for i := range fs {
			if !IsAligned(unsafe.Pointer(&fs[i])) {
				t.Errorf("vector %v of %v is not aligned", i, n)
			}
		}
		ds := MakeMixD(n)
		if !IsAligned(unsafe.Pointer(&ds[0])) || !IsAligned(unsafe.Pointer(&ds[n-1])) {
			t.Errorf("double vectors of length %v are not aligned", n)
		}
	}
	if MakeMixF(0) != nil {
		t.Error("empty allocation should be nil")
	}
}
