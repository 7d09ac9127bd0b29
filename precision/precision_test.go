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

package precision

import (
	"math"
	"sync"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func checkTable[T Float](t *testing.T, name string, c *Context[T]) {
	t.Helper()
	table := c.PhredToProb()
	if table[0] != 1 {
		t.Errorf("%v: phred 0 maps to %v instead of 1", name, table[0])
	}
	for q := 1; q < PhredTableSize; q++ {
		if !(table[q] < table[q-1]) {
			t.Errorf("%v: table not strictly decreasing at %v: %v >= %v", name, q, table[q], table[q-1])
		}
		if table[q] <= 0 {
			t.Errorf("%v: table entry %v underflowed to %v", name, q, table[q])
		}
	}
}

func TestPhredToProb(t *testing.T) {
	checkTable(t, "single", NewSingle())
	checkTable(t, "double", NewDouble())
}

func TestPhredToProbValues(t *testing.T) {
	d := NewDouble()
	for _, q := range []int{0, 10, 20, 30, 60, 127} {
		expected := math.Pow(10, -float64(q)/10)
		if got := d.Prob(q); !floats.EqualWithinULP(got, expected, 1) {
			t.Errorf("double Prob(%v) = %v, expected %v", q, got, expected)
		}
	}
	s := NewSingle()
	for _, q := range []int{0, 10, 20, 30, 60, 127} {
		expected := math.Pow(10, -float64(q)/10)
		if got := float64(s.Prob(q)); !floats.EqualWithinRel(got, expected, 1e-5) {
			t.Errorf("single Prob(%v) = %v, expected %v", q, got, expected)
		}
	}
}

func TestProbClamps(t *testing.T) {
	c := NewDouble()
	if c.Prob(-3) != 1 {
		t.Error("negative quality not clamped")
	}
	if c.Prob(500) != c.Prob(PhredTableSize-1) {
		t.Error("large quality not clamped")
	}
}

func TestInitialScale(t *testing.T) {
	d := NewDouble()
	if d.InitialScale() != math.Ldexp(1, 1020) {
		t.Errorf("unexpected double initial scale %v", d.InitialScale())
	}
	if !floats.EqualWithinULP(d.Log10InitialScale(), math.Log10(d.InitialScale()), 1) {
		t.Errorf("double log10 initial scale %v differs from %v", d.Log10InitialScale(), math.Log10(d.InitialScale()))
	}

	s := NewSingle()
	if s.InitialScale() != float32(math.Ldexp(1, 120)) {
		t.Errorf("unexpected single initial scale %v", s.InitialScale())
	}
	if s.Log10InitialScale() != s.Log10(s.InitialScale()) {
		t.Error("single log10 initial scale not computed with the single precision log10")
	}
	reference := float32(120 * math.Log10(2))
	if ulps := ulpDistance32(s.Log10InitialScale(), reference); ulps > 2 {
		t.Errorf("single log10 initial scale %v is %v ulps away from %v", s.Log10InitialScale(), ulps, reference)
	}
}

func ulpDistance32(a, b float32) uint32 {
	x, y := math.Float32bits(a), math.Float32bits(b)
	if x > y {
		return x - y
	}
	return y - x
}

func TestResultFloor(t *testing.T) {
	if f := NewSingle().ResultFloor(); !(f > 0) {
		t.Errorf("single result floor %v is not positive", f)
	}
	if f := NewDouble().ResultFloor(); f != 0 {
		t.Errorf("double result floor %v is not zero", f)
	}
	s := NewSingle()
	if !s.BelowFloor(float32(math.Ldexp(1, -120))) {
		t.Error("2^-120 should be below the single floor")
	}
	if s.BelowFloor(1e-20) {
		t.Error("1e-20 should not be below the single floor")
	}
	if NewDouble().BelowFloor(math.SmallestNonzeroFloat64) {
		t.Error("no positive double is below the double floor")
	}
}

func TestDeterminism(t *testing.T) {
	s1, s2 := NewSingle(), NewSingle()
	t1, t2 := s1.PhredToProb(), s2.PhredToProb()
	for q := range t1 {
		if math.Float32bits(t1[q]) != math.Float32bits(t2[q]) {
			t.Fatalf("single tables differ at %v", q)
		}
	}
	d1, d2 := NewDouble(), NewDouble()
	u1, u2 := d1.PhredToProb(), d2.PhredToProb()
	for q := range u1 {
		if math.Float64bits(u1[q]) != math.Float64bits(u2[q]) {
			t.Fatalf("double tables differ at %v", q)
		}
	}
	if math.Float64bits(d1.Log10InitialScale()) != math.Float64bits(d2.Log10InitialScale()) {
		t.Error("double log10 initial scale not deterministic")
	}
}

func TestConversions(t *testing.T) {
	d := NewDouble()
	if d.FromFloat32(0.1) != float64(float32(0.1)) {
		t.Error("widening conversion is not exact")
	}
	s := NewSingle()
	if s.FromFloat64(0.1) != float32(0.1) {
		t.Error("narrowing conversion does not round to float32")
	}
	if s.FromFloat32(0.25) != 0.25 || d.FromFloat64(0.25) != 0.25 {
		t.Error("identity conversion changed the value")
	}
}

func TestDescale(t *testing.T) {
	d := NewDouble()
	if v := d.Descale(d.InitialScale() * 1e-3); math.Abs(v+3) > 1e-9 {
		t.Errorf("descaled value %v instead of -3", v)
	}
	s := NewSingle()
	if v := s.Descale(s.InitialScale() * 1e-3); math.Abs(float64(v)+3) > 1e-4 {
		t.Errorf("descaled value %v instead of -3", v)
	}
}

func TestLanes(t *testing.T) {
	if n := NewSingle().Lanes(); n != 8 {
		t.Errorf("single context reports %v lanes", n)
	}
	if n := NewDouble().Lanes(); n != 4 {
		t.Errorf("double context reports %v lanes", n)
	}
}

func TestConcurrentReaders(t *testing.T) {
	c := NewDouble()
	expected := c.PhredToProb()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for q := 0; q < PhredTableSize; q++ {
				if c.Prob(q) != expected[q] {
					t.Errorf("concurrent read of %v returned a different value", q)
				}
			}
		}()
	}
	wg.Wait()
}
