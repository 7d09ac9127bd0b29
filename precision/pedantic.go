//go:build pedantic
// +build pedantic

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
	In pedantic mode, the tables are computed with the C library, so
	that they are identical at the binary level to those of the
	native AVX kernels.
*/

package precision

// #cgo LDFLAGS: -lm
// #include <math.h>
import "C"

func (Single) Pow(x, y float32) float32 {
	return float32(C.powf(C.float(x), C.float(y)))
}

func (Single) Log10(x float32) float32 {
	return float32(C.log10f(C.float(x)))
}

func (Double) Pow(x, y float64) float64 {
	return float64(C.pow(C.double(x), C.double(y)))
}

func (Double) Log10(x float64) float64 {
	return float64(C.log10(C.double(x)))
}
