//go:build !pedantic
// +build !pedantic

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

	"github.com/chewxy/math32"
)

// Pow is computed in float32 arithmetic.
func (Single) Pow(x, y float32) float32 {
	return math32.Pow(x, y)
}

// Log10 is computed in float32 arithmetic.
func (Single) Log10(x float32) float32 {
	return math32.Log10(x)
}

// Pow is math.Pow.
func (Double) Pow(x, y float64) float64 {
	return math.Pow(x, y)
}

// Log10 is math.Log10.
func (Double) Log10(x float64) float64 {
	return math.Log10(x)
}
