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

import "math"

// Double is the float64 Precision.
type Double struct{}

// InitialScale is 2^1020, close to the largest float64 exponent.
func (Double) InitialScale() float64 {
	return math.Ldexp(1, 1020)
}

// ResultFloor is 0: in double precision an exact zero is meaningful.
func (Double) ResultFloor() float64 {
	return 0
}
