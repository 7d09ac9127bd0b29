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

// Single is the float32 Precision.
type Single struct{}

// InitialScale is 2^120, well below the float32 exponent limit of 127,
// which leaves room for the products of the recurrence.
func (Single) InitialScale() float32 {
	return float32(math.Ldexp(1, 120))
}

// ResultFloor is 2^-110. Smaller float32 results are noise rather than
// small probabilities.
func (Single) ResultFloor() float32 {
	return float32(math.Ldexp(1, -110))
}
