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
Package testcase reads pair-HMM scoring problems, one per line, and
normalizes them into the integer form the kernels consume.

A line holds six whitespace-separated fields: the haplotype, the read,
and one quality, insertion, deletion, and continuation character per
read base. For example:

	ACGTTGCA ACGT IIII ++++ ++++ ++++
*/
package testcase

import "sync"

const (
	// MinQuality is the smallest base quality the kernels accept.
	// Smaller qualities are raised to MinQuality during ingestion.
	MinQuality = 6

	// MaxRows and MaxCols bound the read and haplotype lengths of the
	// fixed-size kernels. The reader does not enforce them.
	MaxRows = 500
	MaxCols = 1000
)

// A Normalizer decodes one score character.
type Normalizer func(byte) int

// Phred33 decodes a phred+33 encoded character, so that '!' is 0.
func Phred33(c byte) int {
	return int(c) - 33
}

// A TestCase is one normalized scoring problem.
//
// Quality, Insertion, Deletion, Continuation, and ReadCodes have one
// entry per read base. HaplotypeCodes has one entry per haplotype base.
// The codes are the raw byte values of the sequences, not codes from the
// bases package.
type TestCase struct {
	Haplotype, Read []byte

	Quality, Insertion, Deletion, Continuation []int

	HaplotypeCodes, ReadCodes []int

	bytes []byte
	ints  []int
}

// HapLen returns the length of the haplotype.
func (tc *TestCase) HapLen() int {
	return len(tc.Haplotype)
}

// ReadLen returns the length of the read.
func (tc *TestCase) ReadLen() int {
	return len(tc.Read)
}

var testCasePool = sync.Pool{New: func() interface{} { return new(TestCase) }}

func getTestCase() *TestCase {
	return testCasePool.Get().(*TestCase)
}

// Release returns the storage of tc for reuse by later reads. tc and
// all of its slices must not be used afterwards.
func (tc *TestCase) Release() {
	testCasePool.Put(tc)
}

// ensureSize carves the per-field slices out of two backing arrays that
// are sized by the length of the input line.
func (tc *TestCase) ensureSize(lineLength, hapLen, readLen int) {
	if cap(tc.bytes) < lineLength {
		tc.bytes = make([]byte, lineLength)
	}
	tc.bytes = tc.bytes[:cap(tc.bytes)]
	tc.Haplotype = tc.bytes[:hapLen:hapLen]
	tc.Read = tc.bytes[hapLen : hapLen+readLen : hapLen+readLen]

	intsSize := 5*readLen + hapLen
	if cap(tc.ints) < intsSize {
		size := lineLength
		if size < intsSize {
			size = intsSize
		}
		tc.ints = make([]int, size)
	}
	tc.ints = tc.ints[:cap(tc.ints)]
	next := func(n int) []int {
		s := tc.ints[:n:n]
		tc.ints = tc.ints[n:]
		return s
	}
	ints := tc.ints
	tc.Quality = next(readLen)
	tc.Insertion = next(readLen)
	tc.Deletion = next(readLen)
	tc.Continuation = next(readLen)
	tc.ReadCodes = next(readLen)
	tc.HaplotypeCodes = next(hapLen)
	tc.ints = ints
}
