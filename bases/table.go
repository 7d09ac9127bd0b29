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

// Package bases maps nucleotide letters to the small integer codes the
// pair-HMM kernels compare, and stores sequences of such codes.
package bases

import (
	"sync"

	"github.com/bits-and-blooms/bitset"
)

const (
	// NumDistinctChars is the size of the code alphabet.
	NumDistinctChars = 5

	// AmbigChar is the code of N, which matches every base.
	AmbigChar = 4
)

// Letters lists the recognized letters, indexed by code.
const Letters = "ACTGN"

// A Table converts bytes to codes. It is indexed by the full byte range,
// so lookups cannot go out of bounds. Only the bytes in Letters have a
// defined code; any other byte yields an unspecified code.
//
// A Table is immutable once built and safe for concurrent use.
type Table struct {
	codes [256]uint8
	known *bitset.BitSet
}

func newTable() *Table {
	t := &Table{known: bitset.New(256)}
	for code := 0; code < NumDistinctChars; code++ {
		letter := Letters[code]
		t.codes[letter] = uint8(code)
		t.known.Set(uint(letter))
	}
	return t
}

var (
	defaultTable *Table
	initOnce     sync.Once
)

// Init builds the process-wide table. Only the first call has an
// effect, and it is safe to call Init from multiple goroutines.
func Init() {
	initOnce.Do(func() { defaultTable = newTable() })
}

// Default returns the process-wide table.
func Default() *Table {
	Init()
	return defaultTable
}

// Get returns the code of b in the process-wide table.
func Get(b byte) uint8 {
	return Default().codes[b]
}

// Get returns the code of b.
func (t *Table) Get(b byte) uint8 {
	return t.codes[b]
}

// Lookup returns the code of b, and whether b is a recognized letter.
func (t *Table) Lookup(b byte) (code uint8, ok bool) {
	return t.codes[b], t.known.Test(uint(b))
}

// Known reports whether every byte of seq is a recognized letter.
func (t *Table) Known(seq []byte) bool {
	for _, b := range seq {
		if !t.known.Test(uint(b)) {
			return false
		}
	}
	return true
}

// Encode appends the codes of seq to dst.
func (t *Table) Encode(dst []uint8, seq []byte) []uint8 {
	for _, b := range seq {
		dst = append(dst, t.codes[b])
	}
	return dst
}

// Encode appends the codes of seq to dst, using the process-wide table.
func Encode(dst []uint8, seq []byte) []uint8 {
	return Default().Encode(dst, seq)
}
