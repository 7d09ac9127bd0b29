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

package bases

import "log"

// Packed is a slice-like sequence of codes, stored two per byte. The
// first code of a byte is in its high nibble.
type Packed struct {
	info  int // length << 1 | offset
	bytes []byte
}

// Pack returns the codes of seq, using the process-wide table.
func Pack(seq []byte) Packed {
	t := Default()
	p := Packed{
		info:  len(seq) << 1,
		bytes: make([]byte, (len(seq)+1)>>1),
	}
	for i, b := range seq {
		code := t.codes[b]
		if i&1 == 0 {
			p.bytes[i>>1] = code << 4
		} else {
			p.bytes[i>>1] |= code
		}
	}
	return p
}

// Len returns the number of codes in p.
func (p Packed) Len() int {
	return p.info >> 1
}

func (p Packed) offset() int {
	return p.info & 1
}

// At returns the code at index i.
func (p Packed) At(i int) uint8 {
	if i < 0 || i >= p.Len() {
		log.Panicf("index %v out of range [0:%v]", i, p.Len())
	}
	i += p.offset()
	return 0xF & (p.bytes[i>>1] >> uint((1^(i&1))<<2))
}

// Append appends code to p.
func (p Packed) Append(code uint8) Packed {
	length := p.Len()
	offset := p.offset()
	index := length + offset
	if index&1 == 1 {
		i := index >> 1
		p.bytes[i] = (0xF0 & p.bytes[i]) | (0xF & code)
		return Packed{info: ((length + 1) << 1) | offset, bytes: p.bytes}
	}
	return Packed{
		info:  ((length + 1) << 1) | offset,
		bytes: append(p.bytes, (0xF&code)<<4),
	}
}

// Slice returns the codes from low up to, but not including, high.
// The result shares storage with p.
func (p Packed) Slice(low, high int) Packed {
	if low < 0 || high < low || high > p.Len() {
		log.Panicf("slice bounds [%v:%v] out of range [0:%v]", low, high, p.Len())
	}
	offset := p.offset()
	return Packed{
		info:  ((high - low) << 1) | ((offset + low) & 1),
		bytes: p.bytes[(low+offset)>>1 : (high+offset+1)>>1],
	}
}

// Unpack returns one code per byte.
func (p Packed) Unpack() []uint8 {
	result := make([]uint8, p.Len())
	for i := range result {
		result[i] = p.At(i)
	}
	return result
}

// Count returns how often code occurs in p.
func (p Packed) Count(code uint8) (n int) {
	for i := 0; i < p.Len(); i++ {
		if p.At(i) == code {
			n++
		}
	}
	return n
}

// String renders p as letters.
func (p Packed) String() string {
	b := make([]byte, p.Len())
	for i := range b {
		if code := p.At(i); code < NumDistinctChars {
			b[i] = Letters[code]
		} else {
			b[i] = '?'
		}
	}
	return string(b)
}
