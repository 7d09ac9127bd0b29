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

package testcase

/*
A scanner to split lines into whitespace-separated fields.

The zero fieldScanner is valid and empty.
*/
type fieldScanner struct {
	index int
	data  string
}

/*
Resets the scanner, and initializes it with the given string.
*/
func (sc *fieldScanner) Reset(s string) {
	sc.index = 0
	sc.data = s
}

/*
Returns the number of characters that still need to be scanned.
*/
func (sc *fieldScanner) Len() int {
	return len(sc.data) - sc.index
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

/*
Returns the next field, or false if only whitespace remains.
*/
func (sc *fieldScanner) Next() (field string, ok bool) {
	start := sc.index
	for start < len(sc.data) && isSpace(sc.data[start]) {
		start++
	}
	if start == len(sc.data) {
		sc.index = start
		return "", false
	}
	end := start + 1
	for end < len(sc.data) && !isSpace(sc.data[end]) {
		end++
	}
	sc.index = end
	return sc.data[start:end], true
}
