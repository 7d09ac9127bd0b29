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

package internal

import (
	"os"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// ScientificPrecision is the number of digits after the decimal point
// used by AppendScientific.
const ScientificPrecision = 6

// AppendScientific appends v in scientific notation, with the bit size
// of its own type, so that float32 values are not printed with
// spurious float64 digits.
func AppendScientific[T constraints.Float](buf []byte, v T) []byte {
	return strconv.AppendFloat(buf, float64(v), 'e', ScientificPrecision, int(unsafe.Sizeof(v))*8)
}

// FormatScientific formats v in scientific notation.
func FormatScientific[T constraints.Float](v T) string {
	return string(AppendScientific(nil, v))
}

/*
DebugDump writes s to the named file, creating it if necessary. If
appendTo is false, the file is truncated first. If newline is true, a
line feed is written after s.
*/
func DebugDump(filename, s string, appendTo, newline bool) (err error) {
	flag := os.O_WRONLY | os.O_CREATE
	if appendTo {
		flag |= os.O_APPEND
	} else {
		flag |= os.O_TRUNC
	}
	f, err := os.OpenFile(filename, flag, 0666)
	if err != nil {
		return err
	}
	defer func() {
		if nerr := f.Close(); err == nil {
			err = nerr
		}
	}()
	if _, err = f.WriteString(s); err != nil {
		return err
	}
	if newline {
		_, err = f.WriteString("\n")
	}
	return err
}
