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

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// ErrMalformedRecord is returned for lines that do not describe a test
// case. The remainder of the input should not be trusted.
var ErrMalformedRecord = errors.New("malformed test case")

const (
	hapField = iota
	readField
	qualityField
	insertionField
	deletionField
	continuationField
	numFields
)

var fieldNames = [numFields]string{"haplotype", "read", "quality", "insertion", "deletion", "continuation"}

// A Reader reads test cases from an input stream, one per line.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	reader    *bufio.Reader
	normalize Normalizer
	sc        fieldScanner
	line      int
}

// NewReader returns a Reader for r. A nil normalize selects Phred33.
func NewReader(r io.Reader, normalize Normalizer) *Reader {
	if normalize == nil {
		normalize = Phred33
	}
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Reader{reader: br, normalize: normalize}
}

// Line returns the number of lines read so far.
func (r *Reader) Line() int {
	return r.line
}

func getLine(reader *bufio.Reader) (line string, err error) {
	line, err = reader.ReadString('\n')
	switch {
	case err == nil:
		line = line[:len(line)-1]
	case err == io.EOF && len(line) > 0:
		err = nil
	}
	return
}

/*
Read reads and normalizes the next test case.

At the end of the input, Read returns io.EOF. A line that does not
consist of exactly six fields, or whose score fields are shorter than
the read, yields an error for which errors.Is(err, ErrMalformedRecord)
holds. No partial test case is returned in either case.

The caller owns the returned test case, and may hand its storage back
with Release.
*/
func (r *Reader) Read() (*TestCase, error) {
	line, err := getLine(r.reader)
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, errors.Wrapf(err, "reading line %v", r.line+1)
	}
	r.line++

	var fields [numFields]string
	nfields := 0
	r.sc.Reset(line)
	for field, ok := r.sc.Next(); ok; field, ok = r.sc.Next() {
		if nfields < numFields {
			fields[nfields] = field
		}
		nfields++
	}
	if nfields != numFields {
		return nil, errors.Wrapf(ErrMalformedRecord, "line %v has %v fields instead of %v", r.line, nfields, numFields)
	}

	hap, read := fields[hapField], fields[readField]
	for f := qualityField; f < numFields; f++ {
		if len(fields[f]) < len(read) {
			return nil, errors.Wrapf(ErrMalformedRecord, "line %v has %v %v scores for a read of length %v", r.line, len(fields[f]), fieldNames[f], len(read))
		}
	}

	tc := getTestCase()
	tc.ensureSize(len(line), len(hap), len(read))
	copy(tc.Haplotype, hap)
	copy(tc.Read, read)

	q, i, d, c := fields[qualityField], fields[insertionField], fields[deletionField], fields[continuationField]
	for x := range tc.Read {
		qual := r.normalize(q[x])
		if qual < MinQuality {
			qual = MinQuality
		}
		tc.Quality[x] = qual
		tc.Insertion[x] = r.normalize(i[x])
		tc.Deletion[x] = r.normalize(d[x])
		tc.Continuation[x] = r.normalize(c[x])
		tc.ReadCodes[x] = int(tc.Read[x])
	}
	for x := range tc.Haplotype {
		tc.HaplotypeCodes[x] = int(tc.Haplotype[x])
	}
	return tc, nil
}
