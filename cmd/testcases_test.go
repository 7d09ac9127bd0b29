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

package cmd

import (
	"math"
	"strings"
	"testing"

	"github.com/exascience/phmm/precision"
	"github.com/exascience/phmm/testcase"
)

func readOne(t *testing.T, line string) *testcase.TestCase {
	t.Helper()
	tc, err := testcase.NewReader(strings.NewReader(line), testcase.Phred33).Read()
	if err != nil {
		t.Fatal(err)
	}
	return tc
}

func TestSummarize(t *testing.T) {
	single, double := precision.NewSingle(), precision.NewDouble()
	s := summarize(readOne(t, "ANC GT !! !! !! !!"), single, double)
	if s.hapLen != 3 || s.readLen != 2 || s.minQual != 6 || s.maxQual != 6 || s.ambiguous != 1 || s.unknown {
		t.Errorf("unexpected summary %+v", s)
	}
	if math.Abs(s.doubleErrors-2*math.Pow(10, -0.6)) > 1e-12 {
		t.Errorf("unexpected expected errors %v", s.doubleErrors)
	}
	if math.Abs(s.doubleAllErrors+1.2) > 1e-9 || math.Abs(float64(s.singleAllErrors)+1.2) > 1e-4 {
		t.Errorf("unexpected all-error likelihoods %v %v", s.doubleAllErrors, s.singleAllErrors)
	}
	if s.singleUnderflow {
		t.Error("short read should not underflow in single precision")
	}
}

func TestSummarizeUnderflow(t *testing.T) {
	read := strings.Repeat("A", 200)
	quals := strings.Repeat("!", 200)
	tc := readOne(t, strings.Join([]string{"ACGU", read, quals, quals, quals, quals}, " "))
	s := summarize(tc, precision.NewSingle(), precision.NewDouble())
	if !s.singleUnderflow {
		t.Error("long low-quality read should underflow in single precision")
	}
	if math.Abs(s.doubleAllErrors+120) > 1e-6 {
		t.Errorf("unexpected double all-error likelihood %v", s.doubleAllErrors)
	}
	if !s.unknown {
		t.Error("U is not a known base")
	}
	if line := string(appendSummary(nil, 0, s, bothPrecisions)); !strings.Contains(line, "\tdouble\t") {
		t.Errorf("underflowing single result not replaced by double result: %q", line)
	}
}

func TestDumpTestCase(t *testing.T) {
	dump := string(dumpTestCase(nil, 3, readOne(t, "AC GT 5! !! !! !!")))
	expected := "# 3\nAC GT\nhap: 65 67\nrs: 71 84\nq: 20 6\ni: 0 0\nd: 0 0\nc: 0 0\n"
	if dump != expected {
		t.Errorf("unexpected dump %q", dump)
	}
}

func TestAppendSummaryColumns(t *testing.T) {
	s := summarize(readOne(t, "AC GT !! !! !! !!"), precision.NewSingle(), precision.NewDouble())
	for prec, columns := range map[string]int{singlePrecision: 9, doublePrecision: 8, bothPrecisions: 11} {
		line := strings.TrimSuffix(string(appendSummary(nil, 0, s, prec)), "\n")
		if n := len(strings.Split(line, "\t")); n != columns {
			t.Errorf("%v precision summary has %v columns instead of %v: %q", prec, n, columns, line)
		}
	}
}
