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
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strconv"

	"github.com/exascience/pargo/parallel"

	"github.com/exascience/phmm/bases"
	"github.com/exascience/phmm/internal"
	"github.com/exascience/phmm/precision"
	"github.com/exascience/phmm/testcase"
)

// TestcasesHelp is the help string for this command.
const TestcasesHelp = "testcases parameters:\n" +
	"phmm testcases [testcase-file]\n" +
	"[--precision single|double|both]\n" +
	"[--dump file]\n" +
	"[--nr-of-threads n]\n" +
	"[--timed]\n" +
	"[--profile file]\n" +
	"[--log-path path]\n"

type caseSummary struct {
	hapLen, readLen  int
	minQual, maxQual int
	ambiguous        int
	unknown          bool
	singleErrors     float32
	doubleErrors     float64
	singleAllErrors  float32
	singleUnderflow  bool
	doubleAllErrors  float64
}

func maxInt(x, y int) int {
	if x > y {
		return x
	}
	return y
}

// summarize computes the expected number of sequencing errors of a
// read, and the scaled probability that every base of the read is an
// error, in both precisions.
func summarize(tc *testcase.TestCase, single *precision.Context[float32], double *precision.Context[float64]) (s caseSummary) {
	s.hapLen = tc.HapLen()
	s.readLen = tc.ReadLen()
	table := bases.Default()
	s.unknown = !table.Known(tc.Haplotype) || !table.Known(tc.Read)
	s.ambiguous = bases.Pack(tc.Haplotype).Count(bases.AmbigChar) + bases.Pack(tc.Read).Count(bases.AmbigChar)
	s.minQual = precision.PhredTableSize
	singleAll := single.InitialScale()
	doubleAll := double.InitialScale()
	for _, q := range tc.Quality {
		if q < s.minQual {
			s.minQual = q
		}
		if q > s.maxQual {
			s.maxQual = q
		}
		s.singleErrors += single.Prob(q)
		s.doubleErrors += double.Prob(q)
		singleAll *= single.Prob(q)
		doubleAll *= double.Prob(q)
	}
	if len(tc.Quality) == 0 {
		s.minQual = 0
	}
	s.singleUnderflow = single.BelowFloor(singleAll)
	s.singleAllErrors = single.Descale(singleAll)
	s.doubleAllErrors = double.Descale(doubleAll)
	return s
}

func appendSummary(buf []byte, index int, s caseSummary, prec string) []byte {
	buf = strconv.AppendInt(buf, int64(index), 10)
	for _, v := range []int{s.hapLen, s.readLen, s.minQual, s.maxQual, s.ambiguous} {
		buf = append(buf, '\t')
		buf = strconv.AppendInt(buf, int64(v), 10)
	}
	if prec != doublePrecision {
		buf = append(buf, '\t')
		buf = internal.AppendScientific(buf, s.singleErrors)
		buf = append(buf, '\t')
		if s.singleUnderflow {
			// too small for single precision, fall back to double
			buf = internal.AppendScientific(buf, s.doubleAllErrors)
			buf = append(buf, "\tdouble"...)
		} else {
			buf = internal.AppendScientific(buf, s.singleAllErrors)
			buf = append(buf, "\tsingle"...)
		}
	}
	if prec != singlePrecision {
		buf = append(buf, '\t')
		buf = internal.AppendScientific(buf, s.doubleErrors)
		buf = append(buf, '\t')
		buf = internal.AppendScientific(buf, s.doubleAllErrors)
	}
	if s.unknown {
		buf = append(buf, "\tunknown-bases"...)
	}
	return append(buf, '\n')
}

func appendInts(buf []byte, name string, values []int) []byte {
	buf = append(buf, name...)
	buf = append(buf, ':')
	for _, v := range values {
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(v), 10)
	}
	return append(buf, '\n')
}

// dumpTestCase renders a normalized test case for DebugDump.
func dumpTestCase(buf []byte, index int, tc *testcase.TestCase) []byte {
	buf = append(buf, "# "...)
	buf = strconv.AppendInt(buf, int64(index), 10)
	buf = append(buf, '\n')
	buf = append(buf, tc.Haplotype...)
	buf = append(buf, ' ')
	buf = append(buf, tc.Read...)
	buf = append(buf, '\n')
	buf = appendInts(buf, "hap", tc.HaplotypeCodes)
	buf = appendInts(buf, "rs", tc.ReadCodes)
	buf = appendInts(buf, "q", tc.Quality)
	buf = appendInts(buf, "i", tc.Insertion)
	buf = appendInts(buf, "d", tc.Deletion)
	return appendInts(buf, "c", tc.Continuation)
}

func readTestCases(input string) (cases []*testcase.TestCase, err error) {
	in, err := internal.Open(input)
	if err != nil {
		return nil, err
	}
	defer func() {
		if nerr := in.Close(); err == nil {
			err = nerr
		}
	}()
	reader := testcase.NewReader(in, testcase.Phred33)
	for {
		tc, err := reader.Read()
		if err == io.EOF {
			return cases, nil
		}
		if err != nil {
			for _, tc := range cases {
				tc.Release()
			}
			return nil, err
		}
		cases = append(cases, tc)
	}
}

// Testcases implements the phmm testcases command.
func Testcases() error {
	var (
		prec, dump, profile, logPath string
		nrOfThreads                  int
		timed                        bool
	)

	var flags flag.FlagSet

	flags.StringVar(&prec, "precision", bothPrecisions, "report single, double, or both precisions")
	flags.StringVar(&dump, "dump", "", "write the normalized test cases to the specified file")
	flags.IntVar(&nrOfThreads, "nr-of-threads", 0, "number of worker threads")
	flags.BoolVar(&timed, "timed", false, "measure the runtime")
	flags.StringVar(&profile, "profile", "", "write a runtime profile to the specified file(s)")
	flags.StringVar(&logPath, "log-path", "", "write log files to the specified directory")

	input, flagsIndex := optionalFilename(2, TestcasesHelp)
	parseFlags(flags, flagsIndex, TestcasesHelp)

	setLogOutput(logPath)

	// sanity checks

	var sanityChecksFailed bool

	if !checkExist("", input) {
		sanityChecksFailed = true
	}
	if !checkPrecision(prec) {
		sanityChecksFailed = true
	}
	if dump != "" && !checkCreate("--dump", dump) {
		sanityChecksFailed = true
	}
	if profile != "" && !checkCreate("--profile", profile) {
		sanityChecksFailed = true
	}
	if nrOfThreads < 0 {
		sanityChecksFailed = true
		log.Println("Error: Invalid nr-of-threads: ", nrOfThreads)
	}

	if sanityChecksFailed {
		fmt.Fprint(os.Stderr, TestcasesHelp)
		os.Exit(1)
	}

	// building output command line

	var command bytes.Buffer
	fmt.Fprint(&command, os.Args[0], " testcases ", input, " --precision ", prec)
	if dump != "" {
		fmt.Fprint(&command, " --dump ", dump)
	}
	if nrOfThreads > 0 {
		runtime.GOMAXPROCS(nrOfThreads)
		fmt.Fprint(&command, " --nr-of-threads ", nrOfThreads)
	}
	if timed {
		fmt.Fprint(&command, " --timed")
	}
	if profile != "" {
		fmt.Fprint(&command, " --profile ", profile)
	}
	if logPath != "" {
		fmt.Fprint(&command, " --log-path ", logPath)
	}

	// executing command

	log.Println("Executing command:\n", command.String())

	var (
		single *precision.Context[float32]
		double *precision.Context[float64]
	)
	parallel.Do(
		func() { single = precision.NewSingle() },
		func() { double = precision.NewDouble() },
		bases.Init,
	)

	var cases []*testcase.TestCase
	defer func() {
		for _, tc := range cases {
			tc.Release()
		}
	}()

	var phase int64 = 1
	err := timedRun(timed, profile, "Reading test cases.", phase, func() (err error) {
		cases, err = readTestCases(input)
		return err
	})
	if err != nil {
		return err
	}
	log.Println("Read", len(cases), "test cases.")

	phase++
	summaries := make([]caseSummary, len(cases))
	err = timedRun(timed, profile, "Summarizing test cases.", phase, func() error {
		parallel.Range(0, len(cases), 0, func(low, high int) {
			for i := low; i < high; i++ {
				summaries[i] = summarize(cases[i], single, double)
			}
		})
		var maxReadLength, maxHaplotypeLength int
		parallel.Do(
			func() {
				maxReadLength = parallel.RangeReduceInt(0, len(cases), 0, func(low, high int) int {
					var max int
					for i := low; i < high; i++ {
						if l := cases[i].ReadLen(); l > max {
							max = l
						}
					}
					return max
				}, maxInt)
			},
			func() {
				maxHaplotypeLength = parallel.RangeReduceInt(0, len(cases), 0, func(low, high int) int {
					var max int
					for i := low; i < high; i++ {
						if l := cases[i].HapLen(); l > max {
							max = l
						}
					}
					return max
				}, maxInt)
			},
		)
		if maxReadLength > testcase.MaxRows {
			log.Printf("Warning: Reads of length %v exceed the %v rows of the fixed-size kernels.\n", maxReadLength, testcase.MaxRows)
		}
		if maxHaplotypeLength > testcase.MaxCols {
			log.Printf("Warning: Haplotypes of length %v exceed the %v columns of the fixed-size kernels.\n", maxHaplotypeLength, testcase.MaxCols)
		}
		return nil
	})
	if err != nil {
		return err
	}

	phase++
	return timedRun(timed, profile, "Writing summaries.", phase, func() (err error) {
		out := bufio.NewWriter(os.Stdout)
		defer func() {
			if nerr := out.Flush(); err == nil {
				err = nerr
			}
		}()
		buf := internal.ReserveByteBuffer()
		defer func() { internal.ReleaseByteBuffer(buf) }()
		for i, s := range summaries {
			buf = appendSummary(buf[:0], i, s, prec)
			if _, err = out.Write(buf); err != nil {
				return err
			}
		}
		if dump != "" {
			for i, tc := range cases {
				buf = dumpTestCase(buf[:0], i, tc)
				if err = internal.DebugDump(dump, string(buf), i > 0, false); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
