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
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/exascience/pargo/parallel"

	"github.com/exascience/phmm/internal"
	"github.com/exascience/phmm/lanes"
	"github.com/exascience/phmm/precision"
)

// TablesHelp is the help string for this command.
const TablesHelp = "\ntables parameters:\n" +
	"phmm tables\n" +
	"[--precision single|double|both]\n" +
	"[--log-path path]\n"

func writeContext[T precision.Float](out *bufio.Writer, name string, c *precision.Context[T]) error {
	buf := internal.ReserveByteBuffer()
	defer func() { internal.ReleaseByteBuffer(buf) }()

	buf = append(buf, "# "...)
	buf = append(buf, name...)
	buf = append(buf, " precision, "...)
	buf = strconv.AppendInt(buf, int64(c.Lanes()), 10)
	buf = append(buf, " lanes\ninitial-scale\t"...)
	buf = internal.AppendScientific(buf, c.InitialScale())
	buf = append(buf, "\nlog10-initial-scale\t"...)
	buf = internal.AppendScientific(buf, c.Log10InitialScale())
	buf = append(buf, "\nresult-floor\t"...)
	buf = internal.AppendScientific(buf, c.ResultFloor())
	buf = append(buf, '\n')
	for q, p := range c.PhredToProb() {
		buf = strconv.AppendInt(buf, int64(q), 10)
		buf = append(buf, '\t')
		buf = internal.AppendScientific(buf, p)
		buf = append(buf, '\n')
	}
	_, err := out.Write(buf)
	return err
}

// Tables implements the phmm tables command.
func Tables() (err error) {
	var prec, logPath string

	var flags flag.FlagSet
	flags.StringVar(&prec, "precision", bothPrecisions, "print single, double, or both precisions")
	flags.StringVar(&logPath, "log-path", "", "write log files to the specified directory")
	parseFlags(flags, 2, TablesHelp)

	setLogOutput(logPath)

	if !checkPrecision(prec) {
		fmt.Fprint(os.Stderr, TablesHelp)
		os.Exit(1)
	}

	if !lanes.NativeWidth() {
		log.Println("Warning: This CPU has no native", lanes.VectorBytes*8, "bit vectors.")
	}

	var (
		single *precision.Context[float32]
		double *precision.Context[float64]
	)
	parallel.Do(
		func() { single = precision.NewSingle() },
		func() { double = precision.NewDouble() },
	)

	out := bufio.NewWriter(os.Stdout)
	defer func() {
		if nerr := out.Flush(); err == nil {
			err = nerr
		}
	}()
	if prec != doublePrecision {
		if err := writeContext(out, singlePrecision, single); err != nil {
			return err
		}
	}
	if prec != singlePrecision {
		if err := writeContext(out, doublePrecision, double); err != nil {
			return err
		}
	}
	return nil
}
