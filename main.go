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

// phmm prepares the inputs of vectorized pair-HMM kernels: it reads
// test cases, normalizes their scores, and reports the numeric
// contexts the kernels use in single and double precision.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/exascience/phmm/cmd"
)

func printHelp() {
	fmt.Fprintln(os.Stderr, "Available commands: testcases, tables")
	fmt.Fprint(os.Stderr, "\n", cmd.TestcasesHelp)
	fmt.Fprint(os.Stderr, "\n", cmd.TablesHelp)
}

func main() {
	fmt.Fprintln(os.Stderr, cmd.ProgramMessage)
	if len(os.Args) < 2 {
		log.Println("Incorrect number of parameters.")
		fmt.Fprint(os.Stderr, cmd.HelpMessage, "\n")
		printHelp()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "testcases":
		err = cmd.Testcases()
	case "tables":
		err = cmd.Tables()
	case "help", "-help", "--help", "-h", "--h":
		printHelp()
	default:
		log.Println("Unknown command", os.Args[1])
		printHelp()
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}
}
