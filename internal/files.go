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
	"bufio"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
)

// FullPathname returns an absolute version of filename.
func FullPathname(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		return filename, nil
	}
	wd, err := os.Getwd()
	return filepath.Join(wd, filename), err
}

// IsGzip checks if the given scanner produces a gzip stream by looking
// at the first byte. It does not consume that byte.
func IsGzip(scanner io.ByteScanner) (bool, error) {
	b, err := scanner.ReadByte()
	if err == io.EOF {
		return false, nil
	} else if err != nil {
		return false, err
	}
	if err := scanner.UnreadByte(); err != nil {
		return false, err
	}
	return b == 0x1f, nil
}

// InputFile is a file opened by Open.
type InputFile struct {
	*bufio.Reader
	closers []io.Closer
}

// Close closes the file, and a decompressor if one was involved.
func (f *InputFile) Close() (err error) {
	for i := len(f.closers) - 1; i >= 0; i-- {
		if nerr := f.closers[i].Close(); err == nil {
			err = nerr
		}
	}
	return err
}

/*
Open opens a file for reading. If the name is "-" or "/dev/stdin",
the input is read from os.Stdin.

Gzip-compressed input is detected by its first byte and decompressed
transparently.
*/
func Open(name string) (*InputFile, error) {
	var file *os.File
	if name == "-" || name == "/dev/stdin" {
		file = os.Stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		file = f
	}
	input := &InputFile{Reader: bufio.NewReader(file)}
	if file != os.Stdin {
		input.closers = append(input.closers, file)
	}
	ok, err := IsGzip(input.Reader)
	if err != nil {
		_ = input.Close()
		return nil, err
	}
	if ok {
		zr, err := gzip.NewReader(input.Reader)
		if err != nil {
			_ = input.Close()
			return nil, err
		}
		input.closers = append(input.closers, zr)
		input.Reader = bufio.NewReader(zr)
	}
	return input, nil
}

// MkdirAll is os.MkdirAll with panics in place of errors
func MkdirAll(path string, perm os.FileMode) {
	if err := os.MkdirAll(path, perm); err != nil {
		log.Panic(err)
	}
}

// FileCreate is os.Create with panics in place of errors
func FileCreate(name string) *os.File {
	f, err := os.Create(name)
	if err != nil {
		log.Panic(err)
	}
	return f
}

// Close is c.Close() with panics in place of errors
func Close(c io.Closer) {
	if err := c.Close(); err != nil {
		log.Panic(err)
	}
}
