/*
 * files.go, part of dmdpost.
 *
 * Copyright 2026 The dmdpost authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package dmd

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//Compressed versions of an input are looked for with these extensions,
//in this order, when the plain file is not present.
var compressedExt = []string{".zst", ".gz"}

//Exists returns true if name, or a compressed version of it, can be found.
func Exists(name string) bool {
	_, err := Resolve(name)
	return err == nil
}

//Resolve returns name if it exists, otherwise the first compressed version
//of it (name.zst, name.gz) that exists. If none is found, the returned error
//wraps fs.ErrNotExist.
func Resolve(name string) (string, error) {
	candidates := make([]string, 0, len(compressedExt)+1)
	candidates = append(candidates, name)
	for _, ext := range compressedExt {
		candidates = append(candidates, name+ext)
	}
	for _, c := range candidates {
		info, err := os.Stat(c)
		if err == nil && !info.IsDir() {
			return c, nil
		}
	}
	return "", NewError(name, "not found", fs.ErrNotExist, "Resolve")
}

//*zstd.Decoder has a Close method without a return value.
type zstdCloser struct {
	*zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

//readCloser closes the decompressor and then the underlying file.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var err error
	for _, c := range r.closers {
		if err2 := c.Close(); err2 != nil && err == nil {
			err = err2
		}
	}
	return err
}

//Open resolves name (see Resolve) and opens it for reading. Files ending in .zst are
//decompressed with zstd, files ending in .gz with gzip, anything else is read as is.
//The caller must close the returned reader.
func Open(name string) (io.ReadCloser, error) {
	rname, err := Resolve(name)
	if err != nil {
		return nil, Decorate(err, "Open")
	}
	f, err := os.Open(rname)
	if err != nil {
		return nil, NewError(rname, "can't open", err, "Open")
	}
	buf := bufio.NewReader(f)
	switch strings.ToLower(filepath.Ext(rname)) {
	case ".zst":
		d, err := zstd.NewReader(buf)
		if err != nil {
			f.Close()
			return nil, NewError(rname, "can't start zstd decompression", err, "Open")
		}
		z := zstdCloser{d}
		return &readCloser{z, []io.Closer{z, f}}, nil
	case ".gz":
		g, err := gzip.NewReader(buf)
		if err != nil {
			f.Close()
			return nil, NewError(rname, "can't start gzip decompression", err, "Open")
		}
		return &readCloser{g, []io.Closer{g, f}}, nil
	default:
		return &readCloser{buf, []io.Closer{f}}, nil
	}
}

//ReadWith opens name and passes the reader to f, closing the file afterwards.
//Errors from f that are not already tied to a file are tagged with the resolved
//file name.
func ReadWith(name string, f func(io.Reader) error) error {
	r, err := Open(name)
	if err != nil {
		return err
	}
	defer r.Close()
	if err = f(r); err != nil {
		var e *Error
		if errors.As(err, &e) {
			return err
		}
		return NewError(name, "can't parse", err, "ReadWith")
	}
	return nil
}
