/*
 * files.go, part of spinverter.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package spinverter

import (
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"
)

// compression returns the compression suffix of name ("gz", "zst", "xz")
// or the empty string for plain files.
func compression(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		return "gz"
	case ".zst", ".zstd":
		return "zst"
	case ".xz":
		return "xz"
	}
	return ""
}

// BaseExt returns the lower-case extension of name, without the dot, after
// removing any compression suffix. "mol.mms.gz" gives "mms".
func BaseExt(name string) string {
	if compression(name) != "" {
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
}

//readCloser closes the decompressor, if it needs closing, and then the file.
type readCloser struct {
	io.Reader
	closer func() error //the decompressor
	f       *os.File
}

func (R readCloser) Close() error {
	var err error
	if R.closer != nil {
		err = R.closer()
	}
	if err2 := R.f.Close(); err == nil {
		err = err2
	}
	return err
}

// Open opens name for reading. Files ending in .gz, .zst/.zstd or .xz are
// decompressed on the fly. Closing the returned object closes the file.
func Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		E := Wrap(err, IOFailure, "", "can't open input")
		E.FileName = name
		E.Decorate("Open")
		return nil, E
	}
	var r io.Reader
	var closer func() error
	switch compression(name) {
	case "gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, openErr(err, name, "gzip")
		}
		r, closer = gz, gz.Close
	case "zst":
		zs, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, openErr(err, name, "zstd")
		}
		//*zstd.Decoder's Close returns nothing.
		r, closer = zs, func() error { zs.Close(); return nil }
	case "xz":
		x, err := xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, openErr(err, name, "xz")
		}
		r = x
	default:
		r = f
	}
	return readCloser{Reader: r, closer: closer, f: f}, nil
}

func openErr(err error, name, what string) error {
	E := Wrap(err, IOFailure, "", "can't start "+what+" decompression")
	E.FileName = name
	E.Decorate("Open")
	return E
}

//writeCloser is the writing counterpart of readCloser.
type writeCloser struct {
	io.Writer
	closer func() error //the compressor
	f       *os.File
}

func (W writeCloser) Close() error {
	var err error
	if W.closer != nil {
		err = W.closer()
	}
	if err2 := W.f.Close(); err == nil {
		err = err2
	}
	return err
}

// Create creates name for writing, compressing with gzip, zstd or xz if its
// suffix asks for it.
// The caller must check the error returned by Close.
func Create(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		E := Wrap(err, IOFailure, "", "can't create output")
		E.FileName = name
		E.Decorate("Create")
		return nil, E
	}
	switch compression(name) {
	case "gz":
		gz := gzip.NewWriter(f)
		return writeCloser{Writer: gz, closer: gz.Close, f: f}, nil
	case "zst":
		zs, err := zstd.NewWriter(f)
		if err != nil {
			f.Close()
			E := Wrap(err, IOFailure, "", "can't start zstd compression")
			E.FileName = name
			return nil, E
		}
		return writeCloser{Writer: zs, closer: zs.Close, f: f}, nil
	case "xz":
		x, err := xz.NewWriter(f)
		if err != nil {
			f.Close()
			E := Wrap(err, IOFailure, "", "can't start xz compression")
			E.FileName = name
			return nil, E
		}
		return writeCloser{Writer: x, closer: x.Close, f: f}, nil
	}
	return writeCloser{Writer: f, f: f}, nil
}

// Digest returns the hex-encoded BLAKE3-256 sum of everything read from r.
func Digest(r io.Reader) (string, error) {
	h := blake3.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", Wrap(err, IOFailure, "", "can't read data to digest")
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// FileDigest is Digest for the (possibly compressed) file name. The sum is
// computed over the decompressed content.
func FileDigest(name string) (string, error) {
	r, err := Open(name)
	if err != nil {
		return "", err
	}
	defer r.Close()
	return Digest(r)
}
