/*
 * compress.go, part of gorbit.
 *
 *
 * Copyright 2024 Raul Mera <rauldotmeraatusachdotcl>
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
 *
 */

package orbit

import (
	"compress/gzip"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//Both orbit formats are plain ASCII, so measurement campaigns tend to gzip or
//zstd whole directories of them. The format packages pass every file handle
//through these two helpers, keyed on the file name extension, so compressed
//files are read and written transparently. A name without a recognized
//extension passes through untouched.

// This will cause additional indirections, but each parse call takes long
// enough to make those delays irrelevant.
// Also, why couldn't *zstd.Decoder implement io.ReadCloser? :-(
type zstdql struct {
	closeql func() //The things I have to do xD
	*zstd.Decoder
}

// Close closes the object. It can not be used after this call
func (s zstdql) Close() error {
	s.closeql()
	return nil
}

type nopWriteCloser struct {
	io.Writer
}

func (n nopWriteCloser) Close() error { return nil }

// DecompressReader wraps r in the decompressor matching the extension of
// name (".gz", ".zst" or ".zstd"); any other extension returns r itself,
// behind a no-op Close.
func DecompressReader(r io.Reader, name string) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		return gzip.NewReader(r)
	case ".zst", ".zstd":
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdql{d.Close, d}, nil
	}
	return io.NopCloser(r), nil
}

// CompressWriter wraps w in the compressor matching the extension of name
// (".gz", ".zst" or ".zstd"); any other extension returns w itself, behind a
// no-op Close. The returned writer must be closed before the underlying file
// for the compressed stream to be complete.
func CompressWriter(w io.Writer, name string) (io.WriteCloser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		return gzip.NewWriter(w), nil
	case ".zst", ".zstd":
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
	return nopWriteCloser{w}, nil
}
