/*
 * paren_write.go, part of gorbit.
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

package paren

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	orbit "github.com/rmera/gorbit"
)

// DefaultZFill is the constant written in place of the z samples when z
// blocks are requested. The row format carries no z, so the value is a
// physically-motivated placeholder, not measured data.
const DefaultZFill = 0.0010580705711618066

// WriteOptions controls the serialization to the .data format. The zero
// value is not useful, start from DefaultWriteOptions.
type WriteOptions struct {
	IncludeZ bool    //write the z blocks as ZFill-valued arrays; if false they are zero-filled instead
	Fmt      string  //Sprintf verb for each value
	Sep      string  //separator between values within a line
	Columns  int     //values per line; 0 disables wrapping
	ZFill    float64 //constant used for the z blocks when IncludeZ
	Scale    float64 //multiplies every x, y and z value
	Header   []string
}

// DefaultWriteOptions returns the options used when Write is given nil:
// z blocks included and filled with DefaultZFill, values in shortest form
// with 7 significant digits, 6 comma-separated values per line, scale 1 and
// no header.
func DefaultWriteOptions() *WriteOptions {
	return &WriteOptions{
		IncludeZ: true,
		Fmt:      "%.7g",
		Sep:      ",",
		Columns:  6,
		ZFill:    DefaultZFill,
		Scale:    1.0,
	}
}

// Write serializes D to the .data file with the given name, creating or
// truncating it. A name ending in .gz or .zst/.zstd produces a compressed
// file. BPM entries are written in sorted-name order.
func Write(D *orbit.Dataset, name string, o *WriteOptions) error {
	f, err := os.Create(name)
	if err != nil {
		return Error{UnableToWrite + ": " + err.Error(), name, []string{"Write"}, true}
	}
	defer f.Close()
	w, err := orbit.CompressWriter(f, name)
	if err != nil {
		return Error{UnableToWrite + ": " + err.Error(), name, []string{"Write"}, true}
	}
	if err := Serialize(D, w, o); err != nil {
		w.Close()
		return errDecorate(err, "Write: "+name)
	}
	//the compressor has to be closed before the file for the stream to be complete.
	if err := w.Close(); err != nil {
		return Error{UnableToWrite + ": " + err.Error(), name, []string{"Write"}, true}
	}
	return nil
}

// Serialize writes the .data rendition of D to w. Every BPM entry has the
// shape
//
//	("NAME"->
//	{{x values},
//	{y values},
//	{z values}})
//
// with entries comma-separated and the whole body wrapped in braces. If a
// header is given, it is written first, concatenated inside an extra outer
// brace pair. x and y come from D scaled by o.Scale; z is regenerated as a
// constant-fill array of x's length (the dataset's own z is deliberately
// discarded, see DefaultZFill). The first sample of every array is dropped
// before formatting: in the row format's layout index 0 holds the BPM's
// static longitudinal position, not a turn sample.
func Serialize(D *orbit.Dataset, w io.Writer, o *WriteOptions) error {
	if o == nil {
		o = DefaultWriteOptions()
	}
	bw := bufio.NewWriter(w)
	if len(o.Header) > 0 {
		bw.WriteString("{{")
		for _, line := range o.Header {
			bw.WriteString(strings.TrimRight(line, " \t\r\n"))
		}
		bw.WriteString("},\n")
	}
	bw.WriteString("{")
	names := D.Names()
	for i, name := range names {
		x, err := D.Get(name, "x")
		if err != nil {
			return errDecorate(err, "Serialize")
		}
		y, err := D.Get(name, "y")
		if err != nil {
			return errDecorate(err, "Serialize")
		}
		z := make([]float64, len(x))
		if o.IncludeZ {
			for j := range z {
				z[j] = o.ZFill
			}
		}
		sx := formatArray(dropFirst(scaled(x, o.Scale)), o)
		sy := formatArray(dropFirst(scaled(y, o.Scale)), o)
		sz := formatArray(dropFirst(scaled(z, o.Scale)), o)
		fmt.Fprintf(bw, "(\"%s\"->\n{{%s},\n{%s},\n{%s}})", name, sx, sy, sz)
		if i < len(names)-1 {
			bw.WriteString(",\n")
		} else {
			bw.WriteString("\n")
		}
	}
	bw.WriteString("}")
	if len(o.Header) > 0 {
		bw.WriteString("}")
	}
	if err := bw.Flush(); err != nil {
		return Error{UnableToWrite + ": " + err.Error(), "", []string{"Serialize"}, true}
	}
	return nil
}

// dropFirst removes the leading non-turn sample. Arrays with at most one
// element become empty.
func dropFirst(a []float64) []float64 {
	if len(a) <= 1 {
		return []float64{}
	}
	return a[1:]
}

func scaled(a []float64, scale float64) []float64 {
	ret := make([]float64, len(a))
	for i, v := range a {
		ret[i] = v * scale
	}
	return ret
}

// formatArray renders every value with o.Fmt and, if o.Columns is positive,
// wraps the result into o.Columns-sized groups joined by ",\n". With
// o.Columns at 0 the whole array goes on a single o.Sep-joined line.
func formatArray(a []float64, o *WriteOptions) string {
	vals := make([]string, len(a))
	for i, v := range a {
		vals[i] = fmt.Sprintf(o.Fmt, v)
	}
	if o.Columns > 0 {
		lines := make([]string, 0, len(vals)/o.Columns+1)
		for i := 0; i < len(vals); i += o.Columns {
			end := i + o.Columns
			if end > len(vals) {
				end = len(vals)
			}
			lines = append(lines, strings.Join(vals[i:end], o.Sep))
		}
		return strings.Join(lines, ",\n")
	}
	return strings.Join(vals, o.Sep)
}
