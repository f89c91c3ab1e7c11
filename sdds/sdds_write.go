/*
 * sdds_write.go, part of gorbit.
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

package sdds

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	orbit "github.com/rmera/gorbit"
)

// WriteOptions controls the serialization to the .sdds format. The zero
// value is not useful, start from DefaultWriteOptions.
type WriteOptions struct {
	Beam   string //beam identifier for the header
	RingID string //optional ring identifier; empty omits the line
	Turns  int    //target samples per BPM; 0 or negative picks the most frequent x length
	Fmt    string //Sprintf verb for each value
	Header []string
}

// DefaultWriteOptions returns the options used when Write is given nil:
// beam "Unknown", no ring identifier, automatic turn count and values in
// shortest form with 7 significant digits.
func DefaultWriteOptions() *WriteOptions {
	return &WriteOptions{
		Beam: "Unknown",
		Fmt:  "%.7g",
	}
}

// Write serializes D to the .sdds file with the given name, creating or
// truncating it. A name ending in .gz or .zst/.zstd produces a compressed
// file.
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
	if err := w.Close(); err != nil {
		return Error{UnableToWrite + ": " + err.Error(), name, []string{"Write"}, true}
	}
	return nil
}

// Serialize writes the .sdds rendition of D to w: a '#'-prefixed metadata
// block, then, for every BPM in sorted-name order, one tag-0 line with the x
// samples and one tag-1 line with the y samples, both forced to exactly the
// target turn count with orbit.Normalize. z is not part of the format and is
// not written; no sample is dropped here, the leading-sample convention
// belongs to the .data writer alone.
func Serialize(D *orbit.Dataset, w io.Writer, o *WriteOptions) error {
	if o == nil {
		o = DefaultWriteOptions()
	}
	names := D.Names()
	lens := make([]int, len(names))
	xs := make([][]float64, len(names))
	ys := make([][]float64, len(names))
	for i, name := range names {
		x, err := D.Get(name, "x")
		if err != nil {
			return errDecorate(err, "Serialize")
		}
		y, err := D.Get(name, "y")
		if err != nil {
			return errDecorate(err, "Serialize")
		}
		xs[i] = x
		ys[i] = y
		lens[i] = len(x)
	}
	turns := o.Turns
	if turns <= 0 {
		turns = orbit.ModeLength(lens)
	}
	bw := bufio.NewWriter(w)
	bw.WriteString("# SDDSASCIIFORMAT v1\n")
	fmt.Fprintf(bw, "# Beam: %s\n", o.Beam)
	if o.RingID != "" {
		fmt.Fprintf(bw, "# RingID: %s\n", o.RingID)
	}
	fmt.Fprintf(bw, "# number of turns : %16.7f\n", float64(turns))
	fmt.Fprintf(bw, "# number of monitors : %16.7f\n", float64(len(names)))
	for _, line := range o.Header {
		fmt.Fprintf(bw, "# %s\n", strings.TrimRight(line, " \t\r\n"))
	}
	for i, name := range names {
		x := orbit.Normalize(xs[i], turns)
		y := orbit.Normalize(ys[i], turns)
		if len(y) == 0 && turns > 0 {
			y = make([]float64, turns)
		}
		fmt.Fprintf(bw, "0 %s %s\n", name, joinValues(x, o.Fmt))
		fmt.Fprintf(bw, "1 %s %s\n", name, joinValues(y, o.Fmt))
	}
	if err := bw.Flush(); err != nil {
		return Error{UnableToWrite + ": " + err.Error(), "", []string{"Serialize"}, true}
	}
	return nil
}

func joinValues(a []float64, format string) string {
	vals := make([]string, len(a))
	for i, v := range a {
		vals[i] = fmt.Sprintf(format, v)
	}
	return strings.Join(vals, " ")
}
