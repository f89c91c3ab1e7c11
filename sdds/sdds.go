/*
 * sdds.go, part of gorbit.
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

//Package sdds reads and writes the row-tagged tabular orbit format
//(".sdds"). Lines starting with '#' are metadata, every other non-empty
//line is
//
//	<0|1> <bpm name> <value> <value> ...
//
//where the leading tag selects the horizontal (0, x) or vertical (1, y)
//plane. The format carries no z component; the reader synthesizes it as
//zeros so every BPM still presents the full x/y/z triple.
package sdds

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	orbit "github.com/rmera/gorbit"
)

// Read parses the .sdds file with the given name into a dataset. Files whose
// name ends in .gz or .zst/.zstd are decompressed on the fly. Invalid byte
// sequences in the file are replaced with the Unicode replacement character
// rather than failing the read.
func Read(name string) (*orbit.Dataset, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"Read"}, true}
	}
	defer f.Close()
	r, err := orbit.DecompressReader(f, name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"Read"}, true}
	}
	defer r.Close()
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, Error{ReadError + ": " + err.Error(), name, []string{"Read"}, true}
	}
	//best-effort decoding, we'd rather read a mangled name than drop a whole measurement file.
	D, err := Parse(strings.ToValidUTF8(string(raw), "�"))
	if err != nil {
		if perr, ok := err.(Error); ok {
			perr.filename = name
			return nil, perr
		}
		return nil, Error{err.Error(), name, []string{"Read"}, true}
	}
	return D, nil
}

// Parse parses .sdds text already in memory. Samples from successive lines
// with the same tag and BPM name are concatenated in file order. After all
// lines are consumed, a BPM with only one of x/y gets the other mirrored as
// zeros of the same length, and z is synthesized as zeros of x's length.
func Parse(text string) (*orbit.Dataset, error) {
	bpms := map[string]*orbit.Triple{}
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tag, name, payload := splitDataLine(line)
		if payload == "" {
			continue //fewer than 3 fields, not a data line
		}
		if tag != "0" && tag != "1" {
			continue
		}
		nums, err := orbit.ParseFloats(payload)
		if err != nil {
			return nil, Error{fmt.Sprintf("in line of BPM '%s': %s", name, err.Error()), "", []string{"Parse"}, true}
		}
		if len(nums) == 0 {
			continue
		}
		t, ok := bpms[name]
		if !ok {
			t = &orbit.Triple{}
			bpms[name] = t
		}
		if tag == "0" {
			t.X = append(t.X, nums...)
		} else {
			t.Y = append(t.Y, nums...)
		}
	}
	for _, t := range bpms {
		if len(t.X) == 0 && len(t.Y) > 0 {
			t.X = make([]float64, len(t.Y))
		}
		if len(t.Y) == 0 && len(t.X) > 0 {
			t.Y = make([]float64, len(t.X))
		}
		t.Z = make([]float64, len(t.X))
	}
	return orbit.NewDataset(bpms), nil
}

// splitDataLine splits a line into at most three whitespace-delimited
// fields: plane tag, BPM name and the payload, which keeps its internal
// whitespace. A line with fewer than three fields returns an empty payload.
func splitDataLine(line string) (tag, name, payload string) {
	tag, rest := firstField(line)
	name, payload = firstField(rest)
	return tag, name, payload
}

func firstField(s string) (field, rest string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeftFunc(s[i:], unicode.IsSpace)
}

//Errors

// errDecorate asserts that err implements orbit.Error and decorates it with
// the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(orbit.Error)
	err2.Decorate(caller)
	return err2
}

// Error is the general structure for .sdds format errors. It fulfills
// orbit.Error and orbit.FileError
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf(".sdds error: %s", err.message)
	}
	return fmt.Sprintf(".sdds file %s error: %s", err.filename, err.message)
}

// Decorate adds new information to the error
func (E Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

// FileName returns the file to which the failing operation was associated
func (err Error) FileName() string { return err.filename }

// Format returns the format of the file (always "sdds") associated to the error
func (err Error) Format() string { return "sdds" }

// Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	UnableToOpen  = "Unable to open file"
	UnableToWrite = "Unable to write file"
	ReadError     = "Error reading file"
)
