/*
 * paren.go, part of gorbit.
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

//Package paren reads and writes the parenthesized nested-array orbit format
//(".data"). A file is a sequence of entries
//
//	("BPMNAME"->{{x values},{y values},{z values}})
//
//in any order, optionally wrapped in an outer brace pair carrying header
//text. Numeric literals may be split across physical lines with a trailing
//backslash; the pieces are joined back before tokenization.
package paren

import (
	"fmt"
	"io"
	"os"
	"regexp"

	orbit "github.com/rmera/gorbit"
)

//One entry per BPM: quoted name, arrow, three brace-delimited numeric bodies.
//The whole text is scanned for every match; entries need not be separated by
//commas and anything between them is ignored.
var entryRe = regexp.MustCompile(`\("\s*([^"]+)\s*"\s*->\s*` +
	`\{\s*\{\s*([^{}]*)\}\s*,\s*` +
	`\{\s*([^{}]*)\}\s*,\s*` +
	`\{\s*([^{}]*)\}\s*\}\s*` +
	`\)`)

// Read parses the .data file with the given name into a dataset. Files whose
// name ends in .gz or .zst/.zstd are decompressed on the fly. A file with no
// entries yields an empty dataset, not an error; a numeric token that does
// not parse inside a recognized entry makes the whole read fail.
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
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, Error{ReadError + ": " + err.Error(), name, []string{"Read"}, true}
	}
	D, err := Parse(string(text))
	if err != nil {
		if perr, ok := err.(Error); ok {
			perr.filename = name
			return nil, perr
		}
		return nil, Error{err.Error(), name, []string{"Read"}, true}
	}
	return D, nil
}

// Parse parses .data text already in memory. Line continuations are joined
// first, so a numeric literal split across lines parses the same as the
// unsplit literal.
func Parse(text string) (*orbit.Dataset, error) {
	text = orbit.JoinContinuations(text)
	bpms := map[string]*orbit.Triple{}
	for _, m := range entryRe.FindAllStringSubmatch(text, -1) {
		name := m[1]
		x, err := orbit.ParseFloats(m[2])
		if err != nil {
			return nil, Error{fmt.Sprintf("in x block of BPM '%s': %s", name, err.Error()), "", []string{"Parse"}, true}
		}
		y, err := orbit.ParseFloats(m[3])
		if err != nil {
			return nil, Error{fmt.Sprintf("in y block of BPM '%s': %s", name, err.Error()), "", []string{"Parse"}, true}
		}
		z, err := orbit.ParseFloats(m[4])
		if err != nil {
			return nil, Error{fmt.Sprintf("in z block of BPM '%s': %s", name, err.Error()), "", []string{"Parse"}, true}
		}
		bpms[name] = &orbit.Triple{X: x, Y: y, Z: z}
	}
	return orbit.NewDataset(bpms), nil
}

//Errors

// errDecorate asserts that err implements orbit.Error and decorates it with
// the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(orbit.Error)
	err2.Decorate(caller)
	return err2
}

// Error is the general structure for .data format errors. It fulfills
// orbit.Error and orbit.FileError
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf(".data error: %s", err.message)
	}
	return fmt.Sprintf(".data file %s error: %s", err.filename, err.message)
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

// Format returns the format of the file (always "data") associated to the error
func (err Error) Format() string { return "data" }

// Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	UnableToOpen  = "Unable to open file"
	UnableToWrite = "Unable to write file"
	ReadError     = "Error reading file"
	WrongFormat   = "Wrong format in the .data file"
)
