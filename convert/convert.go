/*
 * convert.go, part of gorbit.
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

//Package convert batch-converts .sdds files to the .data format: it scans a
//directory for source files, runs the sdds reader and the paren writer on
//each, and classifies every file into one of four outcomes. Each file gets
//its own dataset, so callers may run conversions for different files
//concurrently.
package convert

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rmera/gorbit/paren"
	"github.com/rmera/gorbit/sdds"
)

// Status classifies the outcome of one file's conversion.
type Status int

const (
	OK            Status = iota //converted and written
	SkippedExists               //destination already exists and overwriting is off
	DryRun                      //nothing written, by request
	Failed                      //read, parse or write error
)

func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case SkippedExists:
		return "skipped_exists"
	case DryRun:
		return "dry_run"
	}
	return "error"
}

// Result is the outcome of converting one source file.
type Result struct {
	Src    string
	Dst    string
	Status Status
	Err    error //set only when Status is Failed
}

// Options controls a batch conversion. A nil Paren uses the .data writer's
// defaults.
type Options struct {
	Paren     *paren.WriteOptions
	Suffix    string //inserted before the .data extension of every output name
	Overwrite bool   //overwrite an existing destination instead of skipping it
	DryRun    bool   //classify and report, but write nothing
}

// Find returns the files under root whose base name matches the glob
// pattern, sorted. With recursive set, subdirectories are scanned too;
// otherwise only root's own entries are considered.
func Find(root, pattern string, recursive bool) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("goOrbit/convert: %s is not a folder", root)
	}
	var files []string
	if recursive {
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			ok, err := filepath.Match(pattern, d.Name())
			if err != nil {
				return err
			}
			if ok {
				files = append(files, path)
			}
			return nil
		})
	} else {
		files, err = filepath.Glob(filepath.Join(root, pattern))
	}
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// Destination returns the output path for src: the same directory and base
// name, with suffix appended to the stem and the extension replaced by
// ".data".
func Destination(src, suffix string) string {
	ext := filepath.Ext(src)
	return strings.TrimSuffix(src, ext) + suffix + ".data"
}

// One converts a single .sdds file, returning its outcome rather than an
// error: a failed conversion is a Failed result, so a batch caller can keep
// going and report at the end. A pre-existing destination is skipped unless
// overwriting was requested; a dry run classifies the file without touching
// the disk.
func One(src string, o *Options) Result {
	if o == nil {
		o = &Options{}
	}
	info, err := os.Stat(src)
	if err != nil || info.IsDir() {
		return Result{Src: src, Status: Failed, Err: fmt.Errorf("not a regular file: %s", src)}
	}
	dst := Destination(src, o.Suffix)
	if _, err := os.Stat(dst); err == nil && !o.Overwrite && !o.DryRun {
		return Result{Src: src, Dst: dst, Status: SkippedExists}
	}
	if o.DryRun {
		return Result{Src: src, Dst: dst, Status: DryRun}
	}
	D, err := sdds.Read(src)
	if err != nil {
		return Result{Src: src, Dst: dst, Status: Failed, Err: err}
	}
	if err := paren.Write(D, dst, o.Paren); err != nil {
		return Result{Src: src, Dst: dst, Status: Failed, Err: err}
	}
	return Result{Src: src, Dst: dst, Status: OK}
}
