/*
 * main.go, part of gorbit.
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

//sdds2data scans a folder for .sdds files and converts each to the .data
//parentheses format, saving next to the source file. Files are independent,
//so they are converted in parallel, one worker per file, bounded by the
//number of CPUs. The exit status is non-zero if, and only if, at least one
//file failed to convert.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rmera/gorbit/convert"
	"github.com/rmera/gorbit/paren"
	"github.com/soniakeys/exit"
	"golang.org/x/sync/errgroup"
)

func main() {
	defer exit.Handler()
	pattern := flag.String("pattern", "*.sdds", "glob pattern for the source files")
	recursive := flag.Bool("r", false, "recurse into subfolders")
	includeZ := flag.Bool("include-z", true, "fill the z blocks with the placeholder constant; off writes zero-filled z blocks instead")
	format := flag.String("fmt", "%.7g", `number format, e.g. "%.7g" or "%.7f"`)
	wrap := flag.Int("wrap", 6, "values per line in the output arrays; 0 writes each array on a single line")
	suffix := flag.String("suffix", "", `optional suffix for the output base name (e.g. "_conv" -> file_conv.data)`)
	overwrite := flag.Bool("overwrite", false, "overwrite existing .data files")
	dryRun := flag.Bool("dry-run", false, "show what would be converted, without writing files")
	scale := flag.Float64("scale", 1.0, "scale factor for the data values")
	header := flag.String("header", "", "header text written inside the outer brace pair; empty writes no header")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] folder\nConvert .sdds files to .data (parentheses format) in place.\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		exit.Log("expected exactly one folder argument")
	}
	root := flag.Arg(0)

	files, err := convert.Find(root, *pattern, *recursive)
	if err != nil {
		exit.Log(err)
	}
	if len(files) == 0 {
		fmt.Println("No files matched.")
		return
	}
	fmt.Printf("Found %d file(s). Converting...\n", len(files))

	po := paren.DefaultWriteOptions()
	po.IncludeZ = *includeZ
	po.Fmt = *format
	po.Columns = *wrap
	po.Scale = *scale
	if *header != "" {
		po.Header = []string{*header}
	}
	o := &convert.Options{
		Paren:     po,
		Suffix:    *suffix,
		Overwrite: *overwrite,
		DryRun:    *dryRun,
	}

	//Every file gets its own dataset, so the conversions don't share anything
	//and can just run in parallel. Results land in a slice indexed by file,
	//which keeps the report in input order no matter who finishes first.
	results := make([]convert.Result, len(files))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, src := range files {
		i, src := i, src
		g.Go(func() error {
			results[i] = convert.One(src, o)
			return nil
		})
	}
	g.Wait()

	var ok, skipped, dry, failed int
	for _, r := range results {
		switch r.Status {
		case convert.OK:
			ok++
			fmt.Printf("[OK] %s -> %s\n", filepath.Base(r.Src), filepath.Base(r.Dst))
		case convert.SkippedExists:
			skipped++
			fmt.Printf("[SKIP] %s -> %s (exists; use -overwrite or -suffix)\n", filepath.Base(r.Src), filepath.Base(r.Dst))
		case convert.DryRun:
			dry++
			fmt.Printf("[DRY] %s -> %s\n", filepath.Base(r.Src), filepath.Base(r.Dst))
		case convert.Failed:
			failed++
			fmt.Printf("[ERR] %s: %v\n", filepath.Base(r.Src), r.Err)
		}
	}

	fmt.Println("\nSummary:")
	fmt.Printf("  OK     : %d\n", ok)
	fmt.Printf("  Skipped: %d\n", skipped)
	fmt.Printf("  DryRun : %d\n", dry)
	fmt.Printf("  Errors : %d\n", failed)

	if failed > 0 {
		os.Exit(1)
	}
}
