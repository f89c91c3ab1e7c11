/*
 * orbitstat.go, part of gorbit.
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

//Package orbitstat derives length and statistical summaries from an orbit
//dataset. Both derivations are pure functions of the dataset, they do no I/O.
package orbitstat

import (
	"fmt"
	"math"
	"sort"
	"strings"

	orbit "github.com/rmera/gorbit"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// LengthRow gives the element count of each component of one BPM.
type LengthRow struct {
	BPM  string
	LenX int
	LenY int
	LenZ int
}

// Lengths returns one row per BPM, in sorted-name order.
func Lengths(D *orbit.Dataset) []LengthRow {
	names := D.Names()
	rows := make([]LengthRow, len(names))
	for i, name := range names {
		x, _ := D.Get(name, "x")
		y, _ := D.Get(name, "y")
		z, _ := D.Get(name, "z")
		rows[i] = LengthRow{BPM: name, LenX: len(x), LenY: len(y), LenZ: len(z)}
	}
	return rows
}

// LengthTable renders length rows as a plain text table.
func LengthTable(rows []LengthRow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-20s %8s %8s %8s\n", "BPM", "len_x", "len_y", "len_z")
	for _, r := range rows {
		fmt.Fprintf(&b, "%-20s %8d %8d %8d\n", r.BPM, r.LenX, r.LenY, r.LenZ)
	}
	return b.String()
}

// StatRow gives the statistics of one (BPM, component) pair. For an empty
// component N is 0 and every float is NaN: the statistics are undefined, not
// zero. Std is the sample standard deviation (N-1 denominator) and is 0 when
// N is 1.
type StatRow struct {
	BPM         string
	Component   string
	N           int
	Mean        float64
	Std         float64
	Min         float64
	Max         float64
	Median      float64
	Percentiles []float64 //aligned with Summary.Percentiles
}

// Summary holds one StatRow per (BPM, component), ordered by BPM name and
// then component (x, y, z), plus the percentile points the rows were
// evaluated at.
type Summary struct {
	Percentiles []float64
	Rows        []StatRow
}

// Stats evaluates the statistics of every component of every BPM in D at the
// given percentiles, or at 5, 50 and 95 if none are given. Percentiles use
// the linear-interpolation definition over the sorted samples. A percentile
// outside [0,100] is a programming error and panics.
func Stats(D *orbit.Dataset, percentiles ...float64) *Summary {
	if len(percentiles) == 0 {
		percentiles = []float64{5, 50, 95}
	}
	for _, p := range percentiles {
		if p < 0 || p > 100 {
			panic(fmt.Sprintf("goOrbit/orbitstat: percentile %v out of [0,100]", p))
		}
	}
	S := &Summary{Percentiles: percentiles}
	for _, name := range D.Names() {
		for _, comp := range []string{"x", "y", "z"} {
			arr, _ := D.Get(name, comp)
			row := statsFor(arr, percentiles)
			row.BPM = name
			row.Component = comp
			S.Rows = append(S.Rows, row)
		}
	}
	return S
}

func statsFor(arr []float64, percentiles []float64) StatRow {
	row := StatRow{
		N:           len(arr),
		Mean:        math.NaN(),
		Std:         math.NaN(),
		Min:         math.NaN(),
		Max:         math.NaN(),
		Median:      math.NaN(),
		Percentiles: make([]float64, len(percentiles)),
	}
	if len(arr) == 0 {
		for i := range row.Percentiles {
			row.Percentiles[i] = math.NaN()
		}
		return row
	}
	row.Mean = stat.Mean(arr, nil)
	if len(arr) > 1 {
		row.Std = stat.StdDev(arr, nil)
	} else {
		row.Std = 0
	}
	row.Min = floats.Min(arr)
	row.Max = floats.Max(arr)
	sorted := make([]float64, len(arr))
	copy(sorted, arr)
	sort.Float64s(sorted)
	row.Median = percentile(sorted, 50)
	for i, p := range percentiles {
		row.Percentiles[i] = percentile(sorted, p)
	}
	return row
}

// percentile evaluates the p-th percentile of sorted by linear interpolation
// between the samples at the ranks bracketing p/100*(N-1). This is the
// convention of most plotting/array packages; gonum's stat.Quantile follows
// a different one, so we do it ourselves.
func percentile(sorted []float64, p float64) float64 {
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// String renders the summary as a plain text table, with one p-labeled
// column per requested percentile.
func (S *Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-20s %-9s %6s %12s %12s %12s", "BPM", "component", "n", "mean", "std", "min")
	for _, p := range S.Percentiles {
		fmt.Fprintf(&b, " %12s", fmt.Sprintf("p%02d", int(p)))
	}
	fmt.Fprintf(&b, " %12s %12s\n", "median", "max")
	for _, r := range S.Rows {
		fmt.Fprintf(&b, "%-20s %-9s %6d %12.5g %12.5g %12.5g", r.BPM, r.Component, r.N, r.Mean, r.Std, r.Min)
		for _, v := range r.Percentiles {
			fmt.Fprintf(&b, " %12.5g", v)
		}
		fmt.Fprintf(&b, " %12.5g %12.5g\n", r.Median, r.Max)
	}
	return b.String()
}
