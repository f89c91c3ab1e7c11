/*
 * orbit.go, part of gorbit.
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
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Triple holds the three per-turn sample arrays of one BPM. The arrays may
// have different lengths and may be empty, but are never nil in a Dataset.
type Triple struct {
	X []float64
	Y []float64
	Z []float64
}

// Dataset maps BPM names to their sample triples. It is built once, by a
// whole-file parse, and only read afterwards. BPM names are kept exactly as
// captured from the source file (case sensitive, no trimming).
type Dataset struct {
	bpms map[string]*Triple
}

// NewDataset builds a Dataset from the given map, which is taken over by the
// Dataset and must not be modified afterwards by the caller. Nil components
// are replaced by empty arrays, so every BPM always has its three arrays.
func NewDataset(bpms map[string]*Triple) *Dataset {
	if bpms == nil {
		bpms = map[string]*Triple{}
	}
	for _, t := range bpms {
		if t.X == nil {
			t.X = []float64{}
		}
		if t.Y == nil {
			t.Y = []float64{}
		}
		if t.Z == nil {
			t.Z = []float64{}
		}
	}
	return &Dataset{bpms: bpms}
}

// Len returns the number of BPMs in the dataset.
func (D *Dataset) Len() int {
	return len(D.bpms)
}

// Names returns the BPM names in ascending order. The order is derived on
// each call, the dataset itself stores none.
func (D *Dataset) Names() []string {
	names := make([]string, 0, len(D.bpms))
	for name := range D.bpms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the sample array for the given BPM and component. The component
// selector is one of "x", "y" or "z", case-insensitive and with surrounding
// whitespace ignored; anything else is a caller error. Asking for a BPM that
// is not in the dataset returns an error enumerating every BPM that is, so an
// interactive caller can see at once what went wrong.
func (D *Dataset) Get(bpm, component string) ([]float64, error) {
	comp := strings.ToLower(strings.TrimSpace(component))
	if comp != "x" && comp != "y" && comp != "z" {
		return nil, CError{fmt.Sprintf("goOrbit: component must be 'x', 'y', or 'z', got '%s'", component), []string{"Get"}}
	}
	t, ok := D.bpms[bpm]
	if !ok {
		return nil, CError{fmt.Sprintf("BPM '%s' not found. Available: %s", bpm, strings.Join(D.Names(), ", ")), []string{"Get"}}
	}
	switch comp {
	case "x":
		return t.X, nil
	case "y":
		return t.Y, nil
	}
	return t.Z, nil
}

// Normalize returns a with its length forced to exactly n samples: a longer
// array is truncated to its first n elements, a shorter one is padded with
// trailing zeros. An array already of length n is returned as is. A negative
// n is taken as 0.
func Normalize(a []float64, n int) []float64 {
	if n < 0 {
		n = 0
	}
	if len(a) > n {
		return a[:n]
	}
	if len(a) < n {
		ret := make([]float64, n)
		copy(ret, a)
		return ret
	}
	return a
}

// ModeLength returns the most frequent value in lens. Ties are broken in
// favor of the value appearing first in the slice, so callers that need
// determinism should pass lengths in a deterministic order (say, over the
// sorted BPM names). An empty slice returns 0.
func ModeLength(lens []int) int {
	counts := make(map[int]int, len(lens))
	for _, v := range lens {
		counts[v]++
	}
	best := 0
	bestcount := 0
	for _, v := range lens {
		if counts[v] > bestcount {
			best = v
			bestcount = counts[v]
		}
	}
	return best
}

// PlaneMatrix stacks one component of every BPM into a dense matrix with one
// row per BPM, in sorted-name order, and turns columns. Each row is
// normalized to the requested length with Normalize. If turns is zero or
// negative, the most frequent length of the requested component is used.
// The dataset's arrays are copied, the matrix does not alias them.
func (D *Dataset) PlaneMatrix(component string, turns int) (*mat.Dense, error) {
	names := D.Names()
	if len(names) == 0 {
		return nil, CError{"goOrbit: can't build a matrix from an empty dataset", []string{"PlaneMatrix"}}
	}
	rows := make([][]float64, len(names))
	lens := make([]int, len(names))
	for i, name := range names {
		comp, err := D.Get(name, component)
		if err != nil {
			return nil, errDecorate(err, "PlaneMatrix")
		}
		rows[i] = comp
		lens[i] = len(comp)
	}
	if turns <= 0 {
		turns = ModeLength(lens)
	}
	if turns == 0 {
		return nil, CError{fmt.Sprintf("goOrbit: component '%s' has no samples to build a matrix from", component), []string{"PlaneMatrix"}}
	}
	ret := mat.NewDense(len(names), turns, nil)
	for i, row := range rows {
		ret.SetRow(i, Normalize(row, turns))
	}
	return ret, nil
}

// errDecorate asserts that err implements orbit.Error and decorates it with
// the caller's name before returning it.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}
