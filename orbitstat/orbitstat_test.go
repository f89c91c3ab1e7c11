/*
 * orbitstat_test.go, part of gorbit.
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
 */

package orbitstat

import (
	"fmt"
	"math"
	"testing"

	orbit "github.com/rmera/gorbit"
)

func TestLengths(Te *testing.T) {
	D := orbit.NewDataset(map[string]*orbit.Triple{
		"B": {X: []float64{1, 2, 3}, Y: []float64{4}},
		"A": {X: []float64{5, 6}},
	})
	rows := Lengths(D)
	if len(rows) != 2 || rows[0].BPM != "A" || rows[1].BPM != "B" {
		Te.Fatalf("rows not in sorted order: %v", rows)
	}
	if rows[0].LenX != 2 || rows[0].LenY != 0 || rows[0].LenZ != 0 {
		Te.Errorf("A lengths: %+v", rows[0])
	}
	if rows[1].LenX != 3 || rows[1].LenY != 1 {
		Te.Errorf("B lengths: %+v", rows[1])
	}
	fmt.Println(LengthTable(rows))
}

func TestStats(Te *testing.T) {
	D := orbit.NewDataset(map[string]*orbit.Triple{
		"A": {X: []float64{1, 2, 3, 4, 5}, Y: []float64{7}},
	})
	S := Stats(D)
	if len(S.Rows) != 3 {
		Te.Fatalf("got %d rows, want 3", len(S.Rows))
	}
	x := S.Rows[0]
	if x.Component != "x" || x.N != 5 {
		Te.Fatalf("first row: %+v", x)
	}
	if x.Mean != 3 {
		Te.Errorf("mean: %v", x.Mean)
	}
	//sample standard deviation of 1..5
	if math.Abs(x.Std-math.Sqrt(2.5)) > 1e-12 {
		Te.Errorf("std: %v", x.Std)
	}
	if x.Min != 1 || x.Max != 5 || x.Median != 3 {
		Te.Errorf("min/median/max: %v %v %v", x.Min, x.Median, x.Max)
	}
	//linear interpolation: p05 of 1..5 is 1.2, p95 is 4.8
	if math.Abs(x.Percentiles[0]-1.2) > 1e-12 || math.Abs(x.Percentiles[2]-4.8) > 1e-12 {
		Te.Errorf("percentiles: %v", x.Percentiles)
	}
	//a single sample has zero spread, not NaN
	y := S.Rows[1]
	if y.Component != "y" || y.N != 1 || y.Std != 0 || y.Mean != 7 || y.Median != 7 {
		Te.Errorf("single-sample row: %+v", y)
	}
}

func TestStatsEmpty(Te *testing.T) {
	//an empty component reports count 0 and every statistic undefined, never zero
	D := orbit.NewDataset(map[string]*orbit.Triple{"A": {}})
	S := Stats(D, 5, 50, 95)
	for _, r := range S.Rows {
		if r.N != 0 {
			Te.Errorf("%s %s: n=%d, want 0", r.BPM, r.Component, r.N)
		}
		for _, v := range []float64{r.Mean, r.Std, r.Min, r.Max, r.Median} {
			if !math.IsNaN(v) {
				Te.Errorf("%s %s: statistic %v should be NaN", r.BPM, r.Component, v)
			}
		}
		for _, v := range r.Percentiles {
			if !math.IsNaN(v) {
				Te.Errorf("%s %s: percentile %v should be NaN", r.BPM, r.Component, v)
			}
		}
	}
	fmt.Println(S.String())
}

func TestStatsBadPercentile(Te *testing.T) {
	defer func() {
		if recover() == nil {
			Te.Error("out-of-range percentile should panic")
		}
	}()
	Stats(orbit.NewDataset(nil), 101)
}
