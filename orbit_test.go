/*
 * orbit_test.go, part of gorbit.
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

package orbit

import (
	"fmt"
	"strings"
	"testing"
)

func TestParseFloats(Te *testing.T) {
	got, err := ParseFloats(" 1.0, -2.5e-3\t+4 .5 1e3 {7.25},")
	if err != nil {
		Te.Fatal(err)
	}
	want := []float64{1.0, -0.0025, 4, 0.5, 1e3, 7.25}
	if len(got) != len(want) {
		Te.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i, v := range want {
		if got[i] != v {
			Te.Errorf("token %d: got %v, want %v", i, got[i], v)
		}
	}
}

func TestJoinContinuations(Te *testing.T) {
	//a numeric literal split by a backslash-newline must parse as the unsplit literal
	split := "12\\\n345"
	got, err := ParseFloats(JoinContinuations(split))
	if err != nil {
		Te.Fatal(err)
	}
	if len(got) != 1 || got[0] != 12345 {
		Te.Errorf("split literal parsed to %v, want [12345]", got)
	}
	//whitespace around the break goes away too
	got, err = ParseFloats(JoinContinuations("6.\\   \n   25"))
	if err != nil {
		Te.Fatal(err)
	}
	if len(got) != 1 || got[0] != 6.25 {
		Te.Errorf("split literal parsed to %v, want [6.25]", got)
	}
}

func TestNormalize(Te *testing.T) {
	a := []float64{1, 2, 3}
	same := Normalize(a, 3)
	if len(same) != 3 || same[0] != 1 || same[2] != 3 {
		Te.Errorf("normalizing to the same length changed the array: %v", same)
	}
	short := Normalize(a, 2)
	if len(short) != 2 || short[0] != 1 || short[1] != 2 {
		Te.Errorf("truncation kept the wrong samples: %v", short)
	}
	long := Normalize(a, 5)
	if len(long) != 5 || long[2] != 3 || long[3] != 0 || long[4] != 0 {
		Te.Errorf("padding produced %v", long)
	}
	if len(Normalize(nil, 0)) != 0 || len(Normalize(nil, -1)) != 0 {
		Te.Error("empty/negative targets should produce empty arrays")
	}
}

func TestModeLength(Te *testing.T) {
	if m := ModeLength([]int{5, 3, 5, 4, 5, 3}); m != 5 {
		Te.Errorf("mode: got %d, want 5", m)
	}
	//ties go to the value seen first
	if m := ModeLength([]int{4, 7, 7, 4}); m != 4 {
		Te.Errorf("tie break: got %d, want 4", m)
	}
	if m := ModeLength(nil); m != 0 {
		Te.Errorf("empty: got %d, want 0", m)
	}
}

func testDataset() *Dataset {
	return NewDataset(map[string]*Triple{
		"BPMB": {X: []float64{1, 2, 3}, Y: []float64{4, 5, 6}},
		"BPMA": {X: []float64{7, 8}},
	})
}

func TestDatasetNames(Te *testing.T) {
	names := testDataset().Names()
	if len(names) != 2 || names[0] != "BPMA" || names[1] != "BPMB" {
		Te.Errorf("names not sorted: %v", names)
	}
}

func TestDatasetGet(Te *testing.T) {
	D := testDataset()
	//the selector is case-insensitive and trimmed
	x, err := D.Get("BPMB", " X ")
	if err != nil {
		Te.Fatal(err)
	}
	if len(x) != 3 || x[0] != 1 {
		Te.Errorf("got %v", x)
	}
	//nil components come back as empty arrays, never nil
	z, err := D.Get("BPMA", "z")
	if err != nil {
		Te.Fatal(err)
	}
	if z == nil || len(z) != 0 {
		Te.Errorf("z should be an empty array, got %v", z)
	}
	if _, err := D.Get("BPMB", "w"); err == nil {
		Te.Error("bad component selector should fail")
	}
}

func TestDatasetGetNotFound(Te *testing.T) {
	D := testDataset()
	_, err := D.Get("NOSUCH", "x")
	if err == nil {
		Te.Fatal("lookup of a missing BPM should fail")
	}
	fmt.Println("not-found message:", err.Error())
	//the message must enumerate every loaded BPM, sorted
	if !strings.Contains(err.Error(), "BPMA, BPMB") {
		Te.Errorf("message does not list the known BPMs: %s", err.Error())
	}
	if !strings.Contains(err.Error(), "'NOSUCH'") {
		Te.Errorf("message does not name the attempted key: %s", err.Error())
	}
}

func TestPlaneMatrix(Te *testing.T) {
	D := testDataset()
	//x lengths are 2 and 3, once each; the tie goes to the first over the
	//sorted names, so the mode is BPMA's 2
	M, err := D.PlaneMatrix("x", 0)
	if err != nil {
		Te.Fatal(err)
	}
	r, c := M.Dims()
	if r != 2 || c != 2 {
		Te.Fatalf("dims %dx%d, want 2x2", r, c)
	}
	if M.At(0, 0) != 7 || M.At(1, 1) != 2 {
		Te.Errorf("wrong values: %v %v", M.At(0, 0), M.At(1, 1))
	}
	M, err = D.PlaneMatrix("y", 3)
	if err != nil {
		Te.Fatal(err)
	}
	//BPMA has no y, so its row is all padding
	if M.At(0, 0) != 0 || M.At(1, 0) != 4 {
		Te.Errorf("wrong values: %v %v", M.At(0, 0), M.At(1, 0))
	}
	if _, err := NewDataset(nil).PlaneMatrix("x", 0); err == nil {
		Te.Error("empty dataset should fail")
	}
}
