/*
 * token.go, part of gorbit.
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
	"regexp"
	"strconv"
)

// The one numeric grammar shared by both orbit formats: optional sign, either
// digits-dot-digits or bare digits, optional E/e exponent with optional sign.
var numberRe = regexp.MustCompile(`[+-]?(\d*\.\d+|\d+)([Ee][+-]?\d+)?`)

// A backslash immediately before a newline splits a numeric literal across
// two physical lines. The whole sequence, surrounding whitespace included,
// must go away before tokenization so the literal is reassembled.
var continuationRe = regexp.MustCompile(`\\\s*\n\s*`)

// JoinContinuations removes every backslash-newline line-continuation from
// text, joining the pieces of any numeric literal split across lines.
// It must be applied before ParseFloats on any text that may carry
// continuations.
func JoinContinuations(text string) string {
	return continuationRe.ReplaceAllString(text, "")
}

// ParseFloats extracts every substring of text matching the numeric-token
// grammar and parses each as a 64-bit float. Separators between tokens
// (commas, whitespace, stray braces) are simply not matched, so they need no
// handling. A token that fails to parse makes the whole call fail.
func ParseFloats(text string) ([]float64, error) {
	tokens := numberRe.FindAllString(text, -1)
	ret := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, CError{fmt.Sprintf("goOrbit: can't parse numeric token '%s': %s", tok, err.Error()), []string{"ParseFloats"}}
		}
		ret = append(ret, v)
	}
	return ret, nil
}
