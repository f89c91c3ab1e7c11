/*
 * doc.go, part of gorbit.
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

/*Package orbit is the main package of the goOrbit library. It provides the in-memory
model for beam-position-monitor (BPM) turn-by-turn orbit data, together with the
numeric tokenizer and the transparent-compression helpers shared by the format
packages.


	**goOrbit Capabilities**

    Reads/writes the parenthesized nested-array orbit format (".data", package paren).

    Reads/writes the row-tagged tabular orbit format (".sdds", package sdds).

    Transcodes between both formats, preserving the per-BPM x/y/z sample arrays
	subject to the documented lossy transforms of each writer.

    Summarizes a dataset: per-BPM array lengths, and per-component statistics
	(count, mean, sample standard deviation, min, max, median, percentiles;
	package orbitstat).

    Batch-converts whole directories of .sdds files, one worker per file
	(package convert and the sdds2data program).

    Transparently compresses/decompresses files whose names end in .gz
	or .zst/.zstd.


******************** Dataset model   ***************************************************

A dataset maps each BPM name to a triple of sample arrays, x, y and z, one sample
per machine turn (index 0 is the first turn). The three arrays of a BPM may have
different lengths, and any of them may be empty, but none is ever absent: a missing
component is a zero-length array. BPM names are the literal tokens captured from the
source file. No normalization of case or whitespace is applied to them, and the
dataset itself keeps no ordering; consumers that need determinism iterate over the
sorted name list.

A dataset is built once, by a whole-file parse, and only read afterwards. Each
dataset belongs to a single conversion, so independent files can be processed
concurrently without locking.

****************************************************************************************/

package orbit
