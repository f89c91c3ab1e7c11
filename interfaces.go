/*
 * interfaces.go, part of gorbit.
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

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else. Each call also returns the "decoration" slice of strings
// resulting from the current call. If passed an empty string, it should just return the current value, not add the empty string to the slice.
// The decorate slice should contain a list of functions in the calling stack, plus, for each function, any relevant information, or nothing.
// If information is to be added to an element of the slice, it should be in this format: "FunctionName: Extra info"
type Error interface {
	Error() string
	Decorate(string) []string
}

// FileError is the interface for errors in orbit-data files
type FileError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}
