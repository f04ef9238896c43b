/*
 * errors.go, part of Chemiverse.
 *
 * Copyright 2026 The Chemiverse developers
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

package chemiverse

// Kind classifies the failures this library reports.
type Kind int

const (
	// UnknownElement means a symbol or atomic number has no entry in the
	// periodic table.
	UnknownElement Kind = iota + 1
	// InvalidKey means a composition key is neither a usable atomic number
	// nor an element symbol.
	InvalidKey
	// InvalidCount means an atom count is zero or negative.
	InvalidCount
	// InvalidSortMethod means an unrecognized sorting method was requested.
	InvalidSortMethod
)

func (k Kind) String() string {
	switch k {
	case UnknownElement:
		return "unknown element"
	case InvalidKey:
		return "invalid composition key"
	case InvalidCount:
		return "invalid atom count"
	case InvalidSortMethod:
		return "invalid sorting method"
	default:
		return "unknown"
	}
}

// Error is the interface for errors returned by this library. The Decorate
// method allows to add and retrieve info from the error as it is passed up,
// without changing its type or wrapping it around something else. Kind
// tells the caller what went wrong without parsing the message.
type Error interface {
	error
	Decorate(string) []string
	Kind() Kind
}

// CError is the concrete type implementing Error in this package.
type CError struct {
	kind Kind
	msg  string
	deco []string
}

// Error returns a string with an error message.
func (err *CError) Error() string {
	return err.msg
}

// Kind returns the classification of the error.
func (err *CError) Kind() Kind {
	return err.kind
}

// Decorate adds the dec string to the decoration slice of strings of the
// error, and returns the resulting slice. If dec is empty, the current
// slice is returned unchanged. The decoration slice should contain the
// functions in the calling stack, plus, for each, any relevant information.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// errDecorate decorates err with the caller's name before passing it up.
// Errors produced in this package always implement Error; anything else is
// returned untouched.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

// IsKind reports whether err is a library error of kind k. It is a
// convenience for callers that only need to branch on the failure class.
func IsKind(err error, k Kind) bool {
	err2, ok := err.(Error)
	return ok && err2.Kind() == k
}
