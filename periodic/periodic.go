/*
 * periodic.go, part of Chemiverse.
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

//Package periodic provides the periodic-table reference data used by the
//rest of the library: translation between element symbols and atomic
//numbers, and Pauling electronegativities. The tables are built once at
//process start and never mutated afterwards, so they are safe for
//concurrent reads.
package periodic

import (
	"fmt"
	"strings"
)

// N is the number of elements in the table, i.e. the largest valid
// atomic number.
const N = 118

var symbolZ map[string]int

func init() {
	symbolZ = make(map[string]int, N)
	for z, s := range symbols {
		if z == 0 {
			continue
		}
		symbolZ[s] = z
	}
}

// Symbol returns the symbol of the element with atomic number z.
func Symbol(z int) (string, error) {
	if z < 1 || z > N {
		return "", &Error{fmt.Sprintf("periodic: no element with atomic number %d", z), []string{"Symbol"}}
	}
	return symbols[z], nil
}

// Number returns the atomic number of the element with the given symbol.
// The symbol is normalized before lookup, so "cl", "CL" and " Cl " all
// resolve to 17.
func Number(symbol string) (int, error) {
	z, ok := symbolZ[Normalize(symbol)]
	if !ok {
		return 0, &Error{fmt.Sprintf("periodic: unknown element symbol %q", symbol), []string{"Number"}}
	}
	return z, nil
}

// Normalize returns the standard capitalization of an element symbol:
// surrounding whitespace removed, first letter upper case, the rest
// lower case. It does not check that the result is a known symbol.
func Normalize(symbol string) string {
	s := strings.TrimSpace(symbol)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// Electronegativity returns the Pauling electronegativity of the element
// with atomic number z. The second return value is false when the element
// has no measured value, or when z is not a valid atomic number.
func Electronegativity(z int) (float64, bool) {
	en, ok := pauling[z]
	return en, ok
}

//Errors

// Error is the error type for failed lookups. It follows the same
// conventions as the root package's errors but is redeclared here to
// avoid a circular import.
type Error struct {
	message string
	deco    []string
}

// Error returns a string with an error message.
func (err *Error) Error() string {
	return err.message
}

// Decorate adds the dec string to the decoration slice of strings of the
// error, and returns the resulting slice. If dec is empty, the current
// slice is returned unchanged.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}
