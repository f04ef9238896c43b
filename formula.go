/*
 * formula.go, part of Chemiverse.
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

import (
	"fmt"
	"math"
	"sort"

	"github.com/Scinformatic/Chemiverse/periodic"
)

//Sorting method selectors.
const (
	// IUPAC sorts following the standard IUPAC convention: if carbon is
	// present it is listed first, followed by hydrogen, and then the other
	// elements in alphabetical order. Otherwise, elements are listed from
	// the most electropositive to the most electronegative.
	IUPAC = "iupac"
	// NoSort leaves the composition in construction order. It is only
	// meaningful to FromCounts; Sort rejects it.
	NoSort = "none"
)

const (
	zHydrogen = 1
	zCarbon   = 6
)

// Atom is one entry of a formula composition: an element, keyed either by
// atomic number or by symbol, together with its atom count. Build entries
// with ByNumber or BySymbol; the zero Atom is not a valid key.
type Atom struct {
	z      int
	symbol string
	n      int
}

// ByNumber returns a composition entry for the element with atomic number
// z, appearing n times in the formula.
func ByNumber(z, n int) Atom {
	return Atom{z: z, n: n}
}

// BySymbol returns a composition entry for the element with the given
// symbol, appearing n times in the formula. The symbol is normalized at
// construction, so "na", "NA" and " Na " all mean sodium.
func BySymbol(symbol string, n int) Atom {
	return Atom{symbol: symbol, n: n}
}

type atomCount struct {
	z int
	n int
}

// Formula represents a molecular formula: an ordered mapping from elements
// to atom counts, plus the net charge of the species. Internally elements
// are keyed by atomic number only; symbols are derived through the periodic
// tables on demand. A Formula is immutable after construction: Sort returns
// a fresh value and no method mutates the receiver.
type Formula struct {
	atoms  []atomCount
	charge int
}

// New builds a Formula with the given charge from the given composition
// entries, in the order they appear. ByNumber and BySymbol entries may be
// mixed freely. Every entry must resolve through the periodic tables and
// carry a positive count; otherwise no Formula is returned. A repeated
// element keeps its first position in the composition and takes the last
// count given for it.
func New(charge int, atoms ...Atom) (*Formula, error) {
	F := &Formula{atoms: make([]atomCount, 0, len(atoms)), charge: charge}
	for _, at := range atoms {
		z, err := resolve(at)
		if err != nil {
			return nil, errDecorate(err, "New")
		}
		if at.n < 1 {
			s, _ := periodic.Symbol(z)
			return nil, &CError{InvalidCount, fmt.Sprintf("chemiverse: invalid count %d for element %s", at.n, s), []string{"New"}}
		}
		if i := index(F.atoms, z); i >= 0 {
			F.atoms[i].n = at.n
			continue
		}
		F.atoms = append(F.atoms, atomCount{z, at.n})
	}
	return F, nil
}

// FromCounts creates a Formula from a slice of composition entries and a
// charge, and then sorts it with the given method. The empty string selects
// the IUPAC default; NoSort keeps the composition in the order given. This
// is the main entry point of the library.
func FromCounts(atoms []Atom, charge int, method string) (*Formula, error) {
	F, err := New(charge, atoms...)
	if err != nil {
		return nil, errDecorate(err, "FromCounts")
	}
	if method == NoSort {
		return F, nil
	}
	if method == "" {
		method = IUPAC
	}
	F, err = F.Sort(method)
	if err != nil {
		return nil, errDecorate(err, "FromCounts")
	}
	return F, nil
}

//resolve returns the atomic number for the element keyed by the entry,
//checking it against the periodic tables.
func resolve(at Atom) (int, error) {
	switch {
	case at.symbol == "" && at.z > 0:
		if _, err := periodic.Symbol(at.z); err != nil {
			return 0, &CError{UnknownElement, err.Error(), []string{"resolve"}}
		}
		return at.z, nil
	case at.symbol != "" && at.z == 0:
		z, err := periodic.Number(at.symbol)
		if err != nil {
			return 0, &CError{UnknownElement, err.Error(), []string{"resolve"}}
		}
		return z, nil
	default:
		return 0, &CError{InvalidKey, fmt.Sprintf("chemiverse: composition key is neither an atomic number nor a symbol: %+v", at), []string{"resolve"}}
	}
}

func index(atoms []atomCount, z int) int {
	for i, at := range atoms {
		if at.z == z {
			return i
		}
	}
	return -1
}

// Sort returns a new Formula with the same composition and charge,
// reordered with the given method. The receiver is never modified. Only
// IUPAC is currently defined; any other selector, including NoSort, fails
// with InvalidSortMethod.
func (F *Formula) Sort(method string) (*Formula, error) {
	if method != IUPAC {
		return nil, &CError{InvalidSortMethod, fmt.Sprintf("chemiverse: invalid sorting method: %q", method), []string{"Sort"}}
	}
	return F.sortIUPAC(), nil
}

func (F *Formula) sortIUPAC() *Formula {
	N := F.Copy()
	if index(N.atoms, zCarbon) < 0 {
		//Most electropositive first. Elements sharing a value, and all the
		//elements without a measured value, keep their construction order.
		sort.SliceStable(N.atoms, func(i, j int) bool {
			return enKey(N.atoms[i].z) < enKey(N.atoms[j].z)
		})
		return N
	}
	rest := make([]atomCount, 0, len(N.atoms))
	for _, at := range N.atoms {
		if at.z == zCarbon || at.z == zHydrogen {
			continue
		}
		rest = append(rest, at)
	}
	sort.Slice(rest, func(i, j int) bool { return mustSymbol(rest[i].z) < mustSymbol(rest[j].z) })
	ordered := make([]atomCount, 0, len(N.atoms))
	ordered = append(ordered, N.atoms[index(N.atoms, zCarbon)])
	if i := index(N.atoms, zHydrogen); i >= 0 {
		ordered = append(ordered, N.atoms[i])
	}
	ordered = append(ordered, rest...)
	N.atoms = ordered
	return N
}

//enKey is the electronegativity sort key. Elements without a measured
//value sort after every element that has one.
func enKey(z int) float64 {
	en, ok := periodic.Electronegativity(z)
	if !ok {
		return math.Inf(1)
	}
	return en
}

//mustSymbol returns the symbol for z. A Formula can only hold elements
//already resolved through the periodic tables, so a failure here means the
//program is wrong and a panic is warranted.
func mustSymbol(z int) string {
	s, err := periodic.Symbol(z)
	if err != nil {
		panic(fmt.Sprintf("chemiverse: Formula holds atomic number %d, unknown to the periodic tables", z))
	}
	return s
}

// Charge returns the net charge of the species.
func (F *Formula) Charge() int {
	return F.charge
}

// Len returns the number of distinct elements in the composition.
func (F *Formula) Len() int {
	return len(F.atoms)
}

// NAtoms returns the total number of atoms in the formula, i.e. the sum of
// all the counts.
func (F *Formula) NAtoms() int {
	total := 0
	for _, at := range F.atoms {
		total += at.n
	}
	return total
}

// CountZ returns the count for the element with atomic number z, or 0 if
// the element is not part of the composition.
func (F *Formula) CountZ(z int) int {
	if i := index(F.atoms, z); i >= 0 {
		return F.atoms[i].n
	}
	return 0
}

// Count returns the count for the element with the given symbol, or 0 if
// the symbol does not name an element of the composition.
func (F *Formula) Count(symbol string) int {
	z, err := periodic.Number(symbol)
	if err != nil {
		return 0
	}
	return F.CountZ(z)
}

// Elements returns the symbols of the composition, in its current order.
func (F *Formula) Elements() []string {
	els := make([]string, len(F.atoms))
	for i, at := range F.atoms {
		els[i] = mustSymbol(at.z)
	}
	return els
}

// Copy returns a copy of the Formula.
func (F *Formula) Copy() *Formula {
	N := &Formula{atoms: make([]atomCount, len(F.atoms)), charge: F.charge}
	copy(N.atoms, F.atoms)
	return N
}
