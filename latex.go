/*
 * latex.go, part of Chemiverse.
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
	"strconv"
	"strings"
)

// LaTeX returns the formula typeset for LaTeX. Elements are emitted in the
// current composition order, each count going in a \textsubscript, except
// that a count of 1 is omitted. A nonzero charge is appended as a
// \textsuperscript holding the magnitude (omitted when it is 1) followed
// by "+" or an en-dash minus. Callers who want the IUPAC order must Sort
// first; LaTeX performs no reordering.
func (F *Formula) LaTeX() string {
	var b strings.Builder
	for _, at := range F.atoms {
		b.WriteString(mustSymbol(at.z))
		if at.n != 1 {
			b.WriteString(`\textsubscript{`)
			b.WriteString(strconv.Itoa(at.n))
			b.WriteString(`}`)
		}
	}
	if F.charge != 0 {
		b.WriteString(`\textsuperscript{`)
		if mag := abs(F.charge); mag != 1 {
			b.WriteString(strconv.Itoa(mag))
		}
		if F.charge > 0 {
			b.WriteString("+")
		} else {
			b.WriteString("–") //en dash, the typographic minus of charge notation
		}
		b.WriteString(`}`)
	}
	return b.String()
}

// String returns a plain-text rendering of the formula, with bare counts
// and the charge after a caret, e.g. "SO4^2-". The ordering contract is
// the same as for LaTeX. Meant for logs and debugging rather than typeset
// output.
func (F *Formula) String() string {
	var b strings.Builder
	for _, at := range F.atoms {
		b.WriteString(mustSymbol(at.z))
		if at.n != 1 {
			b.WriteString(strconv.Itoa(at.n))
		}
	}
	if F.charge != 0 {
		b.WriteString("^")
		if mag := abs(F.charge); mag != 1 {
			b.WriteString(strconv.Itoa(mag))
		}
		if F.charge > 0 {
			b.WriteString("+")
		} else {
			b.WriteString("-")
		}
	}
	return b.String()
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
