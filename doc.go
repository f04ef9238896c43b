/*
 * doc.go, part of Chemiverse.
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

/*Package chemiverse models chemical molecular formulas: an ordered mapping
from elements to atom counts plus a net charge, with canonical ordering and
LaTeX rendering.


	**Capabilities**


    Builds formulas from element counts keyed by symbol or by atomic
	number, freely mixed, with the charge of the species.

    Sorts formulas following the standard IUPAC convention: carbon first
	and hydrogen second when carbon is present, then the remaining elements
	alphabetically; without carbon, from the most electropositive to the
	most electronegative element (Pauling scale).

    Renders formulas for LaTeX, with counts as subscripts and the charge
	as a superscript, and as plain text.

    Ships the periodic-table reference data (symbols, atomic numbers,
	Pauling electronegativities) in the periodic subpackage.

Formulas are immutable values: sorting returns a new Formula and rendering
is a pure function of the current element order and the charge. All
operations are synchronous and deterministic, and the reference tables are
read-only after process start, so the library is safe for concurrent use.

Chemiverse is developed by the Scinformatic project.
*/
package chemiverse
