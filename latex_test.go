/*
 * latex_test.go, part of Chemiverse.
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

import "testing"

func TestChargeRendering(Te *testing.T) {
	cases := []struct {
		charge int
		want   string
	}{
		{0, "Na"},
		{1, `Na\textsuperscript{+}`},
		{-1, "Na\\textsuperscript{–}"},
		{3, `Na\textsuperscript{3+}`},
		{-2, "Na\\textsuperscript{2–}"},
	}
	for _, c := range cases {
		F, err := New(c.charge, BySymbol("Na", 1))
		if err != nil {
			Te.Fatal(err)
		}
		if got := F.LaTeX(); got != c.want {
			Te.Errorf("charge %d: expected %q, got %q", c.charge, c.want, got)
		}
	}
}

//Rendering follows the current composition order and never reorders.
func TestRenderOrderPreserving(Te *testing.T) {
	F, err := New(0, BySymbol("H", 4), BySymbol("C", 1))
	if err != nil {
		Te.Fatal(err)
	}
	if got := F.LaTeX(); got != `H\textsubscript{4}C` {
		Te.Errorf("unsorted methane should render as given: %q", got)
	}
	S, err := F.Sort(IUPAC)
	if err != nil {
		Te.Fatal(err)
	}
	if got := S.LaTeX(); got != `CH\textsubscript{4}` {
		Te.Errorf("sorted methane wrong: %q", got)
	}
}

func TestSubscriptOmission(Te *testing.T) {
	//counts of exactly 1 carry no subscript
	F, err := FromCounts([]Atom{BySymbol("C", 1), BySymbol("H", 1), BySymbol("O", 1)}, 0, IUPAC)
	if err != nil {
		Te.Fatal(err)
	}
	if got := F.LaTeX(); got != "CHO" {
		Te.Errorf("expected CHO, got %q", got)
	}
}

func TestString(Te *testing.T) {
	sulfate, err := FromCounts([]Atom{BySymbol("O", 4), BySymbol("S", 1)}, -2, IUPAC)
	if err != nil {
		Te.Fatal(err)
	}
	if got := sulfate.String(); got != "SO4^2-" {
		Te.Errorf("expected SO4^2-, got %q", got)
	}
	//no carbon here, so the conventional NH4 order is the caller's to give
	ammonium, err := FromCounts([]Atom{BySymbol("N", 1), BySymbol("H", 4)}, 1, NoSort)
	if err != nil {
		Te.Fatal(err)
	}
	if got := ammonium.String(); got != "NH4^+" {
		Te.Errorf("expected NH4^+, got %q", got)
	}
	methane, err := FromCounts([]Atom{BySymbol("C", 1), BySymbol("H", 4)}, 0, IUPAC)
	if err != nil {
		Te.Fatal(err)
	}
	if got := methane.String(); got != "CH4" {
		Te.Errorf("expected CH4, got %q", got)
	}
}
