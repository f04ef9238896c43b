/*
 * periodic_test.go, part of Chemiverse.
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

package periodic

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestRoundTrip(Te *testing.T) {
	for z := 1; z <= N; z++ {
		s, err := Symbol(z)
		if err != nil {
			Te.Fatalf("no symbol for z=%d: %v", z, err)
		}
		back, err := Number(s)
		if err != nil {
			Te.Fatalf("no number for %q: %v", s, err)
		}
		if back != z {
			Te.Errorf("round trip failed: %d -> %q -> %d", z, s, back)
		}
	}
}

func TestNormalize(Te *testing.T) {
	cases := map[string]string{
		" na ": "Na",
		"CL":   "Cl",
		"fe":   "Fe",
		"H":    "H",
		"":     "",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			Te.Errorf("Normalize(%q) = %q, expected %q", in, got, want)
		}
	}
}

func TestNumberFolding(Te *testing.T) {
	for in, want := range map[string]int{"na": 11, " cl ": 17, "C": 6, "hE": 2} {
		z, err := Number(in)
		if err != nil {
			Te.Fatal(err)
		}
		if z != want {
			Te.Errorf("Number(%q) = %d, expected %d", in, z, want)
		}
	}
}

func TestUnknown(Te *testing.T) {
	for _, z := range []int{0, -3, N + 1, 9999} {
		if _, err := Symbol(z); err == nil {
			Te.Errorf("expected Symbol(%d) to fail", z)
		}
	}
	for _, s := range []string{"Xx", "", "Mm", "Sodium"} {
		if _, err := Number(s); err == nil {
			Te.Errorf("expected Number(%q) to fail", s)
		}
	}
}

func TestElectronegativity(Te *testing.T) {
	known := map[int]float64{
		1:  2.20, //H
		8:  3.44, //O
		9:  3.98, //F, the most electronegative of all
		55: 0.79, //Cs
	}
	for z, want := range known {
		en, ok := Electronegativity(z)
		if !ok {
			Te.Fatalf("expected a value for z=%d", z)
		}
		if !scalar.EqualWithinAbs(en, want, 1e-12) {
			Te.Errorf("z=%d: expected %g, got %g", z, want, en)
		}
	}
	//noble gases without data, synthetics, and invalid numbers all report false
	for _, z := range []int{2, 10, 18, 86, 104, 118, 0, -1, N + 1} {
		if en, ok := Electronegativity(z); ok {
			Te.Errorf("expected no value for z=%d, got %g", z, en)
		}
	}
}

func TestErrorDecoration(Te *testing.T) {
	_, err := Number("Xx")
	if err == nil {
		Te.Fatal("expected an error")
	}
	deco := err.(*Error).Decorate("caller")
	if len(deco) != 2 || deco[1] != "caller" {
		Te.Errorf("unexpected decoration: %v", deco)
	}
}
