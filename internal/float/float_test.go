// seehuhn.de/go/psdoc - a library for writing PostScript documents
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package float

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in   float64
		prec int
		want string
	}{
		{0, 4, "0"},
		{1, 4, "1"},
		{100, 4, "100"},
		{0.5, 4, "0.5"},
		{-0.5, 4, "-0.5"},
		{1.25, 1, "1.2"},
		{12.30000, 4, "12.3"},
		{-0.00001, 4, "0"},
		{1.0 / 3, 4, "0.3333"},
		{math.NaN(), 4, "0"},
		{math.Inf(1), 4, "0"},
	}
	for _, c := range cases {
		got := Format(c.in, c.prec)
		if got != c.want {
			t.Errorf("Format(%g, %d) = %q, want %q", c.in, c.prec, got, c.want)
		}
	}
}

func TestRound(t *testing.T) {
	if got := Round(1.23456, 2); got != 1.23 {
		t.Errorf("Round(1.23456, 2) = %g", got)
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{7, 1},
		{math.Inf(-1), 0},
		{math.Inf(1), 1},
		{math.NaN(), 0},
	}
	for _, c := range cases {
		if got := Clamp(c.in, 0, 1); got != c.want {
			t.Errorf("Clamp(%g) = %g, want %g", c.in, got, c.want)
		}
	}
}

func TestNonNegative(t *testing.T) {
	for _, x := range []float64{-3, math.NaN(), math.Inf(-1)} {
		if got := NonNegative(x); got != 0 {
			t.Errorf("NonNegative(%g) = %g, want 0", x, got)
		}
	}
	if got := NonNegative(2.5); got != 2.5 {
		t.Errorf("NonNegative(2.5) = %g", got)
	}
}
