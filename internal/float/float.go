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

// Package float formats and clamps the numbers written into PostScript
// files.
package float

import (
	"math"
	"regexp"
	"strconv"
)

// Format formats x using at most the given number of digits after the
// decimal point.  Trailing zeros and a trailing decimal point are removed,
// so that integers are written without a fractional part.
func Format(x float64, precision int) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		// PostScript has no notation for these.
		return "0"
	}
	out := strconv.FormatFloat(x, 'f', precision, 64)
	if m := tailRegexp.FindStringSubmatchIndex(out); m != nil {
		if m[2] > 0 {
			out = out[:m[2]]
		} else if m[4] > 0 {
			out = out[:m[4]]
		}
	}
	if out == "-0" {
		out = "0"
	}
	return out
}

// Round rounds x to the given number of digits after the decimal point,
// in the same way as Format does.
func Round(x float64, digits int) float64 {
	y, err := strconv.ParseFloat(Format(x, digits), 64)
	if err != nil {
		panic(err)
	}
	return y
}

// Clamp restricts x to the interval [lo, hi].  NaN is mapped to lo.
func Clamp(x, lo, hi float64) float64 {
	switch {
	case math.IsNaN(x) || x < lo:
		return lo
	case x > hi:
		return hi
	default:
		return x
	}
}

// NonNegative returns max(x, 0).  NaN is mapped to 0.
func NonNegative(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	return x
}

var (
	tailRegexp = regexp.MustCompile(`(?:\..*[1-9](0+)|(\.0+))$`)
)
