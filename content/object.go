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

package content

import (
	"strconv"

	"seehuhn.de/go/postscript"
	"seehuhn.de/go/psdoc/internal/float"
)

// Object is an operand of a PostScript operator.
type Object interface {
	// PS returns the PostScript source representation of the object.
	PS() string
}

// NumberPrecision is the number of digits kept after the decimal point
// when writing a [Number].
const NumberPrecision = 4

// Number is a PostScript real number.
// Integral values are written without a fractional part.
type Number float64

// PS implements the [Object] interface.
func (x Number) PS() string {
	return float.Format(float64(x), NumberPrecision)
}

// Integer is a PostScript integer.
type Integer int

// PS implements the [Object] interface.
func (x Integer) PS() string {
	return strconv.Itoa(int(x))
}

// Name is a literal PostScript name, written as "/name".
type Name string

// PS implements the [Object] interface.
func (x Name) PS() string {
	n := postscript.Name(x)
	return n.PS()
}

// String is a PostScript string.
type String string

// PS implements the [Object] interface.
func (x String) PS() string {
	s := postscript.String(x)
	return s.PS()
}

// Raw is pre-formatted PostScript source, written unchanged.
type Raw string

// PS implements the [Object] interface.
func (x Raw) PS() string {
	return string(x)
}

// Numbers converts a list of float64 values to operands.
func Numbers(xx ...float64) []Object {
	res := make([]Object, len(xx))
	for i, x := range xx {
		res[i] = Number(x)
	}
	return res
}
