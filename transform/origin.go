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

package transform

import (
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Origin selects the anchor point of a rectangular shape.
// The zero value is [Center].
type Origin int

// These are the anchor points of a rectangle.
const (
	Center Origin = iota
	TopLeft
	TopRight
	BottomLeft
	BottomRight
)

func (o Origin) String() string {
	switch o {
	case Center:
		return "Center"
	case TopLeft:
		return "TopLeft"
	case TopRight:
		return "TopRight"
	case BottomLeft:
		return "BottomLeft"
	case BottomRight:
		return "BottomRight"
	default:
		return fmt.Sprintf("Origin(%d)", int(o))
	}
}

// RectAnchor returns the anchor point of the rectangle with lower left
// corner (x, y), width w and height h.  Unknown origins use the center.
func RectAnchor(o Origin, x, y, w, h float64) vec.Vec2 {
	switch o {
	case TopLeft:
		return vec.Vec2{X: x, Y: y + h}
	case TopRight:
		return vec.Vec2{X: x + w, Y: y + h}
	case BottomLeft:
		return vec.Vec2{X: x, Y: y}
	case BottomRight:
		return vec.Vec2{X: x + w, Y: y}
	default:
		return vec.Vec2{X: x + w/2, Y: y + h/2}
	}
}

// LineOrigin selects the anchor point of a horizontal line.
// The zero value is [LineCenter].
type LineOrigin int

// These are the anchor points of a line.
const (
	LineCenter LineOrigin = iota
	LineLeft
	LineRight
)

func (o LineOrigin) String() string {
	switch o {
	case LineCenter:
		return "Center"
	case LineLeft:
		return "Left"
	case LineRight:
		return "Right"
	default:
		return fmt.Sprintf("LineOrigin(%d)", int(o))
	}
}

// LineAnchor returns the anchor point of the horizontal line which starts
// at (x, y) and has the given length.  The anchor always lies on the line
// itself.  Unknown origins use the center.
func LineAnchor(o LineOrigin, x, y, length float64) vec.Vec2 {
	switch o {
	case LineLeft:
		return vec.Vec2{X: x, Y: y}
	case LineRight:
		return vec.Vec2{X: x + length, Y: y}
	default:
		return vec.Vec2{X: x + length/2, Y: y}
	}
}
