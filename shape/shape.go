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

// Package shape implements the shapes which can be placed on a page:
// rectangles, horizontal lines and images.
//
// Every shape owns its geometry, its paint style and a [transform.Spec].
// Geometry values are clamped to be non-negative when they are set, and the
// getters return the clamped values.  The PostScript code for a shape is
// obtained using the Content method, which emits
//
//  1. the transformation prologue, if a rotation or scaling is configured,
//  2. the path of the shape,
//  3. the fill, if a fill color is set,
//  4. the stroke, if the stroke width is positive,
//  5. the transformation epilogue.
//
// Fill and stroke are performed by the procedures from [procset], which
// save and restore the graphics state around each paint operation.
// Serializing the same shape twice gives identical output.
package shape

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/psdoc/color"
	"seehuhn.de/go/psdoc/content"
	"seehuhn.de/go/psdoc/internal/float"
	"seehuhn.de/go/psdoc/procset"
)

// stroke describes how the outline of a shape is painted.
// A width of 0 disables stroking.
type stroke struct {
	width float64
	color color.Color
}

func (s *stroke) set(width float64, c color.Color) {
	if c == nil {
		c = color.Black
	}
	s.width = float.NonNegative(width)
	s.color = c
}

func (s stroke) emit(b *content.Builder) {
	if s.width <= 0 || s.color == nil {
		return
	}
	op := color.StrokeOp(s.color, s.width)
	b.Emit(op.Name, op.Args...)
}

// rectPath emits the path of the rectangle with lower left corner (x, y).
func rectPath(b *content.Builder, x, y, w, h float64) {
	b.Emit(procset.Rect, content.Numbers(-w, 0, 0, -h, w, 0, 0, h, x, y)...)
}

// box returns the bounding box of [x0, x1] x [y0, y1] after
// transformation by M.
func box(M matrix.Matrix, x0, y0, x1, y1 float64) rect.Rect {
	corners := []vec.Vec2{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x0, Y: y1},
		{X: x1, Y: y1},
	}
	var res rect.Rect
	for i, c := range corners {
		px, py := M.Apply(c.X, c.Y)
		if i == 0 {
			res = rect.Rect{LLx: px, LLy: py, URx: px, URy: py}
			continue
		}
		res.LLx = min(res.LLx, px)
		res.LLy = min(res.LLy, py)
		res.URx = max(res.URx, px)
		res.URy = max(res.URy, py)
	}
	return res
}
