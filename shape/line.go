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

package shape

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/psdoc/color"
	"seehuhn.de/go/psdoc/content"
	"seehuhn.de/go/psdoc/internal/float"
	"seehuhn.de/go/psdoc/procset"
	"seehuhn.de/go/psdoc/transform"
)

// Line is a horizontal line.  Use [Line.Rotate] to draw lines in other
// directions.
type Line struct {
	x, y, length float64

	stroke stroke

	origin transform.LineOrigin
	tf     transform.Spec
}

// NewLine returns a line which starts at (x, y) and extends length units
// to the right.  Negative values are replaced by 0.  The line is stroked
// in black with a width of 1.
func NewLine(x, y, length float64) *Line {
	l := &Line{
		x:      float.NonNegative(x),
		y:      float.NonNegative(y),
		length: float.NonNegative(length),
	}
	l.stroke.set(1, color.Black)
	return l
}

// Geometry returns the start point and the length of the line.
func (l *Line) Geometry() (x, y, length float64) {
	return l.x, l.y, l.length
}

// SetStroke sets the width and color of the line.  A width of 0 disables
// drawing.  Negative widths are replaced by 0, and a nil color means black.
func (l *Line) SetStroke(width float64, c color.Color) {
	l.stroke.set(width, c)
}

// Stroke returns the width and color of the line.
func (l *Line) Stroke() (float64, color.Color) {
	return l.stroke.width, l.stroke.color
}

// SetOrigin sets the anchor point for rotation and scaling.
func (l *Line) SetOrigin(o transform.LineOrigin) {
	l.origin = o
}

// Origin returns the anchor point for rotation and scaling.
func (l *Line) Origin() transform.LineOrigin {
	return l.origin
}

// Rotate rotates the line counter-clockwise around its anchor point.
// The angle is given in degrees and is clamped to [-360, 360].
func (l *Line) Rotate(deg float64) {
	l.tf.Rotate(deg)
}

// Scale scales the line around its anchor point.
func (l *Line) Scale(sx, sy float64) {
	l.tf.Scale(sx, sy)
}

// Transform returns the rotation and scaling of the line.
func (l *Line) Transform() transform.Spec {
	return l.tf
}

// Content returns the PostScript operators which draw the line.
func (l *Line) Content() content.Stream {
	b := content.NewBuilder()
	anchor := transform.LineAnchor(l.origin, l.x, l.y, l.length)

	l.tf.Prologue(b, anchor)
	b.Emit(procset.Line, content.Numbers(l.length, 0, l.x, l.y)...)
	l.stroke.emit(b)
	l.tf.Epilogue(b)

	return b.Stream
}

// Serialize returns the PostScript code which draws the line.
func (l *Line) Serialize() string {
	return l.Content().String()
}

// Bounds returns the area covered by the line on the page, including the
// line width and the effect of rotation and scaling.
func (l *Line) Bounds() rect.Rect {
	anchor := transform.LineAnchor(l.origin, l.x, l.y, l.length)
	d := l.stroke.width / 2
	return box(l.tf.Matrix(anchor), l.x, l.y-d, l.x+l.length, l.y+d)
}
