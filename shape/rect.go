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
	"seehuhn.de/go/psdoc/transform"
)

// Rect is an axis-parallel rectangle.
type Rect struct {
	x, y, width, height float64

	fill   color.Color
	stroke stroke

	origin transform.Origin
	tf     transform.Spec
}

// NewRect returns a rectangle with lower left corner (x, y).
// Negative values are replaced by 0.  The new rectangle is neither
// filled nor stroked.
func NewRect(x, y, width, height float64) *Rect {
	return &Rect{
		x:      float.NonNegative(x),
		y:      float.NonNegative(y),
		width:  float.NonNegative(width),
		height: float.NonNegative(height),
	}
}

// Geometry returns the position and size of the rectangle.
func (r *Rect) Geometry() (x, y, width, height float64) {
	return r.x, r.y, r.width, r.height
}

// SetFill sets the fill color.  If c is nil, the rectangle is not filled.
func (r *Rect) SetFill(c color.Color) {
	r.fill = c
}

// Fill returns the fill color, or nil if the rectangle is not filled.
func (r *Rect) Fill() color.Color {
	return r.fill
}

// SetStroke sets the width and color of the outline.  A width of 0 disables
// stroking.  Negative widths are replaced by 0, and a nil color means black.
func (r *Rect) SetStroke(width float64, c color.Color) {
	r.stroke.set(width, c)
}

// Stroke returns the width and color of the outline.
func (r *Rect) Stroke() (float64, color.Color) {
	return r.stroke.width, r.stroke.color
}

// SetOrigin sets the anchor point for rotation and scaling.
func (r *Rect) SetOrigin(o transform.Origin) {
	r.origin = o
}

// Origin returns the anchor point for rotation and scaling.
func (r *Rect) Origin() transform.Origin {
	return r.origin
}

// Rotate rotates the rectangle counter-clockwise around its anchor point.
// The angle is given in degrees and is clamped to [-360, 360].
func (r *Rect) Rotate(deg float64) {
	r.tf.Rotate(deg)
}

// Scale scales the rectangle around its anchor point.
func (r *Rect) Scale(sx, sy float64) {
	r.tf.Scale(sx, sy)
}

// Transform returns the rotation and scaling of the rectangle.
func (r *Rect) Transform() transform.Spec {
	return r.tf
}

// Content returns the PostScript operators which draw the rectangle.
func (r *Rect) Content() content.Stream {
	b := content.NewBuilder()
	anchor := transform.RectAnchor(r.origin, r.x, r.y, r.width, r.height)

	r.tf.Prologue(b, anchor)
	rectPath(b, r.x, r.y, r.width, r.height)
	if r.fill != nil {
		op := color.FillOp(r.fill)
		b.Emit(op.Name, op.Args...)
	}
	r.stroke.emit(b)
	r.tf.Epilogue(b)

	return b.Stream
}

// Serialize returns the PostScript code which draws the rectangle.
func (r *Rect) Serialize() string {
	return r.Content().String()
}

// Bounds returns the bounding box of the rectangle on the page, including
// the outline and the effect of rotation and scaling.
func (r *Rect) Bounds() rect.Rect {
	anchor := transform.RectAnchor(r.origin, r.x, r.y, r.width, r.height)
	d := r.stroke.width / 2
	return box(r.tf.Matrix(anchor), r.x-d, r.y-d, r.x+r.width+d, r.y+r.height+d)
}
