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

// Package transform implements rotation and scaling of shapes around an
// anchor point.
//
// A [Spec] holds an optional rotation angle and optional scale factors.
// When a shape is drawn, the transformation is applied around an anchor
// point which is computed from the shape's own geometry, see [RectAnchor]
// and [LineAnchor].  The emitted operators are
//
//	gsave
//	ox oy translate
//	angle rotate
//	sx sy scale
//	-ox -oy translate
//	... shape ...
//	grestore
//
// where the rotate and scale lines are only present if configured, and
// nothing at all is emitted if neither is configured.
package transform

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/psdoc/content"
	"seehuhn.de/go/psdoc/internal/float"
)

// MaxAngle is the largest rotation angle in degrees.  Angles are clamped to
// the range [-MaxAngle, MaxAngle].
const MaxAngle = 360

// Spec describes an optional rotation and an optional non-uniform scaling.
// The zero value describes the identity transformation.
type Spec struct {
	angle  float64
	rotate bool
	sx, sy float64
	scale  bool
}

// Rotate enables rotation by the given angle in degrees.
// Positive angles rotate counter-clockwise.  The angle is clamped to
// [-360, 360].  Angles of 0 and ±360 have no visual effect and no rotate
// operator is emitted for them.
func (s *Spec) Rotate(deg float64) {
	s.angle = float.Clamp(deg, -MaxAngle, MaxAngle)
	s.rotate = true
}

// ClearRotation disables rotation.
func (s *Spec) ClearRotation() {
	s.angle = 0
	s.rotate = false
}

// Scale enables scaling by the given factors.  The factors are not
// clamped: negative values mirror the shape.
func (s *Spec) Scale(sx, sy float64) {
	s.sx = sx
	s.sy = sy
	s.scale = true
}

// ClearScale disables scaling.
func (s *Spec) ClearScale() {
	s.sx, s.sy = 0, 0
	s.scale = false
}

// Rotation returns the clamped rotation angle and whether rotation
// has been configured.
func (s Spec) Rotation() (float64, bool) {
	return s.angle, s.rotate
}

// ScaleFactors returns the scale factors and whether scaling has been
// configured.
func (s Spec) ScaleFactors() (sx, sy float64, ok bool) {
	return s.sx, s.sy, s.scale
}

// rotates reports whether a rotate operator must be emitted.
func (s Spec) rotates() bool {
	return s.rotate && s.angle != 0 && s.angle != MaxAngle && s.angle != -MaxAngle
}

// IsIdentity reports whether the Spec emits no operators.
func (s Spec) IsIdentity() bool {
	return !s.rotates() && !s.scale
}

// Prologue emits the operators which save the graphics state and set up the
// transformation around the anchor point.  If the Spec is the identity,
// nothing is emitted.  Every call must be paired with a call to [Spec.Epilogue]
// after the shape has been drawn.
func (s Spec) Prologue(b *content.Builder, anchor vec.Vec2) {
	if s.IsIdentity() {
		return
	}
	b.PushGraphicsState()
	b.Translate(anchor.X, anchor.Y)
	if s.rotates() {
		b.Rotate(s.angle)
	}
	if s.scale {
		b.Scale(s.sx, s.sy)
	}
	b.Translate(-anchor.X, -anchor.Y)
}

// Epilogue emits the "grestore" which matches [Spec.Prologue].
func (s Spec) Epilogue(b *content.Builder) {
	if s.IsIdentity() {
		return
	}
	b.PopGraphicsState()
}

// Matrix returns the transformation set up by [Spec.Prologue], as a matrix
// which maps shape coordinates to the enclosing coordinate system.
// The anchor point is a fixed point of the returned matrix.
func (s Spec) Matrix(anchor vec.Vec2) matrix.Matrix {
	M := matrix.Translate(-anchor.X, -anchor.Y)
	if s.scale {
		M = M.Mul(matrix.Scale(s.sx, s.sy))
	}
	if s.rotates() {
		M = M.Mul(matrix.RotateDeg(s.angle))
	}
	return M.Mul(matrix.Translate(anchor.X, anchor.Y))
}
