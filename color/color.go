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

// Package color implements the DeviceRGB and DeviceCMYK colors used for
// filling and stroking shapes.
//
// Colors are created using [RGB] or [CMYK].  All channel values are clamped
// to the range [0, 1] when the color is created, so that every color can be
// written without further checks.  There is no conversion between the two
// color spaces.
package color

import (
	"seehuhn.de/go/psdoc/content"
	"seehuhn.de/go/psdoc/internal/float"
	"seehuhn.de/go/psdoc/procset"
)

// Space identifies a color space.
type Space int

// These are the supported color spaces.
const (
	SpaceRGB Space = iota + 1
	SpaceCMYK
)

func (s Space) String() string {
	switch s {
	case SpaceRGB:
		return "DeviceRGB"
	case SpaceCMYK:
		return "DeviceCMYK"
	default:
		return "Space(?)"
	}
}

// Channels returns the number of values of a color in this space.
func (s Space) Channels() int {
	switch s {
	case SpaceRGB:
		return 3
	case SpaceCMYK:
		return 4
	default:
		return 0
	}
}

// Color is a color in one of the supported color spaces.
//
// Colors are values and can be compared using "==".
type Color interface {
	// Space returns the color space of the color.
	Space() Space

	// Values returns the channel values, all in the range [0, 1].
	Values() []float64

	isColor()
}

type rgb [3]float64

// RGB returns a color in the DeviceRGB color space.
// Values outside the range [0, 1] are clamped.
func RGB(r, g, b float64) Color {
	return rgb{
		float.Clamp(r, 0, 1),
		float.Clamp(g, 0, 1),
		float.Clamp(b, 0, 1),
	}
}

func (c rgb) Space() Space      { return SpaceRGB }
func (c rgb) Values() []float64 { return c[:] }
func (c rgb) isColor()          {}

type cmyk [4]float64

// CMYK returns a color in the DeviceCMYK color space.
// The parameters c, m, y, and k control the amount of cyan, magenta,
// yellow, and black in the color.  Values outside the range [0, 1] are
// clamped.
func CMYK(c, m, y, k float64) Color {
	return cmyk{
		float.Clamp(c, 0, 1),
		float.Clamp(m, 0, 1),
		float.Clamp(y, 0, 1),
		float.Clamp(k, 0, 1),
	}
}

func (c cmyk) Space() Space      { return SpaceCMYK }
func (c cmyk) Values() []float64 { return c[:] }
func (c cmyk) isColor()          {}

// Black is black in the DeviceRGB color space.
var Black = RGB(0, 0, 0)

// SetOp returns the operator which makes c the current color.
//
// This is "r g b setrgbcolor" or "c m y k setcmykcolor".
func SetOp(c Color) content.Operator {
	switch c := c.(type) {
	case rgb:
		return content.Op(content.OpSetRGBColor, content.Numbers(c[:]...)...)
	case cmyk:
		return content.Op(content.OpSetCMYKColor, content.Numbers(c[:]...)...)
	default:
		panic("unreachable")
	}
}

// FillOp returns the operator which fills the current path with c.
//
// This calls one of the procedures [procset.FillRGB] or [procset.FillCMYK],
// which keep the color change local to the fill operation.
func FillOp(c Color) content.Operator {
	switch c := c.(type) {
	case rgb:
		return content.Op(procset.FillRGB, content.Numbers(c[:]...)...)
	case cmyk:
		return content.Op(procset.FillCMYK, content.Numbers(c[:]...)...)
	default:
		panic("unreachable")
	}
}

// StrokeOp returns the operator which strokes the current path with c,
// using the given line width.
//
// This calls one of the procedures [procset.StrokeRGB] or
// [procset.StrokeCMYK], which keep line width and color local to the stroke
// operation.
func StrokeOp(c Color, width float64) content.Operator {
	args := []content.Object{content.Number(float.NonNegative(width))}
	switch c := c.(type) {
	case rgb:
		args = append(args, content.Numbers(c[:]...)...)
		return content.Op(procset.StrokeRGB, args...)
	case cmyk:
		args = append(args, content.Numbers(c[:]...)...)
		return content.Op(procset.StrokeCMYK, args...)
	default:
		panic("unreachable")
	}
}
