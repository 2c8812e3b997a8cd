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

// OpName is the name of a PostScript operator or of a procedure.
type OpName string

// The PostScript operators used by this library.
const (
	// Graphics state
	OpPushGraphicsState OpName = "gsave"
	OpPopGraphicsState  OpName = "grestore"
	OpTranslate         OpName = "translate"
	OpRotate            OpName = "rotate"
	OpScale             OpName = "scale"
	OpSetLineWidth      OpName = "setlinewidth"

	// Color
	OpSetRGBColor  OpName = "setrgbcolor"
	OpSetCMYKColor OpName = "setcmykcolor"

	// Path construction
	OpNewPath   OpName = "newpath"
	OpMoveTo    OpName = "moveto"
	OpRLineTo   OpName = "rlineto"
	OpClosePath OpName = "closepath"

	// Painting and clipping
	OpFill       OpName = "fill"
	OpStroke     OpName = "stroke"
	OpClip       OpName = "clip"
	OpColorImage OpName = "colorimage"

	// Device
	OpShowPage      OpName = "showpage"
	OpSetPageDevice OpName = "setpagedevice"
)

// OpComment is a pseudo-operator.  Its only operand is written as a
// PostScript comment.
const OpComment OpName = "%"

// builtin lists the PostScript operators which need no procedure definition.
var builtin = map[OpName]bool{
	OpPushGraphicsState: true,
	OpPopGraphicsState:  true,
	OpTranslate:         true,
	OpRotate:            true,
	OpScale:             true,
	OpSetLineWidth:      true,
	OpSetRGBColor:       true,
	OpSetCMYKColor:      true,
	OpNewPath:           true,
	OpMoveTo:            true,
	OpRLineTo:           true,
	OpClosePath:         true,
	OpFill:              true,
	OpStroke:            true,
	OpClip:              true,
	OpColorImage:        true,
	OpShowPage:          true,
	OpSetPageDevice:     true,
	OpComment:           true,
}

// IsBuiltin reports whether name is a PostScript operator known to this
// package, as opposed to a procedure which must be defined in the prolog.
func (name OpName) IsBuiltin() bool {
	return builtin[name]
}
