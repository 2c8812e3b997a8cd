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

// Builder accumulates operators into a [Stream] and keeps track of the
// graphics state nesting.
//
// The first error encountered is stored in Err; once Err is set, all further
// calls are ignored.
type Builder struct {
	Stream Stream
	Err    error

	depth int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Emit appends an operator to the stream.  The operators "gsave" and
// "grestore" are passed to [Builder.PushGraphicsState] and
// [Builder.PopGraphicsState], so that the nesting depth stays correct.
func (b *Builder) Emit(name OpName, args ...Object) {
	switch name {
	case OpPushGraphicsState:
		b.PushGraphicsState()
	case OpPopGraphicsState:
		b.PopGraphicsState()
	default:
		b.emit(name, args)
	}
}

func (b *Builder) emit(name OpName, args []Object) {
	if b.Err != nil {
		return
	}
	b.Stream = append(b.Stream, Operator{Name: name, Args: args})
}

// Append appends the operators of another stream.  The nesting depth
// is tracked across the appended operators.
func (b *Builder) Append(s Stream) {
	for _, op := range s {
		b.Emit(op.Name, op.Args...)
	}
}

// PushGraphicsState saves the current graphics state.
//
// This implements the PostScript operator "gsave".
func (b *Builder) PushGraphicsState() {
	if b.Err != nil {
		return
	}
	b.depth++
	b.emit(OpPushGraphicsState, nil)
}

// PopGraphicsState restores the previously saved graphics state.
//
// This implements the PostScript operator "grestore".
func (b *Builder) PopGraphicsState() {
	if b.Err != nil {
		return
	}
	if b.depth == 0 {
		b.Err = &NestingError{Pos: len(b.Stream)}
		return
	}
	b.depth--
	b.emit(OpPopGraphicsState, nil)
}

// Translate moves the origin of the user coordinate system.
//
// This implements the PostScript operator "translate".
func (b *Builder) Translate(x, y float64) {
	b.Emit(OpTranslate, Number(x), Number(y))
}

// Rotate rotates the user coordinate system by the given angle in degrees.
// Positive angles rotate counter-clockwise.
//
// This implements the PostScript operator "rotate".
func (b *Builder) Rotate(deg float64) {
	b.Emit(OpRotate, Number(deg))
}

// Scale scales the axes of the user coordinate system.
//
// This implements the PostScript operator "scale".
func (b *Builder) Scale(sx, sy float64) {
	b.Emit(OpScale, Number(sx), Number(sy))
}

// SetLineWidth sets the line width.
//
// This implements the PostScript operator "setlinewidth".
func (b *Builder) SetLineWidth(width float64) {
	b.Emit(OpSetLineWidth, Number(width))
}

// Comment adds a PostScript comment.
func (b *Builder) Comment(text string) {
	b.Emit(OpComment, Raw(text))
}

// Depth returns the current gsave nesting depth.
func (b *Builder) Depth() int {
	return b.depth
}

// Build returns the accumulated stream.  An error is returned if a previous
// operation failed or if some gsave has not been closed.
func (b *Builder) Build() (Stream, error) {
	if b.Err != nil {
		return nil, b.Err
	}
	if b.depth > 0 {
		return nil, &NestingError{Pos: len(b.Stream), Depth: b.depth}
	}
	return b.Stream, nil
}
