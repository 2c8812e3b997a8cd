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
	"errors"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrUnbalanced is returned when gsave and grestore are not properly
	// nested.
	ErrUnbalanced = errors.New("unbalanced gsave/grestore")

	// ErrUndefined is returned when a stream calls a procedure which is not
	// defined.
	ErrUndefined = errors.New("undefined procedure")
)

// Operator represents a PostScript operator together with its operands.
type Operator struct {
	Name OpName
	Args []Object
}

// Op is a shorthand for constructing an [Operator].
func Op(name OpName, args ...Object) Operator {
	return Operator{Name: name, Args: args}
}

// String returns the PostScript source for the operator, without the
// trailing newline.
func (op Operator) String() string {
	b := &strings.Builder{}
	op.appendTo(b)
	return b.String()
}

func (op Operator) appendTo(b *strings.Builder) {
	if op.Name == OpComment {
		b.WriteString("%")
		for _, arg := range op.Args {
			b.WriteString(" ")
			// Comments end at the next line break.
			b.WriteString(strings.ReplaceAll(arg.PS(), "\n", " "))
		}
		return
	}

	for _, arg := range op.Args {
		b.WriteString(arg.PS())
		b.WriteString(" ")
	}
	b.WriteString(string(op.Name))
}

// WriteOperator writes a single operator, followed by a newline, to out.
func WriteOperator(out io.Writer, op Operator) error {
	b := &strings.Builder{}
	op.appendTo(b)
	b.WriteString("\n")
	_, err := io.WriteString(out, b.String())
	return err
}

// NestingError describes a gsave/grestore nesting violation.
type NestingError struct {
	// Pos is the index of the offending operator.  For unclosed gsave
	// operators, Pos equals the length of the stream.
	Pos int

	// Depth is the nesting depth at the point where the error was
	// detected.
	Depth int
}

func (err *NestingError) Error() string {
	if err.Depth > 0 {
		return ErrUnbalanced.Error() + ": " + strconv.Itoa(err.Depth) + " unclosed gsave at end of stream"
	}
	return ErrUnbalanced.Error() + ": grestore without matching gsave (operator " + strconv.Itoa(err.Pos) + ")"
}

func (err *NestingError) Unwrap() error {
	return ErrUnbalanced
}
