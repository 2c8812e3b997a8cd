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
	"fmt"
	"io"
	"slices"
	"strings"
)

// Stream is a sequence of PostScript operators.
type Stream []Operator

// Write writes the stream to w, one operator per line.
func (s Stream) Write(w io.Writer) error {
	for _, op := range s {
		if err := WriteOperator(w, op); err != nil {
			return err
		}
	}
	return nil
}

// String returns the PostScript source for the stream.
func (s Stream) String() string {
	b := &strings.Builder{}
	for _, op := range s {
		op.appendTo(b)
		b.WriteString("\n")
	}
	return b.String()
}

// Validate checks that every gsave in the stream is matched by exactly one
// grestore, and that no grestore occurs without a preceding gsave.
// Errors are of type [*NestingError].
func (s Stream) Validate() error {
	depth := 0
	for i, op := range s {
		switch op.Name {
		case OpPushGraphicsState:
			depth++
		case OpPopGraphicsState:
			if depth == 0 {
				return &NestingError{Pos: i}
			}
			depth--
		}
	}
	if depth > 0 {
		return &NestingError{Pos: len(s), Depth: depth}
	}
	return nil
}

// MaxDepth returns the largest gsave nesting depth reached in the stream.
func (s Stream) MaxDepth() int {
	depth, maxDepth := 0, 0
	for _, op := range s {
		switch op.Name {
		case OpPushGraphicsState:
			depth++
			maxDepth = max(maxDepth, depth)
		case OpPopGraphicsState:
			depth--
		}
	}
	return maxDepth
}

// Procedures returns the names of all procedures called by the stream, in
// sorted order and without duplicates.  Built-in operators are omitted.
func (s Stream) Procedures() []OpName {
	var res []OpName
	for _, op := range s {
		if op.Name.IsBuiltin() {
			continue
		}
		res = append(res, op.Name)
	}
	slices.Sort(res)
	return slices.Compact(res)
}

// Count returns how often the operator name occurs in the stream.
func (s Stream) Count(name OpName) int {
	n := 0
	for _, op := range s {
		if op.Name == name {
			n++
		}
	}
	return n
}

// CheckProcedures verifies that every procedure called by the stream is
// defined.  The function isDefined reports whether a procedure name is
// available in the document prolog.
func CheckProcedures(s Stream, isDefined func(name string) bool) error {
	for _, name := range s.Procedures() {
		if !isDefined(string(name)) {
			return fmt.Errorf("%w %q", ErrUndefined, name)
		}
	}
	return nil
}
