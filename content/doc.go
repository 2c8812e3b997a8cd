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

// Package content represents PostScript page content as a sequence of
// operators.
//
// A [Stream] is a list of [Operator] values.  Each operator has a name,
// which is either a built-in PostScript operator like "gsave" or the name of
// a procedure defined in the document prolog, and a list of operands.
// Streams are usually constructed using a [Builder], which keeps track of
// the graphics state nesting.
//
// Before a stream is written, [Stream.Validate] can be used to check that
// every "gsave" is matched by exactly one "grestore".  [CheckBalance] performs
// the same check on PostScript source text.
package content
