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

// Package procset manages the PostScript procedures defined in the prolog
// of a document.
//
// Shapes do not inline repeated operator sequences.  Instead they call
// procedures like "rect" or "fillrgb", which are defined once at the start of
// the document.  A [Registry] holds these definitions.  Every document owns
// its own registry, so that different documents in the same process can use
// different procedure sets.
package procset

import (
	"io"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
	"seehuhn.de/go/postscript"
)

// Names of the built-in procedures.
const (
	// Rect builds a closed rectangular path.
	// Operands: -w 0 0 -h w 0 0 h x y
	Rect = "rect"

	// Line builds a straight path.
	// Operands: dx dy x y
	Line = "line"

	// FillRGB fills the current path.
	// Operands: r g b
	FillRGB = "fillrgb"

	// FillCMYK fills the current path.
	// Operands: c m y k
	FillCMYK = "fillcmyk"

	// StrokeRGB strokes the current path.
	// Operands: width r g b
	StrokeRGB = "strokergb"

	// StrokeCMYK strokes the current path.
	// Operands: width c m y k
	StrokeCMYK = "strokecmyk"
)

// Procedure is a named PostScript procedure.
//
// Body is the executable content of the procedure, without the enclosing
// braces.  It must leave the graphics state stack balanced.
type Procedure struct {
	Name string
	Body string
}

// Definition returns the PostScript source which defines the procedure.
func (p Procedure) Definition() string {
	b := &strings.Builder{}
	name := postscript.Name(p.Name)
	b.WriteString(name.PS())
	b.WriteString(" {\n")
	for _, line := range strings.Split(strings.TrimSpace(p.Body), "\n") {
		b.WriteString("  ")
		b.WriteString(strings.TrimSpace(line))
		b.WriteString("\n")
	}
	b.WriteString("} bind def\n")
	return b.String()
}

// Registry maps procedure names to procedures.
//
// Adding a procedure with an existing name replaces the old definition.
type Registry struct {
	procedures map[string]Procedure
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		procedures: make(map[string]Procedure),
	}
}

// WithBuiltins returns a registry containing the procedures used by the
// shapes in package shape.
func WithBuiltins() *Registry {
	r := New()
	for _, p := range builtins {
		r.Add(p)
	}
	return r
}

// Add adds a procedure to the registry.
// If a procedure with the same name exists, it is replaced.
func (r *Registry) Add(p Procedure) {
	r.procedures[p.Name] = p
}

// Get returns the procedure with the given name.
func (r *Registry) Get(name string) (Procedure, bool) {
	p, ok := r.procedures[name]
	return p, ok
}

// Has reports whether a procedure with the given name is defined.
func (r *Registry) Has(name string) bool {
	_, ok := r.procedures[name]
	return ok
}

// Len returns the number of procedures in the registry.
func (r *Registry) Len() int {
	return len(r.procedures)
}

// Names returns the names of all procedures, in sorted order.
func (r *Registry) Names() []string {
	names := maps.Keys(r.procedures)
	slices.Sort(names)
	return names
}

// List returns all procedures.
//
// Procedure definitions do not depend on each other, so any order would
// produce a valid prolog.  The list is sorted by name, so that the
// same registry always produces the same output.
func (r *Registry) List() []Procedure {
	names := r.Names()
	res := make([]Procedure, len(names))
	for i, name := range names {
		res[i] = r.procedures[name]
	}
	return res
}

// Clone returns a copy of the registry.
func (r *Registry) Clone() *Registry {
	c := New()
	for name, p := range r.procedures {
		c.procedures[name] = p
	}
	return c
}

// WriteTo writes the definitions of all procedures to w.
// This implements the [io.WriterTo] interface.
func (r *Registry) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, p := range r.List() {
		n, err := io.WriteString(w, p.Definition())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

var builtins = []Procedure{
	{
		Name: Rect,
		Body: `newpath
moveto
rlineto
rlineto
rlineto
rlineto
closepath`,
	},
	{
		Name: Line,
		Body: `newpath
moveto
rlineto`,
	},
	{
		Name: FillRGB,
		Body: `gsave
setrgbcolor
fill
grestore`,
	},
	{
		Name: FillCMYK,
		Body: `gsave
setcmykcolor
fill
grestore`,
	},
	{
		Name: StrokeRGB,
		Body: `gsave
setrgbcolor
setlinewidth
stroke
grestore`,
	},
	{
		Name: StrokeCMYK,
		Body: `gsave
setcmykcolor
setlinewidth
stroke
grestore`,
	},
}
