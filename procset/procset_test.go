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

package procset

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/psdoc/content"
)

func TestBuiltins(t *testing.T) {
	r := WithBuiltins()
	want := []string{FillCMYK, FillRGB, Line, Rect, StrokeCMYK, StrokeRGB}
	if d := cmp.Diff(want, r.Names()); d != "" {
		t.Error(d)
	}

	for _, p := range r.List() {
		if _, err := content.CheckBalance(p.Definition()); err != nil {
			t.Errorf("%s: %v", p.Name, err)
		}
	}
}

func TestStyleAppliersSaveState(t *testing.T) {
	r := WithBuiltins()
	for _, name := range []string{FillRGB, FillCMYK, StrokeRGB, StrokeCMYK} {
		p, ok := r.Get(name)
		if !ok {
			t.Fatalf("%s missing", name)
		}
		tokens, err := content.Tokens(p.Body)
		if err != nil {
			t.Fatal(err)
		}
		if tokens[0] != "gsave" || tokens[len(tokens)-1] != "grestore" {
			t.Errorf("%s is not wrapped in gsave/grestore: %v", name, tokens)
		}
	}
}

func TestRectPath(t *testing.T) {
	p, _ := WithBuiltins().Get(Rect)
	tokens, err := content.Tokens(p.Body)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"newpath", "moveto", "rlineto", "rlineto", "rlineto", "rlineto", "closepath"}
	if d := cmp.Diff(want, tokens); d != "" {
		t.Error(d)
	}
}

func TestDefinition(t *testing.T) {
	p := Procedure{Name: "double", Body: "dup\n  add"}
	want := "/double {\n  dup\n  add\n} bind def\n"
	if got := p.Definition(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAddReplaces(t *testing.T) {
	r := New()
	r.Add(Procedure{Name: "p", Body: "1"})
	r.Add(Procedure{Name: "p", Body: "2"})
	if r.Len() != 1 {
		t.Fatalf("Len() = %d", r.Len())
	}
	p, ok := r.Get("p")
	if !ok || p.Body != "2" {
		t.Errorf("last write did not win: %v", p)
	}
	if r.Has("q") {
		t.Error("unexpected procedure q")
	}
}

func TestWriteToIsDeterministic(t *testing.T) {
	r1 := WithBuiltins()
	r1.Add(Procedure{Name: "zzz", Body: "pop"})
	r1.Add(Procedure{Name: "aaa", Body: "pop"})

	r2 := New()
	r2.Add(Procedure{Name: "aaa", Body: "pop"})
	r2.Add(Procedure{Name: "zzz", Body: "pop"})
	for _, p := range WithBuiltins().List() {
		r2.Add(p)
	}

	b1 := &bytes.Buffer{}
	n, err := r1.WriteTo(b1)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(b1.Len()) {
		t.Errorf("WriteTo reported %d bytes, wrote %d", n, b1.Len())
	}
	b2 := &bytes.Buffer{}
	if _, err := r2.WriteTo(b2); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(b1.String(), b2.String()); d != "" {
		t.Error(d)
	}
	if strings.Count(b1.String(), "bind def") != 8 {
		t.Errorf("unexpected output:\n%s", b1.String())
	}
}

func TestClone(t *testing.T) {
	r := WithBuiltins()
	c := r.Clone()
	c.Add(Procedure{Name: "extra", Body: "pop"})
	if r.Has("extra") {
		t.Error("Clone shares state with the original")
	}
	if c.Len() != r.Len()+1 {
		t.Errorf("Clone has %d procedures", c.Len())
	}
}
