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
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStreamString(t *testing.T) {
	s := Stream{
		Op(OpPushGraphicsState),
		Op(OpTranslate, Number(50), Number(12.5)),
		Op(OpRotate, Number(-45)),
		Op("rect", Numbers(-10, 0, 0, -5, 10, 0, 0, 5, 1, 2)...),
		Op(OpPopGraphicsState),
	}
	want := "gsave\n" +
		"50 12.5 translate\n" +
		"-45 rotate\n" +
		"-10 0 0 -5 10 0 0 5 1 2 rect\n" +
		"grestore\n"
	if d := cmp.Diff(want, s.String()); d != "" {
		t.Error(d)
	}

	buf := &bytes.Buffer{}
	if err := s.Write(buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != want {
		t.Errorf("Write and String disagree:\n%s", buf.String())
	}
}

func TestComment(t *testing.T) {
	op := Op(OpComment, Raw("two\nlines"))
	if got := op.String(); got != "% two lines" {
		t.Errorf("got %q", got)
	}
}

func TestObjects(t *testing.T) {
	cases := []struct {
		obj  Object
		want string
	}{
		{Number(1), "1"},
		{Number(0.5), "0.5"},
		{Number(-0.25), "-0.25"},
		{Number(1.0 / 3), "0.3333"},
		{Integer(-7), "-7"},
		{Name("rect"), "/rect"},
		{Raw("<< /PageSize [1 2] >>"), "<< /PageSize [1 2] >>"},
	}
	for _, c := range cases {
		if got := c.obj.PS(); got != c.want {
			t.Errorf("%T(%v).PS() = %q, want %q", c.obj, c.obj, got, c.want)
		}
	}

	if got := String("Hello").PS(); !strings.Contains(got, "Hello") {
		t.Errorf("String.PS() = %q", got)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		s     Stream
		ok    bool
		depth int
	}{
		{"empty", nil, true, 0},
		{"balanced", Stream{Op(OpPushGraphicsState), Op(OpFill), Op(OpPopGraphicsState)}, true, 1},
		{"nested", Stream{
			Op(OpPushGraphicsState),
			Op(OpPushGraphicsState), Op(OpPopGraphicsState),
			Op(OpPushGraphicsState), Op(OpPopGraphicsState),
			Op(OpPopGraphicsState),
		}, true, 2},
		{"unclosed", Stream{Op(OpPushGraphicsState)}, false, 1},
		{"extra restore", Stream{Op(OpPopGraphicsState)}, false, 0},
		{"wrong order", Stream{Op(OpPopGraphicsState), Op(OpPushGraphicsState)}, false, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.s.Validate()
			if (err == nil) != c.ok {
				t.Fatalf("Validate() = %v", err)
			}
			if err != nil && !errors.Is(err, ErrUnbalanced) {
				t.Errorf("error %v does not wrap ErrUnbalanced", err)
			}
			if got := c.s.MaxDepth(); got != c.depth {
				t.Errorf("MaxDepth() = %d, want %d", got, c.depth)
			}
		})
	}
}

func TestProcedures(t *testing.T) {
	s := Stream{
		Op("rect"), Op("fillrgb"), Op(OpPushGraphicsState),
		Op("rect"), Op(OpPopGraphicsState), Op(OpShowPage),
	}
	want := []OpName{"fillrgb", "rect"}
	if d := cmp.Diff(want, s.Procedures()); d != "" {
		t.Error(d)
	}
	if n := s.Count("rect"); n != 2 {
		t.Errorf("Count(rect) = %d", n)
	}

	defined := map[string]bool{"rect": true}
	err := CheckProcedures(s, func(name string) bool { return defined[name] })
	if !errors.Is(err, ErrUndefined) || !strings.Contains(err.Error(), "fillrgb") {
		t.Errorf("unexpected error %v", err)
	}
	defined["fillrgb"] = true
	if err := CheckProcedures(s, func(name string) bool { return defined[name] }); err != nil {
		t.Error(err)
	}
}

func TestBuilder(t *testing.T) {
	b := NewBuilder()
	b.PushGraphicsState()
	b.Translate(1, 2)
	b.Scale(-1, 1)
	b.SetLineWidth(2)
	b.Comment("hello")
	if b.Depth() != 1 {
		t.Errorf("Depth() = %d", b.Depth())
	}
	b.PopGraphicsState()

	s, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	want := "gsave\n1 2 translate\n-1 1 scale\n2 setlinewidth\n% hello\ngrestore\n"
	if d := cmp.Diff(want, s.String()); d != "" {
		t.Error(d)
	}
}

func TestBuilderErrors(t *testing.T) {
	b := NewBuilder()
	b.PopGraphicsState()
	b.Emit(OpFill)
	if _, err := b.Build(); !errors.Is(err, ErrUnbalanced) {
		t.Errorf("expected ErrUnbalanced, got %v", err)
	}
	if len(b.Stream) != 0 {
		t.Error("operators were added after an error")
	}

	b = NewBuilder()
	b.PushGraphicsState()
	if _, err := b.Build(); !errors.Is(err, ErrUnbalanced) {
		t.Errorf("expected ErrUnbalanced, got %v", err)
	}
}

func TestBuilderEmitNesting(t *testing.T) {
	b := NewBuilder()
	b.Emit(OpPushGraphicsState)
	if b.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", b.Depth())
	}
	if _, err := b.Build(); !errors.Is(err, ErrUnbalanced) {
		t.Errorf("expected ErrUnbalanced, got %v", err)
	}
	b.Emit(OpPopGraphicsState)
	stm, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	if got := stm.String(); got != "gsave\ngrestore\n" {
		t.Errorf("unexpected stream %q", got)
	}

	b = NewBuilder()
	b.Emit(OpPopGraphicsState)
	if _, err := b.Build(); !errors.Is(err, ErrUnbalanced) {
		t.Errorf("expected ErrUnbalanced, got %v", err)
	}
}

func TestBuilderAppend(t *testing.T) {
	b := NewBuilder()
	b.PushGraphicsState()
	b.Append(Stream{Op(OpPopGraphicsState), Op(OpPushGraphicsState)})
	if b.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", b.Depth())
	}
	b.PopGraphicsState()
	if _, err := b.Build(); err != nil {
		t.Error(err)
	}
}
