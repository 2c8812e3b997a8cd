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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokens(t *testing.T) {
	src := `%!PS-Adobe-3.0
/fillrgb {
  gsave setrgbcolor fill grestore
} bind def
(a (nested) gsave \) string) pop
<< /PageSize [10 20] >> setpagedevice
<~gsave~> <6773617665> pop pop % gsave in a comment
1 2 rect`
	got, err := Tokens(src)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"gsave", "setrgbcolor", "fill", "grestore", "bind", "def",
		"pop", "10", "20", "setpagedevice", "pop", "pop",
		"1", "2", "rect",
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestCheckBalance(t *testing.T) {
	cases := []struct {
		src   string
		depth int
		ok    bool
	}{
		{"", 0, true},
		{"gsave grestore", 1, true},
		{"gsave gsave grestore gsave grestore grestore", 2, true},
		{"gsave", 1, false},
		{"grestore gsave", 0, false},
		{"(gsave) pop % grestore", 0, true},
	}
	for _, c := range cases {
		depth, err := CheckBalance(c.src)
		if (err == nil) != c.ok {
			t.Errorf("%q: unexpected error state %v", c.src, err)
			continue
		}
		if err != nil && !errors.Is(err, ErrUnbalanced) {
			t.Errorf("%q: error %v does not wrap ErrUnbalanced", c.src, err)
		}
		if depth != c.depth {
			t.Errorf("%q: depth %d, want %d", c.src, depth, c.depth)
		}
	}
}

func TestUnterminated(t *testing.T) {
	for _, src := range []string{"(abc", "<~abc", "<616263"} {
		if _, err := Tokens(src); err == nil {
			t.Errorf("%q: expected an error", src)
		}
	}
}

func TestStreamAndSourceAgree(t *testing.T) {
	s := Stream{
		Op(OpPushGraphicsState),
		Op(OpComment, Raw("grestore")),
		Op(OpPushGraphicsState),
		Op(OpPopGraphicsState),
		Op(OpPopGraphicsState),
	}
	depth, err := CheckBalance(s.String())
	if err != nil {
		t.Fatal(err)
	}
	if depth != s.MaxDepth() {
		t.Errorf("depth %d != %d", depth, s.MaxDepth())
	}
}
