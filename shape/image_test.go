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

package shape

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/psdoc/content"
)

func TestPlace(t *testing.T) {
	box := rect.Rect{LLx: 100, LLy: 100, URx: 300, URy: 200}
	cases := []struct {
		fit      ImageFit
		sw, sh   float64
		want     rect.Rect
		wantClip bool
	}{
		{Contain, 50, 50, rect.Rect{LLx: 150, LLy: 100, URx: 250, URy: 200}, false},
		{Contain, 400, 100, rect.Rect{LLx: 100, LLy: 125, URx: 300, URy: 175}, false},
		{Stretch, 50, 50, box, false},
		{StretchHorizontal, 50, 40, rect.Rect{LLx: 100, LLy: 130, URx: 300, URy: 170}, true},
		{StretchVertical, 40, 50, rect.Rect{LLx: 180, LLy: 100, URx: 220, URy: 200}, true},
		{Crop, 400, 300, rect.Rect{LLx: 100, LLy: -100, URx: 500, URy: 200}, true},
		{Contain, 0, 10, rect.Rect{LLx: 200, LLy: 150, URx: 200, URy: 150}, false},
	}
	for _, c := range cases {
		got, clip := c.fit.Place(box, c.sw, c.sh)
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("%s %gx%g: %s", c.fit, c.sw, c.sh, d)
		}
		if clip != c.wantClip {
			t.Errorf("%s: clip=%t", c.fit, clip)
		}
	}
}

func TestImageFitNames(t *testing.T) {
	for f := Contain; f <= Crop; f++ {
		g, err := ParseImageFit(f.String())
		if err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("%s round-tripped to %s", f, g)
		}
	}
	if _, err := ParseImageFit("tile"); !errors.Is(err, ErrUnknownFit) {
		t.Errorf("unexpected error %v", err)
	}
}

func TestImageContent(t *testing.T) {
	im := NewImage(resolver, "cat.png", 10, 10, 100, 100)
	want := strings.Join([]string{
		"gsave",
		"10 35 translate",
		"100 50 scale",
		"imager1",
		"grestore",
		"",
	}, "\n")
	if d := cmp.Diff(want, im.Serialize()); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff([]content.OpName{"imager1"}, im.Content().Procedures()); d != "" {
		t.Error(d)
	}
}

func TestImageClip(t *testing.T) {
	im := NewImage(resolver, "cat.png", 0, 0, 100, 100)
	im.SetFit(Crop)
	im.SetStroke(1, nil)
	stm := im.Content()
	if n := stm.Count(content.OpClip); n != 1 {
		t.Errorf("%d clip operators", n)
	}
	if err := stm.Validate(); err != nil {
		t.Error(err)
	}
	want := []content.OpName{"imager1", "rect", "strokergb"}
	if d := cmp.Diff(want, stm.Procedures()); d != "" {
		t.Error(d)
	}
}

func TestImageUnknown(t *testing.T) {
	for _, res := range []Resolver{nil, resolver} {
		im := NewImage(res, "dog.png", 0, 0, 100, 100)
		im.Rotate(10)
		stm := im.Content()
		if n := stm.Count(content.OpComment); n != 1 {
			t.Errorf("%d comments", n)
		}
		if len(stm.Procedures()) != 0 {
			t.Errorf("unexpected procedure calls in %q", stm.String())
		}
		if err := stm.Validate(); err != nil {
			t.Error(err)
		}
		if !strings.Contains(stm.String(), "% image not found: dog.png\n") {
			t.Errorf("missing comment in %q", stm.String())
		}
	}
}
