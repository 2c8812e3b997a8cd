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

package metadata

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/xmp"
)

func TestRoundTrip(t *testing.T) {
	created := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	original, err := New("Test Document", []string{"Test Author", "Second Author"}, created)
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	buf.WriteString("%!PS-Adobe-3.0\n%%EndComments\n")
	err = Write(buf, original)
	if err != nil {
		t.Fatal(err)
	}
	buf.WriteString("showpage\n%%EOF\n")

	extracted, err := Read(buf)
	if err != nil {
		t.Fatal(err)
	}

	var originalDC, extractedDC xmp.DublinCore
	original.Get(&originalDC)
	extracted.Get(&extractedDC)
	if d := cmp.Diff(extractedDC, originalDC); d != "" {
		t.Errorf("round trip failed (-got +want):\n%s", d)
	}
}

func TestLayout(t *testing.T) {
	packet, err := New("x", nil, time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := Write(buf, packet); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	lines := strings.Split(out, "\n")
	var markerLines []int
	for i, line := range lines {
		if line == Marker {
			markerLines = append(markerLines, i)
		}
	}
	if len(markerLines) != 1 {
		t.Fatalf("marker found %d times", len(markerLines))
	}
	if got := lines[markerLines[0]+1]; got != "[{metadata_stream} /CLOSE pdfmark" {
		t.Errorf("unexpected line after marker: %q", got)
	}
	if !strings.HasSuffix(out, "[{Catalog} {metadata_stream} /Metadata pdfmark\n") {
		t.Error("catalog entry missing")
	}
	if _, err := Read(strings.NewReader(out)); err != nil {
		t.Error(err)
	}
}

func TestReadMissing(t *testing.T) {
	_, err := Read(strings.NewReader("%!PS-Adobe-3.0\nshowpage\n"))
	if !errors.Is(err, ErrNoPacket) {
		t.Errorf("unexpected error %v", err)
	}
}
