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

package document

import (
	"fmt"
	"math"
	"strings"
	"text/template"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/postscript"
	"seehuhn.de/go/psdoc/internal/float"
	"seehuhn.de/go/psdoc/metadata"
)

// headerInfo holds the values used to fill in the header template.
type headerInfo struct {
	EPS          bool
	BoundingBox  *rect.Rect
	Creator      string
	CreationDate string
	Title        string
	XMP          bool
}

var headerTmpl = template.Must(template.New("header").Funcs(template.FuncMap{
	"PS": func(s string) string {
		x := postscript.String(s)
		return x.PS()
	},
	"BBox":      bboxInt,
	"HiResBBox": bboxHiRes,
	"Line":      oneLine,
	"XMPHeader": func() string { return metadata.Header },
}).Parse(`{{if .EPS -}}
%!PS-Adobe-3.0 EPSF-3.0
%%BoundingBox: {{BBox .BoundingBox}}
%%HiResBoundingBox: {{HiResBBox .BoundingBox}}
{{else -}}
%!PS-Adobe-3.0
{{end -}}
%%Creator: {{Line .Creator}}
%%CreationDate: {{.CreationDate}}
{{with .Title -}}
%%Title: {{PS .}}
{{end -}}
%%LanguageLevel: 2
{{if .EPS -}}
%%Pages: 1
{{else -}}
%%Pages: (atend)
{{end -}}
{{if .XMP -}}
{{XMPHeader}}
{{end -}}
%%EndComments
`))

// bboxInt formats a bounding box using integer coordinates which enclose
// the box.
func bboxInt(b *rect.Rect) string {
	return fmt.Sprintf("%d %d %d %d",
		int(math.Floor(b.LLx)), int(math.Floor(b.LLy)),
		int(math.Ceil(b.URx)), int(math.Ceil(b.URy)))
}

func bboxHiRes(b *rect.Rect) string {
	return strings.Join([]string{
		float.Format(b.LLx, 4),
		float.Format(b.LLy, 4),
		float.Format(b.URx, 4),
		float.Format(b.URy, 4),
	}, " ")
}

// oneLine replaces line breaks, so that s can be used in a DSC comment.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
