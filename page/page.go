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

// Package page implements the pages of a PostScript document.
//
// A [Page] collects the PostScript code of the shapes placed on it.  Content
// is only ever appended.  Once the page has been written using
// [Page.Frame], it can no longer be modified.
package page

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/psdoc"
	"seehuhn.de/go/psdoc/content"
	"seehuhn.de/go/psdoc/internal/float"
)

// ErrClosed is returned when a page is used after it has been written.
var ErrClosed = errors.New("page already written")

// Drawable is implemented by everything which can be placed on a page.
// The shapes in package [seehuhn.de/go/psdoc/shape] implement this
// interface.
type Drawable interface {
	// Content returns the PostScript operators which draw the object.
	Content() content.Stream

	// Bounds returns the area covered by the object.
	Bounds() rect.Rect
}

// Page represents a page in a PostScript document.
type Page struct {
	// Builder holds the content of the page.  Operators can be appended
	// directly, but must leave the gsave/grestore nesting balanced.
	*content.Builder

	width, height float64
}

// New returns an empty page of the given size.
// Sizes smaller than 1 are replaced by 1.
func New(width, height float64) *Page {
	return &Page{
		Builder: content.NewBuilder(),
		width:   max(float.NonNegative(width), 1),
		height:  max(float.NonNegative(height), 1),
	}
}

// Size returns the width and height of the page.
func (p *Page) Size() (width, height float64) {
	return p.width, p.height
}

// Add appends the content of d to the page.
//
// Objects which are not fully contained in the page area are added, but
// a warning is logged.
func (p *Page) Add(d Drawable) error {
	if p.Builder == nil {
		return ErrClosed
	}
	stm := d.Content()
	if err := stm.Validate(); err != nil {
		return fmt.Errorf("%T: %w", d, err)
	}

	// Coordinates are written with limited precision, so rounding errors
	// from rotations are ignored here.
	b := d.Bounds()
	const prec = content.NumberPrecision
	if float.Round(b.LLx, prec) < 0 || float.Round(b.LLy, prec) < 0 ||
		float.Round(b.URx, prec) > p.width || float.Round(b.URy, prec) > p.height {
		psdoc.Logger().Warn("object extends beyond the page",
			"type", fmt.Sprintf("%T", d),
			"bounds", b,
			"width", p.width,
			"height", p.height)
	}

	p.Builder.Append(stm)
	return p.Builder.Err
}

// Procedures returns the names of all procedures used on the page.
func (p *Page) Procedures() []content.OpName {
	if p.Builder == nil {
		return nil
	}
	return p.Builder.Stream.Procedures()
}

// Frame writes the page to w.  The output consists of the page bounding box
// comment, the page size setup, the page content, and the showpage
// operator.  After Frame has been called, the page can no longer be used.
//
// Write errors are returned unchanged.
func (p *Page) Frame(w io.Writer) error {
	if p.Builder == nil {
		return ErrClosed
	}
	stm, err := p.Builder.Build()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%%%%PageBoundingBox: 0 0 %s %s\n",
		dscInt(p.width), dscInt(p.height))
	if err != nil {
		return err
	}
	setup := content.Op(content.OpSetPageDevice,
		content.Raw("<< /PageSize ["+content.Number(p.width).PS()+" "+content.Number(p.height).PS()+"] >>"))
	err = content.WriteOperator(w, setup)
	if err != nil {
		return err
	}
	err = stm.Write(w)
	if err != nil {
		return err
	}
	err = content.WriteOperator(w, content.Op(content.OpShowPage))
	if err != nil {
		return err
	}

	p.Builder = nil
	return nil
}

// dscInt formats a page dimension for a DSC comment.  DSC bounding boxes use
// integers, so fractional sizes are rounded up.
func dscInt(x float64) string {
	return strconv.Itoa(int(math.Ceil(x)))
}
