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

// Package document writes PostScript and Encapsulated PostScript files.
//
// A [Document] is created with [New] or [Create], which immediately write
// the document header including all procedure definitions.  Pages are then
// added in order using [Document.Add], and finally [Document.Close] writes
// the trailer.
package document

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/psdoc"
	"seehuhn.de/go/psdoc/content"
	"seehuhn.de/go/psdoc/images"
	"seehuhn.de/go/psdoc/metadata"
	"seehuhn.de/go/psdoc/page"
	"seehuhn.de/go/psdoc/procset"
	"seehuhn.de/go/xmp"
)

// Kind selects the type of file written.
type Kind int

// These are the supported output kinds.
const (
	// PS is a multi-page PostScript document.
	PS Kind = iota

	// EPS is an Encapsulated PostScript file.  EPS files contain a single
	// page and declare an explicit bounding box.
	EPS
)

func (k Kind) String() string {
	switch k {
	case PS:
		return "PS"
	case EPS:
		return "EPS"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

var (
	// ErrNoWriter is returned by [New] if no output writer is given.
	ErrNoWriter = errors.New("no output writer")

	// ErrNoBoundingBox is returned by [New] for EPS documents without a
	// bounding box.
	ErrNoBoundingBox = errors.New("EPS document without bounding box")

	// ErrSinglePage is returned by [Document.Add] when a second page is
	// added to an EPS document.
	ErrSinglePage = errors.New("EPS document can only contain one page")
)

// Config describes a new document.
// The zero value describes a PostScript document with the built-in
// procedures.
type Config struct {
	// Kind selects between PostScript and Encapsulated PostScript output.
	Kind Kind

	// BoundingBox is the bounding box of an EPS file.  This is required for
	// EPS files and ignored otherwise.  It is independent of the page size.
	BoundingBox *rect.Rect

	// Creator is written into the %%Creator comment.
	// If this is empty, [psdoc.Creator] is used.
	Creator string

	// Title (optional) is written into the %%Title comment.
	Title string

	// CreationDate is written into the %%CreationDate comment.
	// If this is zero, the current time is used.
	CreationDate time.Time

	// Procedures is the set of procedures defined in the document prolog.
	// If this is nil, [procset.WithBuiltins] is used.
	Procedures *procset.Registry

	// Images (optional) holds the images used in the document.  The image
	// procedures are added to the prolog.
	Images *images.Registry

	// Metadata (optional) is an XMP packet which is embedded into the
	// document using pdfmark operators.
	Metadata *xmp.Packet
}

// Document is a PostScript document which is being written.
type Document struct {
	kind  Kind
	procs *procset.Registry

	out  *bufio.Writer
	base io.Writer

	pages  int
	closed bool
}

// Create creates a new file and writes the document header to it.
// The file is closed when the document is closed.
func Create(fileName string, cfg *Config) (*Document, error) {
	if err := checkConfig(cfg); err != nil {
		return nil, err
	}
	fd, err := os.Create(fileName)
	if err != nil {
		return nil, err
	}
	doc, err := New(fd, cfg)
	if err != nil {
		fd.Close()
		return nil, err
	}
	return doc, nil
}

// New writes the document header to w and returns the new document.
//
// If w implements [io.Closer], it is closed when the document is closed.
// If the configuration is invalid, an error is returned and nothing is
// written.
func New(w io.Writer, cfg *Config) (*Document, error) {
	if w == nil {
		return nil, ErrNoWriter
	}
	if err := checkConfig(cfg); err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = &Config{}
	}

	procs := cfg.Procedures
	if procs == nil {
		procs = procset.WithBuiltins()
	} else {
		procs = procs.Clone()
	}
	if cfg.Images != nil {
		for _, p := range cfg.Images.Procedures() {
			procs.Add(p)
		}
	}

	doc := &Document{
		kind:  cfg.Kind,
		procs: procs,
		out:   bufio.NewWriter(w),
		base:  w,
	}
	err := doc.writeHeader(cfg)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func checkConfig(cfg *Config) error {
	if cfg == nil || cfg.Kind != EPS {
		return nil
	}
	if cfg.BoundingBox == nil || cfg.BoundingBox.IsZero() {
		return ErrNoBoundingBox
	}
	return nil
}

func (doc *Document) writeHeader(cfg *Config) error {
	info := &headerInfo{
		EPS:          cfg.Kind == EPS,
		BoundingBox:  cfg.BoundingBox,
		Creator:      cfg.Creator,
		CreationDate: cfg.CreationDate.Format(time.RFC3339),
		Title:        cfg.Title,
		XMP:          cfg.Metadata != nil,
	}
	if info.Creator == "" {
		info.Creator = psdoc.Creator()
	}
	if cfg.CreationDate.IsZero() {
		info.CreationDate = time.Now().Format(time.RFC3339)
	}

	err := headerTmpl.Execute(doc.out, info)
	if err != nil {
		return err
	}
	if cfg.Metadata != nil {
		err = metadata.Write(doc.out, cfg.Metadata)
		if err != nil {
			return err
		}
	}

	_, err = doc.out.WriteString("%%BeginProlog\n")
	if err != nil {
		return err
	}
	_, err = doc.procs.WriteTo(doc.out)
	if err != nil {
		return err
	}
	_, err = doc.out.WriteString("%%EndProlog\n")
	if err != nil {
		return err
	}
	return doc.out.Flush()
}

// Kind returns the type of the document.
func (doc *Document) Kind() Kind {
	return doc.kind
}

// Pages returns the number of pages written so far.
func (doc *Document) Pages() int {
	return doc.pages
}

// Procedures returns the procedures defined in the document prolog.
func (doc *Document) Procedures() *procset.Registry {
	return doc.procs.Clone()
}

// Add writes a page to the document.  The page cannot be used any more
// after this call.
//
// Every procedure called on the page must be defined in the document prolog,
// otherwise an error wrapping [content.ErrUndefined] is returned and nothing
// is written.  Pages with unbalanced gsave/grestore nesting are rejected
// in the same way.  Calling Add after [Document.Close], or with a nil page,
// panics.
func (doc *Document) Add(p *page.Page) error {
	if doc.closed {
		panic("document: Add called after Close")
	}
	if p == nil {
		panic("document: Add called with nil page")
	}
	if p.Builder == nil {
		return page.ErrClosed
	}
	if doc.kind == EPS && doc.pages > 0 {
		return ErrSinglePage
	}
	stm, err := p.Builder.Build()
	if err != nil {
		return fmt.Errorf("page %d: %w", doc.pages+1, err)
	}
	err = content.CheckProcedures(stm, doc.procs.Has)
	if err != nil {
		return fmt.Errorf("page %d: %w", doc.pages+1, err)
	}

	doc.pages++
	if doc.kind == PS {
		_, err = fmt.Fprintf(doc.out, "%%%%Page: %d %d\n", doc.pages, doc.pages)
		if err != nil {
			return err
		}
	}
	err = p.Frame(doc.out)
	if err != nil {
		return err
	}

	psdoc.Logger().Debug("page written", "page", doc.pages, "kind", doc.kind)
	return nil
}

// Close writes the document trailer and flushes all output.  If the
// underlying writer implements [io.Closer], it is closed.
//
// Close must be called exactly once.  Calling it a second time panics.
func (doc *Document) Close() error {
	if doc.closed {
		panic("document: Close called twice")
	}
	doc.closed = true

	var err error
	if doc.kind == PS {
		_, err = fmt.Fprintf(doc.out, "%%%%Trailer\n%%%%Pages: %d\n%%%%EOF\n", doc.pages)
	} else {
		_, err = doc.out.WriteString("%%EOF\n")
	}
	if err == nil {
		err = doc.out.Flush()
	}

	if c, ok := doc.base.(io.Closer); ok {
		err2 := c.Close()
		if err == nil {
			err = err2
		}
	}
	if err != nil {
		return err
	}

	psdoc.Logger().Debug("document closed", "pages", doc.pages, "kind", doc.kind)
	return nil
}
