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

// Psdemo writes a PostScript or EPS file which shows the available shapes.
//
// Usage:
//
//	psdemo [options] [image ...]
//
// Every image given on the command line is placed on a page of its own.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/term"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/psdoc"
	"seehuhn.de/go/psdoc/color"
	"seehuhn.de/go/psdoc/document"
	"seehuhn.de/go/psdoc/images"
	"seehuhn.de/go/psdoc/metadata"
	"seehuhn.de/go/psdoc/page"
	"seehuhn.de/go/psdoc/shape"
	"seehuhn.de/go/psdoc/transform"
)

func main() {
	eps := flag.Bool("eps", false, "write an EPS file with a single page")
	outName := flag.String("o", "", "output file name (default: standard output)")
	force := flag.Bool("f", false, "write to standard output even if it is a terminal")
	fitName := flag.String("fit", "contain", "how images are fitted into their box")
	title := flag.String("title", "", "document title")
	author := flag.String("author", "", "document author, stored in the XMP metadata")
	maxPixels := flag.Int("max-pixels", 0, "downsample images with more pixels than this")
	verbose := flag.Bool("v", false, "log progress to standard error")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [image ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *verbose {
		psdoc.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	fit, err := shape.ParseImageFit(*fitName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *eps && flag.NArg() > 0 {
		fmt.Fprintln(os.Stderr, "Error: EPS files cannot contain image pages")
		os.Exit(1)
	}

	var out io.Writer
	if *outName == "" {
		if term.IsTerminal(int(os.Stdout.Fd())) && !*force {
			fmt.Fprintln(os.Stderr, "Error: refusing to write PostScript to a terminal (use -o or -f)")
			os.Exit(1)
		}
		out = os.Stdout
	} else {
		fd, err := os.Create(*outName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			os.Exit(1)
		}
		out = fd
	}

	err = run(out, &options{
		eps:       *eps,
		fit:       fit,
		title:     *title,
		author:    *author,
		maxPixels: *maxPixels,
		images:    flag.Args(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	eps       bool
	fit       shape.ImageFit
	title     string
	author    string
	maxPixels int
	images    []string
}

func run(out io.Writer, opt *options) error {
	reg := images.NewRegistry(&images.Options{MaxPixels: opt.maxPixels})
	for _, name := range opt.images {
		_, err := reg.Add(name)
		if err != nil {
			return err
		}
	}

	paper := document.A4
	cfg := &document.Config{
		Title:  opt.title,
		Images: reg,
	}
	if opt.eps {
		cfg.Kind = document.EPS
		cfg.BoundingBox = paper
	}
	if opt.title != "" || opt.author != "" {
		var creators []string
		if opt.author != "" {
			creators = append(creators, opt.author)
		}
		packet, err := metadata.New(opt.title, creators, time.Now())
		if err != nil {
			return err
		}
		cfg.Metadata = packet
	}

	doc, err := document.New(out, cfg)
	if err != nil {
		return err
	}

	p, err := shapesPage(paper)
	if err != nil {
		return err
	}
	err = doc.Add(p)
	if err != nil {
		return err
	}
	for _, name := range opt.images {
		p, err := imagePage(paper, reg, name, opt.fit)
		if err != nil {
			return err
		}
		err = doc.Add(p)
		if err != nil {
			return err
		}
	}

	return doc.Close()
}

func shapesPage(paper *rect.Rect) (*page.Page, error) {
	p := page.New(paper.Dx(), paper.Dy())

	colors := []color.Color{
		color.RGB(0.8, 0.1, 0.1),
		color.RGB(0.1, 0.6, 0.1),
		color.RGB(0.1, 0.1, 0.8),
		color.CMYK(0, 0.2, 1, 0),
		color.CMYK(0.7, 0, 0.1, 0.2),
	}
	origins := []transform.Origin{
		transform.Center,
		transform.TopLeft,
		transform.TopRight,
		transform.BottomLeft,
		transform.BottomRight,
	}
	for i, o := range origins {
		y := 700 - 120*float64(i)

		ref := shape.NewRect(80, y, 120, 60)
		ref.SetStroke(0.5, color.RGB(0.6, 0.6, 0.6))
		if err := p.Add(ref); err != nil {
			return nil, err
		}

		r := shape.NewRect(80, y, 120, 60)
		r.SetFill(colors[i])
		r.SetStroke(2, color.RGB(0, 0, 0))
		r.SetOrigin(o)
		r.Rotate(15 * float64(i+1))
		if err := p.Add(r); err != nil {
			return nil, err
		}
	}

	lineOrigins := []transform.LineOrigin{
		transform.LineLeft,
		transform.LineCenter,
		transform.LineRight,
	}
	for i, o := range lineOrigins {
		y := 700 - 200*float64(i)
		for k := range 6 {
			l := shape.NewLine(320, y, 180)
			l.SetStroke(1+float64(k), colors[k%len(colors)])
			l.SetOrigin(o)
			l.Rotate(-30 * float64(k))
			if err := p.Add(l); err != nil {
				return nil, err
			}
		}
	}

	scaled := shape.NewRect(400, 80, 100, 40)
	scaled.SetFill(color.CMYK(0, 0, 0, 0.3))
	scaled.Scale(1.5, 0.5)
	if err := p.Add(scaled); err != nil {
		return nil, err
	}

	return p, nil
}

func imagePage(paper *rect.Rect, reg *images.Registry, fileName string, fit shape.ImageFit) (*page.Page, error) {
	p := page.New(paper.Dx(), paper.Dy())

	const margin = 72
	im := shape.NewImage(reg, filepath.Base(fileName),
		margin, margin, paper.Dx()-2*margin, paper.Dy()-2*margin)
	im.SetFit(fit)
	im.SetStroke(1, color.RGB(0.5, 0.5, 0.5))
	err := p.Add(im)
	if err != nil {
		return nil, err
	}
	return p, nil
}
