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

// Package psdoc is the root of a library for writing PostScript and
// Encapsulated PostScript files.
//
// The library only emits markup; it never interprets or renders PostScript.
// Drawing happens in three layers:
//
//   - Shapes (package shape) describe rectangles, lines and images, together
//     with their colors and an optional rotation/scaling around an anchor
//     point.  A shape turns itself into a sequence of PostScript operators.
//   - Pages (package page) collect the operators of several shapes.
//   - Documents (package document) write the file header, including the
//     procedure definitions which shapes refer to, one page after another,
//     and finally the trailer.
//
// A minimal program looks like this:
//
//	doc, err := document.Create("out.ps", &document.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p := page.New(400, 400)
//	r := shape.NewRect(50, 50, 100, 100)
//	r.SetFill(color.RGB(1, 0, 0))
//	err = p.Add(r)
//	...
//	err = doc.Add(p)
//	...
//	err = doc.Close()
//
// This package itself only holds the version information and the logger
// shared by all sub-packages.
package psdoc
