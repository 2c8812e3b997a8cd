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

// Package metadata embeds XMP metadata into PostScript documents.
//
// The metadata packet is wrapped in pdfmark operators, so that PDF
// distillers store it as the metadata stream of the document catalog.
// Other PostScript interpreters skip the packet.
package metadata

import (
	"bytes"
	"errors"
	"io"
	"time"

	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"
)

// Marker ends the XMP packet in the PostScript file.
const Marker = "% &&end XMP packet marker&&"

// Header is the DSC comment which announces the embedded packet.
const Header = "%ADO_ContainsXMP: MainFirst"

// ErrNoPacket is returned by [Read] if no metadata packet is found.
var ErrNoPacket = errors.New("no XMP packet found")

// New returns a packet with the document title, the authors and the
// creation date.  Empty values are omitted.
func New(title string, creators []string, created time.Time) (*xmp.Packet, error) {
	dc := &xmp.DublinCore{}
	if title != "" {
		dc.Title.Set(language.Und, title)
	}
	for _, name := range creators {
		dc.Creator.Append(xmp.NewProperName(name))
	}

	basic := &xmp.Basic{}
	if !created.IsZero() {
		basic.CreateDate = xmp.NewDate(created)
		basic.ModifyDate = xmp.NewDate(created)
	}

	packet := xmp.NewPacket()
	err := packet.Set(dc, basic)
	if err != nil {
		return nil, err
	}
	return packet, nil
}

// The prolog defines metadata_pdfmark.  Distillers store the data which
// follows as a PDF stream, all other interpreters discard it.
const prolog = `/currentdistillerparams where
{pop currentdistillerparams /CoreDistVersion get 5000 lt} {true} ifelse
{userdict /pdfmark /cleartomark load put
userdict /metadata_pdfmark {flushfile cleartomark} bind put}
{userdict /metadata_pdfmark {/PUT pdfmark} bind put} ifelse
[/_objdef {metadata_stream} /type /stream /OBJ pdfmark
[{metadata_stream} <</Type /Metadata /Subtype /XML>> /PUT pdfmark
`

const start = "[{metadata_stream} currentfile 0 (" + Marker + ") /SubFileDecode filter metadata_pdfmark\n"

const epilog = "\n" + Marker + `
[{metadata_stream} /CLOSE pdfmark
[{Catalog} {metadata_stream} /Metadata pdfmark
`

// Write writes the packet to w, wrapped in pdfmark operators.
// The output must be placed after the %%EndComments line of the
// document header.
func Write(w io.Writer, packet *xmp.Packet) error {
	_, err := io.WriteString(w, prolog+start)
	if err != nil {
		return err
	}
	err = packet.Write(w, &xmp.PacketOptions{Pretty: true})
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, epilog)
	return err
}

// Read extracts an XMP packet written by [Write] from PostScript source.
func Read(r io.Reader) (*xmp.Packet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	i := bytes.Index(data, []byte(start))
	if i < 0 {
		return nil, ErrNoPacket
	}
	data = data[i+len(start):]
	j := bytes.Index(data, []byte("\n"+Marker))
	if j < 0 {
		return nil, ErrNoPacket
	}
	return xmp.Read(bytes.NewReader(data[:j]))
}
