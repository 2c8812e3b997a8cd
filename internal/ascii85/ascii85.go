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

// Package ascii85 writes binary data as PostScript ASCII85 string literals
// of the form "<~ ... ~>".
package ascii85

import (
	"io"
	"strings"
)

// lineLength is the maximal number of characters per output line.
const lineLength = 75

// Writer encodes binary data as an ASCII85 string literal.
// The opening "<~" is written before the first data byte, the closing "~>"
// by Close.  Close does not close the underlying writer.
type Writer struct {
	w       io.Writer
	buf     []byte
	v       uint32
	k       int
	started bool
}

// NewWriter returns a new Writer which writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:   w,
		buf: make([]byte, 0, lineLength+8),
	}
}

func (w *Writer) Write(p []byte) (n int, err error) {
	if !w.started {
		w.buf = append(w.buf, '<', '~')
		w.started = true
	}
	for n, b := range p {
		w.v = w.v<<8 | uint32(b)
		w.k++
		if w.k < 4 {
			continue
		}

		if len(w.buf)+5 > lineLength {
			err = w.flush()
			if err != nil {
				return n, err
			}
		}

		v := w.v
		if v == 0 {
			w.buf = append(w.buf, 'z')
		} else {
			var c [5]byte
			for i := 4; i >= 0; i-- {
				c[i] = byte(v%85) + '!'
				v /= 85
			}
			w.buf = append(w.buf, c[:]...)
		}
		w.v = 0
		w.k = 0
	}
	return len(p), nil
}

// Close writes any buffered data and the "~>" end marker.
func (w *Writer) Close() error {
	if !w.started {
		w.buf = append(w.buf, '<', '~')
		w.started = true
	}
	if w.k != 0 {
		v := w.v << ((4 - w.k) * 8)
		var c [5]byte
		for i := 4; i >= 0; i-- {
			c[i] = byte(v%85) + '!'
			v /= 85
		}
		w.buf = append(w.buf, c[:w.k+1]...)
		w.v = 0
		w.k = 0
	}
	w.buf = append(w.buf, '~', '>')
	_, err := w.w.Write(w.buf)
	w.buf = w.buf[:0]
	return err
}

func (w *Writer) flush() error {
	w.buf = append(w.buf, '\n')
	_, err := w.w.Write(w.buf)
	if err != nil {
		return err
	}
	w.buf = w.buf[:0]
	return nil
}

// String returns data as a complete ASCII85 string literal.
func String(data []byte) string {
	b := &strings.Builder{}
	w := NewWriter(b)
	w.Write(data) // writes to a strings.Builder cannot fail
	w.Close()
	return b.String()
}
