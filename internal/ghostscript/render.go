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

// Package ghostscript renders PostScript files in unit tests.
package ghostscript

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"sort"
	"sync"
	"testing"
)

var keepTempFiles = false

// Resolution is the number of pixels per PostScript point in rendered
// images.
const Resolution = 4

// RenderFile can be used in unit tests to render a PostScript or EPS file.
//
// This calls the ghostscript command-line tool to render every page of the
// file to a PNG image.  The images are returned in page order.  If
// ghostscript is not installed, the test is skipped.  Ghostscript errors,
// for example caused by invalid PostScript code, make the test fail.
func RenderFile(t *testing.T, fileName string, eps bool) []image.Image {
	t.Helper()

	if !isAvailable() {
		t.Skip("ghostscript not found")
	}

	imgs, err := render(fileName, eps)
	if err != nil {
		t.Fatal(err)
	}
	return imgs
}

// Check runs a PostScript file through ghostscript without producing any
// output, and reports any errors.
func Check(fileName string) error {
	if !isAvailable() {
		return ErrNoGhostscript
	}
	cmd := exec.Command("gs", "-q", "-dSAFER", "-dBATCH", "-dNOPAUSE",
		"-sDEVICE=nullpage", fileName)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ghostscript: %w\n%s", err, out)
	}
	if len(out) > 0 {
		return fmt.Errorf("unexpected ghostscript output:\n%s", out)
	}
	return nil
}

func render(fileName string, eps bool) ([]image.Image, error) {
	var dir string
	var err error
	if !keepTempFiles {
		dir, err = os.MkdirTemp("", "psdoc")
		if err != nil {
			return nil, err
		}
	} else {
		const dirName = "./render-files"
		err = os.Mkdir(dirName, 0755)
		if err != nil && !os.IsExist(err) {
			return nil, err
		}
		dir, err = filepath.Abs(dirName)
		if err != nil {
			return nil, err
		}
	}

	idx := <-gsIndex
	gsIndex <- idx + 1

	absName, err := filepath.Abs(fileName)
	if err != nil {
		return nil, err
	}
	pngPattern := filepath.Join(dir, fmt.Sprintf("test%03d-%%03d.png", idx))

	args := []string{
		"-q", "-dSAFER", "-dBATCH", "-dNOPAUSE",
		"-sDEVICE=png16m", fmt.Sprintf("-r%d", Resolution*72),
		"-dGraphicsAlphaBits=1",
	}
	if eps {
		args = append(args, "-dEPSCrop")
	}
	args = append(args, "-o", pngPattern, absName)

	cmd := exec.Command("gs", args...)
	cmd.Dir = dir
	cmd.Stdin = nil
	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("ghostscript: %w\n%s", err, out)
	}
	if len(out) > 0 {
		fmt.Println("unexpected ghostscript output:")
		fmt.Println(string(out))
	}

	pngNames, err := filepath.Glob(filepath.Join(dir, fmt.Sprintf("test%03d-*.png", idx)))
	if err != nil {
		return nil, err
	}
	sort.Strings(pngNames)

	var res []image.Image
	for _, name := range pngNames {
		img, err := readPNG(name)
		if err != nil {
			return nil, err
		}
		res = append(res, img)
	}

	if !keepTempFiles {
		err = os.RemoveAll(dir)
		if err != nil {
			return nil, err
		}
	}

	return res, nil
}

func readPNG(fileName string) (image.Image, error) {
	fd, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	return png.Decode(fd)
}

// isAvailable returns true if the ghostscript command-line tool is available.
func isAvailable() bool {
	gsScriptOnce.Do(func() {
		out, err := exec.Command("gs", "-h").Output()
		if err != nil {
			gsScriptFound = false
			return
		}
		gsScriptFound = gsScriptPNGRe.Match(out)
		gsIndex <- 1
	})
	return gsScriptFound
}

// ErrNoGhostscript is returned if the ghostscript command-line tool is not
// available.
var ErrNoGhostscript = errors.New("cannot run ghostscript")

var (
	gsScriptOnce  sync.Once
	gsScriptPNGRe = regexp.MustCompile(`\bpng16m\b`)
	gsScriptFound bool
	gsIndex       = make(chan int, 1)
)
