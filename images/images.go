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

// Package images keeps track of the bitmap images used in a document.
//
// Every image is stored in the document prolog as a procedure which draws
// the image into the unit square.  Image shapes call this procedure after
// setting up the transformation for their target box.  Procedures are named
// "imager1", "imager2", ..., in the order in which the images are added.
//
// Images in PNG, JPEG, GIF, BMP, TIFF and WebP format can be read.
// Transparent pixels are composited onto a white background.
package images

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"seehuhn.de/go/psdoc"
	"seehuhn.de/go/psdoc/internal/ascii85"
	"seehuhn.de/go/psdoc/procset"
	"seehuhn.de/go/psdoc/shape"
)

// chunkSize is the maximal number of sample bytes per PostScript string.
// This keeps every string well below the 65535 byte implementation limit.
const chunkSize = 16 * 1024

// Options control how images are stored.
type Options struct {
	// MaxPixels is the maximal number of pixels stored for an image.
	// Larger images are downsampled, keeping the aspect ratio.  The size
	// used for layout is not affected.  Zero means no limit.
	MaxPixels int
}

var defaultOptions = &Options{}

type entry struct {
	info shape.ImageInfo
	img  *image.RGBA
}

// Registry maps image file names to image procedures.
//
// Images are identified by the base name of the file.  Adding a second image
// with the same base name replaces the first one, and the new image gets
// a new procedure name.
type Registry struct {
	opt     *Options
	counter int
	entries map[string]*entry
}

var _ shape.Resolver = (*Registry)(nil)

// NewRegistry returns an empty registry.
// If opt is nil, default options are used.
func NewRegistry(opt *Options) *Registry {
	if opt == nil {
		opt = defaultOptions
	}
	return &Registry{
		opt:     opt,
		entries: make(map[string]*entry),
	}
}

// Add reads an image file and adds it to the registry.
func (r *Registry) Add(path string) (shape.ImageInfo, error) {
	fd, err := os.Open(path)
	if err != nil {
		return shape.ImageInfo{}, err
	}
	defer fd.Close()

	img, _, err := image.Decode(fd)
	if err != nil {
		return shape.ImageInfo{}, fmt.Errorf("image %q: %w", path, err)
	}
	return r.AddImage(path, img), nil
}

// AddImage adds an in-memory image to the registry, under the base name of
// fileName.
func (r *Registry) AddImage(fileName string, img image.Image) shape.ImageInfo {
	key := filepath.Base(fileName)
	b := img.Bounds()

	r.counter++
	info := shape.ImageInfo{
		Procedure: "imager" + strconv.Itoa(r.counter),
		Width:     b.Dx(),
		Height:    b.Dy(),
	}
	r.entries[key] = &entry{
		info: info,
		img:  flatten(img, r.opt.MaxPixels),
	}

	psdoc.Logger().Debug("image added",
		"name", key,
		"procedure", info.Procedure,
		"width", info.Width,
		"height", info.Height)
	return info
}

// Lookup returns the registered image for the given file name.
// Only the base name of fileName is used.
// This implements the [shape.Resolver] interface.
func (r *Registry) Lookup(fileName string) (shape.ImageInfo, bool) {
	e, ok := r.entries[filepath.Base(fileName)]
	if !ok {
		return shape.ImageInfo{}, false
	}
	return e.info, true
}

// Len returns the number of images in the registry.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Procedures returns the procedures which draw the registered images,
// sorted by image name.
func (r *Registry) Procedures() []procset.Procedure {
	keys := maps.Keys(r.entries)
	slices.Sort(keys)

	res := make([]procset.Procedure, 0, len(keys))
	for _, key := range keys {
		e := r.entries[key]
		res = append(res, procset.Procedure{
			Name: e.info.Procedure,
			Body: body(e.img),
		})
	}
	return res
}

// flatten converts img to an opaque RGBA image, composited onto white.
// If the image has more than maxPixels pixels, it is downsampled.
func flatten(img image.Image, maxPixels int) *image.RGBA {
	sb := img.Bounds()
	w, h := sb.Dx(), sb.Dy()
	if maxPixels > 0 && w*h > maxPixels {
		f := math.Sqrt(float64(maxPixels) / float64(w*h))
		w = max(int(float64(w)*f), 1)
		h = max(int(float64(h)*f), 1)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(dst, dst.Bounds(), image.White, image.Point{}, xdraw.Src)
	if w == sb.Dx() && h == sb.Dy() {
		xdraw.Draw(dst, dst.Bounds(), img, sb.Min, xdraw.Over)
	} else {
		xdraw.BiLinear.Scale(dst, dst.Bounds(), img, sb, xdraw.Over, nil)
	}
	return dst
}

// samples returns the RGB samples of img, row by row from the top.
func samples(img *image.RGBA) []byte {
	b := img.Bounds()
	res := make([]byte, 0, b.Dx()*b.Dy()*3)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			res = append(res, row[4*x:4*x+3]...)
		}
	}
	return res
}

// body returns the PostScript code which draws img into the unit square.
func body(img *image.RGBA) string {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w == 0 || h == 0 {
		return "% empty image"
	}

	b := &strings.Builder{}
	b.WriteString("4 dict begin\n/data [\n")
	data := samples(img)
	for len(data) > 0 {
		n := min(len(data), chunkSize)
		b.WriteString(ascii85.String(data[:n]))
		b.WriteString("\n")
		data = data[n:]
	}
	b.WriteString("] def\n/i 0 def\n")
	fmt.Fprintf(b, "%d %d 8 [%d 0 0 %d 0 %d]\n", w, h, w, -h, h)
	b.WriteString("{ data i get /i i 1 add def }\n")
	b.WriteString("false 3 colorimage\nend")
	return b.String()
}
