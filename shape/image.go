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

package shape

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/psdoc"
	"seehuhn.de/go/psdoc/color"
	"seehuhn.de/go/psdoc/content"
	"seehuhn.de/go/psdoc/internal/float"
	"seehuhn.de/go/psdoc/transform"
)

// ImageInfo describes an image which has been registered with a document.
type ImageInfo struct {
	// Procedure is the name of the procedure which draws the image into
	// the unit square.
	Procedure string

	// Width and Height give the native size of the image in pixels.
	Width, Height int
}

// Resolver maps image file names to registered images.
//
// This is implemented by [seehuhn.de/go/psdoc/images.Registry].
type Resolver interface {
	Lookup(fileName string) (ImageInfo, bool)
}

// Image places a registered image into a target box.
type Image struct {
	x, y, width, height float64

	source   string
	resolver Resolver
	fit      ImageFit

	stroke stroke

	origin transform.Origin
	tf     transform.Spec
}

// NewImage returns an image shape which draws the image source into the
// box with lower left corner (x, y).  Negative values are replaced by 0.
// The image is looked up using res when the shape is serialized.
func NewImage(res Resolver, source string, x, y, width, height float64) *Image {
	return &Image{
		x:        float.NonNegative(x),
		y:        float.NonNegative(y),
		width:    float.NonNegative(width),
		height:   float.NonNegative(height),
		source:   source,
		resolver: res,
	}
}

// Geometry returns the position and size of the target box.
func (im *Image) Geometry() (x, y, width, height float64) {
	return im.x, im.y, im.width, im.height
}

// Source returns the file name of the image.
func (im *Image) Source() string {
	return im.source
}

// SetFit sets the policy for mapping the image into the target box.
func (im *Image) SetFit(f ImageFit) {
	im.fit = f
}

// Fit returns the policy for mapping the image into the target box.
func (im *Image) Fit() ImageFit {
	return im.fit
}

// SetStroke sets the width and color of a frame drawn around the target
// box.  A width of 0 disables the frame.
func (im *Image) SetStroke(width float64, c color.Color) {
	im.stroke.set(width, c)
}

// Stroke returns the width and color of the frame.
func (im *Image) Stroke() (float64, color.Color) {
	return im.stroke.width, im.stroke.color
}

// SetOrigin sets the anchor point for rotation and scaling.
func (im *Image) SetOrigin(o transform.Origin) {
	im.origin = o
}

// Origin returns the anchor point for rotation and scaling.
func (im *Image) Origin() transform.Origin {
	return im.origin
}

// Rotate rotates the image counter-clockwise around its anchor point.
// The angle is given in degrees and is clamped to [-360, 360].
func (im *Image) Rotate(deg float64) {
	im.tf.Rotate(deg)
}

// Scale scales the image around its anchor point.
func (im *Image) Scale(sx, sy float64) {
	im.tf.Scale(sx, sy)
}

// Transform returns the rotation and scaling of the image.
func (im *Image) Transform() transform.Spec {
	return im.tf
}

func (im *Image) lookup() (ImageInfo, bool) {
	if im.resolver == nil {
		return ImageInfo{}, false
	}
	return im.resolver.Lookup(im.source)
}

// Content returns the PostScript operators which draw the image.
//
// If the image source is not known to the resolver, a comment is emitted
// in place of the image.
func (im *Image) Content() content.Stream {
	b := content.NewBuilder()
	anchor := transform.RectAnchor(im.origin, im.x, im.y, im.width, im.height)

	im.tf.Prologue(b, anchor)

	info, ok := im.lookup()
	if !ok {
		psdoc.Logger().Warn("image source not found", "source", im.source)
		b.Comment("image not found: " + im.source)
	} else {
		target := rect.Rect{LLx: im.x, LLy: im.y, URx: im.x + im.width, URy: im.y + im.height}
		dst, clip := im.fit.Place(target, float64(info.Width), float64(info.Height))
		if dw, dh := dst.URx-dst.LLx, dst.URy-dst.LLy; dw > 0 && dh > 0 {
			b.PushGraphicsState()
			if clip {
				rectPath(b, im.x, im.y, im.width, im.height)
				b.Emit(content.OpClip)
				b.Emit(content.OpNewPath)
			}
			b.Translate(dst.LLx, dst.LLy)
			b.Scale(dw, dh)
			b.Emit(content.OpName(info.Procedure))
			b.PopGraphicsState()
		}
	}

	if im.stroke.width > 0 {
		rectPath(b, im.x, im.y, im.width, im.height)
		im.stroke.emit(b)
	}
	im.tf.Epilogue(b)

	return b.Stream
}

// Serialize returns the PostScript code which draws the image.
func (im *Image) Serialize() string {
	return im.Content().String()
}

// Bounds returns the bounding box of the target box on the page, including
// the frame and the effect of rotation and scaling.
func (im *Image) Bounds() rect.Rect {
	anchor := transform.RectAnchor(im.origin, im.x, im.y, im.width, im.height)
	d := im.stroke.width / 2
	return box(im.tf.Matrix(anchor), im.x-d, im.y-d, im.x+im.width+d, im.y+im.height+d)
}
