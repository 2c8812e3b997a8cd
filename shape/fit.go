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
	"errors"
	"fmt"

	"seehuhn.de/go/geom/rect"
)

// ImageFit describes how an image is mapped into its target box.
// One pixel of the image corresponds to one PostScript unit wherever the
// native size is used.
type ImageFit int

// These are the supported fit policies.
const (
	// Contain scales the image uniformly, so that it fits into the box,
	// and centers it.
	Contain ImageFit = iota

	// Stretch scales the image to fill the box exactly.
	Stretch

	// StretchHorizontal stretches the image to the width of the box
	// and keeps the native height.  The image is centered vertically
	// and clipped to the box.
	StretchHorizontal

	// StretchVertical stretches the image to the height of the box
	// and keeps the native width.  The image is centered horizontally
	// and clipped to the box.
	StretchVertical

	// Crop draws the image at its native size, starting at the top left
	// corner of the box, and clips it to the box.
	Crop
)

var fitNames = []string{
	Contain:           "contain",
	Stretch:           "stretch",
	StretchHorizontal: "stretch-horizontal",
	StretchVertical:   "stretch-vertical",
	Crop:              "crop",
}

func (f ImageFit) String() string {
	if f >= 0 && int(f) < len(fitNames) {
		return fitNames[f]
	}
	return fmt.Sprintf("ImageFit(%d)", int(f))
}

// ErrUnknownFit is returned by [ParseImageFit] for unrecognized names.
var ErrUnknownFit = errors.New("unknown image fit")

// ParseImageFit converts the output of [ImageFit.String] back to an
// ImageFit value.
func ParseImageFit(s string) (ImageFit, error) {
	for i, name := range fitNames {
		if name == s {
			return ImageFit(i), nil
		}
	}
	return Contain, fmt.Errorf("%w %q", ErrUnknownFit, s)
}

// Place computes where an image with the given native size is drawn,
// when it is fitted into the target box.  The second return value
// indicates whether the image needs to be clipped to the box.
func (f ImageFit) Place(box rect.Rect, srcWidth, srcHeight float64) (rect.Rect, bool) {
	w := box.URx - box.LLx
	h := box.URy - box.LLy

	var x, y, dw, dh float64
	clip := true
	switch f {
	case Stretch:
		x, y, dw, dh = box.LLx, box.LLy, w, h
		clip = false
	case StretchHorizontal:
		dw, dh = w, srcHeight
		x, y = box.LLx, box.LLy+(h-dh)/2
	case StretchVertical:
		dw, dh = srcWidth, h
		x, y = box.LLx+(w-dw)/2, box.LLy
	case Crop:
		dw, dh = srcWidth, srcHeight
		x, y = box.LLx, box.URy-dh
	default: // Contain
		s := 0.0
		if srcWidth > 0 && srcHeight > 0 {
			s = min(w/srcWidth, h/srcHeight)
		}
		dw, dh = srcWidth*s, srcHeight*s
		x, y = box.LLx+(w-dw)/2, box.LLy+(h-dh)/2
		clip = false
	}
	return rect.Rect{LLx: x, LLy: y, URx: x + dw, URy: y + dh}, clip
}
