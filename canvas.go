// seehuhn.de/go/scope - a phosphor oscilloscope renderer
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

package scope

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/rect"
)

const (
	// ageSelfWeight and ageDivisor define the aging filter. The divisor
	// exceeds the sum of all weights (5+4), so every pass darkens the canvas.
	ageSelfWeight = 5
	ageDivisor    = 30
)

// Canvas is a persistent packed-RGB pixel buffer.
//
// The pixels are stored in an arena of (W+2)×(H+2) cells: the logical
// canvas is surrounded by a one-cell halo which is always zero, so that
// the aging filter can read all four neighbours of every pixel without
// bounds checks.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	width, height int
	stride        int      // width + 2
	pix           []uint32 // current pixels, including the halo
	back          []uint32 // aging target, swapped with pix after each pass
}

// NewCanvas allocates a zeroed canvas of the given size.
// Non-positive dimensions are raised to 1.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Resize reallocates the canvas for the new dimensions. All pixels are
// zero afterwards; no content survives a resize.
// Non-positive dimensions are raised to 1.
func (c *Canvas) Resize(width, height int) {
	if width < 1 || height < 1 {
		Logger().Warn("canvas size clamped",
			"width", width, "height", height)
		width = max(width, 1)
		height = max(height, 1)
	}

	n := (width + 2) * (height + 2)
	c.width = width
	c.height = height
	c.stride = width + 2
	c.pix = make([]uint32, n)
	c.back = make([]uint32, n)

	Logger().Debug("canvas resized", "width", width, "height", height)
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Clip returns the drawable area in device coordinates.
func (c *Canvas) Clip() rect.Rect {
	return rect.Rect{
		LLx: 0,
		LLy: 0,
		URx: float64(c.width),
		URy: float64(c.height),
	}
}

// offset returns the arena index of pixel (x, y).
func (c *Canvas) offset(x, y int) int {
	return (y+1)*c.stride + x + 1
}

// Clear sets all pixels to zero without changing the dimensions.
func (c *Canvas) Clear() {
	clear(c.pix)
}

// Age applies one pass of the persistence filter. Each channel of every
// pixel is replaced by
//
//	(5*self + up + down + left + right) / 30
//
// using integer division. All inputs are taken from the buffer as it was
// before the pass. Since the weights add up to 9 but the divisor is 30,
// the canvas fades towards black even when nothing new is drawn; this is
// the only decay mechanism.
func (c *Canvas) Age() {
	src, dst := c.pix, c.back
	stride := c.stride
	for y := range c.height {
		row := (y+1)*stride + 1
		for i := row; i < row+c.width; i++ {
			p := src[i]
			up := src[i-stride]
			down := src[i+stride]
			left := src[i-1]
			right := src[i+1]

			r := (ageSelfWeight*(p>>16&0xff) +
				up>>16&0xff + down>>16&0xff + left>>16&0xff + right>>16&0xff) / ageDivisor
			g := (ageSelfWeight*(p>>8&0xff) +
				up>>8&0xff + down>>8&0xff + left>>8&0xff + right>>8&0xff) / ageDivisor
			b := (ageSelfWeight*(p&0xff) +
				up&0xff + down&0xff + left&0xff + right&0xff) / ageDivisor
			dst[i] = r<<16 | g<<8 | b
		}
	}
	c.pix, c.back = dst, src
}

// Draw adds brightness times the color c to pixel (x, y).
// Each channel saturates at 255; fractional results are truncated.
// Brightness must be in [0, 1].
//
// The coordinates must satisfy 0 <= x < Width() and 0 <= y < Height();
// they are not checked.
func (c *Canvas) Draw(x, y int, col Color, brightness float64) {
	i := c.offset(x, y)
	p := Color(c.pix[i])
	r := addChannel(p.R(), col.R(), brightness)
	g := addChannel(p.G(), col.G(), brightness)
	b := addChannel(p.B(), col.B(), brightness)
	c.pix[i] = uint32(RGB(r, g, b))
}

// addChannel returns the saturating sum old + add*brightness.
func addChannel(old, add uint8, brightness float64) uint8 {
	v := float64(old) + float64(add)*brightness
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// Pixel returns the color of pixel (x, y).
// Coordinates outside the canvas return zero.
func (c *Canvas) Pixel(x, y int) Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return 0
	}
	return Color(c.pix[c.offset(x, y)])
}

// CopyTo copies the canvas into dst as a dense row-major buffer of
// Width()*Height() packed colors, ready for presentation.
// It panics if dst is too short.
func (c *Canvas) CopyTo(dst []uint32) {
	w := c.width
	_ = dst[w*c.height-1]
	for y := range c.height {
		row := c.offset(0, y)
		copy(dst[y*w:(y+1)*w], c.pix[row:row+w])
	}
}

// At implements the [image.Image] interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.Pixel(x, y)
}

// Bounds implements the [image.Image] interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the [image.Image] interface.
func (c *Canvas) ColorModel() color.Model {
	return ColorModel
}
