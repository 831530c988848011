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

	"golang.org/x/image/draw"
)

// Presenter receives finished frames.
//
// pix holds width*height packed 0xRRGGBB values in row-major order.
// The slice is only valid during the call; implementations that keep the
// frame must copy it.
type Presenter interface {
	Present(pix []uint32, width, height int) error
}

// PresenterFunc adapts an ordinary function to the Presenter interface.
type PresenterFunc func(pix []uint32, width, height int) error

// Present calls f(pix, width, height).
func (f PresenterFunc) Present(pix []uint32, width, height int) error {
	return f(pix, width, height)
}

// Frame is a dense packed-RGB image, as passed to a Presenter.
type Frame struct {
	Pix           []uint32
	Width, Height int
}

// At implements the [image.Image] interface.
func (f *Frame) At(x, y int) color.Color {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return Color(0)
	}
	return Color(f.Pix[y*f.Width+x])
}

// Bounds implements the [image.Image] interface.
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Width, f.Height)
}

// ColorModel implements the [image.Image] interface.
func (f *Frame) ColorModel() color.Model {
	return ColorModel
}

// ImagePresenter copies every frame into Dst, scaled to cover Dst's
// bounds.
type ImagePresenter struct {
	Dst draw.Image

	// Scaler is used when the frame and Dst differ in size.
	// If nil, nearest-neighbour scaling is used.
	Scaler draw.Scaler
}

// Present implements the [Presenter] interface.
func (p *ImagePresenter) Present(pix []uint32, width, height int) error {
	src := &Frame{Pix: pix, Width: width, Height: height}
	dr := p.Dst.Bounds()
	if dr.Dx() == width && dr.Dy() == height {
		draw.Copy(p.Dst, dr.Min, src, src.Bounds(), draw.Src, nil)
		return nil
	}

	scaler := p.Scaler
	if scaler == nil {
		scaler = draw.NearestNeighbor
	}
	scaler.Scale(p.Dst, dr, src, src.Bounds(), draw.Src, nil)
	return nil
}
