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

// Package testcases provides reproducible sample blocks for testing and
// benchmarking the scope renderer.
package testcases

import (
	"image"

	"github.com/go-audio/audio"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name           string               // lowercase a-z, 0-9 and _ only
	Block          *audio.Float32Buffer // interleaved samples
	Width          int                  // canvas width in pixels
	Height         int                  // canvas height in pixels
	Color          uint32               // packed 0xRRGGBB trace color
	LeftHorizontal bool                 // channel 0 drives the horizontal axis
	Lit            []image.Point        // pixels which must not be black after one pass
	Dark           []image.Point        // pixels which must stay black after one pass
}

// defaultColor matches the renderer's default trace color.
const defaultColor = 0x002000

// blockFrames is the block size used by most test cases.
const blockFrames = 512

func pt(x, y int) image.Point {
	return image.Point{X: x, Y: y}
}
