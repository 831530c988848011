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

package testcases

import (
	"image"
	"math"

	"github.com/go-audio/audio"
)

var stereoCases = []TestCase{
	{
		Name:           "circle",
		Block:          Interleave(Sine(1, math.Pi/2, 0.5, blockFrames), Sine(1, 0, 0.5, blockFrames)),
		Width:          100,
		Height:         100,
		Color:          defaultColor,
		LeftHorizontal: true,
		Lit:            []image.Point{pt(75, 50), pt(50, 25), pt(25, 50), pt(50, 75)},
		Dark:           []image.Point{pt(50, 50), pt(0, 0), pt(99, 99), pt(75, 75)},
	},
	{
		// A circle scaled to full scale touches the middle of every edge.
		Name:           "full_scale_circle",
		Block:          fullScaleCircle(),
		Width:          100,
		Height:         100,
		Color:          defaultColor,
		LeftHorizontal: true,
		Lit:            []image.Point{pt(99, 50), pt(50, 0), pt(0, 50), pt(50, 99)},
		Dark:           []image.Point{pt(50, 50), pt(0, 0), pt(99, 0), pt(0, 99), pt(99, 99)},
	},
	{
		Name:           "silence",
		Block:          Interleave(DC(0, blockFrames), DC(0, blockFrames)),
		Width:          100,
		Height:         100,
		Color:          defaultColor,
		LeftHorizontal: true,
		Lit:            []image.Point{pt(50, 50)},
		Dark:           []image.Point{pt(49, 50), pt(0, 0), pt(99, 0)},
	},
	{
		// The beam jumps between (1,-1) and (-1,1) on every frame. It only
		// slows down enough to leave a trace close to the two ends.
		Name:           "alternating_diagonal",
		Block:          Interleave(Square(1, blockFrames), Square(-1, blockFrames)),
		Width:          100,
		Height:         100,
		Color:          defaultColor,
		LeftHorizontal: true,
		Lit:            []image.Point{pt(1, 1), pt(98, 98)},
		Dark:           []image.Point{pt(99, 0), pt(0, 99), pt(50, 50)},
	},
	{
		Name:           "dc_left_horizontal",
		Block:          Interleave(DC(0.5, blockFrames), DC(-0.5, blockFrames)),
		Width:          100,
		Height:         100,
		Color:          defaultColor,
		LeftHorizontal: true,
		Lit:            []image.Point{pt(75, 75)},
		Dark:           []image.Point{pt(25, 25), pt(50, 50)},
	},
	{
		Name:           "dc_right_horizontal",
		Block:          Interleave(DC(0.5, blockFrames), DC(-0.5, blockFrames)),
		Width:          100,
		Height:         100,
		Color:          defaultColor,
		LeftHorizontal: false,
		Lit:            []image.Point{pt(25, 25)},
		Dark:           []image.Point{pt(75, 75), pt(50, 50)},
	},
}

func fullScaleCircle() *audio.Float32Buffer {
	x := Sine(1, math.Pi/2, 0.3, blockFrames)
	y := Sine(1, 0, 0.3, blockFrames)
	Normalize(x, y)
	return Interleave(x, y)
}
