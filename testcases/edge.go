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

import "image"

var edgeCases = []TestCase{
	{
		// Channels beyond the second one are ignored.
		Name:           "four_channels",
		Block:          Interleave(DC(0.2, blockFrames), DC(0.2, blockFrames), DC(7, blockFrames), DC(-9, blockFrames)),
		Width:          100,
		Height:         100,
		Color:          defaultColor,
		LeftHorizontal: true,
		Lit:            []image.Point{pt(60, 40)},
		Dark:           []image.Point{pt(50, 50), pt(99, 0)},
	},
	{
		// Out-of-range samples are clamped to the canvas border.
		Name:           "clipped",
		Block:          Interleave(DC(1.5, blockFrames), DC(1.5, blockFrames)),
		Width:          100,
		Height:         100,
		Color:          defaultColor,
		LeftHorizontal: true,
		Lit:            []image.Point{pt(99, 0)},
		Dark:           []image.Point{pt(50, 50), pt(0, 99)},
	},
	{
		// The shortest usable block: both outer control points are
		// extrapolated.
		Name:           "two_frames",
		Block:          Interleave([]float64{-0.04, 0.04}, []float64{0, 0}),
		Width:          100,
		Height:         100,
		Color:          defaultColor,
		LeftHorizontal: true,
		Lit:            []image.Point{pt(48, 50), pt(50, 50), pt(52, 50)},
		Dark:           []image.Point{pt(47, 50), pt(53, 50), pt(50, 49)},
	},
}
