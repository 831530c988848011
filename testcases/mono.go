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

var monoCases = []TestCase{
	{
		// Mono input draws a flat line at the fixed vertical level 0.5.
		Name:           "sine",
		Block:          Interleave(Sine(2, 0, 0.8, blockFrames)),
		Width:          100,
		Height:         100,
		Color:          defaultColor,
		LeftHorizontal: true,
		Lit:            []image.Point{pt(50, 25), pt(11, 25), pt(89, 25)},
		Dark:           []image.Point{pt(50, 50), pt(50, 75), pt(50, 24), pt(50, 26)},
	},
}
