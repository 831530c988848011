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

// Rasteriser draws additive one-pixel lines onto a Canvas.
type Rasteriser struct {
	Canvas *Canvas

	// Color is added to every pixel on the line, scaled by the brightness
	// passed to Line.
	Color Color
}

// Line draws the 8-connected Bresenham line from (x0, y0) to (x1, y1),
// both endpoints included. Every pixel on the path is blended exactly
// once. If both endpoints coincide, a single pixel is drawn.
//
// All coordinates must lie inside the canvas.
func (r *Rasteriser) Line(x0, y0, x1, y1 int, brightness float64) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	x, y := x0, y0
	for {
		r.Canvas.Draw(x, y, r.Color, brightness)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
