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

import "seehuhn.de/go/geom/vec"

// MonoLevel is the vertical coordinate used for single-channel input.
// Mono audio has no second axis, so the trace degenerates into a flat
// line which only moves horizontally.
const MonoLevel = 0.5

// Mapper turns one frame of an interleaved sample block into a point in
// the sample plane. X is the horizontal axis, Y points up.
type Mapper struct {
	// Channels is the number of interleaved channels. Must be positive;
	// this is not checked.
	Channels int

	// LeftHorizontal selects which of the first two channels drives the
	// horizontal axis. If true, channel 0 is X and channel 1 is Y.
	LeftHorizontal bool
}

// Point returns the sample-plane position of the given frame.
// Only the first two channels are used.
func (m Mapper) Point(samples []float32, frame int) vec.Vec2 {
	if m.Channels == 1 {
		return vec.Vec2{X: float64(samples[frame]), Y: MonoLevel}
	}

	left := float64(samples[m.Channels*frame])
	right := float64(samples[m.Channels*frame+1])
	if m.LeftHorizontal {
		return vec.Vec2{X: left, Y: right}
	}
	return vec.Vec2{X: right, Y: left}
}
