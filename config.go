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

// Config holds the user-adjustable settings of a scope.
// The host owns the value; the renderer only reads it, once per frame.
//
// Config can be stored as JSON. The color is a string in any form
// accepted by [ParseColor], so that a color saved as a decimal integer
// such as "8192" reads back unchanged.
type Config struct {
	// Color is the trace color at full brightness.
	Color Color `json:"color"`

	// LeftHorizontal puts the first (left) channel on the horizontal axis
	// and the second (right) channel on the vertical axis. If false, the
	// axes are swapped.
	LeftHorizontal bool `json:"left_horizontal"`
}

// DefaultColor is the dim green of a classic phosphor screen.
const DefaultColor Color = 0x002000

// DefaultConfig returns the settings used when the host has none stored.
func DefaultConfig() Config {
	return Config{
		Color:          DefaultColor,
		LeftHorizontal: true,
	}
}

// Toggle returns a copy of cfg with the axis orientation flipped.
func (cfg Config) Toggle() Config {
	cfg.LeftHorizontal = !cfg.LeftHorizontal
	return cfg
}
