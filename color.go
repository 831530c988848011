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
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a packed 24-bit RGB value, 0xRRGGBB.
// The top byte is always zero.
type Color uint32

// RGB packs three 8-bit channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// RGBA implements the [color.Color] interface.
// Canvas pixels are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R())
	r |= r << 8
	g = uint32(c.G())
	g |= g << 8
	b = uint32(c.B())
	b |= b << 8
	return r, g, b, 0xffff
}

// String returns the color in #rrggbb notation.
func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xffffff)
}

// ColorModel converts arbitrary colors to [Color].
// Alpha is discarded after un-premultiplying.
var ColorModel = color.ModelFunc(func(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB(nc.R, nc.G, nc.B)
})

// MarshalText implements the [encoding.TextMarshaler] interface.
// Colors are written as "#rrggbb".
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// All forms accepted by [ParseColor] are understood.
func (c *Color) UnmarshalText(text []byte) error {
	v, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

var errColorSyntax = errors.New("invalid color")

// ParseColor reads a color in one of the forms "#rrggbb", "0xrrggbb" or
// a decimal integer such as "8192".
// The decimal form is how hosts usually persist the trace color.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)

	var v uint64
	var err error
	switch {
	case strings.HasPrefix(s, "#"):
		v, err = strconv.ParseUint(s[1:], 16, 32)
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		v, err = strconv.ParseUint(s[2:], 16, 32)
	default:
		v, err = strconv.ParseUint(s, 10, 32)
	}
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", errColorSyntax, s, err)
	}
	if v > 0xffffff {
		return 0, fmt.Errorf("%w %q: more than 24 bits", errColorSyntax, s)
	}
	return Color(v), nil
}
