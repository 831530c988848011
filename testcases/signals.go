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
	"math"

	"github.com/cwbudde/algo-vecmath"
	"github.com/go-audio/audio"
)

// SampleRate is recorded in the generated buffers. The renderer ignores it.
const SampleRate = 44100

// Sine returns n samples of a sine wave with the given number of cycles
// per n samples, starting phase in radians, and peak amplitude.
func Sine(cycles, phase, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	step := 2 * math.Pi * cycles / float64(n)
	for i := range out {
		out[i] = math.Sin(step*float64(i) + phase)
	}
	vecmath.ScaleBlockInPlace(out, amplitude)
	return out
}

// DC returns n copies of value.
func DC(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// Square returns n samples alternating between +amplitude and -amplitude,
// starting with +amplitude.
func Square(amplitude float64, n int) []float64 {
	out := DC(amplitude, n)
	for i := 1; i < n; i += 2 {
		out[i] = -amplitude
	}
	return out
}

// Peak returns the largest absolute sample value over all channels.
func Peak(channels ...[]float64) float64 {
	var peak float64
	for _, ch := range channels {
		peak = max(peak, vecmath.MaxAbs(ch))
	}
	return peak
}

// Normalize scales all channels by the same factor, so that the largest
// absolute sample becomes 1. Silent input is left unchanged.
func Normalize(channels ...[]float64) {
	peak := Peak(channels...)
	if peak == 0 {
		return
	}
	for _, ch := range channels {
		vecmath.ScaleBlockInPlace(ch, 1/peak)
	}
}

// Interleave combines per-channel signals into one float32 buffer.
// All channels must have the same length.
func Interleave(channels ...[]float64) *audio.Float32Buffer {
	nch := len(channels)
	n := len(channels[0])
	data := make([]float32, n*nch)
	for ch, samples := range channels {
		if len(samples) != n {
			panic("testcases: channels differ in length")
		}
		for i, v := range samples {
			data[i*nch+ch] = float32(v)
		}
	}
	return &audio.Float32Buffer{
		Format: &audio.Format{
			NumChannels: nch,
			SampleRate:  SampleRate,
		},
		Data:           data,
		SourceBitDepth: 32,
	}
}
