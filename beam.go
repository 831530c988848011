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
	"iter"

	"gonum.org/v1/gonum/mat"
	"seehuhn.de/go/geom/vec"
)

// DefaultSteps is the number of line segments drawn per sample window.
const DefaultSteps = 8

// beamBasis maps the power vector [1 t t² t³] to the weights of the four
// control points. The curve passes through P1 at t=0 and through P2 at
// t=1; P0 and P3 only shape the tangents.
var beamBasis = func() *mat.Dense {
	b := mat.NewDense(4, 4, []float64{
		0, 2, 0, 0,
		-1, 0, 1, 0,
		2, -5, 4, -1,
		-1, 3, -3, 1,
	})
	b.Scale(0.5, b)
	return b
}()

// Window holds four consecutive sample points. The curve is drawn between
// the two inner points.
type Window [4]vec.Vec2

// Segment is one straight piece of the interpolated beam path.
type Segment struct {
	From, To vec.Vec2

	// Brightness is 1 for a stationary beam and falls linearly to 0 when
	// the segment is 1/steps long in sample-plane units.
	Brightness float64
}

// Interpolator subdivides sample windows into short line segments.
//
// An Interpolator is not safe for concurrent use.
type Interpolator struct {
	steps   int
	weights *mat.Dense // (steps+1)×4, row k holds the basis weights for t=k/steps
	ctrl    *mat.Dense // 4×2 control points relative to origin, backed by ctrlBuf
	ctrlBuf []float64
	origin  vec.Vec2  // w[1] of the loaded window
	pts     mat.Dense // (steps+1)×2 evaluated points
}

// NewInterpolator returns an Interpolator which splits every window into
// the given number of segments. Values below 1 are raised to 1.
func NewInterpolator(steps int) *Interpolator {
	steps = max(steps, 1)

	pow := mat.NewDense(steps+1, 4, nil)
	for k := range steps + 1 {
		t := float64(k) / float64(steps)
		pow.SetRow(k, []float64{1, t, t * t, t * t * t})
	}
	weights := &mat.Dense{}
	weights.Mul(pow, beamBasis)

	buf := make([]float64, 8)
	return &Interpolator{
		steps:   steps,
		weights: weights,
		ctrl:    mat.NewDense(4, 2, buf),
		ctrlBuf: buf,
	}
}

// Steps returns the number of segments per window.
func (ip *Interpolator) Steps() int {
	return ip.steps
}

// load stores the window relative to w[1]. The basis weights do not sum
// to exactly 1 in floating point; working with offsets keeps a stationary
// beam exactly stationary.
func (ip *Interpolator) load(w *Window) {
	ip.origin = w[1]
	for i, p := range w {
		d := p.Sub(ip.origin)
		ip.ctrlBuf[2*i] = d.X
		ip.ctrlBuf[2*i+1] = d.Y
	}
}

// Segments returns the path between w[1] and w[2] as a sequence of
// Steps() segments. All points are evaluated when Segments is called;
// the returned sequence reads them from internal storage and is only
// valid until the next call to Segments.
func (ip *Interpolator) Segments(w Window) iter.Seq[Segment] {
	ip.load(&w)
	ip.pts.Mul(ip.weights, ip.ctrl)

	return func(yield func(Segment) bool) {
		prev := ip.point(0)
		for k := 1; k <= ip.steps; k++ {
			cur := ip.point(k)
			seg := Segment{
				From:       prev,
				To:         cur,
				Brightness: beamBrightness(cur.Sub(prev).Length(), ip.steps),
			}
			if !yield(seg) {
				return
			}
			prev = cur
		}
	}
}

func (ip *Interpolator) point(k int) vec.Vec2 {
	row := ip.pts.RawRowView(k)
	return vec.Vec2{X: ip.origin.X + row[0], Y: ip.origin.Y + row[1]}
}

// Eval returns the curve position for parameter t in [0, 1].
func (ip *Interpolator) Eval(w Window, t float64) vec.Vec2 {
	origin := w[1]
	ctrl := mat.NewDense(4, 2, nil)
	for i, p := range w {
		d := p.Sub(origin)
		ctrl.SetRow(i, []float64{d.X, d.Y})
	}

	pow := mat.NewDense(1, 4, []float64{1, t, t * t, t * t * t})
	var weights, out mat.Dense
	weights.Mul(pow, beamBasis)
	out.Mul(&weights, ctrl)
	return vec.Vec2{X: origin.X + out.At(0, 0), Y: origin.Y + out.At(0, 1)}
}

// beamBrightness maps a segment length to a brightness in [0, 1]:
// length 0 gives 1, length 1/steps or more gives 0. A fast beam leaves
// a dim trace.
func beamBrightness(dist float64, steps int) float64 {
	b := 1 - dist*float64(steps)
	return min(max(b, 0), 1)
}
