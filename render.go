// Package scope renders audio as a glowing oscilloscope trace.
//
// Every call to [Renderer.Render] consumes one block of interleaved
// floating-point samples. The first two channels are read as a point in
// the plane, consecutive points are joined by a smooth curve, and the
// curve is drawn additively onto a persistent [Canvas]. Before drawing,
// the canvas is blurred and darkened, so that older parts of the trace
// fade away like the afterglow of a phosphor screen.
//
// The core types ([Canvas], [Mapper], [Interpolator], [Rasteriser],
// [Renderer]) are single-threaded and perform no validation.
// [Scope] wraps them for use by a host application: it serialises
// resizes and render passes, checks the input and hands each finished
// frame to a [Presenter].
package scope

//go:generate go run ./testcases/export

import (
	"math"

	"github.com/go-audio/audio"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Renderer draws sample blocks onto a Canvas.
//
// A Renderer is not safe for concurrent use, and the canvas must not be
// resized while Render runs.
type Renderer struct {
	// Steps is the number of line segments per sample window.
	// Values below 1 are treated as 1.
	Steps int

	canvas *Canvas
	ip     *Interpolator
	raster Rasteriser
}

// NewRenderer returns a Renderer drawing onto c.
func NewRenderer(c *Canvas) *Renderer {
	return &Renderer{
		Steps:  DefaultSteps,
		canvas: c,
		raster: Rasteriser{Canvas: c},
	}
}

// Canvas returns the canvas the renderer draws onto.
func (r *Renderer) Canvas() *Canvas {
	return r.canvas
}

// Render ages the canvas once and then draws the trace for one block of
// interleaved samples. The block holds len(samples)/channels frames;
// one curve is drawn between every pair of consecutive frames.
//
// channels must be positive. Blocks with fewer than two frames only age
// the canvas. Non-finite samples are not checked for.
func (r *Renderer) Render(cfg Config, samples []float32, channels int) {
	r.canvas.Age()

	frames := len(samples) / channels
	if frames < 2 {
		return
	}

	if r.ip == nil || r.ip.Steps() != max(r.Steps, 1) {
		r.ip = NewInterpolator(r.Steps)
	}
	r.raster.Color = cfg.Color

	m := Mapper{Channels: channels, LeftHorizontal: cfg.LeftHorizontal}
	ctm := deviceMatrix(r.canvas.Width(), r.canvas.Height())
	clip := r.canvas.Clip()

	for i := range frames - 1 {
		var w Window
		w[1] = m.Point(samples, i)
		w[2] = m.Point(samples, i+1)
		if i > 0 {
			w[0] = m.Point(samples, i-1)
		} else {
			w[0] = w[1].Mul(2).Sub(w[2])
		}
		if i+2 < frames {
			w[3] = m.Point(samples, i+2)
		} else {
			w[3] = w[2].Mul(2).Sub(w[1])
		}

		for seg := range r.ip.Segments(w) {
			x0, y0 := toPixel(ctm, clip, seg.From)
			x1, y1 := toPixel(ctm, clip, seg.To)
			r.raster.Line(x0, y0, x1, y1, seg.Brightness)
		}
	}
}

// RenderBuffer is like Render, but takes the samples and channel count
// from a go-audio buffer.
func (r *Renderer) RenderBuffer(cfg Config, buf *audio.Float32Buffer) {
	r.Render(cfg, buf.Data, buf.Format.NumChannels)
}

// deviceMatrix maps the sample plane onto a width×height canvas:
// [-1, 1]² covers the canvas and the vertical axis is flipped, so that
// positive samples appear in the upper half.
func deviceMatrix(width, height int) matrix.Matrix {
	w := float64(width) / 2
	h := float64(height) / 2
	return matrix.Matrix{w, 0, 0, -h, w, h}
}

// toPixel transforms p to device space, rounds to the nearest pixel and
// clamps the result into the clip rectangle.
func toPixel(ctm matrix.Matrix, clip rect.Rect, p vec.Vec2) (x, y int) {
	d := devicePoint(ctm, p)
	x = clampInt(int(math.Round(d.X)), int(clip.LLx), int(clip.URx)-1)
	y = clampInt(int(math.Round(d.Y)), int(clip.LLy), int(clip.URy)-1)
	return x, y
}

// devicePoint applies ctm to p.
func devicePoint(ctm matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: ctm[0]*p.X + ctm[2]*p.Y + ctm[4],
		Y: ctm[1]*p.X + ctm[3]*p.Y + ctm[5],
	}
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
