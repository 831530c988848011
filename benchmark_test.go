package scope

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/scope/testcases"
)

var benchSizes = []int{100, 800, 2000}

// BenchmarkRender benchmarks a full render pass for a Lissajous circle.
func BenchmarkRender(b *testing.B) {
	block := testcases.Interleave(
		testcases.Sine(3, 0, 0.9, 1024),
		testcases.Sine(2, 0, 0.9, 1024),
	)

	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			c := NewCanvas(size, size)
			r := NewRenderer(c)
			cfg := DefaultConfig()

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.RenderBuffer(cfg, block)
			}
		})
	}
}

// BenchmarkAge benchmarks the afterglow filter on its own.
func BenchmarkAge(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			c := NewCanvas(size, size)
			fill(c, 0x00ff00)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				c.Age()
			}
		})
	}
}

// BenchmarkTrace benchmarks our Bresenham lines drawing a polyline
// through the flattened beam curve.
func BenchmarkTrace(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			c := NewCanvas(size, size)
			rs := Rasteriser{Canvas: c, Color: DefaultColor}
			pts := tracePoints(size)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				for i := 1; i < len(pts); i++ {
					rs.Line(int(pts[i-1].X), int(pts[i-1].Y), int(pts[i].X), int(pts[i].Y), 1)
				}
			}
		})
	}
}

// BenchmarkVectorTrace benchmarks x/image/vector drawing the same polyline
// as a chain of one pixel wide quadrilaterals.
func BenchmarkVectorTrace(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewRGBA(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.RGBA{G: 0x20, A: 0xff})
			pts := tracePoints(size)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)
				for i := 1; i < len(pts); i++ {
					addSegmentToVector(r, pts[i-1], pts[i])
				}
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// tracePoints flattens one revolution of a circle through the beam
// interpolator and returns the result in device coordinates.
func tracePoints(size int) []vec.Vec2 {
	const frames = 256
	ip := NewInterpolator(DefaultSteps)
	ctm := deviceMatrix(size, size)

	x := testcases.Sine(1, 0, 0.8, frames)
	y := testcases.Sine(1, math.Pi/2, 0.8, frames)
	circle := func(i int) vec.Vec2 {
		i = (i + frames) % frames
		return vec.Vec2{X: x[i], Y: y[i]}
	}

	var pts []vec.Vec2
	for i := range frames {
		w := Window{circle(i - 1), circle(i), circle(i + 1), circle(i + 2)}
		for seg := range ip.Segments(w) {
			if len(pts) == 0 {
				pts = append(pts, devicePoint(ctm, seg.From))
			}
			pts = append(pts, devicePoint(ctm, seg.To))
		}
	}
	return pts
}

// addSegmentToVector adds the segment from p to q, widened to one pixel,
// as a closed quadrilateral.
func addSegmentToVector(r *vector.Rasterizer, p, q vec.Vec2) {
	d := q.Sub(p)
	l := d.Length()
	if l == 0 {
		d = vec.Vec2{X: 1}
	} else {
		d = d.Mul(1 / l)
	}
	n := vec.Vec2{X: -d.Y / 2, Y: d.X / 2}

	a, bb, c, e := p.Add(n), q.Add(n), q.Sub(n), p.Sub(n)
	r.MoveTo(float32(a.X), float32(a.Y))
	r.LineTo(float32(bb.X), float32(bb.Y))
	r.LineTo(float32(c.X), float32(c.Y))
	r.LineTo(float32(e.X), float32(e.Y))
	r.ClosePath()
}
