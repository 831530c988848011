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
	"math"
	"sync"
	"sync/atomic"

	"github.com/go-audio/audio"
)

var (
	// ErrChannels is returned for sample blocks with no channels.
	ErrChannels = errors.New("channel count must be positive")

	// ErrShortBlock is returned for sample blocks with fewer than two
	// frames.
	ErrShortBlock = errors.New("sample block needs at least two frames")

	// ErrNonFinite is returned for sample blocks containing NaN or
	// infinite values.
	ErrNonFinite = errors.New("non-finite sample")
)

// Scope connects a renderer to a host application.
//
// All methods are safe for concurrent use. Resize, Clear and Render are
// serialised by a single lock, so that a resize never happens in the middle
// of a render pass. The configuration may be changed at any time; every
// render pass uses the value which was current when it started.
type Scope struct {
	mu        sync.Mutex
	canvas    *Canvas
	renderer  *Renderer
	presenter Presenter
	frame     []uint32

	cfg atomic.Pointer[Config]
}

// New returns a Scope with a width×height canvas and the default
// configuration. Every finished frame is passed to p; p may be nil.
func New(width, height int, p Presenter) *Scope {
	c := NewCanvas(width, height)
	s := &Scope{
		canvas:    c,
		renderer:  NewRenderer(c),
		presenter: p,
	}
	cfg := DefaultConfig()
	s.cfg.Store(&cfg)
	return s
}

// Config returns the current configuration.
func (s *Scope) Config() Config {
	return *s.cfg.Load()
}

// SetConfig replaces the configuration. The change takes effect with the
// next render pass.
func (s *Scope) SetConfig(cfg Config) {
	s.cfg.Store(&cfg)
}

// ToggleOrientation swaps the roles of the left and right channel.
func (s *Scope) ToggleOrientation() {
	for {
		old := s.cfg.Load()
		cfg := old.Toggle()
		if s.cfg.CompareAndSwap(old, &cfg) {
			return
		}
	}
}

// Size returns the current canvas dimensions.
func (s *Scope) Size() (width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canvas.Width(), s.canvas.Height()
}

// Resize changes the canvas size. The canvas is blank afterwards.
// Non-positive dimensions are raised to 1.
func (s *Scope) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.canvas.Resize(width, height)
}

// Clear blanks the canvas and presents the empty frame immediately.
func (s *Scope) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.canvas.Clear()
	return s.present()
}

// Render draws one block of interleaved samples and presents the result.
//
// Blocks are rejected, without touching the canvas, if channels is not
// positive, if the block has fewer than two frames, or if any of the
// samples used for drawing is NaN or infinite.
func (s *Scope) Render(samples []float32, channels int) error {
	if err := checkBlock(samples, channels); err != nil {
		Logger().Debug("sample block rejected", "error", err)
		return err
	}

	cfg := s.Config()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.renderer.Render(cfg, samples, channels)
	return s.present()
}

// RenderBuffer is like Render, but takes the samples and channel count
// from a go-audio buffer.
func (s *Scope) RenderBuffer(buf *audio.Float32Buffer) error {
	if buf == nil || buf.Format == nil {
		return fmt.Errorf("%w: buffer has no format", ErrChannels)
	}
	return s.Render(buf.Data, buf.Format.NumChannels)
}

// present must be called with s.mu held.
func (s *Scope) present() error {
	if s.presenter == nil {
		return nil
	}

	w, h := s.canvas.Width(), s.canvas.Height()
	if cap(s.frame) < w*h {
		s.frame = make([]uint32, w*h)
	}
	s.frame = s.frame[:w*h]
	s.canvas.CopyTo(s.frame)

	if err := s.presenter.Present(s.frame, w, h); err != nil {
		Logger().Warn("presenting frame failed", "error", err)
		return fmt.Errorf("present %dx%d frame: %w", w, h, err)
	}
	return nil
}

// checkBlock validates a sample block before it reaches the renderer.
func checkBlock(samples []float32, channels int) error {
	if channels <= 0 {
		return fmt.Errorf("%w: got %d", ErrChannels, channels)
	}
	frames := len(samples) / channels
	if frames < 2 {
		return fmt.Errorf("%w: got %d", ErrShortBlock, frames)
	}

	used := min(channels, 2)
	for i := range frames {
		for ch := range used {
			v := float64(samples[i*channels+ch])
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w at frame %d, channel %d", ErrNonFinite, i, ch)
			}
		}
	}
	return nil
}
