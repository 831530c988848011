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
	"math"
	"slices"
	"sync"
	"testing"

	"github.com/go-audio/audio"
	"seehuhn.de/go/scope/testcases"
)

// recorder is a Presenter which keeps a copy of the last frame.
type recorder struct {
	calls         int
	pix           []uint32
	width, height int
}

func (r *recorder) Present(pix []uint32, width, height int) error {
	r.calls++
	r.pix = slices.Clone(pix)
	r.width, r.height = width, height
	return nil
}

func TestScopePresents(t *testing.T) {
	rec := &recorder{}
	s := New(64, 48, rec)

	tc := testcases.All["stereo"][0]
	if err := s.RenderBuffer(tc.Block); err != nil {
		t.Fatal(err)
	}
	if rec.calls != 1 {
		t.Fatalf("presenter called %d times, want 1", rec.calls)
	}
	if rec.width != 64 || rec.height != 48 || len(rec.pix) != 64*48 {
		t.Fatalf("frame %dx%d with %d pixels", rec.width, rec.height, len(rec.pix))
	}
	lit := 0
	for _, v := range rec.pix {
		if v != 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Error("presented frame is black")
	}

	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	if rec.calls != 2 {
		t.Errorf("Clear did not present")
	}
	for i, v := range rec.pix {
		if v != 0 {
			t.Fatalf("pixel %d = %06x after Clear", i, v)
		}
	}
}

func TestScopeRejects(t *testing.T) {
	rec := &recorder{}
	s := New(10, 10, rec)

	cases := []struct {
		name     string
		samples  []float32
		channels int
		want     error
	}{
		{"no_channels", []float32{0, 0, 0, 0}, 0, ErrChannels},
		{"negative_channels", []float32{0, 0, 0, 0}, -2, ErrChannels},
		{"empty", nil, 2, ErrShortBlock},
		{"one_frame", []float32{0.1, 0.2, 0.3}, 2, ErrShortBlock},
		{"nan", []float32{0, 0, float32(math.NaN()), 0}, 2, ErrNonFinite},
		{"inf", []float32{0, float32(math.Inf(-1)), 0, 0}, 2, ErrNonFinite},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := s.Render(tc.samples, tc.channels)
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
	if rec.calls != 0 {
		t.Errorf("presenter called %d times for rejected blocks", rec.calls)
	}

	// NaN in an ignored channel is harmless.
	if err := s.Render([]float32{0, 0, float32(math.NaN()), 0, 0, 0}, 3); err != nil {
		t.Errorf("NaN in third channel: %v", err)
	}

	if err := s.RenderBuffer(&audio.Float32Buffer{Data: []float32{0, 0}}); !errors.Is(err, ErrChannels) {
		t.Errorf("buffer without format: got %v", err)
	}
}

func TestScopePresenterError(t *testing.T) {
	errBroken := errors.New("surface gone")
	s := New(8, 8, PresenterFunc(func([]uint32, int, int) error {
		return errBroken
	}))
	err := s.Render([]float32{0, 0, 0.1, 0.1}, 2)
	if !errors.Is(err, errBroken) {
		t.Errorf("got %v, want %v", err, errBroken)
	}
}

func TestScopeConfig(t *testing.T) {
	rec := &recorder{}
	s := New(100, 100, rec)
	if s.Config() != DefaultConfig() {
		t.Fatalf("initial config %+v", s.Config())
	}

	// left = 0.5, right = -0.5 for every frame
	samples := make([]float32, 2*32)
	for i := 0; i < len(samples); i += 2 {
		samples[i], samples[i+1] = 0.5, -0.5
	}

	s.SetConfig(Config{Color: 0x0000ff, LeftHorizontal: true})
	if err := s.Render(samples, 2); err != nil {
		t.Fatal(err)
	}
	if got := rec.pix[75*100+75]; got != 0x0000ff {
		t.Errorf("left horizontal: pixel (75,75) = %06x", got)
	}

	s.ToggleOrientation()
	if s.Config().LeftHorizontal {
		t.Fatal("ToggleOrientation had no effect")
	}
	if s.Config().Color != 0x0000ff {
		t.Fatal("ToggleOrientation changed the color")
	}
	s.Clear()
	if err := s.Render(samples, 2); err != nil {
		t.Fatal(err)
	}
	if got := rec.pix[25*100+25]; got != 0x0000ff {
		t.Errorf("right horizontal: pixel (25,25) = %06x", got)
	}
	if got := rec.pix[75*100+75]; got != 0 {
		t.Errorf("right horizontal: pixel (75,75) = %06x", got)
	}
}

func TestScopeResize(t *testing.T) {
	rec := &recorder{}
	s := New(20, 20, rec)
	s.Render([]float32{0, 0, 0, 0}, 2)

	s.Resize(30, 10)
	if w, h := s.Size(); w != 30 || h != 10 {
		t.Fatalf("size %dx%d", w, h)
	}
	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	if rec.width != 30 || rec.height != 10 || len(rec.pix) != 300 {
		t.Errorf("frame after resize: %dx%d, %d pixels", rec.width, rec.height, len(rec.pix))
	}
}

// TestScopeConcurrent exercises the locking; run with -race.
func TestScopeConcurrent(t *testing.T) {
	s := New(40, 40, PresenterFunc(func(pix []uint32, w, h int) error {
		if len(pix) != w*h {
			return errors.New("frame size mismatch")
		}
		return nil
	}))
	block := testcases.All["stereo"][0].Block

	var wg sync.WaitGroup
	errs := make(chan error, 100)
	wg.Add(3)
	go func() {
		defer wg.Done()
		for range 20 {
			if err := s.RenderBuffer(block); err != nil {
				errs <- err
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := range 20 {
			s.Resize(30+i, 50-i)
		}
	}()
	go func() {
		defer wg.Done()
		for range 20 {
			s.ToggleOrientation()
			if err := s.Clear(); err != nil {
				errs <- err
			}
		}
	}()
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestScopeNilPresenter(t *testing.T) {
	s := New(5, 5, nil)
	if err := s.Render([]float32{0, 0, 0, 0}, 2); err != nil {
		t.Error(err)
	}
	if err := s.Clear(); err != nil {
		t.Error(err)
	}
}
