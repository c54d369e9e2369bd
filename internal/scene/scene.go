// Package scene owns the per-frame pipeline: animation state in, full RGBA
// frame out. It has no display dependency, so the whole pipeline tests
// headless.
package scene

import (
	"math"

	"wavebg/internal/dither"
	"wavebg/internal/field"
)

// A pointer dead center on a sample point removes this much intensity.
const pointerDip = 0.5

// Scene holds the renderer state: configuration, field, quantizer, elapsed
// time, pointer position and the frame buffer. All mutation happens between
// frames on the driver's goroutine; nothing here locks.
type Scene struct {
	cfg   Config
	field *field.Field
	quant *dither.Quantizer

	w, h int
	buf  []byte

	time float64
	// Pointer position in pixel coordinates, viewport space.
	px, py float64
}

// New validates cfg and builds a scene with a zero-sized viewport. Call
// Resize before the first Render.
func New(cfg Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	src, err := field.NewSource(cfg.Backend, cfg.Seed)
	if err != nil {
		return nil, err
	}
	quant, err := dither.New(cfg.ColorNum)
	if err != nil {
		return nil, err
	}
	s := &Scene{cfg: cfg, quant: quant}
	s.field = field.New(src, field.Config{
		Speed:     cfg.Speed,
		Frequency: cfg.Frequency,
		Decay:     cfg.Decay,
		Octaves:   cfg.Octaves,
	})
	return s, nil
}

// Config returns the current configuration.
func (s *Scene) Config() Config { return s.cfg }

// Time returns the accumulated scene time.
func (s *Scene) Time() float64 { return s.time }

// Advance moves scene time forward by dt.
func (s *Scene) Advance(dt float64) { s.time += dt }

// SetPointer records the pointer position in pixel coordinates. Takes
// effect on the next Render.
func (s *Scene) SetPointer(x, y float64) {
	s.px, s.py = x, y
}

// Size returns the current viewport dimensions.
func (s *Scene) Size() (int, int) { return s.w, s.h }

// Resize adjusts the viewport. The frame buffer is reallocated whenever the
// dimensions change, so no pixels from the old size survive.
func (s *Scene) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if w == s.w && h == s.h {
		return
	}
	s.w, s.h = w, h
	s.buf = make([]byte, 4*w*h)
}

// Reseed rebuilds the noise source with a new seed, keeping all tuning.
func (s *Scene) Reseed(seed int64) {
	s.cfg.Seed = seed
	s.rebuildField()
}

func (s *Scene) rebuildField() {
	// Backend name was validated at construction and setters never change
	// it, so this cannot fail.
	src, err := field.NewSource(s.cfg.Backend, s.cfg.Seed)
	if err != nil {
		panic(err)
	}
	s.field = field.New(src, field.Config{
		Speed:     s.cfg.Speed,
		Frequency: s.cfg.Frequency,
		Decay:     s.cfg.Decay,
		Octaves:   s.cfg.Octaves,
	})
}

// Render overwrites and returns the frame buffer for the current state.
// Every pixel is written; the previous frame never shows through.
func (s *Scene) Render() []byte {
	w, h := s.w, s.h
	if w == 0 || h == 0 {
		return s.buf
	}
	block := s.cfg.Block

	// Pointer in the same normalized space as the sample coordinates.
	mx := s.px/float64(w)*2 - 1
	my := s.py/float64(h)*2 - 1

	for y := 0; y < h; y += block {
		ny := float64(y)/float64(h)*2 - 1
		gy := y / block
		for x := 0; x < w; x += block {
			nx := float64(x)/float64(w)*2 - 1
			gx := x / block

			v := s.field.Sample(nx, ny, s.time)
			if s.cfg.Mouse {
				dist := math.Hypot(nx-mx, ny-my)
				if falloff := 1 - dist/s.cfg.MouseRadius; falloff > 0 {
					v -= pointerDip * falloff
				}
			}

			r := byte(s.quant.Apply(v*s.cfg.BaseR, gx, gy) * 255)
			g := byte(s.quant.Apply(v*s.cfg.BaseG, gx, gy) * 255)
			b := byte(s.quant.Apply(v*s.cfg.BaseB, gx, gy) * 255)
			s.fillBlock(x, y, block, r, g, b)
		}
	}
	return s.buf
}

// fillBlock paints a solid block rooted at (x0, y0), clipped to the
// viewport.
func (s *Scene) fillBlock(x0, y0, block int, r, g, b byte) {
	xEnd := x0 + block
	if xEnd > s.w {
		xEnd = s.w
	}
	yEnd := y0 + block
	if yEnd > s.h {
		yEnd = s.h
	}
	for y := y0; y < yEnd; y++ {
		base := (y*s.w + x0) * 4
		for x := x0; x < xEnd; x++ {
			s.buf[base+0] = r
			s.buf[base+1] = g
			s.buf[base+2] = b
			s.buf[base+3] = 0xff
			base += 4
		}
	}
}
