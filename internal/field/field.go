// Package field builds the animated turbulence field sampled by the frame
// compositor: ridged fractal summation over a noise source, warped by a
// time-shifted copy of itself.
package field

import "math"

// Source is a 2D scalar noise field in roughly [-1, 1].
type Source interface {
	Eval2(x, y float64) float64
}

// Config holds the shape parameters of the field. Immutable after the Field
// is constructed; the viewer swaps the whole Field to retune.
type Config struct {
	// Speed is the drift rate of the warp offset per unit of scene time.
	Speed float64
	// Frequency is the base sampling frequency of the first octave.
	Frequency float64
	// Decay scales each successive octave's amplitude. Values below 1 keep
	// the octave tail geometrically bounded.
	Decay float64
	// Octaves is the number of turbulence layers summed per evaluation.
	Octaves int
}

// DefaultConfig returns the tuning used by the stock wave background.
func DefaultConfig() Config {
	return Config{Speed: 1.0, Frequency: 3.0, Decay: 0.5, Octaves: 4}
}

// Field evaluates ridged fractal turbulence with self domain warping.
type Field struct {
	src Source
	cfg Config
}

// New returns a Field reading from src with the provided tuning. A
// non-positive octave count falls back to the default.
func New(src Source, cfg Config) *Field {
	if cfg.Octaves <= 0 {
		cfg.Octaves = DefaultConfig().Octaves
	}
	return &Field{src: src, cfg: cfg}
}

// Turbulence sums |noise| octaves at doubling frequency and decaying
// amplitude. Always non-negative, which gives the field its ridged look.
func (f *Field) Turbulence(x, y float64) float64 {
	sum := 0.0
	amp := 1.0
	freq := f.cfg.Frequency
	for i := 0; i < f.cfg.Octaves; i++ {
		sum += math.Abs(f.src.Eval2(x*freq, y*freq)) * amp
		amp *= f.cfg.Decay
		freq *= 2
	}
	return sum
}

// Sample evaluates the field at (x, y) and scene time t. The coordinate is
// displaced by the turbulence at the time-shifted point (x-t·speed,
// y-t·speed) before the second evaluation; two sequential passes, no
// recursion.
func (f *Field) Sample(x, y, t float64) float64 {
	shift := t * f.cfg.Speed
	warp := f.Turbulence(x-shift, y-shift)
	return f.Turbulence(x+warp, y+warp)
}

// Config returns the tuning the field was built with.
func (f *Field) Config() Config { return f.cfg }
