package scene

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"wavebg/internal/field"
)

// Config describes one wave scene. Validated once at construction; the
// per-frame path trusts it.
type Config struct {
	// Field shape.
	Speed     float64
	Frequency float64
	Decay     float64
	Octaves   int

	// Base color, each channel in [0,1]. Sample intensity scales these
	// before quantization.
	BaseR float64
	BaseG float64
	BaseB float64

	// ColorNum is the number of discrete levels per channel, at least 2.
	ColorNum int

	// Block is the side length in pixels of one sampling cell.
	Block int

	// Mouse enables the pointer-proximity darkening with the given radius
	// in normalized [-1,1] viewport units.
	Mouse       bool
	MouseRadius float64

	// Noise backend name (field.Backend*) and its seed.
	Backend string
	Seed    int64
}

// DefaultConfig returns the stock blue-gray wave.
func DefaultConfig() Config {
	return Config{
		Speed:       1.0,
		Frequency:   3.0,
		Decay:       0.5,
		Octaves:     4,
		BaseR:       0.35,
		BaseG:       0.55,
		BaseB:       0.85,
		ColorNum:    4,
		Block:       4,
		Mouse:       true,
		MouseRadius: 0.8,
		Backend:     field.BackendGradient,
		Seed:        1337,
	}
}

// SetHexColor replaces the base color triple from a hex string like
// "#59c2ff".
func (c *Config) SetHexColor(hex string) error {
	col, err := colorful.Hex(hex)
	if err != nil {
		return fmt.Errorf("scene: bad base color %q: %w", hex, err)
	}
	c.BaseR, c.BaseG, c.BaseB = col.R, col.G, col.B
	return nil
}

// Validate reports the first malformed setting. Called by New; kept public
// so flag parsing can fail before a window opens.
func (c Config) Validate() error {
	if c.ColorNum < 2 {
		return fmt.Errorf("scene: colorNum must be at least 2, got %d", c.ColorNum)
	}
	if c.Block < 1 {
		return fmt.Errorf("scene: block size must be at least 1, got %d", c.Block)
	}
	if c.Octaves < 1 {
		return fmt.Errorf("scene: octaves must be at least 1, got %d", c.Octaves)
	}
	if c.Frequency <= 0 {
		return fmt.Errorf("scene: frequency must be positive, got %v", c.Frequency)
	}
	if c.Mouse && c.MouseRadius <= 0 {
		return fmt.Errorf("scene: mouse radius must be positive, got %v", c.MouseRadius)
	}
	for _, ch := range []float64{c.BaseR, c.BaseG, c.BaseB} {
		if ch < 0 || ch > 1 {
			return fmt.Errorf("scene: base color channel %v outside [0,1]", ch)
		}
	}
	return nil
}
