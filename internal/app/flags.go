package app

import (
	"flag"
	"strings"

	"wavebg/internal/scene"
	"wavebg/internal/typewriter"
)

// Config represents the command-line parameters shared by the viewer and
// the exporter.
type Config struct {
	Width  int
	Height int
	TPS    int

	Noise string
	Seed  int64

	Speed     float64
	Frequency float64
	Decay     float64
	Octaves   int

	Color    string
	ColorNum int
	Block    int

	Mouse  bool
	Radius float64

	// Banner is a comma-separated list of strings for the typewriter line;
	// empty disables it.
	Banner     string
	BannerLoop bool
}

// NewConfig returns a Config populated with the scene defaults.
func NewConfig() *Config {
	sc := scene.DefaultConfig()
	return &Config{
		Width:      960,
		Height:     540,
		TPS:        60,
		Noise:      sc.Backend,
		Seed:       sc.Seed,
		Speed:      sc.Speed,
		Frequency:  sc.Frequency,
		Decay:      sc.Decay,
		Octaves:    sc.Octaves,
		Color:      "#598cd9",
		ColorNum:   sc.ColorNum,
		Block:      sc.Block,
		Mouse:      sc.Mouse,
		Radius:     sc.MouseRadius,
		BannerLoop: true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "initial window width")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.Noise, "noise", c.Noise, "noise backend: gradient, simplex or perlin")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "noise seed")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "wave drift speed")
	fs.Float64Var(&c.Frequency, "frequency", c.Frequency, "base noise frequency")
	fs.Float64Var(&c.Decay, "decay", c.Decay, "per-octave amplitude decay")
	fs.IntVar(&c.Octaves, "octaves", c.Octaves, "turbulence octaves")
	fs.StringVar(&c.Color, "color", c.Color, "base color as #rrggbb")
	fs.IntVar(&c.ColorNum, "colors", c.ColorNum, "discrete levels per channel (min 2)")
	fs.IntVar(&c.Block, "block", c.Block, "sampling block size in pixels")
	fs.BoolVar(&c.Mouse, "mouse", c.Mouse, "darken the field near the pointer")
	fs.Float64Var(&c.Radius, "radius", c.Radius, "pointer effect radius in normalized units")
	fs.StringVar(&c.Banner, "banner", c.Banner, "comma-separated typewriter strings (empty disables)")
	fs.BoolVar(&c.BannerLoop, "banner-loop", c.BannerLoop, "restart the banner after the last string")
}

// SceneConfig builds and validates the scene configuration.
func (c *Config) SceneConfig() (scene.Config, error) {
	sc := scene.Config{
		Speed:       c.Speed,
		Frequency:   c.Frequency,
		Decay:       c.Decay,
		Octaves:     c.Octaves,
		ColorNum:    c.ColorNum,
		Block:       c.Block,
		Mouse:       c.Mouse,
		MouseRadius: c.Radius,
		Backend:     c.Noise,
		Seed:        c.Seed,
	}
	if err := sc.SetHexColor(c.Color); err != nil {
		return scene.Config{}, err
	}
	if err := sc.Validate(); err != nil {
		return scene.Config{}, err
	}
	return sc, nil
}

// Typewriter builds the banner writer, or nil when no texts are configured.
func (c *Config) Typewriter() (*typewriter.Writer, error) {
	if strings.TrimSpace(c.Banner) == "" {
		return nil, nil
	}
	cfg := typewriter.DefaultConfig()
	cfg.Loop = c.BannerLoop
	for _, s := range strings.Split(c.Banner, ",") {
		if s = strings.TrimSpace(s); s != "" {
			cfg.Texts = append(cfg.Texts, s)
		}
	}
	if len(cfg.Texts) == 0 {
		return nil, nil
	}
	return typewriter.New(cfg, c.Seed)
}
