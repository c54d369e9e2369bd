package gallery

import (
	"fmt"

	"wavebg/internal/scene"
)

// Variant pairs a rendered gallery entry with the configuration that
// produces it.
type Variant struct {
	Name        string
	Description string
	Config      scene.Config
}

// Variants builds the sweep for a base configuration: the baseline look
// plus single-axis nudges across each tunable the scene exposes. Names are
// file-safe; descriptions carry the full parameter set.
func Variants(base scene.Config) []Variant {
	out := []Variant{{
		Name:        "baseline",
		Description: describe(base),
		Config:      base,
	}}

	speedOptions := []float64{0.5, 2.0}
	frequencyOptions := []float64{1.5, 6.0}
	decayOptions := []float64{0.3, 0.8}
	colorOptions := []int{2, 8}
	blockOptions := []int{2, 10}

	for _, v := range speedOptions {
		cfg := base
		cfg.Speed = v
		out = append(out, variant("speed", fmt.Sprintf("%.1f", v), cfg))
	}
	for _, v := range frequencyOptions {
		cfg := base
		cfg.Frequency = v
		out = append(out, variant("frequency", fmt.Sprintf("%.1f", v), cfg))
	}
	for _, v := range decayOptions {
		cfg := base
		cfg.Decay = v
		out = append(out, variant("decay", fmt.Sprintf("%.1f", v), cfg))
	}
	for _, v := range colorOptions {
		cfg := base
		cfg.ColorNum = v
		out = append(out, variant("colors", fmt.Sprintf("%d", v), cfg))
	}
	for _, v := range blockOptions {
		cfg := base
		cfg.Block = v
		out = append(out, variant("block", fmt.Sprintf("%d", v), cfg))
	}
	return out
}

func variant(key, value string, cfg scene.Config) Variant {
	return Variant{
		Name:        key + "-" + value,
		Description: describe(cfg),
		Config:      cfg,
	}
}

func describe(cfg scene.Config) string {
	return fmt.Sprintf("speed=%.2f frequency=%.2f decay=%.2f colors=%d block=%d noise=%s",
		cfg.Speed, cfg.Frequency, cfg.Decay, cfg.ColorNum, cfg.Block, cfg.Backend)
}
