// Command wavegallery sweeps the scene tunables around a base
// configuration, renders one still per variant, and writes an HTML index
// pairing every image with its parameter set.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"wavebg/internal/app"
	"wavebg/internal/gallery"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	out := flag.String("out", "gallery", "output directory")
	at := flag.Float64("at", 2.0, "scene time of the rendered stills")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel render workers")
	flag.Parse()

	if err := run(cfg, *out, *at, *workers); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *app.Config, out string, at float64, workers int) error {
	cfg.Mouse = false
	sceneCfg, err := cfg.SceneConfig()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return err
	}

	variants := gallery.Variants(sceneCfg)
	items, err := gallery.Generate(variants, gallery.Options{
		Dir:     out,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Time:    at,
		Workers: workers,
	})
	if err != nil {
		return err
	}
	if err := gallery.WriteIndex(out, "Wave gallery", items); err != nil {
		return err
	}

	fmt.Printf("rendered %d variants into %s\n", len(items), out)
	for _, item := range items {
		fmt.Printf("  %-16s %s\n", item.Title, item.Description)
	}
	return nil
}
