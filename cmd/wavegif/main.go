// Command wavegif renders the wave scene offline and writes an animated
// GIF. Pointer interaction is meaningless without a pointer, so it is
// always off here.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/gif"
	"log"
	"os"

	"wavebg/internal/app"
	"wavebg/internal/render"
	"wavebg/internal/scene"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	out := flag.String("out", "wave.gif", "output file")
	frames := flag.Int("frames", 120, "number of frames to render")
	delay := flag.Int("delay", 3, "per-frame delay in 1/100ths of a second")
	flag.Parse()

	if err := run(cfg, *out, *frames, *delay); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *app.Config, out string, frames, delay int) error {
	if frames < 1 {
		return fmt.Errorf("need at least one frame, got %d", frames)
	}
	cfg.Mouse = false
	sceneCfg, err := cfg.SceneConfig()
	if err != nil {
		return err
	}
	s, err := scene.New(sceneCfg)
	if err != nil {
		return err
	}
	s.Resize(cfg.Width, cfg.Height)
	w, h := s.Size()

	pal := render.FramePalette(sceneCfg.ColorNum)

	anim := &gif.GIF{
		Image: make([]*image.Paletted, 0, frames),
		Delay: make([]int, 0, frames),
	}
	for i := 0; i < frames; i++ {
		buf := s.Render()
		anim.Image = append(anim.Image, render.PalettedFrame(buf, w, h, pal))
		anim.Delay = append(anim.Delay, delay)
		s.Advance(0.01)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, anim); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
