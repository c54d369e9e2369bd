//go:build ebiten

package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"wavebg/internal/typewriter"
)

// Banner draws the typewriter line along the bottom edge of the screen.
type Banner struct {
	writer *typewriter.Writer
	step   time.Duration
}

// NewBanner wraps a typewriter for a loop running at the given ticks per
// second. A nil writer disables the banner.
func NewBanner(w *typewriter.Writer, tps int) *Banner {
	if w == nil {
		return nil
	}
	if tps <= 0 {
		tps = 60
	}
	return &Banner{writer: w, step: time.Second / time.Duration(tps)}
}

// Update advances the typewriter by one tick.
func (b *Banner) Update() {
	if b == nil {
		return
	}
	b.writer.Advance(b.step)
}

// Draw renders the current line.
func (b *Banner) Draw(screen *ebiten.Image) {
	if b == nil {
		return
	}
	bounds := screen.Bounds()
	y := bounds.Dy() - 14
	text.Draw(screen, b.writer.Line(), basicfont.Face7x13, 12, y, color.RGBA{R: 235, G: 235, B: 240, A: 255})
}
