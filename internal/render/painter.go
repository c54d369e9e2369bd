//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// Painter uploads the scene's RGBA frame buffer into a single reused image.
type Painter struct {
	w, h int
	img  *ebiten.Image
}

// NewPainter returns an empty painter; the image is allocated lazily so the
// painter tracks viewport resizes.
func NewPainter() *Painter { return &Painter{} }

// Blit uploads buf (w*h RGBA pixels) and draws it at the origin of dst.
func (p *Painter) Blit(dst *ebiten.Image, w, h int, buf []byte) {
	if w <= 0 || h <= 0 || len(buf) != 4*w*h {
		return
	}
	if p.img == nil || p.w != w || p.h != h {
		p.img = ebiten.NewImage(w, h)
		p.w, p.h = w, h
	}
	p.img.ReplacePixels(buf)
	dst.DrawImage(p.img, nil)
}
