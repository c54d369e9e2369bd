//go:build ebiten

package ui

import (
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"wavebg/internal/scene"
)

// Tunable is the slice of the scene the HUD needs: readable parameters and
// keyed setters.
type Tunable interface {
	Params() []scene.Param
	Controls() []scene.Control
	SetFloatParam(key string, value float64) bool
	SetIntParam(key string, value int) bool
}

// HUD is a toggleable panel listing live render parameters. Up/Down selects
// a row, Left/Right nudges it by the control's step within its bounds.
type HUD struct {
	tunable  Tunable
	controls []scene.Control

	visible  bool
	selected int
	pixel    *ebiten.Image
}

// NewHUD constructs a hidden HUD for the provided tunable.
func NewHUD(t Tunable) *HUD {
	h := &HUD{tunable: t, controls: t.Controls()}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Update handles the HUD's keys.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
	if !h.visible || len(h.controls) == 0 {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		h.selected = (h.selected + len(h.controls) - 1) % len(h.controls)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		h.selected = (h.selected + 1) % len(h.controls)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		h.adjust(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		h.adjust(1)
	}
}

func (h *HUD) adjust(direction int) {
	ctrl := h.controls[h.selected]
	current, ok := h.currentValue(ctrl.Key)
	if !ok {
		return
	}
	target := current + float64(direction)*ctrl.Step
	if target < ctrl.Min {
		target = ctrl.Min
	}
	if target > ctrl.Max {
		target = ctrl.Max
	}
	switch ctrl.Type {
	case scene.ParamTypeInt:
		h.tunable.SetIntParam(ctrl.Key, int(math.Round(target)))
	case scene.ParamTypeFloat:
		h.tunable.SetFloatParam(ctrl.Key, target)
	}
}

func (h *HUD) currentValue(key string) (float64, bool) {
	for _, p := range h.tunable.Params() {
		if p.Key != key {
			continue
		}
		v, err := strconv.ParseFloat(p.Value, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	return 0, false
}

// Draw paints the panel in the top-left corner when visible.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible {
		return
	}
	params := h.tunable.Params()
	height := hudPadding*2 + hudHeader + len(params)*hudLine
	h.drawRect(screen, 0, 0, hudWidth, height, color.RGBA{R: 10, G: 12, B: 18, A: 210})

	face := basicfont.Face7x13
	y := hudPadding + hudHeader - 4
	text.Draw(screen, "Wave controls  (arrows adjust)", face, hudPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for i, p := range params {
		y += hudLine
		fg := color.RGBA{R: 170, G: 175, B: 185, A: 255}
		marker := "  "
		if i == h.selected {
			fg = color.RGBA{R: 240, G: 240, B: 250, A: 255}
			marker = "> "
		}
		text.Draw(screen, marker+p.Label, face, hudPadding, y, fg)
		text.Draw(screen, p.Value, face, hudWidth-hudPadding-7*len(p.Value), y, fg)
	}
}

func (h *HUD) drawRect(dst *ebiten.Image, x, y, w, hgt int, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(hgt))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	dst.DrawImage(h.pixel, op)
}

const (
	hudWidth   = 230
	hudPadding = 10
	hudHeader  = 16
	hudLine    = 16
)
