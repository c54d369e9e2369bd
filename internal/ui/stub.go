//go:build !ebiten

package ui

import "wavebg/internal/typewriter"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(any) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update() {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}

// Banner is a no-op placeholder for headless builds.
type Banner struct{}

// NewBanner returns nil in the headless build.
func NewBanner(*typewriter.Writer, int) *Banner { return nil }

// Update is a no-op in the headless build.
func (b *Banner) Update() {}

// Draw is a no-op in the headless build.
func (b *Banner) Draw(any) {}
