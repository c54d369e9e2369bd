// Package render adapts scene frame buffers to output surfaces: an ebiten
// image in the GUI build, paletted frames for the GIF exporter.
package render

import (
	"image"
	"image/color"
	"image/color/palette"
)

// LevelPalette returns the exact set of colors a scene with the given number
// of channel levels can emit: every combination of the quantizer's level
// values across R, G and B, fully opaque. The second result is false when
// the combination count exceeds GIF's 256-color limit.
func LevelPalette(levels int) (color.Palette, bool) {
	if levels < 2 || levels*levels*levels > 256 {
		return nil, false
	}
	// Same arithmetic as the scene's channel conversion so palette entries
	// match emitted bytes exactly.
	vals := make([]uint8, levels)
	for i := range vals {
		vals[i] = uint8(float64(i) / float64(levels-1) * 255)
	}
	pal := make(color.Palette, 0, levels*levels*levels)
	for _, r := range vals {
		for _, g := range vals {
			for _, b := range vals {
				pal = append(pal, color.RGBA{R: r, G: g, B: b, A: 0xff})
			}
		}
	}
	return pal, true
}

// FramePalette picks the palette for exporting frames: the exact level
// palette when it fits in a GIF frame, Plan 9 otherwise.
func FramePalette(levels int) color.Palette {
	if pal, ok := LevelPalette(levels); ok {
		return pal
	}
	return palette.Plan9
}

// PalettedFrame converts an RGBA frame buffer into a paletted image, memoizing
// index lookups since a dithered frame holds few distinct colors.
func PalettedFrame(buf []byte, w, h int, pal color.Palette) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, w, h), pal)
	memo := map[[3]byte]uint8{}
	for i := 0; i < w*h; i++ {
		key := [3]byte{buf[i*4], buf[i*4+1], buf[i*4+2]}
		idx, ok := memo[key]
		if !ok {
			idx = uint8(pal.Index(color.RGBA{R: key[0], G: key[1], B: key[2], A: 0xff}))
			memo[key] = idx
		}
		img.Pix[i] = idx
	}
	return img
}
