package render

import (
	"image/color"
	"image/color/palette"
	"testing"
)

func TestLevelPaletteSize(t *testing.T) {
	for _, tc := range []struct {
		levels int
		want   int
		ok     bool
	}{
		{2, 8, true},
		{4, 64, true},
		{6, 216, true},
		{7, 0, false},
		{1, 0, false},
	} {
		pal, ok := LevelPalette(tc.levels)
		if ok != tc.ok || len(pal) != tc.want {
			t.Fatalf("LevelPalette(%d) = %d colors, ok=%v; want %d, %v",
				tc.levels, len(pal), ok, tc.want, tc.ok)
		}
	}
}

func TestFramePalette(t *testing.T) {
	// Within the GIF limit the frame palette is the exact level palette.
	got := FramePalette(4)
	want, _ := LevelPalette(4)
	if len(got) != len(want) {
		t.Fatalf("FramePalette(4) has %d colors, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("FramePalette(4)[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	// Beyond it, fall back to Plan 9.
	got = FramePalette(7)
	if len(got) != len(palette.Plan9) {
		t.Fatalf("FramePalette(7) has %d colors, want %d", len(got), len(palette.Plan9))
	}
	for i := range palette.Plan9 {
		if got[i] != palette.Plan9[i] {
			t.Fatalf("FramePalette(7)[%d] differs from Plan 9", i)
		}
	}
}

func TestPalettedFrameExactColors(t *testing.T) {
	pal, ok := LevelPalette(2)
	if !ok {
		t.Fatal("LevelPalette(2) failed")
	}
	// One white and one black pixel.
	buf := []byte{255, 255, 255, 255, 0, 0, 0, 255}
	img := PalettedFrame(buf, 2, 1, pal)
	for i, want := range []color.RGBA{
		{255, 255, 255, 255},
		{0, 0, 0, 255},
	} {
		got := pal[img.Pix[i]].(color.RGBA)
		if got != want {
			t.Fatalf("pixel %d mapped to %v, want %v", i, got, want)
		}
	}
}
