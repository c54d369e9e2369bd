package gallery

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wavebg/internal/scene"
)

func baseConfig() scene.Config {
	cfg := scene.DefaultConfig()
	cfg.Mouse = false
	return cfg
}

func TestVariantsAllValid(t *testing.T) {
	variants := Variants(baseConfig())
	if len(variants) < 11 {
		t.Fatalf("expected baseline plus two nudges per tunable, got %d variants", len(variants))
	}
	if variants[0].Name != "baseline" {
		t.Fatalf("first variant is %q, want baseline", variants[0].Name)
	}
	seen := map[string]bool{}
	for _, v := range variants {
		if err := v.Config.Validate(); err != nil {
			t.Fatalf("variant %s has invalid config: %v", v.Name, err)
		}
		if seen[v.Name] {
			t.Fatalf("duplicate variant name %q", v.Name)
		}
		seen[v.Name] = true
		if v.Description == "" {
			t.Fatalf("variant %s has no description", v.Name)
		}
	}
	for _, key := range []string{"speed", "frequency", "decay", "colors", "block"} {
		found := false
		for name := range seen {
			if strings.HasPrefix(name, key+"-") {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("no variant sweeps %q", key)
		}
	}
}

func TestGenerateRendersEveryVariant(t *testing.T) {
	dir := t.TempDir()
	variants := Variants(baseConfig())
	items, err := Generate(variants, Options{Dir: dir, Width: 24, Height: 16, Time: 1.0, Workers: 3})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(items) != len(variants) {
		t.Fatalf("got %d items for %d variants", len(items), len(variants))
	}
	for i, item := range items {
		if item.Title != variants[i].Name {
			t.Fatalf("item %d out of order: %q vs variant %q", i, item.Title, variants[i].Name)
		}
		f, err := os.Open(filepath.Join(dir, item.File))
		if err != nil {
			t.Fatalf("missing image for %s: %v", item.Title, err)
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("image for %s does not decode: %v", item.Title, err)
		}
		if b := img.Bounds(); b.Dx() != 24 || b.Dy() != 16 {
			t.Fatalf("image for %s is %dx%d, want 24x16", item.Title, b.Dx(), b.Dy())
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	variants := Variants(baseConfig())[:1]
	opts := Options{Width: 24, Height: 16, Time: 0.5, Workers: 1}

	read := func(dir string) []byte {
		t.Helper()
		opts.Dir = dir
		if _, err := Generate(variants, opts); err != nil {
			t.Fatalf("Generate: %v", err)
		}
		data, err := os.ReadFile(filepath.Join(dir, "baseline.png"))
		if err != nil {
			t.Fatal(err)
		}
		return data
	}

	if !bytes.Equal(read(t.TempDir()), read(t.TempDir())) {
		t.Fatal("same variant rendered twice produced different images")
	}
}

func TestGenerateRejectsInvalidVariant(t *testing.T) {
	bad := baseConfig()
	bad.ColorNum = 1
	_, err := Generate([]Variant{{Name: "bad", Config: bad}}, Options{Dir: t.TempDir(), Width: 8, Height: 8})
	if err == nil {
		t.Fatal("invalid variant config accepted")
	}
}

func TestWriteIndex(t *testing.T) {
	dir := t.TempDir()
	items := []Item{
		{Title: "baseline", Description: "speed=1.00", File: "baseline.png"},
		{Title: "speed-2.0", Description: "speed=2.00", File: "speed-2.0.png"},
	}
	if err := WriteIndex(dir, "Wave gallery", items); err != nil {
		t.Fatalf("WriteIndex: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	html := string(data)
	for _, want := range []string{"Wave gallery", "baseline.png", "speed-2.0.png", "speed=2.00"} {
		if !strings.Contains(html, want) {
			t.Fatalf("index.html missing %q", want)
		}
	}
}
