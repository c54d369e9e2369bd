// Package gallery renders a set of scene configurations into still images
// and emits an HTML index page pairing each image with its parameter
// description.
package gallery

import (
	"fmt"
	"html/template"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync"

	"wavebg/internal/scene"
)

// Item is one rendered gallery entry.
type Item struct {
	Title       string
	Description string
	File        string
}

// Options controls how stills are rendered.
type Options struct {
	Dir    string
	Width  int
	Height int
	// Time is the scene time of the rendered still; nonzero values get past
	// the t=0 look shared by every configuration.
	Time    float64
	Workers int
}

// Generate renders every variant to a PNG under opts.Dir and returns the
// items in variant order.
func Generate(variants []Variant, opts Options) ([]Item, error) {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	items := make([]Item, len(variants))
	errs := make([]error, len(variants))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				items[i], errs[i] = renderVariant(variants[i], opts)
			}
		}()
	}
	for i := range variants {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return items, nil
}

func renderVariant(v Variant, opts Options) (Item, error) {
	s, err := scene.New(v.Config)
	if err != nil {
		return Item{}, fmt.Errorf("gallery: variant %s: %w", v.Name, err)
	}
	s.Resize(opts.Width, opts.Height)
	s.Advance(opts.Time)
	buf := s.Render()

	w, h := s.Size()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, buf)

	file := v.Name + ".png"
	f, err := os.Create(filepath.Join(opts.Dir, file))
	if err != nil {
		return Item{}, err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return Item{}, fmt.Errorf("gallery: encoding %s: %w", file, err)
	}
	if err := f.Close(); err != nil {
		return Item{}, err
	}
	return Item{Title: v.Name, Description: v.Description, File: file}, nil
}

// WriteIndex emits index.html in dir linking every item.
func WriteIndex(dir, title string, items []Item) error {
	f, err := os.Create(filepath.Join(dir, "index.html"))
	if err != nil {
		return err
	}
	data := struct {
		Title string
		Items []Item
	}{Title: title, Items: items}
	if err := indexTemplate.Execute(f, data); err != nil {
		f.Close()
		return fmt.Errorf("gallery: writing index: %w", err)
	}
	return f.Close()
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>
body { background: #101218; color: #e6e6ef; font-family: monospace; margin: 2em; }
.gallery-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(280px, 1fr)); gap: 1.5em; }
.gallery-item img { width: 100%; image-rendering: pixelated; }
.gallery-item h3 { margin: 0.5em 0 0.2em; }
.gallery-item p { margin: 0; color: #9aa0ad; font-size: 0.85em; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="gallery-grid">
{{range .Items}}<div class="gallery-item">
<img src="{{.File}}" alt="{{.Title}}">
<h3>{{.Title}}</h3>
<p>{{.Description}}</p>
</div>
{{end}}</div>
</body>
</html>
`))
