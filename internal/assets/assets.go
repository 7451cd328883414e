// Package assets describes and loads the textures used by the window front end.
// It only deals in image.Image so it can be used without a display.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/colornames"

	"github.com/vovakirdan/dasher-arcade/internal/config"
)

// ErrSheet is wrapped when an image does not match its expected frame grid.
var ErrSheet = errors.New("sprite sheet mismatch")

// Texture is one image file and the frame grid it is expected to hold.
type Texture struct {
	Path    string // Path relative to the asset root; also the texture key
	Width   int    // Expected width in pixels, 0 = any
	Height  int    // Expected height in pixels, 0 = any
	Columns int
	Rows    int
	Tint    color.RGBA // Colour used by Placeholder
}

// Manifest lists every texture a Dasher run draws.
func Manifest(cfg config.DasherConfig) []Texture {
	out := []Texture{
		sheetTexture(cfg.Player.Sheet, colornames.Deepskyblue),
		sheetTexture(cfg.Nebulae.Sheet, colornames.Orchid),
	}

	// Layers are drawn at their native size; their configured width only
	// sets where the scroll wraps.
	tints := []color.RGBA{colornames.Midnightblue, colornames.Slateblue, colornames.Indigo}
	for i, l := range cfg.Backdrop {
		out = append(out, Texture{
			Path:    l.Path,
			Columns: 1,
			Rows:    1,
			Tint:    tints[i%len(tints)],
		})
	}
	return out
}

func sheetTexture(s config.SheetConfig, tint color.RGBA) Texture {
	return Texture{
		Path:    s.Path,
		Width:   s.Width,
		Height:  s.Height,
		Columns: s.Columns,
		Rows:    s.Rows,
		Tint:    tint,
	}
}

// Decode reads and decodes the image at path.
func Decode(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return img, nil
}

// CheckSheet verifies that img has the expected size and splits evenly into
// the texture's frame grid.
func CheckSheet(img image.Image, t Texture) error {
	b := img.Bounds()
	if t.Width > 0 && b.Dx() != t.Width {
		return fmt.Errorf("%w: %s is %d px wide, want %d", ErrSheet, t.Path, b.Dx(), t.Width)
	}
	if t.Height > 0 && b.Dy() != t.Height {
		return fmt.Errorf("%w: %s is %d px high, want %d", ErrSheet, t.Path, b.Dy(), t.Height)
	}
	cols, rows := max(t.Columns, 1), max(t.Rows, 1)
	if b.Dx()%cols != 0 || b.Dy()%rows != 0 {
		return fmt.Errorf("%w: %s (%dx%d) does not split into %dx%d frames", ErrSheet, t.Path, b.Dx(), b.Dy(), cols, rows)
	}
	return nil
}

// LoadAll decodes and checks every texture below root, keyed by Path.
// The first failure is returned.
func LoadAll(root string, textures []Texture) (map[string]image.Image, error) {
	out := make(map[string]image.Image, len(textures))
	for _, t := range textures {
		img, err := Decode(filepath.Join(root, t.Path))
		if err != nil {
			return nil, err
		}
		if err := CheckSheet(img, t); err != nil {
			return nil, err
		}
		out[t.Path] = img
	}
	return out, nil
}

// Placeholder draws a stand-in image for t: a tinted block in every frame
// for sheets, a row of buildings for single-frame layers.
func Placeholder(t Texture) *image.RGBA {
	w, h := t.Width, t.Height
	if w <= 0 {
		w = 256
	}
	if h <= 0 {
		h = 192
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	cols, rows := max(t.Columns, 1), max(t.Rows, 1)

	if cols == 1 && rows == 1 {
		step := max(w/8, 1)
		for x, i := 0, 0; x < w; x, i = x+step, i+1 {
			bh := h/4 + (i*37)%max(h/2, 1)
			draw.Draw(img, image.Rect(x+1, h-bh, x+step-1, h), &image.Uniform{t.Tint}, image.Point{}, draw.Src)
		}
		return img
	}

	fw, fh := w/cols, h/rows
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			// The block shifts with the frame index so animation is visible
			inset := fw/4 + (c%2)*fw/16
			rect := image.Rect(c*fw+inset, r*fh+fh/4, (c+1)*fw-inset, (r+1)*fh-fh/8)
			draw.Draw(img, rect, &image.Uniform{t.Tint}, image.Point{}, draw.Src)
		}
	}
	return img
}
