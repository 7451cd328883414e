package assets

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/dasher-arcade/internal/config"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestManifest(t *testing.T) {
	m := Manifest(config.DefaultDasherConfig())

	want := []string{
		"textures/scarfy.png",
		"textures/12_nebula_spritesheet.png",
		"textures/far-buildings.png",
		"textures/back-buildings.png",
		"textures/foreground.png",
	}
	if len(m) != len(want) {
		t.Fatalf("manifest has %d textures, want %d", len(m), len(want))
	}
	for i, tex := range m {
		if tex.Path != want[i] {
			t.Errorf("texture %d = %s, want %s", i, tex.Path, want[i])
		}
	}
	if m[0].Columns != 6 || m[1].Columns != 8 || m[1].Rows != 8 {
		t.Errorf("sheet grids = %+v / %+v", m[0], m[1])
	}
}

func TestCheckSheet(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		tex  Texture
		ok   bool
	}{
		{"exact scarfy", 768, 128, Texture{Width: 768, Height: 128, Columns: 6, Rows: 1}, true},
		{"wrong width", 700, 128, Texture{Width: 768, Height: 128, Columns: 6, Rows: 1}, false},
		{"wrong height", 768, 100, Texture{Width: 768, Height: 128, Columns: 6, Rows: 1}, false},
		{"uneven grid", 100, 100, Texture{Columns: 3, Rows: 1}, false},
		{"any size layer", 384, 192, Texture{Columns: 1, Rows: 1}, true},
		{"zero grid counts as one", 10, 10, Texture{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSheet(image.NewRGBA(image.Rect(0, 0, tt.w, tt.h)), tt.tex)
			if tt.ok && err != nil {
				t.Errorf("CheckSheet() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrSheet) {
				t.Errorf("CheckSheet() = %v, want ErrSheet", err)
			}
		})
	}
}

func TestLoadAllPlaceholders(t *testing.T) {
	root := t.TempDir()
	m := Manifest(config.DefaultDasherConfig())
	for _, tex := range m {
		writePNG(t, filepath.Join(root, tex.Path), Placeholder(tex))
	}

	imgs, err := LoadAll(root, m)
	if err != nil {
		t.Fatalf("LoadAll() failed: %v", err)
	}
	if len(imgs) != len(m) {
		t.Errorf("loaded %d images, want %d", len(imgs), len(m))
	}
	if b := imgs["textures/12_nebula_spritesheet.png"].Bounds(); b.Dx() != 800 || b.Dy() != 800 {
		t.Errorf("nebula sheet bounds = %v", b)
	}
}

func TestLoadAllLayerWiderThanWrap(t *testing.T) {
	root := t.TempDir()
	cfg := config.DefaultDasherConfig()
	m := Manifest(cfg)
	for _, tex := range m {
		writePNG(t, filepath.Join(root, tex.Path), Placeholder(tex))
	}

	// A foreground wider than the wrap width is still a valid asset set
	fg := cfg.Backdrop[len(cfg.Backdrop)-1]
	writePNG(t, filepath.Join(root, fg.Path), image.NewRGBA(image.Rect(0, 0, int(fg.Width)*2+20, 96)))

	if _, err := LoadAll(root, m); err != nil {
		t.Fatalf("LoadAll() rejected a wide layer: %v", err)
	}
	for _, tex := range m[2:] {
		if tex.Width != 0 || tex.Height != 0 {
			t.Errorf("layer %s should accept any size, got %dx%d", tex.Path, tex.Width, tex.Height)
		}
	}
}

func TestLoadAllFailures(t *testing.T) {
	root := t.TempDir()
	tex := Texture{Path: "textures/scarfy.png", Width: 768, Height: 128, Columns: 6, Rows: 1}

	if _, err := LoadAll(root, []Texture{tex}); err == nil {
		t.Error("missing texture should fail")
	}

	garbage := filepath.Join(root, tex.Path)
	if err := os.MkdirAll(filepath.Dir(garbage), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(garbage, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAll(root, []Texture{tex}); err == nil {
		t.Error("undecodable texture should fail")
	}

	writePNG(t, garbage, image.NewRGBA(image.Rect(0, 0, 64, 64)))
	if _, err := LoadAll(root, []Texture{tex}); !errors.Is(err, ErrSheet) {
		t.Errorf("wrong size texture should be ErrSheet, got %v", err)
	}
}

func TestPlaceholderFramesDiffer(t *testing.T) {
	tex := Texture{Width: 120, Height: 40, Columns: 3, Rows: 1}
	img := Placeholder(tex)

	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 40 {
		t.Fatalf("placeholder bounds = %v", b)
	}
	if err := CheckSheet(img, tex); err != nil {
		t.Errorf("placeholder should satisfy its own grid: %v", err)
	}
}
