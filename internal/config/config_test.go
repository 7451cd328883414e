package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchFallbacks(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	axe, err := LoadAxe("")
	if err != nil {
		t.Fatalf("LoadAxe() failed: %v", err)
	}
	want := DefaultAxeConfig()
	if axe.World != want.World || axe.Player != want.Player || axe.Axe != want.Axe {
		t.Errorf("embedded axe config = %+v, want %+v", axe, want)
	}

	dasher, err := LoadDasher("")
	if err != nil {
		t.Fatalf("LoadDasher() failed: %v", err)
	}
	dwant := DefaultDasherConfig()
	if dasher.World != dwant.World || dasher.Physics != dwant.Physics {
		t.Errorf("embedded dasher world/physics = %+v/%+v", dasher.World, dasher.Physics)
	}
	if dasher.Player.Sheet != dwant.Player.Sheet || dasher.Nebulae.Sheet != dwant.Nebulae.Sheet {
		t.Error("embedded sheets differ from fallback")
	}
	if math.Abs(dasher.Player.FrameInterval-dwant.Player.FrameInterval) > 1e-6 {
		t.Errorf("player frame interval = %v", dasher.Player.FrameInterval)
	}
	if dasher.Nebulae.Count != 10 || dasher.Nebulae.Padding != 50 || dasher.Nebulae.Velocity != -200 {
		t.Errorf("nebulae = %+v", dasher.Nebulae)
	}
	if len(dasher.Backdrop) != 3 {
		t.Fatalf("expected 3 backdrop layers, got %d", len(dasher.Backdrop))
	}
	for i, l := range dasher.Backdrop {
		if l != dwant.Backdrop[i] {
			t.Errorf("backdrop[%d] = %+v, want %+v", i, l, dwant.Backdrop[i])
		}
	}
}

func TestFrameSize(t *testing.T) {
	cfg := DefaultDasherConfig()

	w, h := cfg.Player.Sheet.FrameSize()
	if w != 128 || h != 128 {
		t.Errorf("scarfy frame = %vx%v, want 128x128", w, h)
	}
	w, h = cfg.Nebulae.Sheet.FrameSize()
	if w != 100 || h != 100 {
		t.Errorf("nebula frame = %vx%v, want 100x100", w, h)
	}
	w, h = SheetConfig{Width: 10, Height: 10}.FrameSize()
	if w != 10 || h != 10 {
		t.Errorf("zero grid should count as 1x1, got %vx%v", w, h)
	}
}

func TestLoadCustomTOMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dasher.toml")
	data := "[physics]\ngravity = 500\n\n[nebulae]\ncount = 3\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDasher(path)
	if err != nil {
		t.Fatalf("LoadDasher() failed: %v", err)
	}
	if cfg.Physics.Gravity != 500 {
		t.Errorf("gravity = %v, want 500", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpVelocity != -600 {
		t.Errorf("jump velocity should keep default, got %v", cfg.Physics.JumpVelocity)
	}
	if cfg.Nebulae.Count != 3 || cfg.Nebulae.Spacing != 300 {
		t.Errorf("nebulae = %+v", cfg.Nebulae)
	}
}

func TestLoadCustomYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "axe.yaml")
	if err := os.WriteFile(path, []byte("axe:\n  speed: 300\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAxe(path)
	if err != nil {
		t.Fatalf("LoadAxe() failed: %v", err)
	}
	if cfg.Axe.Speed != 300 || cfg.Axe.Size != 50 {
		t.Errorf("axe = %+v", cfg.Axe)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadAxe(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("this is = = not toml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDasher(bad); err == nil {
		t.Error("malformed TOML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("player:\n  radius: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAxe(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("zero radius should be ErrInvalid, got %v", err)
	}
}

func TestLocalConfigsDirectory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "axe.toml"), []byte("[player]\nspeed = 120\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAxe("")
	if err != nil {
		t.Fatalf("LoadAxe() failed: %v", err)
	}
	if cfg.Player.Speed != 120 {
		t.Errorf("player speed = %v, want 120 from ./configs", cfg.Player.Speed)
	}
	if got := ResolvePath("axe", ""); got != filepath.Join("configs", "axe.toml") {
		t.Errorf("ResolvePath() = %q", got)
	}
	if got := ResolvePath("dasher", ""); got != "" {
		t.Errorf("ResolvePath() without a file = %q, want embedded", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DasherConfig)
	}{
		{"zero world", func(c *DasherConfig) { c.World.Width = 0 }},
		{"no nebulae", func(c *DasherConfig) { c.Nebulae.Count = 0 }},
		{"bad sheet", func(c *DasherConfig) { c.Player.Sheet.Columns = 0 }},
		{"max frame past sheet", func(c *DasherConfig) { c.Player.MaxFrame = 6 }},
		{"negative interval", func(c *DasherConfig) { c.Nebulae.FrameInterval = -1 }},
		{"zero layer width", func(c *DasherConfig) { c.Backdrop[1].Width = 0 }},
	}

	if err := DefaultDasherConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if err := DefaultAxeConfig().Validate(); err != nil {
		t.Fatalf("default axe config should be valid: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultDasherConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		in      string
		enabled bool
		level   float64
	}{
		{"easy", true, 0.0},
		{"normal", true, 0.3},
		{"hard", true, 0.7},
		{"fixed", false, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			cfg := DefaultAxeConfig()
			ApplyAxePreset(&cfg, ParsePreset(tt.in))
			if cfg.Difficulty.Enabled != tt.enabled || cfg.Difficulty.InitialLevel != tt.level {
				t.Errorf("difficulty = %+v", cfg.Difficulty)
			}
		})
	}

	if ParsePreset("impossible") != "" {
		t.Error("unknown preset should parse to empty")
	}
	cfg := DefaultDasherConfig()
	ApplyDasherPreset(&cfg, "")
	if cfg.Difficulty != DefaultDasherConfig().Difficulty {
		t.Error("empty preset should leave the config untouched")
	}
}

func TestDifficultySpeed(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})

	if got := dm.Speed(100, 0, 0); got != 100 {
		t.Errorf("Speed at score 0 = %v, want 100", got)
	}
	if got := dm.Speed(100, 5, 0); got != 150 {
		t.Errorf("Speed at score 5 = %v, want 150", got)
	}
	if got := dm.Speed(100, 50, 0); got != 200 {
		t.Errorf("Speed past max = %v, want 200", got)
	}

	off := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.7,
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	})
	if off.IsEnabled() {
		t.Error("disabled manager reports enabled")
	}
	if got := off.Speed(100, 50, 50); got != 100 {
		t.Errorf("disabled manager should keep base speed, got %v", got)
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "axe.yaml")
	if err := os.WriteFile(path, []byte("axe:\n  speed: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	// Unrelated files in the same directory are ignored
	other := filepath.Join(filepath.Dir(path), "other.yaml")
	if err := os.WriteFile(other, []byte("x: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("axe:\n  speed: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if got != w.Path() {
			t.Errorf("event for %q, want %q", got, w.Path())
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("no event within 2s")
	}
}

func TestWatcherCloseClosesChannels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dasher.toml")
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Error("Events should be closed")
	}
	// Second close is a no-op
	_ = w.Close()
}
