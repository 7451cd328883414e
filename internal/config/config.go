// Package config provides YAML/TOML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// WorldConfig is the size of the simulated window in world units (pixels).
type WorldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// AxeConfig contains all configuration for the Axe game.
type AxeConfig struct {
	World      WorldConfig      `yaml:"world" toml:"world"`
	Player     AxePlayer        `yaml:"player" toml:"player"`
	Axe        AxeBlade         `yaml:"axe" toml:"axe"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// AxePlayer defines the player circle.
type AxePlayer struct {
	X      float64 `yaml:"x" toml:"x"`           // Centre X
	Y      float64 `yaml:"y" toml:"y"`           // Centre Y
	Radius float64 `yaml:"radius" toml:"radius"` // Circle radius
	Speed  float64 `yaml:"speed" toml:"speed"`   // Horizontal speed (units/s)
}

// AxeBlade defines the swinging axe square.
type AxeBlade struct {
	X     float64 `yaml:"x" toml:"x"`         // Left edge
	Y     float64 `yaml:"y" toml:"y"`         // Top edge
	Size  float64 `yaml:"size" toml:"size"`   // Side length
	Speed float64 `yaml:"speed" toml:"speed"` // Vertical speed (units/s)
}

// DasherConfig contains all configuration for the Dapper Dasher game.
type DasherConfig struct {
	World      WorldConfig      `yaml:"world" toml:"world"`
	Physics    DasherPhysics    `yaml:"physics" toml:"physics"`
	Player     DasherPlayer     `yaml:"player" toml:"player"`
	Nebulae    DasherNebulae    `yaml:"nebulae" toml:"nebulae"`
	Backdrop   []LayerConfig    `yaml:"backdrop" toml:"backdrop"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// DasherPhysics defines vertical motion parameters.
type DasherPhysics struct {
	Gravity      float64 `yaml:"gravity" toml:"gravity"`             // units/s^2, positive = down
	JumpVelocity float64 `yaml:"jump_velocity" toml:"jump_velocity"` // units/s, negative = up
}

// SheetConfig describes a sprite sheet texture and its frame grid.
type SheetConfig struct {
	Path    string `yaml:"path" toml:"path"`
	Width   int    `yaml:"width" toml:"width"`     // Texture width in pixels
	Height  int    `yaml:"height" toml:"height"`   // Texture height in pixels
	Columns int    `yaml:"columns" toml:"columns"` // Frames per row
	Rows    int    `yaml:"rows" toml:"rows"`       // Rows of frames
}

// FrameSize returns the size of one frame.
func (s SheetConfig) FrameSize() (float64, float64) {
	cols, rows := s.Columns, s.Rows
	if cols <= 0 {
		cols = 1
	}
	if rows <= 0 {
		rows = 1
	}
	return float64(s.Width / cols), float64(s.Height / rows)
}

// DasherPlayer defines the runner sprite.
type DasherPlayer struct {
	Sheet         SheetConfig `yaml:"sheet" toml:"sheet"`
	FrameInterval float64     `yaml:"frame_interval" toml:"frame_interval"` // Seconds per frame
	MaxFrame      int         `yaml:"max_frame" toml:"max_frame"`
}

// DasherNebulae defines the obstacle field.
type DasherNebulae struct {
	Sheet         SheetConfig `yaml:"sheet" toml:"sheet"`
	Count         int         `yaml:"count" toml:"count"`
	Spacing       float64     `yaml:"spacing" toml:"spacing"`   // Horizontal gap between spawn positions
	Velocity      float64     `yaml:"velocity" toml:"velocity"` // Horizontal velocity (negative = left)
	Padding       float64     `yaml:"padding" toml:"padding"`   // Hitbox inset on every side
	FrameInterval float64     `yaml:"frame_interval" toml:"frame_interval"`
	MaxFrame      int         `yaml:"max_frame" toml:"max_frame"`
}

// LayerConfig defines one parallax background layer.
type LayerConfig struct {
	Name  string  `yaml:"name" toml:"name"`
	Path  string  `yaml:"path" toml:"path"`
	Width float64 `yaml:"width" toml:"width"` // Texture width; the layer wraps at -2*width
	Scale float64 `yaml:"scale" toml:"scale"`
	Speed float64 `yaml:"speed" toml:"speed"` // Leftward speed (units/s)
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // Added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset; unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies a difficulty config based on a preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *DifficultyConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Enabled = false
	default:
		cfg.Enabled = true
		cfg.InitialLevel = InitialLevelForPreset(preset)
	}
}

// Validate checks that the Axe config describes a playable game.
func (c AxeConfig) Validate() error {
	if err := c.World.validate(); err != nil {
		return err
	}
	if c.Player.Radius <= 0 {
		return fmt.Errorf("%w: player.radius must be positive", ErrInvalid)
	}
	if c.Axe.Size <= 0 {
		return fmt.Errorf("%w: axe.size must be positive", ErrInvalid)
	}
	if c.Player.Speed < 0 || c.Axe.Speed < 0 {
		return fmt.Errorf("%w: speeds must not be negative", ErrInvalid)
	}
	return nil
}

// Validate checks that the Dasher config describes a playable game.
func (c DasherConfig) Validate() error {
	if err := c.World.validate(); err != nil {
		return err
	}
	if err := c.Player.Sheet.validate("player.sheet"); err != nil {
		return err
	}
	if err := c.Nebulae.Sheet.validate("nebulae.sheet"); err != nil {
		return err
	}
	if c.Nebulae.Count <= 0 {
		return fmt.Errorf("%w: nebulae.count must be positive", ErrInvalid)
	}
	if c.Player.FrameInterval < 0 || c.Nebulae.FrameInterval < 0 {
		return fmt.Errorf("%w: frame intervals must not be negative", ErrInvalid)
	}
	if c.Player.MaxFrame < 0 || c.Player.MaxFrame >= c.Player.Sheet.Columns {
		return fmt.Errorf("%w: player.max_frame must be within the sheet columns", ErrInvalid)
	}
	if c.Nebulae.MaxFrame < 0 || c.Nebulae.MaxFrame >= c.Nebulae.Sheet.Columns {
		return fmt.Errorf("%w: nebulae.max_frame must be within the sheet columns", ErrInvalid)
	}
	for i, l := range c.Backdrop {
		if l.Width <= 0 {
			return fmt.Errorf("%w: backdrop[%d].width must be positive", ErrInvalid, i)
		}
	}
	return nil
}

func (w WorldConfig) validate() error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("%w: world size must be positive, got %vx%v", ErrInvalid, w.Width, w.Height)
	}
	return nil
}

func (s SheetConfig) validate(field string) error {
	if s.Width <= 0 || s.Height <= 0 || s.Columns <= 0 || s.Rows <= 0 {
		return fmt.Errorf("%w: %s needs positive width, height, columns and rows", ErrInvalid, field)
	}
	return nil
}
