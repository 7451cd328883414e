package config

import (
	_ "embed"
)

//go:embed defaults/axe.yaml
var defaultAxeYAML []byte

//go:embed defaults/dasher.yaml
var defaultDasherYAML []byte

// DefaultAxeConfig returns the default Axe configuration.
func DefaultAxeConfig() AxeConfig {
	return AxeConfig{
		World: WorldConfig{Width: 800, Height: 450},
		Player: AxePlayer{
			X:      200,
			Y:      200,
			Radius: 25,
			Speed:  600,
		},
		Axe: AxeBlade{
			X:     400,
			Y:     0,
			Size:  50,
			Speed: 600,
		},
		Difficulty: DifficultyConfig{
			Enabled: false,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{SpeedMultiplier: 1.0},
		},
	}
}

// DefaultDasherConfig returns the default Dapper Dasher configuration.
func DefaultDasherConfig() DasherConfig {
	return DasherConfig{
		World: WorldConfig{Width: 512, Height: 380},
		Physics: DasherPhysics{
			Gravity:      1000,
			JumpVelocity: -600,
		},
		Player: DasherPlayer{
			Sheet: SheetConfig{
				Path:    "textures/scarfy.png",
				Width:   768,
				Height:  128,
				Columns: 6,
				Rows:    1,
			},
			FrameInterval: 1.0 / 12.0,
			MaxFrame:      5,
		},
		Nebulae: DasherNebulae{
			Sheet: SheetConfig{
				Path:    "textures/12_nebula_spritesheet.png",
				Width:   800,
				Height:  800,
				Columns: 8,
				Rows:    8,
			},
			Count:         10,
			Spacing:       300,
			Velocity:      -200,
			Padding:       50,
			FrameInterval: 0,
			MaxFrame:      7,
		},
		Backdrop: []LayerConfig{
			{Name: "far", Path: "textures/far-buildings.png", Width: 256, Scale: 2, Speed: 20},
			{Name: "mid", Path: "textures/back-buildings.png", Width: 256, Scale: 2, Speed: 40},
			{Name: "near", Path: "textures/foreground.png", Width: 256, Scale: 2, Speed: 80},
		},
		Difficulty: DifficultyConfig{
			Enabled: false,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{SpeedMultiplier: 0.5},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "axe":
		return defaultAxeYAML
	case "dasher":
		return defaultDasherYAML
	default:
		return nil
	}
}
