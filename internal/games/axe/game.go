// Package axe implements the Axe dodging game.
// A circle slides left and right while a square axe sweeps up and down;
// touching the axe ends the run.
package axe

import (
	"fmt"

	"github.com/vovakirdan/dasher-arcade/internal/config"
	"github.com/vovakirdan/dasher-arcade/internal/core"
	"github.com/vovakirdan/dasher-arcade/internal/registry"
)

// Visual characters for terminal rendering
const (
	PlayerChar = '●'
	AxeChar    = '█'
)

// GameOverText is shown once the axe has hit the player.
const GameOverText = "Game Over!"

// Game implements the Axe game logic.
type Game struct {
	player     core.Vec2 // Circle centre
	axe        core.Box  // Axe square
	direction  float64   // +1 moving down, -1 moving up
	outcome    core.Outcome
	score      int // Axe bounces survived
	paused     bool
	tickCount  int
	runtime    core.RuntimeConfig
	cfg        config.AxeConfig
	fixed      *config.AxeConfig // Config injected by NewWithConfig, skips loading
	loaded     bool
	configErr  error // Last load failure, nil once a load succeeds
	difficulty *config.DifficultyManager
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a new Axe game instance.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg instead of loading one.
func NewWithConfig(cfg config.AxeConfig) *Game {
	return &Game{fixed: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "axe"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Axe"
}

// Help summarises the controls.
func (g *Game) Help() string {
	return "A/D or Left/Right to dodge the axe"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.fixed != nil {
		g.cfg = *g.fixed
	} else {
		g.load()
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.player = core.Vec2{X: g.cfg.Player.X, Y: g.cfg.Player.Y}
	g.axe = core.BoxAt(g.cfg.Axe.X, g.cfg.Axe.Y, g.cfg.Axe.Size, g.cfg.Axe.Size)
	g.direction = 1
	g.outcome = core.OutcomePlaying
	g.score = 0
	g.paused = false
	g.tickCount = 0
}

// load reads the tuning file. A broken file keeps the previous tuning, or
// the defaults on the first load, and is reported by ConfigError.
func (g *Game) load() {
	cfg, err := config.LoadAxe(configPath)
	g.configErr = err
	if err != nil {
		if g.loaded {
			return
		}
		cfg = config.DefaultAxeConfig()
	}
	if difficultyPreset != "" {
		config.ApplyAxePreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.loaded = true
}

// ConfigError returns why the last Reset could not load the tuning file.
func (g *Game) ConfigError() error {
	return g.configErr
}

// Step advances the game by in.Dt seconds.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.outcome.Terminal() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := in.Dt
	if dt <= 0 {
		dt = g.runtime.TickSeconds()
	}
	g.tickCount++

	// Both bodies move before the test, so a hit is judged on the positions
	// that are drawn this frame rather than the previous ones.
	g.moveAxe(dt)
	g.movePlayer(in, dt)

	collided := core.Collides(g.axe, g.playerBox())
	g.outcome = g.outcome.Resolve(collided, false)

	return core.StepResult{State: g.State()}
}

// moveAxe sweeps the axe and reverses it once it leaves the window vertically.
func (g *Game) moveAxe(dt float64) {
	speed := g.difficulty.Speed(g.cfg.Axe.Speed, g.score, g.tickCount)
	g.axe.Y += g.direction * speed * dt
	if g.axe.Y > g.cfg.World.Height || g.axe.Y < 0 {
		g.direction = -g.direction
		g.score++
	}
}

// movePlayer slides the circle while a direction is held.
// The centre may overshoot an edge by one step, as the edge is only checked before moving.
func (g *Game) movePlayer(in core.InputFrame, dt float64) {
	step := g.cfg.Player.Speed * dt
	if in.Holding(core.ActionRight) && g.player.X < g.cfg.World.Width {
		g.player.X += step
	}
	if in.Holding(core.ActionLeft) && g.player.X > 0 {
		g.player.X -= step
	}
}

// playerBox is the circle's bounding square, used for collision.
func (g *Game) playerBox() core.Box {
	r := g.cfg.Player.Radius
	return core.BoxAround(g.player.X, g.player.Y, r, r)
}

// Scene builds the frame in world units.
func (g *Game) Scene() *core.DrawList {
	dl := core.NewDrawList(g.cfg.World.Width, g.cfg.World.Height, core.ColorWhite)

	if g.outcome == core.OutcomeCollided {
		dl.Text(g.cfg.World.Width/2, g.cfg.World.Height*4/9, 20, GameOverText, core.ColorRed, false)
		return dl
	}

	dl.Circle(g.player.X, g.player.Y, g.cfg.Player.Radius, core.ColorBlue, PlayerChar)
	dl.Rect(g.axe, core.ColorRed, AxeChar)
	return dl
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.Scene().Rasterize(dst)

	if g.outcome.Terminal() {
		dst.DrawTextCentered(dst.Height()-1, "R restart · Q quit")
		return
	}

	dst.DrawTextColor(1, 0, fmt.Sprintf(" Bounces: %d ", g.score), core.ColorYellow)
	if g.paused {
		dst.DrawPanel(dst.Height()/2, "PAUSED", core.ColorYellow)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.outcome.Terminal(),
		Paused:   g.paused,
		Outcome:  g.outcome,
	}
}

// Register the game
func init() {
	registry.Register("axe", func() registry.Game {
		return New()
	})
}
