// Package dasher implements Dapper Dasher, a side-scrolling runner.
// The runner stays in place while nebulae roll in from the right; jumping
// over every one of them until the finish line passes wins the run.
package dasher

import (
	"fmt"

	"github.com/vovakirdan/dasher-arcade/internal/config"
	"github.com/vovakirdan/dasher-arcade/internal/core"
	"github.com/vovakirdan/dasher-arcade/internal/registry"
)

// End-of-run messages
const (
	GameOverText = "Game Over!"
	WinText      = "You Win!"
)

// Terminal art for the runner, indexed by animation frame parity.
var runnerArt = [2][]string{
	{
		" ▄█▄ ",
		" ▀█▀ ",
		"▄███▄",
		" █ █ ",
		"▀   ▀",
	},
	{
		" ▄█▄ ",
		" ▀█▀ ",
		"▄███▄",
		" ▐▌  ",
		" ▀▀  ",
	},
}

var nebulaArt = [2][]string{
	{
		" .*. ",
		"*(@)*",
		" '*' ",
	},
	{
		" *.* ",
		".(@).",
		" *'* ",
	},
}

// Game implements the Dapper Dasher game logic.
type Game struct {
	runner     core.SpriteAnim
	body       core.Body
	field      *Field
	backdrop   *Backdrop
	outcome    core.Outcome
	score      int // Nebulae cleared
	paused     bool
	tickCount  int
	runtime    core.RuntimeConfig
	cfg        config.DasherConfig
	fixed      *config.DasherConfig // Config injected by NewWithConfig, skips loading
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

// New creates a new Dapper Dasher game instance.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg instead of loading one.
func NewWithConfig(cfg config.DasherConfig) *Game {
	return &Game{fixed: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dasher"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dapper Dasher"
}

// Config returns the configuration of the current run.
func (g *Game) Config() config.DasherConfig {
	return g.cfg
}

// Help summarises the controls.
func (g *Game) Help() string {
	return "Space to jump the nebulae and reach the finish"
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

	w, h := g.cfg.World.Width, g.cfg.World.Height
	frameW, frameH := g.cfg.Player.Sheet.FrameSize()

	g.runner = core.NewSpriteAnim(frameW, frameH, g.cfg.Player.FrameInterval)
	g.runner.Pos = core.Vec2{X: w/2 - frameW/2, Y: h - frameH}
	g.body = core.Body{
		Y:            g.runner.Pos.Y,
		GroundY:      h - frameH,
		Gravity:      g.cfg.Physics.Gravity,
		JumpVelocity: g.cfg.Physics.JumpVelocity,
	}

	g.field = NewField(g.cfg.Nebulae, w, h)
	g.backdrop = NewBackdrop(g.cfg.Backdrop)

	g.outcome = core.OutcomePlaying
	g.score = 0
	g.paused = false
	g.tickCount = 0
}

// load reads the tuning file. A broken file keeps the previous tuning, or
// the defaults on the first load, and is reported by ConfigError.
func (g *Game) load() {
	cfg, err := config.LoadDasher(configPath)
	g.configErr = err
	if err != nil {
		if g.loaded {
			return
		}
		cfg = config.DefaultDasherConfig()
	}
	if difficultyPreset != "" {
		config.ApplyDasherPreset(&cfg, difficultyPreset)
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

	g.backdrop.Advance(dt)

	// Ground check, jump and vertical integration
	g.body.Step(dt, in.Has(core.ActionJump))

	g.field.Move(g.nebulaVelocity(), dt)

	g.runner.Pos.Y = g.body.Y
	if g.body.Grounded {
		g.runner.Advance(dt, g.cfg.Player.MaxFrame)
	}
	g.field.Animate(dt)

	player := g.runner.Bounds()
	collided := g.field.Collides(player)
	won := g.runner.Pos.X >= g.field.FinishLine
	g.outcome = g.outcome.Resolve(collided, won)

	if g.outcome == core.OutcomeWon {
		g.score = len(g.field.Nebulae)
	} else {
		g.score = g.field.Cleared(player.Left())
	}

	return core.StepResult{State: g.State()}
}

// nebulaVelocity is the configured velocity scaled by the current difficulty.
func (g *Game) nebulaVelocity() float64 {
	return g.difficulty.Speed(g.cfg.Nebulae.Velocity, g.score, g.tickCount)
}

// Scene builds the frame in world units.
func (g *Game) Scene() *core.DrawList {
	w, h := g.cfg.World.Width, g.cfg.World.Height
	dl := core.NewDrawList(w, h, core.ColorWhite)

	g.backdrop.Draw(dl, h)

	switch g.outcome {
	case core.OutcomeCollided:
		dl.Text(w/4, h/2, 40, GameOverText, core.ColorBrightWhite, false)
	case core.OutcomeWon:
		dl.Text(w/4, h/2, 40, WinText, core.ColorBrightWhite, false)
	default:
		sheet := g.cfg.Nebulae.Sheet.Path
		for _, n := range g.field.Nebulae {
			dl.SpriteArt(sheet, n, core.ColorBrightMagenta, nebulaArt[n.ShownFrame()%2])
		}
		dl.SpriteArt(g.cfg.Player.Sheet.Path, g.runner, core.ColorBrightCyan, runnerArt[g.runner.ShownFrame()%2])
	}
	return dl
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.Scene().Rasterize(dst)

	dst.DrawTextColor(1, 0, fmt.Sprintf(" Cleared: %d/%d ", g.score, len(g.field.Nebulae)), core.ColorYellow)
	if g.outcome.Terminal() {
		dst.DrawTextCentered(dst.Height()-1, "R restart · Q quit")
		return
	}
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
	registry.Register("dasher", func() registry.Game {
		return New()
	})
}
