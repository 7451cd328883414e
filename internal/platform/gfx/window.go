// Package gfx runs arcade games in a desktop window using Ebitengine.
// It draws the same core.DrawList the terminal rasterizes, with textures
// for sprites and background layers.
package gfx

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/dasher-arcade/internal/core"
	"github.com/vovakirdan/dasher-arcade/internal/registry"
	"github.com/vovakirdan/dasher-arcade/internal/storage"
)

// Options configure a window run.
type Options struct {
	Scale  float64 // Window size relative to the world size, default 1
	Store  *storage.Store
	Logger *log.Logger
}

// Window adapts a registry.Game to ebiten.Game.
type Window struct {
	game     registry.Game
	config   core.RuntimeConfig
	textures map[string]*ebiten.Image
	titles   *text.GoTextFaceSource
	hud      text.Face
	store    *storage.Store
	logger   *log.Logger

	width, height int
	state         core.GameState
	scoreSaved    bool
}

// keyBinding maps physical keys to one action.
type keyBinding struct {
	action core.Action
	keys   []ebiten.Key
}

var bindings = []keyBinding{
	{core.ActionLeft, []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}},
	{core.ActionJump, []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp}},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP}},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}},
}

// New prepares a window for game. Every texture the game draws must be in
// textures, keyed by the sheet name used in its draw list.
func New(game registry.Game, textures map[string]image.Image, cfg core.RuntimeConfig, opts Options) (*Window, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	titles, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("gfx: load font: %w", err)
	}

	w := &Window{
		game:     game,
		config:   cfg,
		textures: make(map[string]*ebiten.Image, len(textures)),
		titles:   titles,
		hud:      text.NewGoXFace(basicfont.Face7x13),
		store:    opts.Store,
		logger:   opts.Logger,
	}
	for key, img := range textures {
		w.textures[key] = ebiten.NewImageFromImage(img)
	}

	game.Reset(cfg)
	w.state = game.State()

	dl := game.Scene()
	w.width, w.height = int(dl.Width), int(dl.Height)
	if w.width <= 0 || w.height <= 0 {
		return nil, fmt.Errorf("gfx: %s has an empty world (%dx%d)", game.ID(), w.width, w.height)
	}
	return w, nil
}

// Run opens the window and blocks until it is closed or the player quits.
func Run(game registry.Game, textures map[string]image.Image, cfg core.RuntimeConfig, opts Options) error {
	w, err := New(game, textures, cfg, opts)
	if err != nil {
		return err
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(float64(w.width)*scale), int(float64(w.height)*scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(max(cfg.TickRate, 1))

	w.logger.Info("window opened", "game", game.ID(), "width", w.width, "height", w.height, "tps", ebiten.TPS())
	err = ebiten.RunGame(w)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// input reads the keyboard into one frame. Ebitengine reports real key
// state, so presses and holds need no tracking.
func (w *Window) input() core.InputFrame {
	in := core.NewInputFrame()
	in.Dt = 1 / float64(ebiten.TPS())
	for _, b := range bindings {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				in.Set(b.action)
			}
			if ebiten.IsKeyPressed(k) {
				in.Hold(b.action)
			}
		}
	}
	return in
}

// Update advances the game by one tick.
func (w *Window) Update() error {
	in := w.input()
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	if in.Has(core.ActionRestart) && w.state.GameOver {
		w.logger.Debug("restart", "game", w.game.ID())
		w.game.Reset(w.config)
		w.state = w.game.State()
		w.scoreSaved = false
		return nil
	}

	w.state = w.game.Step(in).State
	if w.state.GameOver && !w.scoreSaved {
		w.scoreSaved = true
		w.logger.Info("playthrough ended", "game", w.game.ID(), "outcome", w.state.Outcome, "score", w.state.Score)
		if w.store != nil {
			if _, err := w.store.SaveScore(w.game.ID(), w.state.Score, w.state.Outcome.String()); err != nil {
				w.logger.Warn("could not save score", "error", err)
			}
		}
	}
	return nil
}

// Draw paints the game's draw list.
func (w *Window) Draw(screen *ebiten.Image) {
	dl := w.game.Scene()
	screen.Fill(rgba(dl.Clear))

	for _, cmd := range dl.Cmds {
		switch cmd.Kind {
		case core.DrawFillRect:
			b := cmd.Box
			vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), rgba(cmd.Color), false)
		case core.DrawCircle:
			b := cmd.Box
			vector.DrawFilledCircle(screen, float32(b.X+b.W/2), float32(b.Y+b.H/2), float32(b.W/2), rgba(cmd.Color), true)
		case core.DrawSprite:
			w.drawSprite(screen, cmd)
		case core.DrawLayer:
			w.drawLayer(screen, cmd)
		case core.DrawText:
			w.drawText(screen, cmd, dl.Width)
		}
	}

	w.drawHUD(screen)
}

func (w *Window) drawSprite(screen *ebiten.Image, cmd core.DrawCmd) {
	tex, ok := w.textures[cmd.Sheet]
	if !ok {
		b := cmd.Box
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), rgba(cmd.Color), false)
		return
	}
	src := cmd.Src
	r := image.Rect(int(src.X), int(src.Y), int(src.X+src.W), int(src.Y+src.H))
	frame, ok := tex.SubImage(r).(*ebiten.Image)
	if !ok {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(cmd.Box.X, cmd.Box.Y)
	screen.DrawImage(frame, op)
}

func (w *Window) drawLayer(screen *ebiten.Image, cmd core.DrawCmd) {
	tex, ok := w.textures[cmd.Sheet]
	if !ok {
		return
	}
	scale := cmd.Scale
	if scale == 0 {
		scale = 1
	}
	for _, x := range []float64{cmd.Box.X, cmd.Box.X + cmd.Box.W} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x, 0)
		screen.DrawImage(tex, op)
	}
}

func (w *Window) drawText(screen *ebiten.Image, cmd core.DrawCmd, worldW float64) {
	op := &text.DrawOptions{}
	op.ColorScale.ScaleWithColor(rgba(cmd.Color))
	op.LineSpacing = cmd.TextSize
	if cmd.Centered {
		op.GeoM.Translate(worldW/2, cmd.Box.Y)
		op.PrimaryAlign = text.AlignCenter
	} else {
		op.GeoM.Translate(cmd.Box.X, cmd.Box.Y)
	}
	text.Draw(screen, cmd.Text, &text.GoTextFace{Source: w.titles, Size: cmd.TextSize}, op)
}

// drawHUD prints score and pause state in the top-left corner.
func (w *Window) drawHUD(screen *ebiten.Image) {
	line := fmt.Sprintf("score %d  fps %.0f", w.state.Score, math.Round(ebiten.ActualFPS()))
	switch {
	case w.state.GameOver:
		line += "  R restart  Q quit"
	case w.state.Paused:
		line += "  PAUSED"
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(4, 4)
	op.ColorScale.ScaleWithColor(colornames.Dimgray)
	text.Draw(screen, line, w.hud, op)
}

// Layout keeps the logical screen at the world size; Ebitengine scales it
// to the window.
func (w *Window) Layout(int, int) (int, int) {
	return w.width, w.height
}

var colors = map[core.Color]color.RGBA{
	core.ColorDefault:       colornames.Black,
	core.ColorRed:           colornames.Red,
	core.ColorGreen:         colornames.Green,
	core.ColorYellow:        colornames.Gold,
	core.ColorBlue:          colornames.Blue,
	core.ColorMagenta:       colornames.Magenta,
	core.ColorCyan:          colornames.Darkcyan,
	core.ColorWhite:         colornames.White,
	core.ColorBrightRed:     colornames.Orangered,
	core.ColorBrightGreen:   colornames.Lime,
	core.ColorBrightYellow:  colornames.Yellow,
	core.ColorBrightBlue:    colornames.Dodgerblue,
	core.ColorBrightMagenta: colornames.Violet,
	core.ColorBrightCyan:    colornames.Cyan,
	core.ColorBrightWhite:   colornames.White,
	core.ColorOrange:        colornames.Orange,
	core.ColorGray:          colornames.Gray,
}

func rgba(c core.Color) color.RGBA {
	if v, ok := colors[c]; ok {
		return v
	}
	return colornames.Black
}
