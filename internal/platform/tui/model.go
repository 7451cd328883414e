package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dasher-arcade/internal/config"
	"github.com/vovakirdan/dasher-arcade/internal/core"
	"github.com/vovakirdan/dasher-arcade/internal/registry"
	"github.com/vovakirdan/dasher-arcade/internal/storage"
)

// ConfigChangedMsg is sent when the watched config file was written.
type ConfigChangedMsg struct {
	Path string
}

// configReporter is implemented by games that load a tuning file on Reset.
type configReporter interface {
	ConfigError() error
}

// Options are optional collaborators of a game Model.
type Options struct {
	// Watcher restarts the game whenever its config file changes.
	Watcher *config.Watcher

	// Logger receives diagnostics. It must not write to the terminal the
	// game is drawn on; nil discards everything.
	Logger *log.Logger

	// AllowBack lets B/Esc leave a paused or finished game instead of quitting,
	// used when the game runs inside a menu session.
	AllowBack bool
}

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	keyMapper  *KeyMapper
	tracker    *core.KeyTracker
	sighted    []core.Action // Actions seen since the last tick
	lastTick   time.Time
	gameState  core.GameState
	highScore  int
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for the current playthrough
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, gameRows(cfg.ScreenH)),
		store:     store,
		config:    cfg,
		opts:      opts,
		keyMapper: NewKeyMapper(),
		tracker:   core.NewKeyTracker(),
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.highScore = m.loadHighScore()
	return m
}

// gameRows leaves the last terminal row for the status bar.
func gameRows(h int) int {
	return max(h-1, 1)
}

// Init starts the tick loop and, when configured, the config watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickRate), m.waitForConfig())
}

// waitForConfig blocks on the watcher until the next change.
func (m Model) waitForConfig() tea.Cmd {
	w := m.opts.Watcher
	if w == nil {
		return nil
	}
	logger := m.opts.Logger
	return func() tea.Msg {
		for {
			select {
			case path, ok := <-w.Events:
				if !ok {
					return nil
				}
				return ConfigChangedMsg{Path: path}
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				logger.Warn("config watcher", "error", err)
			}
		}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, gameRows(msg.Height))
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case ConfigChangedMsg:
		m.opts.Logger.Info("config changed, restarting", "game", m.game.ID(), "path", msg.Path)
		m.restart()
		if r, ok := m.game.(configReporter); ok && r.ConfigError() != nil {
			m.opts.Logger.Warn("config rejected, keeping previous tuning", "game", m.game.ID(), "error", r.ConfigError())
		}
		return m, m.waitForConfig()
	}

	return m, nil
}

// handleKey records the action for the next tick.
// Terminals deliver auto-repeat presses but no releases; the tracker
// turns the sightings into press and hold state.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionBack && m.opts.AllowBack && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, nil
	}
	if action != core.ActionNone {
		m.sighted = append(m.sighted, action)
	}
	return m, nil
}

// handleTick turns the collected key sightings into an input frame and
// advances the game by the time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := tickDelta(m.lastTick, now, m.config.TickSeconds())
	m.lastTick = now

	in := m.tracker.Frame(m.sighted, dt)
	in.Dt = dt
	m.sighted = m.sighted[:0]

	if in.Has(core.ActionRestart) && m.gameState.GameOver {
		m.restart()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(in)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
	}

	return m, tickCmd(m.config.TickRate)
}

// restart begins a new playthrough with freshly loaded config.
func (m *Model) restart() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.tracker.Reset()
	m.sighted = m.sighted[:0]
	m.scoreSaved = false
}

// saveScore records the finished playthrough once.
func (m *Model) saveScore() {
	m.scoreSaved = true
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Outcome.String()); err != nil {
		m.opts.Logger.Warn("could not save score", "game", m.game.ID(), "error", err)
		return
	}
	m.highScore = max(m.highScore, m.gameState.Score)
}

func (m Model) loadHighScore() int {
	if m.store == nil {
		return 0
	}
	high, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.opts.Logger.Warn("could not load high score", "game", m.game.ID(), "error", err)
		return 0
	}
	return high
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "path", path, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + StatusBar(m.config.ScreenW, m.game.Title(), m.gameState, m.highScore)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
