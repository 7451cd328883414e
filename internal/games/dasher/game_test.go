package dasher

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/dasher-arcade/internal/config"
	"github.com/vovakirdan/dasher-arcade/internal/core"
)

func newTestGame(mutate func(*config.DasherConfig)) *Game {
	cfg := config.DefaultDasherConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	g := NewWithConfig(cfg)
	g.Reset(core.DefaultConfig())
	return g
}

func frame(dt float64, actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Dt = dt
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestGameReset(t *testing.T) {
	g := newTestGame(nil)

	if g.runner.Pos != (core.Vec2{X: 192, Y: 252}) {
		t.Errorf("runner at %+v, want (192, 252)", g.runner.Pos)
	}
	if g.runner.Src.W != 128 || g.runner.Src.H != 128 {
		t.Errorf("runner frame = %vx%v", g.runner.Src.W, g.runner.Src.H)
	}
	if len(g.field.Nebulae) != 10 {
		t.Fatalf("expected 10 nebulae, got %d", len(g.field.Nebulae))
	}
	for i, n := range g.field.Nebulae {
		want := core.Vec2{X: 512 + float64(i)*300, Y: 280}
		if n.Pos != want {
			t.Errorf("nebula %d at %+v, want %+v", i, n.Pos, want)
		}
	}
	if g.field.FinishLine != 3212 {
		t.Errorf("finish line = %v, want 3212", g.field.FinishLine)
	}
	if len(g.backdrop.Layers) != 3 {
		t.Errorf("expected 3 backdrop layers, got %d", len(g.backdrop.Layers))
	}
}

func TestGroundedRunnerHasNoVelocity(t *testing.T) {
	g := newTestGame(nil)

	g.Step(frame(1.0 / 60))
	if !g.body.Grounded || g.body.Velocity != 0 {
		t.Errorf("runner should rest on the ground, grounded=%v velocity=%v", g.body.Grounded, g.body.Velocity)
	}
	if g.body.Y != 252 {
		t.Errorf("runner y = %v, want 252", g.body.Y)
	}
}

func TestJumpAppliesImpulse(t *testing.T) {
	g := newTestGame(nil)

	g.Step(frame(1.0/60, core.ActionJump))
	if g.body.Velocity != -600 {
		t.Errorf("velocity = %v, want -600", g.body.Velocity)
	}
	if !approx(g.runner.Pos.Y, 242) {
		t.Errorf("runner y = %v, want 242", g.runner.Pos.Y)
	}

	// A second press mid-air does nothing beyond gravity
	g.Step(frame(1.0/60, core.ActionJump))
	if g.body.Velocity <= -600 {
		t.Errorf("mid-air jump should be ignored, velocity = %v", g.body.Velocity)
	}
}

func TestRunnerAnimatesOnlyOnGround(t *testing.T) {
	g := newTestGame(nil)

	g.Step(frame(0.1))
	g.Step(frame(0.1))
	if g.runner.Frame != 2 || g.runner.Src.X != 128 {
		t.Errorf("grounded runner frame=%d src.x=%v, want 2/128", g.runner.Frame, g.runner.Src.X)
	}

	g.Step(frame(0.1, core.ActionJump))
	frameBefore, srcBefore := g.runner.Frame, g.runner.Src.X
	g.Step(frame(0.1))
	g.Step(frame(0.1))
	if g.body.Grounded {
		t.Fatal("runner should still be airborne")
	}
	if g.runner.Frame != frameBefore || g.runner.Src.X != srcBefore {
		t.Error("airborne runner should not animate")
	}
}

func TestOverlapCollides(t *testing.T) {
	g := newTestGame(nil)

	// Hitbox centre lands inside the runner
	g.field.Nebulae[0].Pos.X = 192
	g.Step(frame(1.0 / 60))

	st := g.State()
	if st.Outcome != core.OutcomeCollided || !st.GameOver {
		t.Fatalf("outcome = %v, want collided", st.Outcome)
	}

	x := g.field.Nebulae[1].Pos.X
	g.Step(frame(1.0 / 60))
	if g.field.Nebulae[1].Pos.X != x {
		t.Error("nebulae should stop after the collision")
	}

	dl := g.Scene()
	last := dl.Cmds[len(dl.Cmds)-1]
	if last.Kind != core.DrawText || last.Text != GameOverText {
		t.Errorf("scene should end with the game over text, got %+v", last)
	}
}

func TestReachingFinishLineWins(t *testing.T) {
	g := newTestGame(nil)
	runnerRight := g.runner.Bounds().Right()

	for i := 0; i < 2000 && !g.State().GameOver; i++ {
		jump := false
		if g.body.OnGround() {
			for n := range g.field.Nebulae {
				cx := g.field.Hitbox(n).X
				if cx > runnerRight && cx <= runnerRight+40 {
					jump = true
				}
			}
		}
		if jump {
			g.Step(frame(1.0/60, core.ActionJump))
		} else {
			g.Step(frame(1.0 / 60))
		}
	}

	st := g.State()
	if st.Outcome != core.OutcomeWon {
		t.Fatalf("outcome = %v after %d ticks, want won", st.Outcome, g.tickCount)
	}
	if st.Score != 10 {
		t.Errorf("score = %d, want all 10 nebulae", st.Score)
	}
	if g.runner.Pos.X < g.field.FinishLine {
		t.Error("win should only latch once the finish line is passed")
	}

	s := core.NewScreen(80, 24)
	g.Render(s)
	if !strings.Contains(s.String(), WinText) {
		t.Error("rendered screen should contain the win text")
	}
}

func TestStandingStillLoses(t *testing.T) {
	g := newTestGame(nil)

	for i := 0; i < 2000 && !g.State().GameOver; i++ {
		g.Step(frame(1.0 / 60))
	}
	if g.State().Outcome != core.OutcomeCollided {
		t.Errorf("outcome = %v, want collided", g.State().Outcome)
	}
	if g.State().Score != 0 {
		t.Errorf("score = %d, want 0", g.State().Score)
	}
}

func TestCollisionBeatsWin(t *testing.T) {
	g := newTestGame(func(c *config.DasherConfig) { c.Nebulae.Count = 1 })

	// The only nebula sits on the runner and the finish line is already passed
	g.field.Nebulae[0].Pos.X = 150
	g.field.FinishLine = 150
	g.Step(frame(1.0 / 60))

	if g.State().Outcome != core.OutcomeCollided {
		t.Errorf("outcome = %v, want collided", g.State().Outcome)
	}
}

func TestPauseFreezesEverything(t *testing.T) {
	g := newTestGame(nil)

	g.Step(frame(0.1, core.ActionPause))
	x := g.field.Nebulae[0].Pos.X
	offset := g.backdrop.Layers[0].Scroll.Offset
	g.Step(frame(0.1))

	if g.field.Nebulae[0].Pos.X != x || g.backdrop.Layers[0].Scroll.Offset != offset {
		t.Error("paused game should not move")
	}
}

func TestResetRestoresStart(t *testing.T) {
	g := newTestGame(nil)
	g.field.Nebulae[0].Pos.X = 192
	g.Step(frame(1.0 / 60))

	g.Reset(core.DefaultConfig())
	if g.State().GameOver || g.score != 0 || g.tickCount != 0 {
		t.Errorf("reset left state %+v", g.State())
	}
	if g.field.Nebulae[0].Pos.X != 512 {
		t.Errorf("reset should rebuild the field, nebula 0 at %v", g.field.Nebulae[0].Pos.X)
	}
}

func TestBackdropScrollsAndWraps(t *testing.T) {
	b := NewBackdrop(config.DefaultDasherConfig().Backdrop)

	b.Advance(1)
	want := []float64{-20, -40, -80}
	for i, l := range b.Layers {
		if !approx(l.Scroll.Offset, want[i]) {
			t.Errorf("layer %s offset = %v, want %v", l.Name, l.Scroll.Offset, want[i])
		}
	}

	b.Advance(6)
	// Near layer passed -512 and wrapped; the others have not
	if b.Layers[2].Scroll.Offset != 0 {
		t.Errorf("near layer should wrap to 0, got %v", b.Layers[2].Scroll.Offset)
	}
	if !approx(b.Layers[0].Scroll.Offset, -140) || !approx(b.Layers[1].Scroll.Offset, -280) {
		t.Errorf("far/mid offsets = %v/%v", b.Layers[0].Scroll.Offset, b.Layers[1].Scroll.Offset)
	}

	dl := core.NewDrawList(512, 380, core.ColorWhite)
	b.Draw(dl, 380)
	if len(dl.Cmds) != 3 || dl.Cmds[0].Sheet != "textures/far-buildings.png" {
		t.Errorf("backdrop draw commands = %+v", dl.Cmds)
	}
	if dl.Cmds[2].Box.W != 512 {
		t.Errorf("second tile should start one scaled texture width later, got %v", dl.Cmds[2].Box.W)
	}
}

func TestFieldHitboxAndClearing(t *testing.T) {
	f := NewField(config.DefaultDasherConfig().Nebulae, 512, 380)

	hb := f.Hitbox(0)
	if hb != core.BoxAt(562, 330, 0, 0) {
		t.Errorf("padded hitbox = %+v, want a point at (562, 330)", hb)
	}

	f.Move(-200, 2)
	if f.Nebulae[0].Pos.X != 112 || f.FinishLine != 2812 {
		t.Errorf("after move: nebula 0 at %v, finish %v", f.Nebulae[0].Pos.X, f.FinishLine)
	}
	if got := f.Cleared(192); got != 1 {
		t.Errorf("Cleared() = %d, want 1", got)
	}
	if !f.Collides(core.BoxAt(100, 300, 100, 100)) {
		t.Error("box over the first hitbox should collide")
	}
	if f.Collides(core.BoxAt(0, 0, 50, 50)) {
		t.Error("box away from every hitbox should not collide")
	}

	f.Animate(0)
	f.Animate(0)
	if f.Nebulae[0].Src.X != 100 || f.Nebulae[0].Frame != 2 {
		t.Errorf("zero-interval animation should flip every tick, src.x=%v frame=%d", f.Nebulae[0].Src.X, f.Nebulae[0].Frame)
	}
}

func TestResetKeepsTuningWhenFileBreaks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	write := func(body string) {
		t.Helper()
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	g := New()
	write("nebulae:\n  velocity: -350\n")
	g.Reset(core.DefaultConfig())
	if err := g.ConfigError(); err != nil {
		t.Fatalf("valid file rejected: %v", err)
	}
	if g.cfg.Nebulae.Velocity != -350 {
		t.Fatalf("Nebulae.Velocity = %v, want the file's value", g.cfg.Nebulae.Velocity)
	}

	write("nebulae:\n  count: 0\n")
	g.Reset(core.DefaultConfig())
	if g.ConfigError() == nil {
		t.Error("broken file should be reported")
	}
	if g.cfg.Nebulae.Velocity != -350 {
		t.Errorf("Nebulae.Velocity = %v, broken file should keep the previous tuning", g.cfg.Nebulae.Velocity)
	}

	fresh := New()
	fresh.Reset(core.DefaultConfig())
	if fresh.ConfigError() == nil {
		t.Error("first load of a broken file should be reported")
	}
	if fresh.cfg.World.Width <= 0 {
		t.Error("first load of a broken file should fall back to the defaults")
	}
}

func TestSceneSpritesStayInsideSheets(t *testing.T) {
	g := newTestGame(nil)
	sheets := map[string]config.SheetConfig{
		g.cfg.Player.Sheet.Path:  g.cfg.Player.Sheet,
		g.cfg.Nebulae.Sheet.Path: g.cfg.Nebulae.Sheet,
	}

	for i := 0; i < 300 && !g.State().GameOver; i++ {
		g.Step(frame(1.0 / 60))
		for _, cmd := range g.Scene().Cmds {
			if cmd.Kind != core.DrawSprite {
				continue
			}
			sheet, ok := sheets[cmd.Sheet]
			if !ok {
				t.Fatalf("sprite from unknown sheet %q", cmd.Sheet)
			}
			src := cmd.Src
			if src.W <= 0 || src.H <= 0 || src.X < 0 || src.Y < 0 ||
				src.Right() > float64(sheet.Width) || src.Bottom() > float64(sheet.Height) {
				t.Fatalf("tick %d: source %+v outside %s (%dx%d)", i, src, cmd.Sheet, sheet.Width, sheet.Height)
			}
		}
	}
}
