package dasher

import (
	"github.com/vovakirdan/dasher-arcade/internal/config"
	"github.com/vovakirdan/dasher-arcade/internal/core"
)

// Field is the row of nebulae rolling towards the player, plus the finish
// line that trails the last one.
type Field struct {
	Nebulae    []core.SpriteAnim
	FinishLine float64 // Win threshold on the player's X
	Padding    float64 // Hitbox inset
	MaxFrame   int
}

// NewField lays out cfg.Count nebulae on the ground, starting just past the
// right edge of a world worldW wide and spaced cfg.Spacing apart.
func NewField(cfg config.DasherNebulae, worldW, worldH float64) *Field {
	frameW, frameH := cfg.Sheet.FrameSize()

	f := &Field{
		Nebulae:  make([]core.SpriteAnim, cfg.Count),
		Padding:  cfg.Padding,
		MaxFrame: cfg.MaxFrame,
	}
	for i := range f.Nebulae {
		n := core.NewSpriteAnim(frameW, frameH, cfg.FrameInterval)
		n.Pos = core.Vec2{X: worldW + float64(i)*cfg.Spacing, Y: worldH - frameH}
		f.Nebulae[i] = n
	}
	if len(f.Nebulae) > 0 {
		f.FinishLine = f.Nebulae[len(f.Nebulae)-1].Pos.X
	}
	return f
}

// Move shifts every nebula and the finish line by velocity*dt.
func (f *Field) Move(velocity, dt float64) {
	for i := range f.Nebulae {
		f.Nebulae[i].Pos.X += velocity * dt
	}
	f.FinishLine += velocity * dt
}

// Animate advances every nebula's animation.
func (f *Field) Animate(dt float64) {
	for i := range f.Nebulae {
		f.Nebulae[i].Advance(dt, f.MaxFrame)
	}
}

// Hitbox returns the padded collision box of nebula i.
func (f *Field) Hitbox(i int) core.Box {
	return f.Nebulae[i].Bounds().Inset(f.Padding)
}

// Collides reports whether any nebula's hitbox touches player.
func (f *Field) Collides(player core.Box) bool {
	hit := false
	for i := range f.Nebulae {
		hit = hit || core.Collides(f.Hitbox(i), player)
	}
	return hit
}

// Cleared counts nebulae whose hitbox is entirely behind x.
func (f *Field) Cleared(x float64) int {
	n := 0
	for i := range f.Nebulae {
		if f.Hitbox(i).Right() < x {
			n++
		}
	}
	return n
}
