package core

// SpriteAnim is a flip-book animation over one row of a sprite sheet.
// Src is the visible sub-rectangle of the sheet; Pos is where it is drawn.
type SpriteAnim struct {
	Src      Box     // Source rectangle within the sheet (X advances per frame)
	Pos      Vec2    // Top-left draw position in world units
	Frame    int     // Next frame index, 0..maxFrame
	Interval float64 // Seconds between frame flips
	Elapsed  float64 // Seconds accumulated since the last flip
}

// NewSpriteAnim creates an animation at frame 0 for frames of the given size.
func NewSpriteAnim(frameW, frameH, interval float64) SpriteAnim {
	return SpriteAnim{
		Src:      BoxAt(0, 0, frameW, frameH),
		Interval: interval,
	}
}

// Advance accumulates dt and flips to the next frame once Interval is reached.
// The source rectangle only moves when a flip fires; it shows the frame that
// was current at that moment, then Frame moves on and wraps past maxFrame.
// Reports whether a flip happened.
func (a *SpriteAnim) Advance(dt float64, maxFrame int) bool {
	a.Elapsed += dt
	if a.Elapsed < a.Interval {
		return false
	}

	a.Elapsed = 0
	a.Src.X = float64(a.Frame) * a.Src.W
	a.Frame++
	if a.Frame > maxFrame {
		a.Frame = 0
	}
	return true
}

// Bounds returns the on-screen rectangle covered by the current frame.
func (a SpriteAnim) Bounds() Box {
	return BoxAt(a.Pos.X, a.Pos.Y, a.Src.W, a.Src.H)
}

// ShownFrame returns the sheet column currently selected by Src.
func (a SpriteAnim) ShownFrame() int {
	if a.Src.W <= 0 {
		return 0
	}
	return int(a.Src.X / a.Src.W)
}
