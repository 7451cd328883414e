package core

// ScrollLayer is one horizontally repeating background layer.
// The layer is drawn twice, side by side, starting at Offset.
type ScrollLayer struct {
	Width  float64 // Source texture width in world units
	Scale  float64 // Draw scale applied to the texture
	Speed  float64 // Leftward speed in units/second
	Offset float64 // Current X of the first copy
}

// Advance moves the layer left by Speed*dt and wraps it back to 0 once it
// has scrolled past twice the texture width. Overshoot is dropped.
// Reports whether the layer wrapped.
func (l *ScrollLayer) Advance(dt float64) bool {
	l.Offset -= l.Speed * dt
	if l.Offset <= -2*l.Width {
		l.Offset = 0
		return true
	}
	return false
}

// Positions returns the X positions of the two tiled copies.
func (l ScrollLayer) Positions() (float64, float64) {
	scale := l.Scale
	if scale == 0 {
		scale = 1
	}
	return l.Offset, l.Offset + l.Width*scale
}
