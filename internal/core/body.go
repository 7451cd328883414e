package core

// Body is a vertically moving player under constant gravity.
// Positive Y points down, so jumps use a negative velocity.
type Body struct {
	Y        float64 // Top edge in world units
	Velocity float64 // Vertical velocity in units/second
	Grounded bool    // Result of the last ground check

	GroundY      float64 // Y at or below which the body stands on the ground
	Gravity      float64 // Acceleration in units/second^2
	JumpVelocity float64 // Velocity applied by a jump (negative = up)
}

// OnGround reports whether the body is at or below ground level.
func (b Body) OnGround() bool {
	return b.Y >= b.GroundY
}

// Step advances the body by dt seconds.
// The ground check runs first: on the ground velocity is zeroed, in the air
// gravity is integrated. A jump is only honoured while grounded and takes
// effect in the same step. Position is integrated last with the final velocity.
// Reports whether a jump started.
func (b *Body) Step(dt float64, jump bool) bool {
	if b.OnGround() {
		b.Velocity = 0
		b.Grounded = true
	} else {
		b.Velocity += b.Gravity * dt
		b.Grounded = false
	}

	jumped := false
	if jump && b.Grounded {
		b.Velocity = b.JumpVelocity
		jumped = true
	}

	b.Y += b.Velocity * dt
	return jumped
}
