package core

import "testing"

func newTestBody(y float64) Body {
	return Body{
		Y:            y,
		GroundY:      252,
		Gravity:      1000,
		JumpVelocity: -600,
	}
}

func TestBodyOnGround(t *testing.T) {
	tests := []struct {
		y        float64
		expected bool
	}{
		{0, false},
		{251.999, false},
		{252, true},
		{260, true},
	}

	for _, tc := range tests {
		b := newTestBody(tc.y)
		if got := b.OnGround(); got != tc.expected {
			t.Errorf("OnGround() at y=%f = %v, expected %v", tc.y, got, tc.expected)
		}
	}
}

func TestBodyRestsOnGround(t *testing.T) {
	b := newTestBody(252)
	b.Velocity = 123

	b.Step(1.0/60.0, false)

	if b.Velocity != 0 {
		t.Errorf("Velocity = %f, expected 0 on ground", b.Velocity)
	}
	if !b.Grounded {
		t.Error("Body should be grounded")
	}
	if b.Y != 252 {
		t.Errorf("Y = %f, expected 252", b.Y)
	}
}

func TestBodyGravity(t *testing.T) {
	b := newTestBody(100)

	b.Step(0.5, false)

	// Semi-implicit Euler: velocity first, then position with the new velocity
	if b.Velocity != 500 {
		t.Errorf("Velocity = %f, expected 500", b.Velocity)
	}
	if b.Y != 350 {
		t.Errorf("Y = %f, expected 350", b.Y)
	}
	if b.Grounded {
		t.Error("Body should be airborne during the step")
	}
}

func TestBodyJumpSameFrame(t *testing.T) {
	b := newTestBody(252)

	if !b.Step(0.5, true) {
		t.Fatal("jump from the ground should start")
	}
	if b.Velocity != -600 {
		t.Errorf("Velocity = %f, expected -600", b.Velocity)
	}
	if b.Y != -48 {
		t.Errorf("Y = %f, expected jump to apply this frame (-48)", b.Y)
	}
}

func TestBodyJumpWhileAirborneIsNoop(t *testing.T) {
	b := newTestBody(100)
	b.Velocity = -200

	if b.Step(0.25, true) {
		t.Error("jump while airborne must not start")
	}
	if b.Velocity != 50 {
		t.Errorf("Velocity = %f, expected gravity only (50)", b.Velocity)
	}
}
