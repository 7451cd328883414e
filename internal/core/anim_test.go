package core

import "testing"

func TestSpriteAnimAdvancesByWholeIntervals(t *testing.T) {
	const interval = 0.25 // exactly representable

	tests := []struct {
		name     string
		maxFrame int
		flips    int
	}{
		{"below max", 5, 3},
		{"exact wrap", 5, 6},
		{"several laps", 7, 19},
		{"single frame sheet", 0, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewSpriteAnim(128, 128, interval)
			for i := 0; i < tc.flips; i++ {
				if !a.Advance(interval, tc.maxFrame) {
					t.Fatalf("flip %d did not fire", i)
				}
			}

			expected := tc.flips % (tc.maxFrame + 1)
			if a.Frame != expected {
				t.Errorf("Frame = %d, expected %d", a.Frame, expected)
			}
			if a.Elapsed != 0 {
				t.Errorf("Elapsed should reset after a flip, got %f", a.Elapsed)
			}
		})
	}
}

func TestSpriteAnimAccumulatesBelowInterval(t *testing.T) {
	a := NewSpriteAnim(100, 100, 0.5)

	if a.Advance(0.125, 7) {
		t.Error("Advance below interval should not flip")
	}
	if a.Advance(0.25, 7) {
		t.Error("Advance below interval should not flip")
	}
	if a.Frame != 0 {
		t.Errorf("Frame = %d, expected 0", a.Frame)
	}
	if a.Elapsed != 0.375 {
		t.Errorf("Elapsed = %f, expected 0.375", a.Elapsed)
	}
	if a.Src.X != 0 {
		t.Errorf("Src.X must not move without a flip, got %f", a.Src.X)
	}

	// Crossing the interval flips once and drops the overshoot
	if !a.Advance(0.25, 7) {
		t.Error("Advance crossing the interval should flip")
	}
	if a.Frame != 1 || a.Elapsed != 0 {
		t.Errorf("after flip Frame=%d Elapsed=%f, expected 1 and 0", a.Frame, a.Elapsed)
	}
}

func TestSpriteAnimSourceOffset(t *testing.T) {
	a := NewSpriteAnim(100, 100, 0)

	// Zero interval flips every call; Src shows the frame current at flip time
	wantX := []float64{0, 100, 200, 300, 400, 500, 600, 700, 0, 100}
	for i, want := range wantX {
		a.Advance(0, 7)
		if a.Src.X != want {
			t.Errorf("call %d: Src.X = %f, expected %f", i, a.Src.X, want)
		}
		if a.Frame < 0 || a.Frame > 7 {
			t.Fatalf("Frame %d out of range", a.Frame)
		}
	}
	if a.ShownFrame() != 1 {
		t.Errorf("ShownFrame() = %d, expected 1", a.ShownFrame())
	}
}

func TestSpriteAnimBounds(t *testing.T) {
	a := NewSpriteAnim(128, 128, 1.0/12.0)
	a.Pos = Vec2{X: 192, Y: 252}

	b := a.Bounds()
	if b.Left() != 192 || b.Top() != 252 || b.Right() != 320 || b.Bottom() != 380 {
		t.Errorf("Bounds() = %+v", b)
	}
}
