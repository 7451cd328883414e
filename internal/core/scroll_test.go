package core

import "testing"

func TestScrollLayerWraps(t *testing.T) {
	tests := []struct {
		name  string
		speed float64
		dt    float64
	}{
		{"far layer at 60fps", 20, 1.0 / 60.0},
		{"mid layer at 60fps", 40, 1.0 / 60.0},
		{"near layer at 30fps", 80, 1.0 / 30.0},
		{"coarse steps", 80, 0.7},
	}

	const width = 256.0

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := ScrollLayer{Width: width, Scale: 2, Speed: tc.speed}

			total := 2 * width / tc.speed
			wrapped := false
			floor := -2*width - tc.speed*tc.dt

			for elapsed := 0.0; elapsed <= total+tc.dt; elapsed += tc.dt {
				if l.Advance(tc.dt) {
					wrapped = true
				}
				if l.Offset < floor {
					t.Fatalf("Offset %f fell below %f", l.Offset, floor)
				}
				if l.Offset > 0 {
					t.Fatalf("Offset %f should never be positive", l.Offset)
				}
			}

			if !wrapped {
				t.Error("layer should wrap at least once after 2W/S seconds")
			}
		})
	}
}

func TestScrollLayerResetsToZero(t *testing.T) {
	l := ScrollLayer{Width: 10, Speed: 100, Offset: -15}

	if !l.Advance(0.1) {
		t.Fatal("expected a wrap")
	}
	if l.Offset != 0 {
		t.Errorf("Offset = %f, expected 0 (overshoot dropped)", l.Offset)
	}
}

func TestScrollLayerPositions(t *testing.T) {
	l := ScrollLayer{Width: 256, Scale: 2, Offset: -100}

	a, b := l.Positions()
	if a != -100 || b != 412 {
		t.Errorf("Positions() = (%f, %f), expected (-100, 412)", a, b)
	}
}
