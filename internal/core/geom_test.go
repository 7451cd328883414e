package core

import "testing"

func TestBoxCollides(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        BoxAt(100, 0, 50, 50),
			b:        BoxAt(120, 10, 50, 50),
			expected: true,
		},
		{
			name:     "touching edge counts",
			a:        BoxAt(0, 0, 10, 10),
			b:        BoxAt(10, 0, 10, 10),
			expected: true,
		},
		{
			name:     "touching corner counts",
			a:        BoxAt(0, 0, 10, 10),
			b:        BoxAt(10, 10, 10, 10),
			expected: true,
		},
		{
			name:     "contained box",
			a:        BoxAt(0, 0, 20, 20),
			b:        BoxAt(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "separated: a above b",
			a:        BoxAt(0, 0, 10, 10),
			b:        BoxAt(0, 10.5, 10, 10),
			expected: false,
		},
		{
			name:     "separated: a below b",
			a:        BoxAt(0, 20.5, 10, 10),
			b:        BoxAt(0, 0, 10, 20),
			expected: false,
		},
		{
			name:     "separated: a left of b",
			a:        BoxAt(0, 0, 10, 10),
			b:        BoxAt(10.5, 0, 10, 10),
			expected: false,
		},
		{
			name:     "separated: a right of b",
			a:        BoxAt(30.5, 0, 10, 10),
			b:        BoxAt(0, 0, 30, 10),
			expected: false,
		},
		{
			name:     "zero-size box inside",
			a:        BoxAt(5, 5, 0, 0),
			b:        BoxAt(0, 0, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collides(tc.a, tc.b); got != tc.expected {
				t.Errorf("Collides() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := Collides(tc.b, tc.a); got != tc.expected {
				t.Errorf("Collides() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := BoxAt(100, 0, 50, 50)
	if b.Left() != 100 || b.Right() != 150 || b.Top() != 0 || b.Bottom() != 50 {
		t.Errorf("edges = (%v, %v, %v, %v), expected (100, 150, 0, 50)",
			b.Left(), b.Right(), b.Top(), b.Bottom())
	}

	c := BoxAround(200, 200, 25, 25)
	if c.Left() != 175 || c.Right() != 225 || c.Top() != 175 || c.Bottom() != 225 {
		t.Errorf("BoxAround edges = (%v, %v, %v, %v), expected (175, 225, 175, 225)",
			c.Left(), c.Right(), c.Top(), c.Bottom())
	}
}

func TestBoxInset(t *testing.T) {
	b := BoxAt(0, 0, 200, 120).Inset(50)
	if b.X != 50 || b.Y != 50 || b.W != 100 || b.H != 20 {
		t.Errorf("Inset(50) = %+v, expected {50 50 100 20}", b)
	}

	// Padding larger than half the size collapses to the centre
	c := BoxAt(0, 0, 80, 80).Inset(50)
	if c.W != 0 || c.H != 0 || c.X != 40 || c.Y != 40 {
		t.Errorf("Inset(50) on 80x80 = %+v, expected {40 40 0 0}", c)
	}
	if c.Left() > c.Right() || c.Top() > c.Bottom() {
		t.Error("Inset must keep left <= right and top <= bottom")
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}
