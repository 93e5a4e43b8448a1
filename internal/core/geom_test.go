package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(5, 5, 15, 15),
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(15, 0, 25, 10),
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 15, 10, 25),
			expected: false,
		},
		{
			name:     "touching edge counts",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10, 0, 20, 10),
			expected: true,
		},
		{
			name:     "contained box",
			a:        NewBox(0, 0, 20, 20),
			b:        NewBox(5, 5, 6, 6),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxAround(t *testing.T) {
	b := BoxAround(305, 350, 100, 10)

	if b.Left != 255 || b.Right != 355 || b.Top != 345 || b.Bottom != 355 {
		t.Errorf("BoxAround() = %+v, expected {255 345 355 355}", b)
	}
	if b.Width() != 100 || b.Height() != 10 {
		t.Errorf("size = %vx%v, expected 100x10", b.Width(), b.Height())
	}
	if b.CenterX() != 305 || b.CenterY() != 350 {
		t.Errorf("center = (%v, %v), expected (305, 350)", b.CenterX(), b.CenterY())
	}
}

func TestBoxTranslate(t *testing.T) {
	b := NewBox(10, 20, 30, 40).Translate(-5, 5)
	if b != NewBox(5, 25, 25, 45) {
		t.Errorf("Translate() = %+v", b)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
		wantErr  bool
	}{
		{"red", ColorRed, false},
		{"White", ColorWhite, false},
		{"#FF0000", ColorRed, false},
		{"#FFFFFF", ColorWhite, false},
		{"black", ColorBlack, false},
		{"chartreuse", ColorDefault, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.expected {
				t.Errorf("ParseColor(%q) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}
