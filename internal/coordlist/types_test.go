package coordlist

import "testing"

func TestCoordString(t *testing.T) {
	if got := (Coord{45, 0, 2048}).String(); got != "[45,0,2048]" {
		t.Errorf("String() = %q, want %q", got, "[45,0,2048]")
	}
}

func TestCoordWithin(t *testing.T) {
	bounds := Coord{3, 3, 3}
	tests := []struct {
		c    Coord
		want bool
	}{
		{Coord{0, 0, 0}, true},
		{Coord{2, 2, 2}, true},
		{Coord{3, 0, 0}, false},
		{Coord{0, 0, 3}, false},
		{bounds, false},
	}
	for _, tt := range tests {
		if got := tt.c.Within(bounds); got != tt.want {
			t.Errorf("%s.Within(%s) = %v, want %v", tt.c, bounds, got, tt.want)
		}
	}
}
