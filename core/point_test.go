package core

import "testing"

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Direction
	}{
		{Up, Down},
		{Down, Up},
		{Left, Right},
		{Right, Left},
	}

	for _, tt := range tests {
		if got := tt.dir.Opposite(); got != tt.want {
			t.Errorf("Expected %v.Opposite() = %v, got %v", tt.dir, tt.want, got)
		}
	}
}

func TestDirectionIsUnit(t *testing.T) {
	for _, d := range Directions() {
		if !d.IsUnit() {
			t.Errorf("Expected %v to be a unit heading", d)
		}
	}

	for _, d := range []Direction{{0, 0}, {1, 1}, {2, 0}, {0, -3}} {
		if d.IsUnit() {
			t.Errorf("Expected %v to be rejected as a heading", d)
		}
	}
}

func TestPointAdd(t *testing.T) {
	p := Point{X: 5, Y: 5}

	if got := p.Add(Right); got != (Point{X: 6, Y: 5}) {
		t.Errorf("Expected (6,5), got %v", got)
	}
	if got := p.Add(Up); got != (Point{X: 5, Y: 4}) {
		t.Errorf("Expected (5,4), got %v", got)
	}
}
