package world

import (
	"testing"
)

func TestDirectionDelta_NorthDecreasesY(t *testing.T) {
	dx, dy := North.Delta()
	if dx != 0 || dy != -1 {
		t.Errorf("North.Delta() = (%d, %d), want (0, -1)", dx, dy)
	}
	dx, dy = South.Delta()
	if dx != 0 || dy != 1 {
		t.Errorf("South.Delta() = (%d, %d), want (0, 1)", dx, dy)
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, dir := range AllDirections() {
		if dir.Opposite().Opposite() != dir {
			t.Errorf("%v.Opposite().Opposite() != %v", dir, dir)
		}
	}
	if North.Opposite() != South {
		t.Error("North.Opposite() != South")
	}
	if East.Opposite() != West {
		t.Error("East.Opposite() != West")
	}
}

func TestDirectionBetween(t *testing.T) {
	a := Point{X: 3, Y: 3}

	cases := []struct {
		b    Point
		want Direction
	}{
		{Point{X: 3, Y: 2}, North},
		{Point{X: 3, Y: 4}, South},
		{Point{X: 4, Y: 3}, East},
		{Point{X: 2, Y: 3}, West},
	}
	for _, tc := range cases {
		got, ok := DirectionBetween(a, tc.b)
		if !ok || got != tc.want {
			t.Errorf("DirectionBetween(%v, %v) = %v, %v; want %v, true", a, tc.b, got, ok, tc.want)
		}
	}

	if _, ok := DirectionBetween(a, Point{X: 4, Y: 4}); ok {
		t.Error("DirectionBetween accepted a diagonal step")
	}
	if _, ok := DirectionBetween(a, a); ok {
		t.Error("DirectionBetween accepted a zero-length step")
	}
}

func TestCrossFloorDistance(t *testing.T) {
	a := Coord{X: 0, Y: 0, Floor: 0}
	b := Coord{X: 3, Y: 4, Floor: 2}

	if got := CrossFloorDistance(a, b); got != 3+4+20 {
		t.Errorf("CrossFloorDistance = %d, want 27", got)
	}
	if got := CrossFloorDistance(a, Coord{X: 1, Y: 1, Floor: 0}); got != 2 {
		t.Errorf("same-floor distance = %d, want 2", got)
	}
}
