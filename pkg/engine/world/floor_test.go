package world

import (
	"testing"
)

func TestParseFloor(t *testing.T) {
	f := ParseFloor([]string{
		"###",
		"#.1",
		"###",
	})

	if f.Width() != 3 || f.Height() != 3 {
		t.Fatalf("dimensions = %dx%d, want 3x3", f.Width(), f.Height())
	}
	if !f.Tile(0, 0).IsWall() {
		t.Error("(0,0) should be a wall")
	}
	if f.Tile(1, 1).IsWall() {
		t.Error("(1,1) should be floor")
	}

	portal := f.Tile(2, 1)
	if !portal.IsPortal() {
		t.Fatal("(2,1) should be a portal")
	}
	if portal.PortalTo != 1 {
		t.Errorf("portal destination = %d, want 1", portal.PortalTo)
	}
	if !portal.Explored {
		t.Error("parsed tiles should start explored")
	}
}

func TestIsWalkable(t *testing.T) {
	f := ParseFloor([]string{
		"##",
		".2",
	})

	if f.IsWalkable(0, 0) {
		t.Error("wall should not be walkable")
	}
	if !f.IsWalkable(0, 1) {
		t.Error("floor should be walkable")
	}
	if !f.IsWalkable(1, 1) {
		t.Error("portal should be walkable")
	}
	if f.IsWalkable(-1, 0) || f.IsWalkable(5, 5) {
		t.Error("out of bounds should not be walkable")
	}
}

func TestVisiblePoints_WallsBlockSight(t *testing.T) {
	f := ParseFloor([]string{
		".....",
		".....",
		"..#..",
		".....",
		".....",
	})

	visible := map[Point]bool{}
	for _, p := range VisiblePoints(f, Point{X: 2, Y: 0}, 4) {
		visible[p] = true
	}

	if !visible[Point{X: 2, Y: 0}] {
		t.Error("center must always be visible")
	}
	if !visible[Point{X: 2, Y: 2}] {
		t.Error("the wall itself should be visible")
	}
	if visible[Point{X: 2, Y: 4}] {
		t.Error("tile directly behind the wall should be hidden")
	}
}

func TestVisiblePoints_RadiusBound(t *testing.T) {
	f := NewFloor(20, 20)
	f.ForEachTile(func(x, y int, tile *Tile) { tile.Type = TileFloor })

	center := Point{X: 10, Y: 10}
	for _, p := range VisiblePoints(f, center, 3) {
		if chebyshev(p.X-center.X, p.Y-center.Y) > 3 {
			t.Errorf("point %v outside radius 3", p)
		}
	}
}
