// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// Point is a 2D grid coordinate.
type Point struct {
	X int
	Y int
}

// Coord is a 3D position: a grid coordinate plus the floor it lives on.
type Coord struct {
	X     int
	Y     int
	Floor int
}

// Point returns the 2D part of the coordinate.
func (c Coord) Point() Point {
	return Point{X: c.X, Y: c.Y}
}

// Manhattan returns the Manhattan distance between two points.
func Manhattan(a, b Point) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// CrossFloorDistance estimates the travel distance between two coordinates.
// Cross-floor movement is heavily penalized: 10 steps per floor of separation.
func CrossFloorDistance(a, b Coord) int {
	df := a.Floor - b.Floor
	if df < 0 {
		df = -df
	}
	return Manhattan(a.Point(), b.Point()) + 10*df
}
