package world

// FOVRadius is the default field of view radius (Chebyshev distance).
// Symmetric in all 8 directions.
const FOVRadius = 4

// VisiblePoints calculates which tiles are visible from a center point within
// a radius. Uses a symmetric Chebyshev square with Bresenham line-of-sight so
// coverage is equal in all directions. Walls block visibility but are
// themselves visible.
func VisiblePoints(f *Floor, center Point, radius int) []Point {
	if f == nil || !f.InBounds(center.X, center.Y) {
		return nil
	}

	visible := []Point{center}

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if chebyshev(dx, dy) > radius {
				continue
			}
			p := Point{X: center.X + dx, Y: center.Y + dy}
			if !f.InBounds(p.X, p.Y) {
				continue
			}
			if hasLineOfSight(f, center, p) {
				visible = append(visible, p)
			}
		}
	}
	return visible
}

func chebyshev(dx, dy int) int {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// hasLineOfSight returns true if there's a clear path from a to b.
// Uses Bresenham's line algorithm; vision is blocked by wall tiles, but the
// endpoint itself may be a wall.
func hasLineOfSight(f *Floor, a, b Point) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y

	if dx == 0 && dy == 0 {
		return true
	}

	absDx := dx
	if absDx < 0 {
		absDx = -absDx
	}
	absDy := dy
	if absDy < 0 {
		absDy = -absDy
	}

	var stepX, stepY int
	if dx > 0 {
		stepX = 1
	} else if dx < 0 {
		stepX = -1
	}
	if dy > 0 {
		stepY = 1
	} else if dy < 0 {
		stepY = -1
	}

	x, y := a.X, a.Y

	if absDx >= absDy {
		err := 2*absDy - absDx
		for x != b.X {
			x += stepX
			if err > 0 {
				y += stepY
				err -= 2 * absDx
			}
			err += 2 * absDy

			if x == b.X && y == b.Y {
				break
			}
			tile := f.Tile(x, y)
			if tile == nil || tile.IsWall() {
				return false
			}
		}
	} else {
		err := 2*absDx - absDy
		for y != b.Y {
			y += stepY
			if err > 0 {
				x += stepX
				err -= 2 * absDy
			}
			err += 2 * absDx

			if x == b.X && y == b.Y {
				break
			}
			tile := f.Tile(x, y)
			if tile == nil || tile.IsWall() {
				return false
			}
		}
	}

	return true
}
