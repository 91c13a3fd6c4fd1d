package world

// Floor represents one level of the dungeon as a grid of tiles with
// encapsulated tile storage.
type Floor struct {
	tiles  [][]Tile // indexed [y][x]
	width  int
	height int
}

// NewFloor creates a floor of the given dimensions filled with wall tiles
func NewFloor(width, height int) *Floor {
	if width <= 0 || height <= 0 {
		panic("Floor dimensions must be positive")
	}
	f := &Floor{width: width, height: height}
	f.tiles = make([][]Tile, height)
	for y := range f.tiles {
		f.tiles[y] = make([]Tile, width)
		for x := range f.tiles[y] {
			f.tiles[y][x] = Tile{Type: TileWall}
		}
	}
	return f
}

// Width returns the number of columns in the floor
func (f *Floor) Width() int {
	return f.width
}

// Height returns the number of rows in the floor
func (f *Floor) Height() int {
	return f.height
}

// InBounds checks if an x/y position is within floor bounds
func (f *Floor) InBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

// Tile returns the tile at the given position, or nil if out of bounds
func (f *Floor) Tile(x, y int) *Tile {
	if f == nil || !f.InBounds(x, y) {
		return nil
	}
	return &f.tiles[y][x]
}

// IsWalkable returns true if the position is in bounds and not a wall
func (f *Floor) IsWalkable(x, y int) bool {
	t := f.Tile(x, y)
	return t != nil && t.Type != TileWall
}

// ForEachTile iterates over all tiles, calling the provided function for each
func (f *Floor) ForEachTile(fn func(x, y int, tile *Tile)) {
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			fn(x, y, &f.tiles[y][x])
		}
	}
}

// RevealAll marks every tile on the floor as explored
func (f *Floor) RevealAll() {
	f.ForEachTile(func(x, y int, tile *Tile) {
		tile.Explored = true
	})
}

// ParseFloor builds a fully-explored floor from a row-per-string sketch.
// '#' is a wall, a digit is a portal to that floor ID, anything else is
// open floor. Intended for tests and fixtures.
func ParseFloor(rows []string) *Floor {
	height := len(rows)
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	f := NewFloor(width, height)
	for y, row := range rows {
		for x, ch := range row {
			tile := f.Tile(x, y)
			tile.Explored = true
			switch {
			case ch == '#':
				tile.Type = TileWall
			case ch >= '0' && ch <= '9':
				tile.Type = TilePortal
				tile.PortalTo = int(ch - '0')
			default:
				tile.Type = TileFloor
			}
		}
	}
	return f
}
