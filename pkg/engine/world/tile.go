package world

// TileType is the terrain class of a tile.
type TileType int

// Tile types
const (
	TileFloor TileType = iota
	TileWall
	TilePortal
)

// String returns the string representation of a tile type
func (t TileType) String() string {
	switch t {
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	case TilePortal:
		return "portal"
	default:
		return "unknown"
	}
}

// Tile represents a single tile in a floor grid.
//
// Explored carries the fog-of-war state: an unexplored tile yields no
// occupant or terrain information to anything reading a visible map.
type Tile struct {
	Type     TileType
	Explored bool

	// Occupants. Monster holds only the monster's name; anything more must
	// be inferred from the name (fair play).
	Item    *Item
	Monster string

	// PortalTo is the destination floor ID. Only meaningful when
	// Type == TilePortal.
	PortalTo int
}

// IsWall returns true for wall tiles
func (t *Tile) IsWall() bool {
	return t != nil && t.Type == TileWall
}

// IsPortal returns true for portal tiles
func (t *Tile) IsPortal() bool {
	return t != nil && t.Type == TilePortal
}

// HasMonster returns true if a monster occupies the tile
func (t *Tile) HasMonster() bool {
	return t != nil && t.Monster != ""
}
