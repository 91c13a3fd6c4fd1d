// Package explore tracks exploration progress: which portals the agent has
// taken, how much of each floor is revealed, and where the nearest frontier
// lies.
package explore

import (
	"github.com/zyedidia/generic/mapset"

	"dungeonpilot/pkg/engine/path"
	"dungeonpilot/pkg/engine/world"
	"dungeonpilot/pkg/game/scout"
)

// Portal target kinds
const (
	KindUnvisitedPortal    = "unvisited_portal"
	KindPortalToUnexplored = "portal_to_unexplored"
)

// Explorer maintains portal-visitation bookkeeping and frontier detection
// over the agent's visible maps.
type Explorer struct {
	maps           map[int]*world.Floor
	finder         *path.Finder
	visitedPortals mapset.Set[world.Coord]
}

// New creates an Explorer over the given visible maps
func New(maps map[int]*world.Floor, finder *path.Finder) *Explorer {
	return &Explorer{
		maps:           maps,
		finder:         finder,
		visitedPortals: mapset.New[world.Coord](),
	}
}

// MarkPortalVisited records a portal endpoint as visited. The paired
// destination endpoint is marked too, so the agent does not oscillate back
// through the same gate.
func (e *Explorer) MarkPortalVisited(c world.Coord) {
	e.visitedPortals.Put(c)

	floor := e.maps[c.Floor]
	if floor == nil {
		return
	}
	tile := floor.Tile(c.X, c.Y)
	if tile.IsPortal() {
		e.visitedPortals.Put(world.Coord{X: c.X, Y: c.Y, Floor: tile.PortalTo})
	}
}

// IsPortalVisited returns true if the portal endpoint has been visited
func (e *Explorer) IsPortalVisited(c world.Coord) bool {
	return e.visitedPortals.Has(c)
}

// FindUnvisitedPortals returns explored portals the agent has not taken,
// excluding the tile the player stands on.
func (e *Explorer) FindUnvisitedPortals(playerPos world.Coord) []scout.Target {
	var targets []scout.Target
	for floorID, floor := range e.maps {
		if floor == nil {
			continue
		}
		floor.ForEachTile(func(x, y int, tile *world.Tile) {
			if !tile.Explored || !tile.IsPortal() {
				return
			}
			c := world.Coord{X: x, Y: y, Floor: floorID}
			if e.visitedPortals.Has(c) || c == playerPos {
				return
			}
			targets = append(targets, scout.Target{
				Coord:    c,
				Kind:     KindUnvisitedPortal,
				Distance: world.CrossFloorDistance(playerPos, c),
			})
		})
	}
	return targets
}

// FindPortalsToUnexplored returns explored portals whose destination floor is
// not fully explored.
func (e *Explorer) FindPortalsToUnexplored(playerPos world.Coord) []scout.Target {
	var targets []scout.Target
	for floorID, floor := range e.maps {
		if floor == nil {
			continue
		}
		floor.ForEachTile(func(x, y int, tile *world.Tile) {
			if !tile.Explored || !tile.IsPortal() {
				return
			}
			if e.IsFloorFullyExplored(tile.PortalTo) {
				return
			}
			c := world.Coord{X: x, Y: y, Floor: floorID}
			targets = append(targets, scout.Target{
				Coord:    c,
				Kind:     KindPortalToUnexplored,
				Distance: world.CrossFloorDistance(playerPos, c),
			})
		})
	}
	return targets
}

// IsFloorFullyExplored returns true if every non-wall tile of the floor has
// been revealed. Unknown floors are not fully explored.
func (e *Explorer) IsFloorFullyExplored(floorID int) bool {
	floor := e.maps[floorID]
	if floor == nil {
		return false
	}
	complete := true
	floor.ForEachTile(func(x, y int, tile *world.Tile) {
		if tile.Type != world.TileWall && !tile.Explored {
			complete = false
		}
	})
	return complete
}

// FloorExplorationRatio returns explored non-wall tiles over total non-wall
// tiles, or 1.0 for a floor with no non-wall tiles.
func (e *Explorer) FloorExplorationRatio(floorID int) float64 {
	floor := e.maps[floorID]
	if floor == nil {
		return 0
	}
	total := 0
	explored := 0
	floor.ForEachTile(func(x, y int, tile *world.Tile) {
		if tile.Type == world.TileWall {
			return
		}
		total++
		if tile.Explored {
			explored++
		}
	})
	if total == 0 {
		return 1.0
	}
	return float64(explored) / float64(total)
}

// FindExplorationPath returns a path to the nearest exploration frontier on
// the player's floor: an explored, walkable tile cardinal-adjacent to an
// unexplored tile, ties broken by shortest resulting path. If the current
// floor has no reachable frontier it falls back to the nearest explored,
// unvisited portal to a not-fully-explored floor, then to any explored,
// unvisited portal; portal paths step through to the paired endpoint.
// Returns nil when there is nothing left to explore.
func (e *Explorer) FindExplorationPath(playerPos world.Coord) []world.Coord {
	if best := e.pathToNearestFrontier(playerPos); best != nil {
		return best
	}

	candidates := e.FindPortalsToUnexplored(playerPos)
	if len(candidates) == 0 {
		candidates = e.FindUnvisitedPortals(playerPos)
	}
	scout.SortByDistance(candidates)

	for _, target := range candidates {
		floor := e.maps[target.Floor]
		if floor == nil {
			continue
		}
		tile := floor.Tile(target.X, target.Y)
		if !tile.IsPortal() {
			continue
		}
		// Path through the gate so the walk ends on the destination floor.
		dest := world.Coord{X: target.X, Y: target.Y, Floor: tile.PortalTo}
		if p := e.finder.FindPathBFS(e.maps, playerPos, dest, true); p != nil {
			return p
		}
		if p := e.finder.FindPathBFS(e.maps, playerPos, target.Coord, true); p != nil {
			return p
		}
	}
	return nil
}

func (e *Explorer) pathToNearestFrontier(playerPos world.Coord) []world.Coord {
	floor := e.maps[playerPos.Floor]
	if floor == nil {
		return nil
	}

	var frontiers []world.Point
	floor.ForEachTile(func(x, y int, tile *world.Tile) {
		if !tile.Explored || tile.Type == world.TileWall {
			return
		}
		for _, dir := range world.AllDirections() {
			dx, dy := dir.Delta()
			adj := floor.Tile(x+dx, y+dy)
			if adj != nil && !adj.Explored {
				frontiers = append(frontiers, world.Point{X: x, Y: y})
				return
			}
		}
	})

	var best []world.Coord
	for _, frontier := range frontiers {
		if frontier == playerPos.Point() {
			continue
		}
		goal := world.Coord{X: frontier.X, Y: frontier.Y, Floor: playerPos.Floor}
		p := e.finder.FindPathBFS(e.maps, playerPos, goal, true)
		if p == nil {
			continue
		}
		if best == nil || len(p) < len(best) {
			best = p
		}
	}
	return best
}
