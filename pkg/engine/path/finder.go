// Package path provides pathfinding over portal-linked floor grids:
// same-floor A*, multi-floor BFS, and a risk-aware weighted variant.
//
// All searches operate on visible maps only and return nil when no path
// exists; callers are expected to try alternate targets rather than treat
// that as an error.
package path

import (
	"github.com/zyedidia/generic/heap"

	"dungeonpilot/pkg/engine/world"
)

// Default tuning for the risk-aware search.
const (
	DefaultDangerRadius = 3
	DefaultRiskWeight   = 10.0
)

// Finder performs searches over a set of per-floor map views.
type Finder struct {
	// DangerRadius is the Manhattan radius around a known monster within
	// which tiles carry an avoidance cost in risk-aware searches.
	DangerRadius int

	// RiskWeight scales the avoidance cost. The effective penalty is
	// RiskWeight / healthRatio, so low health avoids danger harder.
	RiskWeight float64
}

// NewFinder creates a Finder with default risk tuning
func NewFinder() *Finder {
	return &Finder{
		DangerRadius: DefaultDangerRadius,
		RiskWeight:   DefaultRiskWeight,
	}
}

// passable reports whether a step may land on the tile. Walls always block;
// monster-occupied tiles block unless they are the goal (the agent attacks
// into the goal tile instead of stepping on it).
func passable(t *world.Tile, isGoal, requireExplored bool) bool {
	if t == nil || t.IsWall() {
		return false
	}
	if requireExplored && !t.Explored {
		return false
	}
	if t.HasMonster() && !isGoal {
		return false
	}
	return true
}

// FindPathAStar finds a shortest same-floor path from start to goal using A*
// with a Manhattan heuristic and 4-directional movement. The returned path
// includes the start tile. Returns nil if no path exists.
func (f *Finder) FindPathAStar(floor *world.Floor, start, goal world.Point) []world.Point {
	if floor == nil || !floor.InBounds(start.X, start.Y) || !floor.InBounds(goal.X, goal.Y) {
		return nil
	}
	if start == goal {
		return []world.Point{start}
	}

	type node struct {
		pt world.Point
		g  int
		f  int
	}

	open := heap.New[node](func(a, b node) bool { return a.f < b.f })
	gScore := map[world.Point]int{start: 0}
	cameFrom := map[world.Point]world.Point{}
	closed := map[world.Point]bool{}

	open.Push(node{pt: start, g: 0, f: world.Manhattan(start, goal)})

	for open.Size() > 0 {
		cur, _ := open.Pop()
		if closed[cur.pt] {
			continue
		}
		closed[cur.pt] = true

		if cur.pt == goal {
			return reconstructPoints(cameFrom, start, goal)
		}

		for _, dir := range world.AllDirections() {
			dx, dy := dir.Delta()
			next := world.Point{X: cur.pt.X + dx, Y: cur.pt.Y + dy}
			if closed[next] {
				continue
			}
			if !passable(floor.Tile(next.X, next.Y), next == goal, false) {
				continue
			}
			ng := cur.g + 1
			if prev, ok := gScore[next]; !ok || ng < prev {
				gScore[next] = ng
				cameFrom[next] = cur.pt
				open.Push(node{pt: next, g: ng, f: ng + world.Manhattan(next, goal)})
			}
		}
	}
	return nil
}

func reconstructPoints(cameFrom map[world.Point]world.Point, start, goal world.Point) []world.Point {
	var rev []world.Point
	for p := goal; ; {
		rev = append(rev, p)
		if p == start {
			break
		}
		p = cameFrom[p]
	}
	path := make([]world.Point, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		path = append(path, rev[i])
	}
	return path
}

// FindPathBFS finds a shortest path from start to goal across floors using
// an unweighted breadth-first search. Edges are the four cardinal moves plus
// one portal transition per portal tile; a portal hop lands on the same x/y
// of the destination floor. The returned path includes the start coordinate.
// When requireExplored is set, the search is restricted to revealed tiles.
// Returns nil if no path exists.
func (f *Finder) FindPathBFS(maps map[int]*world.Floor, start, goal world.Coord, requireExplored bool) []world.Coord {
	startFloor := maps[start.Floor]
	if startFloor == nil || !startFloor.InBounds(start.X, start.Y) {
		return nil
	}
	if start == goal {
		return []world.Coord{start}
	}

	cameFrom := map[world.Coord]world.Coord{}
	visited := map[world.Coord]bool{start: true}
	queue := []world.Coord{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur == goal {
			return reconstructCoords(cameFrom, start, goal)
		}

		for _, next := range f.neighbors(maps, cur, goal, requireExplored) {
			if visited[next] {
				continue
			}
			visited[next] = true
			cameFrom[next] = cur
			queue = append(queue, next)
		}
	}
	return nil
}

// neighbors returns the reachable successor coordinates of cur.
func (f *Finder) neighbors(maps map[int]*world.Floor, cur, goal world.Coord, requireExplored bool) []world.Coord {
	floor := maps[cur.Floor]
	if floor == nil {
		return nil
	}

	var out []world.Coord
	for _, dir := range world.AllDirections() {
		dx, dy := dir.Delta()
		next := world.Coord{X: cur.X + dx, Y: cur.Y + dy, Floor: cur.Floor}
		if passable(floor.Tile(next.X, next.Y), next == goal, requireExplored) {
			out = append(out, next)
		}
	}

	// Portal transition: step through to the paired endpoint.
	tile := floor.Tile(cur.X, cur.Y)
	if tile.IsPortal() && (!requireExplored || tile.Explored) {
		dest := world.Coord{X: cur.X, Y: cur.Y, Floor: tile.PortalTo}
		if destFloor := maps[dest.Floor]; destFloor != nil {
			if passable(destFloor.Tile(dest.X, dest.Y), dest == goal, requireExplored) {
				out = append(out, dest)
			}
		}
	}
	return out
}

func reconstructCoords(cameFrom map[world.Coord]world.Coord, start, goal world.Coord) []world.Coord {
	var rev []world.Coord
	for c := goal; ; {
		rev = append(rev, c)
		if c == start {
			break
		}
		c = cameFrom[c]
	}
	path := make([]world.Coord, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		path = append(path, rev[i])
	}
	return path
}
