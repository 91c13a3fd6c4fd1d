package path

import (
	"github.com/zyedidia/generic/heap"

	"dungeonpilot/pkg/engine/world"
)

// FindPathRiskAware finds a path from start to goal like FindPathBFS, but
// tiles within DangerRadius of a known monster carry an avoidance cost that
// scales inversely with the caller's health ratio: the lower the health, the
// wider the detour the search is willing to take. The returned path includes
// the start coordinate. Returns nil if no path exists.
func (f *Finder) FindPathRiskAware(maps map[int]*world.Floor, start, goal world.Coord, healthRatio float64, requireExplored bool) []world.Coord {
	startFloor := maps[start.Floor]
	if startFloor == nil || !startFloor.InBounds(start.X, start.Y) {
		return nil
	}
	if start == goal {
		return []world.Coord{start}
	}

	penalty := f.dangerPenalty(healthRatio)
	danger := map[int]map[world.Point]bool{}

	type node struct {
		c    world.Coord
		cost float64
	}

	open := heap.New[node](func(a, b node) bool { return a.cost < b.cost })
	dist := map[world.Coord]float64{start: 0}
	cameFrom := map[world.Coord]world.Coord{}
	done := map[world.Coord]bool{}

	open.Push(node{c: start, cost: 0})

	for open.Size() > 0 {
		cur, _ := open.Pop()
		if done[cur.c] {
			continue
		}
		done[cur.c] = true

		if cur.c == goal {
			return reconstructCoords(cameFrom, start, goal)
		}

		for _, next := range f.neighbors(maps, cur.c, goal, requireExplored) {
			if done[next] {
				continue
			}
			stepCost := 1.0
			if f.inDanger(maps, danger, next) {
				stepCost += penalty
			}
			nd := cur.cost + stepCost
			if prev, ok := dist[next]; !ok || nd < prev {
				dist[next] = nd
				cameFrom[next] = cur.c
				open.Push(node{c: next, cost: nd})
			}
		}
	}
	return nil
}

// dangerPenalty converts a health ratio into the per-tile avoidance cost.
func (f *Finder) dangerPenalty(healthRatio float64) float64 {
	if healthRatio < 0.1 {
		healthRatio = 0.1
	}
	if healthRatio > 1.0 {
		healthRatio = 1.0
	}
	return f.RiskWeight / healthRatio
}

// inDanger reports whether the coordinate lies within DangerRadius of a known
// monster on its floor. Danger zones are computed per floor on first use.
func (f *Finder) inDanger(maps map[int]*world.Floor, cache map[int]map[world.Point]bool, c world.Coord) bool {
	zone, ok := cache[c.Floor]
	if !ok {
		zone = f.buildDangerZone(maps[c.Floor])
		cache[c.Floor] = zone
	}
	return zone[c.Point()]
}

func (f *Finder) buildDangerZone(floor *world.Floor) map[world.Point]bool {
	zone := map[world.Point]bool{}
	if floor == nil {
		return zone
	}
	floor.ForEachTile(func(x, y int, tile *world.Tile) {
		if !tile.Explored || !tile.HasMonster() {
			return
		}
		for dy := -f.DangerRadius; dy <= f.DangerRadius; dy++ {
			for dx := -f.DangerRadius; dx <= f.DangerRadius; dx++ {
				if abs(dx)+abs(dy) > f.DangerRadius {
					continue
				}
				p := world.Point{X: x + dx, Y: y + dy}
				if floor.InBounds(p.X, p.Y) {
					zone[p] = true
				}
			}
		}
	})
	return zone
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
