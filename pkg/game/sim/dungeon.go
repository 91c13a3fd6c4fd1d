// Package sim is the turn-based harness around the decision core: it
// generates a small multi-floor dungeon, keeps the real world state, reveals
// fog of war, applies the agent's commands and runs the tick loop.
package sim

import (
	"math/rand"

	"dungeonpilot/pkg/engine/world"
	"dungeonpilot/pkg/game/bestiary"
)

// Monster is a live creature in the simulated world. The decision core never
// sees this struct; it only sees the name on a revealed tile.
type Monster struct {
	Name    string
	X, Y    int
	Floor   int
	Health  int
	Attack  int
	Defense int
}

// Dungeon is the generated real world: fully-known floor grids, live
// monsters, the player start tile and the number of quest items to win.
type Dungeon struct {
	Floors     map[int]*world.Floor
	Monsters   []*Monster
	Start      world.Coord
	QuestItems int
}

// MonsterAt returns the living monster on the given tile, or nil
func (d *Dungeon) MonsterAt(c world.Coord) *Monster {
	for _, m := range d.Monsters {
		if m.Health > 0 && m.X == c.X && m.Y == c.Y && m.Floor == c.Floor {
			return m
		}
	}
	return nil
}

// Constants for BSP generation
const (
	minNodeSize = 6
	minRoomSize = 3
	roomPadding = 1
)

// bspNode is a node in the binary space partitioning tree.
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	room                *bspRoom
}

type bspRoom struct {
	x, y, width, height int
}

func (r *bspRoom) center() world.Point {
	return world.Point{X: r.x + r.width/2, Y: r.y + r.height/2}
}

// Generate builds a dungeon of the given floor count and dimensions. Each
// floor is a BSP room layout; adjacent floors are linked by a portal pair
// carved at the same (x, y) on both, so taking the gate preserves position.
func Generate(rng *rand.Rand, floors, width, height int) *Dungeon {
	if floors < 1 {
		floors = 1
	}
	if width < minNodeSize*2+2 {
		width = minNodeSize*2 + 2
	}
	if height < minNodeSize*2+2 {
		height = minNodeSize*2 + 2
	}

	d := &Dungeon{Floors: make(map[int]*world.Floor, floors)}
	rooms := make(map[int][]*bspRoom, floors)

	for id := 0; id < floors; id++ {
		floor, floorRooms := generateFloor(rng, width, height)
		d.Floors[id] = floor
		rooms[id] = floorRooms
	}

	linkFloors(rng, d)

	startRoom := rooms[0][rng.Intn(len(rooms[0]))]
	start := startRoom.center()
	d.Start = world.Coord{X: start.X, Y: start.Y, Floor: 0}

	populate(rng, d, rooms)
	return d
}

// generateFloor carves one floor: split the area, place a room in every
// leaf, connect sibling subtrees with L-shaped corridors.
func generateFloor(rng *rand.Rand, width, height int) (*world.Floor, []*bspRoom) {
	floor := world.NewFloor(width, height)

	root := &bspNode{x: 1, y: 1, width: width - 2, height: height - 2}
	splitBSP(rng, root, minNodeSize)
	createRooms(rng, root)
	carveRooms(floor, root)
	connectRooms(rng, floor, root)

	return floor, collectRooms(root)
}

func splitBSP(rng *rand.Rand, node *bspNode, minSize int) {
	if node.width < minSize*2 && node.height < minSize*2 {
		return
	}

	var horizontal bool
	switch {
	case node.width > node.height && node.width >= minSize*2:
		horizontal = false
	case node.height > node.width && node.height >= minSize*2:
		horizontal = true
	case node.width >= minSize*2 && node.height >= minSize*2:
		horizontal = rng.Intn(2) == 0
	case node.width >= minSize*2:
		horizontal = false
	case node.height >= minSize*2:
		horizontal = true
	default:
		return
	}

	if horizontal {
		split := minSize + rng.Intn(node.height-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: split}
		node.right = &bspNode{x: node.x, y: node.y + split, width: node.width, height: node.height - split}
	} else {
		split := minSize + rng.Intn(node.width-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: split, height: node.height}
		node.right = &bspNode{x: node.x + split, y: node.y, width: node.width - split, height: node.height}
	}

	splitBSP(rng, node.left, minSize)
	splitBSP(rng, node.right, minSize)
}

func createRooms(rng *rand.Rand, node *bspNode) {
	if node.left != nil || node.right != nil {
		if node.left != nil {
			createRooms(rng, node.left)
		}
		if node.right != nil {
			createRooms(rng, node.right)
		}
		return
	}

	w := minRoomSize + rng.Intn(max(1, node.width-minRoomSize-roomPadding+1))
	h := minRoomSize + rng.Intn(max(1, node.height-minRoomSize-roomPadding+1))
	if w > node.width-roomPadding {
		w = node.width - roomPadding
	}
	if h > node.height-roomPadding {
		h = node.height - roomPadding
	}

	node.room = &bspRoom{
		x:      node.x + rng.Intn(max(1, node.width-w)),
		y:      node.y + rng.Intn(max(1, node.height-h)),
		width:  w,
		height: h,
	}
}

func carveRooms(floor *world.Floor, node *bspNode) {
	if node.room != nil {
		for y := node.room.y; y < node.room.y+node.room.height; y++ {
			for x := node.room.x; x < node.room.x+node.room.width; x++ {
				if tile := floor.Tile(x, y); tile != nil {
					tile.Type = world.TileFloor
				}
			}
		}
	}
	if node.left != nil {
		carveRooms(floor, node.left)
	}
	if node.right != nil {
		carveRooms(floor, node.right)
	}
}

func connectRooms(rng *rand.Rand, floor *world.Floor, node *bspNode) {
	if node.left == nil || node.right == nil {
		return
	}

	leftRoom := getRoom(rng, node.left)
	rightRoom := getRoom(rng, node.right)
	if leftRoom != nil && rightRoom != nil {
		a := leftRoom.center()
		b := rightRoom.center()
		if rng.Intn(2) == 0 {
			carveHorizontal(floor, a.Y, a.X, b.X)
			carveVertical(floor, b.X, a.Y, b.Y)
		} else {
			carveVertical(floor, a.X, a.Y, b.Y)
			carveHorizontal(floor, b.Y, a.X, b.X)
		}
	}

	connectRooms(rng, floor, node.left)
	connectRooms(rng, floor, node.right)
}

func carveHorizontal(floor *world.Floor, y, x1, x2 int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if tile := floor.Tile(x, y); tile != nil {
			tile.Type = world.TileFloor
		}
	}
}

func carveVertical(floor *world.Floor, x, y1, y2 int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if tile := floor.Tile(x, y); tile != nil {
			tile.Type = world.TileFloor
		}
	}
}

func getRoom(rng *rand.Rand, node *bspNode) *bspRoom {
	if node.room != nil {
		return node.room
	}
	var left, right *bspRoom
	if node.left != nil {
		left = getRoom(rng, node.left)
	}
	if node.right != nil {
		right = getRoom(rng, node.right)
	}
	if left != nil && right != nil {
		if rng.Intn(2) == 0 {
			return left
		}
		return right
	}
	if left != nil {
		return left
	}
	return right
}

func collectRooms(node *bspNode) []*bspRoom {
	var rooms []*bspRoom
	if node.room != nil {
		rooms = append(rooms, node.room)
	}
	if node.left != nil {
		rooms = append(rooms, collectRooms(node.left)...)
	}
	if node.right != nil {
		rooms = append(rooms, collectRooms(node.right)...)
	}
	return rooms
}

// linkFloors carves a portal pair between each pair of adjacent floors. The
// shared (x, y) must be walkable on both floors, so both grids are carved at
// the chosen spot before the gates are set.
func linkFloors(rng *rand.Rand, d *Dungeon) {
	ids := len(d.Floors)
	for id := 0; id+1 < ids; id++ {
		lower := d.Floors[id]
		upper := d.Floors[id+1]

		spot := pickPortalSpot(rng, lower, upper)
		lowerTile := lower.Tile(spot.X, spot.Y)
		upperTile := upper.Tile(spot.X, spot.Y)

		lowerTile.Type = world.TilePortal
		lowerTile.PortalTo = id + 1
		upperTile.Type = world.TilePortal
		upperTile.PortalTo = id
	}
}

// pickPortalSpot prefers a spot already walkable on both floors; if none
// exists after a bounded number of draws it carves one into both.
func pickPortalSpot(rng *rand.Rand, a, b *world.Floor) world.Point {
	var fallback world.Point
	for attempt := 0; attempt < 200; attempt++ {
		x := 1 + rng.Intn(a.Width()-2)
		y := 1 + rng.Intn(a.Height()-2)
		if a.IsWalkable(x, y) {
			if b.IsWalkable(x, y) {
				return world.Point{X: x, Y: y}
			}
			fallback = world.Point{X: x, Y: y}
		}
	}
	if fallback == (world.Point{}) {
		fallback = world.Point{X: a.Width() / 2, Y: a.Height() / 2}
	}
	a.Tile(fallback.X, fallback.Y).Type = world.TileFloor
	b.Tile(fallback.X, fallback.Y).Type = world.TileFloor
	return fallback
}

// Species stats double as the agent's bestiary, so what the agent recalls
// about a creature matches what the simulation spawns. Ordered weakest first;
// deeper floors draw from a longer prefix.
var species = []bestiary.Stats{
	{Name: "rat", Health: 6, AttackPower: 1},
	{Name: "goblin", Health: 8, AttackPower: 2},
	{Name: "skeleton", Health: 10, AttackPower: 3, Defense: 1, Vulnerability: "fire"},
	{Name: "orc", Health: 14, AttackPower: 4, Defense: 1},
	{Name: "wraith", Health: 12, AttackPower: 5, Evasion: 0.2, Resistance: "fire"},
}

// SpeciesStats returns the bestiary entries for every species the generator
// can spawn.
func SpeciesStats() []bestiary.Stats {
	return append([]bestiary.Stats(nil), species...)
}

func populate(rng *rand.Rand, d *Dungeon, rooms map[int][]*bspRoom) {
	for id, floorRooms := range rooms {
		floor := d.Floors[id]
		for _, room := range floorRooms {
			c := room.center()
			if (world.Point{X: d.Start.X, Y: d.Start.Y}) == c && id == d.Start.Floor {
				continue
			}
			tile := floor.Tile(c.X, c.Y)
			if tile == nil || tile.IsPortal() {
				continue
			}

			switch rng.Intn(6) {
			case 0:
				tile.Item = &world.Item{Name: "healing potion", Kind: world.KindHeal, HealAmount: 10}
			case 1:
				tile.Item = &world.Item{
					Name:        "iron sword",
					Kind:        world.KindWeapon,
					Slot:        world.SlotMainHand,
					AttackBonus: 2 + id,
				}
			case 2:
				tile.Item = &world.Item{
					Name:         "leather armor",
					Kind:         world.KindArmor,
					Slot:         world.SlotChest,
					DefenseBonus: 1 + id,
				}
			case 3:
				s := species[rng.Intn(min(len(species), id+2))]
				tile.Monster = s.Name
				d.Monsters = append(d.Monsters, &Monster{
					Name:    s.Name,
					X:       c.X,
					Y:       c.Y,
					Floor:   id,
					Health:  s.Health,
					Attack:  s.AttackPower,
					Defense: s.Defense,
				})
			case 4:
				tile.Item = &world.Item{Name: "fire potion", Kind: world.KindOffensive, DamageType: "fire"}
			}
		}
	}

	// One quest item on the deepest floor, as far from the gate as a room
	// allows.
	deepest := len(d.Floors) - 1
	deepRooms := rooms[deepest]
	room := deepRooms[rng.Intn(len(deepRooms))]
	c := room.center()
	tile := d.Floors[deepest].Tile(c.X, c.Y)
	if m := d.MonsterAt(world.Coord{X: c.X, Y: c.Y, Floor: deepest}); m != nil {
		m.Health = 0
	}
	tile.Monster = ""
	tile.Item = &world.Item{Name: "ancient sigil", Kind: world.KindQuest}
	d.QuestItems = 1
}
