package sim

import (
	"fmt"
	"strings"

	"github.com/gookit/color"

	"dungeonpilot/pkg/engine/world"
)

// Icon constants for the map view
const (
	PlayerIcon   = "@"
	IconWall     = "▒"
	IconFloor    = "·"
	IconVoid     = " "
	IconPortal   = "▲"
	IconMonster  = "!"
	IconQuest    = "★"
	IconHeal     = "+"
	IconWeapon   = "/"
	IconArmor    = "]"
	IconItem     = "?"
	IconUnknown  = " "
	IconPathMark = "•"
)

// Renderer prints the agent's view of the current floor to the terminal.
type Renderer struct {
	colorPlayer  color.Style
	colorWall    color.Style
	colorFloor   color.Style
	colorPortal  color.Style
	colorMonster color.Style
	colorItem    color.Style
	colorQuest   color.Style
	colorSubtle  color.Style
	colorStatus  color.Style
}

// NewRenderer creates a renderer with its color styles initialized
func NewRenderer() *Renderer {
	return &Renderer{
		colorPlayer:  color.Style{color.FgGreen, color.OpBold},
		colorWall:    color.Style{color.FgGray},
		colorFloor:   color.Style{color.FgGray},
		colorPortal:  color.Style{color.FgCyan, color.OpBold},
		colorMonster: color.Style{color.FgRed, color.OpBold},
		colorItem:    color.Style{color.FgMagenta},
		colorQuest:   color.Style{color.FgYellow, color.OpBold},
		colorSubtle:  color.Style{color.FgGray, color.OpBold},
		colorStatus:  color.Style{color.FgBlue},
	}
}

// RenderFrame prints one frame: floor header, map, status line and recent
// messages.
func (r *Renderer) RenderFrame(e *Engine) {
	p := e.player
	r.colorStatus.Printf("Floor %d  tick %d\n\n", p.Floor, e.tick)

	floor := e.visible[p.Floor]
	for y := 0; y < floor.Height(); y++ {
		var row strings.Builder
		for x := 0; x < floor.Width(); x++ {
			if x == p.X && y == p.Y {
				row.WriteString(r.colorPlayer.Sprint(PlayerIcon))
				continue
			}
			row.WriteString(r.renderTile(floor.Tile(x, y)))
		}
		fmt.Println(row.String())
	}

	fmt.Println()
	r.printStatus(e)
	r.printMessages(e)
}

func (r *Renderer) renderTile(t *world.Tile) string {
	if t == nil || !t.Explored {
		return IconUnknown
	}
	switch {
	case t.IsWall():
		return r.colorWall.Sprint(IconWall)
	case t.HasMonster():
		return r.colorMonster.Sprint(IconMonster)
	case t.Item != nil:
		return r.renderItem(t.Item)
	case t.IsPortal():
		return r.colorPortal.Sprint(IconPortal)
	default:
		return r.colorFloor.Sprint(IconFloor)
	}
}

func (r *Renderer) renderItem(it *world.Item) string {
	switch {
	case it.IsQuest():
		return r.colorQuest.Sprint(IconQuest)
	case it.IsHealing():
		return r.colorItem.Sprint(IconHeal)
	case it.Kind == world.KindWeapon:
		return r.colorItem.Sprint(IconWeapon)
	case it.Kind == world.KindArmor:
		return r.colorItem.Sprint(IconArmor)
	default:
		return r.colorItem.Sprint(IconItem)
	}
}

func (r *Renderer) printStatus(e *Engine) {
	p := e.player
	r.colorStatus.Printf("HP %d/%d  ATK %d  DEF %d", p.Health, p.MaxHealth,
		p.EffectiveAttack(), p.EffectiveDefense())

	fmt.Print(r.colorSubtle.Sprint("  Inventory: "))
	if len(p.Inventory) == 0 {
		fmt.Println(r.colorSubtle.Sprint("(empty)"))
	} else {
		names := make([]string, 0, len(p.Inventory))
		for _, it := range p.Inventory {
			names = append(names, r.colorItem.Sprint(it.Name))
		}
		fmt.Println(strings.Join(names, r.colorSubtle.Sprint(", ")))
	}

	cmd := e.LastCommand()
	if cmd.Verb != "" {
		line := string(cmd.Verb)
		if cmd.Arg != "" {
			line += " " + cmd.Arg
		}
		fmt.Println(r.colorSubtle.Sprint("Last command: ") + line)
	}
}

func (r *Renderer) printMessages(e *Engine) {
	msgs := e.Messages()
	if len(msgs) == 0 {
		return
	}
	fmt.Println()
	for _, msg := range msgs {
		fmt.Println(r.colorSubtle.Sprint("  " + msg))
	}
}
