// Package brain implements the utility-scored decision core: the per-tick
// context snapshot, the closed set of actions, and the calculator that ranks
// and executes them.
package brain

import (
	"dungeonpilot/pkg/engine/world"
)

// Verb is one of the fixed command words the engine accepts.
type Verb string

// Command verbs
const (
	VerbMove   Verb = "move"
	VerbAttack Verb = "attack"
	VerbUse    Verb = "use"
	VerbTake   Verb = "take"
	VerbLook   Verb = "look"
)

// Command is the single output of a decision tick: a verb and an optional
// argument (direction, monster name, or item name).
type Command struct {
	Verb Verb
	Arg  string
}

// Move builds a move command in the given direction
func Move(dir world.Direction) Command {
	return Command{Verb: VerbMove, Arg: dir.String()}
}

// Attack builds an attack command against the named monster
func Attack(monsterName string) Command {
	return Command{Verb: VerbAttack, Arg: monsterName}
}

// Use builds a use command for the named item
func Use(itemName string) Command {
	return Command{Verb: VerbUse, Arg: itemName}
}

// Take builds a take command for the named item
func Take(itemName string) Command {
	return Command{Verb: VerbTake, Arg: itemName}
}

// Look builds the no-op look command
func Look() Command {
	return Command{Verb: VerbLook}
}

// IsMove returns true for movement commands
func (c Command) IsMove() bool {
	return c.Verb == VerbMove
}

// Direction returns the direction of a move command
func (c Command) Direction() (world.Direction, bool) {
	if c.Verb != VerbMove {
		return world.North, false
	}
	for _, dir := range world.AllDirections() {
		if dir.String() == c.Arg {
			return dir, true
		}
	}
	return world.North, false
}

// Reverses returns true if the other command moves in the opposite direction
func (c Command) Reverses(other Command) bool {
	a, okA := c.Direction()
	b, okB := other.Direction()
	return okA && okB && a == b.Opposite()
}
