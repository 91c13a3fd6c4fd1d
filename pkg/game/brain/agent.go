package brain

import (
	"dungeonpilot/pkg/engine/world"
)

// Defaults for the agent's stuck detection.
const (
	DefaultHistoryWindow    = 8
	DefaultLoopBreakerTurns = 3
)

// Agent holds the per-run mutable state of the decision core. Everything
// else the core touches is an immutable snapshot; this is the one place
// actions are allowed to write.
type Agent struct {
	// Path is the route currently being followed, including the tile the
	// agent stands on. Cleared on floor change, stuck detection, or a
	// higher-priority interrupt.
	Path []world.Coord

	// LastMove is the most recent movement command, used to avoid
	// immediately reversing during random exploration.
	LastMove Command

	historyWindow    int
	loopBreakerTurns int

	positions   []world.Coord
	commands    []Command
	loopBreaker int
	inLoop      bool
}

// NewAgent creates an agent with default stuck-detection tuning
func NewAgent() *Agent {
	return NewAgentWithTuning(DefaultHistoryWindow, DefaultLoopBreakerTurns)
}

// NewAgentWithTuning creates an agent with an explicit history window and
// loop-breaker length
func NewAgentWithTuning(historyWindow, loopBreakerTurns int) *Agent {
	if historyWindow < 2 {
		historyWindow = 2
	}
	if loopBreakerTurns < 1 {
		loopBreakerTurns = 1
	}
	return &Agent{
		historyWindow:    historyWindow,
		loopBreakerTurns: loopBreakerTurns,
	}
}

// ClearPath drops the current path
func (a *Agent) ClearPath() {
	a.Path = nil
}

// ObservePosition records the agent's position at the start of a tick. It
// clears the path on a floor change, runs stuck detection over the recent
// position history, and counts down an active loop breaker.
func (a *Agent) ObservePosition(pos world.Coord) {
	if n := len(a.positions); n > 0 && a.positions[n-1].Floor != pos.Floor {
		a.ClearPath()
	}

	a.positions = append(a.positions, pos)
	if len(a.positions) > a.historyWindow {
		a.positions = a.positions[len(a.positions)-a.historyWindow:]
	}

	if a.loopBreaker > 0 {
		a.loopBreaker--
		return
	}

	a.inLoop = a.detectLoop()
	if a.inLoop {
		// Force random movement for a few turns and drop the route that
		// got us stuck.
		a.loopBreaker = a.loopBreakerTurns
		a.ClearPath()
		a.positions = a.positions[:0]
	}
}

// RecordCommand appends the issued command to the short history
func (a *Agent) RecordCommand(cmd Command) {
	a.commands = append(a.commands, cmd)
	if len(a.commands) > a.historyWindow {
		a.commands = a.commands[len(a.commands)-a.historyWindow:]
	}
}

// IsInLoop returns true if the last stuck-detection pass found a cycle
func (a *Agent) IsInLoop() bool {
	return a.inLoop
}

// LoopBreakerActive returns true while forced random movement is in effect
func (a *Agent) LoopBreakerActive() bool {
	return a.loopBreaker > 0
}

// detectLoop reports whether the recent position history is cycling over a
// tiny set of tiles despite movement.
func (a *Agent) detectLoop() bool {
	if len(a.positions) < a.historyWindow {
		return false
	}
	unique := map[world.Coord]bool{}
	for _, p := range a.positions {
		unique[p] = true
	}
	return len(unique) <= 2
}
