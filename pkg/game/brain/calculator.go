package brain

import (
	"sort"

	"go.uber.org/zap"
)

// Calculator ranks the available actions deterministically and runs the
// execution cascade.
type Calculator struct {
	actions []Action
}

// NewCalculator creates a calculator over an explicit action list
func NewCalculator(actions ...Action) *Calculator {
	return &Calculator{actions: actions}
}

// NewDefaultCalculator creates a calculator with the full standard action set
func NewDefaultCalculator() *Calculator {
	return NewCalculator(
		&HealAction{},
		&FleeAction{},
		&UseCombatItemAction{},
		&AttackAction{},
		&PickupItemAction{},
		&EquipAction{},
		NewPathToHealthAction(),
		NewPathToWeaponAction(),
		NewPathToArmorAction(),
		NewPathToQuestAction(),
		NewPathToPortalAction(),
		NewPathToLootAction(),
		&ExploreAction{},
		&RandomMoveAction{},
	)
}

// Score pairs an action name with its utility and availability, for
// debugging and decision logging.
type Score struct {
	Name      string
	Utility   float64
	Available bool
}

// ActionScores returns (name, utility, available) for every action
func (c *Calculator) ActionScores(ctx *Context) []Score {
	scores := make([]Score, 0, len(c.actions))
	for _, a := range c.actions {
		scores = append(scores, Score{
			Name:      a.Name(),
			Utility:   a.Utility(ctx),
			Available: a.IsAvailable(ctx),
		})
	}
	return scores
}

type rankedAction struct {
	action  Action
	utility float64
}

// ranked returns the available actions sorted by utility descending, ties
// broken alphabetically by name for total determinism.
func (c *Calculator) ranked(ctx *Context) []rankedAction {
	var ranked []rankedAction
	for _, a := range c.actions {
		if !a.IsAvailable(ctx) {
			continue
		}
		ranked = append(ranked, rankedAction{action: a, utility: a.Utility(ctx)})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].utility != ranked[j].utility {
			return ranked[i].utility > ranked[j].utility
		}
		return ranked[i].action.Name() < ranked[j].action.Name()
	})
	return ranked
}

// SelectAction returns the highest-utility available action, or false if no
// action is available or the best one scores zero or below.
func (c *Calculator) SelectAction(ctx *Context) (Action, bool) {
	ranked := c.ranked(ctx)
	if len(ranked) == 0 || ranked[0].utility <= 0 {
		return nil, false
	}
	return ranked[0].action, true
}

// ExecuteBest runs the execution cascade: actions are tried in rank order
// and the first one that returns a command wins. A soft execution failure
// advances to the next candidate; reaching an action with utility ≤ 0 stops
// the cascade entirely.
func (c *Calculator) ExecuteBest(ctx *Context, agent *Agent, log *zap.Logger) (Command, bool) {
	for _, r := range c.ranked(ctx) {
		if r.utility <= 0 {
			break
		}
		if cmd, ok := r.action.Execute(ctx, agent, log); ok {
			return cmd, true
		}
	}
	return Command{}, false
}
