// Package engine implements the scene/action state machine: the single
// authority translating a (player state, action) pair into a mutated
// player state and an output payload.
package engine

import (
	"log/slog"

	"github.com/boxes360/stalker-bot/pkg/catalog"
	"github.com/boxes360/stalker-bot/pkg/state"
)

// Output is the payload handed back to the presentation layer:
// narrative text plus the ordered actions now available. An empty
// action list outside the menu system means a terminal outcome.
type Output struct {
	Text    string             `json:"text"`
	Actions []catalog.ActionID `json:"actions,omitempty"`
}

// Rule is a guarded transition: if the requested action matches Action,
// the player is in Scene (or the rule is scene-independent), and When
// (if set) holds, then Run mutates the player state and produces the
// output. Rules are evaluated in declaration order; first match wins.
type Rule struct {
	Action catalog.ActionID
	Scene  catalog.SceneID // zero value matches any scene
	When   func(*state.PlayerState) bool
	Run    func(*state.PlayerState) Output
}

func (r Rule) matches(ps *state.PlayerState, action catalog.ActionID) bool {
	if r.Action != action {
		return false
	}
	if r.Scene != "" && ps.CurrentScene != r.Scene {
		return false
	}
	if r.When != nil && !r.When(ps) {
		return false
	}
	return true
}

// Engine dispatches actions against the rule table. It is stateless
// between dispatches and safe to share across players; all mutable
// state lives in the PlayerState passed in.
type Engine struct {
	rules  []Rule
	logger *slog.Logger
}

// New creates an engine with the full story rule table.
func New(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		rules:  storyRules(),
		logger: logger,
	}
}

// Dispatch resolves an action for the player. It is total: every
// (state, action) pair yields an output, never an error. Precedence is
// meta actions, then scene-gated rules, then a no-op re-render of the
// current scene.
func (e *Engine) Dispatch(ps *state.PlayerState, action catalog.ActionID) Output {
	if out, ok := e.dispatchMeta(ps, action); ok {
		return out
	}

	for _, rule := range e.rules {
		if rule.matches(ps, action) {
			out := rule.Run(ps)
			e.logger.Debug("action dispatched",
				"player", ps.ID,
				"action", action,
				"scene", ps.CurrentScene)
			return out
		}
	}

	e.logger.Debug("unrecognized action, re-rendering scene",
		"player", ps.ID,
		"action", action,
		"scene", ps.CurrentScene)
	return SceneOutput(ps)
}

// SceneOutput re-renders the player's current scene without mutating
// state. Unknown scenes degrade to placeholder text and no actions.
func SceneOutput(ps *state.PlayerState) Output {
	return Output{
		Text:    catalog.SceneText(ps.CurrentScene, ps.Name),
		Actions: catalog.SceneActions(ps.CurrentScene),
	}
}

// goTo moves the player to a scene and renders it.
func goTo(ps *state.PlayerState, scene catalog.SceneID) Output {
	ps.CurrentScene = scene
	return SceneOutput(ps)
}
