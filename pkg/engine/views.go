package engine

import (
	"fmt"
	"strings"

	"github.com/boxes360/stalker-bot/pkg/catalog"
	"github.com/boxes360/stalker-bot/pkg/state"
)

// Action sets returned by the meta views.
var (
	menuActions      = []catalog.ActionID{catalog.ActionInventory, catalog.ActionStats, catalog.ActionQuests, catalog.ActionHelp, catalog.ActionMain}
	backToMenu       = []catalog.ActionID{catalog.ActionMenu}
	backToMenuOrHome = []catalog.ActionID{catalog.ActionMenu, catalog.ActionMain}
)

// dispatchMeta handles the scene-independent menu system. Meta actions
// never mutate player state and take precedence over scene rules, so
// they are reachable from any scene.
func (e *Engine) dispatchMeta(ps *state.PlayerState, action catalog.ActionID) (Output, bool) {
	switch action {
	case catalog.ActionMenu:
		return Output{
			Text:    "Player menu\n\nPick a section:",
			Actions: menuActions,
		}, true
	case catalog.ActionInventory:
		return InventoryView(ps), true
	case catalog.ActionStats:
		return StatsView(ps), true
	case catalog.ActionQuests:
		return questsView(ps), true
	case catalog.ActionHelp:
		return helpView(), true
	case catalog.ActionMain:
		return SceneOutput(ps), true
	}
	return Output{}, false
}

// InventoryView renders the player's inventory with item glyphs.
func InventoryView(ps *state.PlayerState) Output {
	if len(ps.Inventory) == 0 {
		return Output{
			Text:    "Inventory is empty\n\nYou have no items yet.",
			Actions: backToMenu,
		}
	}

	lines := make([]string, 0, len(ps.Inventory))
	for _, id := range ps.Inventory {
		if def, ok := catalog.Item(id); ok {
			lines = append(lines, fmt.Sprintf("%s %s", def.Glyph, catalog.ItemDisplayName(id)))
		} else {
			lines = append(lines, "- "+string(id))
		}
	}

	return Output{
		Text: fmt.Sprintf("Inventory of %s:\n\n%s\n\nTotal items: %d",
			ps.Name, strings.Join(lines, "\n"), len(ps.Inventory)),
		Actions: backToMenuOrHome,
	}
}

// StatsView renders the player's stats, including the display-only
// health categorization.
func StatsView(ps *state.PlayerState) Output {
	return Output{
		Text: fmt.Sprintf("Player stats:\n\n"+
			"Name: %s\n"+
			"Health: %d/100 %s\n"+
			"Money: %d rubles\n"+
			"Experience: %d\n"+
			"Location: %s\n"+
			"Items carried: %d",
			ps.Name, ps.Health, healthStatus(ps.Health), ps.Money,
			ps.Points, ps.CurrentScene, len(ps.Inventory)),
		Actions: backToMenu,
	}
}

// healthStatus buckets health into a display category. Health is
// tracked but never decremented by current rules.
func healthStatus(health int) string {
	switch {
	case health > 70:
		return "(good)"
	case health > 30:
		return "(fair)"
	default:
		return "(critical)"
	}
}

func questsView(ps *state.PlayerState) Output {
	var sb strings.Builder
	sb.WriteString("Active quests:\n\n")
	if !ps.HasItem(catalog.ItemDocuments) {
		sb.WriteString("Sidorovich's job:\nFind the documents in lab X18")
	} else {
		sb.WriteString("No active quests.\nTalk to Sidorovich to get a job.")
	}
	return Output{
		Text:    sb.String(),
		Actions: backToMenu,
	}
}

func helpView() Output {
	return Output{
		Text: "Game help\n\n" +
			"Basics:\n" +
			"- Pick actions to interact with the world\n" +
			"- The menu gives access to stats and inventory\n" +
			"Controls:\n" +
			"- reset restarts the game\n" +
			"- menu opens the menu",
		Actions: backToMenu,
	}
}
