package catalog

// ActionID identifies a player action. Actions arrive from the
// transport as opaque strings; ids without a matching rule fall through
// to the engine's re-render fallback.
type ActionID string

// Meta actions, reachable from any scene. They never mutate state.
const (
	ActionMenu      ActionID = "menu"
	ActionInventory ActionID = "inventory"
	ActionStats     ActionID = "stats"
	ActionQuests    ActionID = "quests"
	ActionHelp      ActionID = "help"
	ActionMain      ActionID = "main"
)

// Scene-gated actions.
const (
	ActionNext        ActionID = "next"
	ActionNext1       ActionID = "next1"
	ActionNext2       ActionID = "next2"
	ActionShop        ActionID = "shop"
	ActionStreet      ActionID = "street"
	ActionTalkStalker ActionID = "talk_stalker"
	ActionSearchHouse ActionID = "search_house"
	ActionSearch      ActionID = "search"
	ActionLabX18      ActionID = "lab_x18"
	ActionTryDoor     ActionID = "try_door"
	ActionUseKey      ActionID = "use_key"
	ActionLabX18In    ActionID = "lab_x18_in"
	ActionGoRoom      ActionID = "go_room"
	ActionShoot       ActionID = "shoot"
	ActionSearchDoc   ActionID = "search_doc"
	ActionBuyGun      ActionID = "buy_gun"
	ActionGiveDoc     ActionID = "give_doc"
	ActionBack        ActionID = "back"
	ActionToSidr      ActionID = "to_sidr" // domain-specific back alias
)

// actionLabels maps actions to their display labels. Rendering is a
// presentation concern; the transport may override these, and ids
// without a label fall back to the raw id.
var actionLabels = map[ActionID]string{
	ActionMenu:        "Menu",
	ActionInventory:   "Inventory",
	ActionStats:       "Stats",
	ActionQuests:      "Quests",
	ActionHelp:        "Help",
	ActionMain:        "Home",
	ActionNext:        "Next",
	ActionNext1:       "Next",
	ActionNext2:       "What is going on?",
	ActionShop:        "Shop",
	ActionStreet:      "Go outside",
	ActionTalkStalker: "Talk to the stalker",
	ActionSearchHouse: "Enter the house",
	ActionSearch:      "Search the rooms",
	ActionLabX18:      "Head to lab X18",
	ActionTryDoor:     "Try the door",
	ActionUseKey:      "Use the key",
	ActionLabX18In:    "Enter",
	ActionGoRoom:      "Risk it and go to the room",
	ActionShoot:       "SHOOT!",
	ActionSearchDoc:   "Look for the documents",
	ActionBuyGun:      "Buy the pistol",
	ActionGiveDoc:     "Hand over the documents",
	ActionToSidr:      "To Sidorovich",
	ActionBack:        "Back",
}

// ActionLabel returns the display label for an action, falling back to
// the raw id when no label is defined.
func ActionLabel(id ActionID) string {
	if label, ok := actionLabels[id]; ok {
		return label
	}
	return string(id)
}
