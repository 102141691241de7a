package catalog

import "fmt"

// SceneID identifies a scene in the story graph. The set of scenes is
// closed; values arriving from the transport are looked up and unknown
// ids degrade to a safe fallback rather than failing.
type SceneID string

const (
	SceneStart      SceneID = "start"       // name collection
	SceneSidorovich SceneID = "sidorovich"  // first hub: the trader's basement
	SceneShop       SceneID = "shop"        // Sidorovich's goods
	SceneStreet     SceneID = "street"      // the village street
	SceneHouse      SceneID = "house"       // abandoned house
	SceneLabX18     SceneID = "lab_x18"     // lab entrance, door locked
	SceneLabX18In   SceneID = "lab_x18_in"  // inside the lab
	SceneRoom       SceneID = "room"        // the safe room
	SceneEnd        SceneID = "end"         // storyline delivered
)

// SceneDefinition is the static description of a single scene: a text
// template and the ordered actions offered there.
type SceneDefinition struct {
	ID      SceneID
	Text    string // may contain one %s verb for the player name
	Named   bool   // whether Text embeds the player name
	Actions []ActionID
}

var scenes = map[SceneID]SceneDefinition{
	SceneStart: {
		ID:   SceneStart,
		Text: "Welcome to the Zone, stalker. Type your name to begin.",
	},
	SceneSidorovich: {
		ID:    SceneSidorovich,
		Named: true,
		Text: "Sidorovich leans over the counter and squints at you.\n\n" +
			"\"So, %s. You owe me for the ride, and I happen to need a favor. " +
			"Documents, stashed in a safe somewhere in lab X18. " +
			"Bring them to me and we're square -- with a bonus on top.\"",
		Actions: []ActionID{ActionShop, ActionStreet, ActionGiveDoc},
	},
	SceneShop: {
		ID: SceneShop,
		Text: "Sidorovich spreads his goods across the counter.\n\n" +
			"Not much, but in the Zone you take what you can get.",
		Actions: []ActionID{ActionBuyGun, ActionBack},
	},
	SceneStreet: {
		ID: SceneStreet,
		Text: "The village street is quiet. Wind drags rusted cans across the dirt.\n\n" +
			"A lone stalker warms his hands by a barrel fire. Down the road, " +
			"a sagging house -- and beyond it, the entrance to lab X18.",
		Actions: []ActionID{ActionTalkStalker, ActionSearchHouse, ActionLabX18, ActionBack},
	},
	SceneHouse: {
		ID: SceneHouse,
		Text: "The abandoned house smells of mold and old smoke.\n\n" +
			"Yellowed newspapers, a broken dresser, rooms worth searching.",
		Actions: []ActionID{ActionSearch, ActionBack},
	},
	SceneLabX18: {
		ID: SceneLabX18,
		Text: "A massive steel door blocks the entrance to lab X18.\n\n" +
			"The lock is heavy, old, and very much intact.",
		Actions: []ActionID{ActionTryDoor, ActionBack},
	},
	SceneLabX18In: {
		ID: SceneLabX18In,
		Text: "Inside the lab the darkness is total. Your footsteps echo down " +
			"a long corridor.\n\nSomething skitters in the vents above. " +
			"There is a room at the end of the hall.",
		Actions: []ActionID{ActionGoRoom, ActionBack},
	},
	SceneRoom: {
		ID: SceneRoom,
		Text: "The room is bare except for a desk.\n\nOn the desk sits a safe.",
		Actions: []ActionID{ActionSearchDoc, ActionBack},
	},
	SceneEnd: {
		ID: SceneEnd,
		Text: "The main job is done. The Zone, however, is not going anywhere.\n\n" +
			"Feel free to keep wandering.",
		Actions: []ActionID{ActionToSidr},
	},
}

// fallbackSceneText is returned for scene ids missing from the catalog.
// The engine must never crash on an inconsistent scene reference.
const fallbackSceneText = "You are somewhere in the Zone. Nothing of note here."

// SceneText returns the narrative text for a scene, with the player
// name substituted where the template uses it. Unknown scenes resolve
// to a generic placeholder.
func SceneText(id SceneID, playerName string) string {
	def, ok := scenes[id]
	if !ok {
		return fallbackSceneText
	}
	if def.Named {
		return fmt.Sprintf(def.Text, playerName)
	}
	return def.Text
}

// SceneActions returns the ordered actions available in a scene.
// Unknown scenes resolve to an empty action list.
func SceneActions(id SceneID) []ActionID {
	def, ok := scenes[id]
	if !ok {
		return nil
	}
	return def.Actions
}

// KnownScene reports whether the id is part of the scene catalog.
func KnownScene(id SceneID) bool {
	_, ok := scenes[id]
	return ok
}
