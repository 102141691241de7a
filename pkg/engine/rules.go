package engine

import (
	"fmt"

	"github.com/boxes360/stalker-bot/pkg/catalog"
	"github.com/boxes360/stalker-bot/pkg/state"
)

// Experience and reward amounts granted by story actions.
const (
	pointsTalkStalker = 10
	pointsFindKey     = 20
	pointsOpenDoor    = 20
	pointsBuyGun      = 5
	pointsShoot       = 100
	pointsFindDoc     = 200
	pointsDelivery    = 500
	moneyDelivery     = 2000
)

// backMap maps each scene to its single predefined predecessor.
// Scenes absent from the map (start, sidorovich) have no predecessor;
// "back" there falls through to the re-render fallback.
var backMap = map[catalog.SceneID]catalog.SceneID{
	catalog.SceneStreet:   catalog.SceneSidorovich,
	catalog.SceneHouse:    catalog.SceneStreet,
	catalog.SceneLabX18:   catalog.SceneStreet,
	catalog.SceneLabX18In: catalog.SceneStreet,
	catalog.SceneShop:     catalog.SceneSidorovich,
	catalog.SceneRoom:     catalog.SceneLabX18In,
	catalog.SceneEnd:      catalog.SceneSidorovich,
}

func hasPredecessor(ps *state.PlayerState) bool {
	_, ok := backMap[ps.CurrentScene]
	return ok
}

func goBack(ps *state.PlayerState) Output {
	return goTo(ps, backMap[ps.CurrentScene])
}

// storyRules builds the guarded-transition table. Order matters:
// rules sharing an action id are disambiguated by scene and predicate,
// and the first matching rule wins.
func storyRules() []Rule {
	return []Rule{
		// Intro cinematic, played from the trader's basement after naming.
		{Action: catalog.ActionNext, Scene: catalog.SceneSidorovich, Run: func(ps *state.PlayerState) Output {
			return Output{
				Text: "Suddenly the truck jerks and loses control, swerving side to side.\n" +
					"It flies off the road and rolls over, again and again...\n" +
					"Everything goes black.",
				Actions: []catalog.ActionID{catalog.ActionNext1},
			}
		}},
		{Action: catalog.ActionNext1, Scene: catalog.SceneSidorovich, Run: func(ps *state.PlayerState) Output {
			return Output{
				Text: "You come to, with no idea where you are.\n" +
					"Some kind of cellar -- yes, definitely a cellar.\n" +
					"Behind a counter across the room, a stout man is watching you.",
				Actions: []catalog.ActionID{catalog.ActionNext2},
			}
		}},
		{Action: catalog.ActionNext2, Scene: catalog.SceneSidorovich, Run: SceneOutput},

		// Hub navigation.
		{Action: catalog.ActionStreet, Scene: catalog.SceneSidorovich, Run: func(ps *state.PlayerState) Output {
			return goTo(ps, catalog.SceneStreet)
		}},
		{Action: catalog.ActionSearchHouse, Scene: catalog.SceneStreet, Run: func(ps *state.PlayerState) Output {
			return goTo(ps, catalog.SceneHouse)
		}},

		// The stalker by the fire points the player at the shop. One-time
		// reward gated on the talked flag.
		{Action: catalog.ActionTalkStalker, Scene: catalog.SceneStreet, Run: func(ps *state.PlayerState) Output {
			if !ps.Flags.TalkedStalker {
				ps.Flags.TalkedStalker = true
				ps.Points += pointsTalkStalker
				return Output{
					Text: fmt.Sprintf("The stalker coughs hoarsely and looks you over, %s:\n"+
						"\"New blood, eh? Headed for the lab?\n"+
						"It's grim down there. Go in without a gun and you're done for.\n"+
						"Sidorovich sells a pistol, if you've got the cash.\"", ps.Name),
					Actions: catalog.SceneActions(ps.CurrentScene),
				}
			}
			return Output{
				Text:    "The stalker has nothing more to say. He is tired and in no mood for company.",
				Actions: catalog.SceneActions(ps.CurrentScene),
			}
		}},

		// Back navigation: a static one-level predecessor map, plus the
		// domain alias used on the end screen.
		{Action: catalog.ActionBack, When: hasPredecessor, Run: goBack},
		{Action: catalog.ActionToSidr, When: hasPredecessor, Run: goBack},

		// Searching the house yields the lab key exactly once.
		{Action: catalog.ActionSearch, Scene: catalog.SceneHouse, Run: func(ps *state.PlayerState) Output {
			if !ps.Flags.FoundKey {
				ps.Flags.FoundKey = true
				ps.AddItem(catalog.ItemKeyX18)
				ps.Points += pointsFindKey
				return Output{
					Text: "Searching the house...\n\n" +
						"In an old dresser, under a heap of yellowed newspapers, " +
						"you find a rusty key engraved 'X18'!\n\n" +
						"Lab key found!\n+20 experience",
					Actions: catalog.SceneActions(ps.CurrentScene),
				}
			}
			return Output{
				Text:    "Nothing else of interest here.",
				Actions: catalog.SceneActions(ps.CurrentScene),
			}
		}},

		// The lab entrance branches on the door flag: locked door outside,
		// straight inside once it has been opened.
		{Action: catalog.ActionLabX18, Scene: catalog.SceneStreet,
			When: func(ps *state.PlayerState) bool { return !ps.Flags.DoorOpen },
			Run: func(ps *state.PlayerState) Output {
				return goTo(ps, catalog.SceneLabX18)
			}},
		{Action: catalog.ActionLabX18, Scene: catalog.SceneStreet,
			When: func(ps *state.PlayerState) bool { return ps.Flags.DoorOpen },
			Run: func(ps *state.PlayerState) Output {
				return goTo(ps, catalog.SceneLabX18In)
			}},

		// Trying the door is a pure informational branch on the key item.
		{Action: catalog.ActionTryDoor, Scene: catalog.SceneLabX18, Run: func(ps *state.PlayerState) Output {
			if ps.HasItem(catalog.ItemKeyX18) {
				return Output{
					Text: "You try the door...\n\n" +
						"It is locked tight.\n\n" +
						"But you have the key!",
					Actions: []catalog.ActionID{catalog.ActionUseKey},
				}
			}
			return Output{
				Text: "You try the door...\n\n" +
					"It does not budge. A massive lock holds it shut.\n\n" +
					"You need a key -- try the abandoned house on the street.",
				Actions: catalog.SceneActions(ps.CurrentScene),
			}
		}},

		// Unlocking consumes the key and sets the door flag in one
		// dispatch. Repeat invocations are a no-op variant.
		{Action: catalog.ActionUseKey, Scene: catalog.SceneLabX18, Run: func(ps *state.PlayerState) Output {
			if ps.Flags.DoorOpen {
				return Output{
					Text:    "The door is already open.",
					Actions: []catalog.ActionID{catalog.ActionLabX18In},
				}
			}
			ps.Flags.DoorOpen = true
			ps.RemoveItem(catalog.ItemKeyX18)
			ps.Points += pointsOpenDoor
			return Output{
				Text: "The key fits!\n+20 experience\n\n" +
					"The old door creaks open...",
				Actions: []catalog.ActionID{catalog.ActionLabX18In},
			}
		}},
		{Action: catalog.ActionLabX18In, Scene: catalog.SceneLabX18, Run: func(ps *state.PlayerState) Output {
			return goTo(ps, catalog.SceneLabX18In)
		}},

		// The forced encounter. Without a weapon this is the one terminal
		// defeat in the game: no actions, recovery only through reset.
		{Action: catalog.ActionGoRoom, Scene: catalog.SceneLabX18In, Run: func(ps *state.PlayerState) Output {
			if ps.Flags.KilledMonster {
				ps.CurrentScene = catalog.SceneRoom
				return Output{
					Text: "This time you walk the corridor without incident.\n\n" +
						"On the desk sits a safe.",
					Actions: catalog.SceneActions(ps.CurrentScene),
				}
			}
			if ps.HasItem(catalog.ItemPistol) {
				return Output{
					Text: "You move down the corridor.\n" +
						"As you reach the room, a monster bursts out and lunges at you!",
					Actions: []catalog.ActionID{catalog.ActionShoot},
				}
			}
			return Output{
				Text: "YOU DIED\n\n" +
					"Coming down here unarmed was very brave.\n" +
					"Use reset to start the game over.",
			}
		}},
		{Action: catalog.ActionShoot, Scene: catalog.SceneLabX18In, Run: func(ps *state.PlayerState) Output {
			ps.Flags.KilledMonster = true
			ps.Points += pointsShoot
			ps.CurrentScene = catalog.SceneRoom
			return Output{
				Text: "BANG!\n\n" +
					"You barely manage to pull the trigger, and you live.\n" +
					"+100 experience\n\n" +
					"Inside the room you find a safe on the desk -- most likely " +
					"holding the documents Sidorovich wants.",
				Actions: catalog.SceneActions(ps.CurrentScene),
			}
		}},

		// The safe yields the documents exactly once.
		{Action: catalog.ActionSearchDoc, Scene: catalog.SceneRoom, Run: func(ps *state.PlayerState) Output {
			if !ps.Flags.FoundDocuments {
				ps.Flags.FoundDocuments = true
				ps.AddItem(catalog.ItemDocuments)
				ps.Points += pointsFindDoc
				return Output{
					Text: "Opening the safe...\n\n" +
						"It was never fully locked. Behind the door you find " +
						"the documents Sidorovich asked for!\n\n" +
						"Documents found!\n+200 experience",
					Actions: []catalog.ActionID{catalog.ActionBack},
				}
			}
			return Output{
				Text:    "The safe is empty now.",
				Actions: []catalog.ActionID{catalog.ActionBack},
			}
		}},

		// The shop and the currency-gated purchase.
		{Action: catalog.ActionShop, Scene: catalog.SceneSidorovich, Run: func(ps *state.PlayerState) Output {
			price, _ := catalog.ShopPrice(catalog.ItemPistol)
			ps.CurrentScene = catalog.SceneShop
			return Output{
				Text: fmt.Sprintf("Sidorovich's goods:\n\n"+
					"%s - %d rubles\n\n"+
					"Your balance: %d rubles",
					catalog.ItemDisplayName(catalog.ItemPistol), price, ps.Money),
				Actions: catalog.SceneActions(ps.CurrentScene),
			}
		}},
		{Action: catalog.ActionBuyGun, Scene: catalog.SceneShop, Run: func(ps *state.PlayerState) Output {
			price, _ := catalog.ShopPrice(catalog.ItemPistol)
			if ps.Money < price {
				return Output{
					Text: fmt.Sprintf("Not enough money! The pistol costs %d rubles "+
						"and you only have %d.\n\n"+
						"Finish a job to earn more.", price, ps.Money),
					Actions: []catalog.ActionID{catalog.ActionBack},
				}
			}
			ps.Money -= price
			ps.AddItem(catalog.ItemPistol)
			ps.Points += pointsBuyGun
			return Output{
				Text: fmt.Sprintf("You bought the PM pistol for %d rubles!\n"+
					"%d rubles left\n\n"+
					"Now you stand a chance down in the lab.", price, ps.Money),
				Actions: []catalog.ActionID{catalog.ActionBack},
			}
		}},

		// Delivery: the terminal scene. Rejected without the documents,
		// rewarded with them; either way the storyline ends but the
		// engine stays interactive.
		{Action: catalog.ActionGiveDoc, Scene: catalog.SceneSidorovich, Run: func(ps *state.PlayerState) Output {
			ps.CurrentScene = catalog.SceneEnd
			if ps.HasItem(catalog.ItemDocuments) {
				ps.Money += moneyDelivery
				ps.Points += pointsDelivery
				return Output{
					Text: fmt.Sprintf("\"Good work, %s. Here, from me personally.\"\n\n"+
						"+2000 rubles\n+500 experience\n\n"+
						"Congratulations, you finished the story!\n"+
						"Feel free to keep exploring the Zone.", ps.Name),
					Actions: catalog.SceneActions(ps.CurrentScene),
				}
			}
			return Output{
				Text: "\"Come back when you have the documents.\n" +
					"No point bothering me empty-handed.\"",
				Actions: catalog.SceneActions(ps.CurrentScene),
			}
		}},
	}
}
