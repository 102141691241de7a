package engine

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/boxes360/stalker-bot/pkg/catalog"
	"github.com/boxes360/stalker-bot/pkg/state"
)

func testEngine() *Engine {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// namedPlayer returns a player who has completed onboarding.
func namedPlayer(scene catalog.SceneID) *state.PlayerState {
	ps := state.NewPlayerState("player-1")
	ps.Name = "Alex"
	ps.CurrentScene = scene
	return ps
}

func TestDispatch_IsTotal(t *testing.T) {
	e := testEngine()

	scenes := []catalog.SceneID{
		catalog.SceneStart, catalog.SceneSidorovich, catalog.SceneShop,
		catalog.SceneStreet, catalog.SceneHouse, catalog.SceneLabX18,
		catalog.SceneLabX18In, catalog.SceneRoom, catalog.SceneEnd,
		catalog.SceneID("no_such_scene"),
	}
	actions := []catalog.ActionID{
		catalog.ActionMenu, catalog.ActionShoot, catalog.ActionBuyGun,
		catalog.ActionBack, catalog.ActionID(""), catalog.ActionID("garbage"),
		catalog.ActionID("'; DROP TABLE players;--"),
	}

	for _, scene := range scenes {
		for _, action := range actions {
			ps := namedPlayer(scene)
			out := e.Dispatch(ps, action)
			if out.Text == "" {
				t.Errorf("Dispatch(%q, %q) produced empty text", scene, action)
			}
		}
	}
}

func TestDispatch_UnknownActionIsNoOp(t *testing.T) {
	e := testEngine()
	ps := namedPlayer(catalog.SceneStreet)
	before := *ps

	out := e.Dispatch(ps, "definitely_not_an_action")

	if ps.CurrentScene != before.CurrentScene || ps.Money != before.Money || ps.Points != before.Points {
		t.Error("unknown action mutated player state")
	}
	if out.Text != catalog.SceneText(catalog.SceneStreet, "Alex") {
		t.Errorf("expected current scene re-render, got %q", out.Text)
	}
	if len(out.Actions) != len(catalog.SceneActions(catalog.SceneStreet)) {
		t.Error("expected current scene actions unchanged")
	}
}

func TestDispatch_UnknownSceneDegrades(t *testing.T) {
	e := testEngine()
	ps := namedPlayer("warehouse_x99")

	out := e.Dispatch(ps, "search")

	if out.Text == "" {
		t.Error("expected placeholder text for unknown scene")
	}
	if len(out.Actions) != 0 {
		t.Errorf("expected empty action list for unknown scene, got %v", out.Actions)
	}
}

func TestMetaActions_NeverMutate(t *testing.T) {
	e := testEngine()

	metas := []catalog.ActionID{
		catalog.ActionMenu, catalog.ActionInventory, catalog.ActionStats,
		catalog.ActionQuests, catalog.ActionHelp, catalog.ActionMain,
	}

	for _, action := range metas {
		ps := namedPlayer(catalog.SceneStreet)
		ps.AddItem(catalog.ItemPistol)
		ps.Points = 42
		before := *ps

		out := e.Dispatch(ps, action)

		if out.Text == "" {
			t.Errorf("meta action %q produced empty text", action)
		}
		if ps.CurrentScene != before.CurrentScene || ps.Money != before.Money ||
			ps.Points != before.Points || ps.Flags != before.Flags {
			t.Errorf("meta action %q mutated player state", action)
		}
	}
}

func TestMetaActions_ReachableFromAnyScene(t *testing.T) {
	e := testEngine()

	// "menu" from the lab must win over any scene rule.
	ps := namedPlayer(catalog.SceneLabX18In)
	out := e.Dispatch(ps, catalog.ActionMenu)

	if len(out.Actions) == 0 {
		t.Fatal("menu returned no sections")
	}
	if out.Actions[0] != catalog.ActionInventory {
		t.Errorf("expected inventory as first menu section, got %q", out.Actions[0])
	}
}

func TestTalkStalker_OneTimeReward(t *testing.T) {
	e := testEngine()
	ps := namedPlayer(catalog.SceneStreet)

	e.Dispatch(ps, catalog.ActionTalkStalker)
	if !ps.Flags.TalkedStalker {
		t.Error("expected talked flag set")
	}
	if ps.Points != 10 {
		t.Errorf("expected 10 points, got %d", ps.Points)
	}

	// Second invocation: already-done variant, no additional effect.
	out := e.Dispatch(ps, catalog.ActionTalkStalker)
	if ps.Points != 10 {
		t.Errorf("expected points unchanged on repeat, got %d", ps.Points)
	}
	if out.Text == "" || out.Text == catalog.SceneText(catalog.SceneStreet, "Alex") {
		t.Error("expected already-done narrative variant")
	}
}

func TestSearchHouse_KeyRewardIdempotent(t *testing.T) {
	e := testEngine()
	ps := namedPlayer(catalog.SceneStreet)

	out := e.Dispatch(ps, catalog.ActionSearchHouse)
	if ps.CurrentScene != catalog.SceneHouse {
		t.Fatalf("expected scene house, got %q", ps.CurrentScene)
	}
	if len(out.Actions) == 0 {
		t.Fatal("expected house actions")
	}

	e.Dispatch(ps, catalog.ActionSearch)
	if !ps.HasItem(catalog.ItemKeyX18) {
		t.Error("expected key in inventory")
	}
	if !ps.Flags.FoundKey {
		t.Error("expected found-key flag set")
	}
	if ps.Points != 20 {
		t.Errorf("expected 20 points, got %d", ps.Points)
	}

	e.Dispatch(ps, catalog.ActionSearch)
	if got := len(ps.Inventory); got != 1 {
		t.Errorf("expected exactly one key after repeat search, got %d items", got)
	}
	if ps.Points != 20 {
		t.Errorf("expected points unchanged after repeat search, got %d", ps.Points)
	}
}

func TestBuyGun_PurchaseInvariant(t *testing.T) {
	e := testEngine()
	price, ok := catalog.ShopPrice(catalog.ItemPistol)
	if !ok {
		t.Fatal("pistol missing from shop")
	}

	ps := namedPlayer(catalog.SceneSidorovich)
	e.Dispatch(ps, catalog.ActionShop)
	if ps.CurrentScene != catalog.SceneShop {
		t.Fatalf("expected shop scene, got %q", ps.CurrentScene)
	}

	e.Dispatch(ps, catalog.ActionBuyGun)
	if ps.Money != state.StartingMoney-price {
		t.Errorf("expected money %d, got %d", state.StartingMoney-price, ps.Money)
	}
	if !ps.HasItem(catalog.ItemPistol) {
		t.Error("expected pistol in inventory")
	}
	if ps.Points != 5 {
		t.Errorf("expected 5 points, got %d", ps.Points)
	}
}

func TestBuyGun_InsufficientFunds(t *testing.T) {
	e := testEngine()
	price, _ := catalog.ShopPrice(catalog.ItemPistol)

	ps := namedPlayer(catalog.SceneShop)
	ps.Money = price - 1

	out := e.Dispatch(ps, catalog.ActionBuyGun)

	if ps.Money != price-1 {
		t.Errorf("expected money unchanged, got %d", ps.Money)
	}
	if ps.HasItem(catalog.ItemPistol) {
		t.Error("expected no pistol on failed purchase")
	}
	if ps.Points != 0 {
		t.Errorf("expected no points on failed purchase, got %d", ps.Points)
	}
	if out.Text == "" {
		t.Error("expected insufficient-funds narrative")
	}
}

func TestLabDoor_BranchesOnDoorFlag(t *testing.T) {
	e := testEngine()

	ps := namedPlayer(catalog.SceneStreet)
	e.Dispatch(ps, catalog.ActionLabX18)
	if ps.CurrentScene != catalog.SceneLabX18 {
		t.Errorf("expected lab entrance with door closed, got %q", ps.CurrentScene)
	}

	ps = namedPlayer(catalog.SceneStreet)
	ps.Flags.DoorOpen = true
	e.Dispatch(ps, catalog.ActionLabX18)
	if ps.CurrentScene != catalog.SceneLabX18In {
		t.Errorf("expected lab interior with door open, got %q", ps.CurrentScene)
	}
}

func TestTryDoor_InformationalBranch(t *testing.T) {
	e := testEngine()

	// Without the key: hint, state untouched.
	ps := namedPlayer(catalog.SceneLabX18)
	out := e.Dispatch(ps, catalog.ActionTryDoor)
	if ps.Flags.DoorOpen {
		t.Error("try_door must not open the door")
	}
	for _, a := range out.Actions {
		if a == catalog.ActionUseKey {
			t.Error("use_key offered without the key")
		}
	}

	// With the key: the unlock action is offered.
	ps.AddItem(catalog.ItemKeyX18)
	out = e.Dispatch(ps, catalog.ActionTryDoor)
	if len(out.Actions) != 1 || out.Actions[0] != catalog.ActionUseKey {
		t.Errorf("expected use_key offered, got %v", out.Actions)
	}
}

func TestUseKey_ConsumesKeyExactlyOnce(t *testing.T) {
	e := testEngine()
	ps := namedPlayer(catalog.SceneLabX18)
	ps.AddItem(catalog.ItemKeyX18)

	e.Dispatch(ps, catalog.ActionUseKey)

	if !ps.Flags.DoorOpen {
		t.Error("expected door-open flag set")
	}
	if ps.HasItem(catalog.ItemKeyX18) {
		t.Error("expected key consumed")
	}
	if ps.Points != 20 {
		t.Errorf("expected 20 points, got %d", ps.Points)
	}

	// Repeating the action cannot re-add the key or re-grant points.
	e.Dispatch(ps, catalog.ActionUseKey)
	if ps.HasItem(catalog.ItemKeyX18) {
		t.Error("key reappeared on repeat")
	}
	if ps.Points != 20 {
		t.Errorf("expected points unchanged on repeat, got %d", ps.Points)
	}
}

func TestGoRoom_DefeatWithoutPistol(t *testing.T) {
	e := testEngine()
	ps := namedPlayer(catalog.SceneLabX18In)

	out := e.Dispatch(ps, catalog.ActionGoRoom)

	if len(out.Actions) != 0 {
		t.Errorf("expected empty action set on defeat, got %v", out.Actions)
	}
	if out.Text == "" {
		t.Error("expected defeat narrative")
	}
}

func TestGoRoom_AmbushWithPistol(t *testing.T) {
	e := testEngine()
	ps := namedPlayer(catalog.SceneLabX18In)
	ps.AddItem(catalog.ItemPistol)

	out := e.Dispatch(ps, catalog.ActionGoRoom)

	if len(out.Actions) != 1 || out.Actions[0] != catalog.ActionShoot {
		t.Errorf("expected shoot offered, got %v", out.Actions)
	}
	if ps.CurrentScene != catalog.SceneLabX18In {
		t.Errorf("ambush must not move the player, got %q", ps.CurrentScene)
	}
}

func TestGoRoom_CalmAfterKill(t *testing.T) {
	e := testEngine()
	ps := namedPlayer(catalog.SceneLabX18In)
	ps.Flags.KilledMonster = true

	e.Dispatch(ps, catalog.ActionGoRoom)

	if ps.CurrentScene != catalog.SceneRoom {
		t.Errorf("expected room scene, got %q", ps.CurrentScene)
	}
}

func TestShoot_KillsAndAdvances(t *testing.T) {
	e := testEngine()
	ps := namedPlayer(catalog.SceneLabX18In)
	ps.AddItem(catalog.ItemPistol)

	e.Dispatch(ps, catalog.ActionShoot)

	if !ps.Flags.KilledMonster {
		t.Error("expected killed flag set")
	}
	if ps.Points != 100 {
		t.Errorf("expected 100 points, got %d", ps.Points)
	}
	if ps.CurrentScene != catalog.SceneRoom {
		t.Errorf("expected room scene, got %q", ps.CurrentScene)
	}
}

func TestGiveDoc_Delivery(t *testing.T) {
	tests := []struct {
		name       string
		hasDocs    bool
		wantMoney  int
		wantPoints int
	}{
		{
			name:       "with documents grants reward",
			hasDocs:    true,
			wantMoney:  state.StartingMoney + 2000,
			wantPoints: 500,
		},
		{
			name:       "without documents is rejected",
			hasDocs:    false,
			wantMoney:  state.StartingMoney,
			wantPoints: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := testEngine()
			ps := namedPlayer(catalog.SceneSidorovich)
			if tt.hasDocs {
				ps.AddItem(catalog.ItemDocuments)
			}

			out := e.Dispatch(ps, catalog.ActionGiveDoc)

			if ps.CurrentScene != catalog.SceneEnd {
				t.Errorf("expected end scene, got %q", ps.CurrentScene)
			}
			if ps.Money != tt.wantMoney {
				t.Errorf("expected money %d, got %d", tt.wantMoney, ps.Money)
			}
			if ps.Points != tt.wantPoints {
				t.Errorf("expected points %d, got %d", tt.wantPoints, ps.Points)
			}
			if out.Text == "" {
				t.Error("expected delivery narrative")
			}
		})
	}
}

func TestBack_StaticPredecessorMap(t *testing.T) {
	e := testEngine()

	tests := []struct {
		from catalog.SceneID
		want catalog.SceneID
	}{
		{catalog.SceneStreet, catalog.SceneSidorovich},
		{catalog.SceneHouse, catalog.SceneStreet},
		{catalog.SceneLabX18, catalog.SceneStreet},
		{catalog.SceneLabX18In, catalog.SceneStreet},
		{catalog.SceneShop, catalog.SceneSidorovich},
		{catalog.SceneRoom, catalog.SceneLabX18In},
		{catalog.SceneEnd, catalog.SceneSidorovich},
	}

	for _, tt := range tests {
		ps := namedPlayer(tt.from)
		e.Dispatch(ps, catalog.ActionBack)
		if ps.CurrentScene != tt.want {
			t.Errorf("back from %q: expected %q, got %q", tt.from, tt.want, ps.CurrentScene)
		}

		// The predecessor is static, not a history stack: repeating the
		// round trip always lands on the same scene.
		ps.CurrentScene = tt.from
		e.Dispatch(ps, catalog.ActionBack)
		if ps.CurrentScene != tt.want {
			t.Errorf("second back from %q: expected %q, got %q", tt.from, tt.want, ps.CurrentScene)
		}
	}
}

func TestBack_NoPredecessorIsNoOp(t *testing.T) {
	e := testEngine()
	ps := namedPlayer(catalog.SceneSidorovich)

	e.Dispatch(ps, catalog.ActionBack)

	if ps.CurrentScene != catalog.SceneSidorovich {
		t.Errorf("back without predecessor moved player to %q", ps.CurrentScene)
	}
}

func TestToSidr_BackAlias(t *testing.T) {
	e := testEngine()
	ps := namedPlayer(catalog.SceneEnd)

	e.Dispatch(ps, catalog.ActionToSidr)

	if ps.CurrentScene != catalog.SceneSidorovich {
		t.Errorf("expected sidorovich, got %q", ps.CurrentScene)
	}
}

func TestIntroCinematic_Chain(t *testing.T) {
	e := testEngine()
	ps := namedPlayer(catalog.SceneSidorovich)

	out := e.Dispatch(ps, catalog.ActionNext)
	if len(out.Actions) != 1 || out.Actions[0] != catalog.ActionNext1 {
		t.Fatalf("expected next1 after next, got %v", out.Actions)
	}

	out = e.Dispatch(ps, catalog.ActionNext1)
	if len(out.Actions) != 1 || out.Actions[0] != catalog.ActionNext2 {
		t.Fatalf("expected next2 after next1, got %v", out.Actions)
	}

	out = e.Dispatch(ps, catalog.ActionNext2)
	if out.Text != catalog.SceneText(catalog.SceneSidorovich, "Alex") {
		t.Error("expected hub scene render after the cinematic")
	}
	if ps.CurrentScene != catalog.SceneSidorovich {
		t.Errorf("cinematic must not move the player, got %q", ps.CurrentScene)
	}
}

func TestQuestsView_TracksDocuments(t *testing.T) {
	e := testEngine()

	ps := namedPlayer(catalog.SceneStreet)
	out := e.Dispatch(ps, catalog.ActionQuests)
	if !strings.Contains(out.Text, "Find the documents") {
		t.Errorf("expected active quest before documents found, got %q", out.Text)
	}

	ps.AddItem(catalog.ItemDocuments)
	out = e.Dispatch(ps, catalog.ActionQuests)
	if !strings.Contains(out.Text, "No active quests") {
		t.Errorf("expected no active quests after documents found, got %q", out.Text)
	}
}
