package game

import (
	"encoding/json"
	"testing"
)

func TestProjectStateMasksUnrevealedColors(t *testing.T) {
	g := startedGame(t)

	if err := g.Guess("alice", 0, NewTurnPolicy(POLICY_MANUAL)); err != nil {
		t.Fatalf("guess failed: %v", err)
	}

	view := ProjectState(g)

	if view.Type != VIEW_STATE {
		t.Fatalf("expected State view, got %q", view.Type)
	}
	if len(view.Board) != BOARD_SIZE {
		t.Fatalf("view should carry the full board, got %d cards", len(view.Board))
	}

	if view.Board[0].Color == nil || *view.Board[0].Color != COLOR_RED {
		t.Fatalf("revealed card should show its color")
	}
	if !view.Board[0].Revealed {
		t.Fatalf("revealed card should be flagged revealed")
	}

	for i := 1; i < BOARD_SIZE; i++ {
		if view.Board[i].Color != nil {
			t.Fatalf("unrevealed card %d should have a null color", i)
		}
	}
}

func TestProjectStateStripsAllSecrets(t *testing.T) {
	g := startedGame(t)

	if err := g.Guess("alice", 0, NewTurnPolicy(POLICY_MANUAL)); err != nil {
		t.Fatalf("guess failed: %v", err)
	}

	view := ProjectState(g)

	for name, p := range view.Players {
		if p.SpymasterSecret != "" {
			t.Fatalf("state view leaked the secret of %q", name)
		}
	}

	// 回合日志里内嵌的玩家同样不能带凭证
	head := view.Turns[0]
	if head.Data.Spymaster.SpymasterSecret != "" {
		t.Fatalf("state view leaked the spymaster secret via the turn log")
	}
	for _, guess := range head.Data.Guesses {
		if guess.Player.SpymasterSecret != "" {
			t.Fatalf("state view leaked a secret via a guess record")
		}
	}
}

func TestProjectDataShowsAllColorsAndOwnSecretOnly(t *testing.T) {
	g := startedGame(t)

	if err := g.Join(Player{Name: "Eve", Team: TEAM_BLUE, SpymasterSecret: "y"}, 0); err != nil {
		t.Fatalf("join failed: %v", err)
	}

	view := ProjectData(g, "Bob")

	if view.Type != VIEW_DATA {
		t.Fatalf("expected Data view, got %q", view.Type)
	}

	for i, card := range view.Board {
		if card.Color == nil {
			t.Fatalf("data view should show the color of card %d", i)
		}
	}

	if view.Players["bob"].SpymasterSecret != "s" {
		t.Fatalf("data view should echo the requester's own secret")
	}
	if view.Players["eve"].SpymasterSecret != "" {
		t.Fatalf("data view leaked another spymaster's secret")
	}
}

func TestProjectForSelectsViewByRole(t *testing.T) {
	g := startedGame(t)

	spymasterView, err := ProjectFor(g, "bob")
	if err != nil {
		t.Fatalf("project for spymaster failed: %v", err)
	}
	if spymasterView.Type != VIEW_DATA {
		t.Fatalf("spymaster should get the Data view, got %q", spymasterView.Type)
	}

	operativeView, err := ProjectFor(g, "alice")
	if err != nil {
		t.Fatalf("project for operative failed: %v", err)
	}
	if operativeView.Type != VIEW_STATE {
		t.Fatalf("operative should get the State view, got %q", operativeView.Type)
	}

	if _, err := ProjectFor(g, "nobody"); err == nil {
		t.Fatalf("unknown requester should be rejected")
	}
}

func TestViewIsDetachedFromGameState(t *testing.T) {
	g := startedGame(t)

	view := ProjectState(g)

	// 修改视图不触动原始状态
	view.Players["alice"] = Player{Name: "Mallory", Team: TEAM_BLUE}
	view.Turns[0].Data.Clue.Word = "tampered"

	if g.CurrentTurn().Data.Clue.Word != "apple" {
		t.Fatalf("mutating a view must not touch the game state")
	}
	if p, _ := g.Player("alice"); p.Name != "Alice" {
		t.Fatalf("mutating a view must not touch the roster")
	}
}

func TestTurnMarshalJSON(t *testing.T) {
	pending, err := json.Marshal(NewPendingTurn(TEAM_BLUE))
	if err != nil {
		t.Fatalf("marshal pending turn failed: %v", err)
	}
	if string(pending) != `{"type":"Pending","data":"Blue"}` {
		t.Fatalf("unexpected pending turn json: %s", pending)
	}

	started, err := json.Marshal(NewStartedTurn(redSpymaster(), Clue{Word: "apple", Amount: 2}))
	if err != nil {
		t.Fatalf("marshal started turn failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(started, &decoded); err != nil {
		t.Fatalf("unmarshal started turn failed: %v", err)
	}
	if decoded["type"] != TURN_STARTED {
		t.Fatalf("started turn should be tagged Started, got %v", decoded["type"])
	}

	data, ok := decoded["data"].(map[string]any)
	if !ok {
		t.Fatalf("started turn data should be an object, got %T", decoded["data"])
	}
	if data["guesses"] == nil {
		t.Fatalf("started turn should serialize an empty guess list, not null")
	}
}
