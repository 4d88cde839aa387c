package game

import (
	"math/rand/v2"
	"reflect"
	"testing"
)

func colorCount(board []Card, color string) int {
	count := 0
	for _, card := range board {
		if card.Color == color {
			count++
		}
	}

	return count
}

func TestGenerateBoardDistribution(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	board, firstTeam := GenerateBoard(RandomWords(BOARD_SIZE, rng), rng)

	if len(board) != BOARD_SIZE {
		t.Fatalf("board size should be %d, got %d", BOARD_SIZE, len(board))
	}

	if firstTeam != TEAM_RED && firstTeam != TEAM_BLUE {
		t.Fatalf("unexpected first team: %q", firstTeam)
	}

	if got := colorCount(board, firstTeam); got != FIRST_TEAM_CARDS {
		t.Fatalf("first team should own %d cards, got %d", FIRST_TEAM_CARDS, got)
	}

	if got := colorCount(board, OtherTeam(firstTeam)); got != SECOND_TEAM_CARDS {
		t.Fatalf("second team should own %d cards, got %d", SECOND_TEAM_CARDS, got)
	}

	if got := colorCount(board, COLOR_NEUTRAL); got != NEUTRAL_CARDS {
		t.Fatalf("expected %d neutral cards, got %d", NEUTRAL_CARDS, got)
	}

	if got := colorCount(board, COLOR_ASSASSIN); got != ASSASSIN_CARDS {
		t.Fatalf("expected exactly %d assassin card, got %d", ASSASSIN_CARDS, got)
	}

	for i, card := range board {
		if card.Revealed {
			t.Fatalf("card %d should start unrevealed", i)
		}
		if card.Word == "" {
			t.Fatalf("card %d should carry a word", i)
		}
	}
}

func TestGenerateBoardDeterministic(t *testing.T) {
	words := RandomWords(BOARD_SIZE, rand.New(rand.NewPCG(1, 2)))

	boardA, teamA := GenerateBoard(words, rand.New(rand.NewPCG(42, 42)))
	boardB, teamB := GenerateBoard(words, rand.New(rand.NewPCG(42, 42)))

	if teamA != teamB {
		t.Fatalf("same seed should pick the same first team, got %q and %q", teamA, teamB)
	}

	if !reflect.DeepEqual(boardA, boardB) {
		t.Fatalf("same seed should generate identical boards")
	}
}

func TestRandomWordsDistinct(t *testing.T) {
	words := RandomWords(BOARD_SIZE, rand.New(rand.NewPCG(3, 4)))

	if len(words) != BOARD_SIZE {
		t.Fatalf("expected %d words, got %d", BOARD_SIZE, len(words))
	}

	seen := make(map[string]bool, len(words))
	for _, word := range words {
		if seen[word] {
			t.Fatalf("duplicate word in set: %q", word)
		}
		seen[word] = true
	}
}
