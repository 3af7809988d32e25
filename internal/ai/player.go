package ai

import (
	"fmt"
	"strings"

	"github.com/lk16/flippy/arena/internal/othello"
)

// Difficulty selects the strategy of a Player.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// ParseDifficulty parses a difficulty name.
func ParseDifficulty(s string) (Difficulty, error) {
	difficulty := Difficulty(strings.ToLower(strings.TrimSpace(s)))

	switch difficulty {
	case Easy, Medium, Hard:
		return difficulty, nil
	default:
		return "", fmt.Errorf("unknown difficulty: %q", s)
	}
}

// Player is a computer opponent. The strategy is chosen once when the player is created.
type Player struct {
	difficulty Difficulty
	strategy   Strategy
}

// NewPlayer creates a Player for the given difficulty. src is used by the easy and medium
// strategies, a nil src uses a time seeded source.
func NewPlayer(difficulty Difficulty, src Source) (*Player, error) {
	var strategy Strategy

	switch difficulty {
	case Easy:
		strategy = NewRandomStrategy(src)
	case Medium:
		strategy = NewGreedyStrategy(src)
	case Hard:
		strategy = NewMinimaxStrategy(DefaultDepth)
	default:
		return nil, fmt.Errorf("unknown difficulty: %q", difficulty)
	}

	return &Player{
		difficulty: difficulty,
		strategy:   strategy,
	}, nil
}

// Difficulty returns the difficulty of the player.
func (p *Player) Difficulty() Difficulty {
	return p.difficulty
}

// Strategy returns the strategy of the player.
func (p *Player) Strategy() Strategy {
	return p.strategy
}

// PickMove picks a move for player on board. It returns ErrNoValidMoves if player cannot move.
func (p *Player) PickMove(board *othello.Board, player othello.Cell) (othello.Square, error) {
	return p.strategy.PickMove(board, player)
}
