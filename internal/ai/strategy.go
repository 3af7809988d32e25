package ai

import (
	"errors"
	"math/rand"
	"time"

	"github.com/lk16/flippy/arena/internal/othello"
)

var (
	ErrNoValidMoves  = errors.New("no valid moves")
	ErrInvalidPlayer = errors.New("player must be black or white")
)

// Strategy picks a move for player on board.
type Strategy interface {
	PickMove(board *othello.Board, player othello.Cell) (othello.Square, error)
}

// Source is a source of uniform randomness. *rand.Rand implements it.
type Source interface {
	// Intn returns a number in [0, n).
	Intn(n int) int

	// Float64 returns a number in [0, 1).
	Float64() float64
}

// NewSource returns a Source seeded with seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed)) //nolint:gosec
}

func defaultSource() Source {
	return NewSource(time.Now().UnixNano())
}

// validMoves returns the moves of player, or an error if there are none.
func validMoves(board *othello.Board, player othello.Cell) ([]othello.Square, error) {
	if player != othello.BLACK && player != othello.WHITE {
		return nil, ErrInvalidPlayer
	}

	moves := othello.ValidMoves(board, player)
	if len(moves) == 0 {
		return nil, ErrNoValidMoves
	}

	return moves, nil
}

// RandomStrategy picks any valid move with equal probability.
type RandomStrategy struct {
	src Source
}

// NewRandomStrategy creates a RandomStrategy. A nil src uses a time seeded source.
func NewRandomStrategy(src Source) *RandomStrategy {
	if src == nil {
		src = defaultSource()
	}
	return &RandomStrategy{src: src}
}

// PickMove implements Strategy.
func (s *RandomStrategy) PickMove(board *othello.Board, player othello.Cell) (othello.Square, error) {
	moves, err := validMoves(board, player)
	if err != nil {
		return othello.Square{}, err
	}

	return moves[s.src.Intn(len(moves))], nil
}

// greedyJitter is the upper bound of the random amount added to each move score.
const greedyJitter = 3

// GreedyStrategy picks the move on the square with the highest positional weight.
// A small random amount is added to each score so play is not fully predictable.
type GreedyStrategy struct {
	src Source
}

// NewGreedyStrategy creates a GreedyStrategy. A nil src uses a time seeded source.
func NewGreedyStrategy(src Source) *GreedyStrategy {
	if src == nil {
		src = defaultSource()
	}
	return &GreedyStrategy{src: src}
}

// PickMove implements Strategy.
func (s *GreedyStrategy) PickMove(board *othello.Board, player othello.Cell) (othello.Square, error) {
	moves, err := validMoves(board, player)
	if err != nil {
		return othello.Square{}, err
	}

	bestMove := moves[0]
	bestScore := 0.0

	for i, move := range moves {
		score := float64(weight(move)) + s.src.Float64()*greedyJitter
		if i == 0 || score > bestScore {
			bestScore = score
			bestMove = move
		}
	}

	return bestMove, nil
}
