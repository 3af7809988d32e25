package ai

import (
	"math"

	"github.com/lk16/flippy/arena/internal/othello"
)

const (
	// DefaultDepth is the search depth used by the hard difficulty.
	DefaultDepth = 5

	// winScore is returned for finished games, it exceeds any heuristic score.
	winScore = 10000
)

// MinimaxStrategy searches a fixed number of plies with alpha-beta pruning.
type MinimaxStrategy struct {
	depth int
}

// NewMinimaxStrategy creates a MinimaxStrategy. Negative depths are treated as zero.
func NewMinimaxStrategy(depth int) *MinimaxStrategy {
	return &MinimaxStrategy{depth: max(depth, 0)}
}

// Depth returns the search depth in plies.
func (s *MinimaxStrategy) Depth() int {
	return s.depth
}

// SearchResult is the outcome of a search from the root.
type SearchResult struct {
	Move  othello.Square
	Score float64
	Nodes uint64
}

// PickMove implements Strategy.
func (s *MinimaxStrategy) PickMove(board *othello.Board, player othello.Cell) (othello.Square, error) {
	result, err := s.Search(board, player)
	if err != nil {
		return othello.Square{}, err
	}
	return result.Move, nil
}

// Search returns the best move for player together with its score. Ties are won by the
// first move in row-major order. The board is not modified.
func (s *MinimaxStrategy) Search(board *othello.Board, player othello.Cell) (SearchResult, error) {
	moves, err := validMoves(board, player)
	if err != nil {
		return SearchResult{}, err
	}

	search := &search{aiPlayer: player}

	result := SearchResult{
		Move:  moves[0],
		Score: math.Inf(-1),
	}

	for _, move := range moves {
		child, _ := othello.ApplyMove(board, move.Row, move.Col, player)
		score := search.alphaBeta(child, s.depth-1, math.Inf(-1), math.Inf(1), false)

		if score > result.Score {
			result.Score = score
			result.Move = move
		}
	}

	result.Nodes = search.nodes
	return result, nil
}

// search holds the state of a single search.
type search struct {
	aiPlayer othello.Cell
	nodes    uint64
}

func (s *search) alphaBeta(board *othello.Board, depth int, alpha, beta float64, maximizing bool) float64 {
	s.nodes++

	mover := s.aiPlayer
	if !maximizing {
		mover = s.aiPlayer.Opponent()
	}

	moves := othello.ValidMoves(board, mover)

	if len(moves) == 0 {
		if !othello.HasMoves(board, mover.Opponent()) {
			return s.finalScore(board)
		}

		// Pass: the other side moves on the same board.
		return s.alphaBeta(board, depth-1, alpha, beta, !maximizing)
	}

	// Depth can drop below zero when passing at the horizon.
	if depth <= 0 {
		return Evaluate(board, s.aiPlayer)
	}

	if maximizing {
		best := math.Inf(-1)
		for _, move := range moves {
			child, _ := othello.ApplyMove(board, move.Row, move.Col, mover)
			score := s.alphaBeta(child, depth-1, alpha, beta, false)
			best = math.Max(best, score)
			alpha = math.Max(alpha, score)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := math.Inf(1)
	for _, move := range moves {
		child, _ := othello.ApplyMove(board, move.Row, move.Col, mover)
		score := s.alphaBeta(child, depth-1, alpha, beta, true)
		best = math.Min(best, score)
		beta = math.Min(beta, score)
		if beta <= alpha {
			break
		}
	}
	return best
}

// finalScore scores a finished game.
func (s *search) finalScore(board *othello.Board) float64 {
	counts := board.CountPieces()
	aiCount := counts.Of(s.aiPlayer)
	humanCount := counts.Of(s.aiPlayer.Opponent())

	switch {
	case aiCount > humanCount:
		return winScore
	case aiCount < humanCount:
		return -winScore
	default:
		return 0
	}
}
