package ai

import "github.com/lk16/flippy/arena/internal/othello"

// PositionWeights is the classic positional weight table. Corners can never be flipped,
// the squares next to them give the opponent access to the corner.
var PositionWeights = [othello.BoardSize][othello.BoardSize]int{
	{100, -20, 10, 5, 5, 10, -20, 100},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{10, -2, 1, 1, 1, 1, -2, 10},
	{5, -2, 1, 0, 0, 1, -2, 5},
	{5, -2, 1, 0, 0, 1, -2, 5},
	{10, -2, 1, 1, 1, 1, -2, 10},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{100, -20, 10, 5, 5, 10, -20, 100},
}

// weight returns the positional weight of a square.
func weight(sq othello.Square) int {
	return PositionWeights[sq.Row][sq.Col]
}
