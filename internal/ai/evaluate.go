package ai

import "github.com/lk16/flippy/arena/internal/othello"

const (
	cornerValue      = 25
	cornerFactor     = 10
	positionalFactor = 0.5
	phaseFactor      = 5
)

var corners = [4]othello.Square{
	{Row: 0, Col: 0}, {Row: 0, Col: 7}, {Row: 7, Col: 0}, {Row: 7, Col: 7},
}

// Evaluate scores a board from the perspective of aiPlayer, higher is better.
// Mobility weighs more early in the game, disc count weighs more towards the end.
func Evaluate(board *othello.Board, aiPlayer othello.Cell) float64 {
	humanPlayer := aiPlayer.Opponent()

	counts := board.CountPieces()
	aiCount := counts.Of(aiPlayer)
	humanCount := counts.Of(humanPlayer)

	cornerScore := 0
	for _, sq := range corners {
		switch board.GetCell(sq.Row, sq.Col) {
		case aiPlayer:
			cornerScore += cornerValue
		case humanPlayer:
			cornerScore -= cornerValue
		}
	}

	aiMoves := len(othello.ValidMoves(board, aiPlayer))
	humanMoves := len(othello.ValidMoves(board, humanPlayer))
	mobilityScore := ratio(aiMoves, humanMoves)

	positionalScore := 0
	for row := range othello.BoardSize {
		for col := range othello.BoardSize {
			switch board.GetCell(row, col) {
			case aiPlayer:
				positionalScore += PositionWeights[row][col]
			case humanPlayer:
				positionalScore -= PositionWeights[row][col]
			}
		}
	}

	discScore := ratio(aiCount, humanCount)

	progress := float64(counts.Black+counts.White) / float64(othello.BoardSize*othello.BoardSize)
	mobilityWeight := phaseFactor * (1 - progress)
	discWeight := phaseFactor * progress

	return float64(cornerScore*cornerFactor) +
		mobilityScore*mobilityWeight +
		float64(positionalScore)*positionalFactor +
		discScore*discWeight
}

// ratio returns 100 * (a - b) / (a + b), or 0 if both are zero.
func ratio(a, b int) float64 {
	if a+b == 0 {
		return 0
	}
	return 100 * float64(a-b) / float64(a+b)
}
