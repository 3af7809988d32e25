package othello

// directions are scanned in this order, which fixes the order of flipped discs.
var directions = [8]Square{
	{Row: -1, Col: -1}, {Row: -1, Col: 0}, {Row: -1, Col: 1},
	{Row: 0, Col: -1}, {Row: 0, Col: 1},
	{Row: 1, Col: -1}, {Row: 1, Col: 0}, {Row: 1, Col: 1},
}

func inBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// MoveResult describes a move that was played.
type MoveResult struct {
	Player  Cell     `json:"player"`
	Placed  Square   `json:"placed"`
	Flipped []Square `json:"flipped"`
}

// FlippedDiscs returns the opponent discs that would be flipped if player placed a disc on (row, col).
// Discs are ordered by direction, then by distance from the placed disc.
// The result is empty if the square is occupied or the move captures nothing.
func FlippedDiscs(board *Board, row, col int, player Cell) []Square {
	if board.GetCell(row, col) != EMPTY {
		return nil
	}

	opp := player.Opponent()
	var flipped []Square

	for _, dir := range directions {
		r := row + dir.Row
		c := col + dir.Col
		start := len(flipped)

		for inBounds(r, c) && board.GetCell(r, c) == opp {
			flipped = append(flipped, Square{Row: r, Col: c})
			r += dir.Row
			c += dir.Col
		}

		// Drop the line unless it is closed by one of our own discs.
		if !inBounds(r, c) || board.GetCell(r, c) != player {
			flipped = flipped[:start]
		}
	}

	if len(flipped) == 0 {
		return nil
	}

	return flipped
}

// IsValidMove checks if player can place a disc on (row, col).
func IsValidMove(board *Board, row, col int, player Cell) bool {
	return len(FlippedDiscs(board, row, col, player)) > 0
}

// ValidMoves returns all valid moves for player in row-major order.
func ValidMoves(board *Board, player Cell) []Square {
	var moves []Square
	for row := range BoardSize {
		for col := range BoardSize {
			if IsValidMove(board, row, col, player) {
				moves = append(moves, Square{Row: row, Col: col})
			}
		}
	}
	return moves
}

// HasMoves checks if player has at least one valid move.
func HasMoves(board *Board, player Cell) bool {
	for row := range BoardSize {
		for col := range BoardSize {
			if IsValidMove(board, row, col, player) {
				return true
			}
		}
	}
	return false
}

// ApplyMove returns a copy of board with the move played and the discs that were flipped.
// The input board is never modified.
func ApplyMove(board *Board, row, col int, player Cell) (*Board, []Square) {
	flipped := FlippedDiscs(board, row, col, player)

	child := board.Clone()
	child.SetCell(row, col, player)
	for _, sq := range flipped {
		child.SetCell(sq.Row, sq.Col, player)
	}

	return child, flipped
}
