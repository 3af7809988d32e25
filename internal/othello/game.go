package othello

import (
	"errors"
	"fmt"
)

// Game is the state machine of a single game: the board, whose turn it is and whether the game has ended.
type Game struct {
	// board is owned by the game and mutated in place by moves
	board *Board

	// turn is the color to move, never EMPTY
	turn Cell

	over bool

	// winner is DRAW while the game is running or when it ended in a draw
	winner Cell

	// passes counts consecutive turns without a move, the game ends at two
	passes int
}

// NewGame creates a new game with the starting position and black to move.
func NewGame() *Game {
	return NewGameWithStart(NewBoardStart(), BLACK)
}

// NewGameWithStart creates a new game from a custom position. This allows for custom start positions for debugging.
func NewGameWithStart(start *Board, turn Cell) *Game {
	if turn != WHITE {
		turn = BLACK
	}

	return &Game{
		board:  start.Clone(),
		turn:   turn,
		winner: DRAW,
	}
}

// State is a serializable snapshot of a Game.
type State struct {
	Board  string `json:"board"`
	Turn   Cell   `json:"turn"`
	Over   bool   `json:"over"`
	Winner Cell   `json:"winner"`
	Passes int    `json:"passes"`
}

// NewGameFromState restores a game from a snapshot created by Game.State.
func NewGameFromState(state State) (*Game, error) {
	board, err := NewBoardFromString(state.Board)
	if err != nil {
		return nil, fmt.Errorf("failed to parse board: %w", err)
	}

	if state.Turn != BLACK && state.Turn != WHITE {
		return nil, errors.New("turn must be black or white")
	}

	if state.Winner > WHITE {
		return nil, fmt.Errorf("invalid winner: %d", state.Winner)
	}

	return &Game{
		board:  board,
		turn:   state.Turn,
		over:   state.Over,
		winner: state.Winner,
		passes: state.Passes,
	}, nil
}

// State returns a snapshot of the game.
func (g *Game) State() State {
	return State{
		Board:  g.board.String(),
		Turn:   g.turn,
		Over:   g.over,
		Winner: g.winner,
		Passes: g.passes,
	}
}

// Board returns a copy of the current board.
func (g *Game) Board() *Board {
	return g.board.Clone()
}

// Turn returns the color to move.
func (g *Game) Turn() Cell {
	return g.turn
}

// IsOver returns whether the game has ended.
func (g *Game) IsOver() bool {
	return g.over
}

// Winner returns the winning color, or DRAW if there is none (yet).
func (g *Game) Winner() Cell {
	return g.winner
}

// ConsecutivePasses returns the pass counter. Its value only matters for deciding when the game ends.
func (g *Game) ConsecutivePasses() int {
	return g.passes
}

// Counts returns the disc counts of the current board.
func (g *Game) Counts() Counts {
	return g.board.CountPieces()
}

// IsBoardFull checks if there are no empty squares left.
func (g *Game) IsBoardFull() bool {
	return g.board.CountPieces().Empty == 0
}

// ValidMovesForCurrent returns the valid moves of the player to move.
func (g *Game) ValidMovesForCurrent() []Square {
	return ValidMoves(g.board, g.turn)
}

// MakeMove plays a move for the player to move. It returns false without changing
// anything if the game is over or the move is not valid.
func (g *Game) MakeMove(row, col int) (MoveResult, bool) {
	if g.over {
		return MoveResult{}, false
	}

	flipped := FlippedDiscs(g.board, row, col, g.turn)
	if len(flipped) == 0 {
		return MoveResult{}, false
	}

	g.board.SetCell(row, col, g.turn)
	for _, sq := range flipped {
		g.board.SetCell(sq.Row, sq.Col, g.turn)
	}

	g.passes = 0
	result := MoveResult{
		Player:  g.turn,
		Placed:  Square{Row: row, Col: col},
		Flipped: flipped,
	}

	g.switchTurn()
	return result, true
}

// PassTurn passes for the player to move. It is only allowed when that player has no valid moves.
func (g *Game) PassTurn() bool {
	if g.over {
		return false
	}

	if HasMoves(g.board, g.turn) {
		return false
	}

	g.passes++
	if g.passes >= 2 {
		g.end()
		return true
	}

	g.turn = g.turn.Opponent()
	return true
}

// switchTurn hands the turn to the opponent, passing back automatically if the opponent cannot move.
func (g *Game) switchTurn() {
	g.turn = g.turn.Opponent()

	if HasMoves(g.board, g.turn) {
		g.passes = 0
		return
	}

	g.passes++
	if g.passes >= 2 {
		g.end()
		return
	}

	g.turn = g.turn.Opponent()

	// Neither side can move.
	if !HasMoves(g.board, g.turn) {
		g.passes++
		g.end()
	}
}

// end marks the game as over and determines the winner by disc count.
func (g *Game) end() {
	g.over = true

	counts := g.board.CountPieces()
	switch {
	case counts.Black > counts.White:
		g.winner = BLACK
	case counts.White > counts.Black:
		g.winner = WHITE
	default:
		g.winner = DRAW
	}
}
