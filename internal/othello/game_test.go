package othello //nolint:testpackage

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	game := NewGame()

	require.Equal(t, BLACK, game.Turn())
	require.False(t, game.IsOver())
	require.Equal(t, DRAW, game.Winner())
	require.Equal(t, 0, game.ConsecutivePasses())
	require.True(t, NewBoardStart().Equal(game.Board()))
	require.Len(t, game.ValidMovesForCurrent(), 4)
	require.False(t, game.IsBoardFull())
}

func TestGame_MakeMove(t *testing.T) {
	game := NewGame()

	result, ok := game.MakeMove(2, 3)
	require.True(t, ok)
	require.Equal(t, MoveResult{
		Player:  BLACK,
		Placed:  Square{Row: 2, Col: 3},
		Flipped: []Square{{Row: 3, Col: 3}},
	}, result)

	require.Equal(t, Counts{Black: 4, White: 1, Empty: 59}, game.Counts())
	require.Equal(t, WHITE, game.Turn())
	require.False(t, game.IsOver())
}

func TestGame_MakeMoveInvalid(t *testing.T) {
	tests := []struct {
		name string
		row  int
		col  int
	}{
		{name: "occupied", row: 3, col: 3},
		{name: "no flips", row: 0, col: 0},
		{name: "adjacent but no flips", row: 2, col: 2},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			game := NewGame()
			before := game.State()

			_, ok := game.MakeMove(test.row, test.col)
			require.False(t, ok)
			require.Equal(t, before, game.State())
		})
	}
}

func TestGame_MakeMoveAfterGameOver(t *testing.T) {
	game := NewGameWithStart(mustBoard(t, "-OX"+repeatEmpty(61)), BLACK)
	game.over = true

	_, ok := game.MakeMove(0, 0)
	require.False(t, ok)
}

func TestGame_OpponentPassesAutomatically(t *testing.T) {
	start := mustBoard(t, `
		XO------
		--------
		--------
		--------
		--------
		--------
		--------
		XO------`)
	game := NewGameWithStart(start, BLACK)

	require.Equal(t, []Square{{Row: 0, Col: 2}, {Row: 7, Col: 2}}, game.ValidMovesForCurrent())

	// White cannot reply, so black moves again.
	_, ok := game.MakeMove(0, 2)
	require.True(t, ok)
	require.False(t, game.IsOver())
	require.Equal(t, BLACK, game.Turn())
	require.Equal(t, 1, game.ConsecutivePasses())

	// Nobody can move after this.
	_, ok = game.MakeMove(7, 2)
	require.True(t, ok)
	require.True(t, game.IsOver())
	require.Equal(t, BLACK, game.Winner())
	require.Equal(t, Counts{Black: 6, White: 0, Empty: 58}, game.Counts())
}

func TestGame_MoveEndsGame(t *testing.T) {
	game := NewGameWithStart(mustBoard(t, "XOO-"+repeatEmpty(60)), BLACK)

	_, ok := game.MakeMove(0, 3)
	require.True(t, ok)
	require.True(t, game.IsOver())
	require.Equal(t, BLACK, game.Winner())
}

func TestGame_PassTurn(t *testing.T) {
	game := NewGame()
	require.False(t, game.PassTurn())
	require.Equal(t, BLACK, game.Turn())

	game = NewGameWithStart(mustBoard(t, "XO"+repeatEmpty(62)), WHITE)
	require.Empty(t, game.ValidMovesForCurrent())

	require.True(t, game.PassTurn())
	require.Equal(t, BLACK, game.Turn())
	require.Equal(t, 1, game.ConsecutivePasses())
	require.False(t, game.IsOver())

	// Black has a move and may not pass.
	require.False(t, game.PassTurn())
}

func TestGame_PassTurnTwiceEndsGame(t *testing.T) {
	game := NewGameWithStart(mustBoard(t, "X"+repeatEmpty(62)+"O"), BLACK)

	require.True(t, game.PassTurn())
	require.False(t, game.IsOver())
	require.Equal(t, WHITE, game.Turn())

	require.True(t, game.PassTurn())
	require.True(t, game.IsOver())
	require.Equal(t, DRAW, game.Winner())

	require.False(t, game.PassTurn())
}

func TestGame_Winner(t *testing.T) {
	tests := []struct {
		name  string
		board string
		want  Cell
	}{
		{name: "black majority", board: "XX" + repeatEmpty(61) + "O", want: BLACK},
		{name: "white majority", board: "X" + repeatEmpty(61) + "OO", want: WHITE},
		{name: "draw", board: "X" + repeatEmpty(62) + "O", want: DRAW},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			game := NewGameWithStart(mustBoard(t, test.board), BLACK)
			game.end()

			require.True(t, game.IsOver())
			require.Equal(t, test.want, game.Winner())
		})
	}
}

func TestGame_RandomGames(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for range 50 {
		game := NewGame()

		for !game.IsOver() {
			// After every move the player to move has a valid move, passes are handled by the game.
			moves := game.ValidMovesForCurrent()
			require.NotEmpty(t, moves)

			move := moves[rng.Intn(len(moves))]
			_, ok := game.MakeMove(move.Row, move.Col)
			require.True(t, ok)
		}

		board := game.Board()
		require.False(t, HasMoves(board, BLACK))
		require.False(t, HasMoves(board, WHITE))

		counts := game.Counts()
		switch {
		case counts.Black > counts.White:
			require.Equal(t, BLACK, game.Winner())
		case counts.White > counts.Black:
			require.Equal(t, WHITE, game.Winner())
		default:
			require.Equal(t, DRAW, game.Winner())
		}
	}
}

func TestGame_State(t *testing.T) {
	game := NewGame()
	_, ok := game.MakeMove(2, 3)
	require.True(t, ok)

	restored, err := NewGameFromState(game.State())
	require.NoError(t, err)
	require.Equal(t, game, restored)

	_, err = NewGameFromState(State{Board: "nope", Turn: BLACK})
	require.Error(t, err)

	_, err = NewGameFromState(State{Board: NewBoardStart().String(), Turn: EMPTY})
	require.Error(t, err)
}

func TestGame_BoardIsCopy(t *testing.T) {
	game := NewGame()

	board := game.Board()
	board.SetCell(0, 0, WHITE)

	require.Equal(t, EMPTY, game.Board().GetCell(0, 0))
}
