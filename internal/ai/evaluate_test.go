package ai

import (
	"testing"

	"github.com/lk16/flippy/arena/internal/othello"
	"github.com/stretchr/testify/require"
)

func mustBoard(t *testing.T, s string) *othello.Board {
	t.Helper()

	board, err := othello.NewBoardFromString(s)
	require.NoError(t, err)
	return board
}

func TestPositionWeights_Symmetric(t *testing.T) {
	last := othello.BoardSize - 1

	for row := range othello.BoardSize {
		for col := range othello.BoardSize {
			w := PositionWeights[row][col]
			require.Equal(t, w, PositionWeights[col][row])
			require.Equal(t, w, PositionWeights[last-row][col])
			require.Equal(t, w, PositionWeights[row][last-col])
		}
	}

	require.Equal(t, 100, PositionWeights[0][0])
	require.Equal(t, -20, PositionWeights[0][1])
	require.Equal(t, -50, PositionWeights[1][1])
	require.Equal(t, 10, PositionWeights[0][2])
	require.Equal(t, 0, PositionWeights[3][3])
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		board    string
		aiPlayer othello.Cell
		want     float64
	}{
		{
			name:     "start position",
			board:    othello.NewBoardStart().String(),
			aiPlayer: othello.BLACK,
			want:     0,
		},
		{
			name:     "corner and mobility for black",
			board:    "X--------O" + repeat("-", 54),
			aiPlayer: othello.BLACK,
			want:     250 + 484.375 + 75,
		},
		{
			name:     "corner and mobility seen by white",
			board:    "X--------O" + repeat("-", 54),
			aiPlayer: othello.WHITE,
			want:     -(250 + 484.375 + 75),
		},
		{
			name:     "disc difference",
			board:    "XX" + repeat("-", 61) + "O",
			aiPlayer: othello.BLACK,
			want:     -10 + (100.0/3)*(5*3.0/64),
		},
		{
			name:     "empty board",
			board:    repeat("-", 64),
			aiPlayer: othello.WHITE,
			want:     0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			board := mustBoard(t, test.board)
			require.InDelta(t, test.want, Evaluate(board, test.aiPlayer), 1e-9)
		})
	}
}

func TestEvaluate_DoesNotModifyBoard(t *testing.T) {
	board := othello.NewBoardStart()
	before := board.Clone()

	Evaluate(board, othello.WHITE)
	require.True(t, before.Equal(board))
}

func repeat(s string, n int) string {
	out := ""
	for range n {
		out += s
	}
	return out
}
