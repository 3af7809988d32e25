package ai

import (
	"testing"

	"github.com/lk16/flippy/arena/internal/othello"
	"github.com/stretchr/testify/require"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input   string
		want    Difficulty
		wantErr bool
	}{
		{input: "easy", want: Easy},
		{input: "Medium", want: Medium},
		{input: " HARD ", want: Hard},
		{input: "impossible", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			difficulty, err := ParseDifficulty(test.input)
			if test.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, test.want, difficulty)
		})
	}
}

func TestNewPlayer(t *testing.T) {
	player, err := NewPlayer(Easy, nil)
	require.NoError(t, err)
	require.IsType(t, &RandomStrategy{}, player.Strategy())
	require.Equal(t, Easy, player.Difficulty())

	player, err = NewPlayer(Medium, NewSource(1))
	require.NoError(t, err)
	require.IsType(t, &GreedyStrategy{}, player.Strategy())

	player, err = NewPlayer(Hard, nil)
	require.NoError(t, err)
	require.IsType(t, &MinimaxStrategy{}, player.Strategy())
	require.Equal(t, DefaultDepth, player.Strategy().(*MinimaxStrategy).Depth())

	_, err = NewPlayer(Difficulty("expert"), nil)
	require.Error(t, err)
}

func TestPlayer_PlaysFullGame(t *testing.T) {
	for _, difficulty := range []Difficulty{Easy, Medium, Hard} {
		t.Run(string(difficulty), func(t *testing.T) {
			player, err := NewPlayer(difficulty, NewSource(5))
			require.NoError(t, err)

			game := othello.NewGame()
			for !game.IsOver() {
				move, err := player.PickMove(game.Board(), game.Turn())
				require.NoError(t, err)

				_, ok := game.MakeMove(move.Row, move.Col)
				require.True(t, ok)
			}

			_, err = player.PickMove(game.Board(), game.Turn())
			require.ErrorIs(t, err, ErrNoValidMoves)
		})
	}
}
