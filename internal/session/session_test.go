package session

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/lk16/flippy/arena/internal/ai"
	"github.com/lk16/flippy/arena/internal/othello"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s, err := New(ai.Medium, othello.BLACK, ai.NewSource(1))
	require.NoError(t, err)

	require.NotEmpty(t, s.ID())
	require.Equal(t, ai.Medium, s.Difficulty())
	require.Equal(t, othello.BLACK, s.Human())
	require.Empty(t, s.Moves())
	require.Len(t, s.Hints(), 4)
}

func TestNew_ComputerOpens(t *testing.T) {
	s, err := New(ai.Easy, othello.WHITE, ai.NewSource(1))
	require.NoError(t, err)

	require.Len(t, s.Moves(), 1)
	require.Equal(t, othello.BLACK, s.Moves()[0].Player)
	require.Equal(t, othello.WHITE, s.Game().Turn())
	require.NotEmpty(t, s.Hints())
}

func TestNew_Errors(t *testing.T) {
	_, err := New(ai.Easy, othello.EMPTY, nil)
	require.ErrorIs(t, err, ai.ErrInvalidPlayer)

	_, err = New(ai.Difficulty("expert"), othello.BLACK, nil)
	require.Error(t, err)
}

func TestSession_PlayHuman(t *testing.T) {
	s, err := New(ai.Hard, othello.BLACK, nil)
	require.NoError(t, err)

	applied, err := s.PlayHuman(othello.Square{Row: 2, Col: 3})
	require.NoError(t, err)

	require.Len(t, applied, 2)
	require.Equal(t, othello.BLACK, applied[0].Player)
	require.Equal(t, othello.Square{Row: 2, Col: 3}, applied[0].Placed)
	require.Equal(t, othello.WHITE, applied[1].Player)
	require.Equal(t, othello.BLACK, s.Game().Turn())
	require.Len(t, s.Moves(), 2)
}

func TestSession_PlayHumanErrors(t *testing.T) {
	s, err := New(ai.Easy, othello.BLACK, ai.NewSource(1))
	require.NoError(t, err)

	_, err = s.PlayHuman(othello.Square{Row: 0, Col: 0})
	require.ErrorIs(t, err, ErrIllegalMove)

	_, err = s.PlayHuman(othello.Square{Row: 8, Col: 0})
	require.ErrorIs(t, err, ErrIllegalMove)

	require.Empty(t, s.Moves())

	snapshot := s.Snapshot()
	snapshot.State.Turn = othello.WHITE
	notMyTurn, err := Restore(snapshot, nil)
	require.NoError(t, err)

	_, err = notMyTurn.PlayHuman(othello.Square{Row: 2, Col: 4})
	require.ErrorIs(t, err, ErrNotYourTurn)

	_, err = notMyTurn.PassHuman()
	require.ErrorIs(t, err, ErrNotYourTurn)
}

func TestSession_PassHuman(t *testing.T) {
	s, err := New(ai.Easy, othello.BLACK, ai.NewSource(1))
	require.NoError(t, err)

	_, err = s.PassHuman()
	require.ErrorIs(t, err, ErrCannotPass)

	snapshot := Snapshot{
		ID:         "pass",
		Difficulty: ai.Easy,
		Human:      othello.WHITE,
		State: othello.State{
			Board:  "XO" + strings.Repeat("-", 62),
			Turn:   othello.WHITE,
			Winner: othello.DRAW,
		},
	}

	s, err = Restore(snapshot, ai.NewSource(1))
	require.NoError(t, err)
	require.Empty(t, s.Hints())

	applied, err := s.PassHuman()
	require.NoError(t, err)
	require.Len(t, applied, 1)
	require.Equal(t, othello.Square{Row: 0, Col: 2}, applied[0].Placed)

	require.True(t, s.Game().IsOver())
	require.Equal(t, othello.BLACK, s.Game().Winner())

	_, err = s.PassHuman()
	require.ErrorIs(t, err, ErrGameOver)

	_, err = s.PlayHuman(othello.Square{Row: 0, Col: 3})
	require.ErrorIs(t, err, ErrGameOver)
}

func TestSession_FullGame(t *testing.T) {
	rng := rand.New(rand.NewSource(9))

	for _, human := range []othello.Cell{othello.BLACK, othello.WHITE} {
		s, err := New(ai.Medium, human, ai.NewSource(2))
		require.NoError(t, err)

		for !s.Game().IsOver() {
			hints := s.Hints()
			require.NotEmpty(t, hints)

			_, err = s.PlayHuman(hints[rng.Intn(len(hints))])
			require.NoError(t, err)
		}

		result, ok := s.Result()
		require.True(t, ok)
		require.Equal(t, s.ID(), result.ID)
		require.Equal(t, "medium", result.Difficulty)
		require.Equal(t, human.String(), result.Human)
		require.Equal(t, len(s.Moves()), result.Moves)

		s.MarkRecorded()
		_, ok = s.Result()
		require.False(t, ok)
	}
}

func TestSession_SnapshotRestore(t *testing.T) {
	s, err := New(ai.Medium, othello.WHITE, ai.NewSource(3))
	require.NoError(t, err)

	restored, err := Restore(s.Snapshot(), nil)
	require.NoError(t, err)

	require.Equal(t, s.Snapshot(), restored.Snapshot())
	require.Equal(t, s.View(nil), restored.View(nil))

	snapshot := s.Snapshot()
	snapshot.Human = othello.EMPTY
	_, err = Restore(snapshot, nil)
	require.ErrorIs(t, err, ai.ErrInvalidPlayer)

	snapshot = s.Snapshot()
	snapshot.State.Board = "broken"
	_, err = Restore(snapshot, nil)
	require.Error(t, err)
}

func TestSession_View(t *testing.T) {
	s, err := New(ai.Easy, othello.BLACK, ai.NewSource(1))
	require.NoError(t, err)

	view := s.View(nil)
	require.Equal(t, s.ID(), view.ID)
	require.Equal(t, "black", view.Human)
	require.Equal(t, "black", view.Turn)
	require.Equal(t, []string{"d3", "c4", "f5", "e6"}, view.Hints)
	require.Equal(t, "---OX---", view.Board[3])
	require.Equal(t, othello.Counts{Black: 2, White: 2, Empty: 60}, view.Counts)
	require.False(t, view.Over)
	require.Empty(t, view.Winner)
	require.Empty(t, view.Applied)
}
