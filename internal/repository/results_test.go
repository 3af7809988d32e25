package repository

import (
	"context"
	"testing"
	"time"

	"github.com/lk16/flippy/arena/internal/models"
	"github.com/stretchr/testify/require"
)

func TestMemoryResults(t *testing.T) {
	ctx := context.Background()
	results := NewMemoryResults()

	games := []models.Result{
		{ID: "1", Difficulty: "easy", Human: "black", Winner: "black"},
		{ID: "2", Difficulty: "easy", Human: "white", Winner: "black"},
		{ID: "3", Difficulty: "hard", Human: "black", Winner: "draw"},
		{ID: "4", Difficulty: "hard", Human: "black", Winner: "white"},
		{ID: "4", Difficulty: "hard", Human: "black", Winner: "white"},
	}

	for _, game := range games {
		game.FinishedAt = time.Now()
		require.NoError(t, results.Record(ctx, game))
	}

	stats, err := results.Stats(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, []models.DifficultyStats{
		{Difficulty: "easy", Games: 2, HumanWins: 1, AIWins: 1, Draws: 0},
		{Difficulty: "hard", Games: 2, HumanWins: 0, AIWins: 1, Draws: 1},
	}, stats)

	stats, err = results.Stats(ctx, []string{"hard"})
	require.NoError(t, err)
	require.Len(t, stats, 1)
	require.Equal(t, "hard", stats[0].Difficulty)

	stats, err = results.Stats(ctx, []string{"medium"})
	require.NoError(t, err)
	require.Empty(t, stats)
}
