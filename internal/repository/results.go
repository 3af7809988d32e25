package repository

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/lk16/flippy/arena/internal/models"
)

// Results records finished games and aggregates them per difficulty.
type Results interface {
	Record(ctx context.Context, result models.Result) error

	// Stats returns statistics per difficulty, sorted by difficulty.
	// An empty filter returns all difficulties.
	Stats(ctx context.Context, difficulties []string) ([]models.DifficultyStats, error)
}

// MemoryResults keeps results in memory. It is used when no database is configured.
type MemoryResults struct {
	// results stores recorded games by ID
	results map[string]models.Result

	// mutex protects results
	mutex sync.Mutex
}

// NewMemoryResults creates an empty MemoryResults.
func NewMemoryResults() *MemoryResults {
	return &MemoryResults{
		results: make(map[string]models.Result),
	}
}

// Record stores a result. Recording the same game twice has no effect.
func (m *MemoryResults) Record(_ context.Context, result models.Result) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, ok := m.results[result.ID]; !ok {
		m.results[result.ID] = result
	}
	return nil
}

// Stats implements Results.
func (m *MemoryResults) Stats(_ context.Context, difficulties []string) ([]models.DifficultyStats, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	byDifficulty := make(map[string]*models.DifficultyStats)

	for _, result := range m.results {
		if len(difficulties) > 0 && !slices.Contains(difficulties, result.Difficulty) {
			continue
		}

		stats, ok := byDifficulty[result.Difficulty]
		if !ok {
			stats = &models.DifficultyStats{Difficulty: result.Difficulty}
			byDifficulty[result.Difficulty] = stats
		}

		stats.Games++
		switch result.Winner {
		case "draw":
			stats.Draws++
		case result.Human:
			stats.HumanWins++
		default:
			stats.AIWins++
		}
	}

	statsList := make([]models.DifficultyStats, 0, len(byDifficulty))
	for _, stats := range byDifficulty {
		statsList = append(statsList, *stats)
	}

	sort.Slice(statsList, func(i, j int) bool {
		return statsList[i].Difficulty < statsList[j].Difficulty
	})

	return statsList, nil
}
