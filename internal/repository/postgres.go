package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/lk16/flippy/arena/internal/models"
)

const schema = `
	CREATE TABLE IF NOT EXISTS game_results (
		id          UUID PRIMARY KEY,
		difficulty  TEXT NOT NULL,
		human_color TEXT NOT NULL,
		winner      TEXT NOT NULL,
		black_discs INTEGER NOT NULL,
		white_discs INTEGER NOT NULL,
		moves       INTEGER NOT NULL,
		finished_at TIMESTAMPTZ NOT NULL
	)
`

// ResultRepository stores finished games in Postgres.
type ResultRepository struct {
	db *sqlx.DB
}

// NewResultRepository creates a ResultRepository and makes sure the table exists.
func NewResultRepository(ctx context.Context, db *sqlx.DB) (*ResultRepository, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("error creating results table: %w", err)
	}

	return &ResultRepository{db: db}, nil
}

// Record implements Results.
func (repo *ResultRepository) Record(ctx context.Context, result models.Result) error {
	query := `
		INSERT INTO game_results (id, difficulty, human_color, winner, black_discs, white_discs, moves, finished_at)
		VALUES (:id, :difficulty, :human_color, :winner, :black_discs, :white_discs, :moves, :finished_at)
		ON CONFLICT (id) DO NOTHING
	`

	if _, err := repo.db.NamedExecContext(ctx, query, result); err != nil {
		return fmt.Errorf("error recording result: %w", err)
	}

	return nil
}

// Stats implements Results.
func (repo *ResultRepository) Stats(ctx context.Context, difficulties []string) ([]models.DifficultyStats, error) {
	query := `
		SELECT
			difficulty,
			count(*) AS games,
			count(*) FILTER (WHERE winner = human_color) AS human_wins,
			count(*) FILTER (WHERE winner <> human_color AND winner <> 'draw') AS ai_wins,
			count(*) FILTER (WHERE winner = 'draw') AS draws
		FROM game_results
		WHERE cardinality($1::text[]) = 0 OR difficulty = ANY($1)
		GROUP BY difficulty
		ORDER BY difficulty
	`

	if difficulties == nil {
		difficulties = []string{}
	}

	stats := make([]models.DifficultyStats, 0)
	if err := repo.db.SelectContext(ctx, &stats, query, pq.Array(difficulties)); err != nil {
		return nil, fmt.Errorf("error getting stats: %w", err)
	}

	return stats, nil
}
