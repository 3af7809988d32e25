package models

import (
	"errors"
	"time"

	"github.com/lk16/flippy/arena/internal/ai"
	"github.com/lk16/flippy/arena/internal/othello"
)

// NewGameRequest represents the payload for starting a game.
type NewGameRequest struct {
	Difficulty string `json:"difficulty"`
	Color      string `json:"color"`
}

// Validate checks the request and returns the parsed difficulty and human color.
// An empty color means the human plays black.
func (r *NewGameRequest) Validate() (ai.Difficulty, othello.Cell, error) {
	difficulty, err := ai.ParseDifficulty(r.Difficulty)
	if err != nil {
		return "", othello.EMPTY, err
	}

	if r.Color == "" {
		return difficulty, othello.BLACK, nil
	}

	color, err := othello.ParseColor(r.Color)
	if err != nil {
		return "", othello.EMPTY, err
	}

	return difficulty, color, nil
}

// MoveRequest represents the payload for playing a move, in field notation.
type MoveRequest struct {
	Square string `json:"square"`
}

// Validate parses the square.
func (r *MoveRequest) Validate() (othello.Square, error) {
	if r.Square == "" {
		return othello.Square{}, errors.New("square field is either empty or missing")
	}
	return othello.ParseSquare(r.Square)
}

// Move is a played move as shown to clients.
type Move struct {
	Player  string   `json:"player"`
	Square  string   `json:"square"`
	Flipped []string `json:"flipped"`
}

// NewMove converts a MoveResult.
func NewMove(result othello.MoveResult) Move {
	flipped := make([]string, len(result.Flipped))
	for i, sq := range result.Flipped {
		flipped[i] = sq.String()
	}

	return Move{
		Player:  result.Player.String(),
		Square:  result.Placed.String(),
		Flipped: flipped,
	}
}

// GameView is the state of a game as shown to clients.
type GameView struct {
	ID         string         `json:"id"`
	Difficulty ai.Difficulty  `json:"difficulty"`
	Human      string         `json:"human"`
	Board      []string       `json:"board"`
	Turn       string         `json:"turn"`
	Counts     othello.Counts `json:"counts"`
	Hints      []string       `json:"hints"`
	Over       bool           `json:"over"`
	Winner     string         `json:"winner,omitempty"`
	MoveCount  int            `json:"move_count"`
	Applied    []Move         `json:"applied"`
}

// Result is a finished game as stored in the results table.
type Result struct {
	ID         string    `json:"id"          db:"id"`
	Difficulty string    `json:"difficulty"  db:"difficulty"`
	Human      string    `json:"human"       db:"human_color"`
	Winner     string    `json:"winner"      db:"winner"`
	Black      int       `json:"black"       db:"black_discs"`
	White      int       `json:"white"       db:"white_discs"`
	Moves      int       `json:"moves"       db:"moves"`
	FinishedAt time.Time `json:"finished_at" db:"finished_at"`
}

// WinnerName returns "black", "white" or "draw".
func WinnerName(winner othello.Cell) string {
	if winner == othello.DRAW {
		return "draw"
	}
	return winner.String()
}

// DifficultyStats aggregates finished games of one difficulty.
type DifficultyStats struct {
	Difficulty string `json:"difficulty" db:"difficulty"`
	Games      int    `json:"games"      db:"games"`
	HumanWins  int    `json:"human_wins" db:"human_wins"`
	AIWins     int    `json:"ai_wins"    db:"ai_wins"`
	Draws      int    `json:"draws"      db:"draws"`
}

// StatsResponse represents the response of the stats endpoint.
type StatsResponse struct {
	Stats []DifficultyStats `json:"stats"`
}
