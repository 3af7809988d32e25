package arena

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/lk16/flippy/arena/internal/ai"
	"github.com/lk16/flippy/arena/internal/othello"
)

// Config describes a match between two computer players.
type Config struct {
	Black ai.Difficulty
	White ai.Difficulty
	Games int

	// Seed makes matches reproducible, game i uses Seed+i. Zero seeds from the clock.
	Seed int64
}

// GameResult is the outcome of a single game.
type GameResult struct {
	Winner othello.Cell
	Counts othello.Counts
	Moves  int
	Passes int
}

// Summary aggregates the results of a match.
type Summary struct {
	Games     int
	BlackWins int
	WhiteWins int
	Draws     int

	// BlackDiscs and WhiteDiscs are summed over all games
	BlackDiscs int
	WhiteDiscs int
}

func (s *Summary) add(result GameResult) {
	s.Games++
	s.BlackDiscs += result.Counts.Black
	s.WhiteDiscs += result.Counts.White

	switch result.Winner {
	case othello.BLACK:
		s.BlackWins++
	case othello.WHITE:
		s.WhiteWins++
	default:
		s.Draws++
	}
}

// PlayGame plays black against white from the start position until the game ends.
func PlayGame(black, white *ai.Player) (GameResult, error) {
	game := othello.NewGame()
	result := GameResult{}

	for !game.IsOver() {
		player := black
		if game.Turn() == othello.WHITE {
			player = white
		}

		sq, err := player.PickMove(game.Board(), game.Turn())
		if errors.Is(err, ai.ErrNoValidMoves) {
			if !game.PassTurn() {
				return GameResult{}, err
			}
			result.Passes++
			continue
		}

		if err != nil {
			return GameResult{}, fmt.Errorf("failed to pick move: %w", err)
		}

		if _, ok := game.MakeMove(sq.Row, sq.Col); !ok {
			return GameResult{}, fmt.Errorf("%s picked illegal move %s", player.Difficulty(), sq)
		}
		result.Moves++
	}

	result.Winner = game.Winner()
	result.Counts = game.Counts()
	return result, nil
}

func newSource(seed int64, game int) ai.Source {
	if seed == 0 {
		return nil
	}
	return ai.NewSource(seed + int64(game))
}

// Run plays cfg.Games games and returns the summary.
func Run(cfg Config) (Summary, error) {
	summary := Summary{}

	for i := range cfg.Games {
		black, err := ai.NewPlayer(cfg.Black, newSource(cfg.Seed, i))
		if err != nil {
			return summary, err
		}

		white, err := ai.NewPlayer(cfg.White, newSource(cfg.Seed, i))
		if err != nil {
			return summary, err
		}

		result, err := PlayGame(black, white)
		if err != nil {
			return summary, fmt.Errorf("game %d: %w", i+1, err)
		}

		summary.add(result)

		slog.Info("Game finished",
			"game", i+1,
			"winner", result.Winner.String(),
			"black", result.Counts.Black,
			"white", result.Counts.White,
			"moves", result.Moves,
		)
	}

	return summary, nil
}
