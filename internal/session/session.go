package session

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lk16/flippy/arena/internal/ai"
	"github.com/lk16/flippy/arena/internal/models"
	"github.com/lk16/flippy/arena/internal/othello"
)

var (
	ErrGameOver    = errors.New("game is over")
	ErrNotYourTurn = errors.New("not your turn")
	ErrIllegalMove = errors.New("illegal move")
	ErrCannotPass  = errors.New("cannot pass while moves are available")
	ErrConflict    = errors.New("session was changed by another request")
)

// Session is a game between a human and a computer opponent.
type Session struct {
	id         string
	difficulty ai.Difficulty
	human      othello.Cell
	createdAt  time.Time

	game   *othello.Game
	player *ai.Player

	// moves contains every move played in this session
	moves []othello.MoveResult

	// recorded is set once the finished game has been stored as a result
	recorded bool

	// version is the number of times the session was saved, stores reject saves of stale versions
	version int
}

// New starts a session. If the human plays white the computer plays its first move right away.
// A nil src uses a time seeded source.
func New(difficulty ai.Difficulty, human othello.Cell, src ai.Source) (*Session, error) {
	if human != othello.BLACK && human != othello.WHITE {
		return nil, ai.ErrInvalidPlayer
	}

	player, err := ai.NewPlayer(difficulty, src)
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:         uuid.New().String(),
		difficulty: difficulty,
		human:      human,
		createdAt:  time.Now().UTC().Round(0),
		game:       othello.NewGame(),
		player:     player,
		moves:      make([]othello.MoveResult, 0),
	}

	if _, err = s.playComputer(); err != nil {
		return nil, err
	}

	return s, nil
}

// Snapshot is the serializable form of a Session.
type Snapshot struct {
	ID         string               `json:"id"`
	Difficulty ai.Difficulty        `json:"difficulty"`
	Human      othello.Cell         `json:"human"`
	CreatedAt  time.Time            `json:"created_at"`
	State      othello.State        `json:"state"`
	Moves      []othello.MoveResult `json:"moves"`
	Recorded   bool                 `json:"recorded"`
	Version    int                  `json:"version"`
}

// Restore recreates a session from a snapshot.
func Restore(snapshot Snapshot, src ai.Source) (*Session, error) {
	if snapshot.Human != othello.BLACK && snapshot.Human != othello.WHITE {
		return nil, ai.ErrInvalidPlayer
	}

	game, err := othello.NewGameFromState(snapshot.State)
	if err != nil {
		return nil, fmt.Errorf("failed to restore game: %w", err)
	}

	player, err := ai.NewPlayer(snapshot.Difficulty, src)
	if err != nil {
		return nil, err
	}

	moves := snapshot.Moves
	if moves == nil {
		moves = make([]othello.MoveResult, 0)
	}

	return &Session{
		id:         snapshot.ID,
		difficulty: snapshot.Difficulty,
		human:      snapshot.Human,
		createdAt:  snapshot.CreatedAt,
		game:       game,
		player:     player,
		moves:      moves,
		recorded:   snapshot.Recorded,
		version:    snapshot.Version,
	}, nil
}

// Snapshot returns the serializable form of the session.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:         s.id,
		Difficulty: s.difficulty,
		Human:      s.human,
		CreatedAt:  s.createdAt,
		State:      s.game.State(),
		Moves:      s.moves,
		Recorded:   s.recorded,
		Version:    s.version,
	}
}

// Version returns the number of times the session was saved.
func (s *Session) Version() int {
	return s.version
}

// ID returns the session ID.
func (s *Session) ID() string {
	return s.id
}

// Difficulty returns the difficulty of the computer opponent.
func (s *Session) Difficulty() ai.Difficulty {
	return s.difficulty
}

// Human returns the color of the human player.
func (s *Session) Human() othello.Cell {
	return s.human
}

// Game returns the game. Callers must not play moves on it directly.
func (s *Session) Game() *othello.Game {
	return s.game
}

// Moves returns all moves played so far.
func (s *Session) Moves() []othello.MoveResult {
	return s.moves
}

// Hints returns the valid moves of the human, or nothing if it is not the human's turn.
func (s *Session) Hints() []othello.Square {
	if s.game.IsOver() || s.game.Turn() != s.human {
		return nil
	}
	return s.game.ValidMovesForCurrent()
}

// PlayHuman plays a move for the human followed by the replies of the computer.
// It returns all moves that were applied, the human move first.
func (s *Session) PlayHuman(sq othello.Square) ([]othello.MoveResult, error) {
	if s.game.IsOver() {
		return nil, ErrGameOver
	}

	if s.game.Turn() != s.human {
		return nil, ErrNotYourTurn
	}

	if !sq.InBounds() {
		return nil, fmt.Errorf("%w: square is not on the board", ErrIllegalMove)
	}

	result, ok := s.game.MakeMove(sq.Row, sq.Col)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrIllegalMove, sq)
	}

	s.moves = append(s.moves, result)
	slog.Debug("Human move", "session", s.id, "square", sq.String(), "flipped", len(result.Flipped))

	replies, err := s.playComputer()
	if err != nil {
		return nil, err
	}

	return append([]othello.MoveResult{result}, replies...), nil
}

// PassHuman passes for the human, which is only allowed without valid moves. The computer replies afterwards.
func (s *Session) PassHuman() ([]othello.MoveResult, error) {
	if s.game.IsOver() {
		return nil, ErrGameOver
	}

	if s.game.Turn() != s.human {
		return nil, ErrNotYourTurn
	}

	if !s.game.PassTurn() {
		return nil, ErrCannotPass
	}

	slog.Debug("Human passed", "session", s.id)

	return s.playComputer()
}

// playComputer plays moves for the computer for as long as it is its turn.
func (s *Session) playComputer() ([]othello.MoveResult, error) {
	computer := s.human.Opponent()
	applied := make([]othello.MoveResult, 0)

	for !s.game.IsOver() && s.game.Turn() == computer {
		sq, err := s.player.PickMove(s.game.Board(), computer)
		if errors.Is(err, ai.ErrNoValidMoves) {
			if !s.game.PassTurn() {
				return nil, err
			}
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("computer failed to pick a move: %w", err)
		}

		result, ok := s.game.MakeMove(sq.Row, sq.Col)
		if !ok {
			return nil, fmt.Errorf("computer picked an illegal move: %s", sq)
		}

		s.moves = append(s.moves, result)
		applied = append(applied, result)
		slog.Debug("Computer move", "session", s.id, "difficulty", s.difficulty, "square", sq.String())
	}

	return applied, nil
}

// Result returns the result of a finished game and whether it still needs to be recorded.
func (s *Session) Result() (models.Result, bool) {
	if !s.game.IsOver() || s.recorded {
		return models.Result{}, false
	}

	counts := s.game.Counts()
	return models.Result{
		ID:         s.id,
		Difficulty: string(s.difficulty),
		Human:      s.human.String(),
		Winner:     models.WinnerName(s.game.Winner()),
		Black:      counts.Black,
		White:      counts.White,
		Moves:      len(s.moves),
		FinishedAt: time.Now(),
	}, true
}

// MarkRecorded marks the result as stored.
func (s *Session) MarkRecorded() {
	s.recorded = true
}

// View returns the state of the session for clients, including the moves that were just applied.
func (s *Session) View(applied []othello.MoveResult) models.GameView {
	hints := s.Hints()
	hintFields := make([]string, len(hints))
	for i, sq := range hints {
		hintFields[i] = sq.String()
	}

	appliedMoves := make([]models.Move, len(applied))
	for i, result := range applied {
		appliedMoves[i] = models.NewMove(result)
	}

	view := models.GameView{
		ID:         s.id,
		Difficulty: s.difficulty,
		Human:      s.human.String(),
		Board:      s.game.Board().Rows(),
		Turn:       s.game.Turn().String(),
		Counts:     s.game.Counts(),
		Hints:      hintFields,
		Over:       s.game.IsOver(),
		MoveCount:  len(s.moves),
		Applied:    appliedMoves,
	}

	if view.Over {
		view.Winner = models.WinnerName(s.game.Winner())
	}

	return view
}
