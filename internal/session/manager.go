package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lk16/flippy/arena/internal/ai"
	"github.com/lk16/flippy/arena/internal/models"
	"github.com/lk16/flippy/arena/internal/othello"
	"github.com/lk16/flippy/arena/internal/repository"
)

// Manager runs sessions on top of a Store and records finished games.
// Requests for the same session are serialized within a process, stores detect
// concurrent saves from other processes with ErrConflict.
type Manager struct {
	store   Store
	results repository.Results
	locks   *keyedMutex
}

// NewManager creates a Manager.
func NewManager(store Store, results repository.Results) *Manager {
	return &Manager{store: store, results: results, locks: newKeyedMutex()}
}

// Results returns the result ledger.
func (m *Manager) Results() repository.Results {
	return m.results
}

// NewGame starts and stores a new session.
func (m *Manager) NewGame(ctx context.Context, difficulty ai.Difficulty, human othello.Cell) (models.GameView, error) {
	s, err := New(difficulty, human, nil)
	if err != nil {
		return models.GameView{}, err
	}

	if err = m.finish(ctx, s); err != nil {
		return models.GameView{}, err
	}

	slog.Info("Started game", "session", s.ID(), "difficulty", difficulty, "human", human.String())

	return s.View(s.Moves()), nil
}

// Get returns the current state of a session.
func (m *Manager) Get(ctx context.Context, id string) (models.GameView, error) {
	s, err := m.store.Load(ctx, id)
	if err != nil {
		return models.GameView{}, err
	}

	return s.View(nil), nil
}

// Move plays a human move and the computer replies.
func (m *Manager) Move(ctx context.Context, id string, sq othello.Square) (models.GameView, error) {
	unlock := m.locks.Lock(id)
	defer unlock()

	s, err := m.store.Load(ctx, id)
	if err != nil {
		return models.GameView{}, err
	}

	applied, err := s.PlayHuman(sq)
	if err != nil {
		return models.GameView{}, err
	}

	if err = m.finish(ctx, s); err != nil {
		return models.GameView{}, err
	}

	return s.View(applied), nil
}

// Pass passes for the human and the computer replies.
func (m *Manager) Pass(ctx context.Context, id string) (models.GameView, error) {
	unlock := m.locks.Lock(id)
	defer unlock()

	s, err := m.store.Load(ctx, id)
	if err != nil {
		return models.GameView{}, err
	}

	applied, err := s.PassHuman()
	if err != nil {
		return models.GameView{}, err
	}

	if err = m.finish(ctx, s); err != nil {
		return models.GameView{}, err
	}

	return s.View(applied), nil
}

// Delete removes a session.
func (m *Manager) Delete(ctx context.Context, id string) error {
	unlock := m.locks.Lock(id)
	defer unlock()

	return m.store.Delete(ctx, id)
}

// finish records the result if the game just ended and saves the session.
func (m *Manager) finish(ctx context.Context, s *Session) error {
	if result, ok := s.Result(); ok {
		if err := m.results.Record(ctx, result); err != nil {
			return fmt.Errorf("failed to record result: %w", err)
		}

		s.MarkRecorded()
		slog.Info("Game finished", "session", s.ID(), "difficulty", result.Difficulty, "winner", result.Winner)
	}

	if err := m.store.Save(ctx, s); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}
