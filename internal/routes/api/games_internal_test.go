package api

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/flippy/arena/internal/session"
	"github.com/stretchr/testify/require"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{session.ErrSessionNotFound, fiber.StatusNotFound},
		{fmt.Errorf("failed to save session: %w", session.ErrSessionNotFound), fiber.StatusNotFound},
		{session.ErrIllegalMove, fiber.StatusConflict},
		{session.ErrNotYourTurn, fiber.StatusConflict},
		{session.ErrGameOver, fiber.StatusConflict},
		{session.ErrCannotPass, fiber.StatusConflict},
		{fmt.Errorf("failed to save session: %w", session.ErrConflict), fiber.StatusConflict},
		{errors.New("redis is down"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			require.Equal(t, tt.status, errorStatus(tt.err))
		})
	}
}
