package ws

import (
	"encoding/json"

	"github.com/lk16/flippy/arena/internal/models"
)

type Incoming struct {
	Event string          `json:"event"`
	ID    int             `json:"id"`
	Data  json.RawMessage `json:"data"`
}

type Outgoing struct {
	ID    int    `json:"id"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

type NewGameRequest = models.NewGameRequest

type MoveRequest struct {
	GameID string `json:"game_id"`
	models.MoveRequest
}

// GameRequest is used for events that only need a game, such as pass and state.
type GameRequest struct {
	GameID string `json:"game_id"`
}
