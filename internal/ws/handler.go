package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/lk16/flippy/arena/internal/models"
	"github.com/lk16/flippy/arena/internal/session"
)

const (
	requestTimeout = 30 * time.Second
)

var errMissingGameID = errors.New("game_id field is either empty or missing")

type Handler struct {
	manager *session.Manager
	ws      *websocket.Conn
}

// NewHandler creates a new Handler.
func NewHandler(ws *websocket.Conn, manager *session.Manager) *Handler {
	return &Handler{manager: manager, ws: ws}
}

// parseMessage decodes a frame into a request.
func parseMessage(msgType int, msg []byte) (*Incoming, error) {
	if msgType != websocket.TextMessage {
		return nil, fmt.Errorf("unexpected message type: %d", msgType)
	}

	var req Incoming
	if err := json.Unmarshal(msg, &req); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return &req, nil
}

func (h *Handler) writeMessage(outgoing *Outgoing) error {
	msg, err := json.Marshal(outgoing)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	slog.Debug("write ws message", "msg", string(msg))

	if err = h.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

// handleMessage dispatches a request. Errors caused by the request are returned in the reply,
// so a client can keep using the connection after an illegal move.
func (h *Handler) handleMessage(ctx context.Context, req *Incoming) *Outgoing {
	data, err := h.dispatch(ctx, req)
	if err != nil {
		return &Outgoing{ID: req.ID, Error: err.Error()}
	}

	return &Outgoing{ID: req.ID, Data: data}
}

func (h *Handler) dispatch(ctx context.Context, req *Incoming) (any, error) {
	if req.Event == "" {
		return nil, errors.New("event field is either empty or missing")
	}

	switch req.Event {
	case "new_game":
		return h.handleNewGame(ctx, req)
	case "move":
		return h.handleMove(ctx, req)
	case "pass":
		return h.handlePass(ctx, req)
	case "state":
		return h.handleState(ctx, req)
	default:
		return nil, fmt.Errorf("unknown event: %s", req.Event)
	}
}

// reply builds the reply to a frame. Frames that cannot be decoded get an error reply with ID 0.
func (h *Handler) reply(msgType int, msg []byte) *Outgoing {
	req, err := parseMessage(msgType, msg)
	if err != nil {
		return &Outgoing{Error: err.Error()}
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	return h.handleMessage(ctx, req)
}

// Handle handles the websocket connection until it is closed.
func (h *Handler) Handle() error {
	for {
		msgType, msg, err := h.ws.ReadMessage()
		if err != nil {
			return fmt.Errorf("ws read error: %w", err)
		}

		slog.Debug("read ws message", "msgType", msgType, "msg", string(msg))

		if err = h.writeMessage(h.reply(msgType, msg)); err != nil {
			return fmt.Errorf("ws write error: %w", err)
		}
	}
}

func decode(req *Incoming, v any) error {
	if len(req.Data) == 0 {
		return errors.New("data field is either empty or missing")
	}

	if err := json.Unmarshal(req.Data, v); err != nil {
		return fmt.Errorf("%s request unmarshal error: %w", req.Event, err)
	}

	return nil
}

func (h *Handler) handleNewGame(ctx context.Context, req *Incoming) (models.GameView, error) {
	var reqData NewGameRequest
	if err := decode(req, &reqData); err != nil {
		return models.GameView{}, err
	}

	difficulty, human, err := reqData.Validate()
	if err != nil {
		return models.GameView{}, err
	}

	return h.manager.NewGame(ctx, difficulty, human)
}

func (h *Handler) handleMove(ctx context.Context, req *Incoming) (models.GameView, error) {
	var reqData MoveRequest
	if err := decode(req, &reqData); err != nil {
		return models.GameView{}, err
	}

	if reqData.GameID == "" {
		return models.GameView{}, errMissingGameID
	}

	sq, err := reqData.Validate()
	if err != nil {
		return models.GameView{}, err
	}

	return h.manager.Move(ctx, reqData.GameID, sq)
}

func (h *Handler) handlePass(ctx context.Context, req *Incoming) (models.GameView, error) {
	var reqData GameRequest
	if err := decode(req, &reqData); err != nil {
		return models.GameView{}, err
	}

	if reqData.GameID == "" {
		return models.GameView{}, errMissingGameID
	}

	return h.manager.Pass(ctx, reqData.GameID)
}

func (h *Handler) handleState(ctx context.Context, req *Incoming) (models.GameView, error) {
	var reqData GameRequest
	if err := decode(req, &reqData); err != nil {
		return models.GameView{}, err
	}

	if reqData.GameID == "" {
		return models.GameView{}, errMissingGameID
	}

	return h.manager.Get(ctx, reqData.GameID)
}
