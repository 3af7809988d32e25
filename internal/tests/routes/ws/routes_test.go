package ws_test

import (
	"net"
	"testing"

	"github.com/fasthttp/websocket"
	"github.com/lk16/flippy/arena/internal/tests"
	"github.com/stretchr/testify/require"
)

type reply struct {
	ID    int            `json:"id"`
	Data  map[string]any `json:"data"`
	Error string         `json:"error"`
}

func dial(t *testing.T) *websocket.Conn {
	t.Helper()

	app := tests.StartApplication()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() {
		_ = app.Listener(ln)
	}()

	t.Cleanup(func() {
		_ = app.Shutdown()
	})

	conn, resp, err := websocket.DefaultDialer.Dial("ws://"+ln.Addr().String()+"/ws", nil)
	require.NoError(t, err)
	resp.Body.Close()

	t.Cleanup(func() {
		_ = conn.Close()
	})

	return conn
}

func TestWebsocketBadFrameKeepsConnection(t *testing.T) {
	conn := dial(t)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))

	var got reply
	require.NoError(t, conn.ReadJSON(&got))
	require.Equal(t, 0, got.ID)
	require.NotEmpty(t, got.Error)

	require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, []byte{1, 2, 3}))

	got = reply{}
	require.NoError(t, conn.ReadJSON(&got))
	require.NotEmpty(t, got.Error)

	request := map[string]any{
		"event": "new_game",
		"id":    1,
		"data":  map[string]string{"difficulty": "easy"},
	}
	require.NoError(t, conn.WriteJSON(request))

	got = reply{}
	require.NoError(t, conn.ReadJSON(&got))
	require.Equal(t, 1, got.ID)
	require.Empty(t, got.Error)
	require.Equal(t, "black", got.Data["turn"])
}

func TestWebsocketIllegalMove(t *testing.T) {
	conn := dial(t)

	require.NoError(t, conn.WriteJSON(map[string]any{
		"event": "new_game",
		"id":    1,
		"data":  map[string]string{"difficulty": "medium"},
	}))

	var created reply
	require.NoError(t, conn.ReadJSON(&created))
	gameID, ok := created.Data["id"].(string)
	require.True(t, ok)

	require.NoError(t, conn.WriteJSON(map[string]any{
		"event": "move",
		"id":    2,
		"data":  map[string]string{"game_id": gameID, "square": "a1"},
	}))

	var rejected reply
	require.NoError(t, conn.ReadJSON(&rejected))
	require.Equal(t, 2, rejected.ID)
	require.Contains(t, rejected.Error, "illegal move")

	require.NoError(t, conn.WriteJSON(map[string]any{
		"event": "move",
		"id":    3,
		"data":  map[string]string{"game_id": gameID, "square": "d3"},
	}))

	var played reply
	require.NoError(t, conn.ReadJSON(&played))
	require.Equal(t, 3, played.ID)
	require.Empty(t, played.Error)
	require.InDelta(t, 2, played.Data["move_count"], 0)
}
