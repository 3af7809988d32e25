package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/flippy/arena/internal"
	"github.com/lk16/flippy/arena/internal/config"
	"github.com/lk16/flippy/arena/internal/repository"
	"github.com/lk16/flippy/arena/internal/session"
	"github.com/stretchr/testify/require"
)

const (
	TestToken        = "test-token"
	TestAuthUsername = "test-user"
	TestAuthPassword = "test-password"
)

// StartApplication builds an app that keeps sessions and results in memory.
func StartApplication() *fiber.App {
	cfg := config.ServerConfig{
		ServerHost:        "localhost",
		ServerPort:        "3000",
		BasicAuthUsername: TestAuthUsername,
		BasicAuthPassword: TestAuthPassword,
		Token:             TestToken,
		Prefork:           false,
		SessionTTL:        time.Hour,
	}

	manager := session.NewManager(session.NewMemoryStore(cfg.SessionTTL), repository.NewMemoryResults())

	return internal.BuildApp(&cfg, manager)
}

// DoJSON sends a request with an optional JSON body and returns the response.
func DoJSON(t *testing.T, app *fiber.App, method, path string, payload any) *http.Response {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}

	req, err := http.NewRequest(method, path, &body)
	require.NoError(t, err)

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

// DecodeJSON decodes the response body and closes it.
func DecodeJSON(t *testing.T, resp *http.Response, v any) {
	t.Helper()

	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}
