package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/lk16/flippy/arena/internal/config"
	"github.com/lk16/flippy/arena/internal/models"
)

const (
	// Hard games can take a while to reply
	clientTimeout = 30 * time.Second
)

// APIError is returned when the server replies with an error status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned status %d: %s", e.StatusCode, e.Message)
}

// IsStatus checks if err is an APIError with the given status code.
func IsStatus(err error, statusCode int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == statusCode
}

// Client talks to the game API of a server.
type Client struct {
	// config contains details on how to connect to the server
	config *config.ClientConfig

	httpClient *http.Client
}

func NewClient(config *config.ClientConfig) *Client {
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: clientTimeout,
		},
	}
}

// redactedHeaders are replaced by a placeholder when requests are logged.
var redactedHeaders = map[string]bool{
	"x-token":       true,
	"authorization": true,
}

// curlCommand renders req as a curl command with secrets redacted. The body of req is restored.
func curlCommand(req *http.Request) string {
	var builder strings.Builder
	builder.WriteString("curl -X ")
	builder.WriteString(req.Method)
	builder.WriteString(" '")
	builder.WriteString(req.URL.String())
	builder.WriteString("'")

	for key, values := range req.Header {
		key = strings.ToLower(key)
		for _, value := range values {
			if redactedHeaders[key] {
				value = "[REDACTED]"
			}

			builder.WriteString(" -H '")
			builder.WriteString(key)
			builder.WriteString(": ")
			builder.WriteString(value)
			builder.WriteString("'")
		}
	}

	if req.Body != nil && req.Body != http.NoBody {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			slog.Error("Failed to read request body", "error", err)
		}

		if len(body) > 0 {
			builder.WriteString(" -d '")
			builder.WriteString(strings.ReplaceAll(strings.TrimSpace(string(body)), "'", "'\\''"))
			builder.WriteString("'")
		}

		// Restore the original body
		req.Body = io.NopCloser(bytes.NewBuffer(body))
	}

	return builder.String()
}

func (c *Client) logRequestAsCurl(req *http.Request) {
	// Do not build string if we're not logging it
	if !slog.Default().Enabled(req.Context(), slog.LevelDebug) {
		return
	}

	slog.Debug("Sending request", "command", curlCommand(req))
}

func (c *Client) request(ctx context.Context, method string, path string, payload any, result any) error {
	var body io.Reader = http.NoBody

	if payload != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(payload); err != nil {
			return fmt.Errorf("failed to encode payload: %w", err)
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.ServerURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.config.Token != "" {
		req.Header.Set("X-Token", c.config.Token)
	}

	c.logRequestAsCurl(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	slog.Debug("Response", "status", resp.Status, "body", string(bodyBytes))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: resp.Status}

		var errBody struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(bodyBytes, &errBody) == nil && errBody.Error != "" {
			apiErr.Message = errBody.Error
		}

		return apiErr
	}

	if result == nil {
		return nil
	}

	if err = json.Unmarshal(bodyBytes, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// NewGame starts a game. An empty color lets the human play black.
func (c *Client) NewGame(ctx context.Context, difficulty string, color string) (models.GameView, error) {
	payload := models.NewGameRequest{Difficulty: difficulty, Color: color}

	var view models.GameView
	if err := c.request(ctx, http.MethodPost, "/api/games", payload, &view); err != nil {
		return models.GameView{}, fmt.Errorf("failed to start game: %w", err)
	}

	return view, nil
}

// Game returns the state of a game.
func (c *Client) Game(ctx context.Context, id string) (models.GameView, error) {
	var view models.GameView
	if err := c.request(ctx, http.MethodGet, "/api/games/"+id, nil, &view); err != nil {
		return models.GameView{}, fmt.Errorf("failed to get game: %w", err)
	}

	return view, nil
}

// Move plays square, in field notation, in game id.
func (c *Client) Move(ctx context.Context, id string, square string) (models.GameView, error) {
	payload := models.MoveRequest{Square: square}

	var view models.GameView
	if err := c.request(ctx, http.MethodPost, "/api/games/"+id+"/moves", payload, &view); err != nil {
		return models.GameView{}, fmt.Errorf("failed to play move: %w", err)
	}

	return view, nil
}

// Pass passes in game id.
func (c *Client) Pass(ctx context.Context, id string) (models.GameView, error) {
	var view models.GameView
	if err := c.request(ctx, http.MethodPost, "/api/games/"+id+"/pass", nil, &view); err != nil {
		return models.GameView{}, fmt.Errorf("failed to pass: %w", err)
	}

	return view, nil
}

// DeleteGame removes game id.
func (c *Client) DeleteGame(ctx context.Context, id string) error {
	if err := c.request(ctx, http.MethodDelete, "/api/games/"+id, nil, nil); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

// Stats returns statistics of finished games, optionally filtered by difficulty.
func (c *Client) Stats(ctx context.Context, difficulties ...string) ([]models.DifficultyStats, error) {
	path := "/api/stats"
	if len(difficulties) > 0 {
		path += "?difficulty=" + strings.Join(difficulties, ",")
	}

	var stats models.StatsResponse
	if err := c.request(ctx, http.MethodGet, path, nil, &stats); err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return stats.Stats, nil
}
