package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/flippy/arena/internal/models"
	"github.com/lk16/flippy/arena/internal/session"
)

// errorStatus maps session errors to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, session.ErrIllegalMove),
		errors.Is(err, session.ErrNotYourTurn),
		errors.Is(err, session.ErrGameOver),
		errors.Is(err, session.ErrCannotPass),
		errors.Is(err, session.ErrConflict):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func errorResponse(c *fiber.Ctx, err error) error {
	status := errorStatus(err)
	if status == fiber.StatusInternalServerError {
		slog.Error("Request failed", "path", c.Path(), "error", err)
	}

	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// NewGame starts a game against the computer.
func NewGame(c *fiber.Ctx) error {
	var payload models.NewGameRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	difficulty, human, err := payload.Validate()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	view, err := getManager(c).NewGame(c.Context(), difficulty, human)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(view)
}

// GetGame returns the state of a game.
func GetGame(c *fiber.Ctx) error {
	view, err := getManager(c).Get(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(view)
}

// PlayMove plays a move for the human, the response includes the replies of the computer.
func PlayMove(c *fiber.Ctx) error {
	var payload models.MoveRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	sq, err := payload.Validate()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	view, err := getManager(c).Move(c.Context(), c.Params("id"), sq)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(view)
}

// Pass passes for the human when there are no valid moves.
func Pass(c *fiber.Ctx) error {
	view, err := getManager(c).Pass(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(view)
}

// DeleteGame removes a game.
func DeleteGame(c *fiber.Ctx) error {
	if err := getManager(c).Delete(c.Context(), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
