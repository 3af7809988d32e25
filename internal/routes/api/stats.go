package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/flippy/arena/internal/models"
)

// GetStats returns results per difficulty. The optional difficulty query parameter is a comma separated filter.
func GetStats(c *fiber.Ctx) error {
	var difficulties []string
	if filter := c.Query("difficulty"); filter != "" {
		difficulties = strings.Split(filter, ",")
	}

	stats, err := getManager(c).Results().Stats(c.Context(), difficulties)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.StatsResponse{Stats: stats})
}
