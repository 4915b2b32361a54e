package server

import (
	"strconv"

	"fitgpt/internal/models"

	"github.com/gofiber/fiber/v2"
)

// currentUser returns the user resolved by AuthRequired. It is only valid on
// routes behind that middleware.
func currentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("currentUser").(*models.User)
	return user
}

// parseID parses a numeric path parameter. On failure it writes a validation
// error response and returns ok=false.
func parseID(c *fiber.Ctx, param string) (uint, bool) {
	raw := c.Params(param)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		_ = models.RespondWithAppError(c, models.NewValidationError("Invalid "+param+" parameter"))
		return 0, false
	}
	return uint(id), true
}
