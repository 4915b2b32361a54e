package server

import (
	"fitgpt/internal/cache"
	"fitgpt/internal/models"
	"fitgpt/internal/service"

	"github.com/gofiber/fiber/v2"
)

// profileUpdateRequest uses pointers so absent fields are distinguishable
// from fields explicitly set to their zero value.
type profileUpdateRequest struct {
	BodyType           *string `json:"body_type"`
	Lifestyle          *string `json:"lifestyle"`
	ComfortPreference  *string `json:"comfort_preference"`
	OnboardingComplete *bool   `json:"onboarding_complete"`
}

// GetMe returns the authenticated user's profile.
func (s *Server) GetMe(c *fiber.Ctx) error {
	return c.JSON(currentUser(c))
}

// UpdateMyProfile applies a partial update to the caller's style profile.
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req profileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithAppError(c, models.NewValidationError("Invalid request body"))
	}

	user, err := s.users.UpdateProfile(c.Context(), currentUser(c).ID, service.ProfileUpdateInput{
		BodyType:           req.BodyType,
		Lifestyle:          req.Lifestyle,
		ComfortPreference:  req.ComfortPreference,
		OnboardingComplete: req.OnboardingComplete,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(user)
}

// DeleteMe removes the caller's account along with their wardrobe.
func (s *Server) DeleteMe(c *fiber.Ctx) error {
	user := currentUser(c)

	if err := s.users.DeleteAccount(c.Context(), user.ID); err != nil {
		return models.RespondWithAppError(c, err)
	}

	cache.Invalidate(c.Context(), wardrobeCacheKey(user.ID))

	return c.JSON(fiber.Map{
		"detail": "Account deleted successfully",
	})
}
