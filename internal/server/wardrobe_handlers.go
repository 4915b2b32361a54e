package server

import (
	"fmt"
	"time"

	"fitgpt/internal/cache"
	"fitgpt/internal/models"
	"fitgpt/internal/service"
	"fitgpt/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const wardrobeCacheTTL = 5 * time.Minute

func wardrobeCacheKey(userID uint) string {
	return fmt.Sprintf("wardrobe:%d", userID)
}

type itemRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Color    string `json:"color"`
	ImageURL string `json:"image_url"`
}

func (r itemRequest) toInput() service.ItemInput {
	return service.ItemInput{
		Name:     r.Name,
		Category: r.Category,
		Color:    r.Color,
		ImageURL: r.ImageURL,
	}
}

// CreateItem adds a clothing item to the caller's wardrobe.
func (s *Server) CreateItem(c *fiber.Ctx) error {
	var req itemRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithAppError(c, models.NewValidationError("Invalid request body"))
	}
	if err := validation.ValidateClothingItem(req.Name, req.Category, req.Color); err != nil {
		return models.RespondWithAppError(c, models.NewValidationError(err.Error()))
	}

	user := currentUser(c)
	item, err := s.wardrobe.CreateItem(c.Context(), user.ID, req.toInput())
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	cache.Invalidate(c.Context(), wardrobeCacheKey(user.ID))

	return c.JSON(item)
}

// ListItems returns the caller's wardrobe, newest list served from cache
// when available.
func (s *Server) ListItems(c *fiber.Ctx) error {
	user := currentUser(c)

	var items []models.ClothingItem
	err := cache.CacheAside(c.Context(), wardrobeCacheKey(user.ID), &items, wardrobeCacheTTL, func() error {
		fetched, err := s.wardrobe.ListItems(c.Context(), user.ID)
		if err != nil {
			return err
		}
		items = fetched
		return nil
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	if items == nil {
		items = []models.ClothingItem{}
	}
	return c.JSON(items)
}

// UpdateItem replaces the fields of an item the caller owns.
func (s *Server) UpdateItem(c *fiber.Ctx) error {
	itemID, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	var req itemRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithAppError(c, models.NewValidationError("Invalid request body"))
	}
	if err := validation.ValidateClothingItem(req.Name, req.Category, req.Color); err != nil {
		return models.RespondWithAppError(c, models.NewValidationError(err.Error()))
	}

	user := currentUser(c)
	item, err := s.wardrobe.UpdateItem(c.Context(), user.ID, itemID, req.toInput())
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	cache.Invalidate(c.Context(), wardrobeCacheKey(user.ID))

	return c.JSON(item)
}

// DeleteItem removes an item the caller owns.
func (s *Server) DeleteItem(c *fiber.Ctx) error {
	itemID, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	user := currentUser(c)
	if err := s.wardrobe.DeleteItem(c.Context(), user.ID, itemID); err != nil {
		return models.RespondWithAppError(c, err)
	}

	cache.Invalidate(c.Context(), wardrobeCacheKey(user.ID))

	return c.JSON(fiber.Map{
		"detail": "Item deleted successfully",
	})
}
