package service

import (
	"context"

	"fitgpt/internal/models"
	"fitgpt/internal/observability"
	"fitgpt/internal/repository"
)

// WardrobeService handles clothing item CRUD under the ownership rule:
// every read-for-mutation checks existence first (NotFound), then ownership
// (Forbidden), in that order.
type WardrobeService struct {
	itemRepo repository.ItemRepository
}

// ItemInput carries the writable fields of a clothing item.
type ItemInput struct {
	Name     string
	Category string
	Color    string
	ImageURL string
}

func NewWardrobeService(itemRepo repository.ItemRepository) *WardrobeService {
	return &WardrobeService{itemRepo: itemRepo}
}

// ownedBy is the authorization predicate applied by every mutating
// operation.
func ownedBy(item *models.ClothingItem, userID uint) bool {
	return item.OwnerID == userID
}

// getOwnedItem fetches the item and enforces the ownership rule. Existence
// is checked before ownership so a nonexistent item is NotFound even for a
// non-owner.
func (s *WardrobeService) getOwnedItem(ctx context.Context, ownerID, itemID uint) (*models.ClothingItem, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !ownedBy(item, ownerID) {
		return nil, models.NewForbiddenError("You do not own this item")
	}
	return item, nil
}

// CreateItem creates a clothing item owned by the given user.
func (s *WardrobeService) CreateItem(ctx context.Context, ownerID uint, in ItemInput) (*models.ClothingItem, error) {
	item := &models.ClothingItem{
		Name:     in.Name,
		Category: in.Category,
		Color:    in.Color,
		ImageURL: in.ImageURL,
		OwnerID:  ownerID,
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	observability.WardrobeItemsMutations.WithLabelValues("create").Inc()
	return item, nil
}

// ListItems returns every item owned by the given user.
func (s *WardrobeService) ListItems(ctx context.Context, ownerID uint) ([]models.ClothingItem, error) {
	return s.itemRepo.ListByOwner(ctx, ownerID)
}

// UpdateItem overwrites the writable fields of an owned item.
func (s *WardrobeService) UpdateItem(ctx context.Context, ownerID, itemID uint, in ItemInput) (*models.ClothingItem, error) {
	item, err := s.getOwnedItem(ctx, ownerID, itemID)
	if err != nil {
		return nil, err
	}

	item.Name = in.Name
	item.Category = in.Category
	item.Color = in.Color
	item.ImageURL = in.ImageURL

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	observability.WardrobeItemsMutations.WithLabelValues("update").Inc()
	return item, nil
}

// DeleteItem removes an owned item, and only that item.
func (s *WardrobeService) DeleteItem(ctx context.Context, ownerID, itemID uint) error {
	item, err := s.getOwnedItem(ctx, ownerID, itemID)
	if err != nil {
		return err
	}

	if err := s.itemRepo.Delete(ctx, item.ID); err != nil {
		return err
	}

	observability.WardrobeItemsMutations.WithLabelValues("delete").Inc()
	return nil
}
