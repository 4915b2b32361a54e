package repository

import (
	"context"
	"errors"

	"fitgpt/internal/models"
	"fitgpt/internal/observability"

	"gorm.io/gorm"
)

// ItemRepository defines the interface for clothing item data operations
type ItemRepository interface {
	GetByID(ctx context.Context, id uint) (*models.ClothingItem, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]models.ClothingItem, error)
	Create(ctx context.Context, item *models.ClothingItem) error
	Update(ctx context.Context, item *models.ClothingItem) error
	Delete(ctx context.Context, id uint) error
}

// itemRepository implements ItemRepository
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new clothing item repository
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) GetByID(ctx context.Context, id uint) (*models.ClothingItem, error) {
	defer observability.TrackQuery("select", "clothing_items")()

	var item models.ClothingItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Item", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &item, nil
}

func (r *itemRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.ClothingItem, error) {
	defer observability.TrackQuery("select", "clothing_items")()

	var items []models.ClothingItem
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id").Find(&items).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}

func (r *itemRepository) Create(ctx context.Context, item *models.ClothingItem) error {
	defer observability.TrackQuery("insert", "clothing_items")()

	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *itemRepository) Update(ctx context.Context, item *models.ClothingItem) error {
	defer observability.TrackQuery("update", "clothing_items")()

	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *itemRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "clothing_items")()

	if err := r.db.WithContext(ctx).Delete(&models.ClothingItem{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
