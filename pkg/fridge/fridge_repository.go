package fridge

import (
	"context"

	"DTCL-Backend/entities"

	"gorm.io/gorm"
)

type (
	FridgeRepository interface {
		CreateFridgeItem(ctx context.Context, item *entities.FridgeItem) error
		GetFridgeItemByID(ctx context.Context, id string) (*entities.FridgeItem, error)
		GetFridgeItemByFood(ctx context.Context, foodID string, groupID string) (*entities.FridgeItem, error)
		GetFridgeItems(ctx context.Context, groupID string) ([]*entities.FridgeItem, error)
		UpdateFridgeItem(ctx context.Context, item *entities.FridgeItem) error
		DeleteFridgeItem(ctx context.Context, id string) error
	}

	fridgeRepository struct {
		db *gorm.DB
	}
)

func NewFridgeRepository(db *gorm.DB) FridgeRepository {
	return &fridgeRepository{db: db}
}

func (r *fridgeRepository) CreateFridgeItem(ctx context.Context, item *entities.FridgeItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *fridgeRepository) GetFridgeItemByID(ctx context.Context, id string) (*entities.FridgeItem, error) {
	var item entities.FridgeItem
	if err := r.db.WithContext(ctx).
		Preload("Food").
		Preload("Food.Category").
		Preload("Food.Unit").
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *fridgeRepository) GetFridgeItemByFood(ctx context.Context, foodID string, groupID string) (*entities.FridgeItem, error) {
	var item entities.FridgeItem
	if err := r.db.WithContext(ctx).
		Where("food_id = ? AND group_id = ?", foodID, groupID).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *fridgeRepository) GetFridgeItems(ctx context.Context, groupID string) ([]*entities.FridgeItem, error) {
	var items []*entities.FridgeItem
	if err := r.db.WithContext(ctx).
		Preload("Food").
		Preload("Food.Category").
		Preload("Food.Unit").
		Where("group_id = ?", groupID).
		Order("expiry_date asc NULLS LAST").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *fridgeRepository) UpdateFridgeItem(ctx context.Context, item *entities.FridgeItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *fridgeRepository) DeleteFridgeItem(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FridgeItem{}).Error
}
