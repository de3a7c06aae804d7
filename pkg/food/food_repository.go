package food

import (
	"context"

	"DTCL-Backend/entities"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		CreateFood(ctx context.Context, food *entities.Food) error
		GetFoodByID(ctx context.Context, id string) (*entities.Food, error)
		GetFoodByName(ctx context.Context, name string, groupID string) (*entities.Food, error)
		GetFoods(ctx context.Context, groupID string, search string, page, limit int) ([]*entities.Food, int64, error)
		UpdateFood(ctx context.Context, food *entities.Food) error
		DeleteFood(ctx context.Context, id string) error

		GetCategories(ctx context.Context) ([]*entities.Category, error)
		GetCategoryByName(ctx context.Context, name string) (*entities.Category, error)
		GetUnits(ctx context.Context) ([]*entities.Unit, error)
		GetUnitByName(ctx context.Context, name string) (*entities.Unit, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) CreateFood(ctx context.Context, food *entities.Food) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *foodRepository) GetFoodByID(ctx context.Context, id string) (*entities.Food, error) {
	var food entities.Food
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Unit").
		Where("id = ?", id).
		First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) GetFoodByName(ctx context.Context, name string, groupID string) (*entities.Food, error) {
	var food entities.Food
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Unit").
		Where("name = ? AND group_id = ?", name, groupID).
		First(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) GetFoods(ctx context.Context, groupID string, search string, page, limit int) ([]*entities.Food, int64, error) {
	var foods []*entities.Food
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("group_id = ?", groupID)
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	if err := query.Model(&entities.Food{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Category").
		Preload("Unit").
		Offset(offset).Limit(limit).
		Order("name asc").
		Find(&foods).Error; err != nil {
		return nil, 0, err
	}

	return foods, count, nil
}

func (r *foodRepository) UpdateFood(ctx context.Context, food *entities.Food) error {
	return r.db.WithContext(ctx).Save(food).Error
}

func (r *foodRepository) DeleteFood(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Food{}).Error
}

func (r *foodRepository) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *foodRepository) GetCategoryByName(ctx context.Context, name string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *foodRepository) GetUnits(ctx context.Context) ([]*entities.Unit, error) {
	var units []*entities.Unit
	if err := r.db.WithContext(ctx).Order("name asc").Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

func (r *foodRepository) GetUnitByName(ctx context.Context, name string) (*entities.Unit, error) {
	var unit entities.Unit
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&unit).Error; err != nil {
		return nil, err
	}
	return &unit, nil
}
