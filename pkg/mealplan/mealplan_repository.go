package mealplan

import (
	"context"
	"time"

	"DTCL-Backend/entities"

	"gorm.io/gorm"
)

type (
	MealPlanRepository interface {
		CreateMealPlan(ctx context.Context, plan *entities.MealPlan) error
		GetMealPlanByID(ctx context.Context, id string) (*entities.MealPlan, error)
		GetMealPlans(ctx context.Context, groupID string, date *time.Time) ([]*entities.MealPlan, error)
		UpdateMealPlan(ctx context.Context, plan *entities.MealPlan) error
		DeleteMealPlan(ctx context.Context, id string) error
	}

	mealPlanRepository struct {
		db *gorm.DB
	}
)

func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{db: db}
}

func (r *mealPlanRepository) CreateMealPlan(ctx context.Context, plan *entities.MealPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *mealPlanRepository) GetMealPlanByID(ctx context.Context, id string) (*entities.MealPlan, error) {
	var plan entities.MealPlan
	if err := r.db.WithContext(ctx).
		Preload("Food").
		Preload("Food.Category").
		Preload("Food.Unit").
		Where("id = ?", id).
		First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *mealPlanRepository) GetMealPlans(ctx context.Context, groupID string, date *time.Time) ([]*entities.MealPlan, error) {
	var plans []*entities.MealPlan

	query := r.db.WithContext(ctx).Where("group_id = ?", groupID)
	if date != nil {
		dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		query = query.Where("date >= ? AND date < ?", dayStart, dayStart.AddDate(0, 0, 1))
	}

	if err := query.
		Preload("Food").
		Preload("Food.Category").
		Preload("Food.Unit").
		Order("date asc").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *mealPlanRepository) UpdateMealPlan(ctx context.Context, plan *entities.MealPlan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

func (r *mealPlanRepository) DeleteMealPlan(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.MealPlan{}).Error
}
