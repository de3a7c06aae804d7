package mealplan

import (
	"context"
	"errors"
	"strings"
	"time"

	"DTCL-Backend/domain"
	"DTCL-Backend/entities"
	"DTCL-Backend/pkg/food"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MealPlanService interface {
		CreateMealPlan(ctx context.Context, req domain.CreateMealPlanRequest, userID string, groupID string) (*entities.MealPlan, error)
		GetMealPlans(ctx context.Context, groupID string, date string) ([]*entities.MealPlan, error)
		UpdateMealPlan(ctx context.Context, req domain.UpdateMealPlanRequest, groupID string) (*entities.MealPlan, error)
		DeleteMealPlan(ctx context.Context, req domain.DeleteMealPlanRequest, groupID string) error
	}

	mealPlanService struct {
		mealPlanRepository MealPlanRepository
		foodService        food.FoodService
		foodRepository     food.FoodRepository
	}
)

func NewMealPlanService(mealPlanRepository MealPlanRepository, foodService food.FoodService, foodRepository food.FoodRepository) MealPlanService {
	return &mealPlanService{
		mealPlanRepository: mealPlanRepository,
		foodService:        foodService,
		foodRepository:     foodRepository,
	}
}

// parseTimestamp accepts either a date or a full RFC 3339 timestamp.
func parseTimestamp(raw string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", raw, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

func (s *mealPlanService) CreateMealPlan(ctx context.Context, req domain.CreateMealPlanRequest, userID string, groupID string) (*entities.MealPlan, error) {
	if req.FoodName == "" || req.Timestamp == "" || req.Name == "" {
		return nil, domain.ErrMealPlanMissingFields
	}
	if strings.TrimSpace(req.FoodName) == "" {
		return nil, domain.ErrMealPlanBadFoodName
	}
	if !domain.ValidMealType(req.Name) {
		return nil, domain.ErrMealPlanBadMealType
	}

	date, err := parseTimestamp(req.Timestamp)
	if err != nil {
		return nil, domain.ErrMealPlanBadTimestamp
	}

	f, err := s.foodService.FindOrCreateFood(ctx, req.FoodName, "", "", userID, groupID)
	if err != nil {
		return nil, err
	}

	gID, err := uuid.Parse(groupID)
	if err != nil {
		return nil, domain.ErrMealPlanNoGroup
	}
	uID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrTokenUserNotFound
	}

	plan := &entities.MealPlan{
		GroupID:     gID,
		FoodID:      f.ID,
		Date:        date,
		MealType:    req.Name,
		CreatedByID: &uID,
	}
	if err := s.mealPlanRepository.CreateMealPlan(ctx, plan); err != nil {
		return nil, err
	}
	return s.mealPlanRepository.GetMealPlanByID(ctx, plan.ID.String())
}

func (s *mealPlanService) GetMealPlans(ctx context.Context, groupID string, date string) ([]*entities.MealPlan, error) {
	var filter *time.Time
	if date != "" {
		d, err := parseTimestamp(date)
		if err != nil {
			return nil, domain.ErrMealPlanBadTimestamp
		}
		filter = &d
	}
	return s.mealPlanRepository.GetMealPlans(ctx, groupID, filter)
}

func (s *mealPlanService) UpdateMealPlan(ctx context.Context, req domain.UpdateMealPlanRequest, groupID string) (*entities.MealPlan, error) {
	if req.PlanID == "" {
		return nil, domain.ErrMealPlanMissingID
	}
	if req.NewFoodName == "" && req.NewTimestamp == "" && req.NewName == "" {
		return nil, domain.ErrMealPlanUpdateNoFields
	}

	plan, err := s.mealPlanRepository.GetMealPlanByID(ctx, req.PlanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMealPlanNotFound
		}
		return nil, err
	}
	if plan.GroupID.String() != groupID {
		return nil, domain.ErrMealPlanWrongGroup
	}

	if req.NewFoodName != "" {
		f, err := s.foodRepository.GetFoodByName(ctx, req.NewFoodName, groupID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrMealPlanNewFoodUnknown
			}
			return nil, err
		}
		plan.FoodID = f.ID
	}
	if req.NewTimestamp != "" {
		date, err := parseTimestamp(req.NewTimestamp)
		if err != nil {
			return nil, domain.ErrMealPlanBadNewTime
		}
		plan.Date = date
	}
	if req.NewName != "" {
		if !domain.ValidMealType(req.NewName) {
			return nil, domain.ErrMealPlanBadNewMeal
		}
		plan.MealType = req.NewName
	}

	if err := s.mealPlanRepository.UpdateMealPlan(ctx, plan); err != nil {
		return nil, err
	}
	return s.mealPlanRepository.GetMealPlanByID(ctx, plan.ID.String())
}

func (s *mealPlanService) DeleteMealPlan(ctx context.Context, req domain.DeleteMealPlanRequest, groupID string) error {
	if req.PlanID == "" {
		return domain.ErrMealPlanDeleteMissing
	}

	plan, err := s.mealPlanRepository.GetMealPlanByID(ctx, req.PlanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMealPlanDeleteNotFound
		}
		return err
	}
	if plan.GroupID.String() != groupID {
		return domain.ErrMealPlanDeleteForbidden
	}

	return s.mealPlanRepository.DeleteMealPlan(ctx, plan.ID.String())
}
