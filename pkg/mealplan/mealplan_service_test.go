package mealplan

import (
	"context"
	"testing"
	"time"

	"DTCL-Backend/domain"
	"DTCL-Backend/entities"
	"DTCL-Backend/pkg/food"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeMealPlanRepository struct {
	plans map[string]*entities.MealPlan
}

func newFakeMealPlanRepository() *fakeMealPlanRepository {
	return &fakeMealPlanRepository{plans: map[string]*entities.MealPlan{}}
}

func (r *fakeMealPlanRepository) CreateMealPlan(_ context.Context, plan *entities.MealPlan) error {
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	r.plans[plan.ID.String()] = plan
	return nil
}

func (r *fakeMealPlanRepository) GetMealPlanByID(_ context.Context, id string) (*entities.MealPlan, error) {
	if p, ok := r.plans[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeMealPlanRepository) GetMealPlans(_ context.Context, groupID string, date *time.Time) ([]*entities.MealPlan, error) {
	var out []*entities.MealPlan
	for _, p := range r.plans {
		if p.GroupID.String() != groupID {
			continue
		}
		if date != nil {
			dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
			if p.Date.Before(dayStart) || !p.Date.Before(dayStart.AddDate(0, 0, 1)) {
				continue
			}
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeMealPlanRepository) UpdateMealPlan(_ context.Context, plan *entities.MealPlan) error {
	r.plans[plan.ID.String()] = plan
	return nil
}

func (r *fakeMealPlanRepository) DeleteMealPlan(_ context.Context, id string) error {
	delete(r.plans, id)
	return nil
}

type fakeFoodService struct {
	food.FoodService
	foods map[string]*entities.Food
}

func newFakeFoodService() *fakeFoodService {
	return &fakeFoodService{foods: map[string]*entities.Food{}}
}

func (s *fakeFoodService) FindOrCreateFood(_ context.Context, name string, _ string, _ string, userID string, groupID string) (*entities.Food, error) {
	key := groupID + "/" + name
	if f, ok := s.foods[key]; ok {
		return f, nil
	}
	uID := uuid.MustParse(userID)
	f := &entities.Food{
		ID:          uuid.New(),
		Name:        name,
		GroupID:     uuid.MustParse(groupID),
		CreatedByID: &uID,
	}
	s.foods[key] = f
	return f, nil
}

type fakeFoodRepository struct {
	food.FoodRepository
	foods *fakeFoodService
}

func (r *fakeFoodRepository) GetFoodByName(_ context.Context, name string, groupID string) (*entities.Food, error) {
	if f, ok := r.foods.foods[groupID+"/"+name]; ok {
		return f, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func newTestMealPlanService() (MealPlanService, *fakeMealPlanRepository, *fakeFoodService) {
	repo := newFakeMealPlanRepository()
	foods := newFakeFoodService()
	service := NewMealPlanService(repo, foods, &fakeFoodRepository{foods: foods})
	return service, repo, foods
}

func TestCreateMealPlanAcceptsDateAndTimestamp(t *testing.T) {
	service, _, _ := newTestMealPlanService()
	groupID := uuid.NewString()
	userID := uuid.NewString()

	plan, err := service.CreateMealPlan(context.Background(), domain.CreateMealPlanRequest{
		FoodName:  "Phở bò",
		Timestamp: "2026-09-01",
		Name:      domain.MealMorning,
	}, userID, groupID)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local), plan.Date)

	plan, err = service.CreateMealPlan(context.Background(), domain.CreateMealPlanRequest{
		FoodName:  "Phở bò",
		Timestamp: "2026-09-01T18:30:00+07:00",
		Name:      domain.MealEvening,
	}, userID, groupID)
	require.NoError(t, err)
	assert.Equal(t, 18, plan.Date.Hour())
}

func TestCreateMealPlanValidation(t *testing.T) {
	service, _, _ := newTestMealPlanService()
	ctx := context.Background()
	userID := uuid.NewString()
	groupID := uuid.NewString()

	_, err := service.CreateMealPlan(ctx, domain.CreateMealPlanRequest{
		FoodName: "Phở bò", Timestamp: "2026-09-01",
	}, userID, groupID)
	assert.ErrorIs(t, err, domain.ErrMealPlanMissingFields)

	_, err = service.CreateMealPlan(ctx, domain.CreateMealPlanRequest{
		FoodName: "Phở bò", Timestamp: "2026-09-01", Name: "brunch",
	}, userID, groupID)
	assert.ErrorIs(t, err, domain.ErrMealPlanBadMealType)

	_, err = service.CreateMealPlan(ctx, domain.CreateMealPlanRequest{
		FoodName: "Phở bò", Timestamp: "hôm nay", Name: domain.MealNoon,
	}, userID, groupID)
	assert.ErrorIs(t, err, domain.ErrMealPlanBadTimestamp)
}

func TestGetMealPlansFiltersByDay(t *testing.T) {
	service, _, _ := newTestMealPlanService()
	groupID := uuid.NewString()
	userID := uuid.NewString()

	for _, ts := range []string{"2026-09-01", "2026-09-01T19:00:00+07:00", "2026-09-02"} {
		_, err := service.CreateMealPlan(context.Background(), domain.CreateMealPlanRequest{
			FoodName:  "Phở bò",
			Timestamp: ts,
			Name:      domain.MealNoon,
		}, userID, groupID)
		require.NoError(t, err)
	}

	plans, err := service.GetMealPlans(context.Background(), groupID, "2026-09-01")
	require.NoError(t, err)
	assert.Len(t, plans, 2)

	plans, err = service.GetMealPlans(context.Background(), groupID, "")
	require.NoError(t, err)
	assert.Len(t, plans, 3)
}

func TestUpdateMealPlanNewFoodMustExist(t *testing.T) {
	service, _, _ := newTestMealPlanService()
	groupID := uuid.NewString()
	userID := uuid.NewString()

	plan, err := service.CreateMealPlan(context.Background(), domain.CreateMealPlanRequest{
		FoodName:  "Phở bò",
		Timestamp: "2026-09-01",
		Name:      domain.MealMorning,
	}, userID, groupID)
	require.NoError(t, err)

	_, err = service.UpdateMealPlan(context.Background(), domain.UpdateMealPlanRequest{
		PlanID:      plan.ID.String(),
		NewFoodName: "Không có",
	}, groupID)
	assert.ErrorIs(t, err, domain.ErrMealPlanNewFoodUnknown)

	updated, err := service.UpdateMealPlan(context.Background(), domain.UpdateMealPlanRequest{
		PlanID:  plan.ID.String(),
		NewName: domain.MealEvening,
	}, groupID)
	require.NoError(t, err)
	assert.Equal(t, domain.MealEvening, updated.MealType)

	_, err = service.UpdateMealPlan(context.Background(), domain.UpdateMealPlanRequest{
		PlanID: plan.ID.String(),
	}, groupID)
	assert.ErrorIs(t, err, domain.ErrMealPlanUpdateNoFields)
}

func TestMealPlanGroupScope(t *testing.T) {
	service, repo, _ := newTestMealPlanService()
	groupID := uuid.NewString()

	plan, err := service.CreateMealPlan(context.Background(), domain.CreateMealPlanRequest{
		FoodName:  "Phở bò",
		Timestamp: "2026-09-01",
		Name:      domain.MealMorning,
	}, uuid.NewString(), groupID)
	require.NoError(t, err)

	_, err = service.UpdateMealPlan(context.Background(), domain.UpdateMealPlanRequest{
		PlanID:  plan.ID.String(),
		NewName: domain.MealNoon,
	}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrMealPlanWrongGroup)

	err = service.DeleteMealPlan(context.Background(), domain.DeleteMealPlanRequest{
		PlanID: plan.ID.String(),
	}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrMealPlanDeleteForbidden)

	err = service.DeleteMealPlan(context.Background(), domain.DeleteMealPlanRequest{
		PlanID: plan.ID.String(),
	}, groupID)
	require.NoError(t, err)
	assert.Empty(t, repo.plans)
}
