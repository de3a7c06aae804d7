package fridge

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

type fakeFridgeRepository struct {
	items map[string]*entities.FridgeItem
}

func newFakeFridgeRepository() *fakeFridgeRepository {
	return &fakeFridgeRepository{items: map[string]*entities.FridgeItem{}}
}

func (r *fakeFridgeRepository) CreateFridgeItem(_ context.Context, item *entities.FridgeItem) error {
	for _, it := range r.items {
		if it.FoodID == item.FoodID && it.GroupID == item.GroupID {
			return gorm.ErrDuplicatedKey
		}
	}
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.items[item.ID.String()] = item
	return nil
}

func (r *fakeFridgeRepository) GetFridgeItemByID(_ context.Context, id string) (*entities.FridgeItem, error) {
	if it, ok := r.items[id]; ok {
		return it, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeFridgeRepository) GetFridgeItemByFood(_ context.Context, foodID string, groupID string) (*entities.FridgeItem, error) {
	for _, it := range r.items {
		if it.FoodID.String() == foodID && it.GroupID.String() == groupID {
			return it, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeFridgeRepository) GetFridgeItems(_ context.Context, groupID string) ([]*entities.FridgeItem, error) {
	var out []*entities.FridgeItem
	for _, it := range r.items {
		if it.GroupID.String() == groupID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeFridgeRepository) UpdateFridgeItem(_ context.Context, item *entities.FridgeItem) error {
	r.items[item.ID.String()] = item
	return nil
}

func (r *fakeFridgeRepository) DeleteFridgeItem(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

// fakeFoodService resolves every food name to the same group scope,
// mirroring the auto creation the real service does.
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
	gID, _ := uuid.Parse(groupID)
	f := &entities.Food{
		ID:          uuid.New(),
		Name:        name,
		GroupID:     gID,
		CreatedByID: &uID,
	}
	s.foods[key] = f
	return f, nil
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestCreateFridgeItemDefaults(t *testing.T) {
	repo := newFakeFridgeRepository()
	service := NewFridgeService(repo, newFakeFoodService())

	groupID := uuid.NewString()
	item, merged, err := service.CreateFridgeItem(context.Background(), domain.CreateFridgeItemRequest{
		FoodName: "Cà rốt",
	}, uuid.NewString(), groupID)
	require.NoError(t, err)
	assert.False(t, merged)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, domain.LocationChiller, item.Location)
	assert.Nil(t, item.ExpiryDate)
}

func TestCreateFridgeItemMergesQuantities(t *testing.T) {
	repo := newFakeFridgeRepository()
	service := NewFridgeService(repo, newFakeFoodService())

	groupID := uuid.NewString()
	userID := uuid.NewString()

	_, merged, err := service.CreateFridgeItem(context.Background(), domain.CreateFridgeItemRequest{
		FoodName: "Cà rốt",
		Quantity: intPtr(2),
	}, userID, groupID)
	require.NoError(t, err)
	require.False(t, merged)

	item, merged, err := service.CreateFridgeItem(context.Background(), domain.CreateFridgeItemRequest{
		FoodName: "Cà rốt",
		Quantity: intPtr(3),
	}, userID, groupID)
	require.NoError(t, err)
	assert.True(t, merged)
	assert.Equal(t, 5, item.Quantity)
	assert.Len(t, repo.items, 1)
}

func TestCreateFridgeItemMergeKeepsExpiryWithoutUseWithin(t *testing.T) {
	repo := newFakeFridgeRepository()
	service := NewFridgeService(repo, newFakeFoodService())

	groupID := uuid.NewString()
	userID := uuid.NewString()

	first, _, err := service.CreateFridgeItem(context.Background(), domain.CreateFridgeItemRequest{
		FoodName:  "Cà rốt",
		UseWithin: intPtr(7),
	}, userID, groupID)
	require.NoError(t, err)
	require.NotNil(t, first.ExpiryDate)
	want := *first.ExpiryDate

	merged, _, err := service.CreateFridgeItem(context.Background(), domain.CreateFridgeItemRequest{
		FoodName: "Cà rốt",
	}, userID, groupID)
	require.NoError(t, err)
	require.NotNil(t, merged.ExpiryDate)
	assert.Equal(t, want, *merged.ExpiryDate)
}

func TestCreateFridgeItemUseWithinZeroExpiresNow(t *testing.T) {
	repo := newFakeFridgeRepository()
	service := NewFridgeService(repo, newFakeFoodService())

	item, _, err := service.CreateFridgeItem(context.Background(), domain.CreateFridgeItemRequest{
		FoodName:  "Sữa tươi",
		UseWithin: intPtr(0),
	}, uuid.NewString(), uuid.NewString())
	require.NoError(t, err)
	require.NotNil(t, item.ExpiryDate)
	assert.WithinDuration(t, time.Now(), *item.ExpiryDate, time.Minute)
}

func TestCreateFridgeItemValidation(t *testing.T) {
	service := NewFridgeService(newFakeFridgeRepository(), newFakeFoodService())
	ctx := context.Background()
	userID := uuid.NewString()
	groupID := uuid.NewString()

	_, _, err := service.CreateFridgeItem(ctx, domain.CreateFridgeItemRequest{}, userID, groupID)
	assert.ErrorIs(t, err, domain.ErrFridgeMissingFoodName)

	_, _, err = service.CreateFridgeItem(ctx, domain.CreateFridgeItemRequest{
		FoodName: "Cà rốt", Quantity: intPtr(-1),
	}, userID, groupID)
	assert.ErrorIs(t, err, domain.ErrFridgeBadQuantity)

	_, _, err = service.CreateFridgeItem(ctx, domain.CreateFridgeItemRequest{
		FoodName: "Cà rốt", UseWithin: intPtr(-1),
	}, userID, groupID)
	assert.ErrorIs(t, err, domain.ErrFridgeBadUseWithin)

	_, _, err = service.CreateFridgeItem(ctx, domain.CreateFridgeItemRequest{
		FoodName: "Cà rốt", Location: "pantry",
	}, userID, groupID)
	assert.ErrorIs(t, err, domain.ErrFridgeBadLocation)
}

func TestCreateFridgeItemAllowsZeroQuantity(t *testing.T) {
	repo := newFakeFridgeRepository()
	service := NewFridgeService(repo, newFakeFoodService())

	item, _, err := service.CreateFridgeItem(context.Background(), domain.CreateFridgeItemRequest{
		FoodName: "Cà rốt",
		Quantity: intPtr(0),
	}, uuid.NewString(), uuid.NewString())
	require.NoError(t, err)
	assert.Equal(t, 0, item.Quantity)
}

func TestCreateFridgeItemMergeKeepsNoteAndLocation(t *testing.T) {
	repo := newFakeFridgeRepository()
	service := NewFridgeService(repo, newFakeFoodService())

	groupID := uuid.NewString()
	userID := uuid.NewString()

	_, _, err := service.CreateFridgeItem(context.Background(), domain.CreateFridgeItemRequest{
		FoodName: "Cà rốt",
		Note:     "mua ở chợ",
		Location: domain.LocationFreezer,
	}, userID, groupID)
	require.NoError(t, err)

	item, merged, err := service.CreateFridgeItem(context.Background(), domain.CreateFridgeItemRequest{
		FoodName: "Cà rốt",
		Note:     "ghi chú mới",
		Location: domain.LocationDoor,
	}, userID, groupID)
	require.NoError(t, err)
	require.True(t, merged)
	assert.Equal(t, "mua ở chợ", item.Note)
	assert.Equal(t, domain.LocationFreezer, item.Location)
}

func TestFridgeRequiresGroupMembership(t *testing.T) {
	repo := newFakeFridgeRepository()
	service := NewFridgeService(repo, newFakeFoodService())
	ctx := context.Background()

	_, _, err := service.CreateFridgeItem(ctx, domain.CreateFridgeItemRequest{
		FoodName: "Cà rốt",
	}, uuid.NewString(), "")
	assert.ErrorIs(t, err, domain.ErrFridgeNeedsGroup)

	_, err = service.UpdateFridgeItem(ctx, domain.UpdateFridgeItemRequest{
		ItemID:      uuid.NewString(),
		NewQuantity: intPtr(2),
	}, "")
	assert.ErrorIs(t, err, domain.ErrFridgeUserNoGroup)

	err = service.DeleteFridgeItem(ctx, domain.DeleteFridgeItemRequest{
		ItemID: uuid.NewString(),
	}, "")
	assert.ErrorIs(t, err, domain.ErrFridgeUserNoGroup)
}

func TestGetFridgeItemChecksGroup(t *testing.T) {
	repo := newFakeFridgeRepository()
	service := NewFridgeService(repo, newFakeFoodService())

	groupID := uuid.New()
	item := &entities.FridgeItem{
		ID:       uuid.New(),
		FoodID:   uuid.New(),
		GroupID:  groupID,
		Quantity: 2,
		Location: domain.LocationChiller,
	}
	repo.items[item.ID.String()] = item

	got, err := service.GetFridgeItem(context.Background(), item.ID.String(), groupID.String())
	require.NoError(t, err)
	assert.Equal(t, item.ID, got.ID)

	_, err = service.GetFridgeItem(context.Background(), uuid.NewString(), groupID.String())
	assert.ErrorIs(t, err, domain.ErrFridgeItemNotFound)

	_, err = service.GetFridgeItem(context.Background(), item.ID.String(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrFridgeItemWrongGroup)
}

func TestUpdateFridgeItemWrongGroup(t *testing.T) {
	repo := newFakeFridgeRepository()
	service := NewFridgeService(repo, newFakeFoodService())

	item := &entities.FridgeItem{
		ID:       uuid.New(),
		FoodID:   uuid.New(),
		GroupID:  uuid.New(),
		Quantity: 1,
		Location: domain.LocationChiller,
	}
	repo.items[item.ID.String()] = item

	_, err := service.UpdateFridgeItem(context.Background(), domain.UpdateFridgeItemRequest{
		ItemID:      item.ID.String(),
		NewQuantity: intPtr(4),
	}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrFridgeItemWrongGroup)

	err = service.DeleteFridgeItem(context.Background(), domain.DeleteFridgeItemRequest{
		ItemID: item.ID.String(),
	}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrFridgeItemWrongGroup)
}

func TestUpdateFridgeItemQuantityCanReachZero(t *testing.T) {
	repo := newFakeFridgeRepository()
	service := NewFridgeService(repo, newFakeFoodService())

	groupID := uuid.New()
	item := &entities.FridgeItem{
		ID:       uuid.New(),
		FoodID:   uuid.New(),
		GroupID:  groupID,
		Quantity: 3,
		Location: domain.LocationChiller,
	}
	repo.items[item.ID.String()] = item

	updated, err := service.UpdateFridgeItem(context.Background(), domain.UpdateFridgeItemRequest{
		ItemID:      item.ID.String(),
		NewQuantity: intPtr(0),
	}, groupID.String())
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Quantity)

	_, err = service.UpdateFridgeItem(context.Background(), domain.UpdateFridgeItemRequest{
		ItemID:      item.ID.String(),
		NewQuantity: intPtr(-2),
	}, groupID.String())
	assert.ErrorIs(t, err, domain.ErrFridgeBadQuantity)
}

func TestUpdateFridgeItemRecomputesExpiry(t *testing.T) {
	repo := newFakeFridgeRepository()
	service := NewFridgeService(repo, newFakeFoodService())

	groupID := uuid.New()
	item := &entities.FridgeItem{
		ID:       uuid.New(),
		FoodID:   uuid.New(),
		GroupID:  groupID,
		Quantity: 1,
		Location: domain.LocationChiller,
	}
	repo.items[item.ID.String()] = item

	updated, err := service.UpdateFridgeItem(context.Background(), domain.UpdateFridgeItemRequest{
		ItemID:       item.ID.String(),
		NewUseWithin: intPtr(3),
		NewLocation:  strPtr(domain.LocationFreezer),
	}, groupID.String())
	require.NoError(t, err)
	require.NotNil(t, updated.ExpiryDate)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 3), *updated.ExpiryDate, time.Minute)
	assert.Equal(t, domain.LocationFreezer, updated.Location)

	_, err = service.UpdateFridgeItem(context.Background(), domain.UpdateFridgeItemRequest{
		ItemID: item.ID.String(),
	}, groupID.String())
	assert.ErrorIs(t, err, domain.ErrFridgeUpdateNoFields)
}
