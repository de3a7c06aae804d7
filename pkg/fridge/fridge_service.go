package fridge

import (
	"context"
	"errors"
	"time"

	"DTCL-Backend/domain"
	"DTCL-Backend/entities"
	"DTCL-Backend/pkg/food"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FridgeService interface {
		CreateFridgeItem(ctx context.Context, req domain.CreateFridgeItemRequest, userID string, groupID string) (*entities.FridgeItem, bool, error)
		UpdateFridgeItem(ctx context.Context, req domain.UpdateFridgeItemRequest, groupID string) (*entities.FridgeItem, error)
		DeleteFridgeItem(ctx context.Context, req domain.DeleteFridgeItemRequest, groupID string) error
		GetFridgeItem(ctx context.Context, id string, groupID string) (*entities.FridgeItem, error)
		GetFridgeItems(ctx context.Context, groupID string) ([]*entities.FridgeItem, error)
	}

	fridgeService struct {
		fridgeRepository FridgeRepository
		foodService      food.FoodService
	}
)

func NewFridgeService(fridgeRepository FridgeRepository, foodService food.FoodService) FridgeService {
	return &fridgeService{
		fridgeRepository: fridgeRepository,
		foodService:      foodService,
	}
}

func expiryFromUseWithin(days int) *time.Time {
	expiry := time.Now().AddDate(0, 0, days)
	return &expiry
}

// CreateFridgeItem adds the food to the fridge. When the group already
// stores the same food, the quantities are merged instead and the second
// return value reports true.
func (s *fridgeService) CreateFridgeItem(ctx context.Context, req domain.CreateFridgeItemRequest, userID string, groupID string) (*entities.FridgeItem, bool, error) {
	if req.FoodName == "" {
		return nil, false, domain.ErrFridgeMissingFoodName
	}
	if req.Quantity != nil && *req.Quantity < 0 {
		return nil, false, domain.ErrFridgeBadQuantity
	}
	if req.UseWithin != nil && *req.UseWithin < 0 {
		return nil, false, domain.ErrFridgeBadUseWithin
	}
	if req.Location != "" && !domain.ValidLocation(req.Location) {
		return nil, false, domain.ErrFridgeBadLocation
	}

	f, err := s.foodService.FindOrCreateFood(ctx, req.FoodName, req.Category, req.Unit, userID, groupID)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.fridgeRepository.GetFridgeItemByFood(ctx, f.ID.String(), groupID)
	if err == nil {
		return s.merge(ctx, existing, req)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	gID, err := uuid.Parse(groupID)
	if err != nil {
		return nil, false, domain.ErrFridgeNeedsGroup
	}
	uID, err := uuid.Parse(userID)
	if err != nil {
		return nil, false, domain.ErrTokenUserNotFound
	}

	item := &entities.FridgeItem{
		FoodID:    f.ID,
		GroupID:   gID,
		Quantity:  1,
		Note:      req.Note,
		Location:  domain.LocationChiller,
		AddedByID: &uID,
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Location != "" {
		item.Location = req.Location
	}
	if req.UseWithin != nil {
		item.UseWithin = req.UseWithin
		item.ExpiryDate = expiryFromUseWithin(*req.UseWithin)
	}

	if err := s.fridgeRepository.CreateFridgeItem(ctx, item); err != nil {
		// A concurrent insert may have won the unique (food, group)
		// slot; fall back to merging into the winner.
		existing, readErr := s.fridgeRepository.GetFridgeItemByFood(ctx, f.ID.String(), groupID)
		if readErr != nil {
			return nil, false, err
		}
		return s.merge(ctx, existing, req)
	}

	created, err := s.fridgeRepository.GetFridgeItemByID(ctx, item.ID.String())
	if err != nil {
		return nil, false, err
	}
	return created, false, nil
}

func (s *fridgeService) merge(ctx context.Context, existing *entities.FridgeItem, req domain.CreateFridgeItemRequest) (*entities.FridgeItem, bool, error) {
	added := 1
	if req.Quantity != nil {
		added = *req.Quantity
	}
	existing.Quantity += added

	// Merging touches quantity and expiry only; note and location keep
	// whatever the fridge already says.
	if req.UseWithin != nil {
		existing.UseWithin = req.UseWithin
		existing.ExpiryDate = expiryFromUseWithin(*req.UseWithin)
	}

	if err := s.fridgeRepository.UpdateFridgeItem(ctx, existing); err != nil {
		return nil, false, err
	}

	merged, err := s.fridgeRepository.GetFridgeItemByID(ctx, existing.ID.String())
	if err != nil {
		return nil, false, err
	}
	return merged, true, nil
}

func (s *fridgeService) UpdateFridgeItem(ctx context.Context, req domain.UpdateFridgeItemRequest, groupID string) (*entities.FridgeItem, error) {
	if req.ItemID == "" {
		return nil, domain.ErrFridgeMissingItemID
	}
	if req.NewQuantity == nil && req.NewNote == nil && req.NewUseWithin == nil && req.NewLocation == nil {
		return nil, domain.ErrFridgeUpdateNoFields
	}
	if req.NewQuantity != nil && *req.NewQuantity < 0 {
		return nil, domain.ErrFridgeBadNewQuantity
	}
	if req.NewUseWithin != nil && *req.NewUseWithin < 0 {
		return nil, domain.ErrFridgeBadNewUseWithin
	}
	if req.NewLocation != nil && !domain.ValidLocation(*req.NewLocation) {
		return nil, domain.ErrFridgeBadNewLocation
	}
	if groupID == "" {
		return nil, domain.ErrFridgeUserNoGroup
	}

	item, err := s.fridgeRepository.GetFridgeItemByID(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFridgeItemNotFound
		}
		return nil, err
	}
	if item.GroupID.String() != groupID {
		return nil, domain.ErrFridgeItemWrongGroup
	}

	if req.NewQuantity != nil {
		item.Quantity = *req.NewQuantity
	}
	if req.NewNote != nil {
		item.Note = *req.NewNote
	}
	if req.NewUseWithin != nil {
		item.UseWithin = req.NewUseWithin
		item.ExpiryDate = expiryFromUseWithin(*req.NewUseWithin)
	}
	if req.NewLocation != nil {
		item.Location = *req.NewLocation
	}

	if err := s.fridgeRepository.UpdateFridgeItem(ctx, item); err != nil {
		return nil, err
	}
	return s.fridgeRepository.GetFridgeItemByID(ctx, item.ID.String())
}

func (s *fridgeService) DeleteFridgeItem(ctx context.Context, req domain.DeleteFridgeItemRequest, groupID string) error {
	if req.ItemID == "" {
		return domain.ErrFridgeMissingItemID
	}
	if groupID == "" {
		return domain.ErrFridgeUserNoGroup
	}

	item, err := s.fridgeRepository.GetFridgeItemByID(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFridgeItemNotFound
		}
		return err
	}
	if item.GroupID.String() != groupID {
		return domain.ErrFridgeItemWrongGroup
	}

	return s.fridgeRepository.DeleteFridgeItem(ctx, item.ID.String())
}

func (s *fridgeService) GetFridgeItem(ctx context.Context, id string, groupID string) (*entities.FridgeItem, error) {
	item, err := s.fridgeRepository.GetFridgeItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFridgeItemNotFound
		}
		return nil, err
	}
	if item.GroupID.String() != groupID {
		return nil, domain.ErrFridgeItemWrongGroup
	}
	return item, nil
}

func (s *fridgeService) GetFridgeItems(ctx context.Context, groupID string) ([]*entities.FridgeItem, error) {
	return s.fridgeRepository.GetFridgeItems(ctx, groupID)
}
