package food

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"DTCL-Backend/domain"
	"DTCL-Backend/entities"
	"DTCL-Backend/internal/utils/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodService interface {
		CreateFood(ctx context.Context, req domain.CreateFoodRequest, image *multipart.FileHeader, userID string, groupID string) (*entities.Food, error)
		UpdateFood(ctx context.Context, req domain.UpdateFoodRequest, groupID string) (*entities.Food, error)
		DeleteFood(ctx context.Context, req domain.DeleteFoodRequest, groupID string) error
		GetFoods(ctx context.Context, groupID string, search string, page, limit int) ([]*entities.Food, int64, error)
		GetCategories(ctx context.Context) ([]*entities.Category, error)
		GetUnits(ctx context.Context) ([]*entities.Unit, error)

		// FindOrCreateFood resolves a food by name within the group,
		// creating a bare row when it does not exist yet. Unknown hints
		// are dropped silently. A category hint backfills an
		// uncategorized food but never overwrites an existing category;
		// a unit hint is attached on create only.
		FindOrCreateFood(ctx context.Context, name string, categoryHint string, unitHint string, userID string, groupID string) (*entities.Food, error)
	}

	foodService struct {
		foodRepository FoodRepository
		s3             storage.AwsS3
	}
)

func NewFoodService(foodRepository FoodRepository, s3 storage.AwsS3) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		s3:             s3,
	}
}

func (s *foodService) CreateFood(ctx context.Context, req domain.CreateFoodRequest, image *multipart.FileHeader, userID string, groupID string) (*entities.Food, error) {
	if req.Name == "" || req.FoodCategoryName == "" || req.UnitName == "" {
		return nil, domain.ErrFoodMissingFields
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrFoodBadName
	}

	category, err := s.foodRepository.GetCategoryByName(ctx, req.FoodCategoryName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodCategoryUnknown
		}
		return nil, err
	}
	unit, err := s.foodRepository.GetUnitByName(ctx, req.UnitName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodUnitUnknown
		}
		return nil, err
	}

	if _, err := s.foodRepository.GetFoodByName(ctx, name, groupID); err == nil {
		return nil, domain.ErrFoodNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	gID, err := uuid.Parse(groupID)
	if err != nil {
		return nil, domain.ErrNoGroup
	}
	uID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrTokenUserNotFound
	}

	food := &entities.Food{
		Name:        name,
		CategoryID:  &category.ID,
		UnitID:      &unit.ID,
		GroupID:     gID,
		CreatedByID: &uID,
	}

	if image != nil {
		objectKey, err := s.s3.UploadFile(uuid.NewString(), image, "foods", storage.AllowImage...)
		if err != nil {
			return nil, err
		}
		food.Image = s.s3.GetPublicLinkKey(objectKey)
	}

	if err := s.foodRepository.CreateFood(ctx, food); err != nil {
		return nil, err
	}

	return s.foodRepository.GetFoodByID(ctx, food.ID.String())
}

func (s *foodService) UpdateFood(ctx context.Context, req domain.UpdateFoodRequest, groupID string) (*entities.Food, error) {
	if req.Name == "" {
		return nil, domain.ErrFoodUpdateMissingName
	}
	if req.NewName == "" && req.NewCategory == "" && req.NewUnit == "" {
		return nil, domain.ErrFoodUpdateNoFields
	}

	food, err := s.foodRepository.GetFoodByName(ctx, req.Name, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodNotFound
		}
		return nil, err
	}

	if req.NewName != "" && req.NewName != food.Name {
		if _, err := s.foodRepository.GetFoodByName(ctx, req.NewName, groupID); err == nil {
			return nil, domain.ErrFoodNewNameTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		food.Name = req.NewName
	}

	if req.NewCategory != "" {
		category, err := s.foodRepository.GetCategoryByName(ctx, req.NewCategory)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrNewCategoryUnknown
			}
			return nil, err
		}
		food.CategoryID = &category.ID
	}

	if req.NewUnit != "" {
		unit, err := s.foodRepository.GetUnitByName(ctx, req.NewUnit)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrNewUnitUnknown
			}
			return nil, err
		}
		food.UnitID = &unit.ID
	}

	if err := s.foodRepository.UpdateFood(ctx, food); err != nil {
		return nil, err
	}
	return s.foodRepository.GetFoodByID(ctx, food.ID.String())
}

func (s *foodService) DeleteFood(ctx context.Context, req domain.DeleteFoodRequest, groupID string) error {
	if req.Name == "" {
		return domain.ErrFoodDeleteMissingName
	}

	food, err := s.foodRepository.GetFoodByName(ctx, req.Name, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodDeleteNotFound
		}
		return err
	}

	if food.Image != "" {
		objectKey := s.s3.GetObjectKeyFromLink(food.Image)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.foodRepository.DeleteFood(ctx, food.ID.String())
}

func (s *foodService) GetFoods(ctx context.Context, groupID string, search string, page, limit int) ([]*entities.Food, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.foodRepository.GetFoods(ctx, groupID, search, page, limit)
}

func (s *foodService) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	return s.foodRepository.GetCategories(ctx)
}

func (s *foodService) GetUnits(ctx context.Context) ([]*entities.Unit, error) {
	return s.foodRepository.GetUnits(ctx)
}

func (s *foodService) FindOrCreateFood(ctx context.Context, name string, categoryHint string, unitHint string, userID string, groupID string) (*entities.Food, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrFoodBadName
	}

	var hinted *entities.Category
	if categoryHint != "" {
		category, err := s.foodRepository.GetCategoryByName(ctx, categoryHint)
		if err == nil {
			hinted = category
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	var hintedUnit *entities.Unit
	if unitHint != "" {
		unit, err := s.foodRepository.GetUnitByName(ctx, unitHint)
		if err == nil {
			hintedUnit = unit
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	food, err := s.foodRepository.GetFoodByName(ctx, name, groupID)
	if err == nil {
		if food.CategoryID == nil && hinted != nil {
			food.CategoryID = &hinted.ID
			if err := s.foodRepository.UpdateFood(ctx, food); err != nil {
				return nil, err
			}
		}
		return food, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	gID, err := uuid.Parse(groupID)
	if err != nil {
		return nil, domain.ErrNoGroup
	}
	uID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrTokenUserNotFound
	}

	food = &entities.Food{
		Name:        name,
		GroupID:     gID,
		CreatedByID: &uID,
	}
	if hinted != nil {
		food.CategoryID = &hinted.ID
	}
	if hintedUnit != nil {
		food.UnitID = &hintedUnit.ID
	}
	if err := s.foodRepository.CreateFood(ctx, food); err != nil {
		return nil, err
	}
	return food, nil
}
