package recipe

import (
	"context"
	"errors"
	"strings"

	"DTCL-Backend/domain"
	"DTCL-Backend/entities"
	"DTCL-Backend/pkg/food"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string, groupID string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, groupID string, foodName string, search string, page, limit int) ([]*entities.Recipe, int64, error)
		UpdateRecipe(ctx context.Context, req domain.UpdateRecipeRequest, groupID string) (*entities.Recipe, error)
		DeleteRecipe(ctx context.Context, req domain.DeleteRecipeRequest) error
	}

	recipeService struct {
		recipeRepository RecipeRepository
		foodRepository   food.FoodRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository, foodRepository food.FoodRepository) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		foodRepository:   foodRepository,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string, groupID string) (*entities.Recipe, error) {
	if req.FoodName == "" || req.Name == "" {
		return nil, domain.ErrRecipeMissingFields
	}
	if strings.TrimSpace(req.FoodName) == "" {
		return nil, domain.ErrRecipeBadFoodName
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, domain.ErrRecipeBadName
	}

	f, err := s.foodRepository.GetFoodByName(ctx, req.FoodName, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeFoodNotFound
		}
		return nil, err
	}

	uID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrTokenUserNotFound
	}

	recipe := &entities.Recipe{
		Name:        strings.TrimSpace(req.Name),
		FoodID:      f.ID,
		Description: req.Description,
		HTMLContent: req.HTMLContent,
		CreatedByID: &uID,
	}
	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return nil, err
	}
	return s.recipeRepository.GetRecipeByID(ctx, recipe.ID.String())
}

func (s *recipeService) GetRecipes(ctx context.Context, groupID string, foodName string, search string, page, limit int) ([]*entities.Recipe, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	foodID := ""
	if foodName != "" {
		f, err := s.foodRepository.GetFoodByName(ctx, foodName, groupID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, 0, domain.ErrRecipeFoodNotFound
			}
			return nil, 0, err
		}
		foodID = f.ID.String()
	}

	return s.recipeRepository.GetRecipes(ctx, foodID, search, page, limit)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, req domain.UpdateRecipeRequest, groupID string) (*entities.Recipe, error) {
	if req.RecipeID == "" {
		return nil, domain.ErrRecipeMissingID
	}
	if req.NewFoodName == "" && req.NewName == "" && req.NewDescription == nil && req.NewHTMLContent == nil {
		return nil, domain.ErrRecipeUpdateNoFields
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	if req.NewFoodName != "" {
		f, err := s.foodRepository.GetFoodByName(ctx, req.NewFoodName, groupID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrRecipeNewFoodUnknown
			}
			return nil, err
		}
		recipe.FoodID = f.ID
	}
	if req.NewName != "" {
		if strings.TrimSpace(req.NewName) == "" {
			return nil, domain.ErrRecipeBadNewName
		}
		recipe.Name = strings.TrimSpace(req.NewName)
	}
	if req.NewDescription != nil {
		recipe.Description = *req.NewDescription
	}
	if req.NewHTMLContent != nil {
		recipe.HTMLContent = *req.NewHTMLContent
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return nil, err
	}
	return s.recipeRepository.GetRecipeByID(ctx, recipe.ID.String())
}

func (s *recipeService) DeleteRecipe(ctx context.Context, req domain.DeleteRecipeRequest) error {
	if req.RecipeID == "" {
		return domain.ErrRecipeDeleteMissingID
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeDeleteNotFound
		}
		return err
	}

	return s.recipeRepository.DeleteRecipe(ctx, recipe.ID.String())
}
