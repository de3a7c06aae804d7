package handlers

import (
	"strconv"

	"DTCL-Backend/domain"
	"DTCL-Backend/internal/api/presenters"
	"DTCL-Backend/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		CreateRecipe(c *fiber.Ctx) error
		GetRecipes(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	groupID := c.Locals("group_id").(string)

	req := new(domain.CreateRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.HandleError(c, domain.ErrRecipeMissingFields)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.ErrRecipeMissingFields)
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req, userID, groupID)
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.StatusRecipeCreated)
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	groupID := c.Locals("group_id").(string)

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	foodName := c.Query("foodName")
	search := c.Query("search")

	recipes, total, err := h.recipeService.GetRecipes(c.Context(), groupID, foodName, search, page, limit)
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{
		"recipes": recipes,
		"total":   total,
		"page":    page,
		"limit":   limit,
	}, fiber.StatusOK, domain.StatusRecipesFetched)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	groupID := c.Locals("group_id").(string)

	req := new(domain.UpdateRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.HandleError(c, domain.ErrRecipeMissingID)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.ErrRecipeMissingID)
	}

	res, err := h.recipeService.UpdateRecipe(c.Context(), *req, groupID)
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.StatusRecipeUpdated)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	req := new(domain.DeleteRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.HandleError(c, domain.ErrRecipeDeleteMissingID)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.ErrRecipeDeleteMissingID)
	}

	if err := h.recipeService.DeleteRecipe(c.Context(), *req); err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.StatusRecipeDeleted)
}
