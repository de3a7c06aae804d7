package handlers

import (
	"strconv"

	"DTCL-Backend/domain"
	"DTCL-Backend/internal/api/presenters"
	"DTCL-Backend/pkg/food"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		CreateFood(c *fiber.Ctx) error
		UpdateFood(c *fiber.Ctx) error
		DeleteFood(c *fiber.Ctx) error
		GetFoods(c *fiber.Ctx) error
		GetCategories(c *fiber.Ctx) error
		GetUnits(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
	}
}

func (h *foodHandler) CreateFood(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	groupID := c.Locals("group_id").(string)

	req := new(domain.CreateFoodRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.HandleError(c, domain.ErrFoodMissingFields)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.ErrFoodMissingFields)
	}

	image, _ := c.FormFile("image")

	res, err := h.foodService.CreateFood(c.Context(), *req, image, userID, groupID)
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.StatusFoodCreated)
}

func (h *foodHandler) UpdateFood(c *fiber.Ctx) error {
	groupID := c.Locals("group_id").(string)

	req := new(domain.UpdateFoodRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.HandleError(c, domain.ErrFoodUpdateMissingName)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.ErrFoodUpdateMissingName)
	}

	res, err := h.foodService.UpdateFood(c.Context(), *req, groupID)
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.StatusFoodUpdated)
}

func (h *foodHandler) DeleteFood(c *fiber.Ctx) error {
	groupID := c.Locals("group_id").(string)

	req := new(domain.DeleteFoodRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.HandleError(c, domain.ErrFoodDeleteMissingName)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.ErrFoodDeleteMissingName)
	}

	if err := h.foodService.DeleteFood(c.Context(), *req, groupID); err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.StatusFoodDeleted)
}

func (h *foodHandler) GetFoods(c *fiber.Ctx) error {
	groupID := c.Locals("group_id").(string)

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	search := c.Query("search")

	foods, total, err := h.foodService.GetFoods(c.Context(), groupID, search, page, limit)
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{
		"foods": foods,
		"total": total,
		"page":  page,
		"limit": limit,
	}, fiber.StatusOK, domain.StatusFoodsFetched)
}

func (h *foodHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.foodService.GetCategories(c.Context())
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, categories, fiber.StatusOK, domain.StatusCategoriesFetched)
}

func (h *foodHandler) GetUnits(c *fiber.Ctx) error {
	units, err := h.foodService.GetUnits(c.Context())
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, units, fiber.StatusOK, domain.StatusUnitsFetched)
}
