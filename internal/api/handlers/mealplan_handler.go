package handlers

import (
	"DTCL-Backend/domain"
	"DTCL-Backend/internal/api/presenters"
	"DTCL-Backend/pkg/mealplan"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MealPlanHandler interface {
		CreateMealPlan(c *fiber.Ctx) error
		GetMealPlans(c *fiber.Ctx) error
		UpdateMealPlan(c *fiber.Ctx) error
		DeleteMealPlan(c *fiber.Ctx) error
	}

	mealPlanHandler struct {
		mealPlanService mealplan.MealPlanService
		validator       *validator.Validate
	}
)

func NewMealPlanHandler(mealPlanService mealplan.MealPlanService, validator *validator.Validate) MealPlanHandler {
	return &mealPlanHandler{
		mealPlanService: mealPlanService,
		validator:       validator,
	}
}

func (h *mealPlanHandler) CreateMealPlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	groupID := c.Locals("group_id").(string)

	req := new(domain.CreateMealPlanRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.HandleError(c, domain.ErrMealPlanMissingFields)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.ErrMealPlanMissingFields)
	}

	plan, err := h.mealPlanService.CreateMealPlan(c.Context(), *req, userID, groupID)
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, plan, fiber.StatusCreated, domain.StatusMealPlanCreated)
}

func (h *mealPlanHandler) GetMealPlans(c *fiber.Ctx) error {
	groupID := c.Locals("group_id").(string)
	date := c.Query("date")

	plans, err := h.mealPlanService.GetMealPlans(c.Context(), groupID, date)
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, plans, fiber.StatusOK, domain.StatusMealPlansFetched)
}

func (h *mealPlanHandler) UpdateMealPlan(c *fiber.Ctx) error {
	groupID := c.Locals("group_id").(string)

	req := new(domain.UpdateMealPlanRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.HandleError(c, domain.ErrMealPlanMissingID)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.ErrMealPlanMissingID)
	}

	plan, err := h.mealPlanService.UpdateMealPlan(c.Context(), *req, groupID)
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, plan, fiber.StatusOK, domain.StatusMealPlanUpdated)
}

func (h *mealPlanHandler) DeleteMealPlan(c *fiber.Ctx) error {
	groupID := c.Locals("group_id").(string)

	req := new(domain.DeleteMealPlanRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.HandleError(c, domain.ErrMealPlanDeleteMissing)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.ErrMealPlanDeleteMissing)
	}

	if err := h.mealPlanService.DeleteMealPlan(c.Context(), *req, groupID); err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.StatusMealPlanDeleted)
}
