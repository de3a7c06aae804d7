package handlers

import (
	"DTCL-Backend/domain"
	"DTCL-Backend/internal/api/presenters"
	"DTCL-Backend/pkg/fridge"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FridgeHandler interface {
		CreateFridgeItem(c *fiber.Ctx) error
		UpdateFridgeItem(c *fiber.Ctx) error
		DeleteFridgeItem(c *fiber.Ctx) error
		GetFridgeItems(c *fiber.Ctx) error
		GetFridgeItem(c *fiber.Ctx) error
	}

	fridgeHandler struct {
		fridgeService fridge.FridgeService
		validator     *validator.Validate
	}
)

func NewFridgeHandler(fridgeService fridge.FridgeService, validator *validator.Validate) FridgeHandler {
	return &fridgeHandler{
		fridgeService: fridgeService,
		validator:     validator,
	}
}

func (h *fridgeHandler) CreateFridgeItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	groupID := c.Locals("group_id").(string)

	req := new(domain.CreateFridgeItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.HandleError(c, domain.ErrFridgeMissingFoodName)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.ErrFridgeMissingFoodName)
	}

	item, merged, err := h.fridgeService.CreateFridgeItem(c.Context(), *req, userID, groupID)
	if err != nil {
		return presenters.HandleError(c, err)
	}
	if merged {
		return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.StatusFridgeItemMerged)
	}
	return presenters.SuccessResponse(c, item, fiber.StatusCreated, domain.StatusFridgeItemCreated)
}

func (h *fridgeHandler) UpdateFridgeItem(c *fiber.Ctx) error {
	groupID := c.Locals("group_id").(string)

	req := new(domain.UpdateFridgeItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.HandleError(c, domain.ErrFridgeMissingItemID)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.ErrFridgeMissingItemID)
	}

	item, err := h.fridgeService.UpdateFridgeItem(c.Context(), *req, groupID)
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.StatusFridgeItemUpdated)
}

func (h *fridgeHandler) DeleteFridgeItem(c *fiber.Ctx) error {
	groupID := c.Locals("group_id").(string)

	req := new(domain.DeleteFridgeItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.HandleError(c, domain.ErrFridgeMissingItemID)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.ErrFridgeMissingItemID)
	}

	if err := h.fridgeService.DeleteFridgeItem(c.Context(), *req, groupID); err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.StatusFridgeItemDeleted)
}

func (h *fridgeHandler) GetFridgeItems(c *fiber.Ctx) error {
	groupID := c.Locals("group_id").(string)

	items, err := h.fridgeService.GetFridgeItems(c.Context(), groupID)
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.StatusFridgeFetched)
}

func (h *fridgeHandler) GetFridgeItem(c *fiber.Ctx) error {
	groupID := c.Locals("group_id").(string)

	item, err := h.fridgeService.GetFridgeItem(c.Context(), c.Params("id"), groupID)
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.StatusFridgeItemFetched)
}
