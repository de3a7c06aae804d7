package handlers

import (
	"DTCL-Backend/domain"
	"DTCL-Backend/internal/api/presenters"
	"DTCL-Backend/pkg/shopping"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ShoppingHandler interface {
		CreateShoppingList(c *fiber.Ctx) error
		GetShoppingLists(c *fiber.Ctx) error
		DeleteShoppingList(c *fiber.Ctx) error
		CreateTask(c *fiber.Ctx) error
		GetTasks(c *fiber.Ctx) error
		UpdateTask(c *fiber.Ctx) error
		DeleteTask(c *fiber.Ctx) error
	}

	shoppingHandler struct {
		shoppingService shopping.ShoppingService
		validator       *validator.Validate
	}
)

func NewShoppingHandler(shoppingService shopping.ShoppingService, validator *validator.Validate) ShoppingHandler {
	return &shoppingHandler{
		shoppingService: shoppingService,
		validator:       validator,
	}
}

func (h *shoppingHandler) CreateShoppingList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	groupID := c.Locals("group_id").(string)

	// Date is optional and defaults to today.
	req := new(domain.CreateShoppingListRequest)
	_ = c.BodyParser(req)

	list, existed, err := h.shoppingService.CreateShoppingList(c.Context(), *req, userID, groupID)
	if err != nil {
		return presenters.HandleError(c, err)
	}
	if existed {
		return presenters.SuccessResponse(c, list, fiber.StatusOK, domain.StatusListExists)
	}
	return presenters.SuccessResponse(c, list, fiber.StatusCreated, domain.StatusListCreated)
}

func (h *shoppingHandler) GetShoppingLists(c *fiber.Ctx) error {
	groupID := c.Locals("group_id").(string)

	lists, err := h.shoppingService.GetShoppingLists(c.Context(), groupID)
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, lists, fiber.StatusOK, domain.StatusListsFetched)
}

func (h *shoppingHandler) DeleteShoppingList(c *fiber.Ctx) error {
	groupID := c.Locals("group_id").(string)

	req := new(domain.DeleteShoppingListRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.HandleError(c, domain.ErrListMissingID)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.ErrListMissingID)
	}

	if err := h.shoppingService.DeleteShoppingList(c.Context(), *req, groupID); err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.StatusListDeleted)
}

func (h *shoppingHandler) CreateTask(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	groupID := c.Locals("group_id").(string)

	req := new(domain.CreateTaskRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.HandleError(c, domain.ErrTaskMissingFields)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.ErrTaskMissingFields)
	}

	task, err := h.shoppingService.CreateTask(c.Context(), *req, userID, groupID)
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, task, fiber.StatusCreated, domain.StatusTaskCreated)
}

func (h *shoppingHandler) GetTasks(c *fiber.Ctx) error {
	groupID := c.Locals("group_id").(string)

	tasks, err := h.shoppingService.GetTasks(c.Context(), c.Params("listId"), groupID)
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, tasks, fiber.StatusOK, domain.StatusTasksFetched)
}

func (h *shoppingHandler) UpdateTask(c *fiber.Ctx) error {
	groupID := c.Locals("group_id").(string)

	req := new(domain.UpdateTaskRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.HandleError(c, domain.ErrTaskUpdateMissingID)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.ErrTaskUpdateMissingID)
	}

	task, err := h.shoppingService.UpdateTask(c.Context(), *req, groupID)
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, task, fiber.StatusOK, domain.StatusTaskUpdated)
}

func (h *shoppingHandler) DeleteTask(c *fiber.Ctx) error {
	groupID := c.Locals("group_id").(string)

	req := new(domain.DeleteTaskRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.HandleError(c, domain.ErrTaskDeleteMissingID)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.ErrTaskDeleteMissingID)
	}

	if err := h.shoppingService.DeleteTask(c.Context(), *req, groupID); err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.StatusTaskDeleted)
}
