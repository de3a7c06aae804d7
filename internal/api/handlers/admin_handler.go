package handlers

import (
	"strconv"

	"DTCL-Backend/domain"
	"DTCL-Backend/internal/api/presenters"
	"DTCL-Backend/pkg/admin"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AdminHandler interface {
		GetCategories(c *fiber.Ctx) error
		CreateCategory(c *fiber.Ctx) error
		EditCategory(c *fiber.Ctx) error
		DeleteCategory(c *fiber.Ctx) error

		GetUnits(c *fiber.Ctx) error
		CreateUnit(c *fiber.Ctx) error
		EditUnit(c *fiber.Ctx) error
		DeleteUnit(c *fiber.Ctx) error

		GetLogs(c *fiber.Ctx) error
		GetUsers(c *fiber.Ctx) error
		GetUser(c *fiber.Ctx) error
		UpdateUserRole(c *fiber.Ctx) error
		DeleteUser(c *fiber.Ctx) error
		GetSystemStats(c *fiber.Ctx) error
	}

	adminHandler struct {
		adminService admin.AdminService
		validator    *validator.Validate
	}
)

func NewAdminHandler(adminService admin.AdminService, validator *validator.Validate) AdminHandler {
	return &adminHandler{
		adminService: adminService,
		validator:    validator,
	}
}

func (h *adminHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.adminService.GetCategories(c.Context())
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, categories, fiber.StatusOK, domain.StatusCategoriesFetched)
}

func (h *adminHandler) CreateCategory(c *fiber.Ctx) error {
	req := new(domain.CreateCategoryRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.HandleError(c, domain.ErrCategoryMissingName)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.ErrCategoryMissingName)
	}

	category, err := h.adminService.CreateCategory(c.Context(), *req)
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, category, fiber.StatusCreated, domain.StatusCategoryCreated)
}

func (h *adminHandler) EditCategory(c *fiber.Ctx) error {
	req := new(domain.EditCategoryRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.HandleError(c, domain.ErrCategoryEditMissing)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.ErrCategoryEditMissing)
	}

	category, err := h.adminService.EditCategory(c.Context(), *req)
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, category, fiber.StatusOK, domain.StatusCategoryEdited)
}

func (h *adminHandler) DeleteCategory(c *fiber.Ctx) error {
	req := new(domain.DeleteCategoryRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.HandleError(c, domain.ErrCategoryDelMissing)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.ErrCategoryDelMissing)
	}

	if err := h.adminService.DeleteCategory(c.Context(), *req); err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.StatusCategoryDeleted)
}

func (h *adminHandler) GetUnits(c *fiber.Ctx) error {
	units, err := h.adminService.GetUnits(c.Context())
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, units, fiber.StatusOK, domain.StatusUnitsFetched)
}

func (h *adminHandler) CreateUnit(c *fiber.Ctx) error {
	req := new(domain.CreateUnitRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.HandleError(c, domain.ErrUnitMissingName)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.ErrUnitMissingName)
	}

	unit, err := h.adminService.CreateUnit(c.Context(), *req)
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, unit, fiber.StatusCreated, domain.StatusUnitCreated)
}

func (h *adminHandler) EditUnit(c *fiber.Ctx) error {
	req := new(domain.EditUnitRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.HandleError(c, domain.ErrUnitEditMissing)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.ErrUnitEditMissing)
	}

	unit, err := h.adminService.EditUnit(c.Context(), *req)
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, unit, fiber.StatusOK, domain.StatusUnitEdited)
}

func (h *adminHandler) DeleteUnit(c *fiber.Ctx) error {
	req := new(domain.DeleteUnitRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.HandleError(c, domain.ErrUnitDelMissing)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.ErrUnitDelMissing)
	}

	if err := h.adminService.DeleteUnit(c.Context(), *req); err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.StatusUnitDeleted)
}

func (h *adminHandler) GetLogs(c *fiber.Ctx) error {
	lines, _ := strconv.Atoi(c.Query("lines", "200"))

	logs, err := h.adminService.GetLogs(c.Context(), lines)
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, logs, fiber.StatusOK, domain.StatusLogsFetched)
}

func (h *adminHandler) GetUsers(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	users, total, err := h.adminService.GetUsers(c.Context(), domain.ListUsersQuery{
		Page:   page,
		Limit:  limit,
		Search: c.Query("search"),
		Role:   c.Query("role"),
	})
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{
		"users": users,
		"total": total,
		"page":  page,
		"limit": limit,
	}, fiber.StatusOK, domain.StatusUsersFetched)
}

func (h *adminHandler) GetUser(c *fiber.Ctx) error {
	u, err := h.adminService.GetUser(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, u, fiber.StatusOK, domain.StatusProfileFetched)
}

func (h *adminHandler) UpdateUserRole(c *fiber.Ctx) error {
	actorID := c.Locals("user_id").(string)

	req := new(domain.UpdateUserRoleRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.HandleError(c, domain.ErrBadRole)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.ErrBadRole)
	}

	u, err := h.adminService.UpdateUserRole(c.Context(), c.Params("id"), *req, actorID)
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, u, fiber.StatusOK, domain.StatusUserRoleUpdated)
}

func (h *adminHandler) DeleteUser(c *fiber.Ctx) error {
	actorID := c.Locals("user_id").(string)

	if err := h.adminService.DeleteUser(c.Context(), c.Params("id"), actorID); err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.StatusUserDeleted)
}

func (h *adminHandler) GetSystemStats(c *fiber.Ctx) error {
	stats, err := h.adminService.GetSystemStats(c.Context())
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.StatusStatsFetched)
}
