package handlers

import (
	"DTCL-Backend/domain"
	"DTCL-Backend/internal/api/presenters"
	"DTCL-Backend/pkg/group"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	GroupHandler interface {
		CreateGroup(c *fiber.Ctx) error
		GetGroup(c *fiber.Ctx) error
		AddMember(c *fiber.Ctx) error
		RemoveMember(c *fiber.Ctx) error
		LeaveGroup(c *fiber.Ctx) error
		DeleteGroup(c *fiber.Ctx) error
	}

	groupHandler struct {
		groupService group.GroupService
		validator    *validator.Validate
	}
)

func NewGroupHandler(groupService group.GroupService, validator *validator.Validate) GroupHandler {
	return &groupHandler{
		groupService: groupService,
		validator:    validator,
	}
}

func (h *groupHandler) CreateGroup(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	// The group name is optional, an empty body falls back to the default.
	req := new(domain.CreateGroupRequest)
	_ = c.BodyParser(req)

	res, err := h.groupService.CreateGroup(c.Context(), *req, userID)
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.StatusGroupCreated)
}

func (h *groupHandler) GetGroup(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.groupService.GetGroup(c.Context(), userID)
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.StatusGroupFetched)
}

func (h *groupHandler) AddMember(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.MemberRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.HandleError(c, domain.ErrAddMemberMissing)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.ErrAddMemberMissing)
	}

	res, err := h.groupService.AddMember(c.Context(), *req, userID)
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.StatusMemberAdded)
}

func (h *groupHandler) RemoveMember(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.MemberRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.HandleError(c, domain.ErrRemoveMemberMissing)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.ErrRemoveMemberMissing)
	}

	res, err := h.groupService.RemoveMember(c.Context(), *req, userID)
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.StatusMemberRemoved)
}

func (h *groupHandler) LeaveGroup(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.groupService.LeaveGroup(c.Context(), userID); err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.StatusGroupLeft)
}

func (h *groupHandler) DeleteGroup(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.groupService.DeleteGroup(c.Context(), userID); err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.StatusGroupDeleted)
}
