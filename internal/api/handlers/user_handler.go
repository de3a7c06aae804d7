package handlers

import (
	"DTCL-Backend/domain"
	"DTCL-Backend/internal/api/presenters"
	"DTCL-Backend/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		Register(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
		RefreshToken(c *fiber.Ctx) error
		SendVerificationCode(c *fiber.Ctx) error
		VerifyEmail(c *fiber.Ctx) error
		ChangePassword(c *fiber.Ctx) error
		GetProfile(c *fiber.Ctx) error
		UpdateProfile(c *fiber.Ctx) error
		DeleteAccount(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
		validator   *validator.Validate
	}
)

func NewUserHandler(userService user.UserService, validator *validator.Validate) UserHandler {
	return &userHandler{
		userService: userService,
		validator:   validator,
	}
}

func (h *userHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.HandleError(c, domain.ErrRegisterMissingFields)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.ErrRegisterMissingFields)
	}

	res, err := h.userService.Register(c.Context(), *req)
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.StatusRegistered)
}

func (h *userHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.HandleError(c, domain.ErrLoginMissingFields)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.ErrLoginMissingFields)
	}

	res, err := h.userService.Login(c.Context(), *req)
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.StatusLoggedIn)
}

func (h *userHandler) Logout(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.userService.Logout(c.Context(), userID); err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.StatusLoggedOut)
}

func (h *userHandler) RefreshToken(c *fiber.Ctx) error {
	req := new(domain.RefreshTokenRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.HandleError(c, domain.ErrRefreshMissing)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.ErrRefreshMissing)
	}

	res, err := h.userService.RefreshToken(c.Context(), *req)
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.StatusTokenRefreshed)
}

func (h *userHandler) SendVerificationCode(c *fiber.Ctx) error {
	req := new(domain.SendVerificationCodeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.HandleError(c, domain.ErrSendCodeMissingEmail)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.ErrSendCodeMissingEmail)
	}

	if err := h.userService.SendVerificationCode(c.Context(), *req); err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.StatusCodeSent)
}

func (h *userHandler) VerifyEmail(c *fiber.Ctx) error {
	req := new(domain.VerifyEmailRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.HandleError(c, domain.ErrVerifyMissingCode)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.ErrVerifyMissingCode)
	}

	if err := h.userService.VerifyEmail(c.Context(), *req); err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.StatusEmailVerified)
}

func (h *userHandler) ChangePassword(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ChangePasswordRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.HandleError(c, domain.ErrChangePasswordMissing)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.HandleError(c, domain.ErrChangePasswordMissing)
	}

	if err := h.userService.ChangePassword(c.Context(), *req, userID); err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.StatusPasswordChanged)
}

func (h *userHandler) GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.userService.GetProfile(c.Context(), userID)
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.StatusProfileFetched)
}

func (h *userHandler) UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UpdateProfileRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.HandleError(c, domain.ErrUpdateBadName)
	}

	avatar, _ := c.FormFile("avatar")

	res, err := h.userService.UpdateProfile(c.Context(), *req, avatar, userID)
	if err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.StatusProfileUpdated)
}

func (h *userHandler) DeleteAccount(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.userService.DeleteAccount(c.Context(), userID); err != nil {
		return presenters.HandleError(c, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.StatusAccountDeleted)
}
