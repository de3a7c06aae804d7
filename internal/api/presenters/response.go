package presenters

import (
	"errors"
	"log"

	"DTCL-Backend/domain"

	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data interface{}, httpStatus int, st domain.Status) error {
	return c.Status(httpStatus).JSON(Response{
		Code:    st.Code,
		Message: st.Message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, httpStatus int, code string, message string) error {
	return c.Status(httpStatus).JSON(Response{
		Code:    code,
		Message: message,
	})
}

// HandleError maps service errors to the response envelope. Unknown errors
// are logged and answered with the generic internal server error body.
func HandleError(c *fiber.Ctx, err error) error {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return ErrorResponse(c, appErr.HTTPStatus, appErr.Code, appErr.Message)
	}
	log.Printf("unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return ErrorResponse(c, domain.ErrInternalServer.HTTPStatus, domain.ErrInternalServer.Code, domain.ErrInternalServer.Message)
}
