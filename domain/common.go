package domain

import (
	"net/http"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Status is the (code, message) pair of a success envelope. Codes are
// opaque numeric-string tags the mobile client branches on; they are
// chosen independently of the HTTP status.
type Status struct {
	Code    string
	Message string
}

// AppError is a failure envelope with its HTTP status attached.
type AppError struct {
	HTTPStatus int
	Code       string
	Message    string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(httpStatus int, code, message string) *AppError {
	return &AppError{HTTPStatus: httpStatus, Code: code, Message: message}
}

var (
	ErrInternalServer = NewAppError(http.StatusInternalServerError, "00008", "Đã xảy ra lỗi máy chủ nội bộ, vui lòng thử lại.")

	ErrTokenNotFound     = NewAppError(http.StatusUnauthorized, "00006", "Truy cập bị từ chối. Không có token được cung cấp.")
	ErrTokenExpired      = NewAppError(http.StatusUnauthorized, "00011", "Phiên của bạn đã hết hạn, vui lòng đăng nhập lại.")
	ErrTokenInvalid      = NewAppError(http.StatusUnauthorized, "00012", "Token không hợp lệ. Token có thể đã hết hạn.")
	ErrTokenUserNotFound = NewAppError(http.StatusUnauthorized, "00052", "Không thể tìm thấy người dùng.")

	ErrNotAdmin      = NewAppError(http.StatusForbidden, "00017", "Truy cập bị từ chối. Bạn không có quyền truy cập.")
	ErrNoGroup       = NewAppError(http.StatusBadRequest, "00096", "Bạn không thuộc về nhóm nào.")
	ErrNotGroupAdmin = NewAppError(http.StatusForbidden, "00104", "Bạn không phải admin, không thể thực hiện thao tác này.")
)
