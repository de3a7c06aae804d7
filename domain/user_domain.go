package domain

import (
	"net/http"
)

var (
	StatusRegistered      = Status{"00035", "Bạn đã đăng ký thành công. Vui lòng kiểm tra email để xác thực."}
	StatusLoggedIn        = Status{"00047", "Bạn đã đăng nhập thành công."}
	StatusLoggedOut       = Status{"00050", "Đăng xuất thành công."}
	StatusTokenRefreshed  = Status{"00066", "Token đã được làm mới thành công."}
	StatusCodeSent        = Status{"00048", "Mã đã được gửi đến email của bạn thành công."}
	StatusEmailVerified   = Status{"00058", "Địa chỉ email của bạn đã được xác minh thành công."}
	StatusPasswordChanged = Status{"00076", "Mật khẩu của bạn đã được thay đổi thành công."}
	StatusProfileFetched  = Status{"00089", "Thông tin người dùng đã được lấy thành công."}
	StatusProfileUpdated  = Status{"00086", "Thông tin hồ sơ của bạn đã được thay đổi thành công."}
	StatusAccountDeleted  = Status{"00092", "Tài khoản của bạn đã bị xóa thành công."}

	ErrRegisterMissingFields = NewAppError(http.StatusBadRequest, "00025", "Vui lòng cung cấp tất cả các trường bắt buộc!")
	ErrRegisterBadEmail      = NewAppError(http.StatusBadRequest, "00026", "Vui lòng cung cấp một địa chỉ email hợp lệ!")
	ErrRegisterBadPassword   = NewAppError(http.StatusBadRequest, "00027", "Vui lòng cung cấp mật khẩu dài hơn 6 ký tự và ngắn hơn 20 ký tự.")
	ErrRegisterBadName       = NewAppError(http.StatusBadRequest, "00028", "Vui lòng cung cấp một tên dài hơn 3 ký tự và ngắn hơn 30 ký tự.")
	ErrEmailTaken            = NewAppError(http.StatusBadRequest, "00032", "Một tài khoản với địa chỉ email này đã tồn tại.")

	ErrLoginMissingFields = NewAppError(http.StatusBadRequest, "00038", "Vui lòng cung cấp tất cả các trường bắt buộc!")
	ErrLoginBadEmail      = NewAppError(http.StatusBadRequest, "00039", "Vui lòng cung cấp một địa chỉ email hợp lệ!")
	ErrEmailNotFound      = NewAppError(http.StatusBadRequest, "00042", "Không tìm thấy tài khoản với địa chỉ email này.")
	ErrWrongCredentials   = NewAppError(http.StatusBadRequest, "00045", "Bạn đã nhập một email hoặc mật khẩu không hợp lệ.")

	ErrRefreshMissing  = NewAppError(http.StatusBadRequest, "00059", "Vui lòng cung cấp token làm mới.")
	ErrRefreshExpired  = NewAppError(http.StatusUnauthorized, "00063", "Token đã hết hạn, vui lòng đăng nhập.")
	ErrRefreshMismatch = NewAppError(http.StatusUnauthorized, "00061", "Token được cung cấp không khớp với người dùng, vui lòng đăng nhập.")

	ErrSendCodeMissingEmail = NewAppError(http.StatusBadRequest, "00005", "Vui lòng cung cấp đầy đủ thông tin để gửi mã.")
	ErrSendCodeNoAccount    = NewAppError(http.StatusNotFound, "00036", "Không tìm thấy tài khoản với địa chỉ email này.")
	ErrVerifyMissingCode    = NewAppError(http.StatusBadRequest, "00053", "Vui lòng gửi một mã xác nhận.")
	ErrVerifyBadCode        = NewAppError(http.StatusBadRequest, "00054", "Mã bạn nhập không khớp với mã chúng tôi đã gửi đến email của bạn. Vui lòng kiểm tra lại.")

	ErrChangePasswordMissing = NewAppError(http.StatusBadRequest, "00069", "Vui lòng cung cấp mật khẩu cũ và mới dài hơn 6 ký tự và ngắn hơn 20 ký tự.")
	ErrChangePasswordBadNew  = NewAppError(http.StatusBadRequest, "00068", "Vui lòng cung cấp một mật khẩu dài hơn 6 và ngắn hơn 20 ký tự.")
	ErrChangePasswordNoMatch = NewAppError(http.StatusBadRequest, "00072", "Mật khẩu cũ của bạn không khớp với mật khẩu bạn nhập, vui lòng nhập mật khẩu đúng.")
	ErrChangePasswordSame    = NewAppError(http.StatusBadRequest, "00073", "Mật khẩu mới của bạn không nên giống với mật khẩu cũ, vui lòng thử một mật khẩu khác.")

	ErrUpdateBadName     = NewAppError(http.StatusBadRequest, "00077", "Vui lòng cung cấp một tên dài hơn 3 ký tự và ngắn hơn 30 ký tự.")
	ErrUpdateBadGender   = NewAppError(http.StatusBadRequest, "00078", "Các tùy chọn giới tính hợp lệ, female-male-other, vui lòng cung cấp một trong số chúng.")
	ErrUpdateBadLanguage = NewAppError(http.StatusBadRequest, "00079", "Các tùy chọn ngôn ngữ hợp lệ, vi-en, vui lòng cung cấp một trong số chúng.")
	ErrUpdateBadBirthday = NewAppError(http.StatusBadRequest, "00080", "Vui lòng cung cấp một ngày sinh hợp lệ.")
	ErrUpdateBadUsername = NewAppError(http.StatusBadRequest, "00081", "Vui lòng cung cấp một tên người dùng dài hơn 3 ký tự và ngắn hơn 15 ký tự.")
	ErrUsernameTaken     = NewAppError(http.StatusBadRequest, "00084", "Đã có một người dùng với tên người dùng này, vui lòng nhập tên khác.")
)

type (
	RegisterRequest struct {
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
		Name     string `json:"name" validate:"required"`
		Language string `json:"language"`
		Timezone string `json:"timezone"`
		DeviceID string `json:"deviceId"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		ID           string  `json:"id"`
		Email        string  `json:"email"`
		Name         string  `json:"name"`
		Username     *string `json:"username,omitempty"`
		Avatar       string  `json:"avatar,omitempty"`
		Role         string  `json:"role"`
		GroupID      *string `json:"group,omitempty"`
		Token        string  `json:"token"`
		RefreshToken string  `json:"refreshToken"`
	}

	RefreshTokenRequest struct {
		RefreshToken string `json:"refreshToken" validate:"required"`
	}

	RefreshTokenResponse struct {
		Token        string `json:"token"`
		RefreshToken string `json:"refreshToken"`
	}

	SendVerificationCodeRequest struct {
		Email string `json:"email" validate:"required"`
	}

	VerifyEmailRequest struct {
		Code string `json:"code" validate:"required"`
	}

	ChangePasswordRequest struct {
		OldPassword string `json:"oldPassword" validate:"required"`
		NewPassword string `json:"newPassword" validate:"required"`
	}

	ProfileResponse struct {
		ID          string  `json:"id"`
		Email       string  `json:"email"`
		Name        string  `json:"name"`
		Username    *string `json:"username,omitempty"`
		Avatar      string  `json:"avatar,omitempty"`
		Role        string  `json:"role"`
		Gender      string  `json:"gender,omitempty"`
		DateOfBirth *string `json:"dateOfBirth,omitempty"`
		Language    string  `json:"language"`
		Timezone    string  `json:"timezone"`
		IsVerified  bool    `json:"isVerified"`
		GroupID     *string `json:"group,omitempty"`
	}

	UpdateProfileRequest struct {
		Username    string `json:"username" form:"username"`
		Name        string `json:"name" form:"name"`
		Gender      string `json:"gender" form:"gender"`
		DateOfBirth string `json:"dateOfBirth" form:"dateOfBirth"`
		Language    string `json:"language" form:"language"`
	}
)
