package domain

import (
	"net/http"
)

var (
	StatusCategoryCreated = Status{"00135", "Tạo category thành công."}
	StatusCategoryEdited  = Status{"00141", "Sửa đổi category thành công."}
	StatusCategoryDeleted = Status{"00146", "Xóa category thành công."}
	StatusUnitCreated     = Status{"00116", "Tạo đơn vị thành công."}
	StatusUnitEdited      = Status{"00122", "Sửa đổi đơn vị thành công."}
	StatusUnitDeleted     = Status{"00128", "Xóa đơn vị thành công."}
	StatusLogsFetched     = Status{"00109", "Lấy log hệ thống thành công."}
	StatusUsersFetched    = Status{"00098", "Lấy danh sách người dùng thành công."}
	StatusUserRoleUpdated = Status{"00086", "Đã cập nhật role thành công."}
	StatusUserDeleted     = Status{"00092", "Tài khoản người dùng đã được xóa thành công."}
	StatusStatsFetched    = Status{"00098", "Thống kê hệ thống."}

	ErrCategoryMissingName = NewAppError(http.StatusBadRequest, "00131", "Thiếu thông tin tên của category.")
	ErrCategoryExists      = NewAppError(http.StatusBadRequest, "00132", "Đã tồn tại category có tên này.")
	ErrCategoryEditMissing = NewAppError(http.StatusBadRequest, "00136", "Thiếu thông tin name cũ, name mới.")
	ErrCategorySameName    = NewAppError(http.StatusBadRequest, "00137", "Tên cũ trùng với tên mới.")
	ErrCategoryNotFound    = NewAppError(http.StatusNotFound, "00138", "Không tìm thấy category với tên cung cấp.")
	ErrCategoryNewExists   = NewAppError(http.StatusBadRequest, "00138x", "Tên mới đã tồn tại.")
	ErrCategoryDelMissing  = NewAppError(http.StatusBadRequest, "00142", "Thiếu thông tin tên của category.")
	ErrCategoryDelNotFound = NewAppError(http.StatusNotFound, "00143", "Không tìm thấy category với tên cung cấp.")

	ErrUnitMissingName = NewAppError(http.StatusBadRequest, "00112", "Thiếu thông tin tên của đơn vị.")
	ErrUnitExists      = NewAppError(http.StatusBadRequest, "00113", "Đã tồn tại đơn vị có tên này.")
	ErrUnitEditMissing = NewAppError(http.StatusBadRequest, "00117", "Thiếu thông tin name cũ, name mới.")
	ErrUnitSameName    = NewAppError(http.StatusBadRequest, "00118", "Tên cũ trùng với tên mới.")
	ErrUnitNotFound    = NewAppError(http.StatusNotFound, "00119", "Không tìm thấy đơn vị với tên cung cấp.")
	ErrUnitDelMissing  = NewAppError(http.StatusBadRequest, "00123", "Thiếu thông tin tên của đơn vị.")
	ErrUnitDelNotFound = NewAppError(http.StatusNotFound, "00125", "Không tìm thấy đơn vị với tên cung cấp.")

	ErrUserNotFound = NewAppError(http.StatusNotFound, "00052", "Không thể tìm thấy người dùng.")
	ErrBadRole      = NewAppError(http.StatusBadRequest, "00025", "Vui lòng cung cấp role hợp lệ (user hoặc admin).")
	ErrSelfRole     = NewAppError(http.StatusBadRequest, "00017", "Bạn không thể thay đổi role của chính mình.")
	ErrSelfDelete   = NewAppError(http.StatusBadRequest, "00017", "Bạn không thể xóa tài khoản của chính mình.")
)

type (
	CreateCategoryRequest struct {
		Name string `json:"name" validate:"required"`
	}

	EditCategoryRequest struct {
		OldName string `json:"oldName" validate:"required"`
		NewName string `json:"newName" validate:"required"`
	}

	DeleteCategoryRequest struct {
		Name string `json:"name" validate:"required"`
	}

	CreateUnitRequest struct {
		UnitName string `json:"unitName" validate:"required"`
	}

	EditUnitRequest struct {
		OldName string `json:"oldName" validate:"required"`
		NewName string `json:"newName" validate:"required"`
	}

	DeleteUnitRequest struct {
		UnitName string `json:"unitName" validate:"required"`
	}

	UpdateUserRoleRequest struct {
		Role string `json:"role" validate:"required"`
	}

	ListUsersQuery struct {
		Page   int
		Limit  int
		Search string
		Role   string
	}

	SystemStatsResponse struct {
		Users struct {
			Total    int64 `json:"total"`
			Admins   int64 `json:"admins"`
			Verified int64 `json:"verified"`
		} `json:"users"`
		Groups     int64 `json:"groups"`
		Categories int64 `json:"categories"`
		Units      int64 `json:"units"`
	}
)
