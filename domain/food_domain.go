package domain

import (
	"net/http"
)

var (
	StatusFoodCreated       = Status{"00160", "Tạo thực phẩm thành công."}
	StatusFoodUpdated       = Status{"00178", "Thành công."}
	StatusFoodDeleted       = Status{"00184", "Xóa thực phẩm thành công."}
	StatusFoodsFetched      = Status{"00188", "Lấy danh sách thực phẩm thành công."}
	StatusCategoriesFetched = Status{"00129", "Lấy các category thành công."}
	StatusUnitsFetched      = Status{"00110", "Lấy các unit thành công."}

	ErrFoodMissingFields   = NewAppError(http.StatusBadRequest, "00147", "Vui lòng cung cấp tất cả các trường bắt buộc!")
	ErrFoodBadName         = NewAppError(http.StatusBadRequest, "00148", "Vui lòng cung cấp tên của thực phẩm hợp lệ!")
	ErrFoodNeedsGroup      = NewAppError(http.StatusBadRequest, "00156x", "Hãy vào nhóm trước để tạo thực phẩm.")
	ErrFoodCategoryUnknown = NewAppError(http.StatusNotFound, "00155", "Không tìm thấy category với tên cung cấp.")
	ErrFoodUnitUnknown     = NewAppError(http.StatusNotFound, "00153", "Không tìm thấy đơn vị với tên cung cấp.")
	ErrFoodNameTaken       = NewAppError(http.StatusBadRequest, "00151", "Đã tồn tại thức ăn với tên này.")

	ErrFoodUpdateMissingName = NewAppError(http.StatusBadRequest, "00161", "Vui lòng cung cấp tất cả các trường bắt buộc!")
	ErrFoodUpdateNoFields    = NewAppError(http.StatusBadRequest, "00163", "Vui lòng cung cấp ít nhất một trong các trường sau, newName, newCategory, newUnit.")
	ErrFoodNotFound          = NewAppError(http.StatusNotFound, "00167", "Thực phẩm với tên đã cung cấp không tồn tại.")
	ErrFoodNewNameTaken      = NewAppError(http.StatusBadRequest, "00173", "Một thực phẩm với tên này đã tồn tại.")
	ErrNewCategoryUnknown    = NewAppError(http.StatusNotFound, "00171", "Không tìm thấy danh mục với tên đã cung cấp.")
	ErrNewUnitUnknown        = NewAppError(http.StatusNotFound, "00169", "Không tìm thấy đơn vị với tên đã cung cấp.")

	ErrFoodDeleteMissingName = NewAppError(http.StatusBadRequest, "00179", "Vui lòng cung cấp tên thực phẩm.")
	ErrFoodDeleteNotFound    = NewAppError(http.StatusNotFound, "00180", "Không tìm thấy thực phẩm với tên đã cung cấp.")

	ErrNotInAnyGroup = NewAppError(http.StatusBadRequest, "00185", "Bạn chưa vào nhóm nào.")
)

type (
	CreateFoodRequest struct {
		Name             string `json:"name" form:"name" validate:"required"`
		FoodCategoryName string `json:"foodCategoryName" form:"foodCategoryName" validate:"required"`
		UnitName         string `json:"unitName" form:"unitName" validate:"required"`
	}

	UpdateFoodRequest struct {
		Name        string `json:"name" validate:"required"`
		NewName     string `json:"newName"`
		NewCategory string `json:"newCategory"`
		NewUnit     string `json:"newUnit"`
	}

	DeleteFoodRequest struct {
		Name string `json:"name" validate:"required"`
	}
)
