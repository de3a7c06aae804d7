package domain

import (
	"net/http"
)

var (
	StatusMealPlanCreated  = Status{"00322", "Thêm kế hoạch bữa ăn thành công."}
	StatusMealPlansFetched = Status{"00349", "Lấy danh sách thành công."}
	StatusMealPlanUpdated  = Status{"00345", "Cập nhật kế hoạch bữa ăn thành công."}
	StatusMealPlanDeleted  = Status{"00330", "Kế hoạch bữa ăn của bạn đã được xóa thành công."}

	ErrMealPlanMissingFields = NewAppError(http.StatusBadRequest, "00313", "Vui lòng cung cấp tất cả các trường bắt buộc.")
	ErrMealPlanBadFoodName   = NewAppError(http.StatusBadRequest, "00314", "Vui lòng cung cấp một tên thực phẩm hợp lệ.")
	ErrMealPlanBadTimestamp  = NewAppError(http.StatusBadRequest, "00315", "Vui lòng cung cấp một dấu thời gian hợp lệ.")
	ErrMealPlanBadMealType   = NewAppError(http.StatusBadRequest, "00316", "Vui lòng cung cấp một tên hợp lệ cho bữa ăn, sáng, trưa, tối.")
	ErrMealPlanNoGroup       = NewAppError(http.StatusBadRequest, "00348", "Bạn chưa vào nhóm nào.")

	ErrMealPlanMissingID      = NewAppError(http.StatusBadRequest, "00332", "Vui lòng cung cấp một ID kế hoạch!")
	ErrMealPlanUpdateNoFields = NewAppError(http.StatusBadRequest, "00333", "Vui lòng cung cấp ít nhất một trong các trường sau, newFoodName, newTimestamp, newName.")
	ErrMealPlanNotFound       = NewAppError(http.StatusNotFound, "00339", "Không tìm thấy kế hoạch với ID đã cung cấp.")
	ErrMealPlanWrongGroup     = NewAppError(http.StatusForbidden, "00341", "Người dùng không phải là quản trị viên nhóm.")
	ErrMealPlanNewFoodUnknown = NewAppError(http.StatusNotFound, "00344", "Tên thực phẩm mới không tồn tại.")
	ErrMealPlanBadNewTime     = NewAppError(http.StatusBadRequest, "00335", "Vui lòng cung cấp một dấu thời gian hợp lệ!")
	ErrMealPlanBadNewMeal     = NewAppError(http.StatusBadRequest, "00337", "Vui lòng cung cấp một tên hợp lệ, sáng, trưa, tối!")

	ErrMealPlanDeleteMissing   = NewAppError(http.StatusBadRequest, "00324", "Vui lòng cung cấp một ID kế hoạch hợp lệ.")
	ErrMealPlanDeleteNotFound  = NewAppError(http.StatusNotFound, "00325", "Không tìm thấy kế hoạch với ID đã cung cấp.")
	ErrMealPlanDeleteForbidden = NewAppError(http.StatusForbidden, "00327", "Người dùng không phải là quản trị viên nhóm.")
)

// Meal slots of a day.
const (
	MealMorning = "sáng"
	MealNoon    = "trưa"
	MealEvening = "tối"
)

func ValidMealType(mealType string) bool {
	switch mealType {
	case MealMorning, MealNoon, MealEvening:
		return true
	}
	return false
}

type (
	CreateMealPlanRequest struct {
		FoodName  string `json:"foodName" validate:"required"`
		Timestamp string `json:"timestamp" validate:"required"`
		Name      string `json:"name" validate:"required"` // meal slot: sáng, trưa, tối
	}

	UpdateMealPlanRequest struct {
		PlanID       string `json:"planId" validate:"required"`
		NewFoodName  string `json:"newFoodName"`
		NewTimestamp string `json:"newTimestamp"`
		NewName      string `json:"newName"`
	}

	DeleteMealPlanRequest struct {
		PlanID string `json:"planId" validate:"required"`
	}
)
