package domain

import (
	"net/http"
)

var (
	StatusRecipeCreated  = Status{"00357", "Thêm công thức nấu ăn thành công."}
	StatusRecipesFetched = Status{"00378", "Lấy các công thức thành công."}
	StatusRecipeUpdated  = Status{"00370", "Cập nhật công thức nấu ăn thành công."}
	StatusRecipeDeleted  = Status{"00376", "Công thức của bạn đã được xóa thành công."}

	ErrRecipeMissingFields = NewAppError(http.StatusBadRequest, "00350", "Vui lòng cung cấp tất cả các trường bắt buộc.")
	ErrRecipeBadFoodName   = NewAppError(http.StatusBadRequest, "00351", "Vui lòng cung cấp một tên thực phẩm hợp lệ.")
	ErrRecipeBadName       = NewAppError(http.StatusBadRequest, "00352", "Vui lòng cung cấp một tên công thức hợp lệ.")
	ErrRecipeFoodNotFound  = NewAppError(http.StatusNotFound, "00354", "Không tìm thấy thực phẩm với tên đã cung cấp.")

	ErrRecipeMissingID      = NewAppError(http.StatusBadRequest, "00359", "Vui lòng cung cấp một ID công thức!")
	ErrRecipeUpdateNoFields = NewAppError(http.StatusBadRequest, "00360", "Vui lòng cung cấp ít nhất một trong các trường sau, newFoodName, newDescription, newHtmlContent, newName.")
	ErrRecipeNotFound       = NewAppError(http.StatusNotFound, "00365", "Không tìm thấy công thức với ID đã cung cấp.")
	ErrRecipeNewFoodUnknown = NewAppError(http.StatusNotFound, "00367", "Tên thực phẩm mới không tồn tại.")
	ErrRecipeBadNewName     = NewAppError(http.StatusBadRequest, "00364", "Vui lòng cung cấp một tên công thức mới hợp lệ!")

	ErrRecipeDeleteMissingID = NewAppError(http.StatusBadRequest, "00372", "Vui lòng cung cấp một ID công thức hợp lệ.")
	ErrRecipeDeleteNotFound  = NewAppError(http.StatusNotFound, "00373", "Không tìm thấy công thức với ID đã cung cấp.")
)

type (
	CreateRecipeRequest struct {
		FoodName    string `json:"foodName" validate:"required"`
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
		HTMLContent string `json:"htmlContent"`
	}

	UpdateRecipeRequest struct {
		RecipeID       string  `json:"recipeId" validate:"required"`
		NewFoodName    string  `json:"newFoodName"`
		NewName        string  `json:"newName"`
		NewDescription *string `json:"newDescription"`
		NewHTMLContent *string `json:"newHtmlContent"`
	}

	DeleteRecipeRequest struct {
		RecipeID string `json:"recipeId" validate:"required"`
	}
)
