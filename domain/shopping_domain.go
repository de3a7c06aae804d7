package domain

import (
	"net/http"
)

var (
	StatusListExists   = Status{"00098", "Danh sách đã tồn tại."}
	StatusListCreated  = Status{"00098", "Thành công."}
	StatusListsFetched = Status{"00287", "Lấy danh sách các shopping list thành công."}
	StatusListDeleted  = Status{"00299", "Xóa thành công."}
	StatusTaskCreated  = Status{"00284", "Thêm nhiệm vụ thành công."}
	StatusTasksFetched = Status{"00287", "Lấy danh sách các shopping list thành công."}
	StatusTaskUpdated  = Status{"00312", "Cập nhật nhiệm vụ thành công."}
	StatusTaskDeleted  = Status{"00299", "Xóa nhiệm vụ thành công."}

	ErrShoppingNeedsGroup  = NewAppError(http.StatusBadRequest, "00286", "Người dùng này chưa thuộc nhóm nào.")
	ErrListMissingID       = NewAppError(http.StatusBadRequest, "00293", "Vui lòng cung cấp tất cả các trường bắt buộc.")
	ErrListBadDate         = NewAppError(http.StatusBadRequest, "00293x", "Vui lòng cung cấp một ngày hợp lệ theo định dạng YYYY-MM-DD.")
	ErrListNotFound        = NewAppError(http.StatusNotFound, "00296", "Không tìm thấy danh sách.")
	ErrListWrongGroup      = NewAppError(http.StatusForbidden, "00295", "Danh sách không thuộc nhóm của bạn.")
	ErrTaskMissingFields   = NewAppError(http.StatusBadRequest, "00278", "Vui lòng cung cấp tất cả các trường bắt buộc.")
	ErrTaskDuplicateFood   = NewAppError(http.StatusBadRequest, "00283", "Thực phẩm này đã có trong danh sách rồi.")
	ErrTaskUpdateMissingID = NewAppError(http.StatusBadRequest, "00301", "Vui lòng cung cấp một ID nhiệm vụ trong trường taskId.")
	ErrTaskNotFound        = NewAppError(http.StatusNotFound, "00306", "Không tìm thấy nhiệm vụ với ID đã cung cấp.")
	ErrTaskFoodNotFound    = NewAppError(http.StatusNotFound, "00308", "Không tìm thấy nhiệm vụ với tên đã cung cấp.")
	ErrTaskFoodInList      = NewAppError(http.StatusBadRequest, "00309", "Thực phẩm này đã tồn tại trong danh sách mua hàng hiện tại.")
	ErrTaskDeleteMissingID = NewAppError(http.StatusBadRequest, "00294", "Vui lòng cung cấp một ID nhiệm vụ trong trường taskId.")
	ErrTaskDeleteNotFound  = NewAppError(http.StatusNotFound, "00296", "Không tìm thấy nhiệm vụ với ID đã cung cấp.")
)

type (
	CreateShoppingListRequest struct {
		Date string `json:"date"`
	}

	DeleteShoppingListRequest struct {
		ListID string `json:"listId" validate:"required"`
	}

	CreateTaskRequest struct {
		ListID     string `json:"listId" validate:"required"`
		FoodName   string `json:"foodName" validate:"required"`
		Quantity   *int   `json:"quantity"`
		AssignedTo string `json:"assignedTo"`
	}

	UpdateTaskRequest struct {
		TaskID      string `json:"taskId" validate:"required"`
		NewFoodName string `json:"newFoodName"`
		NewQuantity *int   `json:"newQuantity"`
		IsCompleted *bool  `json:"isCompleted"`
	}

	DeleteTaskRequest struct {
		TaskID string `json:"taskId" validate:"required"`
	}
)
