package domain

import (
	"net/http"
)

var (
	StatusFridgeItemCreated = Status{"00202", "Mục trong tủ lạnh được tạo thành công."}
	StatusFridgeItemMerged  = Status{"00202", "Đã cập nhật số lượng thực phẩm."}
	StatusFridgeItemUpdated = Status{"00178", "Thành công."}
	StatusFridgeItemFetched = Status{"00178", "Thành công."}
	StatusFridgeItemDeleted = Status{"00184", "Xóa thành công."}
	StatusFridgeFetched     = Status{"00188", "Lấy danh sách thực phẩm thành công."}

	ErrFridgeMissingFoodName = NewAppError(http.StatusBadRequest, "00190", "Vui lòng cung cấp một tên thực phẩm hợp lệ!")
	ErrFridgeBadUseWithin    = NewAppError(http.StatusBadRequest, "00191", "Vui lòng cung cấp một giá trị 'sử dụng trong khoảng' hợp lệ!")
	ErrFridgeBadQuantity     = NewAppError(http.StatusBadRequest, "00192", "Vui lòng cung cấp một số lượng hợp lệ!")
	ErrFridgeBadLocation     = NewAppError(http.StatusBadRequest, "00193", "Vui lòng cung cấp một vị trí hợp lệ, freezer-chiller-vegetable-door.")
	ErrFridgeNeedsGroup      = NewAppError(http.StatusBadRequest, "00196", "Người dùng không có quyền do không thuộc nhóm.")

	ErrFridgeMissingItemID   = NewAppError(http.StatusBadRequest, "00204", "Vui lòng cung cấp id của item tủ lạnh.")
	ErrFridgeUpdateNoFields  = NewAppError(http.StatusBadRequest, "00204x", "Vui lòng cung cấp ít nhất một trong các trường sau, newQuantity, newNote, newUseWithin, newLocation.")
	ErrFridgeBadNewUseWithin = NewAppError(http.StatusBadRequest, "00205", "Vui lòng cung cấp một giá trị 'sử dụng trong' hợp lệ!")
	ErrFridgeBadNewQuantity  = NewAppError(http.StatusBadRequest, "00206", "Vui lòng cung cấp một lượng hợp lệ!")
	ErrFridgeBadNewLocation  = NewAppError(http.StatusBadRequest, "00207", "Vui lòng cung cấp một vị trí hợp lệ, freezer-chiller-vegetable-door.")
	ErrFridgeUserNoGroup     = NewAppError(http.StatusBadRequest, "00210", "Người dùng không thuộc bất kỳ nhóm nào.")
	ErrFridgeItemNotFound    = NewAppError(http.StatusNotFound, "00213", "Mục tủ lạnh không tồn tại.")
	ErrFridgeItemWrongGroup  = NewAppError(http.StatusForbidden, "00212", "Tủ lạnh không thuộc quản trị viên nhóm.")
)

// Fridge locations.
const (
	LocationFreezer   = "freezer"
	LocationChiller   = "chiller"
	LocationVegetable = "vegetable"
	LocationDoor      = "door"
)

func ValidLocation(location string) bool {
	switch location {
	case LocationFreezer, LocationChiller, LocationVegetable, LocationDoor:
		return true
	}
	return false
}

type (
	CreateFridgeItemRequest struct {
		FoodName  string `json:"foodName" validate:"required"`
		Quantity  *int   `json:"quantity"`
		UseWithin *int   `json:"useWithin"`
		Note      string `json:"note"`
		Location  string `json:"location"`
		Category  string `json:"category"`
		Unit      string `json:"unit"`
	}

	UpdateFridgeItemRequest struct {
		ItemID       string  `json:"itemId" validate:"required"`
		NewQuantity  *int    `json:"newQuantity"`
		NewNote      *string `json:"newNote"`
		NewUseWithin *int    `json:"newUseWithin"`
		NewLocation  *string `json:"newLocation"`
	}

	DeleteFridgeItemRequest struct {
		ItemID string `json:"itemId" validate:"required"`
	}
)
