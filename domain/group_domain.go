package domain

import (
	"net/http"
)

var (
	StatusGroupCreated  = Status{"00095", "Tạo nhóm thành công."}
	StatusGroupFetched  = Status{"00098", "Thành công."}
	StatusMemberAdded   = Status{"00102", "Người dùng thêm vào nhóm thành công."}
	StatusMemberRemoved = Status{"00106", "Xóa thành công."}
	StatusGroupLeft     = Status{"00112", "Bạn đã rời khỏi nhóm."}
	StatusGroupDeleted  = Status{"00116", "Đã xóa nhóm thành công."}

	ErrAlreadyInGroup      = NewAppError(http.StatusBadRequest, "00093", "Không thể tạo nhóm, bạn đã thuộc về một nhóm rồi.")
	ErrAddMemberMissing    = NewAppError(http.StatusBadRequest, "00100", "Thiếu username hoặc email.")
	ErrRemoveMemberMissing = NewAppError(http.StatusBadRequest, "00107", "Thiếu username hoặc email.")
	ErrMemberNotFound      = NewAppError(http.StatusNotFound, "00099x", "Không tìm thấy người dùng với username/email này.")
	ErrTargetInGroup       = NewAppError(http.StatusBadRequest, "00099", "Người này đã thuộc về một nhóm.")
	ErrTargetNotInGroup    = NewAppError(http.StatusBadRequest, "00103", "Người này chưa vào nhóm nào.")
	ErrCannotRemoveAdmin   = NewAppError(http.StatusBadRequest, "00104", "Không thể xóa admin khỏi nhóm.")
	ErrGroupNotFound       = NewAppError(http.StatusNotFound, "00110", "Không tìm thấy nhóm.")
	ErrAdminCannotLeave    = NewAppError(http.StatusBadRequest, "00111", "Admin không thể rời nhóm. Hãy chuyển quyền admin hoặc xóa nhóm.")
	ErrOnlyAdminDeletes    = NewAppError(http.StatusForbidden, "00115", "Chỉ trưởng nhóm mới có thể xóa nhóm.")
)

const DefaultGroupName = "Nhóm gia đình"

type (
	CreateGroupRequest struct {
		Name string `json:"name"`
	}

	// MemberRequest carries an exact username or a case-folded email in
	// the username field, matching the mobile client's payload.
	MemberRequest struct {
		Username string `json:"username" validate:"required"`
	}

	GroupMemberResponse struct {
		ID       string  `json:"id"`
		Name     string  `json:"name"`
		Email    string  `json:"email"`
		Username *string `json:"username,omitempty"`
		Avatar   string  `json:"avatar,omitempty"`
	}

	GroupResponse struct {
		ID      string                `json:"id"`
		Name    string                `json:"name"`
		Admin   *GroupMemberResponse  `json:"admin"`
		Members []GroupMemberResponse `json:"members"`
	}
)
