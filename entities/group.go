package entities

import (
	"github.com/google/uuid"
)

type Group struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name    string    `gorm:"default:Nhóm gia đình" json:"name"`
	AdminID uuid.UUID `gorm:"index" json:"admin_id"`

	Admin   *User   `gorm:"foreignKey:AdminID" json:"admin,omitempty"`
	Members []*User `gorm:"foreignKey:GroupID" json:"members,omitempty"`
	Timestamp
}
