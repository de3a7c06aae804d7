package entities

import (
	"github.com/google/uuid"
)

type Food struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string     `gorm:"uniqueIndex:idx_foods_name_group" json:"name"`
	CategoryID  *uuid.UUID `gorm:"index" json:"category_id,omitempty"`
	UnitID      *uuid.UUID `json:"unit_id,omitempty"`
	Image       string     `json:"image,omitempty"`
	GroupID     uuid.UUID  `gorm:"uniqueIndex:idx_foods_name_group;index" json:"group_id"`
	CreatedByID *uuid.UUID `json:"created_by,omitempty"`

	Category  *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Unit      *Unit     `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
	Group     *Group    `gorm:"foreignKey:GroupID" json:"-"`
	CreatedBy *User     `gorm:"foreignKey:CreatedByID" json:"-"`
	Timestamp
}
