package entities

import (
	"time"

	"github.com/google/uuid"
)

type FridgeItem struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FoodID     uuid.UUID  `gorm:"uniqueIndex:idx_fridge_items_food_group" json:"food_id"`
	GroupID    uuid.UUID  `gorm:"uniqueIndex:idx_fridge_items_food_group;index" json:"group_id"`
	Quantity   int        `json:"quantity"`
	UseWithin  *int       `json:"use_within,omitempty"` // days until expiry
	ExpiryDate *time.Time `gorm:"index" json:"expiry_date,omitempty"`
	Note       string     `json:"note,omitempty"`
	Location   string     `gorm:"default:chiller" json:"location"` // freezer, chiller, vegetable, door
	AddedByID  *uuid.UUID `json:"added_by,omitempty"`

	Food    *Food  `gorm:"foreignKey:FoodID" json:"food,omitempty"`
	Group   *Group `gorm:"foreignKey:GroupID" json:"-"`
	AddedBy *User  `gorm:"foreignKey:AddedByID" json:"-"`
	Timestamp
}
