package entities

import (
	"github.com/google/uuid"
)

// Recipe has no group column: recipes form a shared corpus looked up
// through the referenced food.
type Recipe struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string     `json:"name"`
	FoodID      uuid.UUID  `gorm:"index" json:"food_id"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	HTMLContent string     `gorm:"type:text" json:"html_content,omitempty"` // opaque rich content, never parsed
	CreatedByID *uuid.UUID `json:"created_by,omitempty"`

	Food      *Food `gorm:"foreignKey:FoodID" json:"food,omitempty"`
	CreatedBy *User `gorm:"foreignKey:CreatedByID" json:"-"`
	Timestamp
}
