package entities

import (
	"time"

	"github.com/google/uuid"
)

type ShoppingList struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	GroupID     uuid.UUID  `gorm:"uniqueIndex:idx_shopping_lists_group_date;index" json:"group_id"`
	Date        time.Time  `gorm:"uniqueIndex:idx_shopping_lists_group_date" json:"date"` // midnight local time
	CreatedByID *uuid.UUID `json:"created_by,omitempty"`

	Group     *Group          `gorm:"foreignKey:GroupID" json:"-"`
	CreatedBy *User           `gorm:"foreignKey:CreatedByID" json:"-"`
	Tasks     []*ShoppingTask `gorm:"foreignKey:ShoppingListID" json:"tasks,omitempty"`
	Timestamp
}

type ShoppingTask struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ShoppingListID uuid.UUID  `gorm:"index" json:"shopping_list_id"`
	FoodID         uuid.UUID  `gorm:"index" json:"food_id"`
	Quantity       int        `json:"quantity"`
	AssignedToID   *uuid.UUID `gorm:"index" json:"assigned_to,omitempty"`
	IsCompleted    bool       `gorm:"index" json:"is_completed"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`

	ShoppingList *ShoppingList `gorm:"foreignKey:ShoppingListID" json:"-"`
	Food         *Food         `gorm:"foreignKey:FoodID" json:"food,omitempty"`
	AssignedTo   *User         `gorm:"foreignKey:AssignedToID" json:"assigned_to_user,omitempty"`
	Timestamp
}
