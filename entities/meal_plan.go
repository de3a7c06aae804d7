package entities

import (
	"time"

	"github.com/google/uuid"
)

type MealPlan struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	GroupID     uuid.UUID  `gorm:"index:idx_meal_plans_group_date" json:"group_id"`
	FoodID      uuid.UUID  `gorm:"index" json:"food_id"`
	Date        time.Time  `gorm:"index:idx_meal_plans_group_date" json:"date"`
	MealType    string     `json:"meal_type"` // sáng, trưa, tối
	CreatedByID *uuid.UUID `json:"created_by,omitempty"`

	Group     *Group `gorm:"foreignKey:GroupID" json:"-"`
	Food      *Food  `gorm:"foreignKey:FoodID" json:"food,omitempty"`
	CreatedBy *User  `gorm:"foreignKey:CreatedByID" json:"-"`
	Timestamp
}
