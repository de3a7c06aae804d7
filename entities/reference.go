package entities

import (
	"github.com/google/uuid"
)

// Category and Unit are global reference rows seeded once and shared
// across every group.

type Category struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `gorm:"uniqueIndex" json:"name"`

	Timestamp
}

type Unit struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `gorm:"uniqueIndex" json:"name"`

	Timestamp
}
