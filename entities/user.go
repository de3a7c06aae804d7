package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email              string     `gorm:"uniqueIndex" json:"email"`
	Password           string     `json:"-"`
	Name               string     `json:"name"`
	Username           *string    `gorm:"uniqueIndex" json:"username,omitempty"`
	Avatar             string     `json:"avatar,omitempty"`
	Role               string     `gorm:"default:user" json:"role"` // user, admin
	Gender             string     `json:"gender,omitempty"`         // male, female, other
	DateOfBirth        *time.Time `json:"date_of_birth,omitempty"`
	Language           string     `gorm:"default:vi" json:"language"`
	Timezone           string     `gorm:"default:Asia/Ho_Chi_Minh" json:"timezone"`
	DeviceID           string     `json:"device_id,omitempty"`
	IsVerified         bool       `json:"is_verified"`
	VerificationCode   string     `json:"-"`
	VerificationExpiry *time.Time `json:"-"`
	RefreshToken       string     `json:"-"`
	GroupID            *uuid.UUID `gorm:"index" json:"group_id,omitempty"`

	Group *Group `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	Timestamp
}
