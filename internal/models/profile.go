package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the account record. The refresh token lives directly on the row:
// at most one live refresh token exists per account, and login/refresh
// overwrite it in place.
type Profile struct {
	ID                    uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email                 string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash          string     `gorm:"not null" json:"-"`
	FullName              string     `gorm:"size:100" json:"full_name"`
	Phone                 string     `gorm:"size:20" json:"phone"`
	IsActive              bool       `gorm:"not null;default:true" json:"is_active"`
	RefreshToken          *string    `gorm:"type:text" json:"-"`
	RefreshTokenExpiresAt *time.Time `json:"-"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}
