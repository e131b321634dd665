package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Course is a saved running route. Route and Waypoints hold GeoJSON
// (LineString / MultiPoint) as produced by the directions providers.
type Course struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProfileID uuid.UUID      `gorm:"type:uuid;not null;index" json:"profile_id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Route     datatypes.JSON `gorm:"type:jsonb" json:"route"`
	Waypoints datatypes.JSON `gorm:"type:jsonb" json:"waypoints"`
	Distance  int            `gorm:"not null" json:"distance"` // meters
	Duration  int            `gorm:"not null" json:"duration"` // seconds
	IsActive  bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Profile   Profile        `gorm:"foreignKey:ProfileID" json:"-"`
}
