package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type CourseRequest struct {
	Name      string          `json:"name"`
	Route     json.RawMessage `json:"route"`     // GeoJSON LineString
	Waypoints json.RawMessage `json:"waypoints"` // GeoJSON MultiPoint
	Distance  int             `json:"distance"`  // meters
	Duration  int             `json:"duration"`  // seconds
}

type CourseResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Route     json.RawMessage `json:"route"`
	Waypoints json.RawMessage `json:"waypoints"`
	Distance  int             `json:"distance"`
	Duration  int             `json:"duration"`
	CreatedAt time.Time       `json:"created_at"`
}
