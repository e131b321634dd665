package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RunningRecord stores one completed run. CourseID is optional: free runs are
// not tied to a saved course.
type RunningRecord struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	ProfileID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"profile_id"`
	CourseID     *uuid.UUID     `gorm:"type:uuid;index" json:"course_id"`
	StartTime    time.Time      `gorm:"not null" json:"start_time"`
	EndTime      time.Time      `gorm:"not null" json:"end_time"`
	Distance     float64        `gorm:"not null" json:"distance"` // kilometers
	Duration     int            `gorm:"not null" json:"duration"` // seconds
	AvgPace      float64        `gorm:"not null" json:"avg_pace"` // min/km
	AvgSpeed     float64        `gorm:"not null" json:"avg_speed"` // km/h
	ActualRoute  datatypes.JSON `gorm:"type:jsonb" json:"actual_route"`
	Memo         string         `gorm:"size:500" json:"memo"`
	Weather      string         `gorm:"size:50" json:"weather"`
	Calories     int            `json:"calories"`
	AvgHeartRate int            `json:"avg_heart_rate"`
	CreatedAt    time.Time      `json:"created_at"`
	Profile      Profile        `gorm:"foreignKey:ProfileID" json:"-"`
	Course       *Course        `gorm:"foreignKey:CourseID" json:"-"`
}
