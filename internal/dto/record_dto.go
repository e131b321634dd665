package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type RunningRecordRequest struct {
	CourseID     *uuid.UUID      `json:"course_id"`
	StartTime    time.Time       `json:"start_time"`
	EndTime      time.Time       `json:"end_time"`
	Distance     float64         `json:"distance"` // kilometers
	Duration     int             `json:"duration"` // seconds
	AvgPace      float64         `json:"avg_pace"`
	AvgSpeed     float64         `json:"avg_speed"`
	ActualRoute  json.RawMessage `json:"actual_route"` // GeoJSON LineString
	Memo         string          `json:"memo"`
	Weather      string          `json:"weather"`
	Calories     int             `json:"calories"`
	AvgHeartRate int             `json:"avg_heart_rate"`
}

type RunningRecordResponse struct {
	ID           uint            `json:"id"`
	CourseID     *uuid.UUID      `json:"course_id"`
	StartTime    time.Time       `json:"start_time"`
	EndTime      time.Time       `json:"end_time"`
	Distance     float64         `json:"distance"`
	Duration     int             `json:"duration"`
	AvgPace      float64         `json:"avg_pace"`
	AvgSpeed     float64         `json:"avg_speed"`
	ActualRoute  json.RawMessage `json:"actual_route"`
	Memo         string          `json:"memo"`
	Weather      string          `json:"weather"`
	Calories     int             `json:"calories"`
	AvgHeartRate int             `json:"avg_heart_rate"`
	CreatedAt    time.Time       `json:"created_at"`
}

// RunningStatsResponse summarizes a runner's history.
type RunningStatsResponse struct {
	TotalRuns     int64   `json:"total_runs"`
	TotalDistance float64 `json:"total_distance"` // kilometers
	TotalDuration int64   `json:"total_duration"` // seconds
	AvgPace       float64 `json:"avg_pace"`
	AvgSpeed      float64 `json:"avg_speed"`
}
