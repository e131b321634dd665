package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jongbeom/runmate-backend/internal/dto"
	"github.com/jongbeom/runmate-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = errors.New("running record not found")
	ErrInvalidRecord  = errors.New("invalid running record")
)

type RecordService struct {
	db *gorm.DB
}

func NewRecordService(db *gorm.DB) *RecordService {
	return &RecordService{db: db}
}

func (s *RecordService) CreateRecord(profileID uuid.UUID, req *dto.RunningRecordRequest) (*dto.RunningRecordResponse, error) {
	if req.EndTime.Before(req.StartTime) {
		return nil, fmt.Errorf("%w: end time must not precede start time", ErrInvalidRecord)
	}
	if len(req.Memo) > 500 {
		return nil, fmt.Errorf("%w: memo must be at most 500 characters", ErrInvalidRecord)
	}

	record := models.RunningRecord{
		ProfileID:    profileID,
		CourseID:     req.CourseID,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Distance:     req.Distance,
		Duration:     req.Duration,
		AvgPace:      req.AvgPace,
		AvgSpeed:     req.AvgSpeed,
		ActualRoute:  datatypes.JSON(req.ActualRoute),
		Memo:         req.Memo,
		Weather:      req.Weather,
		Calories:     req.Calories,
		AvgHeartRate: req.AvgHeartRate,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to create running record: %w", err)
	}

	resp := toRecordResponse(&record)
	return &resp, nil
}

func (s *RecordService) GetMyRecords(profileID uuid.UUID) ([]dto.RunningRecordResponse, error) {
	var records []models.RunningRecord
	err := s.db.
		Where("profile_id = ?", profileID).
		Order("start_time DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list running records: %w", err)
	}

	out := make([]dto.RunningRecordResponse, 0, len(records))
	for i := range records {
		out = append(out, toRecordResponse(&records[i]))
	}
	return out, nil
}

func (s *RecordService) GetRecord(profileID uuid.UUID, recordID uint) (*dto.RunningRecordResponse, error) {
	record, err := s.findOwnedRecord(profileID, recordID)
	if err != nil {
		return nil, err
	}
	resp := toRecordResponse(record)
	return &resp, nil
}

func (s *RecordService) DeleteRecord(profileID uuid.UUID, recordID uint) error {
	record, err := s.findOwnedRecord(profileID, recordID)
	if err != nil {
		return err
	}
	return s.db.Delete(record).Error
}

// GetStats aggregates the caller's run history in one query.
func (s *RecordService) GetStats(profileID uuid.UUID) (*dto.RunningStatsResponse, error) {
	var stats dto.RunningStatsResponse
	err := s.db.Model(&models.RunningRecord{}).
		Where("profile_id = ?", profileID).
		Select("COUNT(*) AS total_runs," +
			" COALESCE(SUM(distance), 0) AS total_distance," +
			" COALESCE(SUM(duration), 0) AS total_duration," +
			" COALESCE(AVG(avg_pace), 0) AS avg_pace," +
			" COALESCE(AVG(avg_speed), 0) AS avg_speed").
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate running stats: %w", err)
	}
	return &stats, nil
}

func (s *RecordService) findOwnedRecord(profileID uuid.UUID, recordID uint) (*models.RunningRecord, error) {
	var record models.RunningRecord
	err := s.db.
		Where("id = ? AND profile_id = ?", recordID, profileID).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find running record: %w", err)
	}
	return &record, nil
}

func toRecordResponse(record *models.RunningRecord) dto.RunningRecordResponse {
	return dto.RunningRecordResponse{
		ID:           record.ID,
		CourseID:     record.CourseID,
		StartTime:    record.StartTime,
		EndTime:      record.EndTime,
		Distance:     record.Distance,
		Duration:     record.Duration,
		AvgPace:      record.AvgPace,
		AvgSpeed:     record.AvgSpeed,
		ActualRoute:  []byte(record.ActualRoute),
		Memo:         record.Memo,
		Weather:      record.Weather,
		Calories:     record.Calories,
		AvgHeartRate: record.AvgHeartRate,
	}
}
