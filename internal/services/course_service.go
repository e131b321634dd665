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
	ErrCourseNotFound = errors.New("course not found")
	ErrInvalidCourse  = errors.New("course name is required")
)

type CourseService struct {
	db *gorm.DB
}

func NewCourseService(db *gorm.DB) *CourseService {
	return &CourseService{db: db}
}

func (s *CourseService) CreateCourse(profileID uuid.UUID, req *dto.CourseRequest) (*dto.CourseResponse, error) {
	if req.Name == "" {
		return nil, ErrInvalidCourse
	}

	course := models.Course{
		ID:        uuid.New(),
		ProfileID: profileID,
		Name:      req.Name,
		Route:     datatypes.JSON(req.Route),
		Waypoints: datatypes.JSON(req.Waypoints),
		Distance:  req.Distance,
		Duration:  req.Duration,
		IsActive:  true,
	}
	if err := s.db.Create(&course).Error; err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	resp := toCourseResponse(&course)
	return &resp, nil
}

// GetMyCourses returns the caller's active courses, newest first.
func (s *CourseService) GetMyCourses(profileID uuid.UUID) ([]dto.CourseResponse, error) {
	var courses []models.Course
	err := s.db.
		Where("profile_id = ? AND is_active = true", profileID).
		Order("created_at DESC").
		Find(&courses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	out := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		out = append(out, toCourseResponse(&courses[i]))
	}
	return out, nil
}

func (s *CourseService) GetCourse(profileID, courseID uuid.UUID) (*dto.CourseResponse, error) {
	course, err := s.findOwned(profileID, courseID)
	if err != nil {
		return nil, err
	}
	resp := toCourseResponse(course)
	return &resp, nil
}

// DeleteCourse soft-deletes: records referencing the course keep their link.
func (s *CourseService) DeleteCourse(profileID, courseID uuid.UUID) error {
	course, err := s.findOwned(profileID, courseID)
	if err != nil {
		return err
	}
	return s.db.Model(course).Update("is_active", false).Error
}

func (s *CourseService) findOwned(profileID, courseID uuid.UUID) (*models.Course, error) {
	var course models.Course
	err := s.db.
		Where("id = ? AND profile_id = ? AND is_active = true", courseID, profileID).
		First(&course).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCourseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find course: %w", err)
	}
	return &course, nil
}

func toCourseResponse(course *models.Course) dto.CourseResponse {
	return dto.CourseResponse{
		ID:        course.ID,
		Name:      course.Name,
		Route:     []byte(course.Route),
		Waypoints: []byte(course.Waypoints),
		Distance:  course.Distance,
		Duration:  course.Duration,
		CreatedAt: course.CreatedAt,
	}
}
