package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jongbeom/runmate-backend/internal/models"
	"gorm.io/gorm"
)

// GormProfileStore backs ProfileStore with PostgreSQL.
type GormProfileStore struct {
	db *gorm.DB
}

func NewGormProfileStore(db *gorm.DB) *GormProfileStore {
	return &GormProfileStore{db: db}
}

func (s *GormProfileStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

func (s *GormProfileStore) FindByEmail(ctx context.Context, email string) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&profile).Error; err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

func (s *GormProfileStore) FindByRefreshToken(ctx context.Context, refreshToken string) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).Where("refresh_token = ?", refreshToken).First(&profile).Error; err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

func (s *GormProfileStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Profile{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return count > 0, nil
}

// Save writes the full row; PostgreSQL's single-row update keeps concurrent
// saves for the same profile last-writer-wins.
func (s *GormProfileStore) Save(ctx context.Context, profile *models.Profile) error {
	if err := s.db.WithContext(ctx).Save(profile).Error; err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("profile query failed: %w", err)
}
