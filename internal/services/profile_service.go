package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jongbeom/runmate-backend/internal/dto"
	"github.com/jongbeom/runmate-backend/internal/store"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileService struct {
	profiles store.ProfileStore
}

func NewProfileService(profiles store.ProfileStore) *ProfileService {
	return &ProfileService{profiles: profiles}
}

func (s *ProfileService) GetProfile(ctx context.Context, id uuid.UUID) (*dto.ProfileResponse, error) {
	profile, err := s.profiles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to look up profile: %w", err)
	}
	resp := toProfileResponse(profile)
	return &resp, nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, id uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := s.profiles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to look up profile: %w", err)
	}

	if req.FullName != "" {
		profile.FullName = req.FullName
	}
	if req.Phone != "" {
		profile.Phone = req.Phone
	}
	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}

	resp := toProfileResponse(profile)
	return &resp, nil
}

// Deactivate disables the account and drops its refresh token, so no new
// access tokens can be issued. Outstanding access tokens stay usable until
// they expire.
func (s *ProfileService) Deactivate(ctx context.Context, id uuid.UUID) error {
	profile, err := s.profiles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProfileNotFound
		}
		return fmt.Errorf("failed to look up profile: %w", err)
	}

	profile.IsActive = false
	profile.RefreshToken = nil
	profile.RefreshTokenExpiresAt = nil
	if err := s.profiles.Save(ctx, profile); err != nil {
		return err
	}

	slog.Info("profile deactivated", "user_id", id)
	return nil
}
