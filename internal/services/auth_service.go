package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jongbeom/runmate-backend/internal/config"
	"github.com/jongbeom/runmate-backend/internal/dto"
	"github.com/jongbeom/runmate-backend/internal/models"
	"github.com/jongbeom/runmate-backend/internal/password"
	"github.com/jongbeom/runmate-backend/internal/store"
	"github.com/jongbeom/runmate-backend/internal/token"
)

// Expected business outcomes. Anything else returned by this service is an
// unrecoverable fault (store unreachable etc.) and maps to a generic 500.
var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrInvalidSignup  = errors.New("email required and password must be at least 8 characters")
	// ErrInvalidCredentials intentionally covers unknown email, wrong
	// password, and inactive account so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
)

// AuthService orchestrates signup, login, and refresh. It holds no state of
// its own; session state lives entirely on the Profile row.
type AuthService struct {
	profiles   store.ProfileStore
	hasher     password.Hasher
	codec      *token.Codec
	clock      token.Clock
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(profiles store.ProfileStore, hasher password.Hasher, codec *token.Codec, clock token.Clock, cfg *config.Config) *AuthService {
	if clock == nil {
		clock = token.SystemClock()
	}
	return &AuthService{
		profiles:   profiles,
		hasher:     hasher,
		codec:      codec,
		clock:      clock,
		accessTTL:  cfg.JWTAccessExpiry,
		refreshTTL: cfg.JWTRefreshExpiry,
	}
}

func (s *AuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	if req.Email == "" || len(req.Password) < 8 {
		return nil, ErrInvalidSignup
	}

	exists, err := s.profiles.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if exists {
		slog.Warn("signup rejected, email taken", "email", req.Email)
		return nil, ErrDuplicateEmail
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// The profile row is written once, by issueSession, with the refresh
	// token already set. No partially signed-up account can exist.
	profile := models.Profile{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Phone:        req.Phone,
		IsActive:     true,
	}

	resp, err := s.issueSession(ctx, &profile)
	if err != nil {
		return nil, err
	}
	slog.Info("signup completed", "user_id", profile.ID, "email", profile.Email)
	return resp, nil
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	profile, err := s.profiles.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slog.Warn("login failed, unknown email", "email", req.Email)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up profile: %w", err)
	}

	if !s.hasher.Verify(req.Password, profile.PasswordHash) {
		slog.Warn("login failed, password mismatch", "user_id", profile.ID)
		return nil, ErrInvalidCredentials
	}

	if !profile.IsActive {
		slog.Warn("login failed, inactive account", "user_id", profile.ID)
		return nil, ErrInvalidCredentials
	}

	resp, err := s.issueSession(ctx, profile)
	if err != nil {
		return nil, err
	}
	slog.Info("login completed", "user_id", profile.ID, "email", profile.Email)
	return resp, nil
}

// Refresh issues a new access token for a valid refresh token. The refresh
// token itself is not rotated; it stays valid until its stored expiry.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	if _, err := s.codec.Verify(refreshToken); err != nil {
		slog.Warn("refresh rejected by codec", "error", err)
		return nil, ErrInvalidToken
	}

	// The stored token is authoritative: a token superseded by a later
	// login no longer matches any row even if its signature is still good.
	profile, err := s.profiles.FindByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slog.Warn("refresh rejected, token not on record")
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}

	if profile.RefreshTokenExpiresAt == nil || !s.clock.Now().Before(*profile.RefreshTokenExpiresAt) {
		slog.Warn("refresh rejected, token expired on record", "user_id", profile.ID)
		return nil, ErrInvalidToken
	}

	accessToken, err := s.codec.Issue(profile.ID.String(), profile.Email, s.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	slog.Info("access token refreshed", "user_id", profile.ID)
	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		Profile:      toProfileResponse(profile),
	}, nil
}

// issueSession mints a fresh token pair and overwrites the stored refresh
// token unconditionally: the previous session, if any, is invalidated.
func (s *AuthService) issueSession(ctx context.Context, profile *models.Profile) (*dto.AuthResponse, error) {
	accessToken, err := s.codec.Issue(profile.ID.String(), profile.Email, s.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	refreshToken, err := s.codec.Issue(profile.ID.String(), profile.Email, s.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	expiresAt := s.clock.Now().Add(s.refreshTTL)
	profile.RefreshToken = &refreshToken
	profile.RefreshTokenExpiresAt = &expiresAt
	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		Profile:      toProfileResponse(profile),
	}, nil
}

func toProfileResponse(profile *models.Profile) dto.ProfileResponse {
	return dto.ProfileResponse{
		ID:        profile.ID,
		Email:     profile.Email,
		FullName:  profile.FullName,
		Phone:     profile.Phone,
		IsActive:  profile.IsActive,
		CreatedAt: profile.CreatedAt,
		UpdatedAt: profile.UpdatedAt,
	}
}
