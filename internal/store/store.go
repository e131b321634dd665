// Package store is the persistence gateway for account records. The session
// issuer depends only on the ProfileStore interface, never on GORM directly.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jongbeom/runmate-backend/internal/models"
)

var ErrNotFound = errors.New("profile not found")

// ProfileStore is the credential-store gateway. Save must update the whole
// row atomically: concurrent saves for the same profile resolve
// last-writer-wins, never as a partial record.
type ProfileStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	FindByEmail(ctx context.Context, email string) (*models.Profile, error)
	FindByRefreshToken(ctx context.Context, refreshToken string) (*models.Profile, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Save(ctx context.Context, profile *models.Profile) error
}
