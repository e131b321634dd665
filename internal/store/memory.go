package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jongbeom/runmate-backend/internal/models"
)

// MemoryProfileStore is an in-memory ProfileStore used in tests. Saves are
// whole-record swaps under one lock, matching the single-row update semantics
// of the SQL store.
type MemoryProfileStore struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]models.Profile
}

func NewMemoryProfileStore() *MemoryProfileStore {
	return &MemoryProfileStore{profiles: make(map[uuid.UUID]models.Profile)}
}

func (s *MemoryProfileStore) FindByID(_ context.Context, id uuid.UUID) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.profiles[id]; ok {
		cp := p
		return &cp, nil
	}
	return nil, ErrNotFound
}

func (s *MemoryProfileStore) FindByEmail(_ context.Context, email string) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.profiles {
		if p.Email == email {
			cp := p
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryProfileStore) FindByRefreshToken(_ context.Context, refreshToken string) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.profiles {
		if p.RefreshToken != nil && *p.RefreshToken == refreshToken {
			cp := p
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryProfileStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.profiles {
		if p.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryProfileStore) Save(_ context.Context, profile *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	s.profiles[profile.ID] = *profile
	return nil
}

// Len reports the number of stored profiles; tests use it to assert that
// failed operations leave the store untouched.
func (s *MemoryProfileStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.profiles)
}
