package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jongbeom/runmate-backend/internal/config"
	"github.com/jongbeom/runmate-backend/internal/dto"
	"github.com/jongbeom/runmate-backend/internal/models"
	"github.com/jongbeom/runmate-backend/internal/password"
	"github.com/jongbeom/runmate-backend/internal/services"
	"github.com/jongbeom/runmate-backend/internal/store"
	"github.com/jongbeom/runmate-backend/internal/token"
)

// faultStore fails every operation with a fixed error, standing in for an
// unreachable database.
type faultStore struct{ err error }

func (s *faultStore) FindByID(context.Context, uuid.UUID) (*models.Profile, error) {
	return nil, s.err
}

func (s *faultStore) FindByEmail(context.Context, string) (*models.Profile, error) {
	return nil, s.err
}

func (s *faultStore) FindByRefreshToken(context.Context, string) (*models.Profile, error) {
	return nil, s.err
}

func (s *faultStore) ExistsByEmail(context.Context, string) (bool, error) { return false, s.err }

func (s *faultStore) Save(context.Context, *models.Profile) error { return s.err }

func newAuthApp(t *testing.T, profiles store.ProfileStore) *fiber.App {
	t.Helper()

	codec := token.NewCodec([]byte("0123456789abcdef0123456789abcdef"), token.SystemClock())
	hasher := password.NewBcryptHasherWithCost(bcrypt.MinCost)
	cfg := &config.Config{
		JWTAccessExpiry:  30 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
	}
	h := NewAuthHandler(services.NewAuthService(profiles, hasher, codec, token.SystemClock(), cfg))

	app := fiber.New()
	app.Post("/signup", h.Signup)
	app.Post("/login", h.Login)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (int, string) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(out)
}

func TestSignupHandler_StoreFaultIsGeneric500(t *testing.T) {
	t.Parallel()

	app := newAuthApp(t, &faultStore{
		err: errors.New("pg: connection refused host=db-prod password=hunter2"),
	})

	status, body := postJSON(t, app, "/signup", dto.SignupRequest{
		Email: "runner@example.com", Password: "password1",
	})

	require.Equal(t, http.StatusInternalServerError, status)
	require.Contains(t, body, "Internal server error")
	require.NotContains(t, body, "connection refused")
	require.NotContains(t, body, "hunter2")
}

func TestSignupHandler_ValidationIs400(t *testing.T) {
	t.Parallel()

	app := newAuthApp(t, store.NewMemoryProfileStore())

	status, body := postJSON(t, app, "/signup", dto.SignupRequest{
		Email: "runner@example.com", Password: "short",
	})

	require.Equal(t, http.StatusBadRequest, status)
	require.Contains(t, body, "at least 8 characters")
}

func TestSignupHandler_DuplicateEmailIs409(t *testing.T) {
	t.Parallel()

	app := newAuthApp(t, store.NewMemoryProfileStore())
	req := dto.SignupRequest{Email: "runner@example.com", Password: "password1"}

	status, _ := postJSON(t, app, "/signup", req)
	require.Equal(t, http.StatusCreated, status)

	status, body := postJSON(t, app, "/signup", req)
	require.Equal(t, http.StatusConflict, status)
	require.Contains(t, body, "already registered")
}
