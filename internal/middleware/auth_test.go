package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jongbeom/runmate-backend/internal/authctx"
	"github.com/jongbeom/runmate-backend/internal/token"
)

var gateSecret = []byte("0123456789abcdef0123456789abcdef")

func newGateApp(codec *token.Codec) *fiber.App {
	app := fiber.New()
	app.Use(Authenticate(codec))
	app.Get("/open", func(c *fiber.Ctx) error {
		if id, ok := authctx.Get(c); ok {
			return c.JSON(fiber.Map{"user_id": id.UserID.String(), "role": string(id.Role)})
		}
		return c.JSON(fiber.Map{"user_id": ""})
	})
	app.Get("/protected", RequireUser(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestGate_NoHeaderPassesThrough(t *testing.T) {
	t.Parallel()

	app := newGateApp(token.NewCodec(gateSecret, nil))

	resp, err := app.Test(httptest.NewRequest("GET", "/open", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGate_ValidTokenEstablishesIdentity(t *testing.T) {
	t.Parallel()

	codec := token.NewCodec(gateSecret, nil)
	app := newGateApp(codec)

	userID := uuid.New()
	tok, err := codec.Issue(userID.String(), "runner@example.com", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGate_InvalidTokenDegradesToAnonymous(t *testing.T) {
	t.Parallel()

	codec := token.NewCodec(gateSecret, nil)
	app := newGateApp(codec)

	otherCodec := token.NewCodec([]byte("ffffffffffffffffffffffffffffffff"), nil)
	forged, err := otherCodec.Issue(uuid.NewString(), "runner@example.com", time.Hour)
	require.NoError(t, err)

	for _, header := range []string{
		"Bearer " + forged,
		"Bearer garbage",
		"Basic dXNlcjpwYXNz",
	} {
		// The gate never fails the request itself.
		req := httptest.NewRequest("GET", "/open", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode, "header %q", header)

		// The rejecting layer does.
		req = httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", header)
		resp, err = app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "header %q", header)
	}
}

func TestGate_ExpiredToken(t *testing.T) {
	t.Parallel()

	codec := token.NewCodec(gateSecret, nil)
	app := newGateApp(codec)

	tok, err := codec.Issue(uuid.NewString(), "runner@example.com", -time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestGate_MalformedClaimSet(t *testing.T) {
	t.Parallel()

	codec := token.NewCodec(gateSecret, nil)
	app := newGateApp(codec)

	// Signed and unexpired, but the subject is not a UUID: treated as
	// unauthenticated rather than a server error.
	tok, err := codec.Issue("not-a-uuid", "runner@example.com", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Same for an empty identity claim.
	tok, err = codec.Issue("", "runner@example.com", time.Hour)
	require.NoError(t, err)
	req = httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
