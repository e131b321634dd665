package middleware

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jongbeom/runmate-backend/internal/authctx"
	"github.com/jongbeom/runmate-backend/internal/dto"
	"github.com/jongbeom/runmate-backend/internal/token"
)

const bearerPrefix = "Bearer "

// Authenticate is the per-request authentication gate. It is best-effort: a
// missing, malformed, or expired bearer token lets the request continue
// unauthenticated, and RequireUser decides whether that matters. The gate
// trusts the signature and performs no store lookups.
func Authenticate(codec *token.Codec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, bearerPrefix) {
			return c.Next()
		}

		claims, err := codec.Verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			slog.Debug("bearer token rejected", "error", err)
			return c.Next()
		}

		if claims.UserID == "" || claims.Email == "" {
			return c.Next()
		}
		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			return c.Next()
		}

		authctx.Set(c, authctx.Identity{
			UserID: userID,
			Email:  claims.Email,
			Role:   authctx.RoleUser,
		})
		return c.Next()
	}
}

// RequireUser rejects requests that reached a protected route without an
// identity established by Authenticate.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := authctx.Get(c); !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		}
		return c.Next()
	}
}
