// Package authctx carries the authenticated identity for the lifetime of one
// request.
package authctx

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Role enumerates caller capabilities. There is exactly one role today; the
// type exists so adding roles later is not a breaking change.
type Role string

const RoleUser Role = "user"

// Identity is the request-scoped authenticated caller.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   Role
}

const localsKey = "identity"

// Set attaches the identity to the request context.
func Set(c *fiber.Ctx, id Identity) {
	c.Locals(localsKey, id)
}

// Get returns the identity for the request, if one was established.
func Get(c *fiber.Ctx) (Identity, bool) {
	id, ok := c.Locals(localsKey).(Identity)
	return id, ok
}
