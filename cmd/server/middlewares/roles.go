package middlewares

import (
	"medibase/cmd/server/handlers/httperr"
	"medibase/internal/services/auth"

	"github.com/gofiber/fiber/v2"
)

// RequireRoles allows the request through only when the verified role from
// the JWT middleware is one of the given roles. Runs after JWT; a missing
// role local means the chain is miswired and fails closed with 401.
func RequireRoles(roles ...auth.Role) fiber.Handler {
	allowed := make(map[auth.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		roleStr, ok := c.Locals("userRole").(string)
		if !ok {
			return httperr.Fail(httperr.ErrUnauthorized)
		}
		if _, ok := allowed[auth.Role(roleStr)]; !ok {
			return httperr.Fail(httperr.ErrForbidden)
		}
		return c.Next()
	}
}
