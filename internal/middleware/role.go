package middleware

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aidosk/ride-hail-api/internal/model"
)

// RequireRole returns the authorization gate for a fixed set of permitted
// roles. It must run after JWTAuth; finding no identity in the context means
// the route was registered without the authentication gate, which is a
// wiring bug, so the request is rejected as unauthenticated (never waved
// through under some default role) and the bug is logged. A present identity
// with a role outside the set gets 403.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	allowed := make(map[model.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident, ok := CurrentIdentity(c)
			if !ok {
				log.Printf("auth: RequireRole on %s %s without JWTAuth in the chain", c.Request().Method, c.Path())
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
			}
			if !allowed[ident.Role] {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
