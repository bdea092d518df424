package middleware // reusable HTTP middleware shared by the route groups

import (
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/aidosk/ride-hail-api/internal/auth"
)

// JWTAuth returns the authentication gate: it validates a Bearer access
// token and attaches the verified identity to the request context for
// RequireRole and the handlers. The token is self-contained, so no store
// lookup happens here. A missing or non-Bearer Authorization header is
// rejected without invoking the verifier. All rejections are a uniform 401;
// the concrete failure kind (malformed, bad signature, expired) is only
// logged.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(header, "Bearer ")

			ident, err := auth.VerifyToken(secret, raw)
			if err != nil {
				log.Printf("auth: token rejected on %s %s: %v", c.Request().Method, c.Path(), err)
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			c.Set(identityKey, ident)
			return next(c)
		}
	}
}
