package middleware

// identity.go holds the request-context plumbing shared by the auth gates.
// The verified identity lives in the Echo context for exactly one request;
// nothing outside that request can observe it.

import (
	"github.com/labstack/echo/v4"

	"github.com/aidosk/ride-hail-api/internal/auth"
)

// identityKey is the Echo context key under which JWTAuth stores the
// verified identity.
const identityKey = "identity"

// CurrentIdentity returns the identity attached by JWTAuth. The boolean is
// false when no authentication gate ran on this request.
func CurrentIdentity(c echo.Context) (auth.Identity, bool) {
	ident, ok := c.Get(identityKey).(auth.Identity)
	return ident, ok
}
