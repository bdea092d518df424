package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/aidosk/ride-hail-api/internal/auth"
	"github.com/aidosk/ride-hail-api/internal/model"
)

// runRole invokes RequireRole(allowed...) with an optional identity already
// in the context, the way JWTAuth would have left it.
func runRole(t *testing.T, ident *auth.Identity, allowed ...model.Role) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if ident != nil {
		c.Set(identityKey, *ident)
	}

	var called bool
	next := func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	}

	if err := RequireRole(allowed...)(next)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec, called
}

func TestRequireRole_Allowed(t *testing.T) {
	t.Parallel()

	rec, called := runRole(t, &auth.Identity{UserID: 1, Role: model.RoleAdmin}, model.RoleAdmin)
	if rec.Code != http.StatusOK || !called {
		t.Fatalf("admin on admin route: status=%d called=%v, want 200/true", rec.Code, called)
	}
}

func TestRequireRole_Forbidden(t *testing.T) {
	t.Parallel()

	rec, called := runRole(t, &auth.Identity{UserID: 2, Role: model.RoleCustomer}, model.RoleAdmin)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("customer on admin route: status=%d, want 403", rec.Code)
	}
	if called {
		t.Fatal("handler ran for a disallowed role")
	}
}

func TestRequireRole_MultipleRoles(t *testing.T) {
	t.Parallel()

	rec, called := runRole(t, &auth.Identity{UserID: 3, Role: model.RoleDriver},
		model.RoleDriver, model.RoleAdmin)
	if rec.Code != http.StatusOK || !called {
		t.Fatalf("driver on driver/admin route: status=%d called=%v, want 200/true", rec.Code, called)
	}
}

func TestRequireRole_MissingIdentity(t *testing.T) {
	t.Parallel()

	// Gate mis-ordering: no identity may never be treated as a usable role.
	rec, called := runRole(t, nil, model.RoleAdmin)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no identity: status=%d, want 401", rec.Code)
	}
	if called {
		t.Fatal("handler ran without any identity")
	}
}
