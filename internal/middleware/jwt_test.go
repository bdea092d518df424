package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aidosk/ride-hail-api/internal/auth"
	"github.com/aidosk/ride-hail-api/internal/model"
)

const testSecret = "middleware-test-secret"

// runJWT sends a request through JWTAuth into a recording handler and
// reports the response plus whether the handler ran and what identity it saw.
func runJWT(t *testing.T, authorization string) (*httptest.ResponseRecorder, bool, auth.Identity) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/rides", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var (
		called bool
		seen   auth.Identity
	)
	next := func(c echo.Context) error {
		called = true
		seen, _ = CurrentIdentity(c)
		return c.NoContent(http.StatusOK)
	}

	if err := JWTAuth(testSecret)(next)(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return rec, called, seen
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	t.Parallel()

	rec, called, _ := runJWT(t, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if called {
		t.Fatal("handler ran without credentials")
	}
}

func TestJWTAuth_NotBearer(t *testing.T) {
	t.Parallel()

	rec, called, _ := runJWT(t, "Basic dXNlcjpwYXNz")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if called {
		t.Fatal("handler ran with a non-bearer header")
	}
}

func TestJWTAuth_GarbageToken(t *testing.T) {
	t.Parallel()

	rec, called, _ := runJWT(t, "Bearer not.a.token")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if called {
		t.Fatal("handler ran with a garbage token")
	}
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	t.Parallel()

	tok, err := auth.NewAccessToken(testSecret, 5, model.RoleCustomer, -time.Minute)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	rec, called, _ := runJWT(t, "Bearer "+tok.Token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if called {
		t.Fatal("handler ran with an expired token")
	}
}

func TestJWTAuth_ValidToken(t *testing.T) {
	t.Parallel()

	tok, err := auth.NewAccessToken(testSecret, 9, model.RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("NewAccessToken error: %v", err)
	}
	rec, called, seen := runJWT(t, "Bearer "+tok.Token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !called {
		t.Fatal("handler did not run for a valid token")
	}
	if seen.UserID != 9 || seen.Role != model.RoleAdmin {
		t.Fatalf("identity = %+v, want user 9 role ADMIN", seen)
	}
}
