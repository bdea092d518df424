// Package auth implements the credential and session-token core: bcrypt
// password hashing and HS256 JWT issuance/verification.
package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aidosk/ride-hail-api/internal/model"
)

// Verification failure kinds. They are distinguished so gates can log what
// actually went wrong; clients only ever see a generic 401.
var (
	ErrTokenMalformed = errors.New("token malformed")
	ErrBadSignature   = errors.New("token signature invalid")
	ErrTokenExpired   = errors.New("token expired")
)

// Identity is the verified content of an access token, scoped to a single
// request once a gate attaches it to the request context.
type Identity struct {
	UserID uint64
	Role   model.Role
}

// Claims is the JWT payload: registered sub/iat/exp plus the account role.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// AccessToken is a signed JWT together with its expiration time.
type AccessToken struct {
	Token string
	Exp   time.Time
}

// NewAccessToken builds and signs an HS256 JWT for a user. The subject is the
// user ID, iat is now and exp is now+ttl. A ttl of zero produces a token that
// is already expired by the time anyone verifies it.
func NewAccessToken(secret string, userID uint64, role model.Role, ttl time.Duration) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(ttl)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		Role: string(role),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// VerifyToken checks the signature and expiry of a raw token and returns the
// identity it encodes. Expiry is judged against the local wall clock with no
// grace window, so a token issued with ttl=0 never verifies. Failures map to
// ErrTokenMalformed, ErrBadSignature or ErrTokenExpired.
func VerifyToken(secret, raw string) (Identity, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Identity{}, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Identity{}, ErrBadSignature
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Identity{}, ErrTokenMalformed
		default:
			return Identity{}, ErrTokenMalformed
		}
	}
	if !tok.Valid {
		return Identity{}, ErrBadSignature
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return Identity{}, ErrTokenMalformed
	}
	role, ok := model.ParseRole(claims.Role)
	if !ok {
		return Identity{}, ErrTokenMalformed
	}
	return Identity{UserID: userID, Role: role}, nil
}
