package model

import (
	"strings"
	"time"
)

// Role is the closed set of account roles. Authorization decisions are made
// against these values only; free-form role strings never enter the system.
type Role string

const (
	RoleCustomer Role = "CUSTOMER" // default role for new accounts
	RoleDriver   Role = "DRIVER"
	RoleAdmin    Role = "ADMIN"
)

// DefaultRole is assigned when registration does not specify a role.
const DefaultRole = RoleCustomer

// ParseRole normalizes raw input into a Role. The second return value reports
// whether the input named a known role; callers decide how to treat unknowns
// (registration falls back to DefaultRole, token verification rejects).
func ParseRole(raw string) (Role, bool) {
	switch Role(strings.ToUpper(strings.TrimSpace(raw))) {
	case RoleCustomer:
		return RoleCustomer, true
	case RoleDriver:
		return RoleDriver, true
	case RoleAdmin:
		return RoleAdmin, true
	}
	return DefaultRole, false
}

// User mirrors the 'users' table. PasswordHash holds the bcrypt digest of the
// account credential; the plaintext password is never stored, and handlers
// must never serialize this field into a response.
type User struct {
	ID           uint64    // users.id
	Name         string    // users.name
	Email        string    // users.email (unique, stored lower-cased)
	PasswordHash string    // users.password_hash
	Role         Role      // users.role
	IsActive     bool      // users.is_active
	CreatedAt    time.Time // users.created_at
}
