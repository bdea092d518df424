// Package repository implements the data access layer over database/sql.
// This file defines the sentinel errors shared across repositories. Handlers
// compare against them with errors.Is and translate them into HTTP status
// codes; raw driver errors never cross the handler boundary.
package repository

import "errors"

// ErrEmailExists is returned when an insert hits the unique index on
// users.email. Handlers translate it into the duplicate-account response.
var ErrEmailExists = errors.New("email already exists")

// ErrUserNotFound is returned when a user lookup, update or delete matches
// no row.
var ErrUserNotFound = errors.New("user not found")

// ErrDriverNotFound is returned when a driver id matches no row.
var ErrDriverNotFound = errors.New("driver not found")

// ErrRideNotFound is returned when a ride id matches no row.
var ErrRideNotFound = errors.New("ride not found")

// ErrNoChange is returned when an update carries no fields to set.
var ErrNoChange = errors.New("no change")
