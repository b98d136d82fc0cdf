// Package common defines shared sentinel errors used across the store,
// session, and service layers of Inkwell. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Session-level errors. Login failure is always ErrorUnauthorized,
	// whether the email is unknown or the secret is wrong.
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorNotLoggedIn  = errors.New("not logged in")

	// Caller-input errors.
	ErrorValidation = errors.New("validation error")
)
