// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by username or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameAlreadyExists is returned when attempting to register a username that already exists.
	ErrUsernameAlreadyExists = errors.New("username already registered")

	// ErrEmailAlreadyExists is returned when attempting to register an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrInvalidCredentials is returned on login when the username or password is wrong.
	// The same error covers both cases so callers cannot probe for accounts.
	ErrInvalidCredentials = errors.New("incorrect username or password")
)
