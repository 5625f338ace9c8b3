package auth

import "errors"

// Authentication errors
var (
	// ErrInvalidEmail indicates the supplied email does not look like an email
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrPasswordTooShort indicates the password is under the 6-character minimum
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")

	// ErrInvalidCredentials indicates an unknown user or wrong password.
	// Deliberately one error for both, so login does not leak which.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserExists indicates signup with an already-registered email
	ErrUserExists = errors.New("user already exists")

	// ErrNotLoggedIn indicates an operation that requires an active session
	ErrNotLoggedIn = errors.New("not logged in")
)
