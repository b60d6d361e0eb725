package user

import "errors"

var (
	// -- Auth --
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrMissingSecret      = errors.New("jwt secret is not set")
	ErrNotAdmin           = errors.New("user is not an admin")

	// -- Resource State --
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("email already registered")

	// -- Infrastructure --
	ErrFailedLoadUser = errors.New("failed to load user")

	// -- Validation & Input --
	ErrEmailRequired = errors.New("email is required")
	ErrPasswordShort = errors.New("password must have at least 8 characters")
)
