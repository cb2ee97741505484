package user

import "errors"

var (
	// ErrUserNotFound signals a lookup for a user that does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken signals a registration with an email already on file.
	ErrEmailTaken = errors.New("email already registered")
	// ErrAlreadyRegistered signals a second registration from the same id.
	ErrAlreadyRegistered = errors.New("user already registered")
)
