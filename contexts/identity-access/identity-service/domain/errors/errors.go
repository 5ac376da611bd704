package errors

import "errors"

var (
	ErrInvalidRegistration   = errors.New("invalid registration input")
	ErrUsernameTaken         = errors.New("username already registered")
	ErrEmailTaken            = errors.New("email already registered")
	ErrInvalidCredentials    = errors.New("incorrect username or password")
	ErrInvalidOrExpiredToken = errors.New("could not validate credentials")
	ErrUserNotFound          = errors.New("user not found")
)
