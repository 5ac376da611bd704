package errors

import "errors"

var (
	ErrInvalidAction  = errors.New("invalid action")
	ErrInvalidActorID = errors.New("invalid actor id")
	ErrForbidden      = errors.New("not enough permissions")
)
