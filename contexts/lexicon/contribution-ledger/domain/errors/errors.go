package errors

import "errors"

var (
	ErrInvalidContribution         = errors.New("invalid contribution")
	ErrUnsupportedContributionType = errors.New("unsupported contribution type")
	ErrInvalidUserID               = errors.New("invalid user id")
)
