package errors

import "errors"

var (
	ErrInvalidLanguageInput = errors.New("invalid language input")
	ErrLanguageCodeTaken    = errors.New("language code already exists")
	ErrLanguageNotFound     = errors.New("language not found")
	ErrInvalidWordInput     = errors.New("invalid word input")
	ErrInvalidReference     = errors.New("referenced language does not exist")
	ErrWordNotFound         = errors.New("word not found")
	ErrInvalidSearchQuery   = errors.New("search word is required")
	ErrInvalidActor         = errors.New("invalid actor")
)
