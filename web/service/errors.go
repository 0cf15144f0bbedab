package service

import "errors"

// Business error taxonomy. Handlers branch on these with errors.Is.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrCharacterNotFound = errors.New("character not found")
	ErrUsernameTaken     = errors.New("username already exists")
	ErrPasswordMismatch  = errors.New("passwords do not match")
)
