package services

import "errors"

// Sentinel errors for the failure taxonomy. Services wrap these with %w and
// context; the controllers map them to HTTP statuses with errors.Is, so no
// string matching happens anywhere.
var (
	ErrValidation         = errors.New("invalid request")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
)
