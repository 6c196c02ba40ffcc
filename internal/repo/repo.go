package repo

import "errors"

// Sentinel errors shared by every store implementation. Handlers translate
// these to HTTP status codes in one place (handlers.RespondRepoError).
var (
	ErrNotFound   = errors.New("record not found")
	ErrInvalidID  = errors.New("malformed id")
	ErrEmailTaken = errors.New("email already registered")
)
