package database

import "errors"

var (
	ErrNotInitialized = errors.New("history database is not initialized")
	ErrInvalidLimit   = errors.New("history limit must be positive")
)
