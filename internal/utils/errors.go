package utils

import "errors"

// Common application errors shared by repositories, services and handlers.
var (
	ErrNotFound   = errors.New("RECORD_NOT_FOUND")
	ErrNotCreated = errors.New("RECORD_NOT_CREATED")
)
