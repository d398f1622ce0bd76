package domain

import "errors"

// Sentinel errors shared across repositories and services.
var (
	ErrNotFound      = errors.New("record not found")
	ErrDuplicateName = errors.New("name already in use")
)
