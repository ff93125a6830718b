package model

import "errors"

var (
	// ErrNotFound is returned by stores when the requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned by stores on a unique constraint violation.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidToken is returned by token managers for any unusable token.
	ErrInvalidToken = errors.New("invalid token")
)
