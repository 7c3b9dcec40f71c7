package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a write would break a uniqueness constraint
// (subscription email, username).
var ErrDuplicate = errors.New("duplicate")
