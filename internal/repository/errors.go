package repository

import "errors"

// ErrInvalidInput is returned when a write is rejected by a storage constraint.
var ErrInvalidInput = errors.New("invalid input")
