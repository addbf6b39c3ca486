package store

import "errors"

// ErrNotFound is returned when a record doesn't exist
var ErrNotFound = errors.New("record not found")
