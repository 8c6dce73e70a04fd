package domain

import "errors"

// ErrNotFound is returned when a requested event or session does not exist.
var ErrNotFound = errors.New("not found")
