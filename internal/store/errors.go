package store

import "errors"

// ErrDuplicateAssignment is returned when the team already holds a drawing number.
var ErrDuplicateAssignment = errors.New("team already has a drawing number")

// ErrUnsupportedDriver is returned for database drivers the service does not know.
var ErrUnsupportedDriver = errors.New("unsupported database driver")
