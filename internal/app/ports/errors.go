package ports

import "errors"

var (
	// ErrNotFound: the save slot, animal, structure or catalog entry does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict: the operation was already performed (e.g. claiming a claimed task).
	ErrConflict = errors.New("conflict")
)
