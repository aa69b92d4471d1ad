package core

import "errors"

var (
	// ErrDuplicateAddress is returned when creating an address whose identity
	// key equals one that is already stored.
	ErrDuplicateAddress = errors.New("an identical address already exists")
	// ErrNotFound is returned when a referenced record does not exist.
	// It is an expected condition, never a fatal one.
	ErrNotFound = errors.New("record does not exist")
	// ErrStorageUnavailable wraps backend I/O failures (connection, disk).
	// The store does not retry; that is up to the caller.
	ErrStorageUnavailable = errors.New("storage backend unavailable")
)
