package storage

import "errors"

// Common client storage errors
var (
	// ErrFileTypeNotFound indicates that no file type is registered for the extension
	ErrFileTypeNotFound = errors.New("file type not found")

	// ErrServiceLevelNotFound indicates that the server service level was never cached
	ErrServiceLevelNotFound = errors.New("service level not found")

	// ErrDatabaseLocked indicates that another process keeps the database open
	ErrDatabaseLocked = errors.New("database is locked by another process")
)
