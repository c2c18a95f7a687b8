package datarelease

import "errors"

// Common errors
var (
	ErrMalformedFilename = errors.New("malformed filename")
	ErrLevelNotFound     = errors.New("level not found")
	ErrUserNotFound      = errors.New("user not found")
)
