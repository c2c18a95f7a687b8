package client

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrInvalidOperation = errors.New("invalid operation")
	ErrUnknownKind      = errors.New("unknown response kind")
)

// APIError is returned when the Code Hunt API answers with a non-2xx status.
type APIError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}
