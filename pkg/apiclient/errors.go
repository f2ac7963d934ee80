package apiclient

import (
	"errors"
	"fmt"
)

// Domain errors for API calls, designed for error wrapping and classification.
//
// Error classification strategy:
// - ErrSessionExpired: HTTP 401, the credential is no longer usable
// - *RequestError: any other non-2xx status, carries the server message
// - ErrTransport: network failure or a body that is not valid JSON
var (
	ErrSessionExpired = errors.New("session expired")
	ErrTransport      = errors.New("transport failure")
	ErrInvalidBaseURL = errors.New("invalid base URL")
)

// RequestError indicates the server rejected the call with a non-2xx status
// other than 401. Message is the server-provided error field when the error
// body could be parsed, otherwise a generic "request failed: <status>" string.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// IsSessionExpired checks if an error indicates the credential expired.
func IsSessionExpired(err error) bool {
	return errors.Is(err, ErrSessionExpired)
}
