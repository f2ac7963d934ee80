package session

import (
	"errors"
	"fmt"
)

var (
	// ErrNoAPI indicates the store has no API client attached
	ErrNoAPI = errors.New("session.no_api_client")

	// ErrNotAuthenticated indicates the operation needs a credential and none is present
	ErrNotAuthenticated = errors.New("session.not_authenticated")

	// ErrNoTokenPath indicates the file token store was given an empty path
	ErrNoTokenPath = errors.New("session.no_token_path")

	// ErrNoRedisClient indicates the redis token store was given a nil client
	ErrNoRedisClient = errors.New("session.no_redis_client")
)

// LoginError indicates a failed login attempt. Message is the server-provided
// error when the server sent one, or a generic login-failure message for
// transport errors. The session is guaranteed unchanged.
type LoginError struct {
	Message string
	Err     error
}

func (e *LoginError) Error() string {
	return fmt.Sprintf("login failed: %s", e.Message)
}

func (e *LoginError) Unwrap() error {
	return e.Err
}
