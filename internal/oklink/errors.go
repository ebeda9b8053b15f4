package oklink

import "fmt"

// AuthError means the Ok-Access-Key was rejected. Never retried.
type AuthError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("oklink auth rejected (status %d, code %s): %s", e.StatusCode, e.Code, e.Message)
}

// RateLimitError means OKLink throttled us and retries were exhausted.
type RateLimitError struct {
	StatusCode int
	Message    string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("oklink rate limit (status %d): %s", e.StatusCode, e.Message)
}

// NetworkError is a transport failure or an unexpected HTTP status.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("oklink %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
