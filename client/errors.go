package client

import "fmt"

// ErrorCode represents the type of error that occurred.
type ErrorCode int

const (
	// ErrUnknown is an unknown error.
	ErrUnknown ErrorCode = iota
	// ErrMissingAPIKey is returned when no API key was provided.
	ErrMissingAPIKey
	// ErrRejected is returned when the service refused the paste and
	// said why.
	ErrRejected
	// ErrRateLimited is returned when rate limited by the service.
	ErrRateLimited
	// ErrServer is returned for unexpected HTTP statuses.
	ErrServer
	// ErrBadResponse is returned when the response body could not be
	// parsed.
	ErrBadResponse
)

// Error represents an error from the pastery API.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("pastery: %s", e.Message)
}

// IsMissingAPIKey returns true if the error indicates an absent API key.
func IsMissingAPIKey(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Code == ErrMissingAPIKey
	}
	return false
}

// IsRejected returns true if the service refused the paste.
func IsRejected(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Code == ErrRejected
	}
	return false
}

// IsRateLimited returns true if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Code == ErrRateLimited
	}
	return false
}
