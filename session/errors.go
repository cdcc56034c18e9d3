package session

import "errors"

var (
	// ErrInvalidCookie is returned when a cookie value cannot be decoded into a session ID.
	ErrInvalidCookie = errors.New("invalid session cookie value")
	// ErrCorruptData is returned when a stored session value fails to deserialize.
	ErrCorruptData = errors.New("corrupt session data")
	// ErrSerialization is returned when a session fails to serialize for storage.
	ErrSerialization = errors.New("failed to serialize session")
	// ErrTokenGeneration is returned when secure token generation fails.
	ErrTokenGeneration = errors.New("failed to generate session token")
)
