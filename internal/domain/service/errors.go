package service

import "offerfeed/internal/errors"

var (
	// ErrSessionNotFound is returned when a session does not exist or has expired.
	ErrSessionNotFound = errors.New("session not found")
	// ErrInvalidToken is returned when a token fails signature, expiry or type checks.
	ErrInvalidToken = errors.New("invalid token")
)
