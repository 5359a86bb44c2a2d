package domain

import "errors"

var (
	ErrNotConfigured  = errors.New("google oauth is not configured")
	ErrInvalidState   = errors.New("unknown or expired oauth state")
	ErrInvalidSession = errors.New("invalid session token")
)
