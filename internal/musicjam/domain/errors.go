package domain

import "errors"

var (
	ErrSessionNotFound  = errors.New("jam session not found")
	ErrPlaylistNotFound = errors.New("playlist not found")
	ErrUnknownGenre     = errors.New("unknown genre")
)
