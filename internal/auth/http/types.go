package http

import "github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/auth"

// Handler bundles the dependencies for OAuth HTTP endpoints. oauth is nil
// when the integration is not configured.
type Handler struct {
	oauth    *auth.GoogleOAuth
	sessions *auth.SessionManager
}

func New(oauth *auth.GoogleOAuth, sessions *auth.SessionManager) *Handler {
	return &Handler{oauth: oauth, sessions: sessions}
}
