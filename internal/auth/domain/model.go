package domain

// User is the identity resolved from Google after a completed OAuth flow.
// ID is the Google subject identifier.
type User struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture,omitempty"`
}
