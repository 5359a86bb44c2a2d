package domain

import "time"

// Enhancement is a stored AI improvement suggestion for a MusicJam feature.
type Enhancement struct {
	ID                   string    `json:"id"`
	FeatureName          string    `json:"feature_name"`
	EnhancementType      string    `json:"enhancement_type"`
	AISuggestion         string    `json:"ai_suggestion,omitempty"`
	ImplementationStatus string    `json:"implementation_status"` // planned, implementing, deployed
	CreatedAt            time.Time `json:"created_at"`
}

// Implementation status constants
const (
	StatusPlanned      = "planned"
	StatusImplementing = "implementing"
	StatusDeployed     = "deployed"
)
