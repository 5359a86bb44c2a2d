package domain

import "time"

// Project represents a managed application deployed through the dashboard.
type Project struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	RepositoryURL string    `json:"repository_url"`
	Description   string    `json:"description,omitempty"`
	Status        string    `json:"status"` // pending, deploying, deployed, failed
	DeploymentURL string    `json:"deployment_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Project status constants
const (
	StatusPending   = "pending"
	StatusDeploying = "deploying"
	StatusDeployed  = "deployed"
	StatusFailed    = "failed"
)
