package http

import "github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/deploy/service"

// Handler bundles the dependencies for deployment HTTP endpoints.
type Handler struct {
	service *service.DeployService
}

func New(service *service.DeployService) *Handler {
	return &Handler{service: service}
}

type analyzeRequest struct {
	Repository string `json:"repository" binding:"required"`
}

type projectDeployRequest struct {
	ProjectName    string `json:"project_name" binding:"required"`
	RepositoryURL  string `json:"repository_url" binding:"required"`
	Description    string `json:"description"`
	TargetPlatform string `json:"target_platform"`
}
