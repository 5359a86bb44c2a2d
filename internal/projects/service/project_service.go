package service

import (
	"context"

	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/projects/domain"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/projects/repository"
)

// ProjectService handles project-related business logic
type ProjectService struct {
	repo *repository.ProjectRepository
}

// NewProjectService creates a new project service
func NewProjectService(repo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// Create registers a new managed project
func (s *ProjectService) Create(ctx context.Context, project *domain.Project) error {
	return s.repo.Create(ctx, project)
}

// GetByID returns a single project
func (s *ProjectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all managed projects
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.repo.List(ctx)
}

// MarkDeployed records a successful deployment and its public URL
func (s *ProjectService) MarkDeployed(ctx context.Context, id, deploymentURL string) (*domain.Project, error) {
	return s.repo.UpdateStatus(ctx, id, domain.StatusDeployed, deploymentURL)
}

// MarkFailed records a failed deployment
func (s *ProjectService) MarkFailed(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.UpdateStatus(ctx, id, domain.StatusFailed, "")
}

// Count returns the number of managed projects
func (s *ProjectService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
