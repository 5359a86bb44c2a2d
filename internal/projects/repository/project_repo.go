package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/docstore"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/projects/domain"
)

const maxProjectList = 100

// ProjectRepository handles document store operations for projects
type ProjectRepository struct {
	store *docstore.Store
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(store *docstore.Store) *ProjectRepository {
	return &ProjectRepository{store: store}
}

// Create stores a new project record. IDs must be unique.
func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	now := time.Now()
	if project.CreatedAt.IsZero() {
		project.CreatedAt = now
	}
	if project.UpdatedAt.IsZero() {
		project.UpdatedAt = now
	}
	if project.Status == "" {
		project.Status = domain.StatusPending
	}

	err := r.store.Insert(ctx, docstore.CollectionProjects, project.ID, project)
	if errors.Is(err, docstore.ErrDuplicateID) {
		return domain.ErrProjectAlreadyExists
	}
	return err
}

// GetByID retrieves a project by its ID
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	var project domain.Project
	err := r.store.Get(ctx, docstore.CollectionProjects, id, &project)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, domain.ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// List returns managed projects ordered by creation time, capped at 100.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	raws, err := r.store.List(ctx, docstore.CollectionProjects)
	if err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(raws))
	for _, raw := range raws {
		var p domain.Project
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("failed to decode project: %w", err)
		}
		projects = append(projects, p)
	}

	sort.Slice(projects, func(i, j int) bool {
		return projects[i].CreatedAt.Before(projects[j].CreatedAt)
	})

	if len(projects) > maxProjectList {
		projects = projects[:maxProjectList]
	}

	return projects, nil
}

// UpdateStatus transitions a project's deployment status. A non-empty
// deploymentURL is recorded alongside the status.
func (r *ProjectRepository) UpdateStatus(ctx context.Context, id, status, deploymentURL string) (*domain.Project, error) {
	project, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	project.Status = status
	if deploymentURL != "" {
		project.DeploymentURL = deploymentURL
	}
	project.UpdatedAt = time.Now()

	err = r.store.Replace(ctx, docstore.CollectionProjects, id, project)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, domain.ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}

	return project, nil
}

// Count returns the number of managed projects.
func (r *ProjectRepository) Count(ctx context.Context) (int64, error) {
	return r.store.Count(ctx, docstore.CollectionProjects)
}
