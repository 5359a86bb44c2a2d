package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/deploy/domain"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/deploy/engine"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/deploy/repository"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/github"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/metrics"
	projdomain "github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/projects/domain"
	projservice "github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/projects/service"
)

// StatusReport summarizes stored deployment runs.
type StatusReport struct {
	Deployments []domain.Record `json:"deployments"`
	Total       int64           `json:"total"`
	Active      int             `json:"active"`
}

// DeployService coordinates project deployments and engine runs.
type DeployService struct {
	projects *projservice.ProjectService
	records  *repository.DeploymentRepository
	engine   *engine.Engine
	delay    time.Duration
	logger   zerolog.Logger
}

// NewDeployService creates a new deploy service. eng may be nil when the
// GitHub integration is not configured; engine-backed operations then return
// github.ErrNotConfigured.
func NewDeployService(projects *projservice.ProjectService, records *repository.DeploymentRepository, eng *engine.Engine, delay time.Duration, logger zerolog.Logger) *DeployService {
	return &DeployService{
		projects: projects,
		records:  records,
		engine:   eng,
		delay:    delay,
		logger:   logger,
	}
}

// DeployProject registers a project in the deploying state and starts the
// simulated background deployment that later flips it to deployed or failed.
func (s *DeployService) DeployProject(ctx context.Context, name, repositoryURL, description string) (*projdomain.Project, error) {
	project := &projdomain.Project{
		Name:          name,
		RepositoryURL: repositoryURL,
		Description:   description,
		Status:        projdomain.StatusDeploying,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}

	go s.simulateDeployment(project.ID, project.Name, time.Now())

	return project, nil
}

// simulateDeployment runs detached from the originating request.
func (s *DeployService) simulateDeployment(projectID, name string, start time.Time) {
	time.Sleep(s.delay)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	status := domain.StatusCompleted
	deploymentURL := "https://" + slugify(name) + ".vercel.app"
	if _, err := s.projects.MarkDeployed(ctx, projectID, deploymentURL); err != nil {
		s.logger.Error().Err(err).Str("project_id", projectID).Msg("simulated deployment could not be recorded")
		if _, err := s.projects.MarkFailed(ctx, projectID); err != nil {
			s.logger.Error().Err(err).Str("project_id", projectID).Msg("could not mark project failed")
		}
		status = domain.StatusFailed
		metrics.DeploymentsTotal.WithLabelValues(projdomain.StatusFailed).Inc()
	} else {
		metrics.DeploymentsTotal.WithLabelValues(projdomain.StatusDeployed).Inc()
		s.logger.Info().Str("project_id", projectID).Str("url", deploymentURL).Msg("simulated deployment finished")
	}

	end := time.Now()
	record := &domain.Record{
		ID:        uuid.NewString(),
		Type:      domain.TypeSimulated,
		RepoName:  name,
		Status:    status,
		StartTime: start,
		EndTime:   &end,
	}
	if err := s.records.Create(ctx, record); err != nil {
		s.logger.Error().Err(err).Str("project_id", projectID).Msg("could not store deployment record")
	}
}

// Analyze inspects a repository and stores the resulting analysis record.
func (s *DeployService) Analyze(ctx context.Context, repository string) (*domain.Record, error) {
	if s.engine == nil {
		return nil, github.ErrNotConfigured
	}

	start := time.Now()
	analysis, err := s.engine.AnalyzeRepository(ctx, repository)
	if err != nil {
		return nil, err
	}

	record := &domain.Record{
		ID:        uuid.NewString(),
		Type:      domain.TypeAnalysis,
		RepoName:  repository,
		Status:    domain.StatusCompleted,
		Analysis:  analysis,
		StartTime: start,
	}
	end := time.Now()
	record.EndTime = &end

	if err := s.records.Create(ctx, record); err != nil {
		return nil, err
	}
	metrics.DeploymentsTotal.WithLabelValues(record.Status).Inc()
	return record, nil
}

// Autonomous runs the full deployment pipeline and stores its record. The
// record itself carries any failure.
func (s *DeployService) Autonomous(ctx context.Context, repository string) (*domain.Record, error) {
	if s.engine == nil {
		return nil, github.ErrNotConfigured
	}

	record := s.engine.ExecuteAutonomous(ctx, repository)
	if err := s.records.Create(ctx, record); err != nil {
		return nil, err
	}
	metrics.DeploymentsTotal.WithLabelValues(record.Status).Inc()
	return record, nil
}

// Status reports recent deployment runs and their counts.
func (s *DeployService) Status(ctx context.Context) (*StatusReport, error) {
	records, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}
	total, err := s.records.Count(ctx)
	if err != nil {
		return nil, err
	}

	active := 0
	for _, record := range records {
		if record.Status == domain.StatusStarted {
			active++
		}
	}

	return &StatusReport{Deployments: records, Total: total, Active: active}, nil
}

func slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}
