package engine

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/deploy/domain"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/github"
)

// ExecuteAutonomous runs the full deployment pipeline for a repository and
// returns a step-by-step record. Failures are captured in the record rather
// than returned, so a partial run is still reportable.
func (e *Engine) ExecuteAutonomous(ctx context.Context, fullName string) *domain.Record {
	record := &domain.Record{
		ID:        uuid.NewString(),
		Type:      domain.TypeAutonomous,
		RepoName:  fullName,
		Status:    domain.StatusStarted,
		StartTime: time.Now(),
	}

	record.BeginStep("repository_analysis")
	analysis, err := e.AnalyzeRepository(ctx, fullName)
	if err != nil {
		e.fail(record, err)
		return record
	}
	record.CompleteStep()
	record.Analysis = analysis

	record.BeginStep("deployment_files_generation")
	files, err := BuildDeploymentFiles(repoShortName(fullName), analysis.DeploymentStrategy)
	if err != nil {
		e.fail(record, err)
		return record
	}
	record.CompleteStep()
	record.DeploymentFiles = sortedKeys(files)

	record.BeginStep("deployment_branch_creation")
	branch, err := e.pushDeploymentBranch(ctx, fullName, record.ID, files)
	if err != nil {
		e.fail(record, err)
		return record
	}
	record.CompleteStep()
	record.DeploymentBranch = branch

	record.Status = domain.StatusCompleted
	now := time.Now()
	record.EndTime = &now
	return record
}

// pushDeploymentBranch creates a branch off the default branch and commits
// each deployment file to it. Individual file failures are logged and
// skipped so one bad path does not abort the branch.
func (e *Engine) pushDeploymentBranch(ctx context.Context, fullName, deploymentID string, files map[string]string) (string, error) {
	owner, name, err := github.SplitFullName(fullName)
	if err != nil {
		return "", err
	}

	_, sha, err := e.browser.DefaultBranchSHA(ctx, owner, name)
	if err != nil {
		return "", fmt.Errorf("failed to create deployment branch: %w", err)
	}

	branch := fmt.Sprintf("autonomous-deployment-%s", deploymentID[:8])
	if err := e.browser.CreateBranch(ctx, owner, name, branch, sha); err != nil {
		return "", fmt.Errorf("failed to create deployment branch: %w", err)
	}

	for _, path := range sortedKeys(files) {
		message := fmt.Sprintf("Add %s for autonomous deployment", path)
		if err := e.browser.PutFile(ctx, owner, name, branch, path, message, files[path]); err != nil {
			e.logger.Error().Err(err).Str("path", path).Msg("could not commit deployment file")
		}
	}

	return branch, nil
}

func (e *Engine) fail(record *domain.Record, err error) {
	e.logger.Error().Err(err).Str("repository", record.RepoName).Msg("autonomous deployment failed")
	record.FailStep()
	record.Status = domain.StatusFailed
	record.Error = err.Error()
	now := time.Now()
	record.EndTime = &now
}

func repoShortName(fullName string) string {
	if _, name, err := github.SplitFullName(fullName); err == nil {
		return name
	}
	return fullName
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
