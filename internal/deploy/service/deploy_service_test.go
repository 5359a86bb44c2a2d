package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/deploy/domain"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/deploy/engine"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/deploy/repository"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/deploy/service"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/docstore"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/github"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/logger"
	projrepo "github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/projects/repository"
	projservice "github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/projects/service"
)

type stubBrowser struct {
	rootErr error
}

func (s stubBrowser) ListDir(_ context.Context, _, _, path string) ([]github.ContentEntry, error) {
	if path != "" {
		return nil, errors.New("no such directory")
	}
	if s.rootErr != nil {
		return nil, s.rootErr
	}
	return []github.ContentEntry{
		{Name: "package.json", Path: "package.json", Type: "file", Size: 64},
	}, nil
}

func (s stubBrowser) FileText(context.Context, string, string, string) (string, error) {
	return `{"dependencies": {"react": "^18.2.0"}}`, nil
}

func (s stubBrowser) DefaultBranchSHA(context.Context, string, string) (string, string, error) {
	return "main", "feedc0de", nil
}

func (s stubBrowser) CreateBranch(context.Context, string, string, string, string) error {
	return nil
}

func (s stubBrowser) PutFile(context.Context, string, string, string, string, string, string) error {
	return nil
}

func setupDeployService(t *testing.T, eng *engine.Engine) (*service.DeployService, *repository.DeploymentRepository) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	store := docstore.New(client)
	projects := projservice.NewProjectService(projrepo.NewProjectRepository(store))
	records := repository.NewDeploymentRepository(store)

	return service.NewDeployService(projects, records, eng, time.Millisecond, logger.Nop()), records
}

func TestDeployServiceAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a completed analysis record", func(t *testing.T) {
		eng := engine.New(stubBrowser{}, nil, logger.Nop())
		svc, records := setupDeployService(t, eng)

		record, err := svc.Analyze(ctx, "yazwho/musicjam")
		require.NoError(t, err)

		assert.Equal(t, domain.TypeAnalysis, record.Type)
		assert.Equal(t, domain.StatusCompleted, record.Status)
		require.NotNil(t, record.Analysis)
		assert.Equal(t, true, record.Analysis.TechStack.Frontend["react"])

		stored, err := records.List(ctx)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, record.ID, stored[0].ID)
	})

	t.Run("surfaces analysis failures without storing a record", func(t *testing.T) {
		eng := engine.New(stubBrowser{rootErr: errors.New("404 Not Found")}, nil, logger.Nop())
		svc, records := setupDeployService(t, eng)

		_, err := svc.Analyze(ctx, "yazwho/missing")
		require.Error(t, err)

		stored, err := records.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, stored)
	})

	t.Run("rejects analysis when the engine is not configured", func(t *testing.T) {
		svc, _ := setupDeployService(t, nil)

		_, err := svc.Analyze(ctx, "yazwho/musicjam")
		require.ErrorIs(t, err, github.ErrNotConfigured)
	})
}

func TestDeployServiceSimulated(t *testing.T) {
	ctx := context.Background()

	t.Run("records the simulated run once it finishes", func(t *testing.T) {
		svc, records := setupDeployService(t, nil)

		project, err := svc.DeployProject(ctx, "Empire Site", "https://github.com/yazwho/empire-site", "")
		require.NoError(t, err)

		require.Eventually(t, func() bool {
			stored, err := records.List(ctx)
			return err == nil && len(stored) == 1
		}, 2*time.Second, 10*time.Millisecond)

		stored, err := records.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.TypeSimulated, stored[0].Type)
		assert.Equal(t, domain.StatusCompleted, stored[0].Status)
		assert.Equal(t, project.Name, stored[0].RepoName)
		require.NotNil(t, stored[0].EndTime)
	})
}

func TestDeployServiceAutonomous(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the staged record even when the run fails", func(t *testing.T) {
		eng := engine.New(stubBrowser{rootErr: errors.New("401 Bad credentials")}, nil, logger.Nop())
		svc, records := setupDeployService(t, eng)

		record, err := svc.Autonomous(ctx, "yazwho/musicjam")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusFailed, record.Status)

		stored, err := records.List(ctx)
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, domain.StatusFailed, stored[0].Status)
	})

	t.Run("reports recent runs through status", func(t *testing.T) {
		eng := engine.New(stubBrowser{}, nil, logger.Nop())
		svc, _ := setupDeployService(t, eng)

		_, err := svc.Autonomous(ctx, "yazwho/musicjam")
		require.NoError(t, err)
		_, err = svc.Analyze(ctx, "yazwho/musicjam")
		require.NoError(t, err)

		report, err := svc.Status(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), report.Total)
		assert.Len(t, report.Deployments, 2)
		assert.Zero(t, report.Active)
	})
}
