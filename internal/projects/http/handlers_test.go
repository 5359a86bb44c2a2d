package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/docstore"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/projects/domain"
	projectshttp "github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/projects/http"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/projects/repository"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/projects/service"
)

func setupProjectRouter(t *testing.T) (*gin.Engine, *repository.ProjectRepository) {
	gin.SetMode(gin.TestMode)

	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	repo := repository.NewProjectRepository(docstore.New(client))
	handler := projectshttp.New(service.NewProjectService(repo))

	router := gin.New()
	handler.Register(router.Group("/api/projects"))

	return router, repo
}

func TestProjectHandler_List(t *testing.T) {
	router, repo := setupProjectRouter(t)
	ctx := context.Background()

	t.Run("returns empty list when nothing is managed", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/projects", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Projects []domain.Project `json:"projects"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Empty(t, body.Projects)
	})

	t.Run("lists created projects", func(t *testing.T) {
		p := &domain.Project{
			Name:          "musicjam",
			RepositoryURL: "https://github.com/yazwho/musicjam",
			Status:        domain.StatusDeploying,
		}
		require.NoError(t, repo.Create(ctx, p))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/projects", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Projects []domain.Project `json:"projects"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Projects, 1)
		assert.Equal(t, "musicjam", body.Projects[0].Name)
		assert.Equal(t, domain.StatusDeploying, body.Projects[0].Status)
	})
}

func TestProjectHandler_Get(t *testing.T) {
	router, repo := setupProjectRouter(t)
	ctx := context.Background()

	t.Run("returns a project by id", func(t *testing.T) {
		p := &domain.Project{Name: "empire-api", RepositoryURL: "https://github.com/yazwho/empire-api"}
		require.NoError(t, repo.Create(ctx, p))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/projects/"+p.ID, nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var got domain.Project
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, p.ID, got.ID)
		assert.Equal(t, domain.StatusPending, got.Status)
	})

	t.Run("returns 404 for an unknown id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/api/projects/invalid-id", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestProjectRepository_DuplicateID(t *testing.T) {
	_, repo := setupProjectRouter(t)
	ctx := context.Background()

	p := &domain.Project{ID: "fixed-id", Name: "one", RepositoryURL: "https://github.com/yazwho/one"}
	require.NoError(t, repo.Create(ctx, p))

	dup := &domain.Project{ID: "fixed-id", Name: "two", RepositoryURL: "https://github.com/yazwho/two"}
	err := repo.Create(ctx, dup)
	assert.ErrorIs(t, err, domain.ErrProjectAlreadyExists)

	got, err := repo.GetByID(ctx, "fixed-id")
	require.NoError(t, err)
	assert.Equal(t, "one", got.Name)
}
