package bootstrap

import (
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/config"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/ai"
	aihttp "github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/ai/http"
	httpapi "github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/api/http"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/api/http/middleware"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/auth"
	authhttp "github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/auth/http"
	cmdhttp "github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/commands/http"
	cmdservice "github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/commands/service"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/deploy/engine"
	deployhttp "github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/deploy/http"
	deployrepo "github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/deploy/repository"
	deployservice "github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/deploy/service"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/docstore"
	empirehttp "github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/empire/http"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/empire/probe"
	enhhttp "github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/enhancements/http"
	enhrepo "github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/enhancements/repository"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/github"
	githubhttp "github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/github/http"
	musicjamhttp "github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/musicjam/http"
	musicjamrepo "github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/musicjam/repository"
	musicjamservice "github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/musicjam/service"
	projhttp "github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/projects/http"
	projrepo "github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/projects/repository"
	projservice "github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/projects/service"
)

// RouterDeps carries the shared dependencies the HTTP layer is built from.
// GitHub and Gemini may be nil when the matching integration is not
// configured; handlers degrade to their not-configured responses.
type RouterDeps struct {
	Cfg    *config.Config
	Logger zerolog.Logger
	Store  *docstore.Store
	GitHub *github.Client
	Gemini ai.Generator
	Prober *probe.Prober
}

// BuildRouter wires every feature handler onto a single gin engine.
func BuildRouter(dep RouterDeps) (*gin.Engine, error) {
	if err := musicjamhttp.RegisterValidations(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(dep.Logger))
	r.Use(middleware.Metrics())
	r.Use(cors.New(corsConfig(dep.Cfg.Server.CORSAllowOrigins)))

	httpapi.NewHealthHandler("empire-dashboard", dep.Cfg.App.Version, dep.Store).RegisterRoutes(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	projectRepo := projrepo.NewProjectRepository(dep.Store)
	projectSvc := projservice.NewProjectService(projectRepo)
	enhancementRepo := enhrepo.NewEnhancementRepository(dep.Store)

	sessionRepo := musicjamrepo.NewSessionRepository(dep.Store)
	playlistRepo := musicjamrepo.NewPlaylistRepository(dep.Store)
	musicjamSvc := musicjamservice.NewMusicJamService(sessionRepo, playlistRepo)

	var eng *engine.Engine
	if dep.GitHub != nil {
		eng = engine.New(dep.GitHub, dep.Gemini, dep.Logger)
	}
	deploySvc := deployservice.NewDeployService(
		projectSvc,
		deployrepo.NewDeploymentRepository(dep.Store),
		eng,
		dep.Cfg.Deploy.SimulationDelay,
		dep.Logger,
	)

	commandSvc := cmdservice.NewCommandService(
		dep.Gemini,
		dep.Cfg.Commands.WorkDir,
		dep.Cfg.Commands.Timeout,
		dep.Cfg.Commands.HistorySize,
		dep.Logger,
	)

	oauth := auth.NewGoogleOAuth(
		dep.Cfg.OAuth.GoogleClientID,
		dep.Cfg.OAuth.GoogleClientSecret,
		dep.Cfg.OAuth.RedirectURL,
		dep.Store,
	)
	sessions := auth.NewSessionManager(dep.Cfg.OAuth.SessionSecret, dep.Cfg.OAuth.SessionTTL)

	api := r.Group("/api")

	empirehttp.New(dep.Store, projectSvc, enhancementRepo, dep.Prober, empirehttp.Integrations{
		Gemini: dep.Cfg.GeminiConfigured(),
		GitHub: dep.Cfg.GitHubConfigured(),
		OAuth:  dep.Cfg.OAuthConfigured(),
	}).Register(api)

	projhttp.New(projectSvc).Register(api.Group("/projects"))

	mj := api.Group("/musicjam")
	musicjamhttp.New(musicjamSvc).Register(mj)
	enhhttp.New(enhancementRepo).Register(mj.Group("/enhancements"))

	aihttp.New(ai.NewService(dep.Gemini, enhancementRepo)).Register(api.Group("/ai"))

	gh := api.Group("/github")
	githubhttp.New(dep.GitHub).Register(gh)

	deployHandler := deployhttp.New(deploySvc)
	deployHandler.RegisterProjectDeploy(gh)
	deployHandler.Register(api.Group("/deploy"))

	authhttp.New(oauth, sessions).Register(api.Group("/oauth/google"))

	cmdhttp.New(commandSvc).Register(api.Group("/commands"))

	if dir := dep.Cfg.Server.StaticDir; dir != "" {
		r.NoRoute(spaFallback(dir))
	}

	return r, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	if slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

// spaFallback serves the built frontend for any route gin does not know,
// handing index.html to client-side routes. API misses stay JSON.
func spaFallback(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		file := filepath.Join(dir, filepath.Clean(c.Request.URL.Path))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		c.File(filepath.Join(dir, "index.html"))
	}
}
