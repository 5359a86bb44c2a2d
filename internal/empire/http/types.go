package http

import (
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/docstore"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/empire/probe"
	enhrepo "github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/enhancements/repository"
	projservice "github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/projects/service"
)

// Integrations reports which optional upstreams are configured.
type Integrations struct {
	Gemini bool
	GitHub bool
	OAuth  bool
}

// Handler bundles the dependencies for the dashboard status endpoints.
type Handler struct {
	store        *docstore.Store
	projects     *projservice.ProjectService
	enhancements *enhrepo.EnhancementRepository
	prober       *probe.Prober
	integrations Integrations
}

func New(store *docstore.Store, projects *projservice.ProjectService, enhancements *enhrepo.EnhancementRepository, prober *probe.Prober, integrations Integrations) *Handler {
	return &Handler{
		store:        store,
		projects:     projects,
		enhancements: enhancements,
		prober:       prober,
		integrations: integrations,
	}
}

// statusResponse mirrors the dashboard's banner payload.
type statusResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
