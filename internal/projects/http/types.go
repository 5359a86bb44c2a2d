package http

import "github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/projects/service"

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	service *service.ProjectService
}

func New(service *service.ProjectService) *Handler {
	return &Handler{service: service}
}
