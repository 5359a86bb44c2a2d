package http

import "github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/commands/service"

// Handler bundles the dependencies for command HTTP endpoints.
type Handler struct {
	service *service.CommandService
}

func New(service *service.CommandService) *Handler {
	return &Handler{service: service}
}

type analyzeRequest struct {
	Request   string `json:"request" binding:"required"`
	Elaborate bool   `json:"elaborate"`
}

type executeRequest struct {
	Command string `json:"command" binding:"required"`
	Confirm bool   `json:"confirm"`
}
