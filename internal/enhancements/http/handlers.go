package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/enhancements/repository"
)

// Handler serves the stored enhancement history.
type Handler struct {
	repo *repository.EnhancementRepository
}

func New(repo *repository.EnhancementRepository) *Handler {
	return &Handler{repo: repo}
}

// Register attaches enhancement routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
}

func (h *Handler) list(c *gin.Context) {
	enhancements, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch enhancements: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"enhancements": enhancements})
}
