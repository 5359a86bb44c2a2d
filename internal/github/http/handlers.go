package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/github"
)

// Handler serves the GitHub proxy endpoints. A nil client means the
// integration is not configured.
type Handler struct {
	client *github.Client
}

func New(client *github.Client) *Handler {
	return &Handler{client: client}
}

// Register attaches GitHub routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/repositories", h.repositories)
}

func (h *Handler) repositories(c *gin.Context) {
	if h.client == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "GitHub integration not configured"})
		return
	}

	repos, err := h.client.ListRepositories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "GitHub API error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"repositories": repos})
}
