package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/ai"
)

// Handler bundles the dependencies for AI HTTP endpoints.
type Handler struct {
	service *ai.Service
}

func New(service *ai.Service) *Handler {
	return &Handler{service: service}
}

// Register attaches AI routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/musicjam/enhance", h.enhance)
	rg.GET("/recommendations/music", h.recommendations)
}

type enhanceReq struct {
	MusicJamFeature string         `json:"musicjam_feature" binding:"required"`
	EnhancementType string         `json:"enhancement_type" binding:"required"`
	UserPreferences map[string]any `json:"user_preferences"`
}

func (h *Handler) enhance(c *gin.Context) {
	var req enhanceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid enhancement request: " + err.Error()})
		return
	}

	result, err := h.service.EnhanceMusicJam(c.Request.Context(), req.MusicJamFeature, req.EnhancementType, req.UserPreferences)
	if errors.Is(err, ai.ErrNotConfigured) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Gemini AI not configured"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI enhancement failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) recommendations(c *gin.Context) {
	mood := c.DefaultQuery("mood", "happy")
	genre := c.DefaultQuery("genre", "any")

	result, err := h.service.RecommendMusic(c.Request.Context(), mood, genre)
	if errors.Is(err, ai.ErrNotConfigured) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Gemini AI not configured"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Music recommendation failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
