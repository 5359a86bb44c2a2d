package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const bannerMessage = "🚀 YazWho Empire Dashboard is operational! Ready to dominate the music universe!"

func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, statusResponse{
		Status:    "success",
		Message:   bannerMessage,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) status(c *gin.Context) {
	integrations := map[string]string{
		"redis":        "connected",
		"gemini_ai":    "missing_key",
		"github":       "missing_token",
		"google_oauth": "missing_credentials",
	}
	if err := h.store.Ping(c.Request.Context()); err != nil {
		integrations["redis"] = "disconnected"
	}
	if h.integrations.Gemini {
		integrations["gemini_ai"] = "configured"
	}
	if h.integrations.GitHub {
		integrations["github"] = "connected"
	}
	if h.integrations.OAuth {
		integrations["google_oauth"] = "configured"
	}

	encoded, _ := json.Marshal(integrations)
	c.JSON(http.StatusOK, statusResponse{
		Status:    "success",
		Message:   "Empire Dashboard Status: " + string(encoded),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) overview(c *gin.Context) {
	ctx := c.Request.Context()

	projectCount, err := h.projects.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Empire overview failed: " + err.Error()})
		return
	}
	enhancementCount, err := h.enhancements.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Empire overview failed: " + err.Error()})
		return
	}

	integrations := gin.H{
		"github":    "inactive",
		"ai_engine": "inactive",
		"oauth":     "inactive",
	}
	if h.integrations.GitHub {
		integrations["github"] = "active"
	}
	if h.integrations.Gemini {
		integrations["ai_engine"] = "gemini"
	}
	if h.integrations.OAuth {
		integrations["oauth"] = "google"
	}

	c.JSON(http.StatusOK, gin.H{
		"empire_status":    "operational",
		"musicjam_app":     h.prober.Status(ctx),
		"managed_projects": projectCount,
		"ai_enhancements":  enhancementCount,
		"integrations":     integrations,
		"timestamp":        time.Now().Format(time.RFC3339),
	})
}
