package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/github"
	projdomain "github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/projects/domain"
)

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	record, err := h.service.Analyze(c.Request.Context(), req.Repository)
	if errors.Is(err, github.ErrNotConfigured) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "GitHub integration not configured"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Deployment analysis failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *Handler) autonomous(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	record, err := h.service.Autonomous(c.Request.Context(), req.Repository)
	if errors.Is(err, github.ErrNotConfigured) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "GitHub integration not configured"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Autonomous deployment failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *Handler) status(c *gin.Context) {
	report, err := h.service.Status(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch deployment status: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *Handler) deployProject(c *gin.Context) {
	var req projectDeployRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	project, err := h.service.DeployProject(c.Request.Context(), req.ProjectName, req.RepositoryURL, req.Description)
	if errors.Is(err, projdomain.ErrProjectAlreadyExists) {
		c.JSON(http.StatusConflict, gin.H{"error": "Project already exists"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start deployment: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Deployment initiated",
		"project_id": project.ID,
		"status":     project.Status,
	})
}
