package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/commands/domain"
)

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	analysis := h.service.Analyze(c.Request.Context(), req.Request, req.Elaborate)
	c.JSON(http.StatusOK, analysis)
}

func (h *Handler) execute(c *gin.Context) {
	var req executeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Execute(c.Request.Context(), req.Command, req.Confirm)
	if errors.Is(err, domain.ErrExecutionBlocked) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Dangerous commands are not executed"})
		return
	}
	if errors.Is(err, domain.ErrConfirmationRequired) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Confirmation required to execute this command"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Command execution failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) history(c *gin.Context) {
	history := h.service.History()
	c.JSON(http.StatusOK, gin.H{"history": history, "count": len(history)})
}
