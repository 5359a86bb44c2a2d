package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authdomain "github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/auth/domain"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/auth/middleware"
)

func (h *Handler) url(c *gin.Context) {
	if h.oauth == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Google OAuth not configured"})
		return
	}

	url, state, err := h.oauth.AuthURL(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build OAuth URL: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"oauth_url": url, "state": state})
}

func (h *Handler) callback(c *gin.Context) {
	if h.oauth == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Google OAuth not configured"})
		return
	}

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "code is required"})
		return
	}

	user, err := h.oauth.Exchange(c.Request.Context(), code, c.Query("state"))
	if errors.Is(err, authdomain.ErrInvalidState) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired OAuth state"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "OAuth callback failed: " + err.Error()})
		return
	}

	token, err := h.sessions.Issue(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue session: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (h *Handler) me(c *gin.Context) {
	value, ok := c.Get(middleware.ContextUserKey)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": value})
}
