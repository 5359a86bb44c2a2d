package http

import (
	"github.com/gin-gonic/gin"

	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/auth/middleware"
)

// Register attaches Google OAuth routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/url", h.url)
	rg.GET("/callback", h.callback)
	rg.GET("/me", middleware.SessionAuth(h.sessions), h.me)
}
