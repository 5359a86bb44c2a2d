package http

import "github.com/gin-gonic/gin"

// Register attaches the dashboard status routes to the /api group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.root)
	rg.GET("/status", h.status)
	rg.GET("/empire/overview", h.overview)
}
