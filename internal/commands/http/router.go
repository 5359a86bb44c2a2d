package http

import "github.com/gin-gonic/gin"

// Register attaches command routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
	rg.POST("/execute", h.execute)
	rg.GET("/history", h.history)
}
