package http

import "github.com/gin-gonic/gin"

// Register attaches deployment engine routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
	rg.POST("/autonomous", h.autonomous)
	rg.GET("/status", h.status)
}

// RegisterProjectDeploy attaches the simulated project deployment route,
// mounted under the GitHub group.
func (h *Handler) RegisterProjectDeploy(rg *gin.RouterGroup) {
	rg.POST("/deploy", h.deployProject)
}
