package http

import "github.com/gin-gonic/gin"

// Register attaches MusicJam routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/genres", h.genres)

	rg.GET("/jam-sessions", h.listSessions)
	rg.POST("/jam-sessions", h.createSession)
	rg.GET("/jam-sessions/:session_id", h.getSession)
	rg.PUT("/jam-sessions/:session_id", h.updateSession)

	rg.GET("/playlists", h.listPlaylists)
	rg.POST("/playlists", h.createPlaylist)
	rg.GET("/playlists/:playlist_id", h.getPlaylist)
	rg.PUT("/playlists/:playlist_id", h.updatePlaylist)
}
