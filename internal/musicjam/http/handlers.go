package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/musicjam/domain"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/musicjam/service"
)

func (h *Handler) genres(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"genres": h.service.Genres()})
}

func (h *Handler) listSessions(c *gin.Context) {
	filter := service.SessionFilter{
		Status: c.Query("status"),
		Genre:  c.Query("genre"),
		SortBy: c.DefaultQuery("sort_by", "date"),
	}

	sessions, err := h.service.ListSessions(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch jam sessions: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"jam_sessions": sessions})
}

func (h *Handler) createSession(c *gin.Context) {
	var req sessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid jam session: " + err.Error()})
		return
	}

	session := req.toDomain("")
	if err := h.service.CreateSession(c.Request.Context(), session); err != nil {
		if errors.Is(err, domain.ErrUnknownGenre) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid jam session: unknown genre"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create jam session: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *Handler) getSession(c *gin.Context) {
	session, err := h.service.GetSession(c.Request.Context(), c.Param("session_id"))
	if errors.Is(err, domain.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Jam session not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch jam session: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *Handler) updateSession(c *gin.Context) {
	var req sessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid jam session: " + err.Error()})
		return
	}

	session := req.toDomain(c.Param("session_id"))
	err := h.service.UpdateSession(c.Request.Context(), session)
	if errors.Is(err, domain.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Jam session not found"})
		return
	}
	if errors.Is(err, domain.ErrUnknownGenre) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid jam session: unknown genre"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update jam session: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *Handler) listPlaylists(c *gin.Context) {
	playlists, err := h.service.ListPlaylists(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch playlists: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"playlists": playlists})
}

func (h *Handler) createPlaylist(c *gin.Context) {
	var req playlistReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid playlist: " + err.Error()})
		return
	}

	playlist := req.toDomain("")
	if err := h.service.CreatePlaylist(c.Request.Context(), playlist); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create playlist: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, playlist)
}

func (h *Handler) getPlaylist(c *gin.Context) {
	playlist, err := h.service.GetPlaylist(c.Request.Context(), c.Param("playlist_id"))
	if errors.Is(err, domain.ErrPlaylistNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Playlist not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch playlist: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, playlist)
}

func (h *Handler) updatePlaylist(c *gin.Context) {
	var req playlistReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid playlist: " + err.Error()})
		return
	}

	playlist := req.toDomain(c.Param("playlist_id"))
	err := h.service.UpdatePlaylist(c.Request.Context(), playlist)
	if errors.Is(err, domain.ErrPlaylistNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Playlist not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update playlist: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, playlist)
}

func (r *sessionReq) toDomain(id string) *domain.JamSession {
	return &domain.JamSession{
		ID:              id,
		Title:           r.Title,
		Description:     r.Description,
		Location:        r.Location,
		MaxParticipants: r.MaxParticipants,
		Participants:    r.Participants,
		Date:            r.Date,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		SkillLevel:      r.SkillLevel,
		Genres:          r.Genres,
	}
}

func (r *playlistReq) toDomain(id string) *domain.Playlist {
	tabs := make([]domain.Tab, 0, len(r.Tabs))
	for _, t := range r.Tabs {
		tabs = append(tabs, domain.Tab{
			Title:      t.Title,
			Artist:     t.Artist,
			TabURL:     t.TabURL,
			YouTubeURL: t.YouTubeURL,
		})
	}
	return &domain.Playlist{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		Tabs:        tabs,
		Genres:      r.Genres,
	}
}
