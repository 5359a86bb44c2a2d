package http

import "github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/musicjam/service"

// Handler bundles the dependencies for MusicJam HTTP endpoints.
type Handler struct {
	service *service.MusicJamService
}

func New(service *service.MusicJamService) *Handler {
	return &Handler{service: service}
}

type sessionReq struct {
	Title           string   `json:"title" binding:"required"`
	Description     string   `json:"description"`
	Location        string   `json:"location" binding:"required"`
	MaxParticipants int      `json:"max_participants" binding:"omitempty,gte=1"`
	Participants    []string `json:"participants"`
	Date            string   `json:"date" binding:"required"`
	StartTime       string   `json:"start_time" binding:"required"`
	EndTime         string   `json:"end_time"`
	SkillLevel      string   `json:"skill_level" binding:"required,oneof=Beginner Intermediate Advanced 'All Levels'"`
	Genres          []string `json:"genres" binding:"omitempty,dive,jamgenre"`
}

type tabReq struct {
	Title      string `json:"title" binding:"required"`
	Artist     string `json:"artist"`
	TabURL     string `json:"tab_url"`
	YouTubeURL string `json:"youtube_url"`
}

type playlistReq struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Tabs        []tabReq `json:"tabs" binding:"omitempty,dive"`
	Genres      []string `json:"genres"`
}
