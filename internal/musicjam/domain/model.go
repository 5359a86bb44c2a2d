package domain

import "time"

// JamSession is a scheduled music meetup.
type JamSession struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	Location        string    `json:"location"`
	MaxParticipants int       `json:"max_participants,omitempty"`
	Participants    []string  `json:"participants"`
	Date            string    `json:"date"`       // YYYY-MM-DD
	StartTime       string    `json:"start_time"` // HH:MM, 24h
	EndTime         string    `json:"end_time,omitempty"`
	SkillLevel      string    `json:"skill_level"`
	Genres          []string  `json:"genres"`
	Status          string    `json:"status"` // derived, never trusted from the client
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Tab is a single guitar tab reference inside a playlist.
type Tab struct {
	Title      string `json:"title"`
	Artist     string `json:"artist,omitempty"`
	TabURL     string `json:"tab_url,omitempty"`
	YouTubeURL string `json:"youtube_url,omitempty"`
}

// Playlist is an ordered collection of guitar tabs.
type Playlist struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Tabs        []Tab     `json:"tabs"`
	Genres      []string  `json:"genres,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Skill level constants
const (
	SkillBeginner     = "Beginner"
	SkillIntermediate = "Intermediate"
	SkillAdvanced     = "Advanced"
	SkillAllLevels    = "All Levels"
)
