package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/musicjam/domain"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/musicjam/repository"
)

// SessionFilter narrows and orders the jam session listing. Zero values and
// the "All" / "All Genres" selectors disable the respective filter.
type SessionFilter struct {
	Status string
	Genre  string
	SortBy string // date (default) or popularity
}

// MusicJamService handles jam session and playlist business logic
type MusicJamService struct {
	sessions  *repository.SessionRepository
	playlists *repository.PlaylistRepository
}

// NewMusicJamService creates a new MusicJam service
func NewMusicJamService(sessions *repository.SessionRepository, playlists *repository.PlaylistRepository) *MusicJamService {
	return &MusicJamService{
		sessions:  sessions,
		playlists: playlists,
	}
}

// Genres returns the fixed genre vocabulary.
func (s *MusicJamService) Genres() []string {
	return domain.Genres()
}

// CreateSession validates and stores a new jam session.
func (s *MusicJamService) CreateSession(ctx context.Context, session *domain.JamSession) error {
	for _, g := range session.Genres {
		if !domain.IsKnownGenre(g) {
			return domain.ErrUnknownGenre
		}
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return err
	}

	session.Status = domain.DeriveStatus(session.Date, session.StartTime, session.EndTime, time.Now())
	return nil
}

// GetSession returns a single jam session with its current status.
func (s *MusicJamService) GetSession(ctx context.Context, id string) (*domain.JamSession, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	session.Status = domain.DeriveStatus(session.Date, session.StartTime, session.EndTime, time.Now())
	return session, nil
}

// UpdateSession replaces a jam session in full.
func (s *MusicJamService) UpdateSession(ctx context.Context, session *domain.JamSession) error {
	for _, g := range session.Genres {
		if !domain.IsKnownGenre(g) {
			return domain.ErrUnknownGenre
		}
	}

	if err := s.sessions.Replace(ctx, session); err != nil {
		return err
	}

	session.Status = domain.DeriveStatus(session.Date, session.StartTime, session.EndTime, time.Now())
	return nil
}

// ListSessions returns jam sessions matching the filter, with statuses
// derived at read time.
func (s *MusicJamService) ListSessions(ctx context.Context, filter SessionFilter) ([]domain.JamSession, error) {
	sessions, err := s.sessions.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	filtered := make([]domain.JamSession, 0, len(sessions))
	for i := range sessions {
		sessions[i].Status = domain.DeriveStatus(sessions[i].Date, sessions[i].StartTime, sessions[i].EndTime, now)

		if wantStatus(filter.Status) && sessions[i].Status != filter.Status {
			continue
		}
		if wantGenre(filter.Genre) && !hasGenre(sessions[i].Genres, filter.Genre) {
			continue
		}
		filtered = append(filtered, sessions[i])
	}

	loc := now.Location()
	switch filter.SortBy {
	case "popularity":
		sort.SliceStable(filtered, func(i, j int) bool {
			pi, pj := len(filtered[i].Participants), len(filtered[j].Participants)
			if pi != pj {
				return pi > pj
			}
			return filtered[i].StartsAt(loc).Before(filtered[j].StartsAt(loc))
		})
	default:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].StartsAt(loc).Before(filtered[j].StartsAt(loc))
		})
	}

	return filtered, nil
}

// CreatePlaylist stores a new tab playlist.
func (s *MusicJamService) CreatePlaylist(ctx context.Context, playlist *domain.Playlist) error {
	return s.playlists.Create(ctx, playlist)
}

// GetPlaylist returns a single playlist.
func (s *MusicJamService) GetPlaylist(ctx context.Context, id string) (*domain.Playlist, error) {
	return s.playlists.GetByID(ctx, id)
}

// UpdatePlaylist replaces a playlist in full.
func (s *MusicJamService) UpdatePlaylist(ctx context.Context, playlist *domain.Playlist) error {
	return s.playlists.Replace(ctx, playlist)
}

// ListPlaylists returns all playlists.
func (s *MusicJamService) ListPlaylists(ctx context.Context) ([]domain.Playlist, error) {
	return s.playlists.List(ctx)
}

func wantStatus(status string) bool {
	return status != "" && !strings.EqualFold(status, "all")
}

func wantGenre(genre string) bool {
	return genre != "" && !strings.EqualFold(genre, "all genres")
}

func hasGenre(genres []string, genre string) bool {
	for _, g := range genres {
		if g == genre {
			return true
		}
	}
	return false
}
