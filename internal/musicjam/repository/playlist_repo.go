package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/docstore"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/musicjam/domain"
)

// PlaylistRepository handles document store operations for tab playlists
type PlaylistRepository struct {
	store *docstore.Store
}

// NewPlaylistRepository creates a new PlaylistRepository
func NewPlaylistRepository(store *docstore.Store) *PlaylistRepository {
	return &PlaylistRepository{store: store}
}

// Create stores a new playlist
func (r *PlaylistRepository) Create(ctx context.Context, playlist *domain.Playlist) error {
	if playlist.ID == "" {
		playlist.ID = uuid.New().String()
	}
	now := time.Now()
	if playlist.CreatedAt.IsZero() {
		playlist.CreatedAt = now
	}
	playlist.UpdatedAt = now
	if playlist.Tabs == nil {
		playlist.Tabs = []domain.Tab{}
	}

	return r.store.Insert(ctx, docstore.CollectionPlaylists, playlist.ID, playlist)
}

// GetByID retrieves a playlist by its ID
func (r *PlaylistRepository) GetByID(ctx context.Context, id string) (*domain.Playlist, error) {
	var playlist domain.Playlist
	err := r.store.Get(ctx, docstore.CollectionPlaylists, id, &playlist)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, domain.ErrPlaylistNotFound
	}
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

// Replace overwrites a playlist in full, keeping its original ID and
// creation time.
func (r *PlaylistRepository) Replace(ctx context.Context, playlist *domain.Playlist) error {
	existing, err := r.GetByID(ctx, playlist.ID)
	if err != nil {
		return err
	}

	playlist.CreatedAt = existing.CreatedAt
	playlist.UpdatedAt = time.Now()
	if playlist.Tabs == nil {
		playlist.Tabs = []domain.Tab{}
	}

	err = r.store.Replace(ctx, docstore.CollectionPlaylists, playlist.ID, playlist)
	if errors.Is(err, docstore.ErrNotFound) {
		return domain.ErrPlaylistNotFound
	}
	return err
}

// List returns playlists ordered by creation time.
func (r *PlaylistRepository) List(ctx context.Context) ([]domain.Playlist, error) {
	raws, err := r.store.List(ctx, docstore.CollectionPlaylists)
	if err != nil {
		return nil, err
	}

	playlists := make([]domain.Playlist, 0, len(raws))
	for _, raw := range raws {
		var p domain.Playlist
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("failed to decode playlist: %w", err)
		}
		playlists = append(playlists, p)
	}

	sort.Slice(playlists, func(i, j int) bool {
		return playlists[i].CreatedAt.Before(playlists[j].CreatedAt)
	})

	return playlists, nil
}
