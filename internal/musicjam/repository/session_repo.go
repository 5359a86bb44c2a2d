package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/docstore"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/musicjam/domain"
)

// SessionRepository handles document store operations for jam sessions
type SessionRepository struct {
	store *docstore.Store
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(store *docstore.Store) *SessionRepository {
	return &SessionRepository{store: store}
}

// Create stores a new jam session
func (r *SessionRepository) Create(ctx context.Context, session *domain.JamSession) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	now := time.Now()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	session.UpdatedAt = now
	if session.Participants == nil {
		session.Participants = []string{}
	}
	if session.Genres == nil {
		session.Genres = []string{}
	}

	return r.store.Insert(ctx, docstore.CollectionJamSessions, session.ID, session)
}

// GetByID retrieves a jam session by its ID
func (r *SessionRepository) GetByID(ctx context.Context, id string) (*domain.JamSession, error) {
	var session domain.JamSession
	err := r.store.Get(ctx, docstore.CollectionJamSessions, id, &session)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Replace overwrites a jam session in full, keeping its original ID and
// creation time.
func (r *SessionRepository) Replace(ctx context.Context, session *domain.JamSession) error {
	existing, err := r.GetByID(ctx, session.ID)
	if err != nil {
		return err
	}

	session.CreatedAt = existing.CreatedAt
	session.UpdatedAt = time.Now()
	if session.Participants == nil {
		session.Participants = existing.Participants
	}
	if session.Genres == nil {
		session.Genres = []string{}
	}

	err = r.store.Replace(ctx, docstore.CollectionJamSessions, session.ID, session)
	if errors.Is(err, docstore.ErrNotFound) {
		return domain.ErrSessionNotFound
	}
	return err
}

// List returns all stored jam sessions in no particular order.
func (r *SessionRepository) List(ctx context.Context) ([]domain.JamSession, error) {
	raws, err := r.store.List(ctx, docstore.CollectionJamSessions)
	if err != nil {
		return nil, err
	}

	sessions := make([]domain.JamSession, 0, len(raws))
	for _, raw := range raws {
		var s domain.JamSession
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("failed to decode jam session: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, nil
}
