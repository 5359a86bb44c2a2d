package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/docstore"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/enhancements/domain"
)

const maxEnhancementList = 100

// EnhancementRepository handles document store operations for AI enhancements
type EnhancementRepository struct {
	store *docstore.Store
}

// NewEnhancementRepository creates a new EnhancementRepository
func NewEnhancementRepository(store *docstore.Store) *EnhancementRepository {
	return &EnhancementRepository{store: store}
}

// Create stores a new enhancement record
func (r *EnhancementRepository) Create(ctx context.Context, enhancement *domain.Enhancement) error {
	if enhancement.ID == "" {
		enhancement.ID = uuid.New().String()
	}
	if enhancement.CreatedAt.IsZero() {
		enhancement.CreatedAt = time.Now()
	}
	if enhancement.ImplementationStatus == "" {
		enhancement.ImplementationStatus = domain.StatusPlanned
	}

	return r.store.Insert(ctx, docstore.CollectionEnhancements, enhancement.ID, enhancement)
}

// List returns stored enhancements ordered by creation time, capped at 100.
func (r *EnhancementRepository) List(ctx context.Context) ([]domain.Enhancement, error) {
	raws, err := r.store.List(ctx, docstore.CollectionEnhancements)
	if err != nil {
		return nil, err
	}

	enhancements := make([]domain.Enhancement, 0, len(raws))
	for _, raw := range raws {
		var e domain.Enhancement
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, fmt.Errorf("failed to decode enhancement: %w", err)
		}
		enhancements = append(enhancements, e)
	}

	sort.Slice(enhancements, func(i, j int) bool {
		return enhancements[i].CreatedAt.Before(enhancements[j].CreatedAt)
	})

	if len(enhancements) > maxEnhancementList {
		enhancements = enhancements[:maxEnhancementList]
	}

	return enhancements, nil
}

// Count returns the number of stored enhancements.
func (r *EnhancementRepository) Count(ctx context.Context) (int64, error) {
	return r.store.Count(ctx, docstore.CollectionEnhancements)
}
