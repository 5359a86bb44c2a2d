package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/deploy/domain"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/docstore"
)

const maxRecordList = 20

// DeploymentRepository persists deployment run records.
type DeploymentRepository struct {
	store *docstore.Store
}

// NewDeploymentRepository creates a new deployment repository
func NewDeploymentRepository(store *docstore.Store) *DeploymentRepository {
	return &DeploymentRepository{store: store}
}

// Create stores a finished or in-flight deployment record.
func (r *DeploymentRepository) Create(ctx context.Context, record *domain.Record) error {
	if err := r.store.Insert(ctx, docstore.CollectionDeployments, record.ID, record); err != nil {
		return fmt.Errorf("failed to store deployment record: %w", err)
	}
	return nil
}

// List returns the most recent deployment records, newest first.
func (r *DeploymentRepository) List(ctx context.Context) ([]domain.Record, error) {
	raw, err := r.store.List(ctx, docstore.CollectionDeployments)
	if err != nil {
		return nil, fmt.Errorf("failed to list deployment records: %w", err)
	}

	records := make([]domain.Record, 0, len(raw))
	for _, data := range raw {
		var record domain.Record
		if err := json.Unmarshal(data, &record); err != nil {
			continue
		}
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].StartTime.After(records[j].StartTime)
	})
	if len(records) > maxRecordList {
		records = records[:maxRecordList]
	}
	return records, nil
}

// Count returns the total number of stored deployment records.
func (r *DeploymentRepository) Count(ctx context.Context) (int64, error) {
	return r.store.Count(ctx, docstore.CollectionDeployments)
}

// CountActive returns how many recent records are still in the started state.
func (r *DeploymentRepository) CountActive(ctx context.Context) (int, error) {
	records, err := r.List(ctx)
	if err != nil {
		return 0, err
	}
	active := 0
	for _, record := range records {
		if record.Status == domain.StatusStarted {
			active++
		}
	}
	return active, nil
}
