package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyNamespace = "empire:"

// Collection names used across the dashboard.
const (
	CollectionProjects     = "projects"
	CollectionEnhancements = "enhancements"
	CollectionJamSessions  = "jamsessions"
	CollectionPlaylists    = "playlists"
	CollectionDeployments  = "deployments"
)

var (
	// ErrNotFound is returned when no document exists under the given ID.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicateID is returned when inserting a document whose ID is taken.
	ErrDuplicateID = errors.New("document id already exists")
)

// Store persists JSON documents in Redis, one key per document plus a set
// of IDs per collection so the collection can be enumerated.
type Store struct {
	client *redis.Client
}

// New creates a Store backed by the given Redis client.
func New(client *redis.Client) *Store {
	return &Store{client: client}
}

// Ping verifies connectivity to the backing store.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Insert stores a new document. IDs are unique per collection; inserting an
// existing ID fails with ErrDuplicateID.
func (s *Store) Insert(ctx context.Context, collection, id string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	ok, err := s.client.SetNX(ctx, s.docKey(collection, id), data, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}
	if !ok {
		return ErrDuplicateID
	}

	if err := s.client.SAdd(ctx, s.indexKey(collection), id).Err(); err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}

	return nil
}

// Get loads the document with the given ID into out.
func (s *Store) Get(ctx context.Context, collection, id string, out any) error {
	data, err := s.client.Get(ctx, s.docKey(collection, id)).Result()
	if err == redis.Nil {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	if err := json.Unmarshal([]byte(data), out); err != nil {
		return fmt.Errorf("failed to unmarshal document: %w", err)
	}

	return nil
}

// Replace overwrites an existing document in full. Replacing an ID that was
// never inserted fails with ErrNotFound.
func (s *Store) Replace(ctx context.Context, collection, id string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	ok, err := s.client.SetXX(ctx, s.docKey(collection, id), data, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to replace document: %w", err)
	}
	if !ok {
		return ErrNotFound
	}

	return nil
}

// List returns the raw JSON of every document in the collection. Order is
// unspecified; callers sort as needed.
func (s *Store) List(ctx context.Context, collection string) ([][]byte, error) {
	ids, err := s.client.SMembers(ctx, s.indexKey(collection)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list collection: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.docKey(collection, id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load documents: %w", err)
	}

	docs := make([][]byte, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Index entry without a document, e.g. removed concurrently.
			continue
		}
		docs = append(docs, []byte(raw))
	}

	return docs, nil
}

// Count returns the number of documents in the collection.
func (s *Store) Count(ctx context.Context, collection string) (int64, error) {
	n, err := s.client.SCard(ctx, s.indexKey(collection)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count collection: %w", err)
	}
	return n, nil
}

// SetKV stores a transient string value with a TTL, used for OAuth state
// nonces and cached probe results.
func (s *Store) SetKV(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := s.client.Set(ctx, keyNamespace+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}
	return nil
}

// GetKV loads a transient string value. Missing or expired keys return
// ErrNotFound.
func (s *Store) GetKV(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, keyNamespace+key).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get value: %w", err)
	}
	return value, nil
}

// DelKV removes a transient value. Deleting a missing key is not an error.
func (s *Store) DelKV(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyNamespace+key).Err(); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}
	return nil
}

func (s *Store) docKey(collection, id string) string {
	return fmt.Sprintf("%s%s:%s", keyNamespace, collection, id)
}

func (s *Store) indexKey(collection string) string {
	return fmt.Sprintf("%s%s:ids", keyNamespace, collection)
}
