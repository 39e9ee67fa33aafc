package activity

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/auditdesk/auditdesk/internal/kvstore"
)

// ActivityRepository defines data access for the activity log. The whole log
// lives under one storage key as a JSON array, so access is load/replace
// rather than row-at-a-time.
type ActivityRepository interface {
	// Load returns the persisted log, newest first. A missing key yields an
	// empty slice and no error; a corrupt or unreadable value is an error.
	Load(ctx context.Context) ([]Activity, error)

	// Replace persists the given log, overwriting the previous array.
	Replace(ctx context.Context, entries []Activity) error

	// Clear removes the storage key entirely.
	Clear(ctx context.Context) error
}

// activityRepository implements ActivityRepository over the key-value store.
type activityRepository struct {
	store kvstore.Store
	key   string
}

// NewActivityRepository creates a repository persisting under the given key.
func NewActivityRepository(store kvstore.Store, key string) ActivityRepository {
	return &activityRepository{store: store, key: key}
}

// Load reads and decodes the activity array. Timestamps are rehydrated from
// their RFC 3339 string form by the JSON decoder.
func (r *activityRepository) Load(ctx context.Context) ([]Activity, error) {
	raw, err := r.store.Get(ctx, r.key)
	if err == kvstore.ErrNotFound {
		return []Activity{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading activities: %w", err)
	}

	var entries []Activity
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("decoding activities: %w", err)
	}
	return entries, nil
}

// Replace encodes and persists the full log.
func (r *activityRepository) Replace(ctx context.Context, entries []Activity) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encoding activities: %w", err)
	}
	if err := r.store.Set(ctx, r.key, string(data)); err != nil {
		return fmt.Errorf("persisting activities: %w", err)
	}
	return nil
}

// Clear deletes the storage key. A subsequent Load returns an empty log.
func (r *activityRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, r.key); err != nil {
		return fmt.Errorf("clearing activities: %w", err)
	}
	return nil
}
