package drafts

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/auditdesk/auditdesk/internal/kvstore"
)

// DraftRepository defines data access for the draft collection. The whole
// collection lives under one storage key as a JSON array, so access is
// load/replace rather than row-at-a-time.
type DraftRepository interface {
	// Load returns the persisted collection. A missing key yields an empty
	// slice and no error; a corrupt or unreadable value is an error.
	Load(ctx context.Context) ([]Draft, error)

	// Replace persists the given collection, overwriting the previous array.
	Replace(ctx context.Context, drafts []Draft) error
}

// draftRepository implements DraftRepository over the key-value store.
type draftRepository struct {
	store kvstore.Store
	key   string
}

// NewDraftRepository creates a repository persisting under the given key.
func NewDraftRepository(store kvstore.Store, key string) DraftRepository {
	return &draftRepository{store: store, key: key}
}

// Load reads and decodes the draft array. createdAt/updatedAt are rehydrated
// from their RFC 3339 string form by the JSON decoder.
func (r *draftRepository) Load(ctx context.Context) ([]Draft, error) {
	raw, err := r.store.Get(ctx, r.key)
	if err == kvstore.ErrNotFound {
		return []Draft{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading drafts: %w", err)
	}

	var drafts []Draft
	if err := json.Unmarshal([]byte(raw), &drafts); err != nil {
		return nil, fmt.Errorf("decoding drafts: %w", err)
	}
	return drafts, nil
}

// Replace encodes and persists the full collection.
func (r *draftRepository) Replace(ctx context.Context, drafts []Draft) error {
	data, err := json.Marshal(drafts)
	if err != nil {
		return fmt.Errorf("encoding drafts: %w", err)
	}
	if err := r.store.Set(ctx, r.key, string(data)); err != nil {
		return fmt.Errorf("persisting drafts: %w", err)
	}
	return nil
}
