package reports

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/auditdesk/auditdesk/internal/kvstore"
)

// ReportRepository defines data access for stored reports. Like drafts and
// activities, the collection is one JSON array under one key.
type ReportRepository interface {
	// Load returns the persisted reports. A missing key yields an empty
	// slice and no error; a corrupt or unreadable value is an error.
	Load(ctx context.Context) ([]Report, error)

	// Replace persists the given collection, overwriting the previous array.
	Replace(ctx context.Context, reports []Report) error
}

// reportRepository implements ReportRepository over the key-value store.
type reportRepository struct {
	store kvstore.Store
	key   string
}

// NewReportRepository creates a repository persisting under the given key.
func NewReportRepository(store kvstore.Store, key string) ReportRepository {
	return &reportRepository{store: store, key: key}
}

func (r *reportRepository) Load(ctx context.Context) ([]Report, error) {
	raw, err := r.store.Get(ctx, r.key)
	if err == kvstore.ErrNotFound {
		return []Report{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading reports: %w", err)
	}

	var reports []Report
	if err := json.Unmarshal([]byte(raw), &reports); err != nil {
		return nil, fmt.Errorf("decoding reports: %w", err)
	}
	return reports, nil
}

func (r *reportRepository) Replace(ctx context.Context, reports []Report) error {
	data, err := json.Marshal(reports)
	if err != nil {
		return fmt.Errorf("encoding reports: %w", err)
	}
	if err := r.store.Set(ctx, r.key, string(data)); err != nil {
		return fmt.Errorf("persisting reports: %w", err)
	}
	return nil
}
