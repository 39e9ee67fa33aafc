package activity

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/auditdesk/auditdesk/internal/apperror"
)

// AddInput holds the caller-supplied fields for a new activity entry.
// ID and Timestamp are assigned by the service.
type AddInput struct {
	Type        Type     `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Metadata    Metadata `json:"metadata,omitzero"`
}

// ActivityService handles business logic for the activity log. Mutations are
// serialized on an internal mutex so two concurrent appends cannot both read
// the same snapshot and silently drop one another's entry.
type ActivityService interface {
	// List returns the log, newest first. Read failures degrade to an empty
	// log: they are logged, never surfaced, so a corrupt value cannot take
	// the dashboard down.
	List(ctx context.Context) []Activity

	// Add creates a new entry at the front of the log, truncates the log to
	// the retention cap, persists it, and returns the created entry.
	// Persistence failures propagate -- callers need to know the append did
	// not take effect.
	Add(ctx context.Context, input AddInput) (*Activity, error)

	// Clear removes the whole log. Failures are logged and swallowed.
	Clear(ctx context.Context)
}

// activityService implements ActivityService.
type activityService struct {
	repo ActivityRepository

	// mu serializes the load-mutate-persist cycle of Add. Without it two
	// concurrent appends race and the second write overwrites the first.
	mu sync.Mutex
}

// NewActivityService creates a new activity service with the given repository.
func NewActivityService(repo ActivityRepository) ActivityService {
	return &activityService{repo: repo}
}

// List returns the persisted log, or an empty slice when it cannot be read.
func (s *activityService) List(ctx context.Context) []Activity {
	entries, err := s.repo.Load(ctx)
	if err != nil {
		slog.Error("failed to load activity log", slog.Any("error", err))
		return []Activity{}
	}
	return entries
}

// Add validates the type, stamps id and timestamp, prepends the entry, and
// truncates the log to maxEntries before persisting. The entry beyond the
// cap that gets dropped is always the single oldest one.
func (s *activityService) Add(ctx context.Context, input AddInput) (*Activity, error) {
	if !input.Type.Valid() {
		return nil, apperror.NewBadRequest(fmt.Sprintf("unknown activity type %q", input.Type))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.repo.Load(ctx)
	if err != nil {
		// Same degradation as List: a corrupt log must not block new
		// activity; start over from empty.
		slog.Error("failed to load activity log, starting fresh", slog.Any("error", err))
		entries = []Activity{}
	}

	entry := Activity{
		ID:          uuid.NewString(),
		Type:        input.Type,
		Title:       input.Title,
		Description: input.Description,
		Timestamp:   time.Now().UTC(),
		Metadata:    input.Metadata,
	}

	entries = append([]Activity{entry}, entries...)
	if len(entries) > maxEntries {
		entries = entries[:maxEntries]
	}

	if err := s.repo.Replace(ctx, entries); err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("appending activity: %w", err))
	}

	return &entry, nil
}

// Clear removes the storage key. Errors are logged, not returned: clearing
// the feed is a convenience action and must never surface a failure.
func (s *activityService) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Clear(ctx); err != nil {
		slog.Error("failed to clear activity log", slog.Any("error", err))
	}
}
