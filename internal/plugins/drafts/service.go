package drafts

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/auditdesk/auditdesk/internal/apperror"
	"github.com/auditdesk/auditdesk/internal/plugins/activity"
	"github.com/auditdesk/auditdesk/internal/sanitize"
)

// DraftService handles business logic for the draft collection. Mutations
// are serialized on an internal mutex so two concurrent saves cannot both
// read the same snapshot and silently drop one another's draft.
//
// The error policy is deliberately asymmetric, carried over from the
// original client: Create and Update propagate persistence failures (the
// caller must know the write did not take effect), Delete converts them to
// a boolean failure result, and reads degrade to an empty collection.
type DraftService interface {
	// List returns all drafts in insertion order. Read failures degrade to
	// an empty collection: logged, never surfaced.
	List(ctx context.Context) []Draft

	// Create stores a new draft and appends a draft_saved activity
	// referencing it. Persistence failures propagate.
	Create(ctx context.Context, input CreateInput) (*Draft, error)

	// Update merges the set fields of input over the draft with the given
	// id, bumps UpdatedAt, and persists. Returns NotFound for an unknown id;
	// no activity is logged for updates.
	Update(ctx context.Context, id string, input UpdateInput) (*Draft, error)

	// Delete removes the draft with the given id and, if one was removed,
	// appends a draft_deleted activity referencing it. Deleting an unknown
	// id is a no-op success. The boolean reports whether the operation
	// completed without a storage error -- failures are logged, not returned.
	Delete(ctx context.Context, id string) bool
}

// draftService implements DraftService.
type draftService struct {
	repo     DraftRepository
	activity activity.ActivityService

	// mu serializes the load-mutate-persist cycle of all mutations.
	mu sync.Mutex
}

// NewDraftService creates a new draft service. Every save and delete writes
// one correlated entry through the given activity service.
func NewDraftService(repo DraftRepository, activitySvc activity.ActivityService) DraftService {
	return &draftService{repo: repo, activity: activitySvc}
}

// List returns the persisted collection, or an empty slice when it cannot
// be read.
func (s *draftService) List(ctx context.Context) []Draft {
	drafts, err := s.repo.Load(ctx)
	if err != nil {
		slog.Error("failed to load drafts", slog.Any("error", err))
		return []Draft{}
	}
	return drafts
}

// Create assigns a new id, stamps createdAt == updatedAt == now, appends the
// draft to the collection, persists it, and records a draft_saved activity.
func (s *draftService) Create(ctx context.Context, input CreateInput) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	drafts, err := s.repo.Load(ctx)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("loading drafts before create: %w", err))
	}

	now := time.Now().UTC()
	draft := Draft{
		ID:          uuid.NewString(),
		Title:       sanitize.Text(input.Title),
		Description: sanitize.Text(input.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
		Files:       sanitize.Strings(input.Files),
		Status:      input.Status,
	}
	if draft.Files == nil {
		draft.Files = []string{}
	}

	drafts = append(drafts, draft)
	if err := s.repo.Replace(ctx, drafts); err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("persisting draft: %w", err))
	}

	if _, err := s.activity.Add(ctx, activity.AddInput{
		Type:        activity.TypeDraftSaved,
		Title:       "Draft Saved",
		Description: fmt.Sprintf("Draft %q saved successfully", draft.Title),
		Metadata:    activity.Metadata{DraftID: draft.ID},
	}); err != nil {
		return nil, err
	}

	return &draft, nil
}

// Update locates the draft by id, merges the provided fields over it, bumps
// UpdatedAt, and persists the collection. CreatedAt is never touched.
func (s *draftService) Update(ctx context.Context, id string, input UpdateInput) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	drafts, err := s.repo.Load(ctx)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("loading drafts before update: %w", err))
	}

	idx := -1
	for i := range drafts {
		if drafts[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, apperror.NewNotFound("draft not found")
	}

	d := &drafts[idx]
	if input.Title != nil {
		d.Title = sanitize.Text(*input.Title)
	}
	if input.Description != nil {
		d.Description = sanitize.Text(*input.Description)
	}
	if input.Files != nil {
		d.Files = sanitize.Strings(*input.Files)
	}
	if input.Status != nil {
		d.Status = *input.Status
	}
	d.UpdatedAt = time.Now().UTC()

	if err := s.repo.Replace(ctx, drafts); err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("persisting draft update: %w", err))
	}

	updated := drafts[idx]
	return &updated, nil
}

// Delete filters the draft out of the collection and persists the result.
// A missing id still reports success -- the caller's goal (the draft is
// gone) is met either way. Only an actual storage failure reports false.
func (s *draftService) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	drafts, err := s.repo.Load(ctx)
	if err != nil {
		slog.Error("failed to load drafts before delete", slog.Any("error", err))
		return false
	}

	var deleted *Draft
	remaining := drafts[:0]
	for i := range drafts {
		if drafts[i].ID == id {
			d := drafts[i]
			deleted = &d
			continue
		}
		remaining = append(remaining, drafts[i])
	}

	if err := s.repo.Replace(ctx, remaining); err != nil {
		slog.Error("failed to persist draft deletion",
			slog.String("draft_id", id),
			slog.Any("error", err),
		)
		return false
	}

	if deleted != nil {
		if _, err := s.activity.Add(ctx, activity.AddInput{
			Type:        activity.TypeDraftDeleted,
			Title:       "Draft Deleted",
			Description: fmt.Sprintf("Draft %q deleted", deleted.Title),
			Metadata:    activity.Metadata{DraftID: id},
		}); err != nil {
			slog.Error("failed to record draft deletion activity",
				slog.String("draft_id", id),
				slog.Any("error", err),
			)
			return false
		}
	}

	return true
}
