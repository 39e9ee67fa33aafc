package drafts

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/auditdesk/auditdesk/internal/apperror"
	"github.com/auditdesk/auditdesk/internal/plugins/activity"
)

// --- Mock Repository ---

// mockDraftRepo implements DraftRepository for testing. By default it
// behaves like an empty, working store backed by the drafts slice.
type mockDraftRepo struct {
	drafts []Draft

	loadFn    func(ctx context.Context) ([]Draft, error)
	replaceFn func(ctx context.Context, drafts []Draft) error
}

func (m *mockDraftRepo) Load(ctx context.Context) ([]Draft, error) {
	if m.loadFn != nil {
		return m.loadFn(ctx)
	}
	return append([]Draft(nil), m.drafts...), nil
}

func (m *mockDraftRepo) Replace(ctx context.Context, drafts []Draft) error {
	if m.replaceFn != nil {
		return m.replaceFn(ctx, drafts)
	}
	m.drafts = append([]Draft(nil), drafts...)
	return nil
}

// --- Stub Activity Service ---

// stubActivity records appended activities so tests can assert the
// draft/activity correlation without touching real storage.
type stubActivity struct {
	added []activity.AddInput
	err   error
}

func (s *stubActivity) List(ctx context.Context) []activity.Activity { return nil }

func (s *stubActivity) Add(ctx context.Context, input activity.AddInput) (*activity.Activity, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.added = append(s.added, input)
	return &activity.Activity{ID: "act-1", Type: input.Type, Metadata: input.Metadata}, nil
}

func (s *stubActivity) Clear(ctx context.Context) {}

func newTestService() (DraftService, *mockDraftRepo, *stubActivity) {
	repo := &mockDraftRepo{}
	act := &stubActivity{}
	return NewDraftService(repo, act), repo, act
}

// --- Tests ---

func TestCreateStampsTimestampsAndOrder(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		d, err := svc.Create(ctx, CreateInput{
			Title:  fmt.Sprintf("Audit %d", i),
			Status: StatusDraft,
		})
		if err != nil {
			t.Fatalf("Create %d failed: %v", i, err)
		}
		if !d.CreatedAt.Equal(d.UpdatedAt) {
			t.Errorf("expected createdAt == updatedAt at creation, got %v / %v", d.CreatedAt, d.UpdatedAt)
		}
		if d.ID == "" {
			t.Error("expected a generated ID")
		}
	}

	got := svc.List(ctx)
	if len(got) != 5 {
		t.Fatalf("expected 5 drafts, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].CreatedAt.Before(got[i-1].CreatedAt) {
			t.Errorf("expected non-decreasing creation order at index %d", i)
		}
	}
}

func TestCreateAppendsDraftSavedActivity(t *testing.T) {
	svc, _, act := newTestService()

	d, err := svc.Create(context.Background(), CreateInput{
		Title:  "Q1 Audit",
		Files:  []string{"receipt.pdf", "inventory.jpg"},
		Status: StatusInProgress,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if len(act.added) != 1 {
		t.Fatalf("expected exactly 1 activity, got %d", len(act.added))
	}
	if act.added[0].Type != activity.TypeDraftSaved {
		t.Errorf("expected draft_saved activity, got %s", act.added[0].Type)
	}
	if act.added[0].Metadata.DraftID != d.ID {
		t.Errorf("expected activity metadata to reference draft %s, got %s", d.ID, act.added[0].Metadata.DraftID)
	}

	got := svc.List(context.Background())
	if len(got) != 1 || got[0].Title != "Q1 Audit" || len(got[0].Files) != 2 || got[0].Status != StatusInProgress {
		t.Errorf("persisted draft does not match input: %+v", got)
	}
}

func TestUpdateMergesOnlyProvidedFields(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	d, err := svc.Create(ctx, CreateInput{
		Title:       "Q1 Audit",
		Description: "first quarter",
		Files:       []string{"a.pdf"},
		Status:      StatusInProgress,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	status := StatusCompleted
	updated, err := svc.Update(ctx, d.ID, UpdateInput{Status: &status})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Status != StatusCompleted {
		t.Errorf("expected status completed, got %s", updated.Status)
	}
	if updated.Title != "Q1 Audit" || updated.Description != "first quarter" || len(updated.Files) != 1 {
		t.Errorf("untargeted fields changed: %+v", updated)
	}
	if !updated.CreatedAt.Equal(d.CreatedAt) {
		t.Errorf("createdAt must never change: %v -> %v", d.CreatedAt, updated.CreatedAt)
	}
	if updated.UpdatedAt.Before(d.UpdatedAt) {
		t.Errorf("updatedAt must not move backwards: %v -> %v", d.UpdatedAt, updated.UpdatedAt)
	}
}

func TestUpdateUnknownIDIsNotFound(t *testing.T) {
	svc, _, act := newTestService()

	title := "x"
	_, err := svc.Update(context.Background(), "missing", UpdateInput{Title: &title})
	if err == nil {
		t.Fatal("expected NotFound for unknown id")
	}
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Type != "not_found" {
		t.Errorf("expected not_found error, got %v", err)
	}
	if len(act.added) != 0 {
		t.Errorf("no activity should be logged for a failed update")
	}
}

func TestDeleteExistingDraft(t *testing.T) {
	svc, _, act := newTestService()
	ctx := context.Background()

	d, err := svc.Create(ctx, CreateInput{Title: "to delete", Status: StatusDraft})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	act.added = nil // Only interested in the delete's activity.

	if ok := svc.Delete(ctx, d.ID); !ok {
		t.Fatal("expected delete to succeed")
	}

	if got := svc.List(ctx); len(got) != 0 {
		t.Errorf("expected empty collection after delete, got %d", len(got))
	}
	if len(act.added) != 1 {
		t.Fatalf("expected exactly 1 draft_deleted activity, got %d", len(act.added))
	}
	if act.added[0].Type != activity.TypeDraftDeleted || act.added[0].Metadata.DraftID != d.ID {
		t.Errorf("unexpected delete activity: %+v", act.added[0])
	}
}

func TestDeleteUnknownIDIsNoOpSuccess(t *testing.T) {
	svc, _, act := newTestService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateInput{Title: "keep me", Status: StatusDraft}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	act.added = nil

	if ok := svc.Delete(ctx, "missing"); !ok {
		t.Error("deleting an unknown id must still report success")
	}
	if got := svc.List(ctx); len(got) != 1 {
		t.Errorf("collection must be unchanged, got %d drafts", len(got))
	}
	if len(act.added) != 0 {
		t.Errorf("no activity should be logged for a no-op delete")
	}
}

func TestDeleteReportsStorageFailureAsFalse(t *testing.T) {
	repo := &mockDraftRepo{
		drafts: []Draft{{ID: "d1", Title: "x"}},
		replaceFn: func(ctx context.Context, drafts []Draft) error {
			return errors.New("redis down")
		},
	}
	svc := NewDraftService(repo, &stubActivity{})

	if ok := svc.Delete(context.Background(), "d1"); ok {
		t.Error("expected false when persistence fails")
	}
}

func TestCreatePropagatesWriteFailure(t *testing.T) {
	repo := &mockDraftRepo{
		replaceFn: func(ctx context.Context, drafts []Draft) error {
			return errors.New("redis down")
		},
	}
	svc := NewDraftService(repo, &stubActivity{})

	if _, err := svc.Create(context.Background(), CreateInput{Title: "x"}); err == nil {
		t.Error("expected persistence failure to propagate from Create")
	}
}

func TestWritesRefuseCorruptCollection(t *testing.T) {
	repo := &mockDraftRepo{
		loadFn: func(ctx context.Context) ([]Draft, error) {
			return nil, errors.New("corrupt value")
		},
		replaceFn: func(ctx context.Context, drafts []Draft) error {
			t.Error("a failed load must not be overwritten")
			return nil
		},
	}
	svc := NewDraftService(repo, &stubActivity{})
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateInput{Title: "x"}); err == nil {
		t.Error("expected Create to fail when the stored collection cannot be read")
	}

	title := "y"
	if _, err := svc.Update(ctx, "d1", UpdateInput{Title: &title}); err == nil {
		t.Error("expected Update to fail when the stored collection cannot be read")
	}
}

func TestListSwallowsReadFailure(t *testing.T) {
	repo := &mockDraftRepo{
		loadFn: func(ctx context.Context) ([]Draft, error) {
			return nil, errors.New("corrupt value")
		},
	}
	svc := NewDraftService(repo, &stubActivity{})

	if got := svc.List(context.Background()); len(got) != 0 {
		t.Errorf("expected empty collection on read failure, got %d", len(got))
	}
}
