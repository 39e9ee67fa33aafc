package activity

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/auditdesk/auditdesk/internal/apperror"
)

// --- Mock Repository ---

// mockActivityRepo implements ActivityRepository for testing. By default it
// behaves like an empty, working store backed by the entries slice.
type mockActivityRepo struct {
	entries []Activity

	loadFn    func(ctx context.Context) ([]Activity, error)
	replaceFn func(ctx context.Context, entries []Activity) error
	clearFn   func(ctx context.Context) error
}

func (m *mockActivityRepo) Load(ctx context.Context) ([]Activity, error) {
	if m.loadFn != nil {
		return m.loadFn(ctx)
	}
	return append([]Activity(nil), m.entries...), nil
}

func (m *mockActivityRepo) Replace(ctx context.Context, entries []Activity) error {
	if m.replaceFn != nil {
		return m.replaceFn(ctx, entries)
	}
	m.entries = append([]Activity(nil), entries...)
	return nil
}

func (m *mockActivityRepo) Clear(ctx context.Context) error {
	if m.clearFn != nil {
		return m.clearFn(ctx)
	}
	m.entries = nil
	return nil
}

// --- Tests ---

func TestAddStampsIDAndTimestamp(t *testing.T) {
	repo := &mockActivityRepo{}
	svc := NewActivityService(repo)

	entry, err := svc.Add(context.Background(), AddInput{
		Type:        TypeDraftSaved,
		Title:       "Draft Saved",
		Description: `Draft "Q1 Audit" saved successfully`,
		Metadata:    Metadata{DraftID: "d-123"},
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if entry.ID == "" {
		t.Error("expected a generated ID")
	}
	if entry.Timestamp.IsZero() {
		t.Error("expected a timestamp")
	}
	if entry.Metadata.DraftID != "d-123" {
		t.Errorf("expected metadata draftId d-123, got %q", entry.Metadata.DraftID)
	}

	got := svc.List(context.Background())
	if len(got) != 1 {
		t.Fatalf("expected 1 entry in the log, got %d", len(got))
	}
	if got[0].ID != entry.ID {
		t.Errorf("persisted entry does not match returned entry")
	}
}

func TestAddRejectsUnknownType(t *testing.T) {
	svc := NewActivityService(&mockActivityRepo{})

	_, err := svc.Add(context.Background(), AddInput{Type: "draft_exploded", Title: "x"})
	if err == nil {
		t.Fatal("expected error for unknown activity type")
	}

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Type != "bad_request" {
		t.Errorf("expected bad_request error, got %v", err)
	}
}

func TestCapEvictsOldestOnly(t *testing.T) {
	repo := &mockActivityRepo{}
	svc := NewActivityService(repo)
	ctx := context.Background()

	for i := 0; i < 55; i++ {
		_, err := svc.Add(ctx, AddInput{
			Type:  TypeReportViewed,
			Title: fmt.Sprintf("entry %d", i),
		})
		if err != nil {
			t.Fatalf("Add %d failed: %v", i, err)
		}
	}

	got := svc.List(ctx)
	if len(got) != 50 {
		t.Fatalf("expected log capped at 50, got %d", len(got))
	}

	// Most recent first: the newest insertion is at the front, and the five
	// oldest entries (0-4) are gone.
	if got[0].Title != "entry 54" {
		t.Errorf("expected newest entry first, got %q", got[0].Title)
	}
	if got[49].Title != "entry 5" {
		t.Errorf("expected entry 5 as the oldest survivor, got %q", got[49].Title)
	}
	for _, e := range got {
		for i := 0; i < 5; i++ {
			if e.Title == fmt.Sprintf("entry %d", i) {
				t.Errorf("entry %d should have been evicted", i)
			}
		}
	}
}

func TestListSwallowsReadFailure(t *testing.T) {
	repo := &mockActivityRepo{
		loadFn: func(ctx context.Context) ([]Activity, error) {
			return nil, errors.New("corrupt value")
		},
	}
	svc := NewActivityService(repo)

	got := svc.List(context.Background())
	if len(got) != 0 {
		t.Errorf("expected empty log on read failure, got %d entries", len(got))
	}
}

func TestAddPropagatesWriteFailure(t *testing.T) {
	repo := &mockActivityRepo{
		replaceFn: func(ctx context.Context, entries []Activity) error {
			return errors.New("disk full")
		},
	}
	svc := NewActivityService(repo)

	if _, err := svc.Add(context.Background(), AddInput{Type: TypeDraftSaved, Title: "x"}); err == nil {
		t.Error("expected persistence failure to propagate")
	}
}

func TestClearSwallowsFailure(t *testing.T) {
	repo := &mockActivityRepo{
		clearFn: func(ctx context.Context) error {
			return errors.New("redis down")
		},
	}
	svc := NewActivityService(repo)

	// Must not panic and must not surface the error anywhere.
	svc.Clear(context.Background())
}

func TestClearEmptiesLog(t *testing.T) {
	repo := &mockActivityRepo{}
	svc := NewActivityService(repo)
	ctx := context.Background()

	if _, err := svc.Add(ctx, AddInput{Type: TypeAuditStarted, Title: "a"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	svc.Clear(ctx)

	if got := svc.List(ctx); len(got) != 0 {
		t.Errorf("expected empty log after clear, got %d entries", len(got))
	}
}
