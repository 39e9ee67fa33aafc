// Package drafts provides CRUD for audit drafts: the documents, notes, and
// file references a user gathers before submitting an audit. The whole
// collection is persisted as one JSON array in the key-value store under a
// single key, matching the storage layout of the original mobile client.
//
// Saving and deleting a draft also appends a correlated entry to the
// activity log so the dashboard feed reflects draft changes.
package drafts

import "time"

// Status is the lifecycle state of a draft.
type Status string

const (
	// StatusDraft is a draft still being assembled.
	StatusDraft Status = "draft"

	// StatusInProgress is a draft whose audit run has started.
	StatusInProgress Status = "in_progress"

	// StatusCompleted is a draft whose audit has finished.
	StatusCompleted Status = "completed"
)

// Valid reports whether s is one of the known draft statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Draft is a saved audit draft. CreatedAt is set once at creation;
// UpdatedAt moves on every mutation. Files is an ordered list of opaque
// file-reference strings -- insertion order is meaningful and duplicates
// are allowed. Timestamps serialize as RFC 3339 strings.
type Draft struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Files       []string  `json:"files"`
	Status      Status    `json:"status"`
}

// CreateInput holds the caller-supplied fields for a new draft. ID and both
// timestamps are assigned by the service. The store layer deliberately does
// not enforce a non-empty title -- that is a caller concern.
type CreateInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Files       []string `json:"files"`
	Status      Status   `json:"status"`
}

// UpdateInput holds a partial update. Nil fields are left untouched; set
// fields replace the stored value. CreatedAt can never be changed.
type UpdateInput struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Files       *[]string `json:"files"`
	Status      *Status   `json:"status"`
}
