// Package activity provides the recent-activity log: an append-mostly,
// most-recent-first history of user-visible events (audits started and
// completed, drafts saved and deleted, reports viewed). The log is persisted
// as one JSON array in the key-value store and capped at a fixed number of
// entries -- the dashboard only ever shows the newest handful.
//
// Other plugins append to the log but never read each other's entries back;
// the log is informational, not an ownership relation.
package activity

import "time"

// maxEntries is the retention cap. Every insertion truncates the log to the
// newest maxEntries records; the oldest beyond the cap are discarded.
const maxEntries = 50

// Type classifies an activity entry.
type Type string

const (
	// TypeAuditStarted is logged when report generation begins for a draft.
	TypeAuditStarted Type = "audit_started"

	// TypeAuditCompleted is logged when a report has been generated.
	TypeAuditCompleted Type = "audit_completed"

	// TypeDraftSaved is logged when a new draft is created.
	TypeDraftSaved Type = "draft_saved"

	// TypeDraftDeleted is logged when a draft is removed.
	TypeDraftDeleted Type = "draft_deleted"

	// TypeReportViewed is logged when a report is opened by the user.
	TypeReportViewed Type = "report_viewed"
)

// Valid reports whether t is one of the known activity types.
func (t Type) Valid() bool {
	switch t {
	case TypeAuditStarted, TypeAuditCompleted, TypeDraftSaved, TypeDraftDeleted, TypeReportViewed:
		return true
	}
	return false
}

// Metadata carries the auxiliary references an activity may point at. Which
// fields are set depends on the activity type: draft_saved/draft_deleted set
// DraftID, report_viewed and audit_completed set ReportID, audit_started may
// carry the file count of the submitted draft. References are informational
// back-links, never enforced.
type Metadata struct {
	DraftID   string `json:"draftId,omitempty"`
	ReportID  string `json:"reportId,omitempty"`
	FileCount int    `json:"fileCount,omitempty"`
}

// Activity is a single entry in the recent-activity log. Timestamp is set
// once at creation and serializes as an RFC 3339 string.
type Activity struct {
	ID          string    `json:"id"`
	Type        Type      `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	Metadata    Metadata  `json:"metadata,omitzero"`
}
