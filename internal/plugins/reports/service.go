package reports

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/auditdesk/auditdesk/internal/apperror"
	"github.com/auditdesk/auditdesk/internal/plugins/activity"
)

// ReportService handles business logic for audit reports.
type ReportService interface {
	// List returns all stored reports. Read failures degrade to an empty
	// collection: logged, never surfaced.
	List(ctx context.Context) []Report

	// Generate produces a report for the given draft from the canned sample
	// content, stores it, and brackets the generation with audit_started
	// and audit_completed activity entries. Storage failures on the report
	// itself are logged and swallowed -- the caller still gets the report.
	Generate(ctx context.Context, draftID string) (*Report, error)

	// MarkViewed records a report_viewed activity for the given report.
	// Unknown report ids are NotFound.
	MarkViewed(ctx context.Context, id string) error
}

// reportService implements ReportService.
type reportService struct {
	repo     ReportRepository
	activity activity.ActivityService

	// mu serializes the load-append-persist cycle of Generate.
	mu sync.Mutex
}

// NewReportService creates a new report service.
func NewReportService(repo ReportRepository, activitySvc activity.ActivityService) ReportService {
	return &reportService{repo: repo, activity: activitySvc}
}

// List returns the stored reports, or an empty slice when they cannot be read.
func (s *reportService) List(ctx context.Context) []Report {
	reports, err := s.repo.Load(ctx)
	if err != nil {
		slog.Error("failed to load reports", slog.Any("error", err))
		return []Report{}
	}
	return reports
}

// Generate builds a report from the sample content and persists it. The
// activity bracket mirrors what the user sees on the progress screen: the
// audit "starts", then "completes" with the report attached.
func (s *reportService) Generate(ctx context.Context, draftID string) (*Report, error) {
	if _, err := s.activity.Add(ctx, activity.AddInput{
		Type:        activity.TypeAuditStarted,
		Title:       "Audit Started",
		Description: "Audit processing started",
		Metadata:    activity.Metadata{DraftID: draftID},
	}); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	report := Report{
		ID:              uuid.NewString(),
		DraftID:         draftID,
		Title:           fmt.Sprintf("Your %s Report", now.Month()),
		Period:          now.Format("2006-01"),
		Summary:         "Everything looks good! Here's what we found.",
		Findings:        append([]Finding(nil), sampleFindings...),
		Recommendations: append([]Recommendation(nil), sampleRecommendations...),
		CreatedAt:       now,
	}

	s.mu.Lock()
	reports, err := s.repo.Load(ctx)
	if err != nil {
		slog.Error("failed to load reports before save, starting fresh", slog.Any("error", err))
		reports = []Report{}
	}
	reports = append(reports, report)
	if err := s.repo.Replace(ctx, reports); err != nil {
		// Report storage is best-effort: the generated report is still
		// returned to the caller even when it could not be persisted.
		slog.Error("failed to persist report", slog.String("report_id", report.ID), slog.Any("error", err))
	}
	s.mu.Unlock()

	if _, err := s.activity.Add(ctx, activity.AddInput{
		Type:        activity.TypeAuditCompleted,
		Title:       "Audit Completed",
		Description: "Your audit report is ready",
		Metadata:    activity.Metadata{DraftID: draftID, ReportID: report.ID},
	}); err != nil {
		return nil, err
	}

	return &report, nil
}

// MarkViewed looks the report up and appends a report_viewed activity.
func (s *reportService) MarkViewed(ctx context.Context, id string) error {
	reports, err := s.repo.Load(ctx)
	if err != nil {
		return apperror.NewInternal(fmt.Errorf("loading reports: %w", err))
	}

	var found *Report
	for i := range reports {
		if reports[i].ID == id {
			found = &reports[i]
			break
		}
	}
	if found == nil {
		return apperror.NewNotFound("report not found")
	}

	_, err = s.activity.Add(ctx, activity.AddInput{
		Type:        activity.TypeReportViewed,
		Title:       "Viewed Audit Report",
		Description: fmt.Sprintf("Opened %q", found.Title),
		Metadata:    activity.Metadata{ReportID: found.ID},
	})
	return err
}
