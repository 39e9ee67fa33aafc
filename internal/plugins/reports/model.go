// Package reports stores generated audit reports and produces new ones from
// a fixed set of sample findings and recommendations. There is no real
// analysis pipeline behind report generation -- the content is canned and
// only the surrounding bookkeeping (persistence, activity entries) is real.
package reports

import "time"

// Priority ranks a recommendation.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// FindingKind classifies a report finding for display.
type FindingKind string

const (
	// KindPositive is a finding the business should feel good about.
	KindPositive FindingKind = "positive"

	// KindWarning is a finding that needs attention.
	KindWarning FindingKind = "warning"
)

// Finding is one observation in a generated report.
type Finding struct {
	Title  string      `json:"title"`
	Detail string      `json:"detail"`
	Kind   FindingKind `json:"kind"`
}

// Recommendation is one suggested action in a generated report.
type Recommendation struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Note     string   `json:"note"`
	Priority Priority `json:"priority"`
}

// Report is a generated audit report. DraftID back-references the draft the
// report was generated from, when known.
type Report struct {
	ID              string           `json:"id"`
	DraftID         string           `json:"draftId,omitempty"`
	Title           string           `json:"title"`
	Period          string           `json:"period"`
	Summary         string           `json:"summary"`
	Findings        []Finding        `json:"findings"`
	Recommendations []Recommendation `json:"recommendations"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// sampleFindings is the canned finding set every generated report carries.
var sampleFindings = []Finding{
	{Title: "Expenses well Made", Detail: "87% of expenses was properly made this month", Kind: KindPositive},
	{Title: "Revenue Up 15%", Detail: "Strong growth compared to last month", Kind: KindPositive},
	{Title: "Stock Alert", Detail: "Stock levels exceed optimal thresholds", Kind: KindWarning},
}

// sampleRecommendations is the canned recommendation set.
var sampleRecommendations = []Recommendation{
	{ID: "rec1", Title: "Cut Utility Costs", Note: "Bills increased 12% from last month", Priority: PriorityHigh},
	{ID: "rec2", Title: "Inventory Management", Note: "Consider discounting slow-moving items", Priority: PriorityMedium},
	{ID: "rec3", Title: "Optimize Payment Terms", Note: "Negotiate payment with suppliers to improve cash flow", Priority: PriorityLow},
}
