package domain

import "time"

// SummaryStatus is the overall outcome of a review run.
type SummaryStatus string

const (
	// StatusCompliant means no violations and no unmet required documents.
	StatusCompliant SummaryStatus = "Compliant"

	// StatusNonCompliant means at least one Violation finding or an
	// unmet non-optional, non-waived requirement.
	StatusNonCompliant SummaryStatus = "NonCompliant"

	// StatusIncomplete means no violations, but at least one document's
	// classification confidence fell below the configured threshold.
	StatusIncomplete SummaryStatus = "Incomplete"
)

// DocumentSummary is one row of the report's per-document overview.
type DocumentSummary struct {
	DocumentID string  `json:"document_id"`
	Filename   string  `json:"filename"`
	Label      DocType `json:"label"`
	Confidence float64 `json:"confidence"`
}

// ComplianceReport is the single immutable output artifact of a review run.
// The body is deterministic for identical inputs; GeneratedAt sits outside
// the comparable body and carries no ordering influence.
type ComplianceReport struct {
	// RunID uniquely identifies the review run.
	RunID string `json:"run_id"`

	// TransactionType names the checklist the run was evaluated against.
	TransactionType string `json:"transaction_type"`

	// SummaryStatus is the overall outcome.
	SummaryStatus SummaryStatus `json:"summary_status"`

	// Score is a 0-100 weighted compliance score: checklist completeness
	// weighted 60, findings penalty weighted 40.
	Score float64 `json:"score"`

	// Documents summarises each reviewed document.
	Documents []DocumentSummary `json:"documents"`

	// Classifications are the per-document classification outcomes.
	Classifications []Classification `json:"classifications"`

	// ChecklistResults hold one entry per checklist requirement.
	ChecklistResults []ChecklistResult `json:"checklist_results"`

	// Findings are all red-flag findings across the document set.
	Findings []Finding `json:"findings"`

	// Recommendations are actionable next steps derived from the results.
	Recommendations []string `json:"recommendations,omitempty"`

	// GeneratedAt is when the report was compiled. Not part of the
	// deterministic body.
	GeneratedAt time.Time `json:"generated_at"`
}
