package domain

// Severity grades a red-flag finding.
type Severity string

const (
	// SeverityInfo is advisory only.
	SeverityInfo Severity = "Info"

	// SeverityWarning should be addressed before submission.
	SeverityWarning Severity = "Warning"

	// SeverityViolation breaches a regulatory requirement and makes the
	// submission non-compliant.
	SeverityViolation Severity = "Violation"
)

// Rank orders severities for deterministic sorting; higher is more severe.
func (s Severity) Rank() int {
	switch s {
	case SeverityViolation:
		return 2
	case SeverityWarning:
		return 1
	default:
		return 0
	}
}

// Finding is one content-level compliance issue detected in a document.
// Findings are append-only within a run.
type Finding struct {
	// DocumentID identifies the document the finding was raised against.
	DocumentID string `json:"document_id"`

	// Anchor locates the finding within the document's structured text.
	// Findings with no more specific location anchor to the first
	// paragraph. Every anchor must resolve at report compile time.
	Anchor Anchor `json:"anchor"`

	// RuleID identifies the rule that produced the finding.
	RuleID string `json:"rule_id"`

	// Severity grades the finding.
	Severity Severity `json:"severity"`

	// Message describes the issue.
	Message string `json:"message"`

	// Suggestion describes how to resolve the issue, when known.
	Suggestion string `json:"suggestion,omitempty"`

	// Citation is the regulatory clause backing the finding. It is
	// stamped by the scan engine from the citation registry; a rule with
	// no registered citation fails the run at startup.
	Citation string `json:"citation"`
}
