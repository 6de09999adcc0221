package driven

import (
	"context"
	"time"

	"github.com/custodia-labs/regcheck-cli/internal/core/domain"
)

// ReportSummary is a lightweight listing row for stored reports.
type ReportSummary struct {
	RunID           string
	TransactionType string
	SummaryStatus   domain.SummaryStatus
	Score           float64
	GeneratedAt     time.Time
}

// ReportStore persists compiled compliance reports. A report is only saved
// once compilation has fully completed; partial results are never persisted
// as if final.
type ReportStore interface {
	// SaveReport stores a compiled report under its run ID.
	SaveReport(ctx context.Context, report *domain.ComplianceReport) error

	// GetReport retrieves a report by run ID.
	// Returns domain.ErrNotFound when absent.
	GetReport(ctx context.Context, runID string) (*domain.ComplianceReport, error)

	// ListReports returns summaries of stored reports, newest first.
	ListReports(ctx context.Context) ([]ReportSummary, error)

	// Close releases store resources.
	Close() error
}
