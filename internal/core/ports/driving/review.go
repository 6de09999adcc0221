package driving

import (
	"context"

	"github.com/custodia-labs/regcheck-cli/internal/core/domain"
)

// ReviewResult bundles the artifacts of one review run.
type ReviewResult struct {
	// Report is the compiled compliance report.
	Report *domain.ComplianceReport

	// Annotated holds one annotated copy per reviewed document, in
	// document order.
	Annotated []domain.AnnotatedDocument
}

// ReviewService runs compliance reviews over document sets.
type ReviewService interface {
	// Run reviews the document set against the checklist for
	// transactionType. Configuration errors abort before any document
	// work; per-document failures degrade to Unknown classifications or
	// Warning findings and never abort the run.
	Run(ctx context.Context, docs []*domain.Document, transactionType string) (*ReviewResult, error)

	// InferTransactionType guesses the transaction type from the
	// classified document mix, with a confidence in [0, 1].
	InferTransactionType(ctx context.Context, docs []*domain.Document) (string, float64, error)
}

// ReportService retrieves previously compiled reports.
type ReportService interface {
	// Get retrieves a stored report by run ID.
	Get(ctx context.Context, runID string) (*domain.ComplianceReport, error)

	// List returns stored run IDs with status, newest first.
	List(ctx context.Context) ([]ReportListing, error)
}

// ReportListing is one row of the stored-report listing.
type ReportListing struct {
	RunID           string
	TransactionType string
	SummaryStatus   domain.SummaryStatus
	Score           float64
}
