package services

import (
	"context"

	"github.com/custodia-labs/regcheck-cli/internal/core/domain"
	"github.com/custodia-labs/regcheck-cli/internal/core/ports/driven"
	"github.com/custodia-labs/regcheck-cli/internal/core/ports/driving"
)

// Ensure ReportService implements the interface.
var _ driving.ReportService = (*ReportService)(nil)

// ReportService retrieves previously compiled reports from the store.
type ReportService struct {
	store driven.ReportStore
}

// NewReportService creates a report service over the store.
func NewReportService(store driven.ReportStore) *ReportService {
	return &ReportService{store: store}
}

// Get retrieves a stored report by run ID.
func (s *ReportService) Get(ctx context.Context, runID string) (*domain.ComplianceReport, error) {
	if s.store == nil {
		return nil, domain.ErrNotFound
	}
	return s.store.GetReport(ctx, runID)
}

// List returns stored reports, newest first.
func (s *ReportService) List(ctx context.Context) ([]driving.ReportListing, error) {
	if s.store == nil {
		return nil, nil
	}
	summaries, err := s.store.ListReports(ctx)
	if err != nil {
		return nil, err
	}
	listings := make([]driving.ReportListing, 0, len(summaries))
	for _, sum := range summaries {
		listings = append(listings, driving.ReportListing{
			RunID:           sum.RunID,
			TransactionType: sum.TransactionType,
			SummaryStatus:   sum.SummaryStatus,
			Score:           sum.Score,
		})
	}
	return listings, nil
}
