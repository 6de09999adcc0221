package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/regcheck-cli/internal/core/domain"
	"github.com/custodia-labs/regcheck-cli/internal/core/ports/driven"
)

// Ensure ReportStore implements the interface.
var _ driven.ReportStore = (*ReportStore)(nil)

// ReportStore is an in-memory implementation of driven.ReportStore.
// Reports live only as long as the process.
type ReportStore struct {
	mu      sync.RWMutex
	reports map[string]domain.ComplianceReport
}

// NewReportStore creates a new in-memory report store.
func NewReportStore() *ReportStore {
	return &ReportStore{
		reports: make(map[string]domain.ComplianceReport),
	}
}

// SaveReport stores a compiled report under its run ID.
func (s *ReportStore) SaveReport(_ context.Context, report *domain.ComplianceReport) error {
	if report == nil || report.RunID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[report.RunID] = *report
	return nil
}

// GetReport retrieves a report by run ID.
func (s *ReportStore) GetReport(_ context.Context, runID string) (*domain.ComplianceReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report, ok := s.reports[runID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &report, nil
}

// ListReports returns summaries of stored reports, newest first.
func (s *ReportStore) ListReports(_ context.Context) ([]driven.ReportSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]driven.ReportSummary, 0, len(s.reports))
	for _, report := range s.reports {
		summaries = append(summaries, driven.ReportSummary{
			RunID:           report.RunID,
			TransactionType: report.TransactionType,
			SummaryStatus:   report.SummaryStatus,
			Score:           report.Score,
			GeneratedAt:     report.GeneratedAt,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].GeneratedAt.Equal(summaries[j].GeneratedAt) {
			return summaries[i].GeneratedAt.After(summaries[j].GeneratedAt)
		}
		return summaries[i].RunID < summaries[j].RunID
	})
	return summaries, nil
}

// Close releases store resources (no-op for memory store).
func (s *ReportStore) Close() error {
	return nil
}
