package mcp

import (
	"context"

	"github.com/custodia-labs/regcheck-cli/internal/core/domain"
	"github.com/custodia-labs/regcheck-cli/internal/core/ports/driving"
)

// mockReviewService is a mock implementation of driving.ReviewService.
type mockReviewService struct {
	result     *driving.ReviewResult
	inferred   string
	confidence float64
	err        error
	inferErr   error
}

func (m *mockReviewService) Run(
	_ context.Context,
	_ []*domain.Document,
	_ string,
) (*driving.ReviewResult, error) {
	return m.result, m.err
}

func (m *mockReviewService) InferTransactionType(
	_ context.Context,
	_ []*domain.Document,
) (string, float64, error) {
	return m.inferred, m.confidence, m.inferErr
}

// mockReportService is a mock implementation of driving.ReportService.
type mockReportService struct {
	report   *domain.ComplianceReport
	listings []driving.ReportListing
	err      error
}

func (m *mockReportService) Get(_ context.Context, _ string) (*domain.ComplianceReport, error) {
	return m.report, m.err
}

func (m *mockReportService) List(_ context.Context) ([]driving.ReportListing, error) {
	return m.listings, m.err
}

// mockDocumentSource is a mock implementation of driven.DocumentSource.
type mockDocumentSource struct {
	docs []*domain.Document
	err  error
}

func (m *mockDocumentSource) Load(_ context.Context, _ string) ([]*domain.Document, error) {
	return m.docs, m.err
}
