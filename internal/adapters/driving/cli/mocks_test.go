package cli

import (
	"context"
	"errors"

	"github.com/custodia-labs/regcheck-cli/internal/core/domain"
	"github.com/custodia-labs/regcheck-cli/internal/core/ports/driving"
)

// mockReviewService is a mock implementation of driving.ReviewService.
type mockReviewService struct {
	result     *driving.ReviewResult
	inferred   string
	confidence float64
	err        error
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
	return m.inferred, m.confidence, nil
}

// mockReportService is a mock implementation of driving.ReportService.
type mockReportService struct {
	report   *domain.ComplianceReport
	listings []driving.ReportListing
	err      error
}

func (m *mockReportService) Get(_ context.Context, _ string) (*domain.ComplianceReport, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.report, nil
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

// mockReferenceStore is a mock implementation of driven.ReferenceStore.
type mockReferenceStore struct {
	types        []string
	requirements []domain.Requirement
	citations    map[string]string
}

func (m *mockReferenceStore) TransactionTypes() []string {
	return m.types
}

func (m *mockReferenceStore) Checklist(transactionType string) ([]domain.Requirement, error) {
	for _, t := range m.types {
		if t == transactionType {
			return m.requirements, nil
		}
	}
	return nil, domain.ErrUnknownTransactionType
}

func (m *mockReferenceStore) Citation(ruleID string) (string, bool) {
	c, ok := m.citations[ruleID]
	return c, ok
}

// mockReviewServiceError always fails.
type mockReviewServiceError struct{}

func (m *mockReviewServiceError) Run(
	_ context.Context,
	_ []*domain.Document,
	_ string,
) (*driving.ReviewResult, error) {
	return nil, errors.New("review exploded")
}

func (m *mockReviewServiceError) InferTransactionType(
	_ context.Context,
	_ []*domain.Document,
) (string, float64, error) {
	return "", 0, errors.New("infer exploded")
}

func sampleReviewResult() *driving.ReviewResult {
	doc := &domain.Document{
		ID:       "d1",
		Filename: "articles.docx",
		Paragraphs: []domain.Paragraph{
			{Index: 0, Text: "ARTICLES OF ASSOCIATION"},
			{Index: 1, Text: "Disputes shall be settled in dubai courts."},
		},
	}
	anchor, _ := doc.Anchor(1)

	return &driving.ReviewResult{
		Report: &domain.ComplianceReport{
			RunID:           "run-1",
			TransactionType: "incorporation",
			SummaryStatus:   domain.StatusNonCompliant,
			Score:           64.5,
			Documents: []domain.DocumentSummary{
				{DocumentID: "d1", Filename: "articles.docx", Label: domain.DocTypeArticlesOfAssociation, Confidence: 0.92},
			},
			ChecklistResults: []domain.ChecklistResult{
				{RequirementID: "articles", Status: domain.StatusSatisfied, MatchedDocumentIDs: []string{"d1"}},
				{RequirementID: "ubo-declaration", Status: domain.StatusMissing},
			},
			Findings: []domain.Finding{
				{
					DocumentID: "d1",
					Anchor:     anchor,
					RuleID:     "jurisdiction-courts",
					Severity:   domain.SeverityViolation,
					Message:    "References dubai courts instead of ADGM Courts",
					Citation:   "ADGM Courts Framework",
				},
			},
			Recommendations: []string{"Address 1 violation(s) before submission"},
		},
		Annotated: []domain.AnnotatedDocument{
			{
				Document:   doc,
				DocumentID: "d1",
				Comments: []domain.Comment{
					{
						Severity: domain.SeverityWarning,
						Message:  "Checklist: 1 of 2 requirements satisfied",
					},
					{
						Anchor:   &anchor,
						RuleID:   "jurisdiction-courts",
						Severity: domain.SeverityViolation,
						Message:  "References dubai courts instead of ADGM Courts",
						Citation: "ADGM Courts Framework",
					},
				},
			},
		},
	}
}

// setupTestServices swaps mock services in and returns a cleanup restoring
// the previous wiring.
func setupTestServices() func() {
	oldReview := reviewService
	oldReport := reportService
	oldReference := referenceStore
	oldSource := documentSource

	reviewService = &mockReviewService{result: sampleReviewResult(), inferred: "incorporation", confidence: 0.9}
	reportService = &mockReportService{
		report: sampleReviewResult().Report,
		listings: []driving.ReportListing{
			{RunID: "run-1", TransactionType: "incorporation", SummaryStatus: domain.StatusNonCompliant, Score: 64.5},
		},
	}
	referenceStore = &mockReferenceStore{
		types: []string{"employment", "incorporation", "licensing"},
		requirements: []domain.Requirement{
			{
				ID:          "articles",
				Name:        "Articles of Association",
				Accept:      []domain.DocType{domain.DocTypeArticlesOfAssociation},
				Cardinality: domain.CardinalityExactlyOne,
			},
			{
				ID:          "register-of-members",
				Name:        "Register of Members",
				Accept:      []domain.DocType{domain.DocTypeRegisterOfMembers},
				Cardinality: domain.CardinalityExactlyOne,
				ConditionalOn: []domain.Condition{
					{RequirementID: "combined-register", Status: domain.StatusMissing},
				},
			},
		},
	}
	documentSource = &mockDocumentSource{docs: []*domain.Document{
		{ID: "d1", Filename: "articles.docx", Paragraphs: []domain.Paragraph{{Index: 0, Text: "ARTICLES"}}},
	}}

	return func() {
		reviewService = oldReview
		reportService = oldReport
		referenceStore = oldReference
		documentSource = oldSource
	}
}
