package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/custodia-labs/regcheck-cli/internal/core/domain"
)

// --- Mock implementations shared by the service tests ---

// mockScorer implements driven.TypeScorer with fixed per-type scores.
type mockScorer struct {
	scores   map[domain.DocType]float64
	err      error
	failFrom int // fail calls once this many have succeeded; -1 disables
	calls    int
	delay    time.Duration
}

func newMockScorer(scores map[domain.DocType]float64) *mockScorer {
	return &mockScorer{scores: scores, failFrom: -1}
}

func (m *mockScorer) Name() string { return "mock" }

func (m *mockScorer) Score(ctx context.Context, _ *domain.Document, candidate domain.DocType) (float64, error) {
	if m.delay > 0 {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(m.delay):
		}
	}
	if m.failFrom >= 0 && m.calls >= m.failFrom {
		return 0, m.err
	}
	m.calls++
	return m.scores[candidate], nil
}

func (m *mockScorer) Close() error { return nil }

// mockReference implements driven.ReferenceStore from in-memory maps.
type mockReference struct {
	checklists map[string][]domain.Requirement
	citations  map[string]string
}

func (m *mockReference) TransactionTypes() []string {
	types := make([]string, 0, len(m.checklists))
	for t := range m.checklists {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

func (m *mockReference) Checklist(transactionType string) ([]domain.Requirement, error) {
	reqs, ok := m.checklists[transactionType]
	if !ok {
		return nil, domain.ErrUnknownTransactionType
	}
	return reqs, nil
}

func (m *mockReference) Citation(ruleID string) (string, bool) {
	c, ok := m.citations[ruleID]
	return c, ok
}

// mockRule implements driven.Rule with canned behaviour.
type mockRule struct {
	id       string
	applies  []domain.DocType
	findings []domain.Finding
	err      error
	panics   bool
}

func (r *mockRule) ID() string { return r.id }

func (r *mockRule) AppliesTo(label domain.DocType) bool {
	if len(r.applies) == 0 {
		return true
	}
	for _, t := range r.applies {
		if t == label {
			return true
		}
	}
	return false
}

func (r *mockRule) Evaluate(_ *domain.Document) ([]domain.Finding, error) {
	if r.panics {
		panic("mock rule exploded")
	}
	if r.err != nil {
		return nil, r.err
	}
	return r.findings, nil
}

// --- Shared fixtures ---

// incorporationChecklist is a three-requirement checklist used by the
// scenario tests: Articles, UBO declaration and Register of Members, each
// exactly-one.
func incorporationChecklist() map[string][]domain.Requirement {
	return map[string][]domain.Requirement{
		"incorporation": {
			{
				ID:          "articles",
				Name:        "Articles of Association",
				Accept:      []domain.DocType{domain.DocTypeArticlesOfAssociation},
				Cardinality: domain.CardinalityExactlyOne,
			},
			{
				ID:          "ubo-declaration",
				Name:        "UBO Declaration",
				Accept:      []domain.DocType{domain.DocTypeUBODeclaration},
				Cardinality: domain.CardinalityExactlyOne,
			},
			{
				ID:          "register-of-members",
				Name:        "Register of Members",
				Accept:      []domain.DocType{domain.DocTypeRegisterOfMembers},
				Cardinality: domain.CardinalityExactlyOne,
			},
		},
	}
}

func docWithText(id string, paragraphs ...string) *domain.Document {
	doc := &domain.Document{ID: id, Filename: id + ".docx"}
	for i, text := range paragraphs {
		doc.Paragraphs = append(doc.Paragraphs, domain.Paragraph{Index: i, Text: text})
	}
	return doc
}

func classificationOf(docID string, label domain.DocType, confidence float64) domain.Classification {
	return domain.Classification{DocumentID: docID, Label: label, Confidence: confidence}
}

func anchoredFinding(doc *domain.Document, paragraph int, ruleID string, severity domain.Severity, message string) domain.Finding {
	anchor, _ := doc.Anchor(paragraph)
	return domain.Finding{
		DocumentID: doc.ID,
		Anchor:     anchor,
		RuleID:     ruleID,
		Severity:   severity,
		Message:    message,
		Citation:   "Test Citation",
	}
}

func containsMessage(findings []domain.Finding, fragment string) bool {
	for _, f := range findings {
		if strings.Contains(f.Message, fragment) {
			return true
		}
	}
	return false
}
