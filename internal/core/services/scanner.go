package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/custodia-labs/regcheck-cli/internal/core/domain"
	"github.com/custodia-labs/regcheck-cli/internal/core/ports/driven"
	"github.com/custodia-labs/regcheck-cli/internal/logger"
)

// Scanner applies the red-flag rule set to classified documents.
// Rules run independently; their order never affects output because the
// scanner sorts findings deterministically before returning them.
type Scanner struct {
	rules []driven.Rule
	ref   driven.ReferenceStore
}

// NewScanner creates a scanner over the given rules. Every rule must have a
// citation registered in the reference store; a missing citation returns
// domain.ErrMissingCitation, failing the run before any document is scanned.
func NewScanner(rules []driven.Rule, ref driven.ReferenceStore) (*Scanner, error) {
	for _, rule := range rules {
		if _, ok := ref.Citation(rule.ID()); !ok {
			return nil, fmt.Errorf("rule %s: %w", rule.ID(), domain.ErrMissingCitation)
		}
	}
	return &Scanner{rules: rules, ref: ref}, nil
}

// Scan runs every rule that applies to the document's classified type and
// concatenates the findings, each stamped with its registered citation.
// A rule that returns an error or panics contributes a single Warning
// finding reporting the failure; one bad rule never sinks the document.
func (s *Scanner) Scan(ctx context.Context, doc *domain.Document, cls domain.Classification) []domain.Finding {
	var findings []domain.Finding

	for _, rule := range s.rules {
		if ctx.Err() != nil {
			break
		}
		if !rule.AppliesTo(cls.Label) {
			continue
		}

		ruleFindings, err := evaluateRule(rule, doc)
		if err != nil {
			logger.Warn("rule %s failed on %s: %v", rule.ID(), doc.ID, err)
			findings = append(findings, s.failureFinding(doc, rule.ID(), err))
			continue
		}

		for _, f := range ruleFindings {
			f.DocumentID = doc.ID
			f.RuleID = rule.ID()
			f.Citation, _ = s.ref.Citation(rule.ID())
			findings = append(findings, f)
		}
	}

	sortFindings(findings)
	return findings
}

// evaluateRule calls the rule, converting a panic into an error so a broken
// rule implementation is contained like any other rule failure.
func evaluateRule(rule driven.Rule, doc *domain.Document) (findings []domain.Finding, err error) {
	defer func() {
		if r := recover(); r != nil {
			findings = nil
			err = fmt.Errorf("rule panicked: %v", r)
		}
	}()
	return rule.Evaluate(doc)
}

// failureFinding is the synthetic Warning emitted when a rule fails.
func (s *Scanner) failureFinding(doc *domain.Document, ruleID string, err error) domain.Finding {
	anchor, _ := doc.Anchor(0)
	citation, _ := s.ref.Citation(ruleID)
	return domain.Finding{
		DocumentID: doc.ID,
		Anchor:     anchor,
		RuleID:     ruleID,
		Severity:   domain.SeverityWarning,
		Message:    fmt.Sprintf("rule evaluation failed: %v", err),
		Citation:   citation,
	}
}

// sortFindings orders findings by anchor position, severity descending,
// rule ID ascending, then message, so identical inputs always produce
// identical output.
func sortFindings(findings []domain.Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		a, b := findings[i], findings[j]
		if a.Anchor.Paragraph != b.Anchor.Paragraph {
			return a.Anchor.Paragraph < b.Anchor.Paragraph
		}
		if a.Severity.Rank() != b.Severity.Rank() {
			return a.Severity.Rank() > b.Severity.Rank()
		}
		if a.RuleID != b.RuleID {
			return a.RuleID < b.RuleID
		}
		return a.Message < b.Message
	})
}
