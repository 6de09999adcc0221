package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/custodia-labs/regcheck-cli/internal/core/domain"
	"github.com/custodia-labs/regcheck-cli/internal/core/ports/driven"
)

// Annotator projects findings and checklist gaps back onto documents as a
// comment overlay. The original structured text is never touched.
type Annotator struct {
	ref driven.ReferenceStore
}

// NewAnnotator creates an annotator over the reference store, which supplies
// requirement names for checklist summary comments.
func NewAnnotator(ref driven.ReferenceStore) *Annotator {
	return &Annotator{ref: ref}
}

// Annotate builds the comment overlay for one document. Finding comments
// attach at their anchors; unmet checklist requirements relevant to the
// document's classified type collapse into one document-level summary
// comment at the fixed insertion point (start of document). Comments at the
// same anchor order by severity descending then rule ID ascending. Returns
// domain.ErrAnchorNotFound if any finding anchor does not resolve.
func (a *Annotator) Annotate(
	doc *domain.Document,
	cls domain.Classification,
	findings []domain.Finding,
	results []domain.ChecklistResult,
	transactionType string,
) (domain.AnnotatedDocument, error) {
	out := domain.AnnotatedDocument{Document: doc, DocumentID: doc.ID}

	if summary := a.checklistSummary(cls, results, transactionType); summary != "" {
		out.Comments = append(out.Comments, domain.Comment{
			Severity: domain.SeverityWarning,
			Message:  summary,
		})
	}

	var anchored []domain.Comment
	for _, f := range findings {
		if f.DocumentID != doc.ID {
			continue
		}
		if _, ok := doc.Resolve(f.Anchor); !ok {
			return domain.AnnotatedDocument{}, fmt.Errorf("document %s rule %s paragraph %d: %w",
				doc.ID, f.RuleID, f.Anchor.Paragraph, domain.ErrAnchorNotFound)
		}
		anchor := f.Anchor
		msg := f.Message
		if f.Suggestion != "" {
			msg += " Suggestion: " + f.Suggestion
		}
		anchored = append(anchored, domain.Comment{
			Anchor:   &anchor,
			RuleID:   f.RuleID,
			Severity: f.Severity,
			Message:  msg,
			Citation: f.Citation,
		})
	}

	sort.SliceStable(anchored, func(i, j int) bool {
		a, b := anchored[i], anchored[j]
		if a.Anchor.Paragraph != b.Anchor.Paragraph {
			return a.Anchor.Paragraph < b.Anchor.Paragraph
		}
		if a.Severity.Rank() != b.Severity.Rank() {
			return a.Severity.Rank() > b.Severity.Rank()
		}
		return a.RuleID < b.RuleID
	})

	out.Comments = append(out.Comments, anchored...)
	return out, nil
}

// checklistSummary lists unmet requirements whose accept set includes the
// document's classified type. Empty when nothing relevant is unmet.
func (a *Annotator) checklistSummary(cls domain.Classification, results []domain.ChecklistResult, transactionType string) string {
	reqs, err := a.ref.Checklist(transactionType)
	if err != nil {
		return ""
	}
	byID := make(map[string]domain.Requirement, len(reqs))
	for _, req := range reqs {
		byID[req.ID] = req
	}

	var lines []string
	for _, res := range results {
		if res.Status != domain.StatusMissing && res.Status != domain.StatusDuplicated {
			continue
		}
		req, ok := byID[res.RequirementID]
		if !ok || !acceptsType(req, cls.Label) {
			continue
		}
		name := req.Name
		if name == "" {
			name = req.ID
		}
		lines = append(lines, fmt.Sprintf("%s: %s", name, res.Status))
	}
	if len(lines) == 0 {
		return ""
	}
	return "Checklist gaps for this document type: " + strings.Join(lines, "; ")
}

func acceptsType(req domain.Requirement, label domain.DocType) bool {
	for _, t := range req.Accept {
		if t == label {
			return true
		}
	}
	return false
}
