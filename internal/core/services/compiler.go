package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/custodia-labs/regcheck-cli/internal/core/domain"
	"github.com/custodia-labs/regcheck-cli/internal/core/ports/driven"
)

// DefaultIncompleteThreshold is the classification confidence below which a
// document renders the run Incomplete.
const DefaultIncompleteThreshold = 0.5

// Score weights: checklist completeness 60, findings penalty 40, with
// per-severity penalties.
const (
	completenessWeight = 60.0
	findingsWeight     = 40.0

	violationPenalty = 10.0
	warningPenalty   = 5.0
	infoPenalty      = 2.0
)

// Compiler aggregates classifier, checklist and scan output into the final
// compliance report. Pure aggregation: identical inputs compile to an
// identical report body.
type Compiler struct {
	ref       driven.ReferenceStore
	threshold float64
}

// NewCompiler creates a report compiler. threshold is the classification
// confidence below which the run is Incomplete; zero means default.
func NewCompiler(ref driven.ReferenceStore, threshold float64) *Compiler {
	if threshold == 0 {
		threshold = DefaultIncompleteThreshold
	}
	return &Compiler{ref: ref, threshold: threshold}
}

// Compile builds the report. It enforces the output invariants: every
// finding anchor must resolve in its document (ErrAnchorNotFound otherwise)
// and every checklist result must reference a known requirement. The report
// body is fully sorted; GeneratedAt is the only non-deterministic field.
func (c *Compiler) Compile(
	runID, transactionType string,
	docs []*domain.Document,
	classifications []domain.Classification,
	results []domain.ChecklistResult,
	findings []domain.Finding,
) (*domain.ComplianceReport, error) {
	reqs, err := c.ref.Checklist(transactionType)
	if err != nil {
		return nil, err
	}
	byReqID := make(map[string]domain.Requirement, len(reqs))
	for _, req := range reqs {
		byReqID[req.ID] = req
	}
	byDocID := make(map[string]*domain.Document, len(docs))
	for _, doc := range docs {
		byDocID[doc.ID] = doc
	}

	for _, res := range results {
		if _, ok := byReqID[res.RequirementID]; !ok {
			return nil, fmt.Errorf("checklist result %s: %w", res.RequirementID, domain.ErrNotFound)
		}
	}
	for _, f := range findings {
		doc, ok := byDocID[f.DocumentID]
		if !ok {
			return nil, fmt.Errorf("finding %s references document %s: %w", f.RuleID, f.DocumentID, domain.ErrNotFound)
		}
		if _, ok := doc.Resolve(f.Anchor); !ok {
			return nil, fmt.Errorf("document %s rule %s paragraph %d: %w",
				f.DocumentID, f.RuleID, f.Anchor.Paragraph, domain.ErrAnchorNotFound)
		}
	}

	report := &domain.ComplianceReport{
		RunID:            runID,
		TransactionType:  transactionType,
		Classifications:  sortedClassifications(classifications),
		ChecklistResults: results,
		Findings:         sortedReportFindings(findings),
		GeneratedAt:      time.Now().UTC(),
	}
	report.Documents = documentSummaries(docs, classifications)
	report.SummaryStatus = c.summaryStatus(classifications, results, findings, byReqID)
	report.Score = complianceScore(results, findings, byReqID)
	report.Recommendations = recommendations(results, findings, byReqID)
	return report, nil
}

// summaryStatus derives the overall outcome per the report invariant:
// NonCompliant on any Violation finding or unmet non-optional, non-waived
// requirement; else Incomplete when any document's classification confidence
// is below the threshold; else Compliant.
func (c *Compiler) summaryStatus(
	classifications []domain.Classification,
	results []domain.ChecklistResult,
	findings []domain.Finding,
	byReqID map[string]domain.Requirement,
) domain.SummaryStatus {
	for _, f := range findings {
		if f.Severity == domain.SeverityViolation {
			return domain.StatusNonCompliant
		}
	}
	for _, res := range results {
		if requirementUnmet(res, byReqID) {
			return domain.StatusNonCompliant
		}
	}
	for _, cls := range classifications {
		if cls.Confidence < c.threshold {
			return domain.StatusIncomplete
		}
	}
	return domain.StatusCompliant
}

// requirementUnmet reports whether res breaches its requirement: Missing or
// Duplicated on a non-optional requirement. Waived results never count.
func requirementUnmet(res domain.ChecklistResult, byReqID map[string]domain.Requirement) bool {
	if res.Status != domain.StatusMissing && res.Status != domain.StatusDuplicated {
		return false
	}
	return byReqID[res.RequirementID].Cardinality != domain.CardinalityOptional
}

// complianceScore computes the 0-100 weighted score: checklist completeness
// at 60, findings penalty subtracted from 40.
func complianceScore(results []domain.ChecklistResult, findings []domain.Finding, byReqID map[string]domain.Requirement) float64 {
	var required, met int
	for _, res := range results {
		req := byReqID[res.RequirementID]
		if req.Cardinality == domain.CardinalityOptional || res.Status == domain.StatusConditionallyWaived {
			continue
		}
		required++
		if res.Status == domain.StatusSatisfied {
			met++
		}
	}
	completeness := 1.0
	if required > 0 {
		completeness = float64(met) / float64(required)
	}

	penalty := 0.0
	for _, f := range findings {
		switch f.Severity {
		case domain.SeverityViolation:
			penalty += violationPenalty
		case domain.SeverityWarning:
			penalty += warningPenalty
		default:
			penalty += infoPenalty
		}
	}
	findingsScore := findingsWeight - penalty
	if findingsScore < 0 {
		findingsScore = 0
	}

	score := completeness*completenessWeight + findingsScore
	// One decimal place keeps the report stable across float formatting.
	return float64(int(score*10+0.5)) / 10
}

// recommendations derives actionable next steps from the unmet requirements
// and findings, in a fixed order.
func recommendations(results []domain.ChecklistResult, findings []domain.Finding, byReqID map[string]domain.Requirement) []string {
	var recs []string

	var missing []string
	for _, res := range results {
		if res.Status == domain.StatusMissing && byReqID[res.RequirementID].Cardinality != domain.CardinalityOptional {
			req := byReqID[res.RequirementID]
			name := req.Name
			if name == "" {
				name = req.ID
			}
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		recs = append(recs, "Complete the document set by preparing: "+strings.Join(missing, ", "))
	}

	violations := 0
	jurisdiction := false
	for _, f := range findings {
		if f.Severity == domain.SeverityViolation {
			violations++
		}
		if strings.HasPrefix(f.RuleID, "jurisdiction") {
			jurisdiction = true
		}
	}
	if violations > 0 {
		recs = append(recs, fmt.Sprintf("Address %d violation(s) before submission", violations))
	}
	if jurisdiction {
		recs = append(recs, "Review jurisdiction clauses to reference ADGM Courts exclusively")
	}

	if len(recs) == 0 {
		if len(findings) > 0 {
			recs = append(recs, "Address the identified issues to improve compliance")
		} else {
			recs = append(recs, "Documents appear compliant and ready for submission")
		}
	}
	return recs
}

// documentSummaries builds the per-document overview sorted by document ID.
func documentSummaries(docs []*domain.Document, classifications []domain.Classification) []domain.DocumentSummary {
	byDocID := make(map[string]domain.Classification, len(classifications))
	for _, cls := range classifications {
		byDocID[cls.DocumentID] = cls
	}

	summaries := make([]domain.DocumentSummary, 0, len(docs))
	for _, doc := range docs {
		cls := byDocID[doc.ID]
		summaries = append(summaries, domain.DocumentSummary{
			DocumentID: doc.ID,
			Filename:   doc.Filename,
			Label:      cls.Label,
			Confidence: cls.Confidence,
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].DocumentID < summaries[j].DocumentID })
	return summaries
}

func sortedClassifications(classifications []domain.Classification) []domain.Classification {
	out := append([]domain.Classification(nil), classifications...)
	sort.Slice(out, func(i, j int) bool { return out[i].DocumentID < out[j].DocumentID })
	return out
}

// sortedReportFindings orders findings by document ID, then by the same
// per-document order the scan engine uses.
func sortedReportFindings(findings []domain.Finding) []domain.Finding {
	out := append([]domain.Finding(nil), findings...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.DocumentID != b.DocumentID {
			return a.DocumentID < b.DocumentID
		}
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
	return out
}
