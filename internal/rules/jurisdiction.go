package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/custodia-labs/regcheck-cli/internal/core/domain"
)

// badCourts are jurisdiction references that conflict with ADGM Courts.
var badCourts = []string{
	"uae federal courts",
	"dubai courts",
	"abu dhabi courts",
	"federal courts of uae",
	"courts of dubai",
}

var adgmCourtsPattern = regexp.MustCompile(`adgm\s+courts?|abu dhabi global market.*courts?`)

// Jurisdiction flags references to court systems other than the ADGM Courts.
// It applies to every document type: a stray Dubai Courts clause is a
// violation wherever it appears.
type Jurisdiction struct{}

// NewJurisdiction creates the non-ADGM court reference rule.
func NewJurisdiction() *Jurisdiction {
	return &Jurisdiction{}
}

func (r *Jurisdiction) ID() string { return "jurisdiction-courts" }

func (r *Jurisdiction) AppliesTo(label domain.DocType) bool {
	return label != domain.DocTypeUnknown
}

func (r *Jurisdiction) Evaluate(doc *domain.Document) ([]domain.Finding, error) {
	var findings []domain.Finding
	for _, court := range badCourts {
		if !strings.Contains(lowerText(doc), court) {
			continue
		}
		anchor := findParagraph(doc, func(lower string) bool {
			return strings.Contains(lower, court)
		})
		findings = append(findings, domain.Finding{
			Anchor:     anchor,
			Severity:   domain.SeverityViolation,
			Message:    fmt.Sprintf("References %s instead of ADGM Courts", court),
			Suggestion: "Update jurisdiction to reference ADGM Courts exclusively",
		})
	}
	return findings, nil
}

// JurisdictionClause requires an explicit ADGM Courts jurisdiction clause in
// constitutional and contractual documents.
type JurisdictionClause struct {
	applies typeSet
}

// NewJurisdictionClause creates the missing ADGM Courts clause rule.
func NewJurisdictionClause() *JurisdictionClause {
	return &JurisdictionClause{
		applies: newTypeSet(
			domain.DocTypeArticlesOfAssociation,
			domain.DocTypeMemorandumOfAssociation,
			domain.DocTypeCommercialAgreement,
		),
	}
}

func (r *JurisdictionClause) ID() string { return "jurisdiction-clause" }

func (r *JurisdictionClause) AppliesTo(label domain.DocType) bool {
	return r.applies.contains(label)
}

func (r *JurisdictionClause) Evaluate(doc *domain.Document) ([]domain.Finding, error) {
	if adgmCourtsPattern.MatchString(lowerText(doc)) {
		return nil, nil
	}
	return []domain.Finding{{
		Anchor:     startAnchor(doc),
		Severity:   domain.SeverityViolation,
		Message:    "Missing explicit ADGM Courts jurisdiction reference",
		Suggestion: "Include a clause specifying ADGM Courts jurisdiction",
	}}, nil
}
