package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/custodia-labs/regcheck-cli/internal/core/domain"
)

var weakLanguagePattern = regexp.MustCompile(`\b(?:may|should|might|could)\s+(?:be|do|have)\b`)

// BindingLanguage flags hedged phrasing in documents that create binding
// obligations. Advisory only: weak language is sometimes intentional.
type BindingLanguage struct {
	applies typeSet
}

// NewBindingLanguage creates the weak language rule.
func NewBindingLanguage() *BindingLanguage {
	return &BindingLanguage{
		applies: newTypeSet(
			domain.DocTypeArticlesOfAssociation,
			domain.DocTypeMemorandumOfAssociation,
			domain.DocTypeCommercialAgreement,
			domain.DocTypeEmploymentContract,
		),
	}
}

func (r *BindingLanguage) ID() string { return "binding-language" }

func (r *BindingLanguage) AppliesTo(label domain.DocType) bool {
	return r.applies.contains(label)
}

func (r *BindingLanguage) Evaluate(doc *domain.Document) ([]domain.Finding, error) {
	var findings []domain.Finding
	for i, p := range doc.Paragraphs {
		matches := weakLanguagePattern.FindAllString(strings.ToLower(p.Text), -1)
		if len(matches) == 0 {
			continue
		}
		anchor, ok := doc.Anchor(i)
		if !ok {
			continue
		}
		for _, match := range matches {
			findings = append(findings, domain.Finding{
				Anchor:     anchor,
				Severity:   domain.SeverityInfo,
				Message:    fmt.Sprintf("Potentially non-binding language: %q", match),
				Suggestion: "Consider using \"shall\", \"must\", or \"will\" for binding obligations",
			})
		}
	}
	return findings, nil
}
