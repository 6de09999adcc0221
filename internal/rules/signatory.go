package rules

import (
	"regexp"

	"github.com/custodia-labs/regcheck-cli/internal/core/domain"
)

var signatureBlockPattern = regexp.MustCompile(`signature|signed|witness|date.*sign|sign.*date`)

// Signatory requires an execution block in documents that must be signed.
type Signatory struct {
	applies typeSet
}

// NewSignatory creates the signature block rule.
func NewSignatory() *Signatory {
	return &Signatory{
		applies: newTypeSet(
			domain.DocTypeArticlesOfAssociation,
			domain.DocTypeMemorandumOfAssociation,
			domain.DocTypeBoardResolution,
			domain.DocTypeShareholderResolution,
			domain.DocTypeCommercialAgreement,
			domain.DocTypeEmploymentContract,
		),
	}
}

func (r *Signatory) ID() string { return "signatory" }

func (r *Signatory) AppliesTo(label domain.DocType) bool {
	return r.applies.contains(label)
}

func (r *Signatory) Evaluate(doc *domain.Document) ([]domain.Finding, error) {
	if signatureBlockPattern.MatchString(lowerText(doc)) {
		return nil, nil
	}
	return []domain.Finding{{
		Anchor:     startAnchor(doc),
		Severity:   domain.SeverityWarning,
		Message:    "Missing signature block or execution provisions",
		Suggestion: "Include proper signature blocks with name, title, and date",
	}}, nil
}
