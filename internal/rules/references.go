package rules

import (
	"strings"

	"github.com/custodia-labs/regcheck-cli/internal/core/domain"
)

// ADGMReferences requires constitutional and application documents to name
// ADGM as the governing jurisdiction somewhere in the text.
type ADGMReferences struct {
	applies typeSet
}

// NewADGMReferences creates the ADGM reference rule.
func NewADGMReferences() *ADGMReferences {
	return &ADGMReferences{
		applies: newTypeSet(
			domain.DocTypeArticlesOfAssociation,
			domain.DocTypeMemorandumOfAssociation,
			domain.DocTypeIncorporationApplication,
		),
	}
}

func (r *ADGMReferences) ID() string { return "adgm-references" }

func (r *ADGMReferences) AppliesTo(label domain.DocType) bool {
	return r.applies.contains(label)
}

func (r *ADGMReferences) Evaluate(doc *domain.Document) ([]domain.Finding, error) {
	lower := lowerText(doc)
	if strings.Contains(lower, "adgm") || strings.Contains(lower, "abu dhabi global market") {
		return nil, nil
	}
	return []domain.Finding{{
		Anchor:     startAnchor(doc),
		Severity:   domain.SeverityWarning,
		Message:    "Document does not clearly reference ADGM jurisdiction",
		Suggestion: "Include clear references to ADGM as the governing jurisdiction",
	}}, nil
}
