package rules

import (
	"strings"

	"github.com/custodia-labs/regcheck-cli/internal/core/domain"
)

// RegisteredOffice requires incorporation documents to place the registered
// office inside ADGM.
type RegisteredOffice struct {
	applies typeSet
}

// NewRegisteredOffice creates the registered office rule.
func NewRegisteredOffice() *RegisteredOffice {
	return &RegisteredOffice{
		applies: newTypeSet(
			domain.DocTypeArticlesOfAssociation,
			domain.DocTypeIncorporationApplication,
		),
	}
}

func (r *RegisteredOffice) ID() string { return "registered-office" }

func (r *RegisteredOffice) AppliesTo(label domain.DocType) bool {
	return r.applies.contains(label)
}

func (r *RegisteredOffice) Evaluate(doc *domain.Document) ([]domain.Finding, error) {
	lower := lowerText(doc)
	if strings.Contains(lower, "adgm") || strings.Contains(lower, "abu dhabi global market") {
		return nil, nil
	}
	return []domain.Finding{{
		Anchor:     startAnchor(doc),
		Severity:   domain.SeverityViolation,
		Message:    "Registered office address must be within ADGM",
		Suggestion: "Specify a registered office address within ADGM jurisdiction",
	}}, nil
}
