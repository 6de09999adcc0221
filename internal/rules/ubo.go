package rules

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/regcheck-cli/internal/core/domain"
)

// uboField is one particular every UBO declaration must disclose.
type uboField struct {
	name     string
	keywords []string
}

var requiredUBOFields = []uboField{
	{name: "name", keywords: []string{"name", "full name"}},
	{name: "birth", keywords: []string{"date of birth", "birth", "born"}},
	{name: "nationality", keywords: []string{"nationality", "citizen"}},
	{name: "address", keywords: []string{"address", "residential"}},
	{name: "identity", keywords: []string{"passport", "identity", "id number"}},
	{name: "ownership", keywords: []string{"ownership", "beneficial", "control", "shares"}},
}

// UBOParticulars checks a UBO declaration for the particulars the beneficial
// ownership regulations require. All gaps collapse into one finding so the
// report stays readable.
type UBOParticulars struct{}

// NewUBOParticulars creates the UBO completeness rule.
func NewUBOParticulars() *UBOParticulars {
	return &UBOParticulars{}
}

func (r *UBOParticulars) ID() string { return "ubo-particulars" }

func (r *UBOParticulars) AppliesTo(label domain.DocType) bool {
	return label == domain.DocTypeUBODeclaration
}

func (r *UBOParticulars) Evaluate(doc *domain.Document) ([]domain.Finding, error) {
	lower := lowerText(doc)
	var missing []string
	for _, field := range requiredUBOFields {
		if !containsAny(lower, field.keywords) {
			missing = append(missing, field.name)
		}
	}
	if len(missing) == 0 {
		return nil, nil
	}
	return []domain.Finding{{
		Anchor:     startAnchor(doc),
		Severity:   domain.SeverityViolation,
		Message:    fmt.Sprintf("Missing required UBO particulars: %s", strings.Join(missing, ", ")),
		Suggestion: "Include all required UBO particulars as per ADGM regulations",
	}}, nil
}
