package rules

import (
	"strings"

	"github.com/custodia-labs/regcheck-cli/internal/core/domain"
	"github.com/custodia-labs/regcheck-cli/internal/core/ports/driven"
)

var (
	_ driven.Rule = (*Jurisdiction)(nil)
	_ driven.Rule = (*JurisdictionClause)(nil)
	_ driven.Rule = (*RegisteredOffice)(nil)
	_ driven.Rule = (*ArticlesSections)(nil)
	_ driven.Rule = (*Signatory)(nil)
	_ driven.Rule = (*UBOParticulars)(nil)
	_ driven.Rule = (*BindingLanguage)(nil)
	_ driven.Rule = (*ADGMReferences)(nil)
)

// Defaults returns the standard ADGM rule set.
// Order carries no meaning: the scan engine's output is order-independent.
func Defaults() []driven.Rule {
	return []driven.Rule{
		NewJurisdiction(),
		NewJurisdictionClause(),
		NewRegisteredOffice(),
		NewArticlesSections(),
		NewSignatory(),
		NewUBOParticulars(),
		NewBindingLanguage(),
		NewADGMReferences(),
	}
}

// typeSet is a membership helper for AppliesTo implementations.
type typeSet map[domain.DocType]struct{}

func newTypeSet(types ...domain.DocType) typeSet {
	s := make(typeSet, len(types))
	for _, t := range types {
		s[t] = struct{}{}
	}
	return s
}

func (s typeSet) contains(t domain.DocType) bool {
	_, ok := s[t]
	return ok
}

// findParagraph returns the anchor of the first paragraph whose lowercased
// text satisfies match, or the document-start anchor when none does.
func findParagraph(doc *domain.Document, match func(lower string) bool) domain.Anchor {
	for i, p := range doc.Paragraphs {
		if match(strings.ToLower(p.Text)) {
			if anchor, ok := doc.Anchor(i); ok {
				return anchor
			}
		}
	}
	anchor, _ := doc.Anchor(0)
	return anchor
}

// startAnchor is the document-start anchor used for findings with no more
// specific location.
func startAnchor(doc *domain.Document) domain.Anchor {
	anchor, _ := doc.Anchor(0)
	return anchor
}

// lowerText returns the full document text lowercased, for whole-document
// phrase checks.
func lowerText(doc *domain.Document) string {
	return strings.ToLower(doc.Text())
}
