package rules

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/regcheck-cli/internal/core/domain"
)

// articlesSection is one provision group the Articles must cover, with the
// keywords that evidence it.
type articlesSection struct {
	name     string
	keywords []string
}

// requiredArticlesSections is evaluated in order so findings come out
// deterministic for a given document.
var requiredArticlesSections = []articlesSection{
	{name: "objects", keywords: []string{"objects", "purpose", "business"}},
	{name: "share capital", keywords: []string{"share capital", "capital", "shares"}},
	{name: "directors", keywords: []string{"directors", "board"}},
	{name: "meetings", keywords: []string{"meetings", "general meeting"}},
	{name: "transfers", keywords: []string{"transfer", "transmission"}},
}

// ArticlesSections checks Articles of Association for the provision groups
// the model articles expect.
type ArticlesSections struct{}

// NewArticlesSections creates the required sections rule.
func NewArticlesSections() *ArticlesSections {
	return &ArticlesSections{}
}

func (r *ArticlesSections) ID() string { return "articles-sections" }

func (r *ArticlesSections) AppliesTo(label domain.DocType) bool {
	return label == domain.DocTypeArticlesOfAssociation
}

func (r *ArticlesSections) Evaluate(doc *domain.Document) ([]domain.Finding, error) {
	lower := lowerText(doc)
	var findings []domain.Finding
	for _, section := range requiredArticlesSections {
		if containsAny(lower, section.keywords) {
			continue
		}
		findings = append(findings, domain.Finding{
			Anchor:     startAnchor(doc),
			Severity:   domain.SeverityWarning,
			Message:    fmt.Sprintf("Missing or unclear %s provisions", section.name),
			Suggestion: fmt.Sprintf("Include clear provisions regarding %s", section.name),
		})
	}
	return findings, nil
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
