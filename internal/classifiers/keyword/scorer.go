// Package keyword provides an offline type scorer built on keyword and
// title pattern matching. It is the default scoring backend: deterministic,
// dependency-free, and good enough for well-formed ADGM filings.
package keyword

import (
	"context"
	"regexp"
	"strings"

	"github.com/custodia-labs/regcheck-cli/internal/core/domain"
	"github.com/custodia-labs/regcheck-cli/internal/core/ports/driven"
)

var _ driven.TypeScorer = (*Scorer)(nil)

// Match strengths. An exact phrase in the body outranks a title pattern,
// which outranks a filename hit.
const (
	phraseScore   = 0.95
	titleScore    = 0.90
	filenameScore = 0.85

	// titleWindow is how much of the document start counts as the title
	// region for pattern matching.
	titleWindow = 500
)

// Scorer scores documents against taxonomy candidates by keyword evidence.
// It is stateless and safe for concurrent use.
type Scorer struct{}

// New creates a keyword scorer.
func New() *Scorer {
	return &Scorer{}
}

// Name identifies the backend in logs and reports.
func (s *Scorer) Name() string { return "keyword" }

// Score returns the strongest keyword evidence that doc is of type candidate,
// in [0, 1]. A zero score means no evidence at all.
func (s *Scorer) Score(_ context.Context, doc *domain.Document, candidate domain.DocType) (float64, error) {
	keywords, ok := typeKeywords[candidate]
	if !ok {
		return 0, nil
	}

	text := strings.ToLower(doc.Text())
	filename := strings.ToLower(doc.Filename)

	best := 0.0
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			best = max(best, phraseScore)
		}
		if filename != "" && strings.Contains(filename, keyword) {
			best = max(best, filenameScore)
		}
	}

	if patterns, ok := titlePatterns[candidate]; ok {
		start := text
		if len(start) > titleWindow {
			start = start[:titleWindow]
		}
		for _, pattern := range patterns {
			if pattern.MatchString(start) {
				best = max(best, titleScore)
			}
		}
	}

	return best, nil
}

// Close is a no-op; the scorer holds no resources.
func (s *Scorer) Close() error { return nil }

// typeKeywords is the evidence table per taxonomy candidate. Phrases are
// lowercase; matching is substring against lowercased text and filename.
var typeKeywords = map[domain.DocType][]string{
	domain.DocTypeArticlesOfAssociation: {
		"articles of association", "aoa", "articles", "company constitution",
	},
	domain.DocTypeMemorandumOfAssociation: {
		"memorandum of association", "moa", "memorandum", "company memorandum",
	},
	domain.DocTypeBoardResolution: {
		"board resolution", "directors resolution", "board meeting", "director resolution",
	},
	domain.DocTypeShareholderResolution: {
		"shareholder resolution", "members resolution", "shareholders meeting",
	},
	domain.DocTypeIncorporationApplication: {
		"incorporation application", "application for incorporation",
		"company incorporation", "incorporation form",
	},
	domain.DocTypeUBODeclaration: {
		"ultimate beneficial owner", "beneficial ownership", "ubo declaration",
		"beneficial owner", "ubo",
	},
	domain.DocTypeRegisterOfMembers: {
		"register of members", "members register", "share register", "shareholder register",
	},
	domain.DocTypeRegisterOfDirectors: {
		"register of directors", "directors register", "director register",
	},
	domain.DocTypeRegisterOfMembersAndDirectors: {
		"register of members and directors", "combined register",
		"members and directors register",
	},
	domain.DocTypeChangeOfAddressNotice: {
		"change of registered address", "registered office change", "address change",
	},
	domain.DocTypeEmploymentContract: {
		"employment contract", "employment agreement", "service agreement",
		"employee contract",
	},
	domain.DocTypeCompliancePolicy: {
		"compliance policy", "policy document", "procedure", "risk policy",
		"governance policy",
	},
	domain.DocTypeCommercialAgreement: {
		"commercial agreement", "service agreement", "consultancy agreement",
		"nda", "non-disclosure", "sha", "shareholder agreement",
	},
	domain.DocTypeLicensingFiling: {
		"licensing application", "license application", "regulatory filing",
		"business plan", "licensing",
	},
}

// titlePatterns are stricter heading patterns checked against the document
// start only. Not every candidate has one.
var titlePatterns = map[domain.DocType][]*regexp.Regexp{
	domain.DocTypeArticlesOfAssociation: {
		regexp.MustCompile(`articles\s+of\s+association`),
		regexp.MustCompile(`company\s+constitution`),
		regexp.MustCompile(`constitutional\s+document`),
	},
	domain.DocTypeMemorandumOfAssociation: {
		regexp.MustCompile(`memorandum\s+of\s+association`),
		regexp.MustCompile(`company\s+memorandum`),
	},
	domain.DocTypeBoardResolution: {
		regexp.MustCompile(`board\s+resolution`),
		regexp.MustCompile(`directors?\s+resolution`),
		regexp.MustCompile(`resolution\s+of\s+the\s+board`),
	},
	domain.DocTypeUBODeclaration: {
		regexp.MustCompile(`ultimate\s+beneficial\s+owner`),
		regexp.MustCompile(`beneficial\s+ownership\s+declaration`),
		regexp.MustCompile(`ubo\s+declaration`),
	},
	domain.DocTypeRegisterOfMembers: {
		regexp.MustCompile(`register\s+of\s+members`),
		regexp.MustCompile(`members?\s+register`),
	},
	domain.DocTypeRegisterOfDirectors: {
		regexp.MustCompile(`register\s+of\s+directors?`),
		regexp.MustCompile(`directors?\s+register`),
	},
}
