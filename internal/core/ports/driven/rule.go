package driven

import "github.com/custodia-labs/regcheck-cli/internal/core/domain"

// Rule is one independent red-flag check. Rules are composable and must
// not share mutable state: the scan engine may run them in any order and
// concatenates their findings.
type Rule interface {
	// ID uniquely identifies the rule. It keys the citation registry;
	// a rule whose ID has no registered citation fails the run at
	// startup.
	ID() string

	// AppliesTo reports whether the rule evaluates documents of the
	// given type.
	AppliesTo(label domain.DocType) bool

	// Evaluate scans the document and returns findings. The Citation
	// field is left empty; the engine stamps it from the registry.
	// An error (or panic) is contained by the engine as a single
	// Warning finding rather than aborting the document's scan.
	Evaluate(doc *domain.Document) ([]domain.Finding, error)
}
