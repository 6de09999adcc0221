package driven

import (
	"context"

	"github.com/custodia-labs/regcheck-cli/internal/core/domain"
)

// TypeScorer scores how well a document matches a candidate type.
// It is the capability interface the classifier is polymorphic over;
// implementations may be keyword/structural heuristics or a semantic
// backend over HTTP.
//
// Scores must be comparable across candidates and deterministic for
// identical input and backend version, so regenerated reports reproduce.
type TypeScorer interface {
	// Name identifies the backend for logging and report provenance.
	Name() string

	// Score returns the match score for candidate in [0, 1].
	// Implementations must honour ctx cancellation and deadlines.
	Score(ctx context.Context, doc *domain.Document, candidate domain.DocType) (float64, error)

	// Close releases backend resources.
	Close() error
}
