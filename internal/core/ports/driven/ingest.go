package driven

import (
	"context"

	"github.com/custodia-labs/regcheck-cli/internal/core/domain"
)

// DocumentSource supplies documents with already-extracted structured text.
// Extraction from raw file bytes is the adapter's concern; the core never
// parses file formats itself.
type DocumentSource interface {
	// Load reads every supported document under path.
	Load(ctx context.Context, path string) ([]*domain.Document, error)
}
