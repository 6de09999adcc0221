package mcp

import (
	"github.com/custodia-labs/regcheck-cli/internal/core/ports/driven"
	"github.com/custodia-labs/regcheck-cli/internal/core/ports/driving"
)

// Ports aggregates all port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Review runs compliance reviews.
	Review driving.ReviewService

	// Report retrieves stored compliance reports.
	Report driving.ReportService

	// Source loads documents from the filesystem for the review tool.
	Source driven.DocumentSource
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Review == nil {
		return ErrMissingReviewService
	}
	// Report and Source are optional; tools and resources degrade.
	return nil
}
