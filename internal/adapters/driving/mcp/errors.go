// Package mcp provides an MCP (Model Context Protocol) server adapter for
// regcheck. It lets AI assistants run compliance reviews and read stored
// reports.
package mcp

import "errors"

// ErrMissingReviewService is returned when the review service is not provided.
var ErrMissingReviewService = errors.New("mcp: review service is required")
