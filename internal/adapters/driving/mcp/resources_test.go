package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/regcheck-cli/internal/core/domain"
	"github.com/custodia-labs/regcheck-cli/internal/core/ports/driving"
)

func TestExtractRunID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid report URI",
			uri:      "regcheck://reports/run-123",
			expected: "run-123",
		},
		{
			name:     "invalid prefix",
			uri:      "file://reports/run-123",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractRunID(tt.uri)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleReportsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("nil report service returns empty list", func(t *testing.T) {
		ports := &Ports{Review: &mockReviewService{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("regcheck://reports")
		result, err := server.handleReportsResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("returns listings successfully", func(t *testing.T) {
		mockReport := &mockReportService{
			listings: []driving.ReportListing{
				{RunID: "run-1", TransactionType: "incorporation", SummaryStatus: domain.StatusCompliant, Score: 100},
			},
		}

		ports := &Ports{Review: &mockReviewService{}, Report: mockReport}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("regcheck://reports")
		result, err := server.handleReportsResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, "run-1")
		assert.Contains(t, result.Contents[0].Text, "incorporation")
		assert.Contains(t, result.Contents[0].Text, "Compliant")
	})

	t.Run("propagates listing failure", func(t *testing.T) {
		mockReport := &mockReportService{err: errors.New("store closed")}

		ports := &Ports{Review: &mockReviewService{}, Report: mockReport}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("regcheck://reports")
		_, err = server.handleReportsResource(ctx, req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "store closed")
	})
}

func TestServer_handleReportResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns report body", func(t *testing.T) {
		mockReport := &mockReportService{
			report: &domain.ComplianceReport{
				RunID:           "run-1",
				TransactionType: "incorporation",
				SummaryStatus:   domain.StatusIncomplete,
				Score:           81,
			},
		}

		ports := &Ports{Review: &mockReviewService{}, Report: mockReport}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("regcheck://reports/run-1")
		result, err := server.handleReportResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, `"run_id": "run-1"`)
		assert.Contains(t, result.Contents[0].Text, "Incomplete")
	})

	t.Run("nil report service is not found", func(t *testing.T) {
		ports := &Ports{Review: &mockReviewService{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("regcheck://reports/run-1")
		_, err = server.handleReportResource(ctx, req)

		require.Error(t, err)
	})

	t.Run("malformed URI is not found", func(t *testing.T) {
		ports := &Ports{Review: &mockReviewService{}, Report: &mockReportService{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("regcheck://other/run-1")
		_, err = server.handleReportResource(ctx, req)

		require.Error(t, err)
	})

	t.Run("propagates store failure", func(t *testing.T) {
		mockReport := &mockReportService{err: errors.New("not found")}

		ports := &Ports{Review: &mockReviewService{}, Report: mockReport}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("regcheck://reports/missing")
		_, err = server.handleReportResource(ctx, req)

		require.Error(t, err)
	})
}
