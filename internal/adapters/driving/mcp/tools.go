package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/regcheck-cli/internal/core/domain"
)

// ReviewInput is the input schema for the review tool.
type ReviewInput struct {
	Path            string `json:"path" jsonschema:"path to the document or directory to review"`
	TransactionType string `json:"transaction_type,omitempty" jsonschema:"transaction type to review against (inferred when omitted)"`
}

// ReviewOutput is the output schema for the review tool.
type ReviewOutput struct {
	RunID           string            `json:"run_id"`
	TransactionType string            `json:"transaction_type"`
	SummaryStatus   string            `json:"summary_status"`
	Score           float64           `json:"score"`
	Documents       []DocumentOutput  `json:"documents"`
	Checklist       []ChecklistOutput `json:"checklist"`
	Findings        []FindingOutput   `json:"findings"`
	Recommendations []string          `json:"recommendations,omitempty"`
}

// DocumentOutput summarises one reviewed document.
type DocumentOutput struct {
	DocumentID string  `json:"document_id"`
	Filename   string  `json:"filename"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// ChecklistOutput is one checklist requirement outcome.
type ChecklistOutput struct {
	RequirementID string   `json:"requirement_id"`
	Status        string   `json:"status"`
	MatchedIDs    []string `json:"matched_document_ids,omitempty"`
}

// FindingOutput is one red-flag finding.
type FindingOutput struct {
	DocumentID string `json:"document_id"`
	Paragraph  int    `json:"paragraph"`
	RuleID     string `json:"rule_id"`
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	Citation   string `json:"citation,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "review",
		Description: "Review a filing document set for ADGM compliance",
	}, s.handleReview)
}

// handleReview handles the review tool invocation.
func (s *Server) handleReview(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ReviewInput,
) (*mcp.CallToolResult, ReviewOutput, error) {
	if s.ports.Source == nil {
		return nil, ReviewOutput{}, errors.New("document source not configured")
	}

	docs, err := s.ports.Source.Load(ctx, input.Path)
	if err != nil {
		return nil, ReviewOutput{}, err
	}
	if len(docs) == 0 {
		return nil, ReviewOutput{}, errors.New("no supported documents found")
	}

	transaction := input.TransactionType
	if transaction == "" {
		inferred, _, err := s.ports.Review.InferTransactionType(ctx, docs)
		if err != nil {
			return nil, ReviewOutput{}, err
		}
		if inferred == "" {
			return nil, ReviewOutput{}, errors.New("could not infer a transaction type; set transaction_type")
		}
		transaction = inferred
	}

	result, err := s.ports.Review.Run(ctx, docs, transaction)
	if err != nil {
		return nil, ReviewOutput{}, err
	}

	return nil, reviewOutput(result.Report), nil
}

// reviewOutput flattens a compliance report into the tool output schema.
func reviewOutput(report *domain.ComplianceReport) ReviewOutput {
	output := ReviewOutput{
		RunID:           report.RunID,
		TransactionType: report.TransactionType,
		SummaryStatus:   string(report.SummaryStatus),
		Score:           report.Score,
		Documents:       make([]DocumentOutput, len(report.Documents)),
		Checklist:       make([]ChecklistOutput, len(report.ChecklistResults)),
		Findings:        make([]FindingOutput, len(report.Findings)),
		Recommendations: report.Recommendations,
	}

	for i, doc := range report.Documents {
		output.Documents[i] = DocumentOutput{
			DocumentID: doc.DocumentID,
			Filename:   doc.Filename,
			Label:      string(doc.Label),
			Confidence: doc.Confidence,
		}
	}
	for i, res := range report.ChecklistResults {
		output.Checklist[i] = ChecklistOutput{
			RequirementID: res.RequirementID,
			Status:        string(res.Status),
			MatchedIDs:    res.MatchedDocumentIDs,
		}
	}
	for i, f := range report.Findings {
		output.Findings[i] = FindingOutput{
			DocumentID: f.DocumentID,
			Paragraph:  f.Anchor.Paragraph,
			RuleID:     f.RuleID,
			Severity:   string(f.Severity),
			Message:    f.Message,
			Citation:   f.Citation,
		}
	}
	return output
}
