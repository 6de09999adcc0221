package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/regcheck-cli/internal/core/domain"
	"github.com/custodia-labs/regcheck-cli/internal/logger"
)

var (
	reviewTransaction string
	reviewJSON        bool
	reviewOut         string
	reviewNoAnnotate  bool
)

var reviewCmd = &cobra.Command{
	Use:   "review [path]",
	Short: "Review a filing document set",
	Long: `Reviews the documents at the given path (a file or a directory)
against the checklist and red-flag rules for a transaction type.

When --transaction is omitted, the transaction type is inferred from the
classified document mix. Annotated copies named reviewed_<file>.txt are
written next to the originals unless --out or --no-annotate says otherwise.`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func init() {
	reviewCmd.Flags().StringVarP(&reviewTransaction, "transaction", "t", "", "transaction type (inferred when omitted)")
	reviewCmd.Flags().BoolVar(&reviewJSON, "json", false, "output the full report as JSON")
	reviewCmd.Flags().StringVar(&reviewOut, "out", "", "directory for annotated copies (default: alongside originals)")
	reviewCmd.Flags().BoolVar(&reviewNoAnnotate, "no-annotate", false, "skip writing annotated copies")
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	if reviewService == nil || documentSource == nil {
		return errors.New("review service not configured")
	}

	ctx := cmd.Context()
	path := args[0]

	docs, err := documentSource.Load(ctx, path)
	if err != nil {
		return fmt.Errorf("loading documents: %w", err)
	}
	if len(docs) == 0 {
		return fmt.Errorf("no supported documents found at %s", path)
	}

	transaction := reviewTransaction
	if transaction == "" {
		inferred, confidence, err := reviewService.InferTransactionType(ctx, docs)
		if err != nil {
			return fmt.Errorf("inferring transaction type: %w", err)
		}
		if inferred == "" {
			return errors.New("could not infer a transaction type; pass --transaction")
		}
		logger.Info("inferred transaction type %s (%.0f%% confidence)", inferred, confidence*100)
		transaction = inferred
	}

	result, err := reviewService.Run(ctx, docs, transaction)
	if err != nil {
		return fmt.Errorf("review failed: %w", err)
	}

	if !reviewNoAnnotate {
		if err := writeAnnotated(cmd, path, result.Annotated); err != nil {
			return err
		}
	}

	if reviewJSON {
		return outputReportJSON(cmd, result.Report)
	}
	outputReportSummary(cmd, result.Report)
	return nil
}

// writeAnnotated renders each annotated document to reviewed_<file>.txt in
// the output directory.
func writeAnnotated(cmd *cobra.Command, inputPath string, annotated []domain.AnnotatedDocument) error {
	outDir := reviewOut
	if outDir == "" {
		info, err := os.Stat(inputPath)
		if err != nil {
			return fmt.Errorf("resolving output directory: %w", err)
		}
		if info.IsDir() {
			outDir = inputPath
		} else {
			outDir = filepath.Dir(inputPath)
		}
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, ann := range annotated {
		name := "reviewed_" + annotatedBase(ann.Document.Filename) + ".txt"
		target := filepath.Join(outDir, name)
		if err := os.WriteFile(target, []byte(renderAnnotated(ann)), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", target, err)
		}
		cmd.Printf("Annotated copy: %s\n", target)
	}
	return nil
}

// annotatedBase strips the original extension so reviewed_articles.txt comes
// from articles.docx.
func annotatedBase(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}

// renderAnnotated lays out the original paragraphs with the comment layer
// inlined: document-level comments first, then each paragraph followed by
// the comments anchored to it.
func renderAnnotated(ann domain.AnnotatedDocument) string {
	byParagraph := make(map[int][]domain.Comment)
	var docLevel []domain.Comment
	for _, c := range ann.Comments {
		if c.Anchor == nil {
			docLevel = append(docLevel, c)
			continue
		}
		byParagraph[c.Anchor.Paragraph] = append(byParagraph[c.Anchor.Paragraph], c)
	}

	var b strings.Builder
	if len(docLevel) > 0 {
		b.WriteString("=== REVIEW COMMENTS ===\n")
		for _, c := range docLevel {
			b.WriteString(formatComment(c))
			b.WriteString("\n")
		}
		b.WriteString("=======================\n\n")
	}

	for _, p := range ann.Document.Paragraphs {
		b.WriteString(p.Text)
		b.WriteString("\n")
		for _, c := range byParagraph[p.Index] {
			b.WriteString("    >> ")
			b.WriteString(formatComment(c))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func formatComment(c domain.Comment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s]", c.Severity)
	if c.RuleID != "" {
		fmt.Fprintf(&b, " %s:", c.RuleID)
	}
	b.WriteString(" ")
	b.WriteString(c.Message)
	if c.Citation != "" {
		fmt.Fprintf(&b, " (%s)", c.Citation)
	}
	return b.String()
}

func outputReportJSON(cmd *cobra.Command, report *domain.ComplianceReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputReportSummary(cmd *cobra.Command, report *domain.ComplianceReport) {
	cmd.Println()
	cmd.Printf("Run:         %s\n", report.RunID)
	cmd.Printf("Transaction: %s\n", report.TransactionType)
	cmd.Printf("Status:      %s\n", report.SummaryStatus)
	cmd.Printf("Score:       %.1f / 100\n", report.Score)
	cmd.Println()

	cmd.Println("Documents:")
	for _, doc := range report.Documents {
		cmd.Printf("  %s -> %s (%.2f)\n", doc.Filename, doc.Label, doc.Confidence)
	}
	cmd.Println()

	cmd.Println("Checklist:")
	for _, res := range report.ChecklistResults {
		cmd.Printf("  [%s] %s\n", checklistMark(res.Status), res.RequirementID)
	}
	cmd.Println()

	if len(report.Findings) == 0 {
		cmd.Println("No red flags found.")
	} else {
		cmd.Printf("Findings (%d):\n", len(report.Findings))
		for _, f := range report.Findings {
			cmd.Printf("  [%s] %s: %s\n", f.Severity, f.RuleID, f.Message)
			if f.Citation != "" {
				cmd.Printf("      Citation: %s\n", f.Citation)
			}
		}
	}

	if len(report.Recommendations) > 0 {
		cmd.Println()
		cmd.Println("Recommendations:")
		for _, rec := range report.Recommendations {
			cmd.Printf("  - %s\n", rec)
		}
	}
}

func checklistMark(status domain.ResultStatus) string {
	switch status {
	case domain.StatusSatisfied:
		return "ok"
	case domain.StatusMissing:
		return "MISSING"
	case domain.StatusDuplicated:
		return "DUPLICATE"
	case domain.StatusConditionallyWaived:
		return "waived"
	default:
		return string(status)
	}
}
