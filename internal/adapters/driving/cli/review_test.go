package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/regcheck-cli/internal/core/domain"
)

func resetReviewFlags() {
	reviewTransaction = ""
	reviewJSON = false
	reviewOut = ""
	reviewNoAnnotate = false
}

func TestReviewCmd_Use(t *testing.T) {
	assert.Equal(t, "review [path]", reviewCmd.Use)
}

func TestReviewCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"review"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestReviewCmd_ServiceNotConfigured(t *testing.T) {
	oldService := reviewService
	reviewService = nil
	defer func() {
		reviewService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"review", "/tmp/docs"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "review service not configured")
}

func TestReviewCmd_PrintsSummary(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetReviewFlags()

	dir := t.TempDir()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"review", "-t", "incorporation", dir})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Run:         run-1")
	assert.Contains(t, out, "Status:      NonCompliant")
	assert.Contains(t, out, "articles.docx -> ArticlesOfAssociation (0.92)")
	assert.Contains(t, out, "[MISSING] ubo-declaration")
	assert.Contains(t, out, "[Violation] jurisdiction-courts")
	assert.Contains(t, out, "Address 1 violation(s) before submission")
}

func TestReviewCmd_WritesAnnotatedCopies(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetReviewFlags()

	dir := t.TempDir()
	outDir := t.TempDir()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"review", "-t", "incorporation", "--out", outDir, dir})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	require.NoError(t, err)

	target := filepath.Join(outDir, "reviewed_articles.txt")
	data, err := os.ReadFile(target)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "=== REVIEW COMMENTS ===")
	assert.Contains(t, text, "Checklist: 1 of 2 requirements satisfied")
	assert.Contains(t, text, "Disputes shall be settled in dubai courts.")
	assert.Contains(t, text, ">> [Violation] jurisdiction-courts: References dubai courts instead of ADGM Courts (ADGM Courts Framework)")
}

func TestReviewCmd_NoAnnotate(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetReviewFlags()

	dir := t.TempDir()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"review", "-t", "incorporation", "--no-annotate", dir})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReviewCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetReviewFlags()

	dir := t.TempDir()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"review", "-t", "incorporation", "--no-annotate", "--json", dir})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"run_id": "run-1"`)
	assert.Contains(t, buf.String(), `"summary_status": "NonCompliant"`)
}

func TestReviewCmd_InfersTransactionType(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetReviewFlags()

	dir := t.TempDir()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"review", "--no-annotate", dir})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Run:         run-1")
}

func TestReviewCmd_InferenceFails(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetReviewFlags()
	reviewService = &mockReviewService{result: sampleReviewResult()}

	dir := t.TempDir()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"review", "--no-annotate", dir})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "could not infer")
}

func TestReviewCmd_NoDocuments(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetReviewFlags()
	documentSource = &mockDocumentSource{}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"review", "-t", "incorporation", t.TempDir()})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no supported documents")
}

func TestReviewCmd_ServiceError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetReviewFlags()
	reviewService = &mockReviewServiceError{}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"review", "-t", "incorporation", t.TempDir()})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "review failed")
}

func TestRenderAnnotated_NoComments(t *testing.T) {
	doc := &domain.Document{
		ID:       "d1",
		Filename: "plain.txt",
		Paragraphs: []domain.Paragraph{
			{Index: 0, Text: "First paragraph."},
			{Index: 1, Text: "Second paragraph."},
		},
	}

	text := renderAnnotated(domain.AnnotatedDocument{Document: doc, DocumentID: "d1"})

	assert.Equal(t, "First paragraph.\nSecond paragraph.\n", text)
}

func TestAnnotatedBase(t *testing.T) {
	assert.Equal(t, "articles", annotatedBase("articles.docx"))
	assert.Equal(t, "notes", annotatedBase("notes.txt"))
	assert.Equal(t, "README", annotatedBase("README"))
}
