package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/regcheck-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleReport(runID string, generatedAt time.Time) *domain.ComplianceReport {
	return &domain.ComplianceReport{
		RunID:           runID,
		TransactionType: "incorporation",
		SummaryStatus:   domain.StatusNonCompliant,
		Score:           72.5,
		Documents: []domain.DocumentSummary{
			{DocumentID: "d1", Filename: "articles.docx", Label: domain.DocTypeArticlesOfAssociation, Confidence: 0.9},
		},
		Classifications: []domain.Classification{
			{DocumentID: "d1", Label: domain.DocTypeArticlesOfAssociation, Confidence: 0.9},
		},
		ChecklistResults: []domain.ChecklistResult{
			{RequirementID: "articles", Status: domain.StatusSatisfied, MatchedDocumentIDs: []string{"d1"}},
			{RequirementID: "ubo-declaration", Status: domain.StatusMissing},
		},
		Findings: []domain.Finding{
			{
				DocumentID: "d1",
				Anchor:     domain.Anchor{Paragraph: 2, Hash: domain.HashText("clause")},
				RuleID:     "jurisdiction-courts",
				Severity:   domain.SeverityViolation,
				Message:    "References dubai courts instead of ADGM Courts",
				Citation:   "ADGM Courts Framework",
			},
		},
		Recommendations: []string{"Address 1 violation(s) before submission"},
		GeneratedAt:     generatedAt,
	}
}

func TestStore_SaveAndGetReport(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	saved := sampleReport("run-1", time.Now().UTC().Truncate(time.Second))
	require.NoError(t, store.SaveReport(ctx, saved))

	got, err := store.GetReport(ctx, "run-1")
	require.NoError(t, err)

	// The JSON body round-trips the full report.
	assert.Equal(t, saved.RunID, got.RunID)
	assert.Equal(t, saved.SummaryStatus, got.SummaryStatus)
	assert.Equal(t, saved.ChecklistResults, got.ChecklistResults)
	assert.Equal(t, saved.Findings, got.Findings)
	assert.Equal(t, saved.Recommendations, got.Recommendations)
	assert.True(t, saved.GeneratedAt.Equal(got.GeneratedAt))
}

func TestStore_GetReport_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetReport(context.Background(), "no-such-run")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_SaveReport_Invalid(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	assert.ErrorIs(t, store.SaveReport(ctx, nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, store.SaveReport(ctx, &domain.ComplianceReport{}), domain.ErrInvalidInput)
}

func TestStore_SaveReport_Replaces(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := sampleReport("run-1", time.Now().UTC())
	require.NoError(t, store.SaveReport(ctx, first))

	second := sampleReport("run-1", time.Now().UTC())
	second.Score = 100
	second.SummaryStatus = domain.StatusCompliant
	require.NoError(t, store.SaveReport(ctx, second))

	got, err := store.GetReport(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompliant, got.SummaryStatus)

	summaries, err := store.ListReports(ctx)
	require.NoError(t, err)
	assert.Len(t, summaries, 1)
}

func TestStore_ListReports_NewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, store.SaveReport(ctx, sampleReport("run-old", base.Add(-2*time.Hour))))
	require.NoError(t, store.SaveReport(ctx, sampleReport("run-new", base)))
	require.NoError(t, store.SaveReport(ctx, sampleReport("run-mid", base.Add(-time.Hour))))

	summaries, err := store.ListReports(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	assert.Equal(t, "run-new", summaries[0].RunID)
	assert.Equal(t, "run-mid", summaries[1].RunID)
	assert.Equal(t, "run-old", summaries[2].RunID)
	assert.Equal(t, "incorporation", summaries[0].TransactionType)
	assert.Equal(t, domain.StatusNonCompliant, summaries[0].SummaryStatus)
	assert.InDelta(t, 72.5, summaries[0].Score, 1e-9)
}

func TestStore_ListReports_Empty(t *testing.T) {
	store := newTestStore(t)

	summaries, err := store.ListReports(context.Background())
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestStore_Reopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.SaveReport(ctx, sampleReport("run-1", time.Now().UTC())))
	require.NoError(t, store.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.GetReport(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, "run-1", got.RunID)
}
