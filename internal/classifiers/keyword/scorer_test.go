package keyword

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/regcheck-cli/internal/core/domain"
)

func doc(filename string, paras ...string) *domain.Document {
	d := &domain.Document{ID: "d1", Filename: filename}
	for i, text := range paras {
		d.Paragraphs = append(d.Paragraphs, domain.Paragraph{Index: i, Text: text})
	}
	return d
}

func TestScorer_ExactPhrase(t *testing.T) {
	s := New()
	score, err := s.Score(context.Background(), doc("upload.docx", "ARTICLES OF ASSOCIATION", "of Example Ltd"),
		domain.DocTypeArticlesOfAssociation)
	require.NoError(t, err)
	assert.InDelta(t, 0.95, score, 1e-9)
}

func TestScorer_TitlePatternWithoutPhrase(t *testing.T) {
	// "resolution of the board" matches no keyword phrase but does match
	// the heading pattern, which scores below an exact phrase.
	s := New()
	score, err := s.Score(context.Background(), doc("upload.docx", "RESOLUTION OF THE BOARD"),
		domain.DocTypeBoardResolution)
	require.NoError(t, err)
	assert.InDelta(t, 0.90, score, 1e-9)
}

func TestScorer_FilenameOnly(t *testing.T) {
	s := New()
	score, err := s.Score(context.Background(), doc("ubo_declaration_final.docx", "unrelated body text"),
		domain.DocTypeUBODeclaration)
	require.NoError(t, err)
	assert.InDelta(t, 0.85, score, 1e-9)
}

func TestScorer_NoEvidence(t *testing.T) {
	s := New()
	score, err := s.Score(context.Background(), doc("upload.docx", "nothing relevant here"),
		domain.DocTypeRegisterOfDirectors)
	require.NoError(t, err)
	assert.Zero(t, score)
}

func TestScorer_TitlePatternOnlyNearStart(t *testing.T) {
	// The heading pattern window covers the document start only. Push the
	// pattern past it and only keyword matching remains.
	filler := make([]byte, 600)
	for i := range filler {
		filler[i] = 'x'
	}
	s := New()
	score, err := s.Score(context.Background(),
		doc("upload.docx", string(filler), "resolution of the board"),
		domain.DocTypeBoardResolution)
	require.NoError(t, err)
	assert.Zero(t, score)
}

func TestScorer_EveryCandidateCovered(t *testing.T) {
	for _, candidate := range domain.Taxonomy() {
		assert.NotEmpty(t, typeKeywords[candidate], "no keywords for %s", candidate)
	}
}
