package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument() *Document {
	return &Document{
		ID:       "doc-1",
		Filename: "articles.docx",
		Paragraphs: []Paragraph{
			{Index: 0, Text: "ARTICLES OF ASSOCIATION"},
			{Index: 1, Text: "The registered office shall be situated in ADGM."},
			{Index: 2, Text: "Disputes are subject to the jurisdiction of the ADGM Courts."},
		},
	}
}

func TestDocument_Anchor(t *testing.T) {
	doc := testDocument()

	a, ok := doc.Anchor(1)
	require.True(t, ok)
	assert.Equal(t, 1, a.Paragraph)
	assert.Equal(t, HashText(doc.Paragraphs[1].Text), a.Hash)

	_, ok = doc.Anchor(-1)
	assert.False(t, ok)
	_, ok = doc.Anchor(3)
	assert.False(t, ok)
}

func TestDocument_Resolve(t *testing.T) {
	doc := testDocument()

	a, ok := doc.Anchor(2)
	require.True(t, ok)

	p, ok := doc.Resolve(a)
	require.True(t, ok)
	assert.Equal(t, doc.Paragraphs[2].Text, p.Text)

	// Out of range index does not resolve.
	_, ok = doc.Resolve(Anchor{Paragraph: 99, Hash: a.Hash})
	assert.False(t, ok)

	// Stale hash does not resolve.
	_, ok = doc.Resolve(Anchor{Paragraph: 2, Hash: "deadbeef"})
	assert.False(t, ok)
}

func TestDocument_Text(t *testing.T) {
	doc := testDocument()
	text := doc.Text()
	assert.Contains(t, text, "ARTICLES OF ASSOCIATION")
	assert.Contains(t, text, "ADGM Courts")
}

func TestDocument_Empty(t *testing.T) {
	assert.True(t, (&Document{}).Empty())
	assert.True(t, (&Document{Paragraphs: []Paragraph{{Text: "  \t"}}}).Empty())
	assert.False(t, testDocument().Empty())
}

func TestHashText_Stable(t *testing.T) {
	assert.Equal(t, HashText("abc"), HashText("abc"))
	assert.NotEqual(t, HashText("abc"), HashText("abd"))
	assert.Len(t, HashText("abc"), 8)
}
