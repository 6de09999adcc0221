package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Paragraph is one unit of a document's structured text.
type Paragraph struct {
	// Index is the ordinal position within the document, starting at 0.
	Index int

	// Text is the paragraph content exactly as extracted.
	Text string
}

// Anchor is a stable reference to a paragraph within a document.
// It pairs the paragraph index with a content hash so that a reference
// survives whitespace-only reshuffling upstream and dangling references
// are detectable.
type Anchor struct {
	// Paragraph is the index of the referenced paragraph.
	Paragraph int `json:"paragraph"`

	// Hash is a short hex digest of the paragraph text.
	Hash string `json:"hash"`
}

// HashText returns the short digest used in anchors for the given text.
func HashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:4])
}

// Document is an ingested filing document with extracted structured text.
// It is immutable once ingested; the review pipeline never mutates it.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// Filename is the original upload filename.
	Filename string

	// UploadedAt is when the document entered the pipeline.
	UploadedAt time.Time

	// Paragraphs is the ordered structured text. Extraction is the
	// ingestion adapter's concern; the core never parses raw bytes.
	Paragraphs []Paragraph
}

// Anchor returns the anchor for the paragraph at index i.
// The second return is false if i is out of range.
func (d *Document) Anchor(i int) (Anchor, bool) {
	if i < 0 || i >= len(d.Paragraphs) {
		return Anchor{}, false
	}
	return Anchor{Paragraph: i, Hash: HashText(d.Paragraphs[i].Text)}, true
}

// Resolve maps an anchor back to its paragraph.
// The second return is false if the anchor does not resolve, either because
// the index is out of range or the content hash no longer matches.
func (d *Document) Resolve(a Anchor) (Paragraph, bool) {
	if a.Paragraph < 0 || a.Paragraph >= len(d.Paragraphs) {
		return Paragraph{}, false
	}
	p := d.Paragraphs[a.Paragraph]
	if HashText(p.Text) != a.Hash {
		return Paragraph{}, false
	}
	return p, true
}

// Text returns the full extracted text, paragraphs joined by newlines.
func (d *Document) Text() string {
	var b strings.Builder
	for i, p := range d.Paragraphs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(p.Text)
	}
	return b.String()
}

// Empty reports whether the document has no extracted text.
func (d *Document) Empty() bool {
	for _, p := range d.Paragraphs {
		if strings.TrimSpace(p.Text) != "" {
			return false
		}
	}
	return true
}
