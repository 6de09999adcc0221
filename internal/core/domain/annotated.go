package domain

// Comment is one annotation attached to a document.
type Comment struct {
	// Anchor locates the comment. Nil for document-level comments, which
	// render at a fixed insertion point at the start of the document.
	Anchor *Anchor `json:"anchor,omitempty"`

	// RuleID is the originating rule, empty for checklist summaries.
	RuleID string `json:"rule_id,omitempty"`

	// Severity grades the underlying issue.
	Severity Severity `json:"severity"`

	// Message is the comment text.
	Message string `json:"message"`

	// Citation is the regulatory clause backing the comment, when any.
	Citation string `json:"citation,omitempty"`
}

// AnnotatedDocument is a structural overlay over an original document:
// the original paragraphs byte-for-byte plus an ordered comment layer.
type AnnotatedDocument struct {
	// Document is the original, untouched document.
	Document *Document `json:"-"`

	// DocumentID identifies the annotated document.
	DocumentID string `json:"document_id"`

	// Comments are ordered by anchor position, then severity descending,
	// then rule ID ascending. Document-level comments come first.
	Comments []Comment `json:"comments"`
}
