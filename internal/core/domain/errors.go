package domain

import "errors"

// Domain errors represent business logic failures.
// Configuration errors (cyclic requirements, missing citations) are fatal
// before any document processing starts; per-document errors are contained
// and surface as degraded data within the report instead.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyDocument indicates a document with no extracted text was
	// handed to the classifier.
	ErrEmptyDocument = errors.New("document has no extracted text")

	// ErrUnknownDocType indicates a label outside the closed taxonomy.
	ErrUnknownDocType = errors.New("unknown document type")

	// ErrUnknownTransactionType indicates no checklist exists for the
	// requested transaction type.
	ErrUnknownTransactionType = errors.New("unknown transaction type")

	// ErrCyclicRequirement indicates the checklist's conditional
	// dependencies form a cycle. Configuration-fatal at load time.
	ErrCyclicRequirement = errors.New("cyclic requirement dependency")

	// ErrMissingCitation indicates a registered rule has no citation in
	// the citation registry. Configuration-fatal at startup.
	ErrMissingCitation = errors.New("rule has no registered citation")

	// ErrAnchorNotFound indicates a finding anchor that does not resolve
	// to a location in its document's structured text.
	ErrAnchorNotFound = errors.New("finding anchor does not resolve")

	// ErrScorerUnavailable indicates the scoring backend is not
	// configured. Classification degrades to the keyword scorer.
	ErrScorerUnavailable = errors.New("scoring backend unavailable")
)
