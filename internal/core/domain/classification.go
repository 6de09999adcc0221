package domain

// RankedLabel is a candidate label that lost the classification together
// with the score it achieved. Tie losers are recorded here rather than
// silently dropped.
type RankedLabel struct {
	Label DocType `json:"label"`
	Score float64 `json:"score"`
}

// Classification is the immutable outcome of classifying one document.
type Classification struct {
	// DocumentID identifies the classified document.
	DocumentID string `json:"document_id"`

	// Label is the winning type, or DocTypeUnknown when no candidate
	// cleared the confidence floor or the scoring backend failed.
	Label DocType `json:"label"`

	// Confidence is the winning score in [0, 1].
	Confidence float64 `json:"confidence"`

	// AlternativeLabels are runner-up candidates in rank order.
	AlternativeLabels []RankedLabel `json:"alternative_labels,omitempty"`
}
