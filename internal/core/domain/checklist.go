package domain

// Cardinality says how many matching documents a requirement expects.
type Cardinality string

const (
	// CardinalityExactlyOne requires exactly one matching document.
	CardinalityExactlyOne Cardinality = "exactly-one"

	// CardinalityAtLeastOne requires one or more matching documents.
	CardinalityAtLeastOne Cardinality = "at-least-one"

	// CardinalityOptional accepts any number of matching documents.
	// A Missing result for an optional requirement never makes the
	// submission non-compliant.
	CardinalityOptional Cardinality = "optional"
)

// Valid reports whether c is a known cardinality.
func (c Cardinality) Valid() bool {
	switch c {
	case CardinalityExactlyOne, CardinalityAtLeastOne, CardinalityOptional:
		return true
	}
	return false
}

// Condition gates a requirement on the outcome of another requirement.
// The condition holds when the referenced requirement's result status equals
// Status.
type Condition struct {
	// RequirementID references the requirement this condition depends on.
	RequirementID string `yaml:"requirement" json:"requirement"`

	// Status is the result status the dependency must have.
	Status ResultStatus `yaml:"status" json:"status"`
}

// Requirement is one static checklist entry for a transaction type.
// Requirements are reference data: loaded once per run, read-only.
type Requirement struct {
	// ID uniquely identifies the requirement within its transaction type.
	ID string `yaml:"id" json:"id"`

	// Name is a human-readable label for report output.
	Name string `yaml:"name" json:"name"`

	// Accept is the set of document types that satisfy the requirement.
	// Alternatives (e.g. a combined register) list multiple entries.
	Accept []DocType `yaml:"accept" json:"accept"`

	// Cardinality is how many matching documents are expected.
	Cardinality Cardinality `yaml:"cardinality" json:"cardinality"`

	// ConditionalOn lists conditions that must all hold for the
	// requirement to apply. When any fails the requirement is waived.
	// The references must form an acyclic graph; a cycle is a
	// configuration error detected at load time.
	ConditionalOn []Condition `yaml:"conditional_on,omitempty" json:"conditional_on,omitempty"`
}

// ResultStatus is the evaluation outcome for one requirement.
type ResultStatus string

const (
	// StatusSatisfied means the expected documents are present.
	StatusSatisfied ResultStatus = "Satisfied"

	// StatusMissing means no acceptable document was found.
	StatusMissing ResultStatus = "Missing"

	// StatusDuplicated means an exactly-one requirement matched more
	// than one document. All candidates are retained for visibility.
	StatusDuplicated ResultStatus = "Duplicated"

	// StatusConditionallyWaived means the requirement's conditions did
	// not hold, so document presence was not evaluated.
	StatusConditionallyWaived ResultStatus = "ConditionallyWaived"
)

// ChecklistResult records the outcome for one requirement in one run.
// Evaluation emits exactly one result per requirement in the static set.
type ChecklistResult struct {
	// RequirementID references the evaluated requirement.
	RequirementID string `json:"requirement_id"`

	// Status is the evaluation outcome.
	Status ResultStatus `json:"status"`

	// MatchedDocumentIDs lists every document whose classified type is
	// in the requirement's accept set, even for Duplicated results.
	MatchedDocumentIDs []string `json:"matched_document_ids,omitempty"`
}
