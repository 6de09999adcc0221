package driven

import "github.com/custodia-labs/regcheck-cli/internal/core/domain"

// ReferenceStore supplies the static checklist and citation reference data.
// Implementations load once and are read-only for the run; reruns reload or
// reuse an immutable snapshot, never patch in place.
type ReferenceStore interface {
	// TransactionTypes returns the transaction types with a checklist,
	// sorted lexically.
	TransactionTypes() []string

	// Checklist returns the requirement set for a transaction type in
	// declaration order. Returns domain.ErrUnknownTransactionType when
	// no checklist exists for the type.
	Checklist(transactionType string) ([]domain.Requirement, error)

	// Citation returns the regulatory citation registered for a rule ID.
	// The second return is false when no citation is registered.
	Citation(ruleID string) (string, bool)
}
