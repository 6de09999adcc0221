package services

import (
	"fmt"

	"github.com/custodia-labs/regcheck-cli/internal/core/domain"
	"github.com/custodia-labs/regcheck-cli/internal/core/ports/driven"
	"github.com/custodia-labs/regcheck-cli/internal/logger"
)

// ChecklistEngine matches a classified document set against the static
// requirement checklist for a transaction type.
type ChecklistEngine struct {
	ref driven.ReferenceStore
}

// NewChecklistEngine creates a checklist engine over the reference store.
func NewChecklistEngine(ref driven.ReferenceStore) *ChecklistEngine {
	return &ChecklistEngine{ref: ref}
}

// Evaluate produces exactly one result per requirement in the checklist for
// transactionType, in declaration order. Requirements with no conditions are
// evaluated first; conditionally-dependent requirements only once every
// dependency's result is known. Returns ErrUnknownTransactionType for an
// unconfigured type and ErrCyclicRequirement if the dependency graph has a
// cycle (a configuration error the reference store should already have
// rejected at load).
func (e *ChecklistEngine) Evaluate(classifications []domain.Classification, transactionType string) ([]domain.ChecklistResult, error) {
	reqs, err := e.ref.Checklist(transactionType)
	if err != nil {
		return nil, err
	}

	order, err := topoOrder(reqs)
	if err != nil {
		return nil, err
	}

	byType := make(map[domain.DocType][]string)
	for _, cls := range classifications {
		byType[cls.Label] = append(byType[cls.Label], cls.DocumentID)
	}

	statuses := make(map[string]domain.ResultStatus, len(reqs))
	results := make(map[string]domain.ChecklistResult, len(reqs))

	for _, req := range order {
		res := evaluateRequirement(req, byType, statuses)
		statuses[req.ID] = res.Status
		results[req.ID] = res
		logger.Debug("requirement %s: %s (%d matched)", req.ID, res.Status, len(res.MatchedDocumentIDs))
	}

	// Emit in declaration order regardless of evaluation order.
	out := make([]domain.ChecklistResult, 0, len(reqs))
	for _, req := range reqs {
		out = append(out, results[req.ID])
	}
	return out, nil
}

// evaluateRequirement computes the result for one requirement given the
// already-known statuses of its dependencies.
func evaluateRequirement(req domain.Requirement, byType map[domain.DocType][]string, statuses map[string]domain.ResultStatus) domain.ChecklistResult {
	for _, cond := range req.ConditionalOn {
		if statuses[cond.RequirementID] != cond.Status {
			return domain.ChecklistResult{
				RequirementID: req.ID,
				Status:        domain.StatusConditionallyWaived,
			}
		}
	}

	var matched []string
	for _, label := range req.Accept {
		matched = append(matched, byType[label]...)
	}

	res := domain.ChecklistResult{
		RequirementID:      req.ID,
		MatchedDocumentIDs: matched,
	}
	switch {
	case len(matched) == 0:
		res.Status = domain.StatusMissing
	case len(matched) > 1 && req.Cardinality == domain.CardinalityExactlyOne:
		res.Status = domain.StatusDuplicated
	default:
		res.Status = domain.StatusSatisfied
	}
	return res
}

// topoOrder returns the requirements in a dependency-respecting order using
// Kahn's algorithm, preserving declaration order among ready requirements.
// Conditions may reference any number of other requirements; the graph must
// be acyclic.
func topoOrder(reqs []domain.Requirement) ([]domain.Requirement, error) {
	byID := make(map[string]domain.Requirement, len(reqs))
	for _, req := range reqs {
		byID[req.ID] = req
	}

	indegree := make(map[string]int, len(reqs))
	dependants := make(map[string][]string)
	for _, req := range reqs {
		indegree[req.ID] += 0
		for _, cond := range req.ConditionalOn {
			if _, ok := byID[cond.RequirementID]; !ok {
				return nil, fmt.Errorf("requirement %s: %w: depends on unknown requirement %s",
					req.ID, domain.ErrInvalidInput, cond.RequirementID)
			}
			indegree[req.ID]++
			dependants[cond.RequirementID] = append(dependants[cond.RequirementID], req.ID)
		}
	}

	var queue []string
	for _, req := range reqs {
		if indegree[req.ID] == 0 {
			queue = append(queue, req.ID)
		}
	}

	var order []domain.Requirement
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, byID[id])
		for _, dep := range dependants[id] {
			indegree[dep]--
			if indegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	if len(order) != len(reqs) {
		return nil, domain.ErrCyclicRequirement
	}
	return order, nil
}
