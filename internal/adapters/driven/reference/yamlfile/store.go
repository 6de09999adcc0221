// Package yamlfile provides the YAML-backed reference store holding the
// per-transaction requirement checklists and the rule citation registry.
// The built-in data set ships embedded; a file on disk can replace it.
package yamlfile

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/regcheck-cli/internal/core/domain"
	"github.com/custodia-labs/regcheck-cli/internal/core/ports/driven"
)

var _ driven.ReferenceStore = (*Store)(nil)

//go:embed data/reference.yaml
var embedded []byte

// referenceFile is the on-disk shape of the reference data.
type referenceFile struct {
	Checklists map[string][]domain.Requirement `yaml:"checklists"`
	Citations  map[string]string               `yaml:"citations"`
}

// Store is an immutable snapshot of the reference data. It validates the
// checklist graphs once at load; evaluation never has to re-check them.
type Store struct {
	checklists map[string][]domain.Requirement
	citations  map[string]string
	types      []string
}

// New loads the embedded reference data.
func New() (*Store, error) {
	return parse(embedded)
}

// NewFromFile loads reference data from a YAML file, replacing the embedded
// set entirely.
func NewFromFile(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reference data: %w", err)
	}
	store, err := parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return store, nil
}

func parse(raw []byte) (*Store, error) {
	var file referenceFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse reference data: %w", err)
	}
	if len(file.Checklists) == 0 {
		return nil, fmt.Errorf("reference data: %w: no checklists", domain.ErrInvalidInput)
	}

	types := make([]string, 0, len(file.Checklists))
	for transactionType, reqs := range file.Checklists {
		if err := validateChecklist(reqs); err != nil {
			return nil, fmt.Errorf("checklist %s: %w", transactionType, err)
		}
		types = append(types, transactionType)
	}
	sort.Strings(types)

	return &Store{
		checklists: file.Checklists,
		citations:  file.Citations,
		types:      types,
	}, nil
}

// TransactionTypes returns the configured transaction types, sorted.
func (s *Store) TransactionTypes() []string {
	out := make([]string, len(s.types))
	copy(out, s.types)
	return out
}

// Checklist returns the requirement set for a transaction type in
// declaration order.
func (s *Store) Checklist(transactionType string) ([]domain.Requirement, error) {
	reqs, ok := s.checklists[transactionType]
	if !ok {
		return nil, fmt.Errorf("%s: %w", transactionType, domain.ErrUnknownTransactionType)
	}
	out := make([]domain.Requirement, len(reqs))
	copy(out, reqs)
	return out, nil
}

// Citation returns the citation registered for a rule ID.
func (s *Store) Citation(ruleID string) (string, bool) {
	c, ok := s.citations[ruleID]
	return c, ok
}

// validateChecklist rejects malformed requirement sets at load time:
// duplicate or empty IDs, unknown document types, bad cardinalities,
// references to undeclared requirements, and dependency cycles.
func validateChecklist(reqs []domain.Requirement) error {
	byID := make(map[string]domain.Requirement, len(reqs))
	for _, req := range reqs {
		if req.ID == "" {
			return fmt.Errorf("%w: requirement with empty id", domain.ErrInvalidInput)
		}
		if _, dup := byID[req.ID]; dup {
			return fmt.Errorf("%w: duplicate requirement id %s", domain.ErrInvalidInput, req.ID)
		}
		byID[req.ID] = req

		if len(req.Accept) == 0 {
			return fmt.Errorf("requirement %s: %w: empty accept set", req.ID, domain.ErrInvalidInput)
		}
		for _, label := range req.Accept {
			if !label.Valid() || label == domain.DocTypeUnknown {
				return fmt.Errorf("requirement %s: %w: %s", req.ID, domain.ErrUnknownDocType, label)
			}
		}
		if !req.Cardinality.Valid() {
			return fmt.Errorf("requirement %s: %w: cardinality %q", req.ID, domain.ErrInvalidInput, req.Cardinality)
		}
	}

	for _, req := range reqs {
		for _, cond := range req.ConditionalOn {
			if _, ok := byID[cond.RequirementID]; !ok {
				return fmt.Errorf("requirement %s: %w: depends on unknown requirement %s",
					req.ID, domain.ErrInvalidInput, cond.RequirementID)
			}
		}
	}

	return checkAcyclic(reqs)
}

// checkAcyclic walks the condition graph depth-first looking for cycles.
func checkAcyclic(reqs []domain.Requirement) error {
	deps := make(map[string][]string, len(reqs))
	for _, req := range reqs {
		for _, cond := range req.ConditionalOn {
			deps[req.ID] = append(deps[req.ID], cond.RequirementID)
		}
	}

	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[string]int, len(reqs))

	var visit func(id string) error
	visit = func(id string) error {
		switch state[id] {
		case visiting:
			return fmt.Errorf("requirement %s: %w", id, domain.ErrCyclicRequirement)
		case done:
			return nil
		}
		state[id] = visiting
		for _, dep := range deps[id] {
			if err := visit(dep); err != nil {
				return err
			}
		}
		state[id] = done
		return nil
	}

	for _, req := range reqs {
		if err := visit(req.ID); err != nil {
			return err
		}
	}
	return nil
}
