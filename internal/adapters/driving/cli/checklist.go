package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/regcheck-cli/internal/core/domain"
)

var checklistCmd = &cobra.Command{
	Use:   "checklist [transaction-type]",
	Short: "Show checklist requirements",
	Long: `Shows the document checklist for a transaction type, or lists the
known transaction types when none is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runChecklist,
}

func init() {
	rootCmd.AddCommand(checklistCmd)
}

func runChecklist(cmd *cobra.Command, args []string) error {
	if referenceStore == nil {
		return errors.New("reference store not configured")
	}

	if len(args) == 0 {
		cmd.Println("Transaction types:")
		for _, t := range referenceStore.TransactionTypes() {
			cmd.Printf("  %s\n", t)
		}
		return nil
	}

	requirements, err := referenceStore.Checklist(args[0])
	if err != nil {
		return fmt.Errorf("getting checklist: %w", err)
	}

	cmd.Printf("Checklist for %s:\n", args[0])
	for _, req := range requirements {
		cmd.Printf("  %s (%s)\n", req.Name, req.Cardinality)
		cmd.Printf("    Accepts: %s\n", joinDocTypes(req.Accept))
		for _, cond := range req.ConditionalOn {
			cmd.Printf("    Only when %s is %s\n", cond.RequirementID, cond.Status)
		}
	}
	return nil
}

func joinDocTypes(types []domain.DocType) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
