package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/regcheck-cli/internal/ingest/filesystem"
	"github.com/custodia-labs/regcheck-cli/internal/logger"
)

var watchTransaction string

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Re-review a directory on change",
	Long: `Watches a directory and re-runs the review whenever a supported
document is added, changed, or removed. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchTransaction, "transaction", "t", "", "transaction type (inferred when omitted)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if reviewService == nil || documentSource == nil {
		return errors.New("review service not configured")
	}

	dir := args[0]
	ctx := cmd.Context()

	watcher, err := filesystem.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	// Review once up front, then on every settled change.
	reviewDir(ctx, cmd, dir)

	cmd.Printf("Watching %s for changes (Ctrl+C to stop)\n", dir)
	err = watcher.Watch(ctx, dir, func(path string) {
		logger.Info("change detected: %s", path)
		reviewDir(ctx, cmd, dir)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// reviewDir runs a full review of dir and prints the summary. Failures are
// reported but never stop the watch loop.
func reviewDir(ctx context.Context, cmd *cobra.Command, dir string) {
	docs, err := documentSource.Load(ctx, dir)
	if err != nil {
		logger.Warn("loading documents: %v", err)
		return
	}
	if len(docs) == 0 {
		cmd.Println("No supported documents found, waiting for changes.")
		return
	}

	transaction := watchTransaction
	if transaction == "" {
		inferred, _, err := reviewService.InferTransactionType(ctx, docs)
		if err != nil || inferred == "" {
			logger.Warn("could not infer transaction type, waiting for more documents")
			return
		}
		transaction = inferred
	}

	result, err := reviewService.Run(ctx, docs, transaction)
	if err != nil {
		logger.Warn("review failed: %v", err)
		return
	}
	outputReportSummary(cmd, result.Report)
}
