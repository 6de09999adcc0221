// Package cli implements the regcheck command-line interface.
package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/regcheck-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/regcheck-cli/internal/adapters/driven/reference/yamlfile"
	"github.com/custodia-labs/regcheck-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/regcheck-cli/internal/classifiers/keyword"
	"github.com/custodia-labs/regcheck-cli/internal/classifiers/semantic"
	"github.com/custodia-labs/regcheck-cli/internal/core/ports/driven"
	"github.com/custodia-labs/regcheck-cli/internal/core/ports/driving"
	"github.com/custodia-labs/regcheck-cli/internal/core/services"
	"github.com/custodia-labs/regcheck-cli/internal/ingest/filesystem"
	"github.com/custodia-labs/regcheck-cli/internal/logger"
	"github.com/custodia-labs/regcheck-cli/internal/rules"
)

// version is set by Execute from the build's main package.
var version = "dev"

// Services the commands run against. Wired by initServices; tests swap in
// mocks directly.
var (
	reviewService  driving.ReviewService
	reportService  driving.ReportService
	configStore    driven.ConfigStore
	referenceStore driven.ReferenceStore
	documentSource driven.DocumentSource
)

var (
	verbose   bool
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "regcheck",
	Short: "Compliance review for ADGM corporate filings",
	Long: `regcheck reviews corporate filing document sets against ADGM
checklists and red-flag rules.

It classifies each document, checks the set against the checklist for the
transaction type, scans document content for regulatory red flags, and
compiles a compliance report with annotated document copies.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logger.SetOutput(cmd.ErrOrStderr())
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.regcheck)")
}

// Execute wires the services and runs the root command.
func Execute(buildVersion string) error {
	if buildVersion != "" {
		version = buildVersion
	}

	// Parse persistent flags early so --config reaches initServices.
	_ = rootCmd.PersistentFlags().Parse(os.Args[1:]) //nolint:errcheck // cobra reparses and reports

	if err := initServices(); err != nil {
		return fmt.Errorf("initialising services: %w", err)
	}

	return rootCmd.Execute()
}

// initServices builds the production wiring: file config, embedded reference
// data, SQLite report store, and the review pipeline over the configured
// scoring backend.
func initServices() error {
	cfg, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	configStore = cfg

	ref, err := loadReference(cfg)
	if err != nil {
		return fmt.Errorf("loading reference data: %w", err)
	}
	referenceStore = ref

	scorer, err := buildScorer(cfg)
	if err != nil {
		return fmt.Errorf("configuring scorer: %w", err)
	}

	store, err := sqlite.NewStore(cfg.GetString("storage.path"))
	if err != nil {
		return fmt.Errorf("opening report store: %w", err)
	}

	classifier := services.NewClassifier(scorer, services.ClassifierOptions{
		ConfidenceFloor: cfg.GetFloat("review.confidence_floor"),
		TieEpsilon:      cfg.GetFloat("review.tie_epsilon"),
		ScoreTimeout:    time.Duration(cfg.GetInt("review.backend_timeout_seconds")) * time.Second,
	})

	scanner, err := services.NewScanner(enabledRules(cfg), ref)
	if err != nil {
		return fmt.Errorf("configuring rules: %w", err)
	}

	threshold := cfg.GetFloat("review.incomplete_threshold")
	reviewService = services.NewReview(
		classifier,
		scanner,
		services.NewChecklistEngine(ref),
		services.NewAnnotator(ref),
		services.NewCompiler(ref, threshold),
		store,
		cfg.GetInt("review.concurrency"),
	)
	reportService = services.NewReportService(store)
	documentSource = filesystem.New()

	return nil
}

// loadReference uses the embedded checklist and citation data unless
// reference.path points at an external file.
func loadReference(cfg *file.ConfigStore) (driven.ReferenceStore, error) {
	if path := cfg.GetString("reference.path"); path != "" {
		return yamlfile.NewFromFile(path)
	}
	return yamlfile.New()
}

// buildScorer selects the classification backend. The keyword scorer is the
// default; scorer.backend = "semantic" switches to the LLM-backed scorer,
// which needs an API key from config or OPENAI_API_KEY.
func buildScorer(cfg *file.ConfigStore) (driven.TypeScorer, error) {
	if cfg.GetString("scorer.backend") != "semantic" {
		return keyword.New(), nil
	}

	apiKey := cfg.GetString("scorer.api_key")
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	return semantic.New(semantic.Config{
		APIKey:  apiKey,
		BaseURL: cfg.GetString("scorer.endpoint"),
		Model:   cfg.GetString("scorer.model"),
	})
}

// enabledRules returns the default rule set minus any IDs listed under
// rules.disabled.
func enabledRules(cfg *file.ConfigStore) []driven.Rule {
	disabled := make(map[string]bool)
	for _, id := range cfg.GetStringSlice("rules.disabled") {
		disabled[strings.TrimSpace(id)] = true
	}

	all := rules.Defaults()
	if len(disabled) == 0 {
		return all
	}

	kept := make([]driven.Rule, 0, len(all))
	for _, r := range all {
		if disabled[r.ID()] {
			logger.Debug("rule %s disabled by config", r.ID())
			continue
		}
		kept = append(kept, r)
	}
	return kept
}
