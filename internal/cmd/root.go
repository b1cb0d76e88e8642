package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pthm/scenariolint/internal/config"
	"github.com/pthm/scenariolint/internal/logger"
	"github.com/pthm/scenariolint/internal/ui"
)

// ErrValidationFailed is returned when a report contains errors, so the
// process exits non-zero after the report is printed.
var ErrValidationFailed = errors.New("validation failed")

var (
	// Global flags
	verbose    bool
	format     string
	configPath string
	strict     bool
	workers    int
)

var RootCmd = &cobra.Command{
	Use:   "scenariolint",
	Short: "A content-integrity linter for dialogue scenario corpora",
	Long: `scenariolint checks a corpus of dialogue-based language-learning
scenarios at each stage of the content pipeline.

Every unit is classified by feedback schema generation, then checked for
blank and answer counts, chunk references, required fields, categories,
content bounds and grammar terminology. Errors block a checkpoint; warnings
are listed for human review.`,
}

func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", ui.FormatTerminal, "Output format (terminal, json)")
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: scenariolint.yaml in this or a parent directory)")
	RootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Run answer naturalness checks at pre-merge")
	RootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", 0, "Units checked in parallel (default from config)")
}

// env is what every command needs once flags are parsed.
type env struct {
	cfg *config.Config
	log *logger.Logger
	ui  *ui.UI
}

// setup builds the logger, loads configuration and applies flag overrides.
func setup(cmd *cobra.Command) (*env, error) {
	if err := ui.ValidateFormat(format); err != nil {
		return nil, err
	}

	mode := ""
	if verbose {
		mode = "debug"
	}
	log, err := logger.New(mode)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	cfg, err := config.NewLoader(log, "").Load(configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("workers") {
		if workers < 1 {
			return nil, fmt.Errorf("--workers must be at least 1")
		}
		cfg.Workers = workers
	}

	u := ui.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), format)
	// Debug logs share stderr with the progress display.
	u.NoProgress = verbose

	return &env{cfg: cfg, log: log, ui: u}, nil
}
