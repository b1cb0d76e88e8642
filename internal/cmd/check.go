package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pthm/scenariolint/internal/checkpoint"
	"github.com/pthm/scenariolint/internal/corpus"
	"github.com/pthm/scenariolint/internal/reporter"
	"github.com/pthm/scenariolint/internal/rules"
	"github.com/pthm/scenariolint/internal/ui"
	"github.com/pthm/scenariolint/internal/watch"
)

var (
	checkpointName string
	pipeline       bool
	watchMode      bool
)

var checkCmd = &cobra.Command{
	Use:   "check [corpus-glob...]",
	Short: "Run a checkpoint over the corpus",
	Long: `Load the corpus and run the rules of one checkpoint, or every checkpoint
in order with --pipeline. The pipeline stops at the first checkpoint that
reports errors.

With --watch the full check is repeated whenever a corpus file changes.

Checkpoints: ` + strings.Join(checkpoint.Order, ", ") + `

Examples:
  scenariolint check --checkpoint post-generation 'scenarios/**/*.yaml'
  scenariolint check --pipeline
  scenariolint check --strict --format json > report.json`,
	RunE:         runCheck,
	SilenceUsage: true,
}

func init() {
	checkCmd.Flags().StringVar(&checkpointName, "checkpoint", checkpoint.PreMerge, "Checkpoint to run")
	checkCmd.Flags().BoolVar(&pipeline, "pipeline", false, "Run every checkpoint in order, stopping at the first failure")
	checkCmd.Flags().BoolVar(&watchMode, "watch", false, "Re-run the check when corpus files change")
	checkCmd.MarkFlagsMutuallyExclusive("checkpoint", "pipeline")
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.log.Sync()

	if watchMode {
		// Repeated runs would fight over the terminal with the spinner.
		e.ui.NoProgress = true
		return watchCheck(cmd, e, args)
	}

	reports, _, err := checkOnce(cmd, e, args)
	if err != nil {
		return err
	}
	return report(e.ui, reports...)
}

// checkOnce loads the corpus and runs the selected checkpoints.
func checkOnce(cmd *cobra.Command, e *env, args []string) ([]*checkpoint.Report, *corpus.Corpus, error) {
	progress := e.ui.StartProgress()
	defer progress.Done(nil)

	progress.SetStage(ui.StageLoadCorpus)
	c, err := corpus.NewLoader(e.log).Load(args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load corpus: %w", err)
	}

	opts := []checkpoint.Option{
		checkpoint.WithLogger(e.log),
		checkpoint.WithStrict(strict),
	}
	if progress != nil {
		opts = append(opts, checkpoint.WithProgress(progress))
	}
	o := checkpoint.New(e.cfg, rules.DefaultRegistry(), opts...)

	if pipeline {
		reports, err := o.RunPipeline(cmd.Context(), nil, c.Units)
		return reports, c, err
	}
	r, err := o.Run(cmd.Context(), checkpointName, c.Units)
	if err != nil {
		return nil, c, err
	}
	return []*checkpoint.Report{r}, c, nil
}

// watchCheck checks once, then re-checks the whole corpus after every batch
// of file changes until the command context is cancelled. Failed runs are
// reported and do not stop the watch.
func watchCheck(cmd *cobra.Command, e *env, args []string) error {
	reports, c, err := checkOnce(cmd, e, args)
	if err != nil {
		return err
	}
	printWatchResult(e, reports, nil)

	w, err := watch.New(e.log, e.cfg.Watch.Debounce, watch.Dirs(c.Files...)...)
	if err != nil {
		return fmt.Errorf("failed to watch corpus: %w", err)
	}
	defer w.Close()

	fmt.Fprintln(e.ui.ErrWriter, e.ui.Styles.Subheader.Render("watching for changes, ctrl+c to stop"))
	return w.Run(cmd.Context(), func(paths []string) {
		fmt.Fprintln(e.ui.Writer)
		fmt.Fprintln(e.ui.Writer, e.ui.Styles.Subheader.Render("changed: "+strings.Join(paths, ", ")))
		reports, _, err := checkOnce(cmd, e, args)
		printWatchResult(e, reports, err)
	})
}

func printWatchResult(e *env, reports []*checkpoint.Report, err error) {
	if err == nil {
		err = report(e.ui, reports...)
	}
	if err != nil && !errors.Is(err, ErrValidationFailed) {
		fmt.Fprintf(e.ui.ErrWriter, "%s %v\n", e.ui.Styles.Error.Render(e.ui.Styles.IconError), err)
	}
}

// report prints reports in the selected format and turns errors into
// ErrValidationFailed.
func report(u *ui.UI, reports ...*checkpoint.Report) error {
	var rep reporter.Reporter
	if u.IsJSON() {
		rep = reporter.NewJSONReporter(u.Writer)
	} else {
		rep = reporter.NewTerminalReporter(u.Writer, u.Styles)
	}
	if err := rep.Report(reports...); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	for _, r := range reports {
		if !r.Valid() {
			return ErrValidationFailed
		}
	}
	return nil
}
