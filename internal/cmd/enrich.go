package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pthm/scenariolint/internal/checkpoint"
	"github.com/pthm/scenariolint/internal/corpus"
	"github.com/pthm/scenariolint/internal/rules"
	"github.com/pthm/scenariolint/internal/ui"
)

var enrichCorpus []string

var enrichCmd = &cobra.Command{
	Use:   "enrich <file>",
	Short: "Validate an enrichment file before it is applied",
	Long: `Validate a markdown enrichment file against the corpus.

The file must declare its category in a header, hold at most the configured
number of sections, and only name units of that category that exist in the
corpus. Each section's pattern summary block is checked like a unit summary.

Examples:
  scenariolint enrich enrichment/social-batch-3.md
  scenariolint enrich batch.md --corpus 'scenarios/social/*.yaml'`,
	Args:         cobra.ExactArgs(1),
	RunE:         runEnrich,
	SilenceUsage: true,
}

func init() {
	enrichCmd.Flags().StringSliceVar(&enrichCorpus, "corpus", corpus.DefaultPatterns, "Corpus file globs")
	RootCmd.AddCommand(enrichCmd)
}

func runEnrich(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.log.Sync()

	r, err := enrichOnce(cmd, e, args[0])
	if err != nil {
		return err
	}
	return report(e.ui, r)
}

// enrichOnce loads the corpus and validates one enrichment file. The
// progress display is gone by the time it returns.
func enrichOnce(cmd *cobra.Command, e *env, path string) (*checkpoint.Report, error) {
	progress := e.ui.StartProgress()
	defer progress.Done(nil)

	progress.SetStage(ui.StageLoadCorpus)
	c, err := corpus.NewLoader(e.log).Load(enrichCorpus...)
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus: %w", err)
	}

	progress.SetStage(ui.StageParseEnrichment)
	o := checkpoint.New(e.cfg, rules.DefaultRegistry(), checkpoint.WithLogger(e.log))
	return o.ValidateEnrichment(cmd.Context(), path, c)
}
