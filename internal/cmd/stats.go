package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pthm/scenariolint/internal/corpus"
	"github.com/pthm/scenariolint/internal/model"
	"github.com/pthm/scenariolint/internal/ui"
)

var statsCmd = &cobra.Command{
	Use:   "stats [corpus-glob...]",
	Short: "Summarize the corpus",
	Long: `Print aggregate counts for the corpus: units per feedback schema
generation and category, blanks, answers and chunk references.

Examples:
  scenariolint stats
  scenariolint stats --format json 'scenarios/**/*.yaml' > stats.json`,
	RunE:         runStats,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.log.Sync()

	c, err := corpus.NewLoader(e.log).Load(args...)
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}
	stats := corpus.ComputeStats(c.Units, e.cfg.BlankToken)

	if e.ui.IsJSON() {
		enc := json.NewEncoder(e.ui.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}
	printStats(e.ui.Writer, e.ui.Styles, len(c.Files), stats)
	return nil
}

func printStats(w io.Writer, s *ui.Styles, files int, st *corpus.Stats) {
	fmt.Fprintln(w, s.Header.Render("Corpus"))
	fmt.Fprintf(w, "  Files:             %d\n", files)
	fmt.Fprintf(w, "  Units:             %d\n", st.Units)
	fmt.Fprintf(w, "  Blanks:            %d\n", st.Blanks)
	fmt.Fprintf(w, "  Answers:           %d\n", st.Answers)
	fmt.Fprintf(w, "  Alternatives:      %d\n", st.Alternatives)
	fmt.Fprintf(w, "  Chunk feedback:    %d\n", st.ChunkFeedback)
	fmt.Fprintf(w, "  Chunk references:  %d\n", st.ChunkReferences)
	fmt.Fprintf(w, "  Pattern summaries: %d\n", st.Summaries)
	fmt.Fprintf(w, "  Recall items:      %d\n", st.RecallItems)
	if st.Unrenderable > 0 {
		fmt.Fprintf(w, "  %s\n", s.Warning.Render(fmt.Sprintf("%s %d units have no renderable feedback", s.IconWarning, st.Unrenderable)))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, s.Header.Render("By generation"))
	printCounts(w, st.ByGeneration, nil)

	fmt.Fprintln(w)
	fmt.Fprintln(w, s.Header.Render("By category"))
	order := make([]string, 0, len(model.UnitCategories))
	for _, c := range model.UnitCategories {
		order = append(order, string(c))
	}
	printCounts(w, st.ByCategory, order)
}

// printCounts prints keys in the given order first, then any others sorted.
func printCounts(w io.Writer, counts map[string]int, order []string) {
	seen := make(map[string]bool, len(counts))
	for _, k := range order {
		if n, ok := counts[k]; ok {
			fmt.Fprintf(w, "  %-12s %d\n", k+":", n)
			seen[k] = true
		}
	}
	var rest []string
	for k := range counts {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	for _, k := range rest {
		fmt.Fprintf(w, "  %-12s %d\n", k+":", counts[k])
	}
}
