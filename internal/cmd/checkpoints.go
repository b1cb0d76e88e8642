package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pthm/scenariolint/internal/checkpoint"
)

var checkpointsCmd = &cobra.Command{
	Use:   "checkpoints",
	Short: "List checkpoints and the rules each one runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		s := e.ui.Styles
		w := e.ui.Writer
		strictMode := strict || e.cfg.Naturalness.Enabled

		for i, name := range checkpoint.Order {
			if i > 0 {
				fmt.Fprintln(w)
			}
			plan, err := checkpoint.Plan(name, strictMode)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s  %s\n", s.Header.Render(name), s.Subheader.Render(checkpoint.Describe(name)))
			fmt.Fprintf(w, "  %s\n", strings.Join(plan, ", "))
		}
		if pm := e.cfg.Checkpoints.PreMerge; len(pm.Command) > 0 {
			fmt.Fprintf(w, "\n%s %s\n", s.Subheader.Render("pre-merge external check:"), strings.Join(pm.Command, " "))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(checkpointsCmd)
}
